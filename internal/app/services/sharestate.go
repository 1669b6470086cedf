package services

import (
	"net/url"
	"strconv"

	"github.com/SpecialAgentB3/benwilcox-dev/internal/app/repositories"
	"github.com/SpecialAgentB3/benwilcox-dev/internal/pkg/helpers"
	"github.com/SpecialAgentB3/benwilcox-dev/internal/pkg/metrics"
)

// Share-state query parameter names.
const (
	paramSettings  = "settings"
	paramPinned    = "pinned"
	paramDisplayed = "courses"
	paramActive    = "active"
)

// Toggle bit assignments for the settings parameter. Bits 5 and up are
// reserved for future toggles or a version discriminator and are ignored
// on decode.
const (
	settingsBitAutoPin      = 1 << 0
	settingsBitShowGroups   = 1 << 1
	settingsBitShowCount    = 1 << 2
	settingsBitShowAllYears = 1 << 3
	settingsBitGranular     = 1 << 4

	settingsKnownBits = settingsBitAutoPin | settingsBitShowGroups | settingsBitShowCount |
		settingsBitShowAllYears | settingsBitGranular

	// settingsDefault is the canonical default toggle mask (0b01101 = 13):
	// auto-pin, show-count and show-all-years on, the rest off. The
	// settings parameter is emitted only when it differs from this value.
	settingsDefault = settingsBitAutoPin | settingsBitShowCount | settingsBitShowAllYears
)

// ShareState is the full interactive browsing state carried by a share URL.
type ShareState struct {
	AutoPin      bool `json:"autoPin"`
	ShowGroups   bool `json:"showGroups"`
	ShowCount    bool `json:"showCount"`
	ShowAllYears bool `json:"showAllYears"`
	GranularView bool `json:"granularView"`

	Pinned    []int64 `json:"pinned,omitempty"`
	Displayed []int64 `json:"displayed,omitempty"`
	Active    *int64  `json:"active,omitempty"`
}

// DefaultShareState returns the all-default state: default toggles and no
// pinned, displayed or active courses.
func DefaultShareState() ShareState {
	return stateFromSettings(settingsDefault)
}

func stateFromSettings(settings uint64) ShareState {
	return ShareState{
		AutoPin:      settings&settingsBitAutoPin != 0,
		ShowGroups:   settings&settingsBitShowGroups != 0,
		ShowCount:    settings&settingsBitShowCount != 0,
		ShowAllYears: settings&settingsBitShowAllYears != 0,
		GranularView: settings&settingsBitGranular != 0,
	}
}

func (s ShareState) settings() uint64 {
	var settings uint64
	if s.AutoPin {
		settings |= settingsBitAutoPin
	}
	if s.ShowGroups {
		settings |= settingsBitShowGroups
	}
	if s.ShowCount {
		settings |= settingsBitShowCount
	}
	if s.ShowAllYears {
		settings |= settingsBitShowAllYears
	}
	if s.GranularView {
		settings |= settingsBitGranular
	}
	return settings
}

// ShareCodec serializes the browsing state to a URL query string and back.
// Decoding never fails: malformed parameters and ids unknown to the store
// are dropped silently, and a fully absent query decodes to the default
// state. Decoding is idempotent: re-encoding a decoded state and decoding
// again yields the same effective state.
type ShareCodec struct {
	store *repositories.Store
}

// NewShareCodec creates a codec validating ids against the given store.
func NewShareCodec(store *repositories.Store) *ShareCodec {
	return &ShareCodec{store: store}
}

// Encode serializes a state into query parameters. Parameters matching the
// default state are omitted, so the all-default state encodes to an empty
// query.
func (c *ShareCodec) Encode(state ShareState) url.Values {
	values := url.Values{}

	if settings := state.settings(); settings != settingsDefault {
		values.Set(paramSettings, strconv.FormatUint(settings, 10))
	}
	if len(state.Pinned) > 0 {
		values.Set(paramPinned, helpers.FormatIDList(state.Pinned))
	}
	if len(state.Displayed) > 0 {
		values.Set(paramDisplayed, helpers.FormatIDList(state.Displayed))
	}
	if state.Active != nil {
		values.Set(paramActive, strconv.FormatInt(*state.Active, 10))
	}

	return values
}

// EncodeQuery is Encode rendered as a URL query string.
func (c *ShareCodec) EncodeQuery(state ShareState) string {
	return c.Encode(state).Encode()
}

// Decode parses query parameters into a state. A malformed settings value
// falls back to the default toggles; non-numeric id tokens and ids not
// present in the store are dropped.
func (c *ShareCodec) Decode(values url.Values) ShareState {
	state := DefaultShareState()
	clean := true

	if raw := values.Get(paramSettings); raw != "" {
		settings, err := strconv.ParseUint(raw, 10, 64)
		if err == nil {
			state = stateFromSettings(settings & settingsKnownBits)
		} else {
			clean = false
		}
	}

	state.Pinned, clean = c.knownCourseIDs(values.Get(paramPinned), clean)
	state.Displayed, clean = c.knownCourseIDs(values.Get(paramDisplayed), clean)

	if raw := values.Get(paramActive); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err == nil {
			if _, ok := c.store.CourseByID(id); ok {
				state.Active = &id
			} else {
				clean = false
			}
		} else {
			clean = false
		}
	}

	if clean {
		metrics.CountShareDecode("ok")
	} else {
		metrics.CountShareDecode("partial")
	}

	return state
}

// DecodeQuery is Decode over a raw query string. An unparseable query
// decodes to the default state.
func (c *ShareCodec) DecodeQuery(query string) ShareState {
	values, err := url.ParseQuery(query)
	if err != nil {
		metrics.CountShareDecode("partial")
		return DefaultShareState()
	}
	return c.Decode(values)
}

// knownCourseIDs parses a comma-separated id list, dropping malformed
// tokens, duplicates, and ids unknown to the store.
func (c *ShareCodec) knownCourseIDs(raw string, clean bool) ([]int64, bool) {
	if raw == "" {
		return nil, clean
	}

	parsed := helpers.ParseIDList(raw)
	seen := make(map[int64]struct{}, len(parsed))
	var ids []int64
	for _, id := range parsed {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		if _, ok := c.store.CourseByID(id); !ok {
			clean = false
			continue
		}
		ids = append(ids, id)
	}
	if len(ids) != len(parsed) {
		clean = false
	}
	return ids, clean
}
