package services

import (
	"fmt"
	"net/url"
	"sync"

	"github.com/SpecialAgentB3/benwilcox-dev/internal/app/models"
	"github.com/SpecialAgentB3/benwilcox-dev/internal/app/repositories"
	"github.com/SpecialAgentB3/benwilcox-dev/internal/pkg/apperrors"
)

// SessionSnapshot is a read-only copy of the browsing session handed to
// callers. Course ids are resolved to full records for display.
type SessionSnapshot struct {
	AutoPin      bool `json:"autoPin"`
	ShowGroups   bool `json:"showGroups"`
	ShowCount    bool `json:"showCount"`
	ShowAllYears bool `json:"showAllYears"`
	GranularView bool `json:"granularView"`

	Pinned    []models.Course `json:"pinned"`
	Displayed []models.Course `json:"displayed"`
	Active    *models.Course  `json:"active,omitempty"`

	ActiveYears     []int    `json:"activeYears"`
	ActiveSemesters []string `json:"activeSemesters"`
}

// SessionService owns the cross-component interactive state: the five UI
// toggles, the pinned and displayed course rows, and the active course with
// its year/semester filters. Every mutation goes through a command method;
// nothing else writes the state. The session is process-wide (the browser
// is a single-user tool) and lives only for the session.
type SessionService struct {
	store       *repositories.Store
	selection   *SelectionService
	aggregation *AggregationService
	codec       *ShareCodec

	mu    sync.RWMutex
	state sessionState
}

type sessionState struct {
	toggles ShareState // only the toggle fields are used

	pinned    []int64
	displayed []int64
	active    int64 // 0 = none

	activeYears     []int
	activeSemesters []string
}

// NewSessionService creates a session in the default state.
func NewSessionService(store *repositories.Store, selection *SelectionService, aggregation *AggregationService, codec *ShareCodec) *SessionService {
	return &SessionService{
		store:       store,
		selection:   selection,
		aggregation: aggregation,
		codec:       codec,
		state:       sessionState{toggles: DefaultShareState()},
	}
}

// Snapshot returns a copy of the current session with courses resolved.
func (s *SessionService) Snapshot() SessionSnapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	snapshot := SessionSnapshot{
		AutoPin:         s.state.toggles.AutoPin,
		ShowGroups:      s.state.toggles.ShowGroups,
		ShowCount:       s.state.toggles.ShowCount,
		ShowAllYears:    s.state.toggles.ShowAllYears,
		GranularView:    s.state.toggles.GranularView,
		Pinned:          s.resolveCourses(s.state.pinned),
		Displayed:       s.resolveCourses(s.state.displayed),
		ActiveYears:     append([]int(nil), s.state.activeYears...),
		ActiveSemesters: append([]string(nil), s.state.activeSemesters...),
	}
	if s.state.active != 0 {
		if course, ok := s.store.CourseByID(s.state.active); ok {
			snapshot.Active = &course
		}
	}
	return snapshot
}

func (s *SessionService) resolveCourses(ids []int64) []models.Course {
	courses := make([]models.Course, 0, len(ids))
	for _, id := range ids {
		if course, ok := s.store.CourseByID(id); ok {
			courses = append(courses, course)
		}
	}
	return courses
}

// AddCourse adds a course to the displayed rows, pins it when auto-pin is
// on, and makes it the active course. Adding an already-displayed course is
// a no-op.
func (s *SessionService) AddCourse(courseID int64) error {
	if _, ok := s.store.CourseByID(courseID); !ok {
		return fmt.Errorf("%w: id %d", apperrors.ErrCourseNotFound, courseID)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if containsID(s.state.displayed, courseID) {
		return nil
	}
	s.state.displayed = append(s.state.displayed, courseID)
	if s.state.toggles.AutoPin && !containsID(s.state.pinned, courseID) {
		s.state.pinned = append(s.state.pinned, courseID)
	}
	s.activateLocked(courseID, nil, nil)
	return nil
}

// RemoveCourse removes a course from the displayed rows, clearing the
// active course if it was the one removed. Pins are left alone.
func (s *SessionService) RemoveCourse(courseID int64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.state.displayed = removeID(s.state.displayed, courseID)
	if s.state.active == courseID {
		s.clearActiveLocked()
	}
}

// TogglePin pins or unpins a course.
func (s *SessionService) TogglePin(courseID int64) error {
	if _, ok := s.store.CourseByID(courseID); !ok {
		return fmt.Errorf("%w: id %d", apperrors.ErrCourseNotFound, courseID)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if containsID(s.state.pinned, courseID) {
		s.state.pinned = removeID(s.state.pinned, courseID)
	} else {
		s.state.pinned = append(s.state.pinned, courseID)
	}
	return nil
}

// Reorder moves a displayed row from one index to another. The rendering
// layer's drag-and-drop calls this with both indexes in range.
func (s *SessionService) Reorder(from, to int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if from < 0 || from >= len(s.state.displayed) || to < 0 || to >= len(s.state.displayed) {
		return apperrors.NewBadRequestError("reorder index out of range")
	}

	moved := s.state.displayed[from]
	displayed := append(s.state.displayed[:from], s.state.displayed[from+1:]...)
	displayed = append(displayed[:to], append([]int64{moved}, displayed[to:]...)...)
	s.state.displayed = displayed
	return nil
}

// SetActive makes a course the active one, defaulting the year and
// semester filters to everything relevant for the course when not given
// explicitly. A course id of 0 clears the active course.
func (s *SessionService) SetActive(courseID int64, year *int, semesters []string) error {
	if courseID == 0 {
		s.mu.Lock()
		defer s.mu.Unlock()
		s.clearActiveLocked()
		return nil
	}

	if _, ok := s.store.CourseByID(courseID); !ok {
		return fmt.Errorf("%w: id %d", apperrors.ErrCourseNotFound, courseID)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.activateLocked(courseID, year, semesters)
	return nil
}

// activateLocked sets the active course and filter defaults. Activating a
// course also seeds default mask entries for its listings, mirroring the
// group selector's first-observation behavior. Callers hold the lock.
func (s *SessionService) activateLocked(courseID int64, year *int, semesters []string) {
	s.state.active = courseID

	listings := s.store.ListingsForCourse(courseID)
	listingIDs := make([]int64, len(listings))
	for i, listing := range listings {
		listingIDs[i] = listing.ID
	}
	s.selection.EnsureDefaults(listingIDs)

	if year != nil {
		s.state.activeYears = []int{*year}
	} else {
		s.state.activeYears = s.aggregation.RelevantYears(courseID)
	}
	if len(semesters) > 0 {
		s.state.activeSemesters = append([]string(nil), semesters...)
	} else {
		s.state.activeSemesters = s.aggregation.RelevantSemesters(courseID)
	}
}

func (s *SessionService) clearActiveLocked() {
	s.state.active = 0
	s.state.activeYears = nil
	s.state.activeSemesters = nil
}

// SetToggles applies partial toggle updates; nil pointers leave a toggle
// unchanged.
func (s *SessionService) SetToggles(autoPin, showGroups, showCount, showAllYears, granularView *bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	apply := func(target *bool, value *bool) {
		if value != nil {
			*target = *value
		}
	}
	apply(&s.state.toggles.AutoPin, autoPin)
	apply(&s.state.toggles.ShowGroups, showGroups)
	apply(&s.state.toggles.ShowCount, showCount)
	apply(&s.state.toggles.ShowAllYears, showAllYears)
	apply(&s.state.toggles.GranularView, granularView)
}

// Share encodes the current session into a shareable URL query string.
func (s *SessionService) Share() string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	state := s.state.toggles
	state.Pinned = append([]int64(nil), s.state.pinned...)
	state.Displayed = append([]int64(nil), s.state.displayed...)
	if s.state.active != 0 {
		active := s.state.active
		state.Active = &active
	}
	return s.codec.EncodeQuery(state)
}

// Restore replaces the session with the state decoded from share-URL query
// parameters. Decoding is lenient, so restore never fails; an activated
// course gets the same filter defaults as SetActive.
func (s *SessionService) Restore(values url.Values) {
	decoded := s.codec.Decode(values)

	s.mu.Lock()
	defer s.mu.Unlock()

	s.state = sessionState{
		toggles:   decoded,
		pinned:    decoded.Pinned,
		displayed: decoded.Displayed,
	}
	s.state.toggles.Pinned = nil
	s.state.toggles.Displayed = nil
	s.state.toggles.Active = nil

	if decoded.Active != nil {
		s.activateLocked(*decoded.Active, nil, nil)
	}
}

func containsID(ids []int64, id int64) bool {
	for _, candidate := range ids {
		if candidate == id {
			return true
		}
	}
	return false
}

func removeID(ids []int64, id int64) []int64 {
	filtered := ids[:0]
	for _, candidate := range ids {
		if candidate != id {
			filtered = append(filtered, candidate)
		}
	}
	return filtered
}
