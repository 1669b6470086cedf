package services

import (
	"sync"

	"github.com/SpecialAgentB3/benwilcox-dev/internal/app/repositories"
	"github.com/SpecialAgentB3/benwilcox-dev/internal/pkg/metrics"
)

// SelectionService is the group-membership mask: a per-listing inclusion
// flag controlling whether a catalog listing (and its offerings) counts
// toward its course's derived views. Entries default to included and are
// created lazily the first time a course's listings are observed. The mask
// is keyed by listing id only and lives for the session; nothing is ever
// written back to the dataset.
//
// Derived views are recomputed from the mask on every read, so a mutation
// here is fully visible to the very next aggregation call.
type SelectionService struct {
	store *repositories.Store

	mu       sync.RWMutex
	included map[int64]bool
}

// NewSelectionService creates an empty mask over the store.
func NewSelectionService(store *repositories.Store) *SelectionService {
	return &SelectionService{
		store:    store,
		included: make(map[int64]bool),
	}
}

// IsIncluded reports whether a listing counts toward its course's views.
// Listings without an explicit entry are included.
func (s *SelectionService) IsIncluded(listingID int64) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	included, ok := s.included[listingID]
	return !ok || included
}

// Toggle flips one listing's inclusion flag and returns the new value.
// No other listing's entry is touched.
func (s *SelectionService) Toggle(listingID int64) bool {
	metrics.CountSelectionMutation("toggle")

	s.mu.Lock()
	defer s.mu.Unlock()

	included, ok := s.included[listingID]
	if !ok {
		included = true
	}
	s.included[listingID] = !included
	return !included
}

// SetAll sets the inclusion flag for every given listing in one step.
// Readers never observe a partially-applied bulk update.
func (s *SelectionService) SetAll(listingIDs []int64, included bool) {
	metrics.CountSelectionMutation("set_all")

	s.mu.Lock()
	defer s.mu.Unlock()

	for _, listingID := range listingIDs {
		s.included[listingID] = included
	}
}

// EnsureDefaults lazily creates included-by-default entries for listings
// observed for the first time, without disturbing entries the user has
// already set.
func (s *SelectionService) EnsureDefaults(listingIDs []int64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, listingID := range listingIDs {
		if _, ok := s.included[listingID]; !ok {
			s.included[listingID] = true
		}
	}
}

// SelectedListingIDs returns the ids of the course's listings whose mask
// entry is true (or unset), in the store's listing order.
func (s *SelectionService) SelectedListingIDs(courseID int64) []int64 {
	listings := s.store.ListingsForCourse(courseID)

	s.mu.RLock()
	defer s.mu.RUnlock()

	var ids []int64
	for _, listing := range listings {
		included, ok := s.included[listing.ID]
		if !ok || included {
			ids = append(ids, listing.ID)
		}
	}
	return ids
}
