package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSelectionService_DefaultsToIncluded(t *testing.T) {
	svc := newTestServices().Selection

	assert.True(t, svc.IsIncluded(10))
	assert.True(t, svc.IsIncluded(11))
	// Even ids the store has never seen default to included.
	assert.True(t, svc.IsIncluded(9999))
}

func TestSelectionService_ToggleFlipsOnlyTarget(t *testing.T) {
	svc := newTestServices().Selection

	assert.False(t, svc.Toggle(10))
	assert.False(t, svc.IsIncluded(10))
	assert.True(t, svc.IsIncluded(11))

	assert.True(t, svc.Toggle(10))
	assert.True(t, svc.IsIncluded(10))
}

func TestSelectionService_SetAll(t *testing.T) {
	svc := newTestServices().Selection

	svc.SetAll([]int64{10, 11}, false)
	assert.False(t, svc.IsIncluded(10))
	assert.False(t, svc.IsIncluded(11))

	svc.SetAll([]int64{10, 11}, true)
	assert.True(t, svc.IsIncluded(10))
	assert.True(t, svc.IsIncluded(11))
}

func TestSelectionService_EnsureDefaultsKeepsExplicitEntries(t *testing.T) {
	svc := newTestServices().Selection

	svc.Toggle(10) // now excluded
	svc.EnsureDefaults([]int64{10, 11})

	assert.False(t, svc.IsIncluded(10), "explicit exclusion must survive default seeding")
	assert.True(t, svc.IsIncluded(11))
}

func TestSelectionService_SelectedListingIDs(t *testing.T) {
	svc := newTestServices().Selection

	// Store order is most recent catalog year first.
	assert.Equal(t, []int64{10, 11}, svc.SelectedListingIDs(1))

	svc.Toggle(10)
	assert.Equal(t, []int64{11}, svc.SelectedListingIDs(1))

	svc.Toggle(11)
	assert.Empty(t, svc.SelectedListingIDs(1))

	assert.Empty(t, svc.SelectedListingIDs(9999), "unknown course has no listings")
}
