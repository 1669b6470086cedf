package services

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SpecialAgentB3/benwilcox-dev/internal/pkg/apperrors"
)

func displayedIDs(snapshot SessionSnapshot) []int64 {
	ids := make([]int64, len(snapshot.Displayed))
	for i, course := range snapshot.Displayed {
		ids[i] = course.ID
	}
	return ids
}

func pinnedIDs(snapshot SessionSnapshot) []int64 {
	ids := make([]int64, len(snapshot.Pinned))
	for i, course := range snapshot.Pinned {
		ids[i] = course.ID
	}
	return ids
}

func TestSessionService_AddCourse(t *testing.T) {
	svcs := newTestServices()

	require.NoError(t, svcs.Session.AddCourse(1))
	snapshot := svcs.Session.Snapshot()

	assert.Equal(t, []int64{1}, displayedIDs(snapshot))
	assert.Equal(t, []int64{1}, pinnedIDs(snapshot), "auto-pin is on by default")
	require.NotNil(t, snapshot.Active)
	assert.Equal(t, int64(1), snapshot.Active.ID)
	assert.Equal(t, []int{2020, 2019, 2015}, snapshot.ActiveYears)
	assert.Equal(t, []string{"Fall 1", "Spring", "Fall 2", "Fall Flex"}, snapshot.ActiveSemesters)

	// Re-adding is a no-op.
	require.NoError(t, svcs.Session.AddCourse(1))
	assert.Equal(t, []int64{1}, displayedIDs(svcs.Session.Snapshot()))
}

func TestSessionService_AddCourseWithAutoPinOff(t *testing.T) {
	svcs := newTestServices()

	svcs.Session.SetToggles(boolp(false), nil, nil, nil, nil)
	require.NoError(t, svcs.Session.AddCourse(2))

	snapshot := svcs.Session.Snapshot()
	assert.Equal(t, []int64{2}, displayedIDs(snapshot))
	assert.Empty(t, pinnedIDs(snapshot))
}

func TestSessionService_AddCourseUnknown(t *testing.T) {
	svcs := newTestServices()

	err := svcs.Session.AddCourse(9999)
	assert.ErrorIs(t, err, apperrors.ErrCourseNotFound)
	assert.Empty(t, displayedIDs(svcs.Session.Snapshot()))
}

func TestSessionService_RemoveCourse(t *testing.T) {
	svcs := newTestServices()
	require.NoError(t, svcs.Session.AddCourse(1))
	require.NoError(t, svcs.Session.AddCourse(2))

	svcs.Session.RemoveCourse(2)
	snapshot := svcs.Session.Snapshot()

	assert.Equal(t, []int64{1}, displayedIDs(snapshot))
	assert.Nil(t, snapshot.Active, "removing the active course clears it")
	assert.Equal(t, []int64{1, 2}, pinnedIDs(snapshot), "pins are untouched")
}

func TestSessionService_TogglePin(t *testing.T) {
	svcs := newTestServices()
	svcs.Session.SetToggles(boolp(false), nil, nil, nil, nil)
	require.NoError(t, svcs.Session.AddCourse(1))

	require.NoError(t, svcs.Session.TogglePin(1))
	assert.Equal(t, []int64{1}, pinnedIDs(svcs.Session.Snapshot()))

	require.NoError(t, svcs.Session.TogglePin(1))
	assert.Empty(t, pinnedIDs(svcs.Session.Snapshot()))

	assert.ErrorIs(t, svcs.Session.TogglePin(9999), apperrors.ErrCourseNotFound)
}

func TestSessionService_Reorder(t *testing.T) {
	svcs := newTestServices()
	for _, id := range []int64{1, 2, 3} {
		require.NoError(t, svcs.Session.AddCourse(id))
	}

	require.NoError(t, svcs.Session.Reorder(0, 2))
	assert.Equal(t, []int64{2, 3, 1}, displayedIDs(svcs.Session.Snapshot()))

	require.NoError(t, svcs.Session.Reorder(2, 0))
	assert.Equal(t, []int64{1, 2, 3}, displayedIDs(svcs.Session.Snapshot()))

	assert.Error(t, svcs.Session.Reorder(0, 3))
	assert.Error(t, svcs.Session.Reorder(-1, 0))
}

func TestSessionService_SetActive(t *testing.T) {
	svcs := newTestServices()
	require.NoError(t, svcs.Session.AddCourse(1))

	// Explicit filters override the defaults.
	require.NoError(t, svcs.Session.SetActive(1, intp(2020), []string{"Fall 1"}))
	snapshot := svcs.Session.Snapshot()
	assert.Equal(t, []int{2020}, snapshot.ActiveYears)
	assert.Equal(t, []string{"Fall 1"}, snapshot.ActiveSemesters)

	// Zero clears the active course and its filters.
	require.NoError(t, svcs.Session.SetActive(0, nil, nil))
	snapshot = svcs.Session.Snapshot()
	assert.Nil(t, snapshot.Active)
	assert.Empty(t, snapshot.ActiveYears)
	assert.Empty(t, snapshot.ActiveSemesters)

	assert.ErrorIs(t, svcs.Session.SetActive(9999, nil, nil), apperrors.ErrCourseNotFound)
}

func TestSessionService_ShareRestoreRoundTrip(t *testing.T) {
	source := newTestServices()
	source.Session.SetToggles(nil, boolp(true), nil, nil, boolp(true))
	require.NoError(t, source.Session.AddCourse(1))
	require.NoError(t, source.Session.AddCourse(3))
	require.NoError(t, source.Session.TogglePin(3)) // unpin 3 again

	query := source.Session.Share()

	values, err := url.ParseQuery(query)
	require.NoError(t, err)

	restored := newTestServices()
	restored.Session.Restore(values)
	snapshot := restored.Session.Snapshot()

	assert.True(t, snapshot.ShowGroups)
	assert.True(t, snapshot.GranularView)
	assert.Equal(t, []int64{1, 3}, displayedIDs(snapshot))
	assert.Equal(t, []int64{1}, pinnedIDs(snapshot))
	require.NotNil(t, snapshot.Active)
	assert.Equal(t, int64(3), snapshot.Active.ID)
}

func TestSessionService_RestoreActivatesWithDefaults(t *testing.T) {
	svcs := newTestServices()

	values, err := url.ParseQuery("courses=1&active=1")
	require.NoError(t, err)
	svcs.Session.Restore(values)

	snapshot := svcs.Session.Snapshot()
	assert.Equal(t, []int{2020, 2019, 2015}, snapshot.ActiveYears)
	assert.Equal(t, []string{"Fall 1", "Spring", "Fall 2", "Fall Flex"}, snapshot.ActiveSemesters)
}

func TestSessionService_RestoreDropsUnknownCourses(t *testing.T) {
	svcs := newTestServices()
	require.NoError(t, svcs.Session.AddCourse(2))

	values, err := url.ParseQuery("courses=1,9999&pinned=9999")
	require.NoError(t, err)
	svcs.Session.Restore(values)

	snapshot := svcs.Session.Snapshot()
	assert.Equal(t, []int64{1}, displayedIDs(snapshot), "restore replaces the whole session")
	assert.Empty(t, pinnedIDs(snapshot))
	assert.Nil(t, snapshot.Active)
}
