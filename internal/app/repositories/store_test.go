package repositories

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SpecialAgentB3/benwilcox-dev/internal/app/models"
)

func listingID(v int64) *int64 { return &v }

func testTables() Tables {
	return Tables{
		Courses: []models.Course{
			{ID: 3, Code: "HIST 2300", Name: "World History"},
			{ID: 1, Code: "CSCE 4010", Name: "Data Structures"},
			{ID: 2, Code: "MATH 1500", Name: "Calculus I"},
		},
		Listings: []models.CatalogListing{
			{ID: 11, CourseID: 1, CatalogYear: 2015, Code: "CSCE 4010", Name: "Data Structures"},
			{ID: 10, CourseID: 1, CatalogYear: 2022, Code: "CSCE 4010", Name: "Data Structures"},
			{ID: 12, CourseID: 1, CatalogYear: 2022, Code: "CSCE 4010", Name: "Data Structures"},
			{ID: 20, CourseID: 2, CatalogYear: 2020, Code: "MATH 1500", Name: "Calculus I"},
		},
		Offerings: []models.Offering{
			{ID: 100, CatalogListingID: listingID(10), Year: 2020, BroadSemester: models.SemesterFall, SpecificSemester: "Fall 1"},
			{ID: 101, CatalogListingID: listingID(10), Year: 2019, BroadSemester: models.SemesterSpring, SpecificSemester: "Spring"},
			{ID: 102, CatalogListingID: listingID(11), Year: 2015, BroadSemester: models.SemesterFall, SpecificSemester: "Fall 1"},
			{ID: 103, Year: 2018, BroadSemester: models.SemesterFall, SpecificSemester: "Fall 1"},
		},
		Faculty: []models.FacultyMember{
			{ID: 500, Name: "Jane Roe"},
		},
	}
}

func TestNewStore_CourseOrdering(t *testing.T) {
	store := NewStore(testTables())

	assert.Equal(t, []int64{1, 2, 3}, store.AllCourseIDs(), "courses are sorted by id regardless of input order")

	courses := store.AllCourses()
	require.Len(t, courses, 3)
	assert.Equal(t, "Data Structures", courses[0].Name)

	course, ok := store.CourseByID(2)
	require.True(t, ok)
	assert.Equal(t, "MATH 1500", course.Code)

	_, ok = store.CourseByID(9999)
	assert.False(t, ok)
}

func TestStore_ListingsForCourse(t *testing.T) {
	store := NewStore(testTables())

	listings := store.ListingsForCourse(1)
	require.Len(t, listings, 3)
	// Most recent catalog year first, id ascending within a year.
	assert.Equal(t, int64(10), listings[0].ID)
	assert.Equal(t, int64(12), listings[1].ID)
	assert.Equal(t, int64(11), listings[2].ID)

	assert.Empty(t, store.ListingsForCourse(9999))
}

func TestStore_OfferingJoins(t *testing.T) {
	store := NewStore(testTables())

	offerings := store.OfferingsForCourse(1)
	ids := make([]int64, len(offerings))
	for i, offering := range offerings {
		ids[i] = offering.ID
	}
	assert.ElementsMatch(t, []int64{100, 101, 102}, ids, "the orphan offering is unreachable")

	assert.Equal(t, 2, store.OfferingCountForListing(10))
	assert.Equal(t, 0, store.OfferingCountForListing(12))

	byListings := store.OfferingsForListings([]int64{11})
	require.Len(t, byListings, 1)
	assert.Equal(t, int64(102), byListings[0].ID)

	assert.Empty(t, store.OfferingsForListings(nil))
}

func TestStore_DistinctListingSearchRows(t *testing.T) {
	store := NewStore(testTables())

	rows := store.DistinctListingSearchRows()
	// Three identical course 1 listings collapse into one row.
	require.Len(t, rows, 2)
	assert.Equal(t, SearchRow{Code: "CSCE 4010", Name: "Data Structures", CourseID: 1}, rows[0])
	assert.Equal(t, SearchRow{Code: "MATH 1500", Name: "Calculus I", CourseID: 2}, rows[1])
}

func TestStore_QueriesReturnCopies(t *testing.T) {
	store := NewStore(testTables())

	listings := store.ListingsForCourse(1)
	listings[0].Name = "mutated"
	assert.Equal(t, "Data Structures", store.ListingsForCourse(1)[0].Name)

	ids := store.AllCourseIDs()
	ids[0] = 9999
	assert.Equal(t, int64(1), store.AllCourseIDs()[0])
}

func TestNewStore_NilSemesterOrder(t *testing.T) {
	store := NewStore(Tables{})

	require.NotNil(t, store.SemesterOrder())
	assert.Empty(t, store.AllCourseIDs())
}
