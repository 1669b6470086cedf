package repositories

import (
	"sort"

	"github.com/SpecialAgentB3/benwilcox-dev/internal/app/models"
)

// SearchRow is one distinct {code, name, courseId} triple drawn from the
// catalog listings. The search index is built from these rows.
type SearchRow struct {
	Code     string
	Name     string
	CourseID int64
}

// Tables holds the already-parsed dataset handed to NewStore. The loader
// fills it from the snapshot database and the semester-mapping CSV; tests
// fill it with literals.
type Tables struct {
	Courses       []models.Course
	Listings      []models.CatalogListing
	Offerings     []models.Offering
	Faculty       []models.FacultyMember
	SemesterOrder models.SemesterOrder
}

// Store is the immutable in-memory relational store over the dataset. All
// indexes are built once in NewStore; after that every query is O(1) or
// O(k) in the result size. The store is never mutated and is safe for
// concurrent readers.
type Store struct {
	courses   []models.Course
	courseIDs []int64

	coursesByID      map[int64]models.Course
	listingsByID     map[int64]models.CatalogListing
	listingsByCourse map[int64][]models.CatalogListing

	offeringsByListing map[int64][]models.Offering

	facultyByID map[int64]models.FacultyMember

	searchRows []SearchRow

	semesterOrder models.SemesterOrder
}

// NewStore builds the store's indexes from already-parsed tables.
func NewStore(tables Tables) *Store {
	s := &Store{
		courses:            make([]models.Course, len(tables.Courses)),
		coursesByID:        make(map[int64]models.Course, len(tables.Courses)),
		listingsByID:       make(map[int64]models.CatalogListing, len(tables.Listings)),
		listingsByCourse:   make(map[int64][]models.CatalogListing),
		offeringsByListing: make(map[int64][]models.Offering),
		facultyByID:        make(map[int64]models.FacultyMember, len(tables.Faculty)),
		semesterOrder:      tables.SemesterOrder,
	}
	if s.semesterOrder == nil {
		s.semesterOrder = models.SemesterOrder{}
	}

	copy(s.courses, tables.Courses)
	sort.Slice(s.courses, func(i, j int) bool { return s.courses[i].ID < s.courses[j].ID })
	s.courseIDs = make([]int64, len(s.courses))
	for i, course := range s.courses {
		s.courseIDs[i] = course.ID
		s.coursesByID[course.ID] = course
	}

	for _, listing := range tables.Listings {
		s.listingsByID[listing.ID] = listing
		s.listingsByCourse[listing.CourseID] = append(s.listingsByCourse[listing.CourseID], listing)
	}
	// Listings of a course are kept most recent first.
	for courseID := range s.listingsByCourse {
		listings := s.listingsByCourse[courseID]
		sort.Slice(listings, func(i, j int) bool {
			if listings[i].CatalogYear != listings[j].CatalogYear {
				return listings[i].CatalogYear > listings[j].CatalogYear
			}
			return listings[i].ID < listings[j].ID
		})
	}

	for _, offering := range tables.Offerings {
		if offering.CatalogListingID == nil {
			// Unresolved offerings are tolerated but unreachable through the
			// listing joins, matching the relation-absent policy.
			continue
		}
		listingID := *offering.CatalogListingID
		s.offeringsByListing[listingID] = append(s.offeringsByListing[listingID], offering)
	}

	for _, member := range tables.Faculty {
		s.facultyByID[member.ID] = member
	}

	s.searchRows = buildSearchRows(tables.Listings)

	return s
}

// buildSearchRows deduplicates {code, name, courseId} triples across all
// catalog listings, preserving first-seen order.
func buildSearchRows(listings []models.CatalogListing) []SearchRow {
	type rowKey struct {
		code     string
		name     string
		courseID int64
	}

	seen := make(map[rowKey]struct{}, len(listings))
	rows := make([]SearchRow, 0, len(listings))
	for _, listing := range listings {
		key := rowKey{code: listing.Code, name: listing.Name, courseID: listing.CourseID}
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		rows = append(rows, SearchRow{Code: listing.Code, Name: listing.Name, CourseID: listing.CourseID})
	}
	return rows
}

// AllCourses returns every course, ordered by id ascending.
func (s *Store) AllCourses() []models.Course {
	courses := make([]models.Course, len(s.courses))
	copy(courses, s.courses)
	return courses
}

// AllCourseIDs returns every course id, ascending.
func (s *Store) AllCourseIDs() []int64 {
	ids := make([]int64, len(s.courseIDs))
	copy(ids, s.courseIDs)
	return ids
}

// CourseByID looks up a single course.
func (s *Store) CourseByID(id int64) (models.Course, bool) {
	course, ok := s.coursesByID[id]
	return course, ok
}

// ListingsForCourse returns the catalog listings grouped into a course,
// most recent catalog year first. Unknown course ids yield an empty slice.
func (s *Store) ListingsForCourse(courseID int64) []models.CatalogListing {
	stored := s.listingsByCourse[courseID]
	listings := make([]models.CatalogListing, len(stored))
	copy(listings, stored)
	return listings
}

// ListingByID looks up a single catalog listing.
func (s *Store) ListingByID(id int64) (models.CatalogListing, bool) {
	listing, ok := s.listingsByID[id]
	return listing, ok
}

// OfferingsForListings returns every offering owned by the given listings.
// An empty id list yields an empty result.
func (s *Store) OfferingsForListings(listingIDs []int64) []models.Offering {
	var offerings []models.Offering
	for _, listingID := range listingIDs {
		offerings = append(offerings, s.offeringsByListing[listingID]...)
	}
	return offerings
}

// OfferingsForCourse returns every offering of every listing grouped into
// the course, unfiltered by any selection mask.
func (s *Store) OfferingsForCourse(courseID int64) []models.Offering {
	var offerings []models.Offering
	for _, listing := range s.listingsByCourse[courseID] {
		offerings = append(offerings, s.offeringsByListing[listing.ID]...)
	}
	return offerings
}

// OfferingCountForListing returns how many offerings a listing owns.
func (s *Store) OfferingCountForListing(listingID int64) int {
	return len(s.offeringsByListing[listingID])
}

// FacultyByID looks up a faculty member.
func (s *Store) FacultyByID(id int64) (models.FacultyMember, bool) {
	member, ok := s.facultyByID[id]
	return member, ok
}

// DistinctListingSearchRows returns the deduplicated {code, name, courseId}
// rows used to build the search index.
func (s *Store) DistinctListingSearchRows() []SearchRow {
	rows := make([]SearchRow, len(s.searchRows))
	copy(rows, s.searchRows)
	return rows
}

// SemesterOrder returns the specific-semester classification lookup.
func (s *Store) SemesterOrder() models.SemesterOrder {
	return s.semesterOrder
}
