package services

import (
	"github.com/SpecialAgentB3/benwilcox-dev/internal/app/models"
	"github.com/SpecialAgentB3/benwilcox-dev/internal/app/repositories"
)

const testCurrentYear = 2025

func int64p(v int64) *int64 { return &v }
func intp(v int) *int       { return &v }
func boolp(v bool) *bool    { return &v }

// newTestStore builds a small three-course dataset exercising the edge
// cases the services care about: a course spanning two catalog listings, an
// offering with no faculty, an orphan offering with no listing, and a
// specific semester missing from the semester mapping.
func newTestStore() *repositories.Store {
	return repositories.NewStore(repositories.Tables{
		Courses: []models.Course{
			{ID: 1, Code: "CSCE 4010", Name: "Data Structures"},
			{ID: 2, Code: "MATH 1500", Name: "Calculus I"},
			{ID: 3, Code: "HIST 2300", Name: "World History"},
		},
		Listings: []models.CatalogListing{
			{ID: 10, CourseID: 1, CatalogYear: 2022, CatalogType: models.CatalogTypeUndergraduate, Code: "CSCE 4010", Name: "Data Structures"},
			{ID: 11, CourseID: 1, CatalogYear: 2015, CatalogType: models.CatalogTypeUndergraduate, Code: "CSCE 4010", Name: "Data Structures - Algorithms"},
			{ID: 20, CourseID: 2, CatalogYear: 2020, CatalogType: models.CatalogTypeUndergraduate, Code: "MATH 1500", Name: "Calculus I"},
			{ID: 30, CourseID: 3, CatalogYear: 2011, CatalogType: models.CatalogTypeUndergraduate, Code: "HIST 2300", Name: "World History"},
		},
		Offerings: []models.Offering{
			{ID: 100, CatalogListingID: int64p(10), FacultyID: int64p(500), Year: 2020, BroadSemester: models.SemesterFall, SpecificSemester: "Fall 1", FullCourseName: "CSCE 4010 Data Structures"},
			{ID: 101, CatalogListingID: int64p(10), Year: 2020, BroadSemester: models.SemesterFall, SpecificSemester: "Fall 2", FullCourseName: "CSCE 4010 Data Structures"},
			{ID: 102, CatalogListingID: int64p(10), Year: 2019, BroadSemester: models.SemesterSpring, SpecificSemester: "Spring", FullCourseName: "CSCE 4010 Data Structures"},
			{ID: 103, CatalogListingID: int64p(11), Year: 2015, BroadSemester: models.SemesterFall, SpecificSemester: "Fall 1", FullCourseName: "CSCE 4010 Data Structures and Algorithms"},
			{ID: 104, CatalogListingID: int64p(20), Year: 2021, BroadSemester: models.SemesterSummer, SpecificSemester: "Summer 1", FullCourseName: "MATH 1500 Calculus I"},
			{ID: 105, Year: 2018, BroadSemester: models.SemesterFall, SpecificSemester: "Fall 1", FullCourseName: "Orphan offering"},
			{ID: 106, CatalogListingID: int64p(10), Year: 2020, BroadSemester: models.SemesterFall, SpecificSemester: "Fall Flex", FullCourseName: "CSCE 4010 Data Structures"},
		},
		Faculty: []models.FacultyMember{
			{ID: 500, Name: "Jane Roe", Title: "Professor", ProfileLink: "https://faculty.example.edu/jroe"},
		},
		SemesterOrder: models.SemesterOrder{
			"Fall 1":   {Broad: models.SemesterFall, Ordinal: 1},
			"Fall 2":   {Broad: models.SemesterFall, Ordinal: 2},
			"Spring":   {Broad: models.SemesterSpring, Ordinal: 1},
			"Summer 1": {Broad: models.SemesterSummer, Ordinal: 1},
		},
	})
}

func newTestServices() *Services {
	return NewServices(newTestStore(), testCurrentYear)
}
