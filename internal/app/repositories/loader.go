package repositories

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/SpecialAgentB3/benwilcox-dev/internal/app/models"
	"github.com/SpecialAgentB3/benwilcox-dev/internal/pkg/apperrors"
	"github.com/SpecialAgentB3/benwilcox-dev/internal/pkg/dberrors"
	"github.com/SpecialAgentB3/benwilcox-dev/internal/pkg/logger"
)

// LoadTables snapshots the four dataset tables from the snapshot database
// produced by the upstream pipeline. Any failure is classified as the
// dataset-unavailable condition: the store must not come up half-loaded.
func LoadTables(ctx context.Context, pool *pgxpool.Pool, semesterMappingPath string) (Tables, error) {
	var tables Tables
	var err error

	if tables.Courses, err = loadCourses(ctx, pool); err != nil {
		return Tables{}, datasetError("courses", err)
	}
	if tables.Listings, err = loadListings(ctx, pool); err != nil {
		return Tables{}, datasetError("catalog listings", err)
	}
	if tables.Offerings, err = loadOfferings(ctx, pool); err != nil {
		return Tables{}, datasetError("offerings", err)
	}
	if tables.Faculty, err = loadFaculty(ctx, pool); err != nil {
		return Tables{}, datasetError("faculty", err)
	}
	if tables.SemesterOrder, err = LoadSemesterMapping(semesterMappingPath); err != nil {
		return Tables{}, datasetError("semester mapping", err)
	}

	logger.Info().
		Int("courses", len(tables.Courses)).
		Int("listings", len(tables.Listings)).
		Int("offerings", len(tables.Offerings)).
		Int("faculty", len(tables.Faculty)).
		Int("semesters", len(tables.SemesterOrder)).
		Msg("Dataset snapshot loaded")

	return tables, nil
}

func datasetError(table string, err error) error {
	if dberrors.IsUndefinedTableError(err) {
		return fmt.Errorf("%w: %s table missing, dataset pipeline has not populated this database", apperrors.ErrDatasetUnavailable, table)
	}
	return fmt.Errorf("%w: loading %s: %w", apperrors.ErrDatasetUnavailable, table, err)
}

func loadCourses(ctx context.Context, pool *pgxpool.Pool) ([]models.Course, error) {
	query := `
		SELECT main_course_id, course_code, course_name
		FROM main_courses
		ORDER BY main_course_id
	`

	rows, err := pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var courses []models.Course
	for rows.Next() {
		var course models.Course
		if err := rows.Scan(&course.ID, &course.Code, &course.Name); err != nil {
			return nil, err
		}
		courses = append(courses, course)
	}

	return courses, rows.Err()
}

func loadListings(ctx context.Context, pool *pgxpool.Pool) ([]models.CatalogListing, error) {
	query := `
		SELECT main_catalog_id, main_course_id, catalog_year, catalog_type,
		       course_code, course_name, course_hours, course_specific_hours,
		       course_description, course_prerequisites, course_fees,
		       course_other, course_link
		FROM all_catalog
	`

	rows, err := pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var listings []models.CatalogListing
	for rows.Next() {
		var listing models.CatalogListing
		var catalogType string
		var hours, specificHours, description, prerequisites, fees, other, link *string
		if err := rows.Scan(
			&listing.ID,
			&listing.CourseID,
			&listing.CatalogYear,
			&catalogType,
			&listing.Code,
			&listing.Name,
			&hours,
			&specificHours,
			&description,
			&prerequisites,
			&fees,
			&other,
			&link,
		); err != nil {
			return nil, err
		}
		listing.CatalogType = models.CatalogType(catalogType)
		listing.Hours = deref(hours)
		listing.SpecificHours = deref(specificHours)
		listing.Description = deref(description)
		listing.Prerequisites = deref(prerequisites)
		listing.Fees = deref(fees)
		listing.Other = deref(other)
		listing.SourceLink = deref(link)
		listings = append(listings, listing)
	}

	return listings, rows.Err()
}

func loadOfferings(ctx context.Context, pool *pgxpool.Pool) ([]models.Offering, error) {
	query := `
		SELECT main_offer_id, main_catalog_id, main_faculty_id, year,
		       broad_semester, specific_semester, full_course_name,
		       link_to_highlight
		FROM all_offerings
	`

	rows, err := pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var offerings []models.Offering
	for rows.Next() {
		var offering models.Offering
		var broad string
		var link *string
		if err := rows.Scan(
			&offering.ID,
			&offering.CatalogListingID,
			&offering.FacultyID,
			&offering.Year,
			&broad,
			&offering.SpecificSemester,
			&offering.FullCourseName,
			&link,
		); err != nil {
			return nil, err
		}
		offering.BroadSemester = models.BroadSemester(broad)
		offering.SourceLink = deref(link)
		offerings = append(offerings, offering)
	}

	return offerings, rows.Err()
}

func loadFaculty(ctx context.Context, pool *pgxpool.Pool) ([]models.FacultyMember, error) {
	query := `
		SELECT main_faculty_id, faculty_name, faculty_title,
		       faculty_department, faculty_college, faculty_link
		FROM faculty
	`

	rows, err := pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var members []models.FacultyMember
	for rows.Next() {
		var member models.FacultyMember
		var title, department, college, link *string
		if err := rows.Scan(&member.ID, &member.Name, &title, &department, &college, &link); err != nil {
			return nil, err
		}
		member.Title = deref(title)
		member.Department = deref(department)
		member.College = deref(college)
		member.ProfileLink = deref(link)
		members = append(members, member)
	}

	return members, rows.Err()
}

// LoadSemesterMapping parses the side CSV mapping specific semesters to
// their broad semester and within-year ordinal. Expected header columns:
// "Specific Semester", "Broad Semester", "Semester Order" (any order).
// Rows with a malformed ordinal are skipped with a warning; the unmapped
// semester then falls back to alphabetical ordering downstream.
func LoadSemesterMapping(path string) (models.SemesterOrder, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open semester mapping: %w", err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("failed to read semester mapping header: %w", err)
	}

	columns := make(map[string]int, len(header))
	for i, name := range header {
		columns[strings.TrimSpace(name)] = i
	}
	specificCol, okSpecific := columns["Specific Semester"]
	broadCol, okBroad := columns["Broad Semester"]
	orderCol, okOrder := columns["Semester Order"]
	if !okSpecific || !okBroad || !okOrder {
		return nil, fmt.Errorf("semester mapping header missing required columns, got %v", header)
	}

	mapping := models.SemesterOrder{}
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read semester mapping row: %w", err)
		}

		specific := strings.TrimSpace(record[specificCol])
		if specific == "" {
			continue
		}

		ordinal, err := strconv.Atoi(strings.TrimSpace(record[orderCol]))
		if err != nil {
			logger.Warn().Str("semester", specific).Msg("Skipping semester mapping row with malformed ordinal")
			continue
		}

		mapping[specific] = models.SemesterKey{
			Broad:   models.BroadSemester(strings.TrimSpace(record[broadCol])),
			Ordinal: ordinal,
		}
	}

	return mapping, nil
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
