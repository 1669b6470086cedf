package services

import (
	"sort"

	"github.com/SpecialAgentB3/benwilcox-dev/internal/app/models"
	"github.com/SpecialAgentB3/benwilcox-dev/internal/app/repositories"
	"github.com/SpecialAgentB3/benwilcox-dev/internal/pkg/metrics"
)

// pre2011Boundary is the last catalog year with no scraped source data;
// years at or below it are classified pre2011 in the occupancy matrix.
const pre2011Boundary = 2010

// staffName is displayed for offerings without a resolved faculty member.
const staffName = "Staff"

// YearClassification tags an occupancy matrix row.
type YearClassification string

const (
	YearListed   YearClassification = "listed"
	YearUnlisted YearClassification = "unlisted"
	YearPre2011  YearClassification = "pre2011"
)

// CourseStats summarizes a course under the current selection mask.
type CourseStats struct {
	YearsListed    int                          `json:"yearsListed"`
	TotalOfferings int                          `json:"totalOfferings"`
	SemesterTotals map[models.BroadSemester]int `json:"semesterTotals"`
}

// CourseDetail is the detail-panel view: the most recent selected listing's
// full record plus the selection-masked statistics.
type CourseDetail struct {
	Course  models.Course          `json:"course"`
	Listing *models.CatalogListing `json:"listing,omitempty"`
	Stats   CourseStats            `json:"stats"`
}

// ListingRow is one row of the group-selector view.
type ListingRow struct {
	models.CatalogListing
	OfferingCount int  `json:"offeringCount"`
	Included      bool `json:"included"`
}

// SpecificCell is one sub-bar of the granular view.
type SpecificCell struct {
	Semester string `json:"semester"`
	Count    int    `json:"count"`
}

// SemesterCell is one broad-semester cell of an occupancy matrix row. Its
// Specifics always cover the course's full semester shape for that broad
// semester, including zero-count entries, so the granular view renders a
// stable set of sub-bars.
type SemesterCell struct {
	Broad     models.BroadSemester `json:"broadSemester"`
	Count     int                  `json:"count"`
	Specifics []SpecificCell       `json:"specifics"`
}

// YearRow is one year of the occupancy matrix.
type YearRow struct {
	Year           int                `json:"year"`
	Classification YearClassification `json:"classification"`
	Cells          []SemesterCell     `json:"cells"`
}

// OccupancyMatrix is the year-by-semester timeline view for one course.
type OccupancyMatrix struct {
	Years []YearRow                         `json:"years"`
	Shape map[models.BroadSemester][]string `json:"shape"`
}

// OfferingView is an offering decorated for display: faculty resolved (or
// "Staff"), and the owning listing's name when the relation resolves.
type OfferingView struct {
	models.Offering
	FacultyName string `json:"facultyName"`
	FacultyLink string `json:"facultyLink,omitempty"`
	ListingName string `json:"listingName,omitempty"`
}

// OfferingFilter restricts the detail offering list. Nil slices mean no
// restriction on that axis.
type OfferingFilter struct {
	Years     []int
	Semesters []string
}

// AggregationService computes every derived view for a course under the
// current selection mask. All computations are pure reads over the
// immutable store and the mask; identical inputs always produce identical
// outputs. The current-year bound is a fixed configured constant, never
// wall clock. An unknown course id yields empty views rather than an error.
type AggregationService struct {
	store       *repositories.Store
	selection   *SelectionService
	currentYear int
}

// NewAggregationService creates the aggregation engine.
func NewAggregationService(store *repositories.Store, selection *SelectionService, currentYear int) *AggregationService {
	return &AggregationService{
		store:       store,
		selection:   selection,
		currentYear: currentYear,
	}
}

// effectiveOfferings resolves the course's selected listings and their
// offerings. An empty selection yields empty results, not an error.
func (s *AggregationService) effectiveOfferings(courseID int64) ([]int64, []models.Offering) {
	listingIDs := s.selection.SelectedListingIDs(courseID)
	return listingIDs, s.store.OfferingsForListings(listingIDs)
}

// Stats computes the summary statistics for a course under the current mask.
func (s *AggregationService) Stats(courseID int64) CourseStats {
	metrics.CountAggregation("stats")

	listingIDs, offerings := s.effectiveOfferings(courseID)

	totals := make(map[models.BroadSemester]int, len(models.BroadSemesters))
	for _, broad := range models.BroadSemesters {
		totals[broad] = 0
	}
	for _, offering := range offerings {
		totals[offering.BroadSemester]++
	}

	return CourseStats{
		YearsListed:    len(listingIDs),
		TotalOfferings: len(offerings),
		SemesterTotals: totals,
	}
}

// Detail returns the course's detail view: the most recent selected catalog
// listing plus masked statistics. With every listing deselected the listing
// is nil and the stats are zeroed.
func (s *AggregationService) Detail(courseID int64) CourseDetail {
	detail := CourseDetail{Stats: s.Stats(courseID)}
	if course, ok := s.store.CourseByID(courseID); ok {
		detail.Course = course
	}

	// Store order is catalog year descending, so the first selected listing
	// is the most recent one.
	for _, listing := range s.store.ListingsForCourse(courseID) {
		if s.selection.IsIncluded(listing.ID) {
			l := listing
			detail.Listing = &l
			break
		}
	}
	return detail
}

// ListingRows returns the group-selector rows for a course: every listing
// with its offering count and current inclusion flag, most recent catalog
// year first. Observing the rows creates default mask entries for listings
// seen for the first time.
func (s *AggregationService) ListingRows(courseID int64) []ListingRow {
	metrics.CountAggregation("listings")

	listings := s.store.ListingsForCourse(courseID)

	ids := make([]int64, len(listings))
	for i, listing := range listings {
		ids[i] = listing.ID
	}
	s.selection.EnsureDefaults(ids)

	rows := make([]ListingRow, len(listings))
	for i, listing := range listings {
		rows[i] = ListingRow{
			CatalogListing: listing,
			OfferingCount:  s.store.OfferingCountForListing(listing.ID),
			Included:       s.selection.IsIncluded(listing.ID),
		}
	}
	return rows
}

// SemesterShape returns the course's stable granular-view shape: the
// distinct specific semesters observed across ALL of the course's
// offerings, independent of the mask, grouped by broad semester and
// ordered by the semester-order ordinal with alphabetical fallback.
func (s *AggregationService) SemesterShape(courseID int64) map[models.BroadSemester][]string {
	order := s.store.SemesterOrder()

	shape := make(map[models.BroadSemester][]string, len(models.BroadSemesters))
	seen := make(map[models.BroadSemester]map[string]struct{}, len(models.BroadSemesters))
	for _, broad := range models.BroadSemesters {
		shape[broad] = []string{}
		seen[broad] = make(map[string]struct{})
	}

	for _, offering := range s.store.OfferingsForCourse(courseID) {
		broad := offering.BroadSemester
		if _, ok := shape[broad]; !ok {
			continue
		}
		if _, ok := seen[broad][offering.SpecificSemester]; ok {
			continue
		}
		seen[broad][offering.SpecificSemester] = struct{}{}
		shape[broad] = append(shape[broad], offering.SpecificSemester)
	}

	for _, broad := range models.BroadSemesters {
		specifics := shape[broad]
		sort.SliceStable(specifics, func(i, j int) bool {
			return order.Compare(specifics[i], specifics[j]) < 0
		})
	}

	return shape
}

// Matrix computes the occupancy matrix for a course: one row per year,
// descending, with per-broad and per-specific offering counts from the
// selection-masked offerings. With showAllYears the range runs from one
// year before the earliest catalog or offering year up to the configured
// current year; otherwise only years with at least one effective offering
// appear.
func (s *AggregationService) Matrix(courseID int64, showAllYears bool) OccupancyMatrix {
	metrics.CountAggregation("matrix")

	shape := s.SemesterShape(courseID)
	listingIDs, offerings := s.effectiveOfferings(courseID)

	listedYears := make(map[int]struct{}, len(listingIDs))
	for _, listingID := range listingIDs {
		if listing, ok := s.store.ListingByID(listingID); ok {
			listedYears[listing.CatalogYear] = struct{}{}
		}
	}

	offeringYears := make(map[int]struct{})
	for _, offering := range offerings {
		offeringYears[offering.Year] = struct{}{}
	}

	years := matrixYears(listedYears, offeringYears, showAllYears, s.currentYear)

	rows := make([]YearRow, 0, len(years))
	for _, year := range years {
		row := YearRow{Year: year, Classification: classifyYear(year, listedYears, offeringYears)}
		for _, broad := range models.BroadSemesters {
			cell := SemesterCell{Broad: broad}
			for _, specific := range shape[broad] {
				count := 0
				for _, offering := range offerings {
					if offering.Year == year && offering.BroadSemester == broad && offering.SpecificSemester == specific {
						count++
					}
				}
				cell.Count += count
				cell.Specifics = append(cell.Specifics, SpecificCell{Semester: specific, Count: count})
			}
			row.Cells = append(row.Cells, cell)
		}
		rows = append(rows, row)
	}

	return OccupancyMatrix{Years: rows, Shape: shape}
}

// matrixYears produces the descending year range for the matrix.
func matrixYears(listedYears, offeringYears map[int]struct{}, showAllYears bool, currentYear int) []int {
	if !showAllYears {
		years := make([]int, 0, len(offeringYears))
		for year := range offeringYears {
			years = append(years, year)
		}
		sort.Sort(sort.Reverse(sort.IntSlice(years)))
		return years
	}

	if len(listedYears) == 0 && len(offeringYears) == 0 {
		return nil
	}

	earliest := 0
	for year := range listedYears {
		if earliest == 0 || year < earliest {
			earliest = year
		}
	}
	for year := range offeringYears {
		if earliest == 0 || year < earliest {
			earliest = year
		}
	}
	earliest--

	years := make([]int, 0, currentYear-earliest+1)
	for year := currentYear; year >= earliest; year-- {
		years = append(years, year)
	}
	return years
}

// classifyYear tags a matrix row. Years at or below the pre-2011 boundary
// are always pre2011 regardless of listing or offering presence.
func classifyYear(year int, listedYears, offeringYears map[int]struct{}) YearClassification {
	if year <= pre2011Boundary {
		return YearPre2011
	}
	if _, ok := listedYears[year]; ok {
		return YearListed
	}
	if _, ok := offeringYears[year]; ok {
		return YearListed
	}
	return YearUnlisted
}

// Offerings returns the course's selection-masked offerings restricted by
// the filter, sorted for display, and decorated with faculty and listing
// information.
func (s *AggregationService) Offerings(courseID int64, filter OfferingFilter) []OfferingView {
	metrics.CountAggregation("offerings")

	_, offerings := s.effectiveOfferings(courseID)

	if filter.Years != nil {
		wanted := make(map[int]struct{}, len(filter.Years))
		for _, year := range filter.Years {
			wanted[year] = struct{}{}
		}
		offerings = filterOfferings(offerings, func(o models.Offering) bool {
			_, ok := wanted[o.Year]
			return ok
		})
	}

	if filter.Semesters != nil {
		wanted := make(map[string]struct{}, len(filter.Semesters))
		for _, semester := range filter.Semesters {
			wanted[semester] = struct{}{}
		}
		offerings = filterOfferings(offerings, func(o models.Offering) bool {
			_, ok := wanted[o.SpecificSemester]
			return ok
		})
	}

	sortOfferings(offerings, s.store.SemesterOrder())

	views := make([]OfferingView, 0, len(offerings))
	for _, offering := range offerings {
		views = append(views, s.decorate(offering))
	}
	return views
}

func filterOfferings(offerings []models.Offering, keep func(models.Offering) bool) []models.Offering {
	filtered := offerings[:0:0]
	for _, offering := range offerings {
		if keep(offering) {
			filtered = append(filtered, offering)
		}
	}
	return filtered
}

// sortOfferings orders offerings by year descending, then by the
// semester-order ordinal ascending within a year. Unmapped specific
// semesters sort after mapped ones, alphabetically among themselves;
// remaining ties fall back to offering id for determinism.
func sortOfferings(offerings []models.Offering, order models.SemesterOrder) {
	sort.SliceStable(offerings, func(i, j int) bool {
		if offerings[i].Year != offerings[j].Year {
			return offerings[i].Year > offerings[j].Year
		}
		if cmp := order.Compare(offerings[i].SpecificSemester, offerings[j].SpecificSemester); cmp != 0 {
			return cmp < 0
		}
		return offerings[i].ID < offerings[j].ID
	})
}

// decorate resolves an offering's faculty and owning listing, tolerating
// unresolved foreign keys by treating the relation as absent.
func (s *AggregationService) decorate(offering models.Offering) OfferingView {
	view := OfferingView{Offering: offering, FacultyName: staffName}

	if offering.FacultyID != nil {
		if member, ok := s.store.FacultyByID(*offering.FacultyID); ok {
			view.FacultyName = member.Name
			view.FacultyLink = member.ProfileLink
		}
	}
	if offering.CatalogListingID != nil {
		if listing, ok := s.store.ListingByID(*offering.CatalogListingID); ok {
			view.ListingName = listing.Name
		}
	}
	return view
}

// RelevantYears returns the distinct years, descending, in which any of the
// course's offerings (unfiltered by mask) occur. Used to default the active
// year filter when a course is activated.
func (s *AggregationService) RelevantYears(courseID int64) []int {
	seen := make(map[int]struct{})
	for _, offering := range s.store.OfferingsForCourse(courseID) {
		seen[offering.Year] = struct{}{}
	}
	years := make([]int, 0, len(seen))
	for year := range seen {
		years = append(years, year)
	}
	sort.Sort(sort.Reverse(sort.IntSlice(years)))
	return years
}

// RelevantSemesters returns the distinct specific semesters of the course's
// offerings (unfiltered by mask), ordered by the semester-order lookup.
func (s *AggregationService) RelevantSemesters(courseID int64) []string {
	order := s.store.SemesterOrder()

	seen := make(map[string]struct{})
	var semesters []string
	for _, offering := range s.store.OfferingsForCourse(courseID) {
		if _, ok := seen[offering.SpecificSemester]; ok {
			continue
		}
		seen[offering.SpecificSemester] = struct{}{}
		semesters = append(semesters, offering.SpecificSemester)
	}
	sort.SliceStable(semesters, func(i, j int) bool {
		return order.Compare(semesters[i], semesters[j]) < 0
	})
	return semesters
}
