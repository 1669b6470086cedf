package models

// CatalogType distinguishes undergraduate and graduate catalog volumes.
type CatalogType string

const (
	CatalogTypeUndergraduate CatalogType = "Undergraduate"
	CatalogTypeGraduate      CatalogType = "Graduate"
)

// CatalogListing represents one catalog year's entry for a course. Many
// listings belong to one Course group; the grouping is computed by the
// upstream pipeline and fixed at load time.
type CatalogListing struct {
	ID            int64       `json:"id"`
	CourseID      int64       `json:"courseId"`
	CatalogYear   int         `json:"catalogYear"`
	CatalogType   CatalogType `json:"catalogType"`
	Code          string      `json:"code"`
	Name          string      `json:"name"`
	Hours         string      `json:"hours,omitempty"`
	SpecificHours string      `json:"specificHours,omitempty"`
	Description   string      `json:"description,omitempty"`
	Prerequisites string      `json:"prerequisites,omitempty"`
	Fees          string      `json:"fees,omitempty"`
	Other         string      `json:"other,omitempty"`
	SourceLink    string      `json:"sourceLink,omitempty"`
}
