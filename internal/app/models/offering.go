package models

// Offering represents one instance of a course actually taught in a specific
// term. CatalogListingID and FacultyID are nullable: an offering may never
// have been resolved to a catalog listing, and an offering without a faculty
// member is displayed as "Staff".
type Offering struct {
	ID               int64         `json:"id"`
	CatalogListingID *int64        `json:"catalogListingId,omitempty"`
	FacultyID        *int64        `json:"facultyId,omitempty"`
	Year             int           `json:"year"`
	BroadSemester    BroadSemester `json:"broadSemester"`
	SpecificSemester string        `json:"specificSemester"`
	FullCourseName   string        `json:"fullCourseName"`
	SourceLink       string        `json:"sourceLink,omitempty"`
}
