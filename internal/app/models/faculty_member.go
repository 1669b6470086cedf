package models

// FacultyMember represents an instructor from the faculty roster.
type FacultyMember struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Title       string `json:"title,omitempty"`
	Department  string `json:"department,omitempty"`
	College     string `json:"college,omitempty"`
	ProfileLink string `json:"profileLink,omitempty"`
}
