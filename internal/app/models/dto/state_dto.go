package dto

// AddCourseRequest adds a course to the displayed list.
type AddCourseRequest struct {
	CourseID int64 `json:"courseId" binding:"required"`
}

// ReorderRequest moves a displayed course from one position to another.
// Positions are zero-based indexes into the displayed list.
type ReorderRequest struct {
	From *int `json:"from" binding:"required"`
	To   *int `json:"to" binding:"required"`
}

// SetActiveRequest activates a course for the timeline view. CourseID 0
// clears the active course. Year and Semesters narrow the offering list;
// when omitted they default to everything relevant for the course.
type SetActiveRequest struct {
	CourseID  int64    `json:"courseId"`
	Year      *int     `json:"year,omitempty"`
	Semesters []string `json:"semesters,omitempty"`
}

// TogglesRequest updates display toggles. Nil fields are left unchanged.
type TogglesRequest struct {
	AutoPin      *bool `json:"autoPin,omitempty"`
	ShowGroups   *bool `json:"showGroups,omitempty"`
	ShowCount    *bool `json:"showCount,omitempty"`
	ShowAllYears *bool `json:"showAllYears,omitempty"`
	GranularView *bool `json:"granularView,omitempty"`
}

// ShareResponse carries the encoded share-state query string.
type ShareResponse struct {
	Query string `json:"query"`
}

// RestoreRequest carries a previously shared query string to restore.
type RestoreRequest struct {
	Query string `json:"query"`
}
