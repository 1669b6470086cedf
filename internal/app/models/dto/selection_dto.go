package dto

// SelectionBulkRequest sets the inclusion flag for a batch of listings in
// one atomic operation.
type SelectionBulkRequest struct {
	ListingIDs []int64 `json:"listingIds" binding:"required"`
	Included   *bool   `json:"included" binding:"required"`
}

// SelectionToggleResponse reports a listing's inclusion flag after a toggle.
type SelectionToggleResponse struct {
	ListingID int64 `json:"listingId"`
	Included  bool  `json:"included"`
}

// SelectionResponse lists the currently included listing ids of a course.
type SelectionResponse struct {
	CourseID   int64   `json:"courseId"`
	ListingIDs []int64 `json:"listingIds"`
}
