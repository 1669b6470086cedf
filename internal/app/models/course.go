package models

// Course represents a grouped course identity spanning possibly many catalog
// years. Code and Name come from the most recent catalog listing in the group.
type Course struct {
	ID   int64  `json:"id"`
	Code string `json:"code"`
	Name string `json:"name"`
}
