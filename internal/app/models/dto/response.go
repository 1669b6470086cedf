package dto

import "time"

// APIResponse is the standard response envelope for all endpoints. Either
// Data or Error is set, never both.
type APIResponse struct {
	Data      interface{}  `json:"data,omitempty"`
	Error     *ErrorDetail `json:"error,omitempty"`
	Timestamp time.Time    `json:"timestamp" example:"2025-04-23T12:01:05.123Z"`
}

// NewDataResponse wraps payload data in the standard envelope.
func NewDataResponse(data interface{}) APIResponse {
	return APIResponse{Data: data, Timestamp: time.Now()}
}

// NewErrorResponse wraps an error detail in the standard envelope.
func NewErrorResponse(detail *ErrorDetail) APIResponse {
	return APIResponse{Error: detail, Timestamp: time.Now()}
}
