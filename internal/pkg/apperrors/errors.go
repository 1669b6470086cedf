package apperrors

import (
	"errors"
	"fmt"
)

// Common errors
var (
	// Resource errors
	ErrResourceNotFound = errors.New("resource not found")

	// Validation errors
	ErrValidationFailed = errors.New("validation failed")
	ErrBadRequest       = errors.New("bad request")
)

// Dataset errors
var (
	// ErrDatasetUnavailable gates every other operation: it is returned when
	// the backing dataset could not be loaded or parsed at startup.
	ErrDatasetUnavailable = errors.New("dataset unavailable")
)

// Catalog errors
var (
	ErrCourseNotFound  = errors.New("course not found")
	ErrListingNotFound = errors.New("catalog listing not found")
)

// Export errors
var (
	ErrUnsupportedExportFormat = errors.New("unsupported export format")
)

// CustomError attaches a human-readable message to a sentinel error so the
// cause stays matchable with errors.Is.
type CustomError struct {
	Err     error
	Message string
}

// Error implements the error interface
func (e *CustomError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Message)
	}
	return e.Err.Error()
}

// Unwrap returns the wrapped sentinel error
func (e *CustomError) Unwrap() error {
	return e.Err
}

// NewResourceNotFoundError creates a new custom error for resource not found with a message
func NewResourceNotFoundError(message string) error {
	return &CustomError{
		Err:     ErrResourceNotFound,
		Message: message,
	}
}

// NewBadRequestError creates a new custom error for bad request with a message
func NewBadRequestError(message string) error {
	return &CustomError{
		Err:     ErrBadRequest,
		Message: message,
	}
}
