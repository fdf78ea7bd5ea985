// Package errors provides a lightweight structured error type (SiteError)
// for category-based classification of generator failures and their CLI
// exit codes.
package errors

import (
	"errors"
	"fmt"
)

// Category classifies a SiteError for reporting and exit-code mapping.
type Category string

const (
	// Startup errors, raised before any page processing begins
	CategoryConfig   Category = "config"
	CategoryTemplate Category = "template"

	// Pipeline errors, raised while processing content files
	CategoryMetadata   Category = "metadata"
	CategoryRender     Category = "render"
	CategoryFilesystem Category = "filesystem"
)

// SiteError is a structured error with a category, an optional file path
// for context, and a wrapped cause.
type SiteError struct {
	Category Category
	Message  string
	Path     string
	Cause    error
}

// Error implements the error interface.
func (e *SiteError) Error() string {
	switch {
	case e.Path != "" && e.Cause != nil:
		return fmt.Sprintf("%s: %s (%s): %v", e.Category, e.Message, e.Path, e.Cause)
	case e.Path != "":
		return fmt.Sprintf("%s: %s (%s)", e.Category, e.Message, e.Path)
	case e.Cause != nil:
		return fmt.Sprintf("%s: %s: %v", e.Category, e.Message, e.Cause)
	default:
		return fmt.Sprintf("%s: %s", e.Category, e.Message)
	}
}

// Unwrap implements error unwrapping for Go 1.13+ error handling.
func (e *SiteError) Unwrap() error {
	return e.Cause
}

// WithPath attaches the content or output file the error refers to.
func (e *SiteError) WithPath(path string) *SiteError {
	e.Path = path
	return e
}

// New creates a new SiteError.
func New(category Category, message string) *SiteError {
	return &SiteError{Category: category, Message: message}
}

// Wrap creates a new SiteError that wraps an existing error.
func Wrap(err error, category Category, message string) *SiteError {
	return &SiteError{Category: category, Message: message, Cause: err}
}

// IsCategory checks whether an error (or anything it wraps) belongs to a
// specific category.
func IsCategory(err error, category Category) bool {
	var se *SiteError
	if errors.As(err, &se) {
		return se.Category == category
	}
	return false
}

// GetCategory extracts the category from an error, or returns an empty
// category if it is not a SiteError.
func GetCategory(err error) Category {
	var se *SiteError
	if errors.As(err, &se) {
		return se.Category
	}
	return ""
}
