// Package errors provides a lightweight structured error type (NavError)
// for category-based classification in the loaders, renderers and CLI.
package errors

import (
	stdErrors "errors"
	"fmt"
)

// ErrorCategory represents the category of a NavError for classification
type ErrorCategory string

const (
	// User-facing configuration and input errors
	CategoryConfig     ErrorCategory = "config"
	CategoryValidation ErrorCategory = "validation"

	// Build and processing errors
	CategoryRender     ErrorCategory = "render"
	CategoryFileSystem ErrorCategory = "filesystem"

	// Runtime and infrastructure errors
	CategoryWatch    ErrorCategory = "watch"
	CategoryInternal ErrorCategory = "internal"
)

// ErrorSeverity indicates how critical an error is
type ErrorSeverity string

const (
	SeverityFatal ErrorSeverity = "fatal" // Stops execution
)

// NavError is a structured error with category, severity and context
type NavError struct {
	Category ErrorCategory `json:"category"`
	Severity ErrorSeverity `json:"severity"`
	Message  string        `json:"message"`
	Cause    error         `json:"cause,omitempty"`
	Context  ContextFields `json:"context,omitempty"`
}

// ContextFields carries structured context for NavError
type ContextFields map[string]any

// Error implements the error interface
func (e *NavError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s (%s): %s: %v", e.Category, e.Severity, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s (%s): %s", e.Category, e.Severity, e.Message)
}

// Unwrap implements error unwrapping for Go 1.13+ error handling
func (e *NavError) Unwrap() error {
	return e.Cause
}

// WithContext adds context information to the error
func (e *NavError) WithContext(key string, value any) *NavError {
	if e.Context == nil {
		e.Context = make(ContextFields)
	}
	e.Context[key] = value
	return e
}

// New creates a new NavError
func New(category ErrorCategory, severity ErrorSeverity, message string) *NavError {
	return &NavError{
		Category: category,
		Severity: severity,
		Message:  message,
	}
}

// Wrap creates a new NavError that wraps an existing error
func Wrap(err error, category ErrorCategory, severity ErrorSeverity, message string) *NavError {
	return &NavError{
		Category: category,
		Severity: severity,
		Message:  message,
		Cause:    err,
	}
}

// As finds the first NavError in err's chain.
func As(err error) (*NavError, bool) {
	var ne *NavError
	if stdErrors.As(err, &ne) {
		return ne, true
	}
	return nil, false
}

// IsCategory checks if an error (or anything it wraps) belongs to a specific category
func IsCategory(err error, category ErrorCategory) bool {
	if ne, ok := As(err); ok {
		return ne.Category == category
	}
	return false
}

// GetCategory extracts the category from an error, or returns CategoryInternal if not a NavError
func GetCategory(err error) ErrorCategory {
	if ne, ok := As(err); ok {
		return ne.Category
	}
	return CategoryInternal
}
