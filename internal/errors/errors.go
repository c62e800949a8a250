// Package errors provides a lightweight structured error type (DirectError)
// for category-based classification at the CLI boundary. Directive-level
// errors keep their exact user-facing message and are wrapped, never
// rewritten.
package errors

import (
	"fmt"
)

// ErrorCategory represents the category of an error for classification.
type ErrorCategory string

const (
	// User-facing configuration and input errors
	CategoryConfig     ErrorCategory = "config"
	CategoryValidation ErrorCategory = "validation"

	// Content processing errors
	CategoryParse   ErrorCategory = "parse"
	CategoryLink    ErrorCategory = "link"
	CategorySnippet ErrorCategory = "snippet"

	// Runtime and infrastructure errors
	CategoryFileSystem ErrorCategory = "filesystem"
	CategoryInternal   ErrorCategory = "internal"
)

// ErrorSeverity indicates how critical an error is.
type ErrorSeverity string

const (
	SeverityFatal   ErrorSeverity = "fatal"   // Stops execution
	SeverityError   ErrorSeverity = "error"   // Error, but not fatal
	SeverityWarning ErrorSeverity = "warning" // Continues with degraded functionality
)

// DirectError is a structured error with category and context.
type DirectError struct {
	Category ErrorCategory `json:"category"`
	Severity ErrorSeverity `json:"severity"`
	Message  string        `json:"message"`
	Cause    error         `json:"cause,omitempty"`
	Context  ContextFields `json:"context,omitempty"`
}

// ContextFields carries structured context for DirectError.
type ContextFields map[string]any

// Error implements the error interface.
func (e *DirectError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s (%s): %s: %v", e.Category, e.Severity, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s (%s): %s", e.Category, e.Severity, e.Message)
}

// Unwrap implements error unwrapping.
func (e *DirectError) Unwrap() error {
	return e.Cause
}

// WithContext adds context information to the error.
func (e *DirectError) WithContext(key string, value any) *DirectError {
	if e.Context == nil {
		e.Context = make(ContextFields)
	}
	e.Context[key] = value
	return e
}

// New creates a new DirectError.
func New(category ErrorCategory, severity ErrorSeverity, message string) *DirectError {
	return &DirectError{
		Category: category,
		Severity: severity,
		Message:  message,
	}
}

// Wrap creates a new DirectError that wraps an existing error.
func Wrap(err error, category ErrorCategory, severity ErrorSeverity, message string) *DirectError {
	return &DirectError{
		Category: category,
		Severity: severity,
		Message:  message,
		Cause:    err,
	}
}

// IsCategory checks if an error belongs to a specific category.
func IsCategory(err error, category ErrorCategory) bool {
	if de, ok := err.(*DirectError); ok {
		return de.Category == category
	}
	return false
}

// GetCategory extracts the category from an error, or returns
// CategoryInternal if not a DirectError.
func GetCategory(err error) ErrorCategory {
	if de, ok := err.(*DirectError); ok {
		return de.Category
	}
	return CategoryInternal
}
