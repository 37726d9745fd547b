// Package domain defines the core business entities and errors.
package domain

import (
	"errors"
	"fmt"
)

// Common domain errors used across the application.
var (
	// ErrValidation is returned when a domain entity fails validation.
	// This is often wrapped with a more specific error message.
	ErrValidation = errors.New("validation failed")

	// ErrSubjectRequired is returned when a generation request has no subject.
	ErrSubjectRequired = fmt.Errorf("%w: subject is required", ErrValidation)

	// ErrInvalidNumCards is returned when the requested card count is out of range.
	ErrInvalidNumCards = fmt.Errorf("%w: invalid number of cards", ErrValidation)
)

// ValidationError describes a single invalid field of a domain entity.
type ValidationError struct {
	// Field is the name of the offending field as callers know it
	Field string
	// Message describes what is wrong with the field
	Message string
	// Err is the sentinel this error classifies as
	Err error
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s %s", e.Field, e.Message)
}

// Unwrap returns the wrapped sentinel to support errors.Is.
func (e *ValidationError) Unwrap() error {
	return e.Err
}

// NewValidationError creates a ValidationError for the given field.
func NewValidationError(field, message string, err error) error {
	return &ValidationError{
		Field:   field,
		Message: message,
		Err:     err,
	}
}
