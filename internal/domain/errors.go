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

	// ErrInvalidID is returned when an identifier is malformed.
	ErrInvalidID = errors.New("invalid ID")

	// ErrEmptyFirstName is returned when a required first name is blank.
	ErrEmptyFirstName = fmt.Errorf("%w: first name cannot be empty", ErrValidation)

	// ErrEmptyLastName is returned when a required last name is blank.
	ErrEmptyLastName = fmt.Errorf("%w: last name cannot be empty", ErrValidation)

	// ErrEmptyUserName is returned when a user name is blank.
	ErrEmptyUserName = fmt.Errorf("%w: user name cannot be empty", ErrValidation)

	// ErrEmptyHashedPassword is returned when a user is built without a digest.
	ErrEmptyHashedPassword = fmt.Errorf("%w: hashed password cannot be empty", ErrValidation)
)

// ValidationError describes a single invalid field.
type ValidationError struct {
	Field   string
	Message string
	Err     error
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s %s", e.Field, e.Message)
}

// Unwrap returns the underlying sentinel so callers can use errors.Is.
func (e *ValidationError) Unwrap() error {
	return e.Err
}

// NewValidationError creates a ValidationError for field wrapping err.
func NewValidationError(field, message string, err error) *ValidationError {
	return &ValidationError{Field: field, Message: message, Err: err}
}
