package store

import (
	"errors"
	"fmt"
)

// Common store errors used across all store implementations.
var (
	// ErrNotFound is returned when a requested document does not exist in the store.
	// This is a generic version of the entity-specific not found errors
	// (e.g., ErrComposerNotFound, ErrTeamNotFound).
	ErrNotFound = errors.New("entity not found")

	// ErrDuplicate is returned when an operation would violate a unique index
	// (e.g., a second composer with the same last name).
	ErrDuplicate = errors.New("entity already exists")

	// ErrInvalidEntity is returned when a document fails validation before
	// or during storage. Check the wrapped error for specific validation details.
	ErrInvalidEntity = errors.New("invalid entity")

	// ErrUnavailable is returned when the document store cannot be reached or
	// reports an operational failure (network error, timeout, no primary).
	ErrUnavailable = errors.New("document store unavailable")

	// Entity-specific "not found" errors

	// ErrComposerNotFound indicates that the requested composer does not exist.
	ErrComposerNotFound = fmt.Errorf("%w: composer", ErrNotFound)

	// ErrCustomerNotFound indicates that no customer has the requested user name.
	ErrCustomerNotFound = fmt.Errorf("%w: customer", ErrNotFound)

	// ErrTeamNotFound indicates that the requested team does not exist.
	ErrTeamNotFound = fmt.Errorf("%w: team", ErrNotFound)

	// ErrUserNotFound indicates that no user has the requested user name.
	ErrUserNotFound = fmt.Errorf("%w: user", ErrNotFound)

	// Entity-specific "duplicate" errors

	// ErrUserNameExists indicates that a user with the given user name already exists.
	ErrUserNameExists = fmt.Errorf("%w: user name", ErrDuplicate)
)

// IsNotFoundError checks if the error is any kind of "not found" error.
func IsNotFoundError(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsDuplicateError checks if the error is any kind of "duplicate" error.
func IsDuplicateError(err error) bool {
	return errors.Is(err, ErrDuplicate)
}

// IsInvalidInputError reports whether err was caused by the data the client
// sent rather than by the store itself.
func IsInvalidInputError(err error) bool {
	return errors.Is(err, ErrInvalidEntity) || errors.Is(err, ErrDuplicate)
}

// StoreError is a custom error type for store-specific errors with additional context.
type StoreError struct {
	Entity    string // The entity type (e.g., "composer", "team")
	Operation string // The operation that failed (e.g., "create", "append")
	Message   string // Error message
	Err       error  // Original error
}

// Error implements the error interface for StoreError.
func (e *StoreError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf(
			"%s operation on %s failed: %s: %v",
			e.Operation,
			e.Entity,
			e.Message,
			e.Err,
		)
	}
	return fmt.Sprintf("%s operation on %s failed: %s", e.Operation, e.Entity, e.Message)
}

// Unwrap returns the wrapped error to support errors.Is/errors.As.
func (e *StoreError) Unwrap() error {
	return e.Err
}

// NewStoreError creates a new StoreError with the given entity, operation, message, and wrapped error.
func NewStoreError(entity, operation, message string, err error) *StoreError {
	return &StoreError{
		Entity:    entity,
		Operation: operation,
		Message:   message,
		Err:       err,
	}
}
