package mongo

import (
	"errors"
	"fmt"

	"github.com/web420/restapi/internal/store"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/x/mongo/driver/topology"
)

// MongoDB server error codes
const (
	// documentValidationFailureCode is returned when a write violates a
	// collection validator.
	documentValidationFailureCode = 121
)

// MapError maps a driver error to the matching store error.
// The original error is kept in the chain so the detail survives for logging.
func MapError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, mongo.ErrNoDocuments) {
		return fmt.Errorf("%w: %w", store.ErrNotFound, err)
	}

	if mongo.IsDuplicateKeyError(err) {
		return fmt.Errorf("%w: %w", store.ErrDuplicate, err)
	}

	if IsDocumentValidationFailure(err) {
		return fmt.Errorf("%w: document failed validation: %w", store.ErrInvalidEntity, err)
	}

	if IsUnavailable(err) {
		return fmt.Errorf("%w: %w", store.ErrUnavailable, err)
	}

	return err
}

// IsDocumentValidationFailure reports whether the server rejected a write
// because of a collection validator.
func IsDocumentValidationFailure(err error) bool {
	var se mongo.ServerError
	return errors.As(err, &se) && se.HasErrorCode(documentValidationFailureCode)
}

// IsUnavailable reports whether err means the server could not be reached or
// did not answer in time.
func IsUnavailable(err error) bool {
	if mongo.IsNetworkError(err) || mongo.IsTimeout(err) {
		return true
	}

	if errors.Is(err, mongo.ErrClientDisconnected) {
		return true
	}

	var selErr topology.ServerSelectionError
	return errors.As(err, &selErr)
}

// notFoundAs returns notFound when err means the document does not exist,
// otherwise the mapped error.
func notFoundAs(err, notFound error) error {
	if errors.Is(err, mongo.ErrNoDocuments) {
		return notFound
	}
	return MapError(err)
}
