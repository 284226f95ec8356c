package domain

import "go.mongodb.org/mongo-driver/bson/primitive"

// ParseID converts a path parameter into a document identifier.
// It returns ErrInvalidID for anything that is not exactly a 24 character
// hex string; surrounding whitespace is not trimmed.
func ParseID(raw string) (primitive.ObjectID, error) {
	if raw == "" {
		return primitive.NilObjectID, NewValidationError("id", "is required", ErrInvalidID)
	}

	id, err := primitive.ObjectIDFromHex(raw)
	if err != nil {
		return primitive.NilObjectID, NewValidationError("id", "has invalid format", ErrInvalidID)
	}

	return id, nil
}
