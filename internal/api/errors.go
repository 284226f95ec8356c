package api

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/web420/restapi/internal/api/shared"
	"github.com/web420/restapi/internal/domain"
	"github.com/web420/restapi/internal/redact"
	"github.com/web420/restapi/internal/service/auth"
	"github.com/web420/restapi/internal/store"
)

// Fixed response texts shared by several handlers.
const (
	msgStoreException   = "MongoDB Exception"
	msgServerException  = "Server Exception"
	msgInvalidRequest   = "Invalid request format"
	msgInvalidEntity    = "Invalid entity data"
	msgDuplicateKey     = "A document with the same unique value already exists"
	msgUserNameInUse    = "Username is already in use"
	msgInvalidLogin     = "Invalid username and/or password"
	msgUserLoggedIn     = "User logged in"
	msgComposerNotFound = "No composer can be found"
	msgInvalidComposer  = "Invalid Composer Id"
	msgTeamNotFound     = "No team can be found"
)

// IsInvalidInput reports whether err was caused by what the client sent:
// an undecodable body, a failed validation, or a document the store refused.
func IsInvalidInput(err error) bool {
	var validationErrs validator.ValidationErrors
	return errors.As(err, &validationErrs) ||
		errors.Is(err, shared.ErrInvalidBody) ||
		errors.Is(err, domain.ErrValidation) ||
		errors.Is(err, auth.ErrPasswordTooLong) ||
		store.IsInvalidInputError(err)
}

// MapErrorToStatusCode maps a failed write to a status code:
// client input problems are 400, an unreachable store is 501 and anything
// else is 500. Handlers apply their own legacy codes for missing documents
// before falling back to this mapping.
func MapErrorToStatusCode(err error) int {
	switch {
	case IsInvalidInput(err):
		return http.StatusBadRequest
	case errors.Is(err, store.ErrUnavailable):
		return http.StatusNotImplemented
	case store.IsNotFoundError(err):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// GetSafeErrorMessage returns the client-facing text for err at status.
// Store and server faults carry the redacted error detail, as clients of
// this API have always received it.
func GetSafeErrorMessage(status int, err error) string {
	if err == nil {
		return "An unexpected error occurred"
	}

	switch status {
	case http.StatusNotImplemented:
		return msgStoreException
	case http.StatusInternalServerError:
		return serverException(err)
	}

	var validationErrs validator.ValidationErrors
	var domainErr *domain.ValidationError
	switch {
	case errors.As(err, &validationErrs):
		return SanitizeValidationError(validationErrs)
	case errors.Is(err, shared.ErrInvalidBody):
		return msgInvalidRequest
	case errors.Is(err, auth.ErrPasswordTooLong):
		return "Invalid password: too long"
	case errors.Is(err, store.ErrDuplicate):
		return msgDuplicateKey
	case errors.As(err, &domainErr):
		return fmt.Sprintf("Invalid %s: %s", domainErr.Field, domainErr.Message)
	case errors.Is(err, domain.ErrValidation):
		return domainValidationMessage(err)
	case errors.Is(err, store.ErrInvalidEntity):
		return msgInvalidEntity
	default:
		return msgInvalidEntity
	}
}

// serverException formats the legacy "Server Exception: <detail>" text.
func serverException(err error) string {
	return msgServerException + ": " + redactedDetail(err)
}

// domainValidationMessage turns "validation failed: first name cannot be empty"
// into "Invalid entity data: first name cannot be empty".
func domainValidationMessage(err error) string {
	_, detail, found := strings.Cut(err.Error(), domain.ErrValidation.Error()+": ")
	if !found || detail == "" {
		return msgInvalidEntity
	}
	return msgInvalidEntity + ": " + detail
}

// SanitizeValidationError turns validator errors into a short client message
// naming the first failing field, e.g. "Invalid firstName: required field".
func SanitizeValidationError(err error) string {
	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) || len(validationErrs) == 0 {
		return "Validation error"
	}

	first := validationErrs[0]
	return fmt.Sprintf("Invalid %s: %s", first.Field(), getValidationTagMessage(first.Tag()))
}

// getValidationTagMessage maps validation tags to user-friendly error messages
func getValidationTagMessage(tag string) string {
	switch tag {
	case "required":
		return "required field"
	case "email":
		return "invalid email format"
	case "min":
		return "too short"
	case "max":
		return "too long"
	case "gte":
		return "too small"
	default:
		return "validation failed"
	}
}

// redactedDetail is the error text with sensitive values removed.
func redactedDetail(err error) string {
	return redact.Error(err)
}
