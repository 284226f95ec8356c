package api

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/web420/restapi/internal/api/shared"
	"github.com/web420/restapi/internal/domain"
	"github.com/web420/restapi/internal/platform/logger"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// parseIDParam reads the {id} path parameter and checks that it is a valid
// document identifier. On failure it writes a 404 with notFoundMessage and
// returns false; the store is never consulted for malformed identifiers.
func parseIDParam(
	w http.ResponseWriter,
	r *http.Request,
	log *slog.Logger,
	notFoundMessage string,
) (primitive.ObjectID, bool) {
	raw := chi.URLParam(r, "id")

	id, err := domain.ParseID(raw)
	if err != nil {
		log.Debug("rejecting malformed identifier", slog.String("id", raw))
		shared.RespondWithError(w, r, http.StatusNotFound, shared.ErrorKey, notFoundMessage)
		return primitive.NilObjectID, false
	}

	return id, true
}

// decodeAndValidate decodes the JSON body into req and validates it.
// On failure it writes a 400 under key and returns false.
func decodeAndValidate(
	w http.ResponseWriter,
	r *http.Request,
	key shared.BodyKey,
	req interface{},
) bool {
	if err := shared.DecodeJSON(r, req); err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusBadRequest, key,
			GetSafeErrorMessage(http.StatusBadRequest, err), err)
		return false
	}

	if err := shared.ValidateRequest(req); err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusBadRequest, key,
			GetSafeErrorMessage(http.StatusBadRequest, err), err)
		return false
	}

	return true
}

// respondWriteFailure maps a failed create or update to its status and message.
func respondWriteFailure(w http.ResponseWriter, r *http.Request, key shared.BodyKey, err error) {
	status := MapErrorToStatusCode(err)
	if status == http.StatusNotFound {
		status = http.StatusInternalServerError
	}
	shared.RespondWithErrorAndLog(w, r, status, key, GetSafeErrorMessage(status, err), err)
}

// requestLogger returns the request-scoped logger, falling back to fallback.
func requestLogger(r *http.Request, fallback *slog.Logger) *slog.Logger {
	return logger.FromContextOrDefault(r.Context(), fallback)
}
