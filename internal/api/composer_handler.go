package api

import (
	"log/slog"
	"net/http"

	"github.com/web420/restapi/internal/api/shared"
	"github.com/web420/restapi/internal/domain"
	"github.com/web420/restapi/internal/store"
)

// ComposerHandler handles the composer routes.
type ComposerHandler struct {
	composers store.ComposerStore
	logger    *slog.Logger
}

// NewComposerHandler creates a new ComposerHandler
func NewComposerHandler(composers store.ComposerStore, logger *slog.Logger) *ComposerHandler {
	if logger == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("logger cannot be nil for ComposerHandler")
	}

	return &ComposerHandler{
		composers: composers,
		logger:    logger.With(slog.String("component", "composer_handler")),
	}
}

// List handles GET /composers (findAllComposers).
func (h *ComposerHandler) List(w http.ResponseWriter, r *http.Request) {
	composers, err := h.composers.List(r.Context())
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusInternalServerError, shared.MessageKey,
			serverException(err), err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, composers)
}

// Get handles GET /composers/{id} (findComposerById).
func (h *ComposerHandler) Get(w http.ResponseWriter, r *http.Request) {
	log := requestLogger(r, h.logger)

	id, ok := parseIDParam(w, r, log, msgComposerNotFound)
	if !ok {
		return
	}

	composer, err := h.composers.GetByID(r.Context(), id)
	if err != nil {
		if store.IsNotFoundError(err) {
			shared.RespondWithError(w, r, http.StatusNotFound, shared.ErrorKey, msgComposerNotFound)
			return
		}
		shared.RespondWithErrorAndLog(w, r, http.StatusInternalServerError, shared.MessageKey,
			serverException(err), err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, composer)
}

// Create handles POST /composers (createComposer).
func (h *ComposerHandler) Create(w http.ResponseWriter, r *http.Request) {
	log := requestLogger(r, h.logger)

	var req ComposerRequest
	if !decodeAndValidate(w, r, shared.ErrorKey, &req) {
		return
	}

	composer, err := domain.NewComposer(req.FirstName, req.LastName)
	if err != nil {
		respondWriteFailure(w, r, shared.ErrorKey, err)
		return
	}

	if err := h.composers.Create(r.Context(), composer); err != nil {
		respondWriteFailure(w, r, shared.ErrorKey, err)
		return
	}

	log.Debug("composer created", slog.String("composer_id", composer.ID.Hex()))
	shared.RespondWithJSON(w, r, http.StatusOK, composer)
}

// Update handles PUT /composers/{id} (updateComposerById).
// A well-formed identifier that matches nothing answers 401, as it always has.
func (h *ComposerHandler) Update(w http.ResponseWriter, r *http.Request) {
	log := requestLogger(r, h.logger)

	id, ok := parseIDParam(w, r, log, msgComposerNotFound)
	if !ok {
		return
	}

	composer, err := h.composers.GetByID(r.Context(), id)
	if err != nil {
		if store.IsNotFoundError(err) {
			shared.RespondWithError(w, r, http.StatusUnauthorized, shared.ErrorKey, msgInvalidComposer)
			return
		}
		shared.RespondWithErrorAndLog(w, r, http.StatusInternalServerError, shared.ErrorKey,
			redactedDetail(err), err)
		return
	}

	var req ComposerRequest
	if !decodeAndValidate(w, r, shared.ErrorKey, &req) {
		return
	}

	if err := composer.Rename(req.FirstName, req.LastName); err != nil {
		respondWriteFailure(w, r, shared.ErrorKey, err)
		return
	}

	if err := h.composers.Update(r.Context(), composer); err != nil {
		switch {
		case store.IsNotFoundError(err):
			shared.RespondWithError(w, r, http.StatusUnauthorized, shared.ErrorKey, msgInvalidComposer)
		case IsInvalidInput(err):
			respondWriteFailure(w, r, shared.ErrorKey, err)
		default:
			shared.RespondWithErrorAndLog(w, r, http.StatusInternalServerError, shared.ErrorKey,
				redactedDetail(err), err)
		}
		return
	}

	log.Debug("composer updated", slog.String("composer_id", composer.ID.Hex()))
	shared.RespondWithJSON(w, r, http.StatusOK, composer)
}

// Delete handles DELETE /composers/{id} (deleteComposerById).
// The composer is loaded first and returned as the response body. If it does
// not exist the delete is skipped and the legacy 501 is returned.
func (h *ComposerHandler) Delete(w http.ResponseWriter, r *http.Request) {
	log := requestLogger(r, h.logger)

	id, ok := parseIDParam(w, r, log, msgComposerNotFound)
	if !ok {
		return
	}

	composer, err := h.composers.GetByID(r.Context(), id)
	if err != nil {
		respondDeleteFailure(w, r, err)
		return
	}

	if err := h.composers.Delete(r.Context(), id); err != nil {
		respondDeleteFailure(w, r, err)
		return
	}

	log.Debug("composer deleted", slog.String("composer_id", id.Hex()))
	shared.RespondWithJSON(w, r, http.StatusOK, composer)
}

// respondDeleteFailure answers a failed delete: 501 when the document is
// missing, 500 with the redacted detail otherwise.
func respondDeleteFailure(w http.ResponseWriter, r *http.Request, err error) {
	if store.IsNotFoundError(err) {
		shared.RespondWithErrorAndLog(w, r, http.StatusNotImplemented, shared.ErrorKey, msgStoreException, err)
		return
	}
	shared.RespondWithErrorAndLog(w, r, http.StatusInternalServerError, shared.ErrorKey,
		msgServerException+" "+redactedDetail(err), err)
}
