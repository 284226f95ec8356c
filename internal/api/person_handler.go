package api

import (
	"log/slog"
	"net/http"

	"github.com/web420/restapi/internal/api/shared"
	"github.com/web420/restapi/internal/store"
)

// PersonHandler handles the people routes.
type PersonHandler struct {
	people store.PersonStore
	logger *slog.Logger
}

// NewPersonHandler creates a new PersonHandler
func NewPersonHandler(people store.PersonStore, logger *slog.Logger) *PersonHandler {
	if logger == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("logger cannot be nil for PersonHandler")
	}

	return &PersonHandler{
		people: people,
		logger: logger.With(slog.String("component", "person_handler")),
	}
}

// List handles GET /people (findAllPersons).
func (h *PersonHandler) List(w http.ResponseWriter, r *http.Request) {
	people, err := h.people.List(r.Context())
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusInternalServerError, shared.MessageKey,
			serverException(err), err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, people)
}

// Create handles POST /people (createPerson).
func (h *PersonHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req PersonRequest
	if !decodeAndValidate(w, r, shared.ErrorKey, &req) {
		return
	}

	person := req.toDomain()
	if err := h.people.Create(r.Context(), person); err != nil {
		respondWriteFailure(w, r, shared.ErrorKey, err)
		return
	}

	requestLogger(r, h.logger).Debug("person created", slog.String("person_id", person.ID.Hex()))
	shared.RespondWithJSON(w, r, http.StatusOK, person)
}
