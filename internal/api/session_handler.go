package api

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/web420/restapi/internal/api/shared"
	"github.com/web420/restapi/internal/domain"
	"github.com/web420/restapi/internal/service/auth"
	"github.com/web420/restapi/internal/store"
)

// SessionHandler handles signup and login.
// No token or session is issued; a login only reports whether the
// credentials match.
type SessionHandler struct {
	users    store.UserStore
	hasher   auth.PasswordHasher
	verifier auth.PasswordVerifier
	logger   *slog.Logger
}

// NewSessionHandler creates a new SessionHandler with the given dependencies.
func NewSessionHandler(
	users store.UserStore,
	hasher auth.PasswordHasher,
	verifier auth.PasswordVerifier,
	logger *slog.Logger,
) *SessionHandler {
	if logger == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("logger cannot be nil for SessionHandler")
	}

	return &SessionHandler{
		users:    users,
		hasher:   hasher,
		verifier: verifier,
		logger:   logger.With(slog.String("component", "session_handler")),
	}
}

// Signup handles POST /signup.
// The response is the stored user without its password digest.
func (h *SessionHandler) Signup(w http.ResponseWriter, r *http.Request) {
	log := requestLogger(r, h.logger)

	var req SignupRequest
	if !decodeAndValidate(w, r, shared.MessageKey, &req) {
		return
	}

	_, err := h.users.GetByUserName(r.Context(), req.UserName)
	switch {
	case err == nil:
		shared.RespondWithError(w, r, http.StatusUnauthorized, shared.MessageKey, msgUserNameInUse)
		return
	case !store.IsNotFoundError(err):
		shared.RespondWithErrorAndLog(w, r, http.StatusInternalServerError, shared.MessageKey,
			serverException(err), err)
		return
	}

	digest, err := h.hasher.Hash(req.Password)
	if err != nil {
		respondWriteFailure(w, r, shared.MessageKey, err)
		return
	}

	user, err := domain.NewUser(req.UserName, digest, req.EmailAddress)
	if err != nil {
		respondWriteFailure(w, r, shared.MessageKey, err)
		return
	}

	if err := h.users.Create(r.Context(), user); err != nil {
		// Another signup for the same name won the race.
		if errors.Is(err, store.ErrDuplicate) {
			shared.RespondWithError(w, r, http.StatusUnauthorized, shared.MessageKey, msgUserNameInUse)
			return
		}
		shared.RespondWithErrorAndLog(w, r, http.StatusInternalServerError, shared.MessageKey,
			serverException(err), err)
		return
	}

	log.Info("user signed up", slog.String("user_id", user.ID.Hex()))
	shared.RespondWithJSON(w, r, http.StatusOK, user)
}

// Login handles POST /login.
// An unknown user name and a wrong password get the same answer.
func (h *SessionHandler) Login(w http.ResponseWriter, r *http.Request) {
	log := requestLogger(r, h.logger)

	var req LoginRequest
	if !decodeAndValidate(w, r, shared.MessageKey, &req) {
		return
	}

	user, err := h.users.GetByUserName(r.Context(), req.UserName)
	if err != nil {
		if store.IsNotFoundError(err) {
			shared.RespondWithErrorAndLog(w, r, http.StatusUnauthorized, shared.MessageKey,
				msgInvalidLogin, err, shared.WithElevatedLogLevel())
			return
		}
		shared.RespondWithErrorAndLog(w, r, http.StatusInternalServerError, shared.MessageKey,
			serverException(err), err)
		return
	}

	if err := h.verifier.Compare(user.HashedPassword, req.Password); err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusUnauthorized, shared.MessageKey,
			msgInvalidLogin, err, shared.WithElevatedLogLevel())
		return
	}

	log.Debug("user logged in", slog.String("user_id", user.ID.Hex()))
	shared.RespondWithJSON(w, r, http.StatusOK, shared.MessageResponse{Message: msgUserLoggedIn})
}
