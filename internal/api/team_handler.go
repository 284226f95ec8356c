package api

import (
	"log/slog"
	"net/http"

	"github.com/web420/restapi/internal/api/shared"
	"github.com/web420/restapi/internal/domain"
	"github.com/web420/restapi/internal/store"
)

// TeamHandler handles the team and player routes.
type TeamHandler struct {
	teams  store.TeamStore
	logger *slog.Logger
}

// NewTeamHandler creates a new TeamHandler
func NewTeamHandler(teams store.TeamStore, logger *slog.Logger) *TeamHandler {
	if logger == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("logger cannot be nil for TeamHandler")
	}

	return &TeamHandler{
		teams:  teams,
		logger: logger.With(slog.String("component", "team_handler")),
	}
}

// List handles GET /teams (findAllTeams).
func (h *TeamHandler) List(w http.ResponseWriter, r *http.Request) {
	teams, err := h.teams.List(r.Context())
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusInternalServerError, shared.MessageKey,
			serverException(err), err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, teams)
}

// Create handles POST /teams (createTeam).
func (h *TeamHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req TeamRequest
	if !decodeAndValidate(w, r, shared.MessageKey, &req) {
		return
	}

	team := domain.NewTeam(req.Name, req.Mascot)
	if err := h.teams.Create(r.Context(), team); err != nil {
		respondWriteFailure(w, r, shared.MessageKey, err)
		return
	}

	requestLogger(r, h.logger).Debug("team created", slog.String("team_id", team.ID.Hex()))
	shared.RespondWithJSON(w, r, http.StatusOK, team)
}

// AssignPlayer handles POST /teams/{id}/players (assignPlayerToTeam).
func (h *TeamHandler) AssignPlayer(w http.ResponseWriter, r *http.Request) {
	log := requestLogger(r, h.logger)

	id, ok := parseIDParam(w, r, log, msgTeamNotFound)
	if !ok {
		return
	}

	var req PlayerRequest
	if !decodeAndValidate(w, r, shared.MessageKey, &req) {
		return
	}

	team, err := h.teams.AppendPlayer(r.Context(), id, req.toDomain())
	if err != nil {
		respondParentFailure(w, r, err)
		return
	}

	log.Debug("player assigned",
		slog.String("team_id", team.ID.Hex()),
		slog.Int("player_count", len(team.Players)))
	shared.RespondWithJSON(w, r, http.StatusOK, team)
}

// ListPlayers handles GET /teams/{id}/players (findAllPlayersByTeamId).
func (h *TeamHandler) ListPlayers(w http.ResponseWriter, r *http.Request) {
	id, ok := parseIDParam(w, r, requestLogger(r, h.logger), msgTeamNotFound)
	if !ok {
		return
	}

	team, err := h.teams.GetByID(r.Context(), id)
	if err != nil {
		respondParentFailure(w, r, err)
		return
	}

	players := team.Players
	if players == nil {
		players = []domain.Player{}
	}
	shared.RespondWithJSON(w, r, http.StatusOK, players)
}

// Delete handles DELETE /teams/{id} (deleteTeamById).
// Same contract as composer deletion.
func (h *TeamHandler) Delete(w http.ResponseWriter, r *http.Request) {
	log := requestLogger(r, h.logger)

	id, ok := parseIDParam(w, r, log, msgTeamNotFound)
	if !ok {
		return
	}

	team, err := h.teams.GetByID(r.Context(), id)
	if err != nil {
		respondDeleteFailure(w, r, err)
		return
	}

	if err := h.teams.Delete(r.Context(), id); err != nil {
		respondDeleteFailure(w, r, err)
		return
	}

	log.Debug("team deleted", slog.String("team_id", id.Hex()))
	shared.RespondWithJSON(w, r, http.StatusOK, team)
}
