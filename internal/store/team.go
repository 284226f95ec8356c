package store

import (
	"context"

	"github.com/web420/restapi/internal/domain"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// TeamStore defines the interface for team persistence.
type TeamStore interface {
	// List returns every team. An empty collection yields an empty slice.
	List(ctx context.Context) ([]domain.Team, error)

	// GetByID retrieves a team by its identifier.
	// Returns ErrTeamNotFound if the team does not exist.
	GetByID(ctx context.Context, id primitive.ObjectID) (*domain.Team, error)

	// Create inserts a new team and sets its ID.
	Create(ctx context.Context, team *domain.Team) error

	// AppendPlayer loads the team, appends player to its roster and saves
	// the whole document. Same last-writer-wins caveat as AppendInvoice.
	// Returns ErrTeamNotFound if the team does not exist.
	AppendPlayer(ctx context.Context, id primitive.ObjectID, player domain.Player) (*domain.Team, error)

	// Delete removes a team by its identifier.
	// Returns ErrTeamNotFound if the team does not exist.
	Delete(ctx context.Context, id primitive.ObjectID) error
}
