package store

import (
	"context"

	"github.com/web420/restapi/internal/domain"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ComposerStore defines the interface for composer persistence.
type ComposerStore interface {
	// List returns every composer. An empty collection yields an empty slice.
	List(ctx context.Context) ([]domain.Composer, error)

	// GetByID retrieves a composer by its identifier.
	// Returns ErrComposerNotFound if the composer does not exist.
	GetByID(ctx context.Context, id primitive.ObjectID) (*domain.Composer, error)

	// Create inserts a new composer and sets its ID.
	// Returns ErrDuplicate if either name is already taken.
	Create(ctx context.Context, composer *domain.Composer) error

	// Update replaces the stored composer with the same ID.
	// Returns ErrComposerNotFound if the composer does not exist.
	Update(ctx context.Context, composer *domain.Composer) error

	// Delete removes a composer by its identifier.
	// Returns ErrComposerNotFound if the composer does not exist.
	Delete(ctx context.Context, id primitive.ObjectID) error
}
