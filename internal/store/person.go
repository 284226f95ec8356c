package store

import (
	"context"

	"github.com/web420/restapi/internal/domain"
)

// PersonStore defines the interface for person persistence.
type PersonStore interface {
	// List returns every person. An empty collection yields an empty slice.
	List(ctx context.Context) ([]domain.Person, error)

	// Create inserts a new person and sets its ID.
	Create(ctx context.Context, person *domain.Person) error
}
