package store

import (
	"context"

	"github.com/web420/restapi/internal/domain"
)

// UserStore defines the interface for user persistence.
type UserStore interface {
	// Create saves a new user whose password has already been hashed.
	// Returns ErrUserNameExists if the store detects a duplicate user name.
	Create(ctx context.Context, user *domain.User) error

	// GetByUserName retrieves a user by user name.
	// Returns ErrUserNotFound if the user does not exist.
	// The returned user carries the stored digest, never a plaintext password.
	GetByUserName(ctx context.Context, userName string) (*domain.User, error)
}
