package mocks

import (
	"context"
	"sync"

	"github.com/web420/restapi/internal/domain"
	"github.com/web420/restapi/internal/store"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// MockUserStore implements store.UserStore for testing
type MockUserStore struct {
	callCounter

	// Function fields for customizable behavior
	CreateFn        func(ctx context.Context, user *domain.User) error
	GetByUserNameFn func(ctx context.Context, userName string) (*domain.User, error)

	mu    sync.RWMutex
	users map[string]domain.User
}

// Ensure MockUserStore implements store.UserStore interface
var _ store.UserStore = (*MockUserStore)(nil)

// NewMockUserStore creates a new mock store, optionally seeded with users.
func NewMockUserStore(seed ...domain.User) *MockUserStore {
	m := &MockUserStore{users: make(map[string]domain.User)}
	for _, u := range seed {
		if u.ID.IsZero() {
			u.ID = primitive.NewObjectID()
		}
		m.users[u.UserName] = u
	}
	return m
}

// Create implements the UserStore interface
func (m *MockUserStore) Create(ctx context.Context, user *domain.User) error {
	m.record()
	if m.CreateFn != nil {
		return m.CreateFn(ctx, user)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if _, exists := m.users[user.UserName]; exists {
		return store.ErrUserNameExists
	}

	user.ID = primitive.NewObjectID()
	m.users[user.UserName] = *user
	return nil
}

// GetByUserName implements the UserStore interface
func (m *MockUserStore) GetByUserName(ctx context.Context, userName string) (*domain.User, error) {
	m.record()
	if m.GetByUserNameFn != nil {
		return m.GetByUserNameFn(ctx, userName)
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	user, exists := m.users[userName]
	if !exists {
		return nil, store.ErrUserNotFound
	}
	return &user, nil
}
