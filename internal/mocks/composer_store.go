package mocks

import (
	"context"
	"fmt"
	"sync"

	"github.com/web420/restapi/internal/domain"
	"github.com/web420/restapi/internal/store"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// MockComposerStore implements store.ComposerStore for testing.
// The default implementation enforces the same unique names as the
// composers collection indexes.
type MockComposerStore struct {
	callCounter

	// Function fields for customizable behavior
	ListFn    func(ctx context.Context) ([]domain.Composer, error)
	GetByIDFn func(ctx context.Context, id primitive.ObjectID) (*domain.Composer, error)
	CreateFn  func(ctx context.Context, composer *domain.Composer) error
	UpdateFn  func(ctx context.Context, composer *domain.Composer) error
	DeleteFn  func(ctx context.Context, id primitive.ObjectID) error

	mu        sync.RWMutex
	composers map[primitive.ObjectID]domain.Composer
	order     []primitive.ObjectID
}

// Ensure MockComposerStore implements store.ComposerStore interface
var _ store.ComposerStore = (*MockComposerStore)(nil)

// NewMockComposerStore creates an empty mock store, optionally seeded with composers.
// Seeded composers without an ID are given one.
func NewMockComposerStore(seed ...domain.Composer) *MockComposerStore {
	m := &MockComposerStore{composers: make(map[primitive.ObjectID]domain.Composer)}
	for _, c := range seed {
		if c.ID.IsZero() {
			c.ID = primitive.NewObjectID()
		}
		m.composers[c.ID] = c
		m.order = append(m.order, c.ID)
	}
	return m
}

// List implements the ComposerStore interface
func (m *MockComposerStore) List(ctx context.Context) ([]domain.Composer, error) {
	m.record()
	if m.ListFn != nil {
		return m.ListFn(ctx)
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	composers := make([]domain.Composer, 0, len(m.order))
	for _, id := range m.order {
		composers = append(composers, m.composers[id])
	}
	return composers, nil
}

// GetByID implements the ComposerStore interface
func (m *MockComposerStore) GetByID(ctx context.Context, id primitive.ObjectID) (*domain.Composer, error) {
	m.record()
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	c, ok := m.composers[id]
	if !ok {
		return nil, store.ErrComposerNotFound
	}
	return &c, nil
}

// Create implements the ComposerStore interface
func (m *MockComposerStore) Create(ctx context.Context, composer *domain.Composer) error {
	m.record()
	if m.CreateFn != nil {
		return m.CreateFn(ctx, composer)
	}

	if err := composer.Validate(); err != nil {
		return store.NewStoreError("composer", "create", "invalid composer", fmt.Errorf("%w: %w", store.ErrInvalidEntity, err))
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if m.nameTaken(*composer) {
		return store.ErrDuplicate
	}

	composer.ID = primitive.NewObjectID()
	m.composers[composer.ID] = *composer
	m.order = append(m.order, composer.ID)
	return nil
}

// Update implements the ComposerStore interface
func (m *MockComposerStore) Update(ctx context.Context, composer *domain.Composer) error {
	m.record()
	if m.UpdateFn != nil {
		return m.UpdateFn(ctx, composer)
	}

	if err := composer.Validate(); err != nil {
		return store.NewStoreError("composer", "update", "invalid composer", fmt.Errorf("%w: %w", store.ErrInvalidEntity, err))
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.composers[composer.ID]; !ok {
		return store.ErrComposerNotFound
	}
	if m.nameTaken(*composer) {
		return store.ErrDuplicate
	}

	m.composers[composer.ID] = *composer
	return nil
}

// Delete implements the ComposerStore interface
func (m *MockComposerStore) Delete(ctx context.Context, id primitive.ObjectID) error {
	m.record()
	if m.DeleteFn != nil {
		return m.DeleteFn(ctx, id)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.composers[id]; !ok {
		return store.ErrComposerNotFound
	}
	delete(m.composers, id)
	m.order = removeID(m.order, id)
	return nil
}

// nameTaken reports whether another composer already uses either name.
// Callers must hold m.mu.
func (m *MockComposerStore) nameTaken(c domain.Composer) bool {
	for id, existing := range m.composers {
		if id == c.ID {
			continue
		}
		if existing.FirstName == c.FirstName || existing.LastName == c.LastName {
			return true
		}
	}
	return false
}
