package mocks

import (
	"context"
	"sync"

	"github.com/web420/restapi/internal/domain"
	"github.com/web420/restapi/internal/store"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// MockPersonStore implements store.PersonStore for testing
type MockPersonStore struct {
	callCounter

	ListFn   func(ctx context.Context) ([]domain.Person, error)
	CreateFn func(ctx context.Context, person *domain.Person) error

	mu     sync.RWMutex
	people []domain.Person
}

// Ensure MockPersonStore implements store.PersonStore interface
var _ store.PersonStore = (*MockPersonStore)(nil)

// NewMockPersonStore creates a new mock store with initialized defaults
func NewMockPersonStore() *MockPersonStore {
	return &MockPersonStore{}
}

// List implements the PersonStore interface
func (m *MockPersonStore) List(ctx context.Context) ([]domain.Person, error) {
	m.record()
	if m.ListFn != nil {
		return m.ListFn(ctx)
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	people := make([]domain.Person, 0, len(m.people))
	for _, p := range m.people {
		people = append(people, copyPerson(p))
	}
	return people, nil
}

// Create implements the PersonStore interface
func (m *MockPersonStore) Create(ctx context.Context, person *domain.Person) error {
	m.record()
	if m.CreateFn != nil {
		return m.CreateFn(ctx, person)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	person.ID = primitive.NewObjectID()
	m.people = append(m.people, copyPerson(*person))
	return nil
}
