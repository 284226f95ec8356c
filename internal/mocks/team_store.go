package mocks

import (
	"context"
	"sync"

	"github.com/web420/restapi/internal/domain"
	"github.com/web420/restapi/internal/store"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// MockTeamStore implements store.TeamStore for testing
type MockTeamStore struct {
	callCounter

	ListFn         func(ctx context.Context) ([]domain.Team, error)
	GetByIDFn      func(ctx context.Context, id primitive.ObjectID) (*domain.Team, error)
	CreateFn       func(ctx context.Context, team *domain.Team) error
	AppendPlayerFn func(ctx context.Context, id primitive.ObjectID, player domain.Player) (*domain.Team, error)
	DeleteFn       func(ctx context.Context, id primitive.ObjectID) error

	mu    sync.RWMutex
	teams map[primitive.ObjectID]domain.Team
	order []primitive.ObjectID
}

// Ensure MockTeamStore implements store.TeamStore interface
var _ store.TeamStore = (*MockTeamStore)(nil)

// NewMockTeamStore creates an empty mock store, optionally seeded with teams.
func NewMockTeamStore(seed ...domain.Team) *MockTeamStore {
	m := &MockTeamStore{teams: make(map[primitive.ObjectID]domain.Team)}
	for _, t := range seed {
		if t.ID.IsZero() {
			t.ID = primitive.NewObjectID()
		}
		m.teams[t.ID] = copyTeam(t)
		m.order = append(m.order, t.ID)
	}
	return m
}

// List implements the TeamStore interface
func (m *MockTeamStore) List(ctx context.Context) ([]domain.Team, error) {
	m.record()
	if m.ListFn != nil {
		return m.ListFn(ctx)
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	teams := make([]domain.Team, 0, len(m.order))
	for _, id := range m.order {
		teams = append(teams, copyTeam(m.teams[id]))
	}
	return teams, nil
}

// GetByID implements the TeamStore interface
func (m *MockTeamStore) GetByID(ctx context.Context, id primitive.ObjectID) (*domain.Team, error) {
	m.record()
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	t, ok := m.teams[id]
	if !ok {
		return nil, store.ErrTeamNotFound
	}
	t = copyTeam(t)
	return &t, nil
}

// Create implements the TeamStore interface
func (m *MockTeamStore) Create(ctx context.Context, team *domain.Team) error {
	m.record()
	if m.CreateFn != nil {
		return m.CreateFn(ctx, team)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	team.ID = primitive.NewObjectID()
	m.teams[team.ID] = copyTeam(*team)
	m.order = append(m.order, team.ID)
	return nil
}

// AppendPlayer implements the TeamStore interface
func (m *MockTeamStore) AppendPlayer(
	ctx context.Context,
	id primitive.ObjectID,
	player domain.Player,
) (*domain.Team, error) {
	m.record()
	if m.AppendPlayerFn != nil {
		return m.AppendPlayerFn(ctx, id, player)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	t, ok := m.teams[id]
	if !ok {
		return nil, store.ErrTeamNotFound
	}
	t = copyTeam(t)
	t.AddPlayer(player)
	m.teams[id] = t

	t = copyTeam(t)
	return &t, nil
}

// Delete implements the TeamStore interface
func (m *MockTeamStore) Delete(ctx context.Context, id primitive.ObjectID) error {
	m.record()
	if m.DeleteFn != nil {
		return m.DeleteFn(ctx, id)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.teams[id]; !ok {
		return store.ErrTeamNotFound
	}
	delete(m.teams, id)
	m.order = removeID(m.order, id)
	return nil
}
