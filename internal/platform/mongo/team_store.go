package mongo

import (
	"context"
	"log/slog"

	"github.com/web420/restapi/internal/domain"
	"github.com/web420/restapi/internal/store"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// MongoTeamStore implements store.TeamStore on the teams collection.
type MongoTeamStore struct {
	collection
}

// NewMongoTeamStore creates a team store on db.
func NewMongoTeamStore(db *mongo.Database, logger *slog.Logger, observer Observer) *MongoTeamStore {
	return &MongoTeamStore{collection: newCollection(db, TeamsCollection, logger, observer)}
}

// Ensure MongoTeamStore implements store.TeamStore interface
var _ store.TeamStore = (*MongoTeamStore)(nil)

// List implements store.TeamStore.List
func (s *MongoTeamStore) List(ctx context.Context) ([]domain.Team, error) {
	teams := []domain.Team{}
	if err := findAll(ctx, s.coll, &teams); err != nil {
		return nil, s.done(ctx, "list", err)
	}

	for i := range teams {
		normalizeTeam(&teams[i])
	}

	return teams, s.done(ctx, "list", nil)
}

// GetByID implements store.TeamStore.GetByID
func (s *MongoTeamStore) GetByID(ctx context.Context, id primitive.ObjectID) (*domain.Team, error) {
	team, err := s.findByID(ctx, id)
	return team, s.done(ctx, "get", err)
}

// Create implements store.TeamStore.Create
func (s *MongoTeamStore) Create(ctx context.Context, team *domain.Team) error {
	normalizeTeam(team)

	team.ID = primitive.NilObjectID
	res, err := s.coll.InsertOne(ctx, team)
	if err != nil {
		return s.done(ctx, "create", MapError(err))
	}

	team.ID = insertedID(res)
	return s.done(ctx, "create", nil)
}

// AppendPlayer implements store.TeamStore.AppendPlayer
func (s *MongoTeamStore) AppendPlayer(
	ctx context.Context,
	id primitive.ObjectID,
	player domain.Player,
) (*domain.Team, error) {
	team, err := s.findByID(ctx, id)
	if err != nil {
		return nil, s.done(ctx, "append", err)
	}

	team.AddPlayer(player)

	if err := replaceByID(ctx, s.coll, team.ID, team, store.ErrTeamNotFound); err != nil {
		return nil, s.done(ctx, "append", err)
	}

	return team, s.done(ctx, "append", nil)
}

// Delete implements store.TeamStore.Delete
func (s *MongoTeamStore) Delete(ctx context.Context, id primitive.ObjectID) error {
	return s.done(ctx, "delete", deleteByID(ctx, s.coll, id, store.ErrTeamNotFound))
}

func (s *MongoTeamStore) findByID(ctx context.Context, id primitive.ObjectID) (*domain.Team, error) {
	var team domain.Team
	if err := s.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&team); err != nil {
		return nil, notFoundAs(err, store.ErrTeamNotFound)
	}

	normalizeTeam(&team)
	return &team, nil
}

func normalizeTeam(t *domain.Team) {
	if t.Players == nil {
		t.Players = []domain.Player{}
	}
}
