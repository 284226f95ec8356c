package mongo

import (
	"context"
	"log/slog"

	"github.com/web420/restapi/internal/domain"
	"github.com/web420/restapi/internal/store"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// MongoPersonStore implements store.PersonStore on the people collection.
type MongoPersonStore struct {
	collection
}

// NewMongoPersonStore creates a person store on db.
func NewMongoPersonStore(db *mongo.Database, logger *slog.Logger, observer Observer) *MongoPersonStore {
	return &MongoPersonStore{collection: newCollection(db, PeopleCollection, logger, observer)}
}

// Ensure MongoPersonStore implements store.PersonStore interface
var _ store.PersonStore = (*MongoPersonStore)(nil)

// List implements store.PersonStore.List
func (s *MongoPersonStore) List(ctx context.Context) ([]domain.Person, error) {
	people := []domain.Person{}
	if err := findAll(ctx, s.coll, &people); err != nil {
		return nil, s.done(ctx, "list", err)
	}

	for i := range people {
		normalizePerson(&people[i])
	}

	return people, s.done(ctx, "list", nil)
}

// Create implements store.PersonStore.Create
func (s *MongoPersonStore) Create(ctx context.Context, person *domain.Person) error {
	normalizePerson(person)

	person.ID = primitive.NilObjectID
	res, err := s.coll.InsertOne(ctx, person)
	if err != nil {
		return s.done(ctx, "create", MapError(err))
	}

	person.ID = insertedID(res)
	return s.done(ctx, "create", nil)
}

func normalizePerson(p *domain.Person) {
	if p.Roles == nil {
		p.Roles = []domain.Role{}
	}
	if p.Dependents == nil {
		p.Dependents = []domain.Dependent{}
	}
}
