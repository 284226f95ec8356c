package mongo

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/web420/restapi/internal/domain"
	"github.com/web420/restapi/internal/store"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// MongoComposerStore implements store.ComposerStore on the composers collection.
type MongoComposerStore struct {
	collection
}

// NewMongoComposerStore creates a composer store on db.
// If logger is nil, the default logger is used.
func NewMongoComposerStore(db *mongo.Database, logger *slog.Logger, observer Observer) *MongoComposerStore {
	return &MongoComposerStore{collection: newCollection(db, ComposersCollection, logger, observer)}
}

// Ensure MongoComposerStore implements store.ComposerStore interface
var _ store.ComposerStore = (*MongoComposerStore)(nil)

// List implements store.ComposerStore.List
func (s *MongoComposerStore) List(ctx context.Context) ([]domain.Composer, error) {
	composers := []domain.Composer{}
	if err := findAll(ctx, s.coll, &composers); err != nil {
		return nil, s.done(ctx, "list", err)
	}

	return composers, s.done(ctx, "list", nil)
}

// GetByID implements store.ComposerStore.GetByID
func (s *MongoComposerStore) GetByID(ctx context.Context, id primitive.ObjectID) (*domain.Composer, error) {
	var composer domain.Composer
	err := s.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&composer)
	if err != nil {
		return nil, s.done(ctx, "get", notFoundAs(err, store.ErrComposerNotFound))
	}

	return &composer, s.done(ctx, "get", nil)
}

// Create implements store.ComposerStore.Create
// The unique indexes turn a repeated first or last name into store.ErrDuplicate.
func (s *MongoComposerStore) Create(ctx context.Context, composer *domain.Composer) error {
	if err := composer.Validate(); err != nil {
		return s.done(ctx, "create", fmt.Errorf("%w: %w", store.ErrInvalidEntity, err))
	}

	composer.ID = primitive.NilObjectID
	res, err := s.coll.InsertOne(ctx, composer)
	if err != nil {
		return s.done(ctx, "create", MapError(err))
	}

	composer.ID = insertedID(res)
	return s.done(ctx, "create", nil)
}

// Update implements store.ComposerStore.Update
func (s *MongoComposerStore) Update(ctx context.Context, composer *domain.Composer) error {
	if err := composer.Validate(); err != nil {
		return s.done(ctx, "update", fmt.Errorf("%w: %w", store.ErrInvalidEntity, err))
	}

	return s.done(ctx, "update", replaceByID(ctx, s.coll, composer.ID, composer, store.ErrComposerNotFound))
}

// Delete implements store.ComposerStore.Delete
func (s *MongoComposerStore) Delete(ctx context.Context, id primitive.ObjectID) error {
	return s.done(ctx, "delete", deleteByID(ctx, s.coll, id, store.ErrComposerNotFound))
}
