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

// MongoUserStore implements store.UserStore on the users collection.
type MongoUserStore struct {
	collection
}

// NewMongoUserStore creates a user store on db.
func NewMongoUserStore(db *mongo.Database, logger *slog.Logger, observer Observer) *MongoUserStore {
	return &MongoUserStore{collection: newCollection(db, UsersCollection, logger, observer)}
}

// Ensure MongoUserStore implements store.UserStore interface
var _ store.UserStore = (*MongoUserStore)(nil)

// Create implements store.UserStore.Create
// The user must already carry a password digest.
func (s *MongoUserStore) Create(ctx context.Context, user *domain.User) error {
	if err := user.Validate(); err != nil {
		return s.done(ctx, "create", fmt.Errorf("%w: %w", store.ErrInvalidEntity, err))
	}

	user.ID = primitive.NilObjectID
	res, err := s.coll.InsertOne(ctx, user)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return s.done(ctx, "create", fmt.Errorf("%w: %w", store.ErrUserNameExists, err))
		}
		return s.done(ctx, "create", MapError(err))
	}

	user.ID = insertedID(res)
	return s.done(ctx, "create", nil)
}

// GetByUserName implements store.UserStore.GetByUserName
func (s *MongoUserStore) GetByUserName(ctx context.Context, userName string) (*domain.User, error) {
	var user domain.User
	err := s.coll.FindOne(ctx, bson.M{"userName": userName}).Decode(&user)
	if err != nil {
		return nil, s.done(ctx, "get", notFoundAs(err, store.ErrUserNotFound))
	}

	return &user, s.done(ctx, "get", nil)
}
