package mongo

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/web420/restapi/internal/config"
	"github.com/web420/restapi/internal/redact"
	"github.com/web420/restapi/internal/store"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// Collection names, one per resource.
const (
	ComposersCollection = "composers"
	PeopleCollection    = "people"
	CustomersCollection = "customers"
	TeamsCollection     = "teams"
	UsersCollection     = "users"
)

const appName = "web420-restapi"

// Connect opens a client for cfg and verifies that the primary answers a ping
// within the configured timeout. The caller owns the returned client and must
// call Disconnect.
func Connect(ctx context.Context, cfg config.DatabaseConfig, logger *slog.Logger) (*mongo.Client, error) {
	if logger == nil {
		logger = slog.Default()
	}

	timeout := time.Duration(cfg.TimeoutSeconds) * time.Second
	opts := options.Client().
		ApplyURI(cfg.URI).
		SetAppName(appName).
		SetConnectTimeout(timeout).
		SetServerSelectionTimeout(timeout)

	client, err := mongo.Connect(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to create document store client: %w", MapError(err))
	}

	pingCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	if err := client.Ping(pingCtx, readpref.Primary()); err != nil {
		if dcErr := client.Disconnect(context.Background()); dcErr != nil {
			logger.Error("failed to disconnect after ping failure", slog.String("error", dcErr.Error()))
		}
		return nil, fmt.Errorf("failed to ping document store: %w", MapError(err))
	}

	logger.Info("document store connection established",
		slog.String("database", cfg.Name),
		slog.Duration("timeout", timeout))

	return client, nil
}

// EnsureIndexes creates the indexes the stores rely on. Composer names are
// unique individually; the user name indexes only speed up lookups.
// Creating an index that already exists is a no-op.
func EnsureIndexes(ctx context.Context, db *mongo.Database) error {
	indexes := map[string][]mongo.IndexModel{
		ComposersCollection: {
			{
				Keys:    bson.D{{Key: "firstName", Value: 1}},
				Options: options.Index().SetName("firstName_unique").SetUnique(true),
			},
			{
				Keys:    bson.D{{Key: "lastName", Value: 1}},
				Options: options.Index().SetName("lastName_unique").SetUnique(true),
			},
		},
		CustomersCollection: {
			{
				Keys:    bson.D{{Key: "userName", Value: 1}},
				Options: options.Index().SetName("userName"),
			},
		},
		UsersCollection: {
			{
				Keys:    bson.D{{Key: "userName", Value: 1}},
				Options: options.Index().SetName("userName"),
			},
		},
	}

	for name, models := range indexes {
		if _, err := db.Collection(name).Indexes().CreateMany(ctx, models); err != nil {
			return fmt.Errorf("failed to create indexes on %s: %w", name, MapError(err))
		}
	}

	return nil
}

// Observer receives the outcome of every store operation.
// *metrics.Metrics satisfies it.
type Observer interface {
	ObserveStoreOperation(collection, operation string, err error)
}

type noopObserver struct{}

func (noopObserver) ObserveStoreOperation(string, string, error) {}

// collection bundles what every store needs to talk to one collection.
type collection struct {
	coll     *mongo.Collection
	logger   *slog.Logger
	observer Observer
}

func newCollection(db *mongo.Database, name string, logger *slog.Logger, observer Observer) collection {
	if db == nil {
		panic("db cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}
	if observer == nil {
		observer = noopObserver{}
	}

	return collection{
		coll:     db.Collection(name),
		logger:   logger.With(slog.String("component", name+"_store")),
		observer: observer,
	}
}

// done records the outcome of op and returns err unchanged.
// Not-found results count as successful lookups.
func (c collection) done(ctx context.Context, op string, err error) error {
	recorded := err
	if store.IsNotFoundError(err) {
		recorded = nil
	}
	c.observer.ObserveStoreOperation(c.coll.Name(), op, recorded)

	if recorded != nil {
		c.logger.DebugContext(ctx, "store operation failed",
			slog.String("operation", op),
			slog.String("error", redact.Error(err)))
	}
	return err
}

// Stores groups the MongoDB implementations of every repository.
type Stores struct {
	Composers *MongoComposerStore
	People    *MongoPersonStore
	Customers *MongoCustomerStore
	Teams     *MongoTeamStore
	Users     *MongoUserStore
}

// NewStores creates every store on db. logger and observer may be nil.
func NewStores(db *mongo.Database, logger *slog.Logger, observer Observer) *Stores {
	return &Stores{
		Composers: NewMongoComposerStore(db, logger, observer),
		People:    NewMongoPersonStore(db, logger, observer),
		Customers: NewMongoCustomerStore(db, logger, observer),
		Teams:     NewMongoTeamStore(db, logger, observer),
		Users:     NewMongoUserStore(db, logger, observer),
	}
}
