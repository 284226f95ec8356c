package main

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/web420/restapi/internal/config"
	"github.com/web420/restapi/internal/platform/metrics"
	platformmongo "github.com/web420/restapi/internal/platform/mongo"
	"go.mongodb.org/mongo-driver/mongo"
)

// setupAppDatabase connects to MongoDB and makes sure the unique indexes the
// stores rely on exist. The client is disconnected again if index creation fails.
func setupAppDatabase(
	ctx context.Context,
	cfg *config.Config,
	logger *slog.Logger,
) (*mongo.Client, *mongo.Database, error) {
	client, err := platformmongo.Connect(ctx, cfg.Database, logger)
	if err != nil {
		return nil, nil, err
	}

	db := client.Database(cfg.Database.Name)

	indexCtx, cancel := context.WithTimeout(ctx, time.Duration(cfg.Database.TimeoutSeconds)*time.Second)
	defer cancel()

	if err := platformmongo.EnsureIndexes(indexCtx, db); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, nil, fmt.Errorf("failed to ensure indexes: %w", err)
	}

	logger.Info("Database connection established", "database", cfg.Database.Name)
	return client, db, nil
}

// mongoStores builds the MongoDB-backed stores, reporting every operation to m.
func mongoStores(db *mongo.Database, logger *slog.Logger, m *metrics.Metrics) appStores {
	s := platformmongo.NewStores(db, logger, m)
	return appStores{
		composers: s.Composers,
		people:    s.People,
		customers: s.Customers,
		teams:     s.Teams,
		users:     s.Users,
	}
}
