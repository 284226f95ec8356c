package main

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/web420/restapi/internal/api"
	"github.com/web420/restapi/internal/api/openapi"
	"github.com/web420/restapi/internal/config"
	"github.com/web420/restapi/internal/platform/metrics"
	"github.com/web420/restapi/internal/service/auth"
	"github.com/web420/restapi/internal/store"
)

// apiPrefix is where the resource routes are mounted.
const apiPrefix = "/api"

// limiterPruneInterval is how often idle rate limiter buckets are dropped.
const limiterPruneInterval = 5 * time.Minute

// appStores groups the repositories the handlers depend on.
type appStores struct {
	composers store.ComposerStore
	people    store.PersonStore
	customers store.CustomerStore
	teams     store.TeamStore
	users     store.UserStore
}

// application holds all the shared application dependencies to simplify management
// and ensure proper cleanup on shutdown.
type application struct {
	// Configuration
	config *config.Config

	// Core services
	logger  *slog.Logger
	metrics *metrics.Metrics

	// Stores (using interfaces for proper abstraction)
	stores appStores

	// Password hashing and verification
	passwords *auth.BcryptVerifier

	// Handlers and the document describing them
	handlers *api.Handlers
	document *openapi.Document

	// disconnect closes the document store connection, if there is one.
	disconnect func(context.Context) error
}

func newMetrics() *metrics.Metrics {
	return metrics.New()
}

// newApplication creates a new application instance with all dependencies initialized.
func newApplication(
	cfg *config.Config,
	logger *slog.Logger,
	m *metrics.Metrics,
	stores appStores,
) (*application, error) {
	app := &application{
		config:    cfg,
		logger:    logger,
		metrics:   m,
		stores:    stores,
		passwords: auth.NewBcryptVerifier(cfg.Auth.BcryptCost),
	}

	app.handlers = &api.Handlers{
		Composers: api.NewComposerHandler(stores.composers, logger),
		People:    api.NewPersonHandler(stores.people, logger),
		Customers: api.NewCustomerHandler(stores.customers, logger),
		Teams:     api.NewTeamHandler(stores.teams, logger),
		Sessions:  api.NewSessionHandler(stores.users, app.passwords, app.passwords, logger),
	}

	doc, err := api.Document(apiPrefix, app.handlers.Routes())
	if err != nil {
		return nil, fmt.Errorf("failed to build API document: %w", err)
	}
	doc.Servers = openapi3.Servers{{URL: fmt.Sprintf("http://localhost:%d", cfg.Server.Port)}}
	app.document = doc

	logger.Info("Application initialized successfully",
		"bcrypt_cost", cfg.Auth.BcryptCost,
		"rate_limit_rps", cfg.RateLimit.RequestsPerSecond)
	return app, nil
}

// Run starts the application server, handling lifecycle and cleanup.
// It returns an error if the server fails to start or encounters problems.
func (app *application) Run(ctx context.Context) error {
	router := app.setupRouter(ctx)

	if err := app.startHTTPServer(ctx, router); err != nil {
		return fmt.Errorf("server error: %w", err)
	}

	return nil
}

// cleanup handles graceful shutdown of application resources.
func (app *application) cleanup() {
	if app.disconnect != nil {
		ctx, cancel := context.WithTimeout(context.Background(),
			time.Duration(app.config.Database.TimeoutSeconds)*time.Second)
		defer cancel()

		if err := app.disconnect(ctx); err != nil {
			app.logger.Error("Error closing database connection", "error", err)
		}
	}

	app.logger.Info("Application shutdown completed")
}
