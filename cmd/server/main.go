// Package main implements the entry point for the WEB 420 API server, which
// serves the composer, person, customer, team and session resources backed
// by MongoDB.
package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
)

// main loads configuration, sets up logging, connects to the document store,
// wires the handlers and serves until SIGINT or SIGTERM.
func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx); err != nil {
		log.Fatalf("Server failed: %v", err)
	}
}

func run(ctx context.Context) error {
	cfg, err := loadAppConfig()
	if err != nil {
		return err
	}

	logger, err := setupAppLogger(cfg)
	if err != nil {
		return err
	}

	m := newMetrics()

	client, db, err := setupAppDatabase(ctx, cfg, logger)
	if err != nil {
		return fmt.Errorf("failed to set up database: %w", err)
	}

	app, err := newApplication(cfg, logger, m, mongoStores(db, logger, m))
	if err != nil {
		_ = client.Disconnect(context.Background())
		return fmt.Errorf("failed to initialize application: %w", err)
	}
	app.disconnect = client.Disconnect

	return app.Run(ctx)
}
