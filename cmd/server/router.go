package main

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/web420/restapi/internal/api"
	apiMiddleware "github.com/web420/restapi/internal/api/middleware"
	"github.com/web420/restapi/internal/api/openapi"
)

// setupRouter creates and configures the application router with all routes
// and middleware. ctx bounds background work started for the router, such as
// pruning idle rate limiter buckets.
func (app *application) setupRouter(ctx context.Context) http.Handler {
	r := chi.NewRouter()

	limiter := apiMiddleware.NewRateLimiter(app.config.RateLimit.RequestsPerSecond, app.config.RateLimit.Burst)
	limiter.StartPruning(ctx, limiterPruneInterval)

	// Apply standard middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(apiMiddleware.Trace(app.logger))
	r.Use(apiMiddleware.RequestLogger(app.logger))
	r.Use(apiMiddleware.Recoverer(app.logger))
	r.Use(apiMiddleware.Metrics(app.metrics))
	r.Use(apiMiddleware.NewCORS(app.config.CORS.AllowedOrigins).Handler)

	r.Route(apiPrefix, func(r chi.Router) {
		r.Use(limiter.Handler)
		api.Mount(r, app.handlers.Routes())
	})

	// API documentation
	r.Method(http.MethodGet, "/api-docs", openapi.Handler(app.document))
	r.Method(http.MethodGet, "/api-docs/openapi.yaml", openapi.YAMLHandler(app.document))

	// Health check endpoint
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, err := w.Write([]byte("OK"))
		if err != nil {
			app.logger.Error("Failed to write health check response", "error", err)
		}
	})

	r.Method(http.MethodGet, "/metrics", app.metrics.Handler())

	return r
}
