package middleware

import (
	"log/slog"
	"net/http"

	"github.com/google/uuid"
	"github.com/web420/restapi/internal/api/shared"
	"github.com/web420/restapi/internal/platform/logger"
)

// Trace assigns every request a trace ID and a request-scoped logger.
// A well-formed X-Trace-ID sent by the client is kept; anything else is
// replaced with a fresh ID. The ID is echoed in the X-Trace-ID response header.
// This middleware should be applied early in the chain so every later
// handler and error response sees the trace ID.
func Trace(base *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()
			if incoming, err := uuid.Parse(r.Header.Get(shared.TraceIDHeader)); err == nil {
				ctx = shared.WithTraceID(ctx, incoming.String())
			} else {
				ctx = shared.SetTraceID(ctx)
			}
			traceID := shared.GetTraceID(ctx)

			log := base.With(slog.String("trace_id", traceID))
			ctx = logger.WithLogger(ctx, log)

			w.Header().Set(shared.TraceIDHeader, traceID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
