package shared

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
)

// Key type for context values
type ContextKey string

const (
	// TraceIDKey is the key for the trace ID in the request context
	TraceIDKey ContextKey = "traceID"

	// TraceIDHeader carries the trace ID on every response.
	TraceIDHeader = "X-Trace-ID"
)

// SetTraceID adds a freshly generated trace ID to the context.
// This is useful for correlating logs and error responses.
func SetTraceID(ctx context.Context) context.Context {
	return WithTraceID(ctx, generateTraceID())
}

// WithTraceID stores traceID in the context.
func WithTraceID(ctx context.Context, traceID string) context.Context {
	return context.WithValue(ctx, TraceIDKey, traceID)
}

// GetTraceID retrieves the trace ID from the context.
// If no trace ID exists, it returns an empty string.
func GetTraceID(ctx context.Context) string {
	traceID, ok := ctx.Value(TraceIDKey).(string)
	if !ok {
		return ""
	}
	return traceID
}

// generateTraceID returns a random (version 4) UUID. If the random source
// fails it falls back to a time-based (version 1) UUID, never a static value.
func generateTraceID() string {
	id, err := uuid.NewRandom()
	if err == nil {
		return id.String()
	}

	slog.Error("failed to generate random trace ID",
		"error", err,
		"fallback", "time-based generation")

	id, err = uuid.NewUUID()
	if err != nil {
		return uuid.Must(uuid.NewRandom()).String()
	}
	return id.String()
}
