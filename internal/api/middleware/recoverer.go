package middleware

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"runtime/debug"

	"github.com/web420/restapi/internal/api/shared"
	"github.com/web420/restapi/internal/platform/logger"
	"github.com/web420/restapi/internal/redact"
)

// panicMessage is the client-facing text for a recovered panic.
const panicMessage = "Server Exception"

// Recoverer turns a panicking handler into a 500 JSON error response under
// the message key, carrying the trace ID. The panic value and stack are
// logged redacted. http.ErrAbortHandler is re-raised so net/http can abort
// the connection.
func Recoverer(fallback *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				rec := recover()
				if rec == nil {
					return
				}
				if err, ok := rec.(error); ok && errors.Is(err, http.ErrAbortHandler) {
					panic(rec)
				}

				err := fmt.Errorf("panic: %v", rec)
				logger.FromContextOrDefault(r.Context(), fallback).Error("recovered from panic",
					slog.String("error", redact.Error(err)),
					slog.String("stack", redact.String(string(debug.Stack()))))

				shared.RespondWithErrorAndLog(w, r, http.StatusInternalServerError,
					shared.MessageKey, panicMessage, err)
			}()

			next.ServeHTTP(w, r)
		})
	}
}
