// Package middleware provides the HTTP middleware applied to every route:
// trace IDs, CORS headers, request logging, metrics and per-client rate limiting.
package middleware
