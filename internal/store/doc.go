// Package store defines the repository interfaces the HTTP handlers depend on.
// Each resource gets one thin interface; the MongoDB implementation lives in
// internal/platform/mongo and in-memory fakes live in internal/mocks.
package store
