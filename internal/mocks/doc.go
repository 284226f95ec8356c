// Package mocks provides in-memory implementations of the store and auth
// interfaces for testing.
//
// Every store mock keeps its documents in a map guarded by a sync.RWMutex and
// copies documents on the way in and out, so handler tests can run requests
// concurrently without sharing mutable state with the fake. Each method can be
// overridden with a function field, and every mock counts its calls:
//
//	composers := mocks.NewMockComposerStore()
//	composers.GetByIDFn = func(ctx context.Context, id primitive.ObjectID) (*domain.Composer, error) {
//	    return nil, store.ErrUnavailable
//	}
//
//	// ... exercise the handler ...
//	assert.Equal(t, 1, composers.Calls())
//
// When adding a new mock to this package:
//  1. Create a new file named after the interface being mocked
//  2. Give it a function field per interface method plus a map-backed default
//  3. Count calls so tests can assert that validation short-circuits the store
package mocks
