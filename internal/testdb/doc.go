// Package testdb provides utilities for document store integration tests.
//
// Each test gets its own freshly named database on the server named by
// WEB420_TEST_MONGO_URI. The database is dropped when the test completes, so
// tests can run in parallel without seeing each other's documents.
//
// # Basic Usage
//
//	func TestMyStore(t *testing.T) {
//	    t.Parallel()
//
//	    // Skips the test when WEB420_TEST_MONGO_URI is not set
//	    db := testdb.GetTestDBWithT(t)
//
//	    s := mongo.NewMongoComposerStore(db, nil, nil)
//	    ...
//	}
//
// # Environment Variables
//
// - WEB420_TEST_MONGO_URI: connection string of the test server
package testdb
