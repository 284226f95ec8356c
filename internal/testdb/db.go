package testdb

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// TestTimeout bounds connecting to, and cleaning up, the test server.
// CI runners get more headroom because the server often starts alongside the tests.
func TestTimeout() time.Duration {
	if isCIEnvironment() {
		return 30 * time.Second
	}
	return 10 * time.Second
}

// DatabaseName returns a database name unique to this call.
func DatabaseName() string {
	return "web420_test_" + primitive.NewObjectID().Hex()
}

// GetTestDBWithT connects to the test server and returns an empty database
// that is dropped, and its client disconnected, when t completes.
// The test is skipped if no test server is configured.
func GetTestDBWithT(t *testing.T) *mongo.Database {
	t.Helper()

	if ShouldSkipDatabaseTest() {
		t.Skipf("%s not set, skipping document store integration test", EnvTestMongoURI)
	}

	ctx, cancel := context.WithTimeout(context.Background(), TestTimeout())
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().
		ApplyURI(GetTestDatabaseURI()).
		SetAppName("web420-tests").
		SetServerSelectionTimeout(TestTimeout()))
	require.NoError(t, err, "failed to connect to test document store")
	require.NoError(t, client.Ping(ctx, readpref.Primary()), "test document store is not reachable")

	db := client.Database(DatabaseName())

	t.Cleanup(func() {
		ctx, cancel := context.WithTimeout(context.Background(), TestTimeout())
		defer cancel()

		if err := db.Drop(ctx); err != nil {
			t.Logf("failed to drop test database %s: %v", db.Name(), err)
		}
		if err := client.Disconnect(ctx); err != nil {
			t.Logf("failed to disconnect from test document store: %v", err)
		}
	})

	return db
}
