// Package mongotest connects repository tests to a throwaway database.
// Tests are skipped unless MONGO_TEST_URI points at a replica set.
package mongotest

import (
	"context"
	"os"
	"strings"
	"testing"

	"github.com/google/uuid"

	"github.com/x-xyz/holderauction/base/database/mongoclient"
	"github.com/x-xyz/holderauction/service/query"
)

const uriEnv = "MONGO_TEST_URI"

// Connect returns a query layer on a fresh database which is dropped when
// the test ends.
func Connect(t *testing.T) query.Mongo {
	uri := os.Getenv(uriEnv)
	if uri == "" {
		t.Skipf("%s not set", uriEnv)
	}
	dbName := "holderauction_test_" + strings.ReplaceAll(uuid.NewString(), "-", "")[:12]
	client, err := mongoclient.ConnectMongoClient(mongoclient.Config{URI: uri, DBName: dbName})
	if err != nil {
		t.Fatalf("connect mongo: %v", err)
	}
	t.Cleanup(func() {
		_ = client.Database(dbName).Drop(context.Background())
		_ = client.Disconnect(context.Background())
	})
	return query.New(client)
}
