package store_test

import (
	"context"
	"os"
	"testing"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/phylo-app/phylo/internal/db"
	"github.com/phylo-app/phylo/internal/db/migrations"
	"github.com/phylo-app/phylo/internal/dbpool"
	"github.com/phylo-app/phylo/internal/store"
)

// testEnv holds shared test infrastructure (single pool across all tests).
type testEnv struct {
	pool *dbpool.Pool
	log  *logrus.Logger
}

var sharedEnv *testEnv

func getTestEnv(t *testing.T) *testEnv {
	t.Helper()

	if sharedEnv != nil {
		return sharedEnv
	}

	dbURL := os.Getenv("TEST_DATABASE_URL")
	if dbURL == "" {
		t.Skip("TEST_DATABASE_URL not set")
	}

	ctx := context.Background()

	pool, err := dbpool.NewPool(ctx, dbURL, 4)
	if err != nil {
		t.Fatalf("connecting to test DB: %v", err)
	}

	log := logrus.New()
	log.SetLevel(logrus.ErrorLevel)

	if err := db.RunMigrations(ctx, pool, log, migrations.FS); err != nil {
		t.Fatalf("running migrations: %v", err)
	}

	sharedEnv = &testEnv{
		pool: pool,
		log:  log,
	}

	return sharedEnv
}

// seedTree inserts a fresh tree, removed again after the test.
func seedTree(t *testing.T, env *testEnv, name string) string {
	t.Helper()

	treeID := uuid.New().String()
	ctx := context.Background()

	if _, err := env.pool.Exec(ctx, "INSERT INTO trees (id, name) VALUES ($1, $2)", treeID, name); err != nil {
		t.Fatalf("creating test tree: %v", err)
	}

	t.Cleanup(func() {
		// Members and relationships cascade.
		env.pool.Exec(context.Background(), "DELETE FROM trees WHERE id = $1", treeID) //nolint:errcheck // best-effort cleanup
	})

	return treeID
}

func seedMember(t *testing.T, env *testEnv, treeID, name, gender string) string {
	t.Helper()

	id := uuid.New().String()

	_, err := env.pool.Exec(context.Background(),
		"INSERT INTO members (id, tree_id, name, gender) VALUES ($1, $2, $3, $4)",
		id, treeID, name, gender,
	)
	if err != nil {
		t.Fatalf("creating member %s: %v", name, err)
	}

	return id
}

func seedRelationship(t *testing.T, env *testEnv, treeID, kind, a, b string) {
	t.Helper()

	_, err := env.pool.Exec(context.Background(),
		"INSERT INTO relationships (id, tree_id, kind, member_a, member_b) VALUES ($1, $2, $3, $4, $5)",
		uuid.New().String(), treeID, kind, a, b,
	)
	if err != nil {
		t.Fatalf("creating %s relationship: %v", kind, err)
	}
}

func newTreeStore(t *testing.T) (*store.TreeStore, *testEnv) {
	t.Helper()

	env := getTestEnv(t)

	return store.NewTreeStore(store.Base{Pool: env.pool, Log: env.log}), env
}
