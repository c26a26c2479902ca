package testdb

import (
	"context"
	"fmt"
	"os"
	"sync"
	"testing"
	"time"

	"github.com/surrealdb/surrealdb.go"

	"github.com/forgo/quest/api/internal/store"
)

// TestDB provides an isolated store for testing. With no TEST_DB_HOST set it
// is backed by the in-memory store; otherwise each TestDB connects to the
// configured SurrealDB instance under a unique namespace.
type TestDB struct {
	Store     store.Store
	Namespace string
	t         *testing.T
	config    store.Config
}

var (
	// counterMu protects the namespace counter
	counterMu sync.Mutex
	counter   int64
)

// getTestConfig returns store config from environment or defaults
func getTestConfig() store.Config {
	port := os.Getenv("TEST_DB_PORT")
	if port == "" {
		port = "8000"
	}

	user := os.Getenv("TEST_DB_USER")
	if user == "" {
		user = "root"
	}

	password := os.Getenv("TEST_DB_PASSWORD")
	if password == "" {
		password = "root"
	}

	return store.Config{
		Host:     os.Getenv("TEST_DB_HOST"),
		Port:     port,
		User:     user,
		Password: password,
	}
}

// uniqueNamespace generates a unique namespace for test isolation
func uniqueNamespace() string {
	counterMu.Lock()
	defer counterMu.Unlock()
	counter++
	return fmt.Sprintf("test_%d_%d", time.Now().UnixNano(), counter)
}

// New creates a new isolated test store. Call Close() when done to clean up.
func New(t *testing.T) *TestDB {
	t.Helper()

	cfg := getTestConfig()
	if cfg.Host == "" {
		return &TestDB{Store: store.NewMemory(), t: t}
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	cfg.Namespace = uniqueNamespace()
	cfg.Database = "test"

	s := store.NewSurrealDB(cfg)
	if err := s.Connect(ctx); err != nil {
		t.Fatalf("testdb: failed to connect: %v", err)
	}

	return &TestDB{
		Store:     s,
		Namespace: cfg.Namespace,
		t:         t,
		config:    cfg,
	}
}

// Close cleans up the test store. SurrealDB-backed stores have their test
// namespace removed.
func (tdb *TestDB) Close() {
	if tdb.Store == nil {
		return
	}
	if tdb.Namespace != "" {
		tdb.removeNamespace()
	}
	_ = tdb.Store.Close()
}

// removeNamespace drops the test namespace over a short-lived raw connection,
// since namespace management sits outside the Store interface.
func (tdb *TestDB) removeNamespace() {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	endpoint := fmt.Sprintf("ws://%s:%s", tdb.config.Host, tdb.config.Port)
	db, err := surrealdb.FromEndpointURLString(ctx, endpoint)
	if err != nil {
		return // Ignore errors on cleanup
	}
	defer func() { _ = db.Close(ctx) }()

	if _, err := db.SignIn(ctx, &surrealdb.Auth{
		Username: tdb.config.User,
		Password: tdb.config.Password,
	}); err != nil {
		return
	}
	_, _ = surrealdb.Query[interface{}](ctx, db, "REMOVE NAMESPACE IF EXISTS "+tdb.Namespace, nil)
}

// Reset clears all entity data. This is faster than creating a new TestDB
// for tests that need fresh data.
func (tdb *TestDB) Reset(t *testing.T) {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	for _, root := range []string{"users", "sessions", "teams", "artifacts"} {
		if err := tdb.Store.Delete(ctx, store.NewPath(root)); err != nil {
			t.Fatalf("testdb: failed to clear %s: %v", root, err)
		}
	}
}

// Ctx returns a context with a reasonable timeout for test operations.
func (tdb *TestDB) Ctx() context.Context {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	_ = cancel // test operations complete well within the timeout
	return ctx
}
