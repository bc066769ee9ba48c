// Package testdb provides test database utilities for integration testing.
//
// Each TestDB is a fresh SQLite file in the test's temp directory with the
// embedded schema applied, so tests run real queries with foreign keys and
// cascades enforced and never share rows with one another.
//
// Usage:
//
//	func TestSomething(t *testing.T) {
//	    tdb := testdb.New(t)
//
//	    // Use tdb.DB for database operations
//	    repo := repository.NewHeroRepository(tdb.DB)
//	}
package testdb

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/1Markish/Superheroes/internal/database"
)

// TestDB provides an isolated database environment for testing.
type TestDB struct {
	DB   database.Database
	Path string
	t    *testing.T
}

// tables in the order they can be cleared without tripping foreign keys
var tables = []string{"hero_powers", "heroes", "powers"}

// New creates a new isolated test database with the schema applied.
// The database is closed automatically when the test finishes.
func New(t *testing.T) *TestDB {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	path := filepath.Join(t.TempDir(), "test.db")
	db := database.NewSQLDB(database.Config{
		Driver: database.DriverSQLite,
		DSN:    "file:" + path + "?_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)",
	})
	if err := db.Connect(ctx); err != nil {
		t.Fatalf("testdb: failed to connect: %v", err)
	}

	if err := db.ApplySchema(ctx); err != nil {
		_ = db.Close()
		t.Fatalf("testdb: failed to apply schema: %v", err)
	}

	tdb := &TestDB{
		DB:   db,
		Path: path,
		t:    t,
	}
	t.Cleanup(tdb.Close)

	return tdb
}

// Close releases the connection. The file goes away with the temp dir.
func (tdb *TestDB) Close() {
	if tdb.DB == nil {
		return
	}
	_ = tdb.DB.Close()
	tdb.DB = nil
}

// Reset clears all data from tables while preserving schema.
func (tdb *TestDB) Reset(t *testing.T) {
	t.Helper()

	for _, table := range tables {
		if _, err := tdb.DB.Conn(tdb.Ctx()).ExecContext(tdb.Ctx(), "DELETE FROM "+table); err != nil {
			t.Fatalf("testdb: failed to clear table %s: %v", table, err)
		}
	}
}

// Ctx returns a context with a reasonable timeout for test operations.
func (tdb *TestDB) Ctx() context.Context {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	tdb.t.Cleanup(cancel)
	return ctx
}

// MustExec executes a statement and fails the test on error.
func (tdb *TestDB) MustExec(query string, args ...any) {
	tdb.t.Helper()
	if _, err := tdb.DB.Conn(tdb.Ctx()).ExecContext(tdb.Ctx(), query, args...); err != nil {
		tdb.t.Fatalf("testdb: exec failed: %v\nQuery: %s", err, query)
	}
}

// MustCount returns the number of rows in table, failing the test on error.
func (tdb *TestDB) MustCount(table string) int {
	tdb.t.Helper()
	var n int
	if err := tdb.DB.Conn(tdb.Ctx()).GetContext(tdb.Ctx(), &n, "SELECT COUNT(*) FROM "+table); err != nil {
		tdb.t.Fatalf("testdb: count %s failed: %v", table, err)
	}
	return n
}
