// Package testdb provides test database utilities for the Superheroes API.
//
// # Test Database Setup
//
// Create a test database for each test:
//
//	func TestSomething(t *testing.T) {
//	    tdb := testdb.New(t)
//
//	    // Use tdb.DB for database operations
//	}
//
// # Schema
//
// The embedded schema is applied on setup, the same script the server runs
// at startup.
//
// # Isolation
//
// Each test gets its own SQLite file under t.TempDir(), so parallel tests
// never see each other's rows. Reset empties the tables in place.
//
// # Timeout Context
//
//	ctx := tdb.Ctx() // 10 second timeout, cancelled at test cleanup
package testdb
