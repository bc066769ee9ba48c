// Package database provides the SQL store behind the Superheroes API.
//
// The Database interface hides the driver (SQLite through modernc.org/sqlite or
// PostgreSQL through lib/pq) behind sqlx connections and a go-sqlbuilder flavor,
// so repositories build dialect-correct statements without knowing which
// engine is configured.
//
// # Transactions
//
// Transactions travel on the context. WithTransaction begins one, stores it on
// the context passed to the callback, and commits or rolls back depending on
// the callback's result. Repositories call Conn(ctx) and transparently run
// inside the surrounding transaction when there is one:
//
//	err := database.WithTransaction(ctx, db, func(ctx context.Context) error {
//	    hero, err := heroRepo.GetByID(ctx, heroID)   // same transaction
//	    ...
//	    return heroPowerRepo.Create(ctx, hp)         // same transaction
//	})
//
// Nested calls join the outer transaction instead of opening a new one.
//
// # Schema
//
// ApplySchema runs the embedded, idempotent CREATE TABLE script for the
// configured driver. There is no versioned migration history.
//
// # Error Handling
//
//   - ErrNotFound: Record does not exist
//   - ErrConnection: Database connection issues
//   - ErrQuery: Statement execution failures
//
//	if errors.Is(err, database.ErrNotFound) {
//	    // Handle missing record
//	}
package database
