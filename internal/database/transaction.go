package database

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
)

// Transaction utilities
//
// A transaction is opened once per unit of work and carried on the context.
// Repositories never see it directly: they ask Database.Conn(ctx) for a
// Querier and get the transaction whenever one is in flight.
//
//	err := database.WithTransaction(ctx, db, func(ctx context.Context) error {
//	    // every repository call made with this ctx shares the transaction
//	    return nil
//	})
//
// Commit happens when the callback returns nil. Any error, or a panic,
// rolls back and nothing the callback wrote becomes visible.

type contextKey string

const txKey contextKey = "tx"

// ContextWithTx returns a copy of ctx carrying tx
func ContextWithTx(ctx context.Context, tx Transaction) context.Context {
	return context.WithValue(ctx, txKey, tx)
}

func txFromContext(ctx context.Context) Transaction {
	if tx, ok := ctx.Value(txKey).(Transaction); ok {
		return tx
	}
	return nil
}

// InTransaction reports whether ctx already carries a transaction
func InTransaction(ctx context.Context) bool {
	return txFromContext(ctx) != nil
}

// WithTransaction executes fn within a transaction stored on the context.
// If ctx already carries a transaction, fn joins it and the outermost caller
// decides the outcome.
func WithTransaction(ctx context.Context, db Database, fn func(ctx context.Context) error) (err error) {
	if InTransaction(ctx) {
		return fn(ctx)
	}

	tx, err := db.BeginTx(ctx)
	if err != nil {
		return err
	}

	defer func() {
		if p := recover(); p != nil {
			_ = tx.Rollback()
			panic(p)
		}
	}()

	if err := fn(ContextWithTx(ctx, tx)); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			slog.WarnContext(ctx, "transaction rollback failed", slog.String("error", rbErr.Error()))
		}
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("%w: commit: %w", ErrQuery, err)
	}
	return nil
}

// Transactor runs units of work against a Database.
// Services depend on it instead of the Database so they can be tested
// without a store.
type Transactor struct {
	db Database
}

// NewTransactor creates a new transactor
func NewTransactor(db Database) *Transactor {
	return &Transactor{db: db}
}

// WithTransaction runs fn in a transaction, see the package-level WithTransaction
func (t *Transactor) WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	if t == nil || t.db == nil {
		return errors.New("transactor has no database")
	}
	return WithTransaction(ctx, t.db, fn)
}
