package database

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/huandu/go-sqlbuilder"
	"github.com/jmoiron/sqlx"
)

// Standard errors for database operations.
// Use errors.Is() to check these error types in calling code.
var (
	// ErrNotFound indicates the requested record does not exist.
	ErrNotFound = errors.New("record not found")

	// ErrConnection indicates a failure to connect to or communicate with the database.
	ErrConnection = errors.New("database connection error")

	// ErrQuery indicates a query execution failure (syntax error, constraint violation, etc.).
	ErrQuery = errors.New("query error")

	// ErrUnsupportedDriver indicates a driver name with no registered dialect.
	ErrUnsupportedDriver = errors.New("unsupported database driver")
)

// Querier is the statement surface shared by connections and transactions.
// Both *sqlx.DB and *sqlx.Tx satisfy it.
type Querier interface {
	GetContext(ctx context.Context, dest any, query string, args ...any) error
	SelectContext(ctx context.Context, dest any, query string, args ...any) error
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryRowxContext(ctx context.Context, query string, args ...any) *sqlx.Row
}

// Database defines the interface for database operations
type Database interface {
	// Connection management
	Connect(ctx context.Context) error
	Close() error
	Ping(ctx context.Context) error

	// ApplySchema creates the tables if they do not exist yet
	ApplySchema(ctx context.Context) error

	// Flavor is the SQL dialect used to build queries for this connection
	Flavor() sqlbuilder.Flavor

	// Conn returns the transaction carried by ctx, or the pool when there is none
	Conn(ctx context.Context) Querier

	// Transaction support
	BeginTx(ctx context.Context) (Transaction, error)
}

// Transaction represents a database transaction
type Transaction interface {
	Querier
	Commit() error
	Rollback() error
}

// Config holds database configuration
type Config struct {
	Driver          string
	DSN             string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
}
