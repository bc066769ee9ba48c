package database

import (
	"context"
	"embed"
	"fmt"
	"strings"

	"github.com/huandu/go-sqlbuilder"
	"github.com/jmoiron/sqlx"

	_ "github.com/lib/pq"
	_ "modernc.org/sqlite"
)

//go:embed schema/*.sql
var schemaFS embed.FS

const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

func init() {
	// modernc registers itself as "sqlite", which sqlx does not know by default
	sqlx.BindDriver(DriverSQLite, sqlx.QUESTION)
}

// SQLDB implements the Database interface on top of sqlx
type SQLDB struct {
	db     *sqlx.DB
	config Config
	flavor sqlbuilder.Flavor
}

// NewSQLDB creates a new SQLDB instance
func NewSQLDB(cfg Config) *SQLDB {
	return &SQLDB{
		config: cfg,
	}
}

// flavorFor returns the query builder dialect for a driver name
func flavorFor(driver string) (sqlbuilder.Flavor, error) {
	switch driver {
	case DriverSQLite:
		return sqlbuilder.SQLite, nil
	case DriverPostgres:
		return sqlbuilder.PostgreSQL, nil
	default:
		return sqlbuilder.DefaultFlavor, fmt.Errorf("%w: %q", ErrUnsupportedDriver, driver)
	}
}

// Connect opens the connection pool and verifies it
func (s *SQLDB) Connect(ctx context.Context) error {
	flavor, err := flavorFor(s.config.Driver)
	if err != nil {
		return err
	}

	db, err := sqlx.ConnectContext(ctx, s.config.Driver, s.config.DSN)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrConnection, err)
	}

	maxOpen := s.config.MaxOpenConns
	if maxOpen == 0 && s.config.Driver == DriverSQLite {
		// a single writer avoids SQLITE_BUSY on lock upgrades
		maxOpen = 1
	}
	db.SetMaxOpenConns(maxOpen)
	db.SetMaxIdleConns(s.config.MaxIdleConns)
	db.SetConnMaxLifetime(s.config.ConnMaxLifetime)

	s.db = db
	s.flavor = flavor
	return nil
}

// Close closes the database connection
func (s *SQLDB) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// Ping checks the database connection
func (s *SQLDB) Ping(ctx context.Context) error {
	if s.db == nil {
		return ErrConnection
	}
	if err := s.db.PingContext(ctx); err != nil {
		return fmt.Errorf("%w: %v", ErrConnection, err)
	}
	return nil
}

// Flavor returns the go-sqlbuilder dialect for the connected driver
func (s *SQLDB) Flavor() sqlbuilder.Flavor {
	return s.flavor
}

// Conn returns the transaction stored on ctx, falling back to the pool
func (s *SQLDB) Conn(ctx context.Context) Querier {
	if tx := txFromContext(ctx); tx != nil {
		return tx
	}
	return s.db
}

// BeginTx starts a new transaction
func (s *SQLDB) BeginTx(ctx context.Context) (Transaction, error) {
	if s.db == nil {
		return nil, ErrConnection
	}
	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: begin transaction: %v", ErrConnection, err)
	}
	return tx, nil
}

// ApplySchema executes the embedded schema script for the configured driver.
// Every statement is idempotent, so it is safe to run on each start.
func (s *SQLDB) ApplySchema(ctx context.Context) error {
	if s.db == nil {
		return ErrConnection
	}

	script, err := schemaFS.ReadFile("schema/" + s.config.Driver + ".sql")
	if err != nil {
		return fmt.Errorf("%w: %q", ErrUnsupportedDriver, s.config.Driver)
	}

	for _, stmt := range splitStatements(string(script)) {
		if _, err := s.db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("%w: apply schema: %w", ErrQuery, err)
		}
	}
	return nil
}

// splitStatements breaks a script on semicolons and drops comment-only chunks
func splitStatements(script string) []string {
	var stmts []string
	for _, chunk := range strings.Split(script, ";") {
		var lines []string
		for _, line := range strings.Split(chunk, "\n") {
			trimmed := strings.TrimSpace(line)
			if trimmed == "" || strings.HasPrefix(trimmed, "--") {
				continue
			}
			lines = append(lines, line)
		}
		if len(lines) > 0 {
			stmts = append(stmts, strings.TrimSpace(strings.Join(lines, "\n")))
		}
	}
	return stmts
}
