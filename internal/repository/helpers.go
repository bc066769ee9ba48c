package repository

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/huandu/go-sqlbuilder"

	"github.com/1Markish/Superheroes/internal/database"
)

// now is the timestamp written to created_at and updated_at.
// Stored as UTC so both drivers round-trip the same value.
func now() time.Time {
	return time.Now().UTC().Truncate(time.Microsecond)
}

// insertReturningID runs an insert and reports the new row's id.
func insertReturningID(ctx context.Context, db database.Database, ib *sqlbuilder.InsertBuilder) (int64, error) {
	q := db.Conn(ctx)
	query, args, returning := insertQuery(db.Flavor(), ib)

	if returning {
		var id int64
		if err := q.QueryRowxContext(ctx, query, args...).Scan(&id); err != nil {
			return 0, err
		}
		return id, nil
	}

	res, err := q.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

// insertQuery builds ib for flavor. PostgreSQL has no LastInsertId, so its
// insert gets a RETURNING id clause and returning reports true.
func insertQuery(flavor sqlbuilder.Flavor, ib *sqlbuilder.InsertBuilder) (query string, args []any, returning bool) {
	ib.SetFlavor(flavor)
	if flavor == sqlbuilder.PostgreSQL {
		ib.Returning("id")
		returning = true
	}
	query, args = ib.Build()
	return query, args, returning
}

// countRows returns the number of rows in table
func countRows(ctx context.Context, db database.Database, table string) (int, error) {
	sb := db.Flavor().NewSelectBuilder()
	sb.Select("COUNT(*)").From(table)
	query, args := sb.Build()

	var n int
	if err := db.Conn(ctx).GetContext(ctx, &n, query, args...); err != nil {
		return 0, queryError("count "+table, err)
	}
	return n, nil
}

// deleteAll removes every row of table
func deleteAll(ctx context.Context, db database.Database, table string) error {
	del := db.Flavor().NewDeleteBuilder()
	del.DeleteFrom(table)
	query, args := del.Build()

	if _, err := db.Conn(ctx).ExecContext(ctx, query, args...); err != nil {
		return queryError("delete "+table, err)
	}
	return nil
}

// queryError tags a driver error with database.ErrQuery
func queryError(op string, err error) error {
	return fmt.Errorf("%w: %s: %w", database.ErrQuery, op, err)
}

// isForeignKeyError checks if an error is a foreign key violation
func isForeignKeyError(err error) bool {
	if err == nil {
		return false
	}
	errStr := strings.ToLower(err.Error())
	return strings.Contains(errStr, "foreign key")
}
