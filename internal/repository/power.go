package repository

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"

	"github.com/1Markish/Superheroes/internal/database"
	"github.com/1Markish/Superheroes/internal/model"
	"github.com/1Markish/Superheroes/internal/tracing"
)

const powersTable = "powers"

var powerColumns = []string{"id", "name", "description"}

// PowerRepository handles power data access
type PowerRepository struct {
	db database.Database
}

// NewPowerRepository creates a new power repository
func NewPowerRepository(db database.Database) *PowerRepository {
	return &PowerRepository{db: db}
}

// GetAll retrieves all powers ordered by id
func (r *PowerRepository) GetAll(ctx context.Context) ([]model.Power, error) {
	ctx, span := tracing.StartSpan(ctx, "repository.PowerRepository.GetAll")
	defer span.End()

	sb := r.db.Flavor().NewSelectBuilder()
	sb.Select(powerColumns...).From(powersTable)
	sb.OrderBy("id ASC")
	query, args := sb.Build()

	powers := []model.Power{}
	if err := r.db.Conn(ctx).SelectContext(ctx, &powers, query, args...); err != nil {
		tracing.RecordError(span, err)
		slog.ErrorContext(ctx, "failed to list powers", slog.String("error", err.Error()))
		return nil, queryError("list powers", err)
	}
	return powers, nil
}

// GetByID retrieves a power by id. A missing power is (nil, nil).
func (r *PowerRepository) GetByID(ctx context.Context, id int64) (*model.Power, error) {
	ctx, span := tracing.StartSpan(ctx, "repository.PowerRepository.GetByID")
	defer span.End()

	sb := r.db.Flavor().NewSelectBuilder()
	sb.Select(powerColumns...).From(powersTable)
	sb.Where(sb.Equal("id", id))
	query, args := sb.Build()

	var power model.Power
	if err := r.db.Conn(ctx).GetContext(ctx, &power, query, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		tracing.RecordError(span, err)
		slog.ErrorContext(ctx, "failed to get power", slog.Int64("power_id", id), slog.String("error", err.Error()))
		return nil, queryError("get power", err)
	}
	return &power, nil
}

// Create inserts a power and fills in its id and timestamps
func (r *PowerRepository) Create(ctx context.Context, power *model.Power) error {
	ctx, span := tracing.StartSpan(ctx, "repository.PowerRepository.Create")
	defer span.End()

	ts := now()
	ib := r.db.Flavor().NewInsertBuilder()
	ib.InsertInto(powersTable)
	ib.Cols("name", "description", "created_at", "updated_at")
	ib.Values(power.Name, power.Description, ts, ts)

	id, err := insertReturningID(ctx, r.db, ib)
	if err != nil {
		tracing.RecordError(span, err)
		return queryError("create power", err)
	}

	power.ID = id
	power.CreatedAt = ts
	power.UpdatedAt = ts
	return nil
}

// Update writes name and description of an existing power and bumps updated_at.
// Returns database.ErrNotFound when no row has the power's id.
func (r *PowerRepository) Update(ctx context.Context, power *model.Power) error {
	ctx, span := tracing.StartSpan(ctx, "repository.PowerRepository.Update")
	defer span.End()

	ts := now()
	ub := r.db.Flavor().NewUpdateBuilder()
	ub.Update(powersTable)
	ub.Set(
		ub.Assign("name", power.Name),
		ub.Assign("description", power.Description),
		ub.Assign("updated_at", ts),
	)
	ub.Where(ub.Equal("id", power.ID))
	query, args := ub.Build()

	res, err := r.db.Conn(ctx).ExecContext(ctx, query, args...)
	if err != nil {
		tracing.RecordError(span, err)
		slog.ErrorContext(ctx, "failed to update power", slog.Int64("power_id", power.ID), slog.String("error", err.Error()))
		return queryError("update power", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return queryError("update power", err)
	}
	if n == 0 {
		return database.ErrNotFound
	}

	power.UpdatedAt = ts
	return nil
}

// Count returns the number of powers
func (r *PowerRepository) Count(ctx context.Context) (int, error) {
	return countRows(ctx, r.db, powersTable)
}

// DeleteAll removes every power. Associations go with them through the cascade.
func (r *PowerRepository) DeleteAll(ctx context.Context) error {
	return deleteAll(ctx, r.db, powersTable)
}
