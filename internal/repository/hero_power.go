package repository

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/1Markish/Superheroes/internal/database"
	"github.com/1Markish/Superheroes/internal/model"
	"github.com/1Markish/Superheroes/internal/tracing"
)

const heroPowersTable = "hero_powers"

// ErrDanglingReference is returned when an association points at a hero or power that does not exist
var ErrDanglingReference = fmt.Errorf("%w: hero or power does not exist", database.ErrQuery)

// HeroPowerRepository handles hero-power associations
type HeroPowerRepository struct {
	db database.Database
}

// NewHeroPowerRepository creates a new hero power repository
func NewHeroPowerRepository(db database.Database) *HeroPowerRepository {
	return &HeroPowerRepository{db: db}
}

// Create inserts an association and fills in its id and timestamps.
// The same hero and power may be linked more than once.
func (r *HeroPowerRepository) Create(ctx context.Context, hp *model.HeroPower) error {
	ctx, span := tracing.StartSpan(ctx, "repository.HeroPowerRepository.Create")
	defer span.End()

	ts := now()
	ib := r.db.Flavor().NewInsertBuilder()
	ib.InsertInto(heroPowersTable)
	ib.Cols("strength", "hero_id", "power_id", "created_at", "updated_at")
	ib.Values(string(hp.Strength), hp.HeroID, hp.PowerID, ts, ts)

	id, err := insertReturningID(ctx, r.db, ib)
	if err != nil {
		tracing.RecordError(span, err)
		if isForeignKeyError(err) {
			return ErrDanglingReference
		}
		slog.ErrorContext(ctx, "failed to create hero power",
			slog.Int64("hero_id", hp.HeroID),
			slog.Int64("power_id", hp.PowerID),
			slog.String("error", err.Error()),
		)
		return queryError("create hero power", err)
	}

	hp.ID = id
	hp.CreatedAt = ts
	hp.UpdatedAt = ts
	return nil
}

// ListPowersForHero returns the powers linked to a hero, one entry per
// association, in the order the associations were created.
func (r *HeroPowerRepository) ListPowersForHero(ctx context.Context, heroID int64) ([]model.Power, error) {
	ctx, span := tracing.StartSpan(ctx, "repository.HeroPowerRepository.ListPowersForHero")
	defer span.End()

	sb := r.db.Flavor().NewSelectBuilder()
	sb.Select("powers.id", "powers.name", "powers.description")
	sb.From(heroPowersTable)
	sb.Join(powersTable, "powers.id = hero_powers.power_id")
	sb.Where(sb.Equal("hero_powers.hero_id", heroID))
	sb.OrderBy("hero_powers.id ASC")
	query, args := sb.Build()

	powers := []model.Power{}
	if err := r.db.Conn(ctx).SelectContext(ctx, &powers, query, args...); err != nil {
		tracing.RecordError(span, err)
		slog.ErrorContext(ctx, "failed to list hero powers", slog.Int64("hero_id", heroID), slog.String("error", err.Error()))
		return nil, queryError("list hero powers", err)
	}
	return powers, nil
}

// Count returns the number of associations
func (r *HeroPowerRepository) Count(ctx context.Context) (int, error) {
	return countRows(ctx, r.db, heroPowersTable)
}

// DeleteAll removes every association
func (r *HeroPowerRepository) DeleteAll(ctx context.Context) error {
	return deleteAll(ctx, r.db, heroPowersTable)
}
