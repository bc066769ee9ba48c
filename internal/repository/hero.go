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

const heroesTable = "heroes"

var heroColumns = []string{"id", "name", "super_name"}

// HeroRepository handles hero data access
type HeroRepository struct {
	db database.Database
}

// NewHeroRepository creates a new hero repository
func NewHeroRepository(db database.Database) *HeroRepository {
	return &HeroRepository{db: db}
}

// GetAll retrieves all heroes ordered by id
func (r *HeroRepository) GetAll(ctx context.Context) ([]model.Hero, error) {
	ctx, span := tracing.StartSpan(ctx, "repository.HeroRepository.GetAll")
	defer span.End()

	sb := r.db.Flavor().NewSelectBuilder()
	sb.Select(heroColumns...).From(heroesTable)
	sb.OrderBy("id ASC")
	query, args := sb.Build()

	heroes := []model.Hero{}
	if err := r.db.Conn(ctx).SelectContext(ctx, &heroes, query, args...); err != nil {
		tracing.RecordError(span, err)
		slog.ErrorContext(ctx, "failed to list heroes", slog.String("error", err.Error()))
		return nil, queryError("list heroes", err)
	}
	return heroes, nil
}

// GetByID retrieves a hero by id. A missing hero is (nil, nil).
func (r *HeroRepository) GetByID(ctx context.Context, id int64) (*model.Hero, error) {
	ctx, span := tracing.StartSpan(ctx, "repository.HeroRepository.GetByID")
	defer span.End()

	sb := r.db.Flavor().NewSelectBuilder()
	sb.Select(heroColumns...).From(heroesTable)
	sb.Where(sb.Equal("id", id))
	query, args := sb.Build()

	var hero model.Hero
	if err := r.db.Conn(ctx).GetContext(ctx, &hero, query, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		tracing.RecordError(span, err)
		slog.ErrorContext(ctx, "failed to get hero", slog.Int64("hero_id", id), slog.String("error", err.Error()))
		return nil, queryError("get hero", err)
	}
	return &hero, nil
}

// Create inserts a hero and fills in its id and timestamps
func (r *HeroRepository) Create(ctx context.Context, hero *model.Hero) error {
	ctx, span := tracing.StartSpan(ctx, "repository.HeroRepository.Create")
	defer span.End()

	ts := now()
	ib := r.db.Flavor().NewInsertBuilder()
	ib.InsertInto(heroesTable)
	ib.Cols("name", "super_name", "created_at", "updated_at")
	ib.Values(hero.Name, hero.SuperName, ts, ts)

	id, err := insertReturningID(ctx, r.db, ib)
	if err != nil {
		tracing.RecordError(span, err)
		return queryError("create hero", err)
	}

	hero.ID = id
	hero.CreatedAt = ts
	hero.UpdatedAt = ts
	return nil
}

// Count returns the number of heroes
func (r *HeroRepository) Count(ctx context.Context) (int, error) {
	return countRows(ctx, r.db, heroesTable)
}

// DeleteAll removes every hero. Associations go with them through the cascade.
func (r *HeroRepository) DeleteAll(ctx context.Context) error {
	return deleteAll(ctx, r.db, heroesTable)
}
