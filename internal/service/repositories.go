package service

import (
	"context"

	"github.com/1Markish/Superheroes/internal/model"
)

// Transactor runs fn inside one transaction carried on the context.
// A nil error from fn commits, anything else rolls back.
type Transactor interface {
	WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

// HeroRepository defines the interface for hero storage
type HeroRepository interface {
	GetAll(ctx context.Context) ([]model.Hero, error)
	GetByID(ctx context.Context, id int64) (*model.Hero, error)
	Create(ctx context.Context, hero *model.Hero) error
	Count(ctx context.Context) (int, error)
	DeleteAll(ctx context.Context) error
}

// PowerRepository defines the interface for power storage
type PowerRepository interface {
	GetAll(ctx context.Context) ([]model.Power, error)
	GetByID(ctx context.Context, id int64) (*model.Power, error)
	Create(ctx context.Context, power *model.Power) error
	Update(ctx context.Context, power *model.Power) error
	Count(ctx context.Context) (int, error)
	DeleteAll(ctx context.Context) error
}

// HeroPowerRepository defines the interface for hero-power associations
type HeroPowerRepository interface {
	Create(ctx context.Context, hp *model.HeroPower) error
	ListPowersForHero(ctx context.Context, heroID int64) ([]model.Power, error)
	Count(ctx context.Context) (int, error)
	DeleteAll(ctx context.Context) error
}
