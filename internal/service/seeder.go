package service

import (
	"context"
	"fmt"
	"log/slog"
	mrand "math/rand/v2"
	"time"

	"github.com/1Markish/Superheroes/internal/model"
)

// SeederService loads the canonical heroes and powers for development
type SeederService struct {
	tx            Transactor
	heroRepo      HeroRepository
	powerRepo     PowerRepository
	heroPowerRepo HeroPowerRepository
	rand          *mrand.Rand
}

// SeederServiceConfig holds configuration for the seeder service
type SeederServiceConfig struct {
	Transactor    Transactor
	HeroRepo      HeroRepository
	PowerRepo     PowerRepository
	HeroPowerRepo HeroPowerRepository

	// Rand picks powers and strengths. Nil seeds from the clock.
	Rand *mrand.Rand
}

// NewSeederService creates a new seeder service
func NewSeederService(cfg SeederServiceConfig) *SeederService {
	r := cfg.Rand
	if r == nil {
		now := uint64(time.Now().UnixNano())
		r = mrand.New(mrand.NewPCG(now, now>>1))
	}
	return &SeederService{
		tx:            cfg.Transactor,
		heroRepo:      cfg.HeroRepo,
		powerRepo:     cfg.PowerRepo,
		heroPowerRepo: cfg.HeroPowerRepo,
		rand:          r,
	}
}

// SeedOptions configures a seeding run
type SeedOptions struct {
	// Reset clears all three tables before inserting
	Reset bool
}

// SeedResult contains the results of a seeding operation
type SeedResult struct {
	Deleted    int   `json:"deleted"`
	Heroes     int   `json:"heroes"`
	Powers     int   `json:"powers"`
	HeroPowers int   `json:"hero_powers"`
	Duration   int64 `json:"duration_ms"`
}

// Canonical seed data
var (
	seedPowers = []model.Power{
		{Name: "super strength", Description: "gives the wielder super-human strengths"},
		{Name: "flight", Description: "gives the wielder the ability to fly through the skies at supersonic speed"},
		{Name: "super human senses", Description: "allows the wielder to use her senses at a super-human level"},
		{Name: "elasticity", Description: "can stretch the human body to extreme lengths"},
	}
	seedHeroes = []model.Hero{
		{Name: "Kamala Khan", SuperName: "Ms. Marvel"},
		{Name: "Doreen Green", SuperName: "Squirrel Girl"},
		{Name: "Gwen Stacy", SuperName: "Spider-Gwen"},
		{Name: "Janet Van Dyne", SuperName: "The Wasp"},
		{Name: "Wanda Maximoff", SuperName: "Scarlet Witch"},
		{Name: "Carol Danvers", SuperName: "Captain Marvel"},
		{Name: "Jean Grey", SuperName: "Dark Phoenix"},
		{Name: "Ororo Munroe", SuperName: "Storm"},
		{Name: "Kitty Pryde", SuperName: "Shadowcat"},
		{Name: "Elektra Natchios", SuperName: "Elektra"},
	}
)

// Seed inserts the canonical powers and heroes and gives each hero one random
// power at a random strength. Everything happens in one transaction.
func (s *SeederService) Seed(ctx context.Context, opts SeedOptions) (*SeedResult, error) {
	start := time.Now()
	result := &SeedResult{}

	err := s.tx.WithTransaction(ctx, func(ctx context.Context) error {
		if opts.Reset {
			deleted, err := s.clear(ctx)
			if err != nil {
				return err
			}
			result.Deleted = deleted
		}

		powers := make([]model.Power, 0, len(seedPowers))
		for _, p := range seedPowers {
			power := p
			if err := s.powerRepo.Create(ctx, &power); err != nil {
				return fmt.Errorf("failed to seed power %q: %w", power.Name, err)
			}
			powers = append(powers, power)
		}
		result.Powers = len(powers)

		strengths := model.Strengths()
		for _, h := range seedHeroes {
			hero := h
			if err := s.heroRepo.Create(ctx, &hero); err != nil {
				return fmt.Errorf("failed to seed hero %q: %w", hero.SuperName, err)
			}
			result.Heroes++

			hp := &model.HeroPower{
				HeroID:   hero.ID,
				PowerID:  powers[s.rand.IntN(len(powers))].ID,
				Strength: strengths[s.rand.IntN(len(strengths))],
			}
			if err := s.heroPowerRepo.Create(ctx, hp); err != nil {
				return fmt.Errorf("failed to seed power for %q: %w", hero.SuperName, err)
			}
			result.HeroPowers++
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	result.Duration = time.Since(start).Milliseconds()
	slog.InfoContext(ctx, "seed complete",
		slog.Int("deleted", result.Deleted),
		slog.Int("heroes", result.Heroes),
		slog.Int("powers", result.Powers),
		slog.Int("hero_powers", result.HeroPowers),
	)
	return result, nil
}

// clear empties associations first, then heroes and powers.
// It returns how many rows were removed.
func (s *SeederService) clear(ctx context.Context) (int, error) {
	deleted := 0
	steps := []struct {
		name  string
		count func(context.Context) (int, error)
		del   func(context.Context) error
	}{
		{"hero powers", s.heroPowerRepo.Count, s.heroPowerRepo.DeleteAll},
		{"heroes", s.heroRepo.Count, s.heroRepo.DeleteAll},
		{"powers", s.powerRepo.Count, s.powerRepo.DeleteAll},
	}

	for _, step := range steps {
		n, err := step.count(ctx)
		if err != nil {
			return 0, fmt.Errorf("failed to count %s: %w", step.name, err)
		}
		if err := step.del(ctx); err != nil {
			return 0, fmt.Errorf("failed to clear %s: %w", step.name, err)
		}
		deleted += n
	}
	return deleted, nil
}
