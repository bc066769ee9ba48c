package service

import (
	"context"
	"fmt"

	"github.com/1Markish/Superheroes/internal/model"
	"github.com/1Markish/Superheroes/internal/tracing"
)

// HeroService handles hero queries
type HeroService struct {
	tx            Transactor
	heroRepo      HeroRepository
	heroPowerRepo HeroPowerRepository
}

// HeroServiceConfig holds configuration for the hero service
type HeroServiceConfig struct {
	Transactor    Transactor
	HeroRepo      HeroRepository
	HeroPowerRepo HeroPowerRepository
}

// NewHeroService creates a new hero service
func NewHeroService(cfg HeroServiceConfig) *HeroService {
	return &HeroService{
		tx:            cfg.Transactor,
		heroRepo:      cfg.HeroRepo,
		heroPowerRepo: cfg.HeroPowerRepo,
	}
}

// ListHeroes returns every hero in id order
func (s *HeroService) ListHeroes(ctx context.Context) ([]model.HeroSummary, error) {
	ctx, span := tracing.StartSpan(ctx, "service.HeroService.ListHeroes")
	defer span.End()

	heroes, err := s.heroRepo.GetAll(ctx)
	if err != nil {
		recordError(span, err)
		return nil, fmt.Errorf("failed to list heroes: %w", err)
	}

	summaries := make([]model.HeroSummary, 0, len(heroes))
	for i := range heroes {
		summaries = append(summaries, heroes[i].Summary())
	}
	return summaries, nil
}

// GetHero returns one hero with the powers it has been given.
// The hero and its powers are read in the same transaction.
func (s *HeroService) GetHero(ctx context.Context, id int64) (*model.HeroDetail, error) {
	ctx, span := tracing.StartSpan(ctx, "service.HeroService.GetHero")
	defer span.End()

	var detail model.HeroDetail
	err := s.tx.WithTransaction(ctx, func(ctx context.Context) error {
		d, err := heroDetail(ctx, s.heroRepo, s.heroPowerRepo, id)
		if err != nil {
			return err
		}
		detail = *d
		return nil
	})
	if err != nil {
		recordError(span, err)
		return nil, err
	}
	return &detail, nil
}

// heroDetail loads a hero and its powers using whatever transaction ctx carries
func heroDetail(ctx context.Context, heroes HeroRepository, heroPowers HeroPowerRepository, id int64) (*model.HeroDetail, error) {
	hero, err := heroes.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get hero: %w", err)
	}
	if hero == nil {
		return nil, ErrHeroNotFound
	}

	powers, err := heroPowers.ListPowersForHero(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to list hero powers: %w", err)
	}

	detail := hero.Detail(powers)
	return &detail, nil
}
