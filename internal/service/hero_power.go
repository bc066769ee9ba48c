package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/1Markish/Superheroes/internal/model"
	"github.com/1Markish/Superheroes/internal/tracing"
)

// HeroPowerService handles giving powers to heroes
type HeroPowerService struct {
	tx            Transactor
	heroRepo      HeroRepository
	powerRepo     PowerRepository
	heroPowerRepo HeroPowerRepository
}

// HeroPowerServiceConfig holds configuration for the hero power service
type HeroPowerServiceConfig struct {
	Transactor    Transactor
	HeroRepo      HeroRepository
	PowerRepo     PowerRepository
	HeroPowerRepo HeroPowerRepository
}

// NewHeroPowerService creates a new hero power service
func NewHeroPowerService(cfg HeroPowerServiceConfig) *HeroPowerService {
	return &HeroPowerService{
		tx:            cfg.Transactor,
		heroRepo:      cfg.HeroRepo,
		powerRepo:     cfg.PowerRepo,
		heroPowerRepo: cfg.HeroPowerRepo,
	}
}

// CreateHeroPower links a power to a hero with a strength and returns the
// hero's updated detail.
//
// The request is validated before any query runs. The existence checks, the
// insert and the re-read share one transaction, so a hero or power that does
// not resolve leaves no row behind. Both count as validation failures.
func (s *HeroPowerService) CreateHeroPower(ctx context.Context, req *model.CreateHeroPowerRequest) (*model.HeroDetail, error) {
	ctx, span := tracing.StartSpan(ctx, "service.HeroPowerService.CreateHeroPower")
	defer span.End()

	if req == nil {
		return nil, fmt.Errorf("%w: empty request", ErrValidation)
	}
	if err := validateStruct(req); err != nil {
		return nil, err
	}

	hp := &model.HeroPower{
		Strength: model.Strength(*req.Strength),
		HeroID:   *req.HeroID,
		PowerID:  *req.PowerID,
	}

	var detail model.HeroDetail
	err := s.tx.WithTransaction(ctx, func(ctx context.Context) error {
		hero, err := s.heroRepo.GetByID(ctx, hp.HeroID)
		if err != nil {
			return fmt.Errorf("failed to get hero: %w", err)
		}
		if hero == nil {
			return fmt.Errorf("%w: hero %d does not exist", ErrValidation, hp.HeroID)
		}

		power, err := s.powerRepo.GetByID(ctx, hp.PowerID)
		if err != nil {
			return fmt.Errorf("failed to get power: %w", err)
		}
		if power == nil {
			return fmt.Errorf("%w: power %d does not exist", ErrValidation, hp.PowerID)
		}

		if err := s.heroPowerRepo.Create(ctx, hp); err != nil {
			return fmt.Errorf("failed to create hero power: %w", err)
		}

		d, err := heroDetail(ctx, s.heroRepo, s.heroPowerRepo, hp.HeroID)
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

	slog.InfoContext(ctx, "hero power created",
		slog.Int64("hero_power_id", hp.ID),
		slog.Int64("hero_id", hp.HeroID),
		slog.Int64("power_id", hp.PowerID),
		slog.String("strength", string(hp.Strength)),
	)
	return &detail, nil
}
