package service

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/1Markish/Superheroes/internal/model"
	"github.com/1Markish/Superheroes/internal/tracing"
)

// PowerService handles power queries and updates
type PowerService struct {
	tx        Transactor
	powerRepo PowerRepository
}

// PowerServiceConfig holds configuration for the power service
type PowerServiceConfig struct {
	Transactor Transactor
	PowerRepo  PowerRepository
}

// NewPowerService creates a new power service
func NewPowerService(cfg PowerServiceConfig) *PowerService {
	return &PowerService{
		tx:        cfg.Transactor,
		powerRepo: cfg.PowerRepo,
	}
}

// ListPowers returns every power in id order
func (s *PowerService) ListPowers(ctx context.Context) ([]model.PowerView, error) {
	ctx, span := tracing.StartSpan(ctx, "service.PowerService.ListPowers")
	defer span.End()

	powers, err := s.powerRepo.GetAll(ctx)
	if err != nil {
		recordError(span, err)
		return nil, fmt.Errorf("failed to list powers: %w", err)
	}

	views := make([]model.PowerView, 0, len(powers))
	for i := range powers {
		views = append(views, powers[i].View())
	}
	return views, nil
}

// GetPower returns one power
func (s *PowerService) GetPower(ctx context.Context, id int64) (*model.PowerView, error) {
	ctx, span := tracing.StartSpan(ctx, "service.PowerService.GetPower")
	defer span.End()

	power, err := s.powerRepo.GetByID(ctx, id)
	if err != nil {
		recordError(span, err)
		return nil, fmt.Errorf("failed to get power: %w", err)
	}
	if power == nil {
		return nil, ErrPowerNotFound
	}

	view := power.View()
	return &view, nil
}

// UpdatePower applies a partial update to a power.
//
// fields is the decoded request object. The power is looked up first, so an
// unknown id is ErrPowerNotFound whatever the body holds. Only name and
// description may be set; an empty object changes nothing and returns the
// current power. The response is re-read from the store after the write.
func (s *PowerService) UpdatePower(ctx context.Context, id int64, fields map[string]json.RawMessage) (*model.PowerView, error) {
	ctx, span := tracing.StartSpan(ctx, "service.PowerService.UpdatePower")
	defer span.End()

	var view model.PowerView
	err := s.tx.WithTransaction(ctx, func(ctx context.Context) error {
		power, err := s.powerRepo.GetByID(ctx, id)
		if err != nil {
			return fmt.Errorf("failed to get power: %w", err)
		}
		if power == nil {
			return ErrPowerNotFound
		}

		patch, err := model.ParsePowerPatch(fields)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrValidation, err)
		}
		if err := validateStruct(patch); err != nil {
			return err
		}

		if patch.IsEmpty() {
			view = power.View()
			return nil
		}

		patch.Apply(power)
		if err := s.powerRepo.Update(ctx, power); err != nil {
			return fmt.Errorf("failed to update power: %w", err)
		}

		updated, err := s.powerRepo.GetByID(ctx, id)
		if err != nil {
			return fmt.Errorf("failed to reload power: %w", err)
		}
		if updated == nil {
			return ErrPowerNotFound
		}
		view = updated.View()
		return nil
	})
	if err != nil {
		recordError(span, err)
		return nil, err
	}

	slog.DebugContext(ctx, "power updated", slog.Int64("power_id", id))
	return &view, nil
}
