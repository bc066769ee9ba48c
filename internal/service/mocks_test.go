package service

import (
	"context"

	"github.com/1Markish/Superheroes/internal/model"
)

// ============================================================================
// Mock Repositories
// ============================================================================

type mockTransactor struct {
	calls int
}

func (m *mockTransactor) WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	m.calls++
	return fn(ctx)
}

type mockHeroRepo struct {
	getAllFunc    func(ctx context.Context) ([]model.Hero, error)
	getByIDFunc   func(ctx context.Context, id int64) (*model.Hero, error)
	createFunc    func(ctx context.Context, hero *model.Hero) error
	countFunc     func(ctx context.Context) (int, error)
	deleteAllFunc func(ctx context.Context) error
}

func (m *mockHeroRepo) GetAll(ctx context.Context) ([]model.Hero, error) {
	if m.getAllFunc != nil {
		return m.getAllFunc(ctx)
	}
	return nil, nil
}

func (m *mockHeroRepo) GetByID(ctx context.Context, id int64) (*model.Hero, error) {
	if m.getByIDFunc != nil {
		return m.getByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockHeroRepo) Create(ctx context.Context, hero *model.Hero) error {
	if m.createFunc != nil {
		return m.createFunc(ctx, hero)
	}
	return nil
}

func (m *mockHeroRepo) Count(ctx context.Context) (int, error) {
	if m.countFunc != nil {
		return m.countFunc(ctx)
	}
	return 0, nil
}

func (m *mockHeroRepo) DeleteAll(ctx context.Context) error {
	if m.deleteAllFunc != nil {
		return m.deleteAllFunc(ctx)
	}
	return nil
}

type mockPowerRepo struct {
	getAllFunc    func(ctx context.Context) ([]model.Power, error)
	getByIDFunc   func(ctx context.Context, id int64) (*model.Power, error)
	createFunc    func(ctx context.Context, power *model.Power) error
	updateFunc    func(ctx context.Context, power *model.Power) error
	countFunc     func(ctx context.Context) (int, error)
	deleteAllFunc func(ctx context.Context) error
}

func (m *mockPowerRepo) GetAll(ctx context.Context) ([]model.Power, error) {
	if m.getAllFunc != nil {
		return m.getAllFunc(ctx)
	}
	return nil, nil
}

func (m *mockPowerRepo) GetByID(ctx context.Context, id int64) (*model.Power, error) {
	if m.getByIDFunc != nil {
		return m.getByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockPowerRepo) Create(ctx context.Context, power *model.Power) error {
	if m.createFunc != nil {
		return m.createFunc(ctx, power)
	}
	return nil
}

func (m *mockPowerRepo) Update(ctx context.Context, power *model.Power) error {
	if m.updateFunc != nil {
		return m.updateFunc(ctx, power)
	}
	return nil
}

func (m *mockPowerRepo) Count(ctx context.Context) (int, error) {
	if m.countFunc != nil {
		return m.countFunc(ctx)
	}
	return 0, nil
}

func (m *mockPowerRepo) DeleteAll(ctx context.Context) error {
	if m.deleteAllFunc != nil {
		return m.deleteAllFunc(ctx)
	}
	return nil
}

type mockHeroPowerRepo struct {
	createFunc            func(ctx context.Context, hp *model.HeroPower) error
	listPowersForHeroFunc func(ctx context.Context, heroID int64) ([]model.Power, error)
	countFunc             func(ctx context.Context) (int, error)
	deleteAllFunc         func(ctx context.Context) error
}

func (m *mockHeroPowerRepo) Create(ctx context.Context, hp *model.HeroPower) error {
	if m.createFunc != nil {
		return m.createFunc(ctx, hp)
	}
	return nil
}

func (m *mockHeroPowerRepo) ListPowersForHero(ctx context.Context, heroID int64) ([]model.Power, error) {
	if m.listPowersForHeroFunc != nil {
		return m.listPowersForHeroFunc(ctx, heroID)
	}
	return nil, nil
}

func (m *mockHeroPowerRepo) Count(ctx context.Context) (int, error) {
	if m.countFunc != nil {
		return m.countFunc(ctx)
	}
	return 0, nil
}

func (m *mockHeroPowerRepo) DeleteAll(ctx context.Context) error {
	if m.deleteAllFunc != nil {
		return m.deleteAllFunc(ctx)
	}
	return nil
}
