// Package fixtures provides test data factories for integration testing.
//
// Each factory method creates entities with sensible defaults while allowing
// customization via option functions. Factories insert through the real
// repositories and return fully populated models.
//
// Usage:
//
//	f := fixtures.New(tdb.DB)
//	hero := f.CreateHero(t)
//	power := f.CreatePower(t)
//	f.CreateHeroPower(t, hero, power)
package fixtures

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"testing"
	"time"

	"github.com/1Markish/Superheroes/internal/database"
	"github.com/1Markish/Superheroes/internal/model"
	"github.com/1Markish/Superheroes/internal/repository"
)

// Factory creates test entities in the database
type Factory struct {
	heroes     *repository.HeroRepository
	powers     *repository.PowerRepository
	heroPowers *repository.HeroPowerRepository
}

// New creates a new fixture factory
func New(db database.Database) *Factory {
	return &Factory{
		heroes:     repository.NewHeroRepository(db),
		powers:     repository.NewPowerRepository(db),
		heroPowers: repository.NewHeroPowerRepository(db),
	}
}

// randomID generates a random hex ID
func randomID() string {
	b := make([]byte, 4)
	_, _ = rand.Read(b)
	return hex.EncodeToString(b)
}

// ctx returns a context with timeout
func ctx(t *testing.T) context.Context {
	c, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	t.Cleanup(cancel)
	return c
}

// ============================================================================
// Hero Fixtures
// ============================================================================

// HeroOpts customizes hero creation
type HeroOpts struct {
	Name      string
	SuperName string
}

// WithHeroName sets the hero's real name
func WithHeroName(name string) func(*HeroOpts) {
	return func(o *HeroOpts) {
		o.Name = name
	}
}

// WithSuperName sets the hero's alias
func WithSuperName(superName string) func(*HeroOpts) {
	return func(o *HeroOpts) {
		o.SuperName = superName
	}
}

// CreateHero creates a hero with optional customizations
func (f *Factory) CreateHero(t *testing.T, opts ...func(*HeroOpts)) *model.Hero {
	t.Helper()

	id := randomID()
	o := &HeroOpts{
		Name:      fmt.Sprintf("Hero %s", id),
		SuperName: fmt.Sprintf("Captain %s", id),
	}
	for _, fn := range opts {
		fn(o)
	}

	hero := &model.Hero{Name: o.Name, SuperName: o.SuperName}
	if err := f.heroes.Create(ctx(t), hero); err != nil {
		t.Fatalf("fixtures: failed to create hero: %v", err)
	}
	return hero
}

// ============================================================================
// Power Fixtures
// ============================================================================

// PowerOpts customizes power creation
type PowerOpts struct {
	Name        string
	Description string
}

// WithPowerName sets the power name
func WithPowerName(name string) func(*PowerOpts) {
	return func(o *PowerOpts) {
		o.Name = name
	}
}

// WithDescription sets the power description
func WithDescription(description string) func(*PowerOpts) {
	return func(o *PowerOpts) {
		o.Description = description
	}
}

// CreatePower creates a power with optional customizations.
// The default description is long enough to pass validation.
func (f *Factory) CreatePower(t *testing.T, opts ...func(*PowerOpts)) *model.Power {
	t.Helper()

	o := &PowerOpts{
		Name:        fmt.Sprintf("power %s", randomID()),
		Description: "grants the wielder an unusual ability",
	}
	for _, fn := range opts {
		fn(o)
	}

	power := &model.Power{Name: o.Name, Description: o.Description}
	if err := f.powers.Create(ctx(t), power); err != nil {
		t.Fatalf("fixtures: failed to create power: %v", err)
	}
	return power
}

// ============================================================================
// HeroPower Fixtures
// ============================================================================

// CreateHeroPower links a hero to a power, Average strength unless given
func (f *Factory) CreateHeroPower(t *testing.T, hero *model.Hero, power *model.Power, strength ...model.Strength) *model.HeroPower {
	t.Helper()

	s := model.StrengthAverage
	if len(strength) > 0 {
		s = strength[0]
	}

	hp := &model.HeroPower{HeroID: hero.ID, PowerID: power.ID, Strength: s}
	if err := f.heroPowers.Create(ctx(t), hp); err != nil {
		t.Fatalf("fixtures: failed to create hero power: %v", err)
	}
	return hp
}
