package service

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/1Markish/Superheroes/internal/model"
)

func ptr[T any](v T) *T { return &v }

func rawFields(t *testing.T, body string) map[string]json.RawMessage {
	t.Helper()
	var fields map[string]json.RawMessage
	if err := json.Unmarshal([]byte(body), &fields); err != nil {
		t.Fatalf("bad test body: %v", err)
	}
	return fields
}

// ============================================================================
// HeroService Tests
// ============================================================================

func TestListHeroes_ProjectsSummaries(t *testing.T) {
	t.Parallel()

	svc := NewHeroService(HeroServiceConfig{
		Transactor: &mockTransactor{},
		HeroRepo: &mockHeroRepo{
			getAllFunc: func(ctx context.Context) ([]model.Hero, error) {
				return []model.Hero{
					{ID: 1, Name: "Kamala Khan", SuperName: "Ms. Marvel"},
					{ID: 2, Name: "Doreen Green", SuperName: "Squirrel Girl"},
				}, nil
			},
		},
	})

	heroes, err := svc.ListHeroes(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(heroes) != 2 {
		t.Fatalf("expected 2 heroes, got %d", len(heroes))
	}
	if heroes[1].SuperName != "Squirrel Girl" {
		t.Errorf("expected Squirrel Girl, got %q", heroes[1].SuperName)
	}
}

func TestListHeroes_EmptyIsNotNil(t *testing.T) {
	t.Parallel()

	svc := NewHeroService(HeroServiceConfig{HeroRepo: &mockHeroRepo{}})

	heroes, err := svc.ListHeroes(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if heroes == nil || len(heroes) != 0 {
		t.Errorf("expected empty non-nil slice, got %#v", heroes)
	}
}

func TestListHeroes_RepoError(t *testing.T) {
	t.Parallel()

	boom := errors.New("disk on fire")
	svc := NewHeroService(HeroServiceConfig{
		HeroRepo: &mockHeroRepo{
			getAllFunc: func(ctx context.Context) ([]model.Hero, error) { return nil, boom },
		},
	})

	_, err := svc.ListHeroes(context.Background())
	if !errors.Is(err, boom) {
		t.Errorf("expected wrapped repo error, got %v", err)
	}
}

func TestGetHero_NotFound(t *testing.T) {
	t.Parallel()

	listed := false
	tx := &mockTransactor{}
	svc := NewHeroService(HeroServiceConfig{
		Transactor: tx,
		HeroRepo:   &mockHeroRepo{},
		HeroPowerRepo: &mockHeroPowerRepo{
			listPowersForHeroFunc: func(ctx context.Context, heroID int64) ([]model.Power, error) {
				listed = true
				return nil, nil
			},
		},
	})

	_, err := svc.GetHero(context.Background(), 999)
	if !errors.Is(err, ErrHeroNotFound) {
		t.Errorf("expected ErrHeroNotFound, got %v", err)
	}
	if listed {
		t.Error("powers should not be listed for a missing hero")
	}
	if tx.calls != 1 {
		t.Errorf("expected one transaction, got %d", tx.calls)
	}
}

func TestGetHero_IncludesPowers(t *testing.T) {
	t.Parallel()

	svc := NewHeroService(HeroServiceConfig{
		Transactor: &mockTransactor{},
		HeroRepo: &mockHeroRepo{
			getByIDFunc: func(ctx context.Context, id int64) (*model.Hero, error) {
				return &model.Hero{ID: id, Name: "Kamala Khan", SuperName: "Ms. Marvel"}, nil
			},
		},
		HeroPowerRepo: &mockHeroPowerRepo{
			listPowersForHeroFunc: func(ctx context.Context, heroID int64) ([]model.Power, error) {
				return []model.Power{{ID: 2, Name: "flight", Description: "gives the wielder the ability to fly"}}, nil
			},
		},
	})

	hero, err := svc.GetHero(context.Background(), 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(hero.Powers) != 1 || hero.Powers[0].ID != 2 {
		t.Errorf("expected power 2, got %+v", hero.Powers)
	}
}

// ============================================================================
// PowerService Tests
// ============================================================================

func TestGetPower_NotFound(t *testing.T) {
	t.Parallel()

	svc := NewPowerService(PowerServiceConfig{PowerRepo: &mockPowerRepo{}})

	_, err := svc.GetPower(context.Background(), 999)
	if !errors.Is(err, ErrPowerNotFound) {
		t.Errorf("expected ErrPowerNotFound, got %v", err)
	}
}

func TestListPowers_EmptyIsNotNil(t *testing.T) {
	t.Parallel()

	svc := NewPowerService(PowerServiceConfig{PowerRepo: &mockPowerRepo{}})

	powers, err := svc.ListPowers(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if powers == nil {
		t.Error("expected empty non-nil slice")
	}
}

func newPatchService(stored *model.Power, updates *int) *PowerService {
	return NewPowerService(PowerServiceConfig{
		Transactor: &mockTransactor{},
		PowerRepo: &mockPowerRepo{
			getByIDFunc: func(ctx context.Context, id int64) (*model.Power, error) {
				if stored == nil || stored.ID != id {
					return nil, nil
				}
				cp := *stored
				return &cp, nil
			},
			updateFunc: func(ctx context.Context, power *model.Power) error {
				*updates++
				*stored = *power
				return nil
			},
		},
	})
}

func TestUpdatePower_NotFoundBeforeValidation(t *testing.T) {
	t.Parallel()

	updates := 0
	svc := newPatchService(nil, &updates)

	// invalid body and missing power: missing power wins
	_, err := svc.UpdatePower(context.Background(), 999, rawFields(t, `{"description":"short"}`))
	if !errors.Is(err, ErrPowerNotFound) {
		t.Errorf("expected ErrPowerNotFound, got %v", err)
	}
}

func TestUpdatePower_ShortDescription(t *testing.T) {
	t.Parallel()

	stored := &model.Power{ID: 1, Name: "flight", Description: "gives the wielder the ability to fly"}
	updates := 0
	svc := newPatchService(stored, &updates)

	for _, desc := range []string{"too short", strings.Repeat(" ", 25), "\t\n" + strings.Repeat(" ", 20)} {
		body, _ := json.Marshal(map[string]string{"description": desc})
		_, err := svc.UpdatePower(context.Background(), 1, rawFields(t, string(body)))
		if !errors.Is(err, ErrValidation) {
			t.Errorf("%q: expected ErrValidation, got %v", desc, err)
			continue
		}
		if !strings.Contains(err.Error(), "description") {
			t.Errorf("expected cause to name the field, got %v", err)
		}
	}
	if updates != 0 {
		t.Errorf("expected no write, got %d", updates)
	}
	if stored.Description != "gives the wielder the ability to fly" {
		t.Errorf("stored description changed to %q", stored.Description)
	}
}

func TestUpdatePower_ExactlyMinimumLength(t *testing.T) {
	t.Parallel()

	stored := &model.Power{ID: 1, Name: "flight", Description: "gives the wielder the ability to fly"}
	updates := 0
	svc := newPatchService(stored, &updates)

	desc := strings.Repeat("x", model.PowerDescriptionMinLength)
	power, err := svc.UpdatePower(context.Background(), 1, rawFields(t, `{"description":"`+desc+`"}`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if power.Description != desc {
		t.Errorf("expected description to be updated, got %q", power.Description)
	}
}

func TestUpdatePower_EmptyName(t *testing.T) {
	t.Parallel()

	stored := &model.Power{ID: 1, Name: "flight", Description: "gives the wielder the ability to fly"}
	updates := 0
	svc := newPatchService(stored, &updates)

	for _, body := range []string{`{"name":""}`, `{"name":"   "}`, `{"name":"\t"}`} {
		_, err := svc.UpdatePower(context.Background(), 1, rawFields(t, body))
		if !errors.Is(err, ErrValidation) {
			t.Errorf("%s: expected ErrValidation, got %v", body, err)
		}
	}
	if updates != 0 {
		t.Errorf("expected no write, got %d", updates)
	}
}

func TestUpdatePower_UnknownAndNullFields(t *testing.T) {
	t.Parallel()

	bodies := []string{
		`{"id":5}`,
		`{"description":null}`,
		`{"name":["flight"]}`,
	}
	for _, body := range bodies {
		stored := &model.Power{ID: 1, Name: "flight", Description: "gives the wielder the ability to fly"}
		updates := 0
		svc := newPatchService(stored, &updates)

		_, err := svc.UpdatePower(context.Background(), 1, rawFields(t, body))
		if !errors.Is(err, ErrValidation) {
			t.Errorf("%s: expected ErrValidation, got %v", body, err)
		}
		if updates != 0 {
			t.Errorf("%s: expected no write", body)
		}
	}
}

func TestUpdatePower_EmptyPatchSkipsWrite(t *testing.T) {
	t.Parallel()

	stored := &model.Power{ID: 1, Name: "flight", Description: "gives the wielder the ability to fly"}
	updates := 0
	svc := newPatchService(stored, &updates)

	power, err := svc.UpdatePower(context.Background(), 1, rawFields(t, `{}`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if updates != 0 {
		t.Errorf("expected no write, got %d", updates)
	}
	if power.Name != "flight" {
		t.Errorf("expected current power, got %+v", power)
	}
}

func TestUpdatePower_OnlyChangesGivenField(t *testing.T) {
	t.Parallel()

	stored := &model.Power{ID: 1, Name: "flight", Description: "gives the wielder the ability to fly"}
	updates := 0
	svc := newPatchService(stored, &updates)

	power, err := svc.UpdatePower(context.Background(), 1, rawFields(t, `{"name":"soaring"}`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if power.Name != "soaring" || power.Description != "gives the wielder the ability to fly" {
		t.Errorf("unexpected result %+v", power)
	}
	if updates != 1 {
		t.Errorf("expected one write, got %d", updates)
	}
}

// ============================================================================
// HeroPowerService Tests
// ============================================================================

func TestCreateHeroPower_Validation(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		req  *model.CreateHeroPowerRequest
	}{
		{"nil request", nil},
		{"missing strength", &model.CreateHeroPowerRequest{HeroID: ptr(int64(1)), PowerID: ptr(int64(2))}},
		{"missing hero", &model.CreateHeroPowerRequest{Strength: ptr("Strong"), PowerID: ptr(int64(2))}},
		{"missing power", &model.CreateHeroPowerRequest{Strength: ptr("Strong"), HeroID: ptr(int64(1))}},
		{"bad strength", &model.CreateHeroPowerRequest{Strength: ptr("Mighty"), HeroID: ptr(int64(1)), PowerID: ptr(int64(2))}},
		{"lowercase strength", &model.CreateHeroPowerRequest{Strength: ptr("strong"), HeroID: ptr(int64(1)), PowerID: ptr(int64(2))}},
		{"zero hero id", &model.CreateHeroPowerRequest{Strength: ptr("Weak"), HeroID: ptr(int64(0)), PowerID: ptr(int64(2))}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			tx := &mockTransactor{}
			svc := NewHeroPowerService(HeroPowerServiceConfig{
				Transactor:    tx,
				HeroRepo:      &mockHeroRepo{},
				PowerRepo:     &mockPowerRepo{},
				HeroPowerRepo: &mockHeroPowerRepo{},
			})

			_, err := svc.CreateHeroPower(context.Background(), tt.req)
			if !errors.Is(err, ErrValidation) {
				t.Errorf("expected ErrValidation, got %v", err)
			}
			if tx.calls != 0 {
				t.Error("no transaction should be opened for an invalid request")
			}
		})
	}
}

func TestCreateHeroPower_UnknownHeroOrPower(t *testing.T) {
	t.Parallel()

	created := 0
	svc := NewHeroPowerService(HeroPowerServiceConfig{
		Transactor: &mockTransactor{},
		HeroRepo: &mockHeroRepo{
			getByIDFunc: func(ctx context.Context, id int64) (*model.Hero, error) {
				if id == 1 {
					return &model.Hero{ID: 1}, nil
				}
				return nil, nil
			},
		},
		PowerRepo: &mockPowerRepo{},
		HeroPowerRepo: &mockHeroPowerRepo{
			createFunc: func(ctx context.Context, hp *model.HeroPower) error {
				created++
				return nil
			},
		},
	})

	_, err := svc.CreateHeroPower(context.Background(), &model.CreateHeroPowerRequest{
		Strength: ptr("Average"), HeroID: ptr(int64(404)), PowerID: ptr(int64(1)),
	})
	if !errors.Is(err, ErrValidation) {
		t.Errorf("unknown hero: expected ErrValidation, got %v", err)
	}

	_, err = svc.CreateHeroPower(context.Background(), &model.CreateHeroPowerRequest{
		Strength: ptr("Average"), HeroID: ptr(int64(1)), PowerID: ptr(int64(404)),
	})
	if !errors.Is(err, ErrValidation) {
		t.Errorf("unknown power: expected ErrValidation, got %v", err)
	}

	if created != 0 {
		t.Errorf("expected no association, got %d", created)
	}
}

func TestCreateHeroPower_ReturnsHeroDetail(t *testing.T) {
	t.Parallel()

	var saved *model.HeroPower
	svc := NewHeroPowerService(HeroPowerServiceConfig{
		Transactor: &mockTransactor{},
		HeroRepo: &mockHeroRepo{
			getByIDFunc: func(ctx context.Context, id int64) (*model.Hero, error) {
				return &model.Hero{ID: id, Name: "Kamala Khan", SuperName: "Ms. Marvel"}, nil
			},
		},
		PowerRepo: &mockPowerRepo{
			getByIDFunc: func(ctx context.Context, id int64) (*model.Power, error) {
				return &model.Power{ID: id, Name: "flight", Description: "gives the wielder the ability to fly"}, nil
			},
		},
		HeroPowerRepo: &mockHeroPowerRepo{
			createFunc: func(ctx context.Context, hp *model.HeroPower) error {
				hp.ID = 10
				saved = hp
				return nil
			},
			listPowersForHeroFunc: func(ctx context.Context, heroID int64) ([]model.Power, error) {
				return []model.Power{{ID: 2, Name: "flight", Description: "gives the wielder the ability to fly"}}, nil
			},
		},
	})

	hero, err := svc.CreateHeroPower(context.Background(), &model.CreateHeroPowerRequest{
		Strength: ptr("Strong"), HeroID: ptr(int64(1)), PowerID: ptr(int64(2)),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if saved == nil || saved.Strength != model.StrengthStrong {
		t.Errorf("expected Strong association, got %+v", saved)
	}
	if hero.ID != 1 || len(hero.Powers) != 1 || hero.Powers[0].ID != 2 {
		t.Errorf("unexpected detail %+v", hero)
	}
}

func TestCreateHeroPower_InsertErrorPropagates(t *testing.T) {
	t.Parallel()

	boom := errors.New("constraint failed")
	svc := NewHeroPowerService(HeroPowerServiceConfig{
		Transactor: &mockTransactor{},
		HeroRepo: &mockHeroRepo{
			getByIDFunc: func(ctx context.Context, id int64) (*model.Hero, error) { return &model.Hero{ID: id}, nil },
		},
		PowerRepo: &mockPowerRepo{
			getByIDFunc: func(ctx context.Context, id int64) (*model.Power, error) { return &model.Power{ID: id}, nil },
		},
		HeroPowerRepo: &mockHeroPowerRepo{
			createFunc: func(ctx context.Context, hp *model.HeroPower) error { return boom },
		},
	})

	_, err := svc.CreateHeroPower(context.Background(), &model.CreateHeroPowerRequest{
		Strength: ptr("Weak"), HeroID: ptr(int64(1)), PowerID: ptr(int64(2)),
	})
	if !errors.Is(err, boom) {
		t.Errorf("expected insert error, got %v", err)
	}
	if errors.Is(err, ErrValidation) {
		t.Error("store failures must not look like validation errors")
	}
}
