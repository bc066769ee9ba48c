package model

import (
	"encoding/json"
	"errors"
	"testing"
)

// ============================================================================
// ParsePowerPatch Tests
// ============================================================================

func decodeFields(t *testing.T, body string) map[string]json.RawMessage {
	t.Helper()

	var fields map[string]json.RawMessage
	if err := json.Unmarshal([]byte(body), &fields); err != nil {
		t.Fatalf("bad test body %s: %v", body, err)
	}
	return fields
}

func TestParsePowerPatch_Empty(t *testing.T) {
	t.Parallel()

	patch, err := ParsePowerPatch(decodeFields(t, `{}`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !patch.IsEmpty() {
		t.Errorf("expected empty patch, got %+v", patch)
	}
}

func TestParsePowerPatch_BothFields(t *testing.T) {
	t.Parallel()

	patch, err := ParsePowerPatch(decodeFields(t, `{"name":"flight","description":"soars above the city skyline"}`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if patch.Name == nil || *patch.Name != "flight" {
		t.Errorf("expected name 'flight', got %v", patch.Name)
	}
	if patch.Description == nil || *patch.Description != "soars above the city skyline" {
		t.Errorf("unexpected description %v", patch.Description)
	}
}

func TestParsePowerPatch_UnknownKey(t *testing.T) {
	t.Parallel()

	_, err := ParsePowerPatch(decodeFields(t, `{"description":"a perfectly long description","id":7}`))
	if !errors.Is(err, ErrUnknownPatchField) {
		t.Errorf("expected ErrUnknownPatchField, got %v", err)
	}
}

func TestParsePowerPatch_NullValue(t *testing.T) {
	t.Parallel()

	_, err := ParsePowerPatch(decodeFields(t, `{"description":null}`))
	if !errors.Is(err, ErrNullPatchField) {
		t.Errorf("expected ErrNullPatchField, got %v", err)
	}
}

func TestParsePowerPatch_WrongType(t *testing.T) {
	t.Parallel()

	_, err := ParsePowerPatch(decodeFields(t, `{"name":42}`))
	if !errors.Is(err, ErrInvalidPatchField) {
		t.Errorf("expected ErrInvalidPatchField, got %v", err)
	}
}

func TestPowerPatch_Apply_OnlySetFields(t *testing.T) {
	t.Parallel()

	name := "super strength"
	power := &Power{ID: 1, Name: "strength", Description: "gives the wielder super-human strengths"}

	PowerPatch{Name: &name}.Apply(power)

	if power.Name != "super strength" {
		t.Errorf("expected name to change, got %q", power.Name)
	}
	if power.Description != "gives the wielder super-human strengths" {
		t.Errorf("description should be untouched, got %q", power.Description)
	}
}

// ============================================================================
// Strength Tests
// ============================================================================

func TestStrength_IsValid(t *testing.T) {
	t.Parallel()

	for _, s := range Strengths() {
		if !s.IsValid() {
			t.Errorf("expected %q to be valid", s)
		}
	}
	for _, s := range []Strength{"", "strong", "Mighty"} {
		if s.IsValid() {
			t.Errorf("expected %q to be invalid", s)
		}
	}
}

// ============================================================================
// Projection Tests
// ============================================================================

func TestHero_Detail_EmptyPowersIsArray(t *testing.T) {
	t.Parallel()

	hero := &Hero{ID: 1, Name: "Kamala Khan", SuperName: "Ms. Marvel"}

	b, err := json.Marshal(hero.Detail(nil))
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	want := `{"id":1,"name":"Kamala Khan","super_name":"Ms. Marvel","powers":[]}`
	if string(b) != want {
		t.Errorf("expected %s, got %s", want, b)
	}
}

func TestHero_Detail_OmitsStrengthAndTimestamps(t *testing.T) {
	t.Parallel()

	hero := &Hero{ID: 1, Name: "Kamala Khan", SuperName: "Ms. Marvel"}
	powers := []Power{{ID: 1, Name: "flight", Description: "able to fly"}}

	b, err := json.Marshal(hero.Detail(powers))
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	want := `{"id":1,"name":"Kamala Khan","super_name":"Ms. Marvel","powers":[{"id":1,"name":"flight","description":"able to fly"}]}`
	if string(b) != want {
		t.Errorf("expected %s, got %s", want, b)
	}
}

func TestHero_Summary(t *testing.T) {
	t.Parallel()

	b, err := json.Marshal((&Hero{ID: 2, Name: "Doreen Green", SuperName: "Squirrel Girl"}).Summary())
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	want := `{"id":2,"name":"Doreen Green","super_name":"Squirrel Girl"}`
	if string(b) != want {
		t.Errorf("expected %s, got %s", want, b)
	}
}
