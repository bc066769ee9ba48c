package model

import "time"

// Strength classifies how strongly a hero wields a power
type Strength string

const (
	StrengthStrong  Strength = "Strong"
	StrengthWeak    Strength = "Weak"
	StrengthAverage Strength = "Average"
)

// Strengths lists every accepted strength label
func Strengths() []Strength {
	return []Strength{StrengthStrong, StrengthWeak, StrengthAverage}
}

// IsValid reports whether s is one of the accepted labels
func (s Strength) IsValid() bool {
	switch s {
	case StrengthStrong, StrengthWeak, StrengthAverage:
		return true
	}
	return false
}

// HeroPower is a row of the hero_powers table, linking one hero to one power
type HeroPower struct {
	ID        int64     `db:"id" json:"id"`
	Strength  Strength  `db:"strength" json:"strength"`
	HeroID    int64     `db:"hero_id" json:"hero_id"`
	PowerID   int64     `db:"power_id" json:"power_id"`
	CreatedAt time.Time `db:"created_at" json:"-"`
	UpdatedAt time.Time `db:"updated_at" json:"-"`
}

// CreateHeroPowerRequest is the body of POST /hero_powers.
// Pointers distinguish a missing key from a zero value.
type CreateHeroPowerRequest struct {
	Strength *string `json:"strength" validate:"required,strength"`
	PowerID  *int64  `json:"power_id" validate:"required,gt=0"`
	HeroID   *int64  `json:"hero_id" validate:"required,gt=0"`
}
