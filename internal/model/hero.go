package model

import "time"

// Hero is a row of the heroes table
type Hero struct {
	ID        int64     `db:"id" json:"id"`
	Name      string    `db:"name" json:"name"`
	SuperName string    `db:"super_name" json:"super_name"`
	CreatedAt time.Time `db:"created_at" json:"-"`
	UpdatedAt time.Time `db:"updated_at" json:"-"`
}

// HeroSummary is the list projection of a hero
type HeroSummary struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	SuperName string `json:"super_name"`
}

// HeroDetail is the single-hero projection, including the hero's powers.
// Strength lives on the association and is not part of this view.
type HeroDetail struct {
	ID        int64       `json:"id"`
	Name      string      `json:"name"`
	SuperName string      `json:"super_name"`
	Powers    []PowerView `json:"powers"`
}

// Summary projects the hero for list responses
func (h *Hero) Summary() HeroSummary {
	return HeroSummary{
		ID:        h.ID,
		Name:      h.Name,
		SuperName: h.SuperName,
	}
}

// Detail projects the hero together with its associated powers, in the order given
func (h *Hero) Detail(powers []Power) HeroDetail {
	views := make([]PowerView, 0, len(powers))
	for i := range powers {
		views = append(views, powers[i].View())
	}
	return HeroDetail{
		ID:        h.ID,
		Name:      h.Name,
		SuperName: h.SuperName,
		Powers:    views,
	}
}
