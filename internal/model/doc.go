// Package model defines the records and JSON shapes of the Superheroes API.
//
// Rows (Hero, Power, HeroPower) carry db tags for sqlx scanning. Each row has
// one or more projections that decide what reaches the wire:
//
//   - HeroSummary: GET /heroes items
//   - HeroDetail: GET /heroes/{id} and the POST /hero_powers response
//   - PowerView: GET /powers items, GET and PATCH /powers/{id}
//
// Request types (PowerPatch, CreateHeroPowerRequest) carry validator tags that
// the service layer checks before touching the store.
//
// ErrorResponse is the error body: {"error": "..."} for not-found and internal
// failures, {"errors": ["Validation errors"]} for every validation failure.
package model
