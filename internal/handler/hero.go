package handler

import (
	"net/http"

	"github.com/1Markish/Superheroes/internal/model"
	"github.com/1Markish/Superheroes/internal/service"
)

// HeroHandler handles hero endpoints
type HeroHandler struct {
	heroService *service.HeroService
}

// NewHeroHandler creates a new hero handler
func NewHeroHandler(heroService *service.HeroService) *HeroHandler {
	return &HeroHandler{
		heroService: heroService,
	}
}

// ListHeroes handles GET /heroes
func (h *HeroHandler) ListHeroes(w http.ResponseWriter, r *http.Request) {
	heroes, err := h.heroService.ListHeroes(r.Context())
	if err != nil {
		writeServiceError(r.Context(), w, err, "list heroes")
		return
	}

	WriteJSON(w, http.StatusOK, heroes)
}

// GetHero handles GET /heroes/{id}
func (h *HeroHandler) GetHero(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		WriteError(w, model.NewNotFoundError("Hero"))
		return
	}

	hero, err := h.heroService.GetHero(r.Context(), id)
	if err != nil {
		writeServiceError(r.Context(), w, err, "get hero")
		return
	}

	WriteJSON(w, http.StatusOK, hero)
}
