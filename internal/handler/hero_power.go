package handler

import (
	"log/slog"
	"net/http"

	"github.com/1Markish/Superheroes/internal/middleware"
	"github.com/1Markish/Superheroes/internal/model"
	"github.com/1Markish/Superheroes/internal/service"
)

// HeroPowerHandler handles hero power endpoints
type HeroPowerHandler struct {
	heroPowerService *service.HeroPowerService
}

// NewHeroPowerHandler creates a new hero power handler
func NewHeroPowerHandler(heroPowerService *service.HeroPowerService) *HeroPowerHandler {
	return &HeroPowerHandler{
		heroPowerService: heroPowerService,
	}
}

// CreateHeroPower handles POST /hero_powers
func (h *HeroPowerHandler) CreateHeroPower(w http.ResponseWriter, r *http.Request) {
	var req model.CreateHeroPowerRequest
	if err := DecodeJSON(r, &req); err != nil {
		slog.WarnContext(r.Context(), "invalid hero power body",
			slog.String("request_id", middleware.GetRequestID(r.Context())),
			slog.String("error", err.Error()),
		)
		WriteError(w, model.NewValidationError())
		return
	}

	hero, err := h.heroPowerService.CreateHeroPower(r.Context(), &req)
	if err != nil {
		writeServiceError(r.Context(), w, err, "create hero power")
		return
	}

	WriteJSON(w, http.StatusCreated, hero)
}
