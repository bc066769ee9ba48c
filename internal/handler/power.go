package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/1Markish/Superheroes/internal/middleware"
	"github.com/1Markish/Superheroes/internal/model"
	"github.com/1Markish/Superheroes/internal/service"
)

// PowerHandler handles power endpoints
type PowerHandler struct {
	powerService *service.PowerService
}

// NewPowerHandler creates a new power handler
func NewPowerHandler(powerService *service.PowerService) *PowerHandler {
	return &PowerHandler{
		powerService: powerService,
	}
}

// ListPowers handles GET /powers
func (h *PowerHandler) ListPowers(w http.ResponseWriter, r *http.Request) {
	powers, err := h.powerService.ListPowers(r.Context())
	if err != nil {
		writeServiceError(r.Context(), w, err, "list powers")
		return
	}

	WriteJSON(w, http.StatusOK, powers)
}

// GetPower handles GET /powers/{id}
func (h *PowerHandler) GetPower(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		WriteError(w, model.NewNotFoundError("Power"))
		return
	}

	power, err := h.powerService.GetPower(r.Context(), id)
	if err != nil {
		writeServiceError(r.Context(), w, err, "get power")
		return
	}

	WriteJSON(w, http.StatusOK, power)
}

// UpdatePower handles PATCH /powers/{id}
func (h *PowerHandler) UpdatePower(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		WriteError(w, model.NewNotFoundError("Power"))
		return
	}

	var fields map[string]json.RawMessage
	if err := DecodeJSON(r, &fields); err != nil || fields == nil {
		slog.WarnContext(r.Context(), "invalid power patch body",
			slog.String("request_id", middleware.GetRequestID(r.Context())),
			slog.Any("error", err),
		)
		WriteError(w, model.NewValidationError())
		return
	}

	power, err := h.powerService.UpdatePower(r.Context(), id, fields)
	if err != nil {
		writeServiceError(r.Context(), w, err, "update power")
		return
	}

	WriteJSON(w, http.StatusOK, power)
}
