package handler

import "net/http"

// HomeHandler serves the API root
type HomeHandler struct {
	message string
}

// NewHomeHandler creates a new home handler
func NewHomeHandler(message string) *HomeHandler {
	return &HomeHandler{message: message}
}

// Index handles GET /
func (h *HomeHandler) Index(w http.ResponseWriter, r *http.Request) {
	WriteJSON(w, http.StatusOK, map[string]string{"message": h.message})
}
