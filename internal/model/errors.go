package model

import (
	"encoding/json"
	"fmt"
	"net/http"
)

// ValidationMessage is the single message every validation failure reports.
// Specific causes are logged, never returned to the client.
const ValidationMessage = "Validation errors"

// ErrorResponse is the JSON error body returned by the API.
// Not-found and internal errors use {"error": "..."}; validation failures use
// {"errors": ["Validation errors"]}.
type ErrorResponse struct {
	Status  int      `json:"-"`
	Message string   `json:"error,omitempty"`
	Errors  []string `json:"errors,omitempty"`
}

// Error implements the error interface
func (e *ErrorResponse) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("[%d] %s", e.Status, e.Message)
	}
	return fmt.Sprintf("[%d] %v", e.Status, e.Errors)
}

// WriteJSON writes the error as a JSON response
func (e *ErrorResponse) WriteJSON(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(e.Status)
	_ = json.NewEncoder(w).Encode(e)
}

// Common error constructors

func NewNotFoundError(resource string) *ErrorResponse {
	return &ErrorResponse{
		Status:  http.StatusNotFound,
		Message: fmt.Sprintf("%s not found", resource),
	}
}

func NewValidationError() *ErrorResponse {
	return &ErrorResponse{
		Status: http.StatusBadRequest,
		Errors: []string{ValidationMessage},
	}
}

func NewInternalError(detail string) *ErrorResponse {
	if detail == "" {
		detail = "An unexpected error occurred"
	}
	return &ErrorResponse{
		Status:  http.StatusInternalServerError,
		Message: detail,
	}
}

func NewServiceUnavailableError(detail string) *ErrorResponse {
	return &ErrorResponse{
		Status:  http.StatusServiceUnavailable,
		Message: detail,
	}
}
