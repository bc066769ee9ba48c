package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/1Markish/Superheroes/internal/middleware"
	"github.com/1Markish/Superheroes/internal/model"
	"github.com/1Markish/Superheroes/internal/service"
)

// MapServiceError converts a service error to an ErrorResponse.
// This centralizes error handling logic for all handlers, ensuring consistent
// HTTP status codes and error bodies across the API.
func MapServiceError(err error) *model.ErrorResponse {
	if err == nil {
		return nil
	}

	switch {
	// ===== Not Found Errors → 404 =====
	case errors.Is(err, service.ErrHeroNotFound):
		return model.NewNotFoundError("Hero")
	case errors.Is(err, service.ErrPowerNotFound):
		return model.NewNotFoundError("Power")

	// ===== Validation Errors → 400 =====
	case errors.Is(err, service.ErrValidation):
		return model.NewValidationError()

	// ===== Default → 500 =====
	default:
		return model.NewInternalError("")
	}
}

// MapServiceErrorWithContext converts a service error to an ErrorResponse
// naming the operation that failed when the error is unexpected.
func MapServiceErrorWithContext(err error, operation string) *model.ErrorResponse {
	resp := MapServiceError(err)
	if resp != nil && resp.Status == http.StatusInternalServerError {
		resp.Message = operation + " failed"
	}
	return resp
}

// writeServiceError logs err with the request id and writes the mapped response.
// Validation causes go to the log only, never to the client.
func writeServiceError(ctx context.Context, w http.ResponseWriter, err error, operation string) {
	resp := MapServiceErrorWithContext(err, operation)

	attrs := []any{
		slog.String("request_id", middleware.GetRequestID(ctx)),
		slog.String("operation", operation),
		slog.String("error", err.Error()),
	}
	switch resp.Status {
	case http.StatusInternalServerError:
		slog.ErrorContext(ctx, "request failed", attrs...)
	case http.StatusBadRequest:
		slog.WarnContext(ctx, "request rejected", attrs...)
	default:
		slog.DebugContext(ctx, "request rejected", attrs...)
	}

	WriteError(w, resp)
}
