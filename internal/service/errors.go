package service

import (
	"errors"

	"go.opentelemetry.io/otel/trace"

	"github.com/1Markish/Superheroes/internal/tracing"
)

// Centralized service layer errors.
// All errors returned by service methods are defined here for consistency
// and to make error handling in handlers predictable.

// ===== Hero Errors =====
var (
	ErrHeroNotFound = errors.New("hero not found")
)

// ===== Power Errors =====
var (
	ErrPowerNotFound = errors.New("power not found")
)

// ===== Validation Errors =====
// Detailed causes wrap ErrValidation so logs keep them while the wire
// response stays generic.
var (
	ErrValidation = errors.New("validation failed")
)

// isExpected reports errors that are ordinary answers to a bad request
// rather than faults in the service.
func isExpected(err error) bool {
	return errors.Is(err, ErrHeroNotFound) ||
		errors.Is(err, ErrPowerNotFound) ||
		errors.Is(err, ErrValidation)
}

// recordError marks span as failed unless err is expected.
func recordError(span trace.Span, err error) {
	if err == nil || isExpected(err) {
		return
	}
	tracing.RecordError(span, err)
}
