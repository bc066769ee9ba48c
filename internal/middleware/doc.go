// Package middleware provides HTTP middleware for the Superheroes API.
//
// # Available Middleware
//
//   - RequestID: assigns or propagates X-Request-ID
//   - Tracing: one OpenTelemetry span per request
//   - Logger: structured access log through slog
//   - Recovery: turns panics into a JSON 500
//   - Compress: gzip when the client accepts it
//   - Metrics: Prometheus request counters and latency histograms
//
// # Ordering
//
// Chain applies middlewares outermost first:
//
//	handler := middleware.Chain(mux,
//	    middleware.RequestID,
//	    middleware.Tracing,
//	    middleware.Logger,
//	    middleware.Recovery,
//	    middleware.Compress,
//	    middleware.Metrics, // must be last, next to the mux
//	)
//
// # Context Values
//
//   - GetRequestID(ctx): Returns unique request identifier
package middleware
