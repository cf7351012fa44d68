// Package observability provides production-grade observability features
// for eventkit: structured logging, metrics, and distributed tracing.
//
// Features:
//   - Structured logging via slog (Go stdlib)
//   - Metrics via OpenTelemetry
//   - Tracing via OpenTelemetry
//
// All features are opt-in and have no-op implementations when disabled.
package observability

import (
	"log/slog"
	"time"
)

// EnrichLogger adds emission context to a logger.
// Returns a new logger with emission_id and event_type fields.
//
// Example:
//
//	enriched := EnrichLogger(logger, "emit-a1b2c3d4", "order.created")
//	enriched.Info("doing work") // includes emission_id, event_type
func EnrichLogger(logger *slog.Logger, emissionID, eventType string) *slog.Logger {
	if logger == nil {
		return nil
	}
	return logger.With(
		slog.String("emission_id", emissionID),
		slog.String("event_type", eventType),
	)
}

// LogEmitStart logs the start of an emission.
func LogEmitStart(logger *slog.Logger, emissionID, eventType string) {
	if logger == nil {
		return
	}
	logger.Info("emission starting",
		slog.String("emission_id", emissionID),
		slog.String("event_type", eventType),
	)
}

// LogEmitComplete logs successful emission completion.
func LogEmitComplete(logger *slog.Logger, emissionID, eventType string, durationMs float64, handlerCount int) {
	if logger == nil {
		return
	}
	logger.Info("emission completed",
		slog.String("emission_id", emissionID),
		slog.String("event_type", eventType),
		slog.Float64("duration_ms", durationMs),
		slog.Int("handlers_executed", handlerCount),
	)
}

// LogEmitCancelled logs an emission stopped early by its event.
func LogEmitCancelled(logger *slog.Logger, emissionID, eventType, reason string, handlerCount int) {
	if logger == nil {
		return
	}
	logger.Info("emission cancelled",
		slog.String("emission_id", emissionID),
		slog.String("event_type", eventType),
		slog.String("cancel_reason", reason),
		slog.Int("handlers_executed", handlerCount),
	)
}

// LogEmitError logs emission failure.
func LogEmitError(logger *slog.Logger, emissionID, eventType string, err error, durationMs float64, handlerID string) {
	if logger == nil {
		return
	}
	logger.Error("emission failed",
		slog.String("emission_id", emissionID),
		slog.String("event_type", eventType),
		slog.String("error", err.Error()),
		slog.Float64("duration_ms", durationMs),
		slog.String("handler_id", handlerID),
	)
}

// LogHandlerStart logs handler invocation start.
func LogHandlerStart(logger *slog.Logger, handlerID, eventType string) {
	if logger == nil {
		return
	}
	logger.Debug("handler starting",
		slog.String("handler_id", handlerID),
		slog.String("event_type", eventType),
	)
}

// LogHandlerComplete logs successful handler completion.
func LogHandlerComplete(logger *slog.Logger, handlerID, eventType string, durationMs float64) {
	if logger == nil {
		return
	}
	logger.Debug("handler completed",
		slog.String("handler_id", handlerID),
		slog.String("event_type", eventType),
		slog.Float64("duration_ms", durationMs),
	)
}

// LogHandlerError logs handler failure.
func LogHandlerError(logger *slog.Logger, handlerID, eventType string, err error) {
	if logger == nil {
		return
	}
	logger.Error("handler failed",
		slog.String("handler_id", handlerID),
		slog.String("event_type", eventType),
		slog.String("error", err.Error()),
	)
}

// LogRegistration logs a handler registration.
func LogRegistration(logger *slog.Logger, handlerID, eventType, priority string) {
	if logger == nil {
		return
	}
	logger.Debug("handler registered",
		slog.String("handler_id", handlerID),
		slog.String("event_type", eventType),
		slog.String("priority", priority),
	)
}

// LogUnregistration logs a handler removal.
func LogUnregistration(logger *slog.Logger, handlerID string) {
	if logger == nil {
		return
	}
	logger.Debug("handler unregistered",
		slog.String("handler_id", handlerID),
	)
}

// TimedOperation measures the duration of an operation.
// Returns a function that, when called, returns the elapsed time in milliseconds.
//
// Example:
//
//	done := TimedOperation()
//	// ... do work ...
//	durationMs := done()
func TimedOperation() func() float64 {
	start := time.Now()
	return func() float64 {
		return float64(time.Since(start).Milliseconds())
	}
}
