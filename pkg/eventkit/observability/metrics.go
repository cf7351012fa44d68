package observability

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// MetricsRecorder records eventkit metrics.
// Use NewMetricsRecorder() for OTel metrics or NoopMetrics{} when disabled.
type MetricsRecorder interface {
	// RecordHandlerExecution records a handler invocation with its duration and error status.
	RecordHandlerExecution(ctx context.Context, eventType, handlerID string, duration time.Duration, err error)

	// RecordEmission records a completed emission.
	RecordEmission(ctx context.Context, eventType string, success bool, duration time.Duration, handlerCount int)

	// RecordCancellation records an emission stopped early by its event.
	RecordCancellation(ctx context.Context, eventType, reason string)
}

// otelMetrics implements MetricsRecorder using OpenTelemetry.
type otelMetrics struct {
	handlerExecutions metric.Int64Counter
	handlerLatency    metric.Float64Histogram
	handlerErrors     metric.Int64Counter
	emissions         metric.Int64Counter
	emitLatency       metric.Float64Histogram
	handlersPerEmit   metric.Int64Histogram
	cancellations     metric.Int64Counter
}

var (
	defaultMetrics     *otelMetrics
	defaultMetricsOnce sync.Once
	defaultMetricsErr  error
)

// getDefaultMetrics returns the default OTel metrics instance.
// Lazily initializes the metrics on first call.
func getDefaultMetrics() (*otelMetrics, error) {
	defaultMetricsOnce.Do(func() {
		defaultMetrics, defaultMetricsErr = newOtelMetrics()
	})
	return defaultMetrics, defaultMetricsErr
}

// newOtelMetrics creates a new OTel metrics instance.
func newOtelMetrics() (*otelMetrics, error) {
	meter := otel.Meter("eventkit")

	handlerExecutions, err := meter.Int64Counter("eventkit.handler.executions",
		metric.WithDescription("Number of handler invocations"),
	)
	if err != nil {
		return nil, err
	}

	handlerLatency, err := meter.Float64Histogram("eventkit.handler.latency_ms",
		metric.WithDescription("Handler invocation latency in milliseconds"),
		metric.WithUnit("ms"),
	)
	if err != nil {
		return nil, err
	}

	handlerErrors, err := meter.Int64Counter("eventkit.handler.errors",
		metric.WithDescription("Number of handler failures"),
	)
	if err != nil {
		return nil, err
	}

	emissions, err := meter.Int64Counter("eventkit.emissions",
		metric.WithDescription("Number of emissions"),
	)
	if err != nil {
		return nil, err
	}

	emitLatency, err := meter.Float64Histogram("eventkit.emit.latency_ms",
		metric.WithDescription("Emission latency in milliseconds"),
		metric.WithUnit("ms"),
	)
	if err != nil {
		return nil, err
	}

	handlersPerEmit, err := meter.Int64Histogram("eventkit.emit.handlers",
		metric.WithDescription("Handlers executed per emission"),
	)
	if err != nil {
		return nil, err
	}

	cancellations, err := meter.Int64Counter("eventkit.emit.cancellations",
		metric.WithDescription("Number of emissions stopped by event cancellation"),
	)
	if err != nil {
		return nil, err
	}

	return &otelMetrics{
		handlerExecutions: handlerExecutions,
		handlerLatency:    handlerLatency,
		handlerErrors:     handlerErrors,
		emissions:         emissions,
		emitLatency:       emitLatency,
		handlersPerEmit:   handlersPerEmit,
		cancellations:     cancellations,
	}, nil
}

// NewMetricsRecorder returns a MetricsRecorder that uses OpenTelemetry.
// If metrics initialization fails, returns a no-op recorder.
//
// The recorder uses the global OTel meter provider. Configure the provider
// before calling this function:
//
//	import "go.opentelemetry.io/otel"
//	otel.SetMeterProvider(yourProvider)
func NewMetricsRecorder() MetricsRecorder {
	m, err := getDefaultMetrics()
	if err != nil {
		slog.Warn("metrics initialization failed, using no-op recorder",
			slog.String("error", err.Error()))
		return NoopMetrics{}
	}
	return m
}

// RecordHandlerExecution records a handler invocation.
func (m *otelMetrics) RecordHandlerExecution(ctx context.Context, eventType, handlerID string, duration time.Duration, err error) {
	attrs := []attribute.KeyValue{
		attribute.String("event_type", eventType),
		attribute.String("handler_id", handlerID),
	}

	m.handlerExecutions.Add(ctx, 1, metric.WithAttributes(attrs...))
	m.handlerLatency.Record(ctx, float64(duration.Milliseconds()), metric.WithAttributes(attrs...))

	if err != nil {
		m.handlerErrors.Add(ctx, 1, metric.WithAttributes(attrs...))
	}
}

// RecordEmission records a completed emission.
func (m *otelMetrics) RecordEmission(ctx context.Context, eventType string, success bool, duration time.Duration, handlerCount int) {
	attrs := []attribute.KeyValue{
		attribute.String("event_type", eventType),
		attribute.Bool("success", success),
	}
	m.emissions.Add(ctx, 1, metric.WithAttributes(attrs...))
	m.emitLatency.Record(ctx, float64(duration.Milliseconds()), metric.WithAttributes(attrs...))
	m.handlersPerEmit.Record(ctx, int64(handlerCount), metric.WithAttributes(attrs...))
}

// RecordCancellation records an emission stopped by its event.
func (m *otelMetrics) RecordCancellation(ctx context.Context, eventType, reason string) {
	attrs := []attribute.KeyValue{
		attribute.String("event_type", eventType),
		attribute.String("reason", reason),
	}
	m.cancellations.Add(ctx, 1, metric.WithAttributes(attrs...))
}
