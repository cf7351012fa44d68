package eventkit

import (
	"log/slog"

	"github.com/randalmurphal/eventkit/pkg/eventkit/config"
	"github.com/randalmurphal/eventkit/pkg/eventkit/observability"
)

// managerConfig holds construction-time settings shared by a Manager
// and its Dispatcher.
type managerConfig struct {
	logger          *slog.Logger
	metrics         observability.MetricsRecorder
	metricsEnabled  bool
	spans           observability.SpanManager
	tracingEnabled  bool
	catalog         *Catalog
	validateEvents  bool
	defaultPriority Priority
}

// defaultManagerConfig returns the default settings: no logging, no
// metrics, no tracing, no catalog, PriorityNormal registrations.
func defaultManagerConfig() managerConfig {
	return managerConfig{
		metrics:         observability.NoopMetrics{},
		spans:           observability.NoopSpanManager{},
		defaultPriority: PriorityNormal,
	}
}

// Option configures a Manager or Dispatcher at construction time.
type Option func(*managerConfig)

// WithLogger enables structured logging of emissions and handler
// invocations. Emission lifecycle logs at Info, per-handler logs at
// Debug. A nil logger disables logging (the default).
func WithLogger(logger *slog.Logger) Option {
	return func(c *managerConfig) {
		c.logger = logger
	}
}

// WithMetrics enables OpenTelemetry metrics for emissions and handler
// invocations.
//
// Uses the global OTel meter provider; configure it before creating
// the manager. Disabled by default.
func WithMetrics(enabled bool) Option {
	return func(c *managerConfig) {
		c.metricsEnabled = enabled
		if enabled {
			c.metrics = observability.NewMetricsRecorder()
		} else {
			c.metrics = observability.NoopMetrics{}
		}
	}
}

// WithTracing enables OpenTelemetry spans around emissions and handler
// invocations.
//
// Uses the global OTel tracer provider; configure it before creating
// the manager. Disabled by default.
func WithTracing(enabled bool) Option {
	return func(c *managerConfig) {
		c.tracingEnabled = enabled
		if enabled {
			c.spans = observability.NewSpanManager()
		} else {
			c.spans = observability.NoopSpanManager{}
		}
	}
}

// WithCatalog attaches a catalog of declared event types. On its own
// the catalog is informational; combine with WithValidation to reject
// undeclared events at emit time.
func WithCatalog(catalog *Catalog) Option {
	return func(c *managerConfig) {
		c.catalog = catalog
	}
}

// WithValidation toggles emit-time catalog validation. It has no
// effect unless a catalog is attached.
func WithValidation(enabled bool) Option {
	return func(c *managerConfig) {
		c.validateEvents = enabled
	}
}

// WithDefaultPriority changes the tier used when a registration names
// no priority. Out-of-range values clamp. Default: PriorityNormal.
func WithDefaultPriority(p Priority) Option {
	return func(c *managerConfig) {
		c.defaultPriority = p.clamp()
	}
}

// FromConfig maps a loaded configuration section onto manager options.
//
// Recognized keys:
//
//	logging          bool          attach slog.Default()
//	metrics          bool          enable OTel metrics
//	tracing          bool          enable OTel tracing
//	validation       bool          enable emit-time catalog validation
//	default_priority string | int  tier name or value (0..5)
//
// Unknown keys are ignored, so a host can hand over its whole events
// section:
//
//	cfg, _ := config.FromFile("app.yaml")
//	m := eventkit.New(eventkit.FromConfig(cfg.Sub("events"))...)
func FromConfig(cfg config.Config) []Option {
	var opts []Option

	if cfg.Bool("logging", false) {
		opts = append(opts, WithLogger(slog.Default()))
	}
	if cfg.Bool("metrics", false) {
		opts = append(opts, WithMetrics(true))
	}
	if cfg.Bool("tracing", false) {
		opts = append(opts, WithTracing(true))
	}
	if cfg.Bool("validation", false) {
		opts = append(opts, WithValidation(true))
	}

	switch v := cfg.Any("default_priority", nil).(type) {
	case string:
		if p, err := ParsePriority(v); err == nil {
			opts = append(opts, WithDefaultPriority(p))
		}
	case int:
		opts = append(opts, WithDefaultPriority(Priority(v)))
	case int64:
		opts = append(opts, WithDefaultPriority(Priority(v)))
	case float64:
		opts = append(opts, WithDefaultPriority(Priority(int(v))))
	}

	return opts
}

// registerConfig holds per-registration settings.
type registerConfig struct {
	priority Priority
}

// RegisterOption configures a single registration.
type RegisterOption func(*registerConfig)

// WithPriority sets the tier for one registration. Out-of-range values
// clamp to the nearest tier.
func WithPriority(p Priority) RegisterOption {
	return func(c *registerConfig) {
		c.priority = p
	}
}

// emitConfig holds per-emission settings.
type emitConfig struct {
	emissionID string
}

// EmitOption configures a single Emit call.
type EmitOption func(*emitConfig)

// WithEmissionID sets the id used in logs, spans, and metrics for one
// emission. Defaults to a generated "emit-<random>" id.
func WithEmissionID(id string) EmitOption {
	return func(c *emitConfig) {
		c.emissionID = id
	}
}
