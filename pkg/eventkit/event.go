package eventkit

import (
	"time"

	"github.com/google/uuid"
)

// Event is the minimal contract for anything passed to Emit.
//
// Type returns the stable tag the registry keys handlers on. Every
// instance of the same logical event must return the same tag, and the
// tag must not depend on runtime type information. Dotted lowercase
// names ("order.created", "user.login") are the convention.
type Event interface {
	Type() string
}

// Metadata carries the identity of a BaseEvent.
type Metadata struct {
	// EventID uniquely identifies this instance (UUID).
	EventID string `json:"event_id"`
	// EventType is the stable tag returned by Type.
	EventType string `json:"event_type"`
	// Source names the subsystem that created the event.
	Source string `json:"source,omitempty"`
	// Timestamp is when the event was created.
	Timestamp time.Time `json:"timestamp"`
}

// BaseEvent is a ready-made payload-bearing event. Use it directly for
// ad-hoc events or embed it in named event types:
//
//	evt := eventkit.NewEvent("order.created", order)
//
//	type OrderCreated struct {
//		eventkit.BaseEvent[Order]
//	}
type BaseEvent[T any] struct {
	// Meta holds the event identity.
	Meta Metadata `json:"meta"`
	// Payload is the typed event data.
	Payload T `json:"payload"`
}

// eventConfig holds options applied during event construction.
type eventConfig struct {
	id        string
	source    string
	timestamp time.Time
}

// EventOption configures event construction.
type EventOption func(*eventConfig)

// WithEventID overrides the generated event id.
func WithEventID(id string) EventOption {
	return func(c *eventConfig) {
		c.id = id
	}
}

// WithSource sets the subsystem that created the event.
func WithSource(source string) EventOption {
	return func(c *eventConfig) {
		c.source = source
	}
}

// WithTimestamp overrides the creation time. Useful for replays and
// deterministic tests.
func WithTimestamp(ts time.Time) EventOption {
	return func(c *eventConfig) {
		c.timestamp = ts
	}
}

// NewEvent creates a BaseEvent with a generated id and the current
// time, then applies any options.
func NewEvent[T any](eventType string, payload T, opts ...EventOption) *BaseEvent[T] {
	cfg := eventConfig{
		id:        uuid.New().String(),
		timestamp: time.Now(),
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return &BaseEvent[T]{
		Meta: Metadata{
			EventID:   cfg.id,
			EventType: eventType,
			Source:    cfg.source,
			Timestamp: cfg.timestamp,
		},
		Payload: payload,
	}
}

// Type implements Event.
func (e *BaseEvent[T]) Type() string { return e.Meta.EventType }

// ID returns the unique event id.
func (e *BaseEvent[T]) ID() string { return e.Meta.EventID }

// Source returns the subsystem that created the event.
func (e *BaseEvent[T]) Source() string { return e.Meta.Source }

// Timestamp returns the event creation time.
func (e *BaseEvent[T]) Timestamp() time.Time { return e.Meta.Timestamp }

// Data returns the payload untyped, for handlers that work on the
// Event interface.
func (e *BaseEvent[T]) Data() any { return e.Payload }

// CancellableEvent is a BaseEvent that carries the Cancelable
// capability. Any handler in the chain can stop the emission:
//
//	evt := eventkit.NewCancellableEvent("payment.attempt", attempt)
//	result, err := m.Emit(ctx, evt)
//	if evt.IsCancelled() { ... }
type CancellableEvent[T any] struct {
	BaseEvent[T]
	Cancellation
}

// NewCancellableEvent creates a CancellableEvent in the live state.
func NewCancellableEvent[T any](eventType string, payload T, opts ...EventOption) *CancellableEvent[T] {
	return &CancellableEvent[T]{
		BaseEvent: *NewEvent(eventType, payload, opts...),
	}
}

var (
	_ Event      = (*BaseEvent[any])(nil)
	_ Event      = (*CancellableEvent[any])(nil)
	_ Cancelable = (*CancellableEvent[any])(nil)
)
