package eventkit

import (
	"context"
	"sync"

	"github.com/randalmurphal/eventkit/pkg/eventkit/observability"
)

// Manager is the facade host code holds: a Registry and a Dispatcher
// behind one registration and emission surface. All methods are safe
// for concurrent use.
//
//	m := eventkit.New(eventkit.WithLogger(logger))
//
//	m.RegisterFunc("order.created", func(ctx context.Context, evt eventkit.Event) error {
//		return notify(ctx, evt)
//	}, eventkit.WithPriority(eventkit.PriorityHigh))
//
//	result, err := m.Emit(ctx, eventkit.NewEvent("order.created", order))
type Manager struct {
	registry   *Registry
	dispatcher *Dispatcher
	cfg        managerConfig

	mu         sync.Mutex
	middleware []MiddlewareFunc
}

// New creates a Manager with its own empty Registry.
func New(opts ...Option) *Manager {
	cfg := defaultManagerConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	registry := NewRegistry()
	return &Manager{
		registry:   registry,
		dispatcher: &Dispatcher{source: registry, cfg: cfg},
		cfg:        cfg,
	}
}

// Register adds a handler for an event type and returns its id. The
// handler is wrapped with the middleware installed at call time; see
// Use. Without a WithPriority option the manager's default tier
// applies.
func (m *Manager) Register(eventType string, h Handler, opts ...RegisterOption) string {
	rcfg := registerConfig{priority: m.cfg.defaultPriority}
	for _, opt := range opts {
		opt(&rcfg)
	}

	m.mu.Lock()
	wrapped := ChainMiddleware(h, m.middleware...)
	m.mu.Unlock()

	id := m.registry.Register(eventType, wrapped, rcfg.priority)
	observability.LogRegistration(m.cfg.logger, id, eventType, rcfg.priority.clamp().String())
	return id
}

// RegisterFunc registers a plain function as a handler.
func (m *Manager) RegisterFunc(eventType string, fn HandlerFunc, opts ...RegisterOption) string {
	return m.Register(eventType, fn, opts...)
}

// Use installs middleware for handlers registered after this call.
// Handlers already registered keep their existing chain.
func (m *Manager) Use(mw ...MiddlewareFunc) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.middleware = append(m.middleware, mw...)
}

// Unregister removes the handler with the given id and reports whether
// a removal happened.
func (m *Manager) Unregister(handlerID string) bool {
	ok := m.registry.Unregister(handlerID)
	if ok {
		observability.LogUnregistration(m.cfg.logger, handlerID)
	}
	return ok
}

// UnregisterAll removes every handler for the given event types, or
// all handlers when called with no arguments.
func (m *Manager) UnregisterAll(eventTypes ...string) {
	m.registry.UnregisterAll(eventTypes...)
}

// UnregisterByPriority removes every handler registered for eventType
// at exactly the given priority and returns the number removed.
func (m *Manager) UnregisterByPriority(eventType string, p Priority) int {
	return m.registry.UnregisterByPriority(eventType, p)
}

// HandlerIDs returns the handler ids for an event type in execution
// order.
func (m *Manager) HandlerIDs(eventType string) []string {
	return m.registry.HandlerIDs(eventType)
}

// HasHandlers reports whether at least one handler is registered for
// the event type.
func (m *Manager) HasHandlers(eventType string) bool {
	return m.registry.HasHandlers(eventType)
}

// HandlerCount returns the number of handlers registered for the event
// type.
func (m *Manager) HandlerCount(eventType string) int {
	return m.registry.HandlerCount(eventType)
}

// Count returns the total number of handlers across all event types.
func (m *Manager) Count() int {
	return m.registry.Count()
}

// Types returns the event types that currently have handlers.
func (m *Manager) Types() []string {
	return m.registry.Types()
}

// Emit delivers an event through the dispatcher. See Dispatcher.Emit
// for the delivery contract.
func (m *Manager) Emit(ctx context.Context, evt Event, opts ...EmitOption) (*EmissionResult, error) {
	return m.dispatcher.Emit(ctx, evt, opts...)
}
