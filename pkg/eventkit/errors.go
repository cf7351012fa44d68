package eventkit

import (
	"errors"
	"fmt"
)

// Sentinel errors for emission argument validation.
var (
	// ErrNilContext indicates Emit was called with a nil context.
	ErrNilContext = errors.New("context cannot be nil")

	// ErrNilEvent indicates Emit was called with a nil event.
	ErrNilEvent = errors.New("event cannot be nil")
)

// Sentinel errors for catalog operations.
var (
	// ErrEmptyEventType indicates a catalog definition without a type tag.
	ErrEmptyEventType = errors.New("event type is required")

	// ErrUndeclaredType indicates emit-time validation rejected an event
	// whose type has no catalog definition.
	ErrUndeclaredType = errors.New("event type not declared in catalog")
)

// HandlerError wraps an error returned by a handler. The emission stops
// at the failing handler; later handlers do not run.
type HandlerError struct {
	// HandlerID identifies the handler that failed.
	HandlerID string
	// EventType is the type tag of the event being dispatched.
	EventType string
	// Err is the error the handler returned.
	Err error
}

// Error implements the error interface.
func (e *HandlerError) Error() string {
	return fmt.Sprintf("handler %s on %s: %v", e.HandlerID, e.EventType, e.Err)
}

// Unwrap returns the underlying error.
func (e *HandlerError) Unwrap() error {
	return e.Err
}

// PanicError captures a panic raised inside a handler. The panic does
// not escape Emit; it fails the emission like a returned error.
type PanicError struct {
	// HandlerID identifies the handler that panicked.
	HandlerID string
	// EventType is the type tag of the event being dispatched.
	EventType string
	// Value is the recovered panic value.
	Value any
	// Stack is the stack trace captured at recovery.
	Stack string
}

// Error implements the error interface.
func (e *PanicError) Error() string {
	return fmt.Sprintf("handler %s on %s panicked: %v", e.HandlerID, e.EventType, e.Value)
}

// CancellationError reports that the emit context was done between
// handlers. Cooperative event cancellation (the Cancelable capability)
// is a clean stop, not an error, and never produces one of these.
type CancellationError struct {
	// EventType is the type tag of the event being dispatched.
	EventType string
	// HandlerID identifies the handler that was about to run.
	HandlerID string
	// Executed is how many handlers completed before the stop.
	Executed int
	// Cause is the context error (context.Canceled or
	// context.DeadlineExceeded).
	Cause error
}

// Error implements the error interface.
func (e *CancellationError) Error() string {
	return fmt.Sprintf("emission of %s cancelled before handler %s: %v", e.EventType, e.HandlerID, e.Cause)
}

// Unwrap returns the context error.
func (e *CancellationError) Unwrap() error {
	return e.Cause
}

// EventTypeError reports a typed handler invoked with a different
// concrete event type than it was declared for.
type EventTypeError struct {
	// Expected is the concrete type the handler accepts.
	Expected string
	// Got is the concrete type that was emitted.
	Got string
}

// Error implements the error interface.
func (e *EventTypeError) Error() string {
	return fmt.Sprintf("unexpected event type: want %s, got %s", e.Expected, e.Got)
}
