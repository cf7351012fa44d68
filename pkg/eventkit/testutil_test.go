package eventkit

import (
	"context"
)

// Payload types used across tests

// orderPayload is a simple payload for ordering and delivery tests.
type orderPayload struct {
	OrderID string
	Amount  int
}

// loginPayload is a payload for cancellation scenarios.
type loginPayload struct {
	User string
	IP   string
}

// Helper handler constructors

// makeTrackingHandler creates a handler that records its execution.
func makeTrackingHandler(name string, tracker *[]string) Handler {
	return HandlerFunc(func(ctx context.Context, evt Event) error {
		*tracker = append(*tracker, name)
		return nil
	})
}

// makeFailingHandler creates a handler that returns the given error.
func makeFailingHandler(err error) Handler {
	return HandlerFunc(func(ctx context.Context, evt Event) error {
		return err
	})
}

// makePanicHandler creates a handler that panics with the given value.
func makePanicHandler(value any) Handler {
	return HandlerFunc(func(ctx context.Context, evt Event) error {
		panic(value)
	})
}

// makeCancelHandler creates a handler that cancels the event with the
// given reason when the event is cancellable.
func makeCancelHandler(reason string) Handler {
	return HandlerFunc(func(ctx context.Context, evt Event) error {
		if c, ok := evt.(Cancelable); ok {
			c.Cancel(reason)
		}
		return nil
	})
}

// noopHandler returns nil without touching the event.
var noopHandler = HandlerFunc(func(ctx context.Context, evt Event) error {
	return nil
})
