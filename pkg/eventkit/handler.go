package eventkit

import (
	"context"
	"fmt"
)

// Handler processes one event during an emission.
//
// Handle is called sequentially with the handlers that share the event
// type, ordered by priority. Returning a non-nil error fails the whole
// emission; see Dispatcher.Emit for the exact semantics.
type Handler interface {
	Handle(ctx context.Context, evt Event) error
}

// HandlerFunc adapts a plain function to the Handler interface.
type HandlerFunc func(ctx context.Context, evt Event) error

// Handle implements Handler.
func (f HandlerFunc) Handle(ctx context.Context, evt Event) error {
	return f(ctx, evt)
}

// Typed adapts a function over a concrete event type to a Handler.
// When the emitted event is not an E, the handler fails with an
// *EventTypeError instead of invoking fn:
//
//	m.Register("order.created", eventkit.Typed(
//		func(ctx context.Context, evt *OrderCreated) error {
//			return ship(ctx, evt.Payload)
//		},
//	))
func Typed[E Event](fn func(ctx context.Context, evt E) error) Handler {
	return HandlerFunc(func(ctx context.Context, evt Event) error {
		typed, ok := evt.(E)
		if !ok {
			return &EventTypeError{
				Expected: fmt.Sprintf("%T", typed),
				Got:      fmt.Sprintf("%T", evt),
			}
		}
		return fn(ctx, typed)
	})
}
