package eventkit

import "sync"

// Cancelable is the capability the dispatcher probes between handlers.
// An event that implements it can stop the remainder of its own
// emission; an event that does not is delivered to every handler.
//
// Cancellation is cooperative and one-way: once cancelled, an event
// stays cancelled, and handlers that already ran are unaffected.
type Cancelable interface {
	// Cancel marks the event cancelled. The first reason sticks;
	// later calls are no-ops.
	Cancel(reason string)

	// IsCancelled reports whether Cancel has been called.
	IsCancelled() bool

	// CancelReason returns the reason given to the first Cancel call,
	// or "" while the event is live.
	CancelReason() string
}

// Cancellation is an embeddable Cancelable implementation.
// The zero value is ready to use and reports not-cancelled.
//
//	type PaymentAttempt struct {
//		eventkit.Cancellation
//		Amount int64
//	}
//
//	func (PaymentAttempt) Type() string { return "payment.attempt" }
type Cancellation struct {
	mu        sync.Mutex
	cancelled bool
	reason    string
}

// Cancel implements Cancelable. Only the first call takes effect.
func (c *Cancellation) Cancel(reason string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.cancelled {
		return
	}
	c.cancelled = true
	c.reason = reason
}

// IsCancelled implements Cancelable.
func (c *Cancellation) IsCancelled() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.cancelled
}

// CancelReason implements Cancelable.
func (c *Cancellation) CancelReason() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.reason
}

var _ Cancelable = (*Cancellation)(nil)
