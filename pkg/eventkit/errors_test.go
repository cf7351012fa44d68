package eventkit

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestHandlerError_Error tests HandlerError formatting.
func TestHandlerError_Error(t *testing.T) {
	err := &HandlerError{
		HandlerID: "handler_3",
		EventType: "order.created",
		Err:       errors.New("connection refused"),
	}

	assert.Equal(t, "handler handler_3 on order.created: connection refused", err.Error())
}

// TestHandlerError_Unwrap tests HandlerError unwrapping.
func TestHandlerError_Unwrap(t *testing.T) {
	underlying := errors.New("underlying")
	err := &HandlerError{
		HandlerID: "handler_1",
		EventType: "order.created",
		Err:       underlying,
	}

	assert.ErrorIs(t, err, underlying)
}

// TestPanicError_Error tests PanicError formatting.
func TestPanicError_Error(t *testing.T) {
	err := &PanicError{
		HandlerID: "handler_2",
		EventType: "order.created",
		Value:     "unexpected nil",
		Stack:     "goroutine 1 [running]:\n...",
	}

	assert.Equal(t, "handler handler_2 on order.created panicked: unexpected nil", err.Error())
}

// TestPanicError_NonStringValue tests formatting of arbitrary panic
// values.
func TestPanicError_NonStringValue(t *testing.T) {
	err := &PanicError{
		HandlerID: "handler_2",
		EventType: "order.created",
		Value:     42,
	}

	assert.Equal(t, "handler handler_2 on order.created panicked: 42", err.Error())
}

// TestCancellationError_Error tests CancellationError formatting.
func TestCancellationError_Error(t *testing.T) {
	err := &CancellationError{
		EventType: "order.created",
		HandlerID: "handler_4",
		Executed:  3,
		Cause:     context.Canceled,
	}

	assert.Equal(t, "emission of order.created cancelled before handler handler_4: context canceled", err.Error())
}

// TestCancellationError_Unwrap tests CancellationError unwrapping.
func TestCancellationError_Unwrap(t *testing.T) {
	err := &CancellationError{
		EventType: "order.created",
		HandlerID: "handler_1",
		Cause:     context.DeadlineExceeded,
	}

	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

// TestEventTypeError_Error tests EventTypeError formatting.
func TestEventTypeError_Error(t *testing.T) {
	err := &EventTypeError{
		Expected: "*eventkit.BaseEvent[orders.Order]",
		Got:      "*eventkit.BaseEvent[users.Login]",
	}

	assert.Equal(t, "unexpected event type: want *eventkit.BaseEvent[orders.Order], got *eventkit.BaseEvent[users.Login]", err.Error())
}

// TestSentinelErrors_Messages tests the sentinel error text.
func TestSentinelErrors_Messages(t *testing.T) {
	assert.EqualError(t, ErrNilContext, "context cannot be nil")
	assert.EqualError(t, ErrNilEvent, "event cannot be nil")
	assert.EqualError(t, ErrEmptyEventType, "event type is required")
	assert.EqualError(t, ErrUndeclaredType, "event type not declared in catalog")
}
