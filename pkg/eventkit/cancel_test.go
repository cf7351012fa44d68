package eventkit

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestCancellation_ZeroValue tests that the zero value reports live.
func TestCancellation_ZeroValue(t *testing.T) {
	var c Cancellation

	assert.False(t, c.IsCancelled())
	assert.Empty(t, c.CancelReason())
}

// TestCancellation_Cancel tests the cancelled state.
func TestCancellation_Cancel(t *testing.T) {
	var c Cancellation

	c.Cancel("fraud check failed")

	assert.True(t, c.IsCancelled())
	assert.Equal(t, "fraud check failed", c.CancelReason())
}

// TestCancellation_FirstReasonWins tests that later cancels are no-ops.
func TestCancellation_FirstReasonWins(t *testing.T) {
	var c Cancellation

	c.Cancel("first")
	c.Cancel("second")
	c.Cancel("third")

	assert.True(t, c.IsCancelled())
	assert.Equal(t, "first", c.CancelReason())
}

// TestCancellation_EmptyReason tests cancelling with no reason.
func TestCancellation_EmptyReason(t *testing.T) {
	var c Cancellation

	c.Cancel("")

	assert.True(t, c.IsCancelled())
	assert.Empty(t, c.CancelReason())

	// The empty first reason still sticks.
	c.Cancel("late reason")
	assert.Empty(t, c.CancelReason())
}

// TestCancellation_Embedded tests embedding in a custom event type.
func TestCancellation_Embedded(t *testing.T) {
	type paymentAttempt struct {
		Cancellation
		Amount int
	}

	evt := &paymentAttempt{Amount: 1200}

	var c Cancelable = evt
	assert.False(t, c.IsCancelled())

	c.Cancel("over limit")

	assert.True(t, evt.IsCancelled())
	assert.Equal(t, "over limit", evt.CancelReason())
	assert.Equal(t, 1200, evt.Amount)
}
