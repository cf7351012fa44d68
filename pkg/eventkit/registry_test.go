package eventkit

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestNewRegistry verifies basic registry creation.
func TestNewRegistry(t *testing.T) {
	reg := NewRegistry()
	assert.NotNil(t, reg)
	assert.NotNil(t, reg.buckets)
	assert.NotNil(t, reg.owner)
	assert.Equal(t, 0, reg.Count())
	assert.Empty(t, reg.Types())
}

// TestRegistry_Register_SequentialIDs tests that ids are assigned in order.
func TestRegistry_Register_SequentialIDs(t *testing.T) {
	reg := NewRegistry()

	id1 := reg.Register("order.created", noopHandler, PriorityNormal)
	id2 := reg.Register("order.created", noopHandler, PriorityNormal)
	id3 := reg.Register("order.shipped", noopHandler, PriorityNormal)

	assert.Equal(t, "handler_1", id1)
	assert.Equal(t, "handler_2", id2)
	assert.Equal(t, "handler_3", id3)
}

// TestRegistry_Register_SameHandlerTwice tests duplicate registration.
func TestRegistry_Register_SameHandlerTwice(t *testing.T) {
	reg := NewRegistry()

	id1 := reg.Register("order.created", noopHandler, PriorityNormal)
	id2 := reg.Register("order.created", noopHandler, PriorityNormal)

	assert.NotEqual(t, id1, id2)
	assert.Equal(t, 2, reg.HandlerCount("order.created"))
}

// TestRegistry_Register_OrdersByPriority tests priority ordering.
func TestRegistry_Register_OrdersByPriority(t *testing.T) {
	reg := NewRegistry()

	normal := reg.Register("order.created", noopHandler, PriorityNormal)
	monitor := reg.Register("order.created", noopHandler, PriorityMonitor)
	high := reg.Register("order.created", noopHandler, PriorityHigh)
	lowest := reg.Register("order.created", noopHandler, PriorityLowest)

	assert.Equal(t, []string{monitor, high, normal, lowest}, reg.HandlerIDs("order.created"))
}

// TestRegistry_Register_TiesKeepRegistrationOrder tests stable ordering
// within a priority tier.
func TestRegistry_Register_TiesKeepRegistrationOrder(t *testing.T) {
	reg := NewRegistry()

	first := reg.Register("order.created", noopHandler, PriorityNormal)
	second := reg.Register("order.created", noopHandler, PriorityNormal)
	third := reg.Register("order.created", noopHandler, PriorityNormal)

	assert.Equal(t, []string{first, second, third}, reg.HandlerIDs("order.created"))
}

// TestRegistry_Register_TiesAcrossInterleavedTiers tests that a later
// high-priority registration lands before earlier lower tiers without
// disturbing ties.
func TestRegistry_Register_TiesAcrossInterleavedTiers(t *testing.T) {
	reg := NewRegistry()

	lowA := reg.Register("order.created", noopHandler, PriorityLow)
	normalA := reg.Register("order.created", noopHandler, PriorityNormal)
	lowB := reg.Register("order.created", noopHandler, PriorityLow)
	normalB := reg.Register("order.created", noopHandler, PriorityNormal)

	assert.Equal(t, []string{normalA, normalB, lowA, lowB}, reg.HandlerIDs("order.created"))
}

// TestRegistry_Register_ClampsOutOfRangePriority tests priority clamping.
func TestRegistry_Register_ClampsOutOfRangePriority(t *testing.T) {
	reg := NewRegistry()

	reg.Register("order.created", noopHandler, Priority(99))
	reg.Register("order.created", noopHandler, Priority(-3))

	snap := reg.Snapshot("order.created")
	require.Len(t, snap, 2)
	assert.Equal(t, PriorityMonitor, snap[0].Priority)
	assert.Equal(t, PriorityLowest, snap[1].Priority)
}

// TestRegistry_Unregister tests handler removal by id.
func TestRegistry_Unregister(t *testing.T) {
	reg := NewRegistry()

	id1 := reg.Register("order.created", noopHandler, PriorityNormal)
	id2 := reg.Register("order.created", noopHandler, PriorityNormal)

	assert.True(t, reg.Unregister(id1))
	assert.Equal(t, []string{id2}, reg.HandlerIDs("order.created"))
	assert.Equal(t, 1, reg.Count())
}

// TestRegistry_Unregister_UnknownID tests removal with an unknown id.
func TestRegistry_Unregister_UnknownID(t *testing.T) {
	reg := NewRegistry()
	reg.Register("order.created", noopHandler, PriorityNormal)

	assert.False(t, reg.Unregister("handler_999"))
	assert.Equal(t, 1, reg.Count())
}

// TestRegistry_Unregister_Twice tests that a second removal is a no-op.
func TestRegistry_Unregister_Twice(t *testing.T) {
	reg := NewRegistry()
	id := reg.Register("order.created", noopHandler, PriorityNormal)

	assert.True(t, reg.Unregister(id))
	assert.False(t, reg.Unregister(id))
}

// TestRegistry_Unregister_RemovesEmptyBucket tests that removing the
// last handler drops the event type entirely.
func TestRegistry_Unregister_RemovesEmptyBucket(t *testing.T) {
	reg := NewRegistry()
	id := reg.Register("order.created", noopHandler, PriorityNormal)

	reg.Unregister(id)

	assert.False(t, reg.HasHandlers("order.created"))
	assert.Empty(t, reg.Types())
}

// TestRegistry_UnregisterAll_SpecificTypes tests bulk removal by type.
func TestRegistry_UnregisterAll_SpecificTypes(t *testing.T) {
	reg := NewRegistry()
	reg.Register("order.created", noopHandler, PriorityNormal)
	reg.Register("order.created", noopHandler, PriorityHigh)
	reg.Register("order.shipped", noopHandler, PriorityNormal)
	reg.Register("user.login", noopHandler, PriorityNormal)

	reg.UnregisterAll("order.created", "order.shipped")

	assert.False(t, reg.HasHandlers("order.created"))
	assert.False(t, reg.HasHandlers("order.shipped"))
	assert.True(t, reg.HasHandlers("user.login"))
	assert.Equal(t, 1, reg.Count())
}

// TestRegistry_UnregisterAll_Everything tests full reset.
func TestRegistry_UnregisterAll_Everything(t *testing.T) {
	reg := NewRegistry()
	reg.Register("order.created", noopHandler, PriorityNormal)
	reg.Register("order.shipped", noopHandler, PriorityNormal)

	reg.UnregisterAll()

	assert.Equal(t, 0, reg.Count())
	assert.Empty(t, reg.Types())
}

// TestRegistry_UnregisterAll_UnknownType tests that unknown types are
// tolerated.
func TestRegistry_UnregisterAll_UnknownType(t *testing.T) {
	reg := NewRegistry()
	reg.Register("order.created", noopHandler, PriorityNormal)

	reg.UnregisterAll("nonexistent")

	assert.Equal(t, 1, reg.Count())
}

// TestRegistry_UnregisterByPriority tests tier-scoped removal.
func TestRegistry_UnregisterByPriority(t *testing.T) {
	reg := NewRegistry()
	monitor := reg.Register("order.created", noopHandler, PriorityMonitor)
	reg.Register("order.created", noopHandler, PriorityNormal)
	reg.Register("order.created", noopHandler, PriorityNormal)
	lowest := reg.Register("order.created", noopHandler, PriorityLowest)

	removed := reg.UnregisterByPriority("order.created", PriorityNormal)

	assert.Equal(t, 2, removed)
	assert.Equal(t, []string{monitor, lowest}, reg.HandlerIDs("order.created"))
	assert.Equal(t, 2, reg.Count())
}

// TestRegistry_UnregisterByPriority_NoMatch tests removal with no
// handlers at the tier.
func TestRegistry_UnregisterByPriority_NoMatch(t *testing.T) {
	reg := NewRegistry()
	reg.Register("order.created", noopHandler, PriorityNormal)

	assert.Equal(t, 0, reg.UnregisterByPriority("order.created", PriorityMonitor))
	assert.Equal(t, 0, reg.UnregisterByPriority("nonexistent", PriorityNormal))
	assert.Equal(t, 1, reg.Count())
}

// TestRegistry_UnregisterByPriority_RemovesEmptyBucket tests that
// removing every handler at a tier drops the event type.
func TestRegistry_UnregisterByPriority_RemovesEmptyBucket(t *testing.T) {
	reg := NewRegistry()
	reg.Register("order.created", noopHandler, PriorityNormal)
	reg.Register("order.created", noopHandler, PriorityNormal)

	removed := reg.UnregisterByPriority("order.created", PriorityNormal)

	assert.Equal(t, 2, removed)
	assert.False(t, reg.HasHandlers("order.created"))
	assert.Empty(t, reg.Types())
}

// TestRegistry_HandlerIDs_UnknownType tests lookup for an unknown type.
func TestRegistry_HandlerIDs_UnknownType(t *testing.T) {
	reg := NewRegistry()

	ids := reg.HandlerIDs("nonexistent")

	assert.NotNil(t, ids)
	assert.Empty(t, ids)
}

// TestRegistry_HasHandlers tests existence checks.
func TestRegistry_HasHandlers(t *testing.T) {
	reg := NewRegistry()
	assert.False(t, reg.HasHandlers("order.created"))

	reg.Register("order.created", noopHandler, PriorityNormal)
	assert.True(t, reg.HasHandlers("order.created"))
}

// TestRegistry_HandlerCount tests per-type counts.
func TestRegistry_HandlerCount(t *testing.T) {
	reg := NewRegistry()
	assert.Equal(t, 0, reg.HandlerCount("order.created"))

	reg.Register("order.created", noopHandler, PriorityNormal)
	reg.Register("order.created", noopHandler, PriorityHigh)
	assert.Equal(t, 2, reg.HandlerCount("order.created"))
}

// TestRegistry_Types tests type enumeration.
func TestRegistry_Types(t *testing.T) {
	reg := NewRegistry()
	reg.Register("order.created", noopHandler, PriorityNormal)
	reg.Register("order.shipped", noopHandler, PriorityNormal)
	reg.Register("user.login", noopHandler, PriorityNormal)

	types := reg.Types()

	assert.Len(t, types, 3)
	assert.ElementsMatch(t, []string{"order.created", "order.shipped", "user.login"}, types)
}

// TestRegistry_Snapshot_ExecutionOrder tests that snapshots come back
// in execution order.
func TestRegistry_Snapshot_ExecutionOrder(t *testing.T) {
	reg := NewRegistry()
	low := reg.Register("order.created", noopHandler, PriorityLow)
	monitor := reg.Register("order.created", noopHandler, PriorityMonitor)

	snap := reg.Snapshot("order.created")

	require.Len(t, snap, 2)
	assert.Equal(t, monitor, snap[0].ID)
	assert.Equal(t, low, snap[1].ID)
}

// TestRegistry_Snapshot_UnknownType tests snapshot of an unknown type.
func TestRegistry_Snapshot_UnknownType(t *testing.T) {
	reg := NewRegistry()
	assert.Nil(t, reg.Snapshot("nonexistent"))
}

// TestRegistry_Snapshot_IsolatedFromMutation tests that a snapshot does
// not observe later registry changes.
func TestRegistry_Snapshot_IsolatedFromMutation(t *testing.T) {
	reg := NewRegistry()
	id1 := reg.Register("order.created", noopHandler, PriorityNormal)
	id2 := reg.Register("order.created", noopHandler, PriorityNormal)

	snap := reg.Snapshot("order.created")

	reg.Unregister(id1)
	reg.Register("order.created", noopHandler, PriorityMonitor)

	require.Len(t, snap, 2)
	assert.Equal(t, id1, snap[0].ID)
	assert.Equal(t, id2, snap[1].ID)
}
