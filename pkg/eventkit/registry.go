package eventkit

import (
	"fmt"
	"sort"
	"sync"
	"sync/atomic"
)

// HandlerRecord pairs a registered handler with its identity and tier.
// Records are immutable once created; snapshots share them.
type HandlerRecord struct {
	// ID is unique for the lifetime of the registry ("handler_<n>").
	ID string
	// Priority is the tier the handler runs at.
	Priority Priority
	// Handler is the registered callback.
	Handler Handler
}

// Registry maps event type tags to priority-ordered handler records.
// The zero value is not usable; create one with NewRegistry. All
// methods are safe for concurrent use.
//
// Ordering invariant: each bucket is sorted by priority, and handlers
// that share a priority stay in registration order. Emissions consume
// buckets through Snapshot, so an in-flight emission never observes
// concurrent registry mutation.
type Registry struct {
	mu      sync.RWMutex
	buckets map[string][]*HandlerRecord
	owner   map[string]string
	nextID  atomic.Uint64
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		buckets: make(map[string][]*HandlerRecord),
		owner:   make(map[string]string),
	}
}

// Register adds a handler for an event type and returns its id.
// Registration always succeeds: the same handler may be registered any
// number of times (each gets its own id), and out-of-range priorities
// clamp to the nearest tier.
func (r *Registry) Register(eventType string, h Handler, p Priority) string {
	rec := &HandlerRecord{
		ID:       fmt.Sprintf("handler_%d", r.nextID.Add(1)),
		Priority: p.clamp(),
		Handler:  h,
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	bucket := append(r.buckets[eventType], rec)
	sort.SliceStable(bucket, func(i, j int) bool {
		return bucket[i].Priority < bucket[j].Priority
	})
	r.buckets[eventType] = bucket
	r.owner[rec.ID] = eventType

	return rec.ID
}

// Unregister removes the handler with the given id and reports whether
// a removal happened. Unknown ids are a no-op.
func (r *Registry) Unregister(handlerID string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	eventType, ok := r.owner[handlerID]
	if !ok {
		return false
	}
	delete(r.owner, handlerID)

	bucket := r.buckets[eventType]
	for i, rec := range bucket {
		if rec.ID == handlerID {
			bucket = append(bucket[:i], bucket[i+1:]...)
			break
		}
	}
	if len(bucket) == 0 {
		delete(r.buckets, eventType)
	} else {
		r.buckets[eventType] = bucket
	}
	return true
}

// UnregisterAll removes every handler for the given event types, or
// clears the whole registry when called with no arguments. Unknown
// types are a no-op.
func (r *Registry) UnregisterAll(eventTypes ...string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if len(eventTypes) == 0 {
		r.buckets = make(map[string][]*HandlerRecord)
		r.owner = make(map[string]string)
		return
	}

	for _, eventType := range eventTypes {
		for _, rec := range r.buckets[eventType] {
			delete(r.owner, rec.ID)
		}
		delete(r.buckets, eventType)
	}
}

// UnregisterByPriority removes every handler registered for eventType
// at exactly the given priority and returns the number removed.
// Survivors keep their relative order.
func (r *Registry) UnregisterByPriority(eventType string, p Priority) int {
	r.mu.Lock()
	defer r.mu.Unlock()

	bucket := r.buckets[eventType]
	if len(bucket) == 0 {
		return 0
	}

	kept := make([]*HandlerRecord, 0, len(bucket))
	removed := 0
	for _, rec := range bucket {
		if rec.Priority == p {
			delete(r.owner, rec.ID)
			removed++
			continue
		}
		kept = append(kept, rec)
	}
	if removed == 0 {
		return 0
	}

	if len(kept) == 0 {
		delete(r.buckets, eventType)
	} else {
		r.buckets[eventType] = kept
	}
	return removed
}

// HandlerIDs returns the handler ids for an event type in execution
// order. Unknown types yield an empty slice.
func (r *Registry) HandlerIDs(eventType string) []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	bucket := r.buckets[eventType]
	ids := make([]string, 0, len(bucket))
	for _, rec := range bucket {
		ids = append(ids, rec.ID)
	}
	return ids
}

// HasHandlers reports whether at least one handler is registered for
// the event type.
func (r *Registry) HasHandlers(eventType string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.buckets[eventType]) > 0
}

// HandlerCount returns the number of handlers registered for the event
// type, 0 when none are.
func (r *Registry) HandlerCount(eventType string) int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.buckets[eventType])
}

// Count returns the total number of handlers across all event types.
func (r *Registry) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.owner)
}

// Types returns the event types that currently have handlers, in no
// particular order.
func (r *Registry) Types() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	types := make([]string, 0, len(r.buckets))
	for t := range r.buckets {
		types = append(types, t)
	}
	return types
}

// Snapshot returns a copy of the record sequence for an event type, in
// execution order. The copy is isolated from later registry mutation;
// the records themselves are shared and immutable. Unknown types yield
// nil.
func (r *Registry) Snapshot(eventType string) []*HandlerRecord {
	r.mu.RLock()
	defer r.mu.RUnlock()

	bucket := r.buckets[eventType]
	if len(bucket) == 0 {
		return nil
	}
	snap := make([]*HandlerRecord, len(bucket))
	copy(snap, bucket)
	return snap
}
