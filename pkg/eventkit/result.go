package eventkit

import "time"

// HandlerExecution records one handler invocation within an emission.
type HandlerExecution struct {
	// HandlerID identifies the handler that ran.
	HandlerID string
	// Priority is the tier the handler was registered at.
	Priority Priority
	// Duration is how long Handle took.
	Duration time.Duration
}

// EmissionResult summarizes one successful emission. It is built fresh
// per Emit call and owned by the caller; the dispatcher keeps no
// reference to it.
//
// A result does not distinguish full delivery from an early cooperative
// stop. Check the event's Cancelable state, or compare HandlerCount
// against the registered count, to tell the two apart.
type EmissionResult struct {
	// Event is the instance that was emitted.
	Event Event
	// HandlerCount is the number of handlers that ran to completion.
	HandlerCount int
	// Duration is the wall time of the whole emission.
	Duration time.Duration
	// Executed lists the completed handlers in execution order.
	Executed []HandlerExecution
}
