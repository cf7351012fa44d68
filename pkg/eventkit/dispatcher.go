package eventkit

import (
	"context"
	"errors"
	"runtime/debug"
	"time"

	"github.com/google/uuid"
	"github.com/randalmurphal/eventkit/pkg/eventkit/observability"
	"go.opentelemetry.io/otel/trace"
)

// SnapshotSource is the read-only registry view a Dispatcher consumes.
// *Registry implements it.
type SnapshotSource interface {
	// Snapshot returns the execution-ordered handler records for an
	// event type, isolated from later mutation.
	Snapshot(eventType string) []*HandlerRecord
}

// Dispatcher runs the sequential handler loop for emissions. Most
// callers use one through Manager; it is exported for hosts that manage
// their own Registry.
//
// A Dispatcher is stateless between emissions and safe for concurrent
// use. Concurrent Emit calls on the same dispatcher proceed
// independently; each works from its own snapshot.
type Dispatcher struct {
	source SnapshotSource
	cfg    managerConfig
}

// NewDispatcher creates a dispatcher that reads handler snapshots from
// source.
func NewDispatcher(source SnapshotSource, opts ...Option) *Dispatcher {
	cfg := defaultManagerConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	return &Dispatcher{source: source, cfg: cfg}
}

// Emit delivers evt to every handler registered for its type, in
// priority order, and returns a summary of what ran.
//
// Delivery is strictly sequential on the calling goroutine: each
// handler sees the effects of the handlers before it. Emitting a type
// with no handlers succeeds with an empty result.
//
// Three things stop an emission early:
//
//   - A handler returns an error or panics. Emit fails with a
//     *HandlerError or *PanicError and no result; later handlers do
//     not run.
//   - ctx is done between handlers. Emit fails with a
//     *CancellationError. A running handler is never interrupted; the
//     check happens before each handler starts.
//   - The event implements Cancelable and a handler cancels it. This
//     is a clean stop, not a failure: Emit succeeds, and the result
//     counts only the handlers that ran.
//
// The handler set is snapshotted once at the start, so handlers that
// register or unregister handlers affect later emissions only.
func (d *Dispatcher) Emit(ctx context.Context, evt Event, opts ...EmitOption) (result *EmissionResult, emitErr error) {
	if ctx == nil {
		return nil, ErrNilContext
	}
	if evt == nil {
		return nil, ErrNilEvent
	}

	ecfg := emitConfig{}
	for _, opt := range opts {
		opt(&ecfg)
	}
	if ecfg.emissionID == "" {
		ecfg.emissionID = "emit-" + uuid.New().String()[:8]
	}

	eventType := evt.Type()

	if d.cfg.validateEvents && d.cfg.catalog != nil {
		if err := d.cfg.catalog.Validate(evt); err != nil {
			return nil, err
		}
	}

	startTime := time.Now()

	observability.LogEmitStart(d.cfg.logger, ecfg.emissionID, eventType)

	execCtx := ctx
	var emitSpan trace.Span
	if d.cfg.tracingEnabled {
		execCtx, emitSpan = d.cfg.spans.StartEmitSpan(ctx, eventType, ecfg.emissionID)
		defer func() {
			d.cfg.spans.EndSpanWithError(emitSpan, emitErr)
		}()
	}

	executed, cancelled, reason, runErr := d.runHandlers(execCtx, evt, eventType)

	duration := time.Since(startTime)
	durationMs := float64(duration.Milliseconds())

	d.cfg.metrics.RecordEmission(ctx, eventType, runErr == nil, duration, len(executed))

	if runErr != nil {
		observability.LogEmitError(d.cfg.logger, ecfg.emissionID, eventType, runErr, durationMs, failedHandlerID(runErr))
		return nil, runErr
	}

	if cancelled {
		d.cfg.metrics.RecordCancellation(ctx, eventType, reason)
		observability.LogEmitCancelled(d.cfg.logger, ecfg.emissionID, eventType, reason, len(executed))
	} else {
		observability.LogEmitComplete(d.cfg.logger, ecfg.emissionID, eventType, durationMs, len(executed))
	}

	return &EmissionResult{
		Event:        evt,
		HandlerCount: len(executed),
		Duration:     duration,
		Executed:     executed,
	}, nil
}

// runHandlers executes the snapshot loop with per-handler
// observability. It returns the completed executions, whether the
// event cancelled the emission, the cancel reason, and the first
// failure.
func (d *Dispatcher) runHandlers(ctx context.Context, evt Event, eventType string) (executed []HandlerExecution, cancelled bool, reason string, err error) {
	snapshot := d.source.Snapshot(eventType)
	executed = make([]HandlerExecution, 0, len(snapshot))
	cancelable, _ := evt.(Cancelable)

	for _, rec := range snapshot {
		select {
		case <-ctx.Done():
			return executed, false, "", &CancellationError{
				EventType: eventType,
				HandlerID: rec.ID,
				Executed:  len(executed),
				Cause:     ctx.Err(),
			}
		default:
		}

		if cancelable != nil && cancelable.IsCancelled() {
			return executed, true, cancelable.CancelReason(), nil
		}

		observability.LogHandlerStart(d.cfg.logger, rec.ID, eventType)

		handlerCtx := ctx
		var handlerSpan trace.Span
		if d.cfg.tracingEnabled {
			handlerCtx, handlerSpan = d.cfg.spans.StartHandlerSpan(ctx, rec.ID, rec.Priority.String())
		}

		handlerStart := time.Now()
		handlerErr := d.invokeHandler(handlerCtx, rec, evt, eventType)
		handlerDuration := time.Since(handlerStart)

		d.cfg.metrics.RecordHandlerExecution(handlerCtx, eventType, rec.ID, handlerDuration, handlerErr)

		if d.cfg.tracingEnabled {
			d.cfg.spans.EndSpanWithError(handlerSpan, handlerErr)
		}

		if handlerErr != nil {
			observability.LogHandlerError(d.cfg.logger, rec.ID, eventType, handlerErr)
			return executed, false, "", handlerErr
		}

		observability.LogHandlerComplete(d.cfg.logger, rec.ID, eventType, float64(handlerDuration.Milliseconds()))

		executed = append(executed, HandlerExecution{
			HandlerID: rec.ID,
			Priority:  rec.Priority,
			Duration:  handlerDuration,
		})
	}

	if cancelable != nil && cancelable.IsCancelled() {
		return executed, true, cancelable.CancelReason(), nil
	}
	return executed, false, "", nil
}

// invokeHandler runs a single handler with panic recovery.
func (d *Dispatcher) invokeHandler(ctx context.Context, rec *HandlerRecord, evt Event, eventType string) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = &PanicError{
				HandlerID: rec.ID,
				EventType: eventType,
				Value:     r,
				Stack:     string(debug.Stack()),
			}
		}
	}()

	if err := rec.Handler.Handle(ctx, evt); err != nil {
		return &HandlerError{
			HandlerID: rec.ID,
			EventType: eventType,
			Err:       err,
		}
	}
	return nil
}

// failedHandlerID extracts the handler id from an emission error for
// logging.
func failedHandlerID(err error) string {
	var handlerErr *HandlerError
	if errors.As(err, &handlerErr) {
		return handlerErr.HandlerID
	}
	var panicErr *PanicError
	if errors.As(err, &panicErr) {
		return panicErr.HandlerID
	}
	var cancelErr *CancellationError
	if errors.As(err, &cancelErr) {
		return cancelErr.HandlerID
	}
	return ""
}
