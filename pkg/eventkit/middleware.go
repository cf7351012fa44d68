package eventkit

import (
	"context"
	"fmt"
	"log/slog"
	"time"
)

// MiddlewareFunc wraps a handler to add cross-cutting behavior.
// Middleware runs inside the dispatcher's per-handler accounting, so a
// wrapped handler's duration includes its middleware.
type MiddlewareFunc func(next Handler) Handler

// ChainMiddleware composes middleware around a handler. The first
// middleware is outermost: ChainMiddleware(h, a, b) runs a, then b,
// then h.
func ChainMiddleware(h Handler, middleware ...MiddlewareFunc) Handler {
	for i := len(middleware) - 1; i >= 0; i-- {
		h = middleware[i](h)
	}
	return h
}

// LoggingMiddleware logs each invocation of the wrapped handler.
// A nil logger disables output without disturbing the chain.
func LoggingMiddleware(logger *slog.Logger) MiddlewareFunc {
	return func(next Handler) Handler {
		return HandlerFunc(func(ctx context.Context, evt Event) error {
			start := time.Now()
			err := next.Handle(ctx, evt)
			if logger == nil {
				return err
			}
			if err != nil {
				logger.Error("handler failed",
					slog.String("event_type", evt.Type()),
					slog.Float64("duration_ms", float64(time.Since(start).Milliseconds())),
					slog.String("error", err.Error()),
				)
			} else {
				logger.Debug("handler completed",
					slog.String("event_type", evt.Type()),
					slog.Float64("duration_ms", float64(time.Since(start).Milliseconds())),
				)
			}
			return err
		})
	}
}

// RecoveryMiddleware converts a panic in the wrapped handler into an
// error return. The emission still fails, but with a plain error
// instead of the dispatcher's *PanicError, and without a stack trace.
func RecoveryMiddleware() MiddlewareFunc {
	return func(next Handler) Handler {
		return HandlerFunc(func(ctx context.Context, evt Event) (err error) {
			defer func() {
				if r := recover(); r != nil {
					err = fmt.Errorf("handler panic: %v", r)
				}
			}()
			return next.Handle(ctx, evt)
		})
	}
}

// MetricsMiddleware calls onComplete after every invocation of the
// wrapped handler with the event type, elapsed time, and outcome.
func MetricsMiddleware(onComplete func(eventType string, duration time.Duration, err error)) MiddlewareFunc {
	return func(next Handler) Handler {
		return HandlerFunc(func(ctx context.Context, evt Event) error {
			start := time.Now()
			err := next.Handle(ctx, evt)
			if onComplete != nil {
				onComplete(evt.Type(), time.Since(start), err)
			}
			return err
		})
	}
}

// FilterMiddleware skips the wrapped handler when pred rejects the
// event. A skipped handler reports success, so it still counts as
// executed in the emission result.
func FilterMiddleware(pred func(Event) bool) MiddlewareFunc {
	return func(next Handler) Handler {
		return HandlerFunc(func(ctx context.Context, evt Event) error {
			if pred != nil && !pred(evt) {
				return nil
			}
			return next.Handle(ctx, evt)
		})
	}
}
