/*
Package eventkit provides in-process publish/subscribe event dispatch.

# Overview

eventkit is a Go library for routing events to handlers inside one
process. Handlers register for an event type at one of six priority
tiers; emitting an event runs every matching handler sequentially, in
priority order, on the emitting goroutine.

The library is deliberately synchronous: an emission is an ordinary
function call chain, so handlers can rely on everything earlier in the
chain having finished. What it adds over hand-rolled callbacks:

  - Priority tiers with stable ordering inside each tier
  - Cooperative cancellation, where an event can stop its own emission
  - Panic isolation with captured stack traces
  - OpenTelemetry integration for observability

# Basic Usage

Create a manager, register handlers, emit events:

	type Order struct {
	    ID    string
	    Total int64
	}

	func main() {
	    m := eventkit.New()

	    m.RegisterFunc("order.created", func(ctx context.Context, evt eventkit.Event) error {
	        fmt.Println("got", evt.Type())
	        return nil
	    })

	    result, err := m.Emit(context.Background(),
	        eventkit.NewEvent("order.created", Order{ID: "ord-1", Total: 4200}))
	    if err != nil {
	        log.Fatal(err)
	    }
	    fmt.Println(result.HandlerCount) // 1
	}

Any type with a Type() string method is an event. Event types are plain
string tags; dotted lowercase names ("order.created") are the
convention. BaseEvent is a ready-made carrier for payloads, or embed it
in a named type.

# Priorities

Registration takes one of six tiers. PriorityMonitor runs first,
PriorityLowest last, and handlers that share a tier run in registration
order:

	m.Register("order.created", auditHandler,
	    eventkit.WithPriority(eventkit.PriorityMonitor))
	m.Register("order.created", fulfillHandler,
	    eventkit.WithPriority(eventkit.PriorityHigh))
	m.Register("order.created", emailHandler,
	    eventkit.WithPriority(eventkit.PriorityLowest))

Without WithPriority, handlers register at the manager's default tier
(PriorityNormal unless changed with WithDefaultPriority).

# Cancellation

An event that implements Cancelable can stop the rest of its own
emission. Embed Cancellation to get the capability:

	type PaymentAttempt struct {
	    eventkit.Cancellation
	    Amount int64
	}

	func (PaymentAttempt) Type() string { return "payment.attempt" }

	m.RegisterFunc("payment.attempt", func(ctx context.Context, evt eventkit.Event) error {
	    if c, ok := evt.(eventkit.Cancelable); ok {
	        c.Cancel("fraud check failed")
	    }
	    return nil
	}, eventkit.WithPriority(eventkit.PriorityHighest))

Cancellation is cooperative: the dispatcher checks before each handler,
a running handler is never interrupted, and handlers that already ran
are unaffected. A cancelled emission is a clean stop, not an error; the
result counts only the handlers that ran.

Events without the capability are uncancellable and always reach every
handler.

# Error Handling

A handler error fails the emission at that handler; later handlers do
not run:

	result, err := m.Emit(ctx, evt)
	var handlerErr *eventkit.HandlerError
	if errors.As(err, &handlerErr) {
	    log.Printf("handler %s failed: %v", handlerErr.HandlerID, handlerErr.Err)
	}

	var panicErr *eventkit.PanicError
	if errors.As(err, &panicErr) {
	    log.Printf("handler %s panicked: %v\n%s", panicErr.HandlerID, panicErr.Value, panicErr.Stack)
	}

Panics in handlers are recovered and converted to PanicError with a
stack trace. If the emit context is done between handlers, Emit fails
with a CancellationError wrapping ctx.Err().

The dispatcher imposes no timeout of its own; bound emissions with a
context deadline when needed.

# Typed Handlers

Typed adapts a handler over a concrete event type, failing cleanly on a
mismatch instead of type-asserting by hand:

	m.Register("order.created", eventkit.Typed(
	    func(ctx context.Context, evt *eventkit.BaseEvent[Order]) error {
	        return fulfill(ctx, evt.Payload)
	    },
	))

# Middleware

Middleware wraps handlers registered after it is installed:

	m.Use(eventkit.LoggingMiddleware(logger))
	m.Use(eventkit.FilterMiddleware(func(evt eventkit.Event) bool {
	    return !strings.HasPrefix(evt.Type(), "debug.")
	}))

ChainMiddleware composes chains by hand when registering through a bare
Registry.

# Event Catalog

A Catalog declares the event types a system uses. With validation
enabled, emitting an undeclared type fails fast:

	catalog := eventkit.NewCatalog()
	catalog.Define(&eventkit.Definition{
	    Type:        "order.created",
	    Source:      "orders",
	    Description: "a new order was accepted",
	})

	m := eventkit.New(
	    eventkit.WithCatalog(catalog),
	    eventkit.WithValidation(true),
	)

# Observability

Enable logging, metrics, and tracing:

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	m := eventkit.New(
	    eventkit.WithLogger(logger),
	    eventkit.WithMetrics(true),
	    eventkit.WithTracing(true),
	)

Logs include structured fields: emission_id, event_type, handler_id,
duration_ms, handlers_executed.
OpenTelemetry metrics: eventkit.emissions, eventkit.handler.latency_ms, etc.
OpenTelemetry tracing: eventkit.emit > eventkit.handler.{id} spans.

# Configuration

Map a config file section onto options with FromConfig:

	cfg, err := config.FromFile("app.yaml")
	if err != nil {
	    log.Fatal(err)
	}
	m := eventkit.New(eventkit.FromConfig(cfg.Sub("events"))...)

# Thread Safety

  - Manager IS safe for concurrent use
  - Registry IS safe for concurrent use
  - Dispatcher IS safe for concurrent use; concurrent emissions work
    from independent snapshots
  - Cancellation IS safe for concurrent use
  - Catalog IS safe for concurrent use

Handlers themselves run sequentially within one emission, but two
concurrent emissions run their handlers concurrently with each other.
Handlers that touch shared state need their own synchronization.

# Subpackages

  - config: Type-safe configuration extraction (YAML, JSON)
  - observability: Logging, metrics, and tracing helpers
*/
package eventkit
