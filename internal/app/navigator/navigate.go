package navigator

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"

	"github.com/jsamuelsen11/screennav/internal/domain"
	"github.com/jsamuelsen11/screennav/internal/platform/logging"
	"github.com/jsamuelsen11/screennav/internal/platform/telemetry"
	"github.com/jsamuelsen11/screennav/internal/ports"
)

const (
	opOpen  = "open"
	opClose = "close"
	opReset = "reset"
)

// Open transitions to screen and pushes it onto the stack.
//
// Unless WithOverExisting is given, the current top receives OnExit before the
// transition runs and is no longer active afterwards. screen receives OnEnter
// only after the transition completed and the push happened.
//
// A nil screen, or a screen whose ID is already on the stack, is rejected
// without touching any state: with domain.ErrInvalidOperation in strict mode,
// silently (logged) otherwise.
func (n *Navigator) Open(ctx context.Context, screen domain.Screen, opts ...ports.NavigateOption) error {
	if screen == nil {
		return n.reject(ctx, "Navigator.Open", domain.InvalidOperation("cannot open a nil screen"))
	}
	return n.open(ctx, screen, applyOptions(opts))
}

// OpenID resolves id through the registry and opens the result. An unknown id
// is rejected without touching any state: with a *domain.NotFoundError in
// strict mode, silently (logged) otherwise.
func (n *Navigator) OpenID(ctx context.Context, id string, opts ...ports.NavigateOption) error {
	screen, err := n.registry.Resolve(id)
	if err != nil {
		return n.reject(ctx, "Navigator.OpenID", err)
	}
	return n.open(ctx, screen, applyOptions(opts))
}

// Close transitions away from the top screen and pops it. The closing screen
// receives OnExit before the transition; the screen underneath, if any,
// receives OnEnter after it. Closing an empty stack is rejected like an
// invalid Open.
func (n *Navigator) Close(ctx context.Context, opts ...ports.NavigateOption) error {
	return n.close(ctx, applyOptions(opts))
}

func (n *Navigator) open(ctx context.Context, incoming domain.Screen, o ports.NavigateOptions) error {
	const op = "Navigator.Open"

	ctx, span, done := n.begin(ctx, op)
	defer span.End()

	if err := n.acquire(ctx); err != nil {
		return done(n.fail(ctx, span, err), opOpen, "", incoming.ID())
	}
	var run *transitionRun
	defer func() { n.settle(ctx, run) }()

	if n.stack.Contains(incoming.ID()) {
		err := n.reject(ctx, op, domain.InvalidOperation("screen %q is already open", incoming.ID()))
		return done(err, opOpen, "", incoming.ID())
	}

	var outgoing domain.Screen
	if !o.OverExisting {
		outgoing = n.stack.Current()
	}
	from, to := domain.ScreenID(outgoing), incoming.ID()
	span.SetAttributes(telemetry.AttrFrom.String(from), telemetry.AttrTo.String(to))

	run = &transitionRun{tr: n.instantiate(o.Transition), out: outgoing, in: incoming}

	p := newPlan(op)
	if outgoing != nil {
		p.add("exit "+from,
			func(context.Context) error { outgoing.OnExit(); return nil },
			func(context.Context) { outgoing.OnEnter() },
		)
	}
	p.add("transition "+from+" -> "+to,
		func(ctx context.Context) error { return n.transition(ctx, opOpen, run) },
		nil,
	)
	p.add("push "+to,
		func(context.Context) error { n.push(incoming); return nil },
		func(context.Context) { n.pop() },
	)
	p.add("enter "+to,
		func(context.Context) error { incoming.OnEnter(); return nil },
		nil,
	)

	if err := p.commit(ctx, n.shouldRestore); err != nil {
		return done(n.fail(ctx, span, err), opOpen, from, to)
	}

	logging.FromContext(ctx).InfoContext(ctx, "screen opened",
		slog.String("from", from),
		slog.String("to", to),
		slog.Bool("over_existing", o.OverExisting),
		slog.Int("depth", n.Depth()),
	)
	return done(nil, opOpen, from, to)
}

func (n *Navigator) close(ctx context.Context, o ports.NavigateOptions) error {
	const op = "Navigator.Close"

	ctx, span, done := n.begin(ctx, op)
	defer span.End()

	if err := n.acquire(ctx); err != nil {
		return done(n.fail(ctx, span, err), opClose, "", "")
	}
	var run *transitionRun
	defer func() { n.settle(ctx, run) }()

	if n.stack.IsEmpty() {
		return done(n.reject(ctx, op, domain.InvalidOperation("no screen to close")), opClose, "", "")
	}
	closing := n.stack.Current()
	newTop := n.stack.Below()
	from, to := closing.ID(), domain.ScreenID(newTop)
	span.SetAttributes(telemetry.AttrFrom.String(from), telemetry.AttrTo.String(to))

	run = &transitionRun{tr: n.instantiate(o.Transition), out: closing, in: newTop}

	p := newPlan(op)
	p.add("exit "+from,
		func(context.Context) error { closing.OnExit(); return nil },
		func(context.Context) { closing.OnEnter() },
	)
	p.add("transition "+from+" -> "+to,
		func(ctx context.Context) error { return n.transition(ctx, opClose, run) },
		nil,
	)
	p.add("pop "+from,
		func(context.Context) error { n.pop(); return nil },
		func(context.Context) { n.push(closing) },
	)
	if newTop != nil {
		p.add("enter "+to,
			func(context.Context) error { newTop.OnEnter(); return nil },
			nil,
		)
	}

	if err := p.commit(ctx, n.shouldRestore); err != nil {
		return done(n.fail(ctx, span, err), opClose, from, to)
	}

	logging.FromContext(ctx).InfoContext(ctx, "screen closed",
		slog.String("from", from),
		slog.String("to", to),
		slog.Int("depth", n.Depth()),
	)
	return done(nil, opClose, from, to)
}

// Reset exits the top screen, hides it and drops every screen from the stack.
// No transition runs and the screens below the top receive no hooks. An empty
// stack is left as is.
func (n *Navigator) Reset(ctx context.Context) error {
	const op = "Navigator.Reset"

	ctx, span, done := n.begin(ctx, op)
	defer span.End()

	if err := n.acquire(ctx); err != nil {
		return done(n.fail(ctx, span, err), opReset, "", "")
	}
	defer n.release()

	top := n.stack.Current()
	if top == nil {
		return done(nil, opReset, "", "")
	}
	from, depth := top.ID(), n.stack.Len()

	top.OnExit()
	if v, ok := top.(domain.Visible); ok {
		v.SetVisible(false)
	}

	n.mu.Lock()
	n.stack.Clear()
	n.mu.Unlock()

	logging.FromContext(ctx).InfoContext(ctx, "navigation reset",
		slog.String("from", from),
		slog.Int("dropped", depth),
	)
	return done(nil, opReset, from, "")
}

// begin tags ctx with an operation-scoped logger and starts the span. The
// returned done func records metrics and passes the error through.
func (n *Navigator) begin(ctx context.Context, op string) (context.Context, trace.Span, func(error, string, string, string) error) {
	start := time.Now()

	ctx, _ = logging.WithOperation(ctx, n.logger, op)

	tracer := otel.GetTracerProvider().Tracer("navigator")
	ctx, span := tracer.Start(ctx, op)

	done := func(err error, kind, from, to string) error {
		n.recordMetrics(ctx, kind, from, to, start, err)
		return err
	}
	return ctx, span, done
}

// fail logs err and marks the span as failed.
func (n *Navigator) fail(ctx context.Context, span trace.Span, err error) error {
	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())

	logger := logging.FromContext(ctx)
	if errors.Is(err, domain.ErrBusy) || errors.Is(err, context.Canceled) {
		logger.WarnContext(ctx, "navigation not performed", slog.Any("error", err))
		return err
	}
	logger.ErrorContext(ctx, "navigation failed", slog.Any("error", err))
	return err
}

// reject applies the strictness policy to a request that cannot be carried
// out. Nothing has been mutated when reject is called.
func (n *Navigator) reject(ctx context.Context, op string, err error) error {
	logger := logging.FromContext(ctx)
	if n.cfg.Strict {
		logger.WarnContext(ctx, "navigation rejected",
			slog.String("operation", op),
			slog.Any("error", err),
		)
		return err
	}
	logger.WarnContext(ctx, "navigation ignored",
		slog.String("operation", op),
		slog.Any("error", err),
	)
	return nil
}

// shouldRestore decides whether a failed operation re-enters its outgoing
// screen. Cancellation and timeouts always roll back; plain transition
// failures only when configured to.
func (n *Navigator) shouldRestore(err error) bool {
	if errors.Is(err, context.Canceled) ||
		errors.Is(err, context.DeadlineExceeded) ||
		errors.Is(err, domain.ErrTransitionTimeout) {
		return true
	}
	return n.cfg.RestoreOnFailure
}

// instantiate creates the transition for one operation.
func (n *Navigator) instantiate(factory domain.TransitionFactory) domain.Transition {
	if factory == nil {
		n.mu.RLock()
		factory = n.defaultTransition
		n.mu.RUnlock()
	}
	if tr := factory(); tr != nil {
		return tr
	}
	return instantFallback()
}

// destroy releases the per-operation transition. It runs whether or not the
// operation succeeded.
func (n *Navigator) destroy(ctx context.Context, tr domain.Transition) {
	c, ok := tr.(io.Closer)
	if !ok {
		return
	}
	if err := c.Close(); err != nil {
		logging.FromContext(ctx).WarnContext(ctx, "failed to destroy transition", slog.Any("error", err))
	}
}

// recordMetrics records operation duration, count and stack depth.
// Safe to call with nil metrics.
func (n *Navigator) recordMetrics(ctx context.Context, kind, from, to string, start time.Time, err error) {
	if n.metrics == nil {
		return
	}

	attrs := metric.WithAttributes(
		telemetry.AttrOperation.String(kind),
		telemetry.AttrFrom.String(from),
		telemetry.AttrTo.String(to),
		telemetry.AttrResult.String(resultOf(err)),
	)

	n.metrics.NavigationDuration.Record(ctx, time.Since(start).Seconds(), attrs)
	n.metrics.NavigationTotal.Add(ctx, 1, attrs)
	n.metrics.StackDepth.Record(ctx, int64(n.Depth()))
}

func resultOf(err error) string {
	switch {
	case err == nil:
		return "success"
	case errors.Is(err, domain.ErrTransitionTimeout):
		return "timeout"
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return "cancelled"
	case errors.Is(err, domain.ErrBusy):
		return "busy"
	case errors.Is(err, domain.ErrNotFound), errors.Is(err, domain.ErrInvalidOperation):
		return "rejected"
	default:
		return "error"
	}
}
