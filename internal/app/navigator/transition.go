package navigator

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/sony/gobreaker/v2"

	"github.com/jsamuelsen11/screennav/internal/app/transition"
	"github.com/jsamuelsen11/screennav/internal/domain"
	"github.com/jsamuelsen11/screennav/internal/platform/logging"
)

// abandonGrace is how long a transition whose context has ended gets to
// return before it is treated as abandoned.
const abandonGrace = 100 * time.Millisecond

func instantFallback() domain.Transition {
	return transition.Instant{}
}

// transitionRun is one transition instance moving out -> in. abandoned is set
// when the transition did not return after its context ended; it is closed
// once the transition's Run finally returns.
type transitionRun struct {
	tr        domain.Transition
	out, in   domain.Screen
	abandoned <-chan struct{}
}

// transition runs r through the circuit breaker. While the breaker is open
// the screens are swapped instantly instead, so navigation keeps working when
// a transition implementation keeps failing.
//
// On failure the visibility swap is reverted so that out, still the stack
// top, is the visible screen again. An abandoned transition is reverted by
// settle once it returns.
func (n *Navigator) transition(ctx context.Context, kind string, r *transitionRun) error {
	_, err := n.breaker.Execute(func() (struct{}, error) {
		abandoned, err := n.runWithTimeout(ctx, r.tr, r.out, r.in)
		r.abandoned = abandoned
		return struct{}{}, err
	})

	if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
		logging.FromContext(ctx).WarnContext(ctx, "transition breaker open, swapping instantly",
			slog.String("from", domain.ScreenID(r.out)),
			slog.String("to", domain.ScreenID(r.in)),
		)
		if n.metrics != nil {
			n.metrics.TransitionFallbackTotal.Add(ctx, 1)
		}
		err = instantFallback().Run(ctx, r.out, r.in)
	}

	if err != nil {
		if r.abandoned == nil {
			transition.Revert(r.out, r.in)
		}
		return &domain.TransitionError{
			Op:   kind,
			From: domain.ScreenID(r.out),
			To:   domain.ScreenID(r.in),
			Err:  err,
		}
	}
	return nil
}

// runWithTimeout runs tr under the configured transition timeout. A transition
// that panics is reported as a failure. When tr is still running after its
// context ended and the grace period passed, the returned channel is closed
// once it returns.
func (n *Navigator) runWithTimeout(ctx context.Context, tr domain.Transition, out, in domain.Screen) (<-chan struct{}, error) {
	tctx := ctx
	if n.cfg.TransitionTimeout > 0 {
		var cancel context.CancelFunc
		tctx, cancel = context.WithTimeout(ctx, n.cfg.TransitionTimeout)
		defer cancel()
	}

	result := make(chan error, 1)
	finished := make(chan struct{})
	go func() {
		defer close(finished)
		defer func() {
			if r := recover(); r != nil {
				result <- fmt.Errorf("transition panicked: %v", r)
			}
		}()
		result <- tr.Run(tctx, out, in)
	}()

	select {
	case err := <-result:
		if err != nil && ctx.Err() == nil && errors.Is(err, context.DeadlineExceeded) {
			return nil, domain.ErrTransitionTimeout
		}
		return nil, err
	case <-tctx.Done():
	}

	cause := domain.ErrTransitionTimeout
	if err := ctx.Err(); err != nil {
		cause = err
	}

	select {
	case <-finished:
		return nil, cause
	case <-time.After(abandonGrace):
		return finished, cause
	}
}

// settle ends an operation: it destroys the transition and releases the slot.
// If the transition was abandoned the slot stays held until it returns, so
// the next operation never overlaps it, and its swap is reverted afterwards.
func (n *Navigator) settle(ctx context.Context, r *transitionRun) {
	if r == nil {
		n.release()
		return
	}
	if r.abandoned == nil {
		n.destroy(ctx, r.tr)
		n.release()
		return
	}

	ctx = context.WithoutCancel(ctx)
	logging.FromContext(ctx).WarnContext(ctx, "transition still running, holding navigation until it returns",
		slog.String("from", domain.ScreenID(r.out)),
		slog.String("to", domain.ScreenID(r.in)),
	)
	go func() {
		<-r.abandoned
		transition.Revert(r.out, r.in)
		n.destroy(ctx, r.tr)
		n.release()
		logging.FromContext(ctx).InfoContext(ctx, "abandoned transition returned, navigation released")
	}()
}
