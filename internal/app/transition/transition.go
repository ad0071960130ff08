// Package transition provides the stock Transition implementations: an
// instant swap, a function adapter and a frame-paced fade.
package transition

import (
	"context"
	"errors"

	"github.com/jsamuelsen11/screennav/internal/domain"
)

// ErrClosed is returned by Run on a transition that has already been closed.
var ErrClosed = errors.New("transition: closed")

// Compile-time interface checks.
var (
	_ domain.Transition = Instant{}
	_ domain.Transition = Func(nil)
)

// Instant swaps visibility without animating.
type Instant struct{}

// Run hides outgoing and shows incoming.
func (Instant) Run(ctx context.Context, outgoing, incoming domain.Screen) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	swap(outgoing, incoming)
	return nil
}

// InstantFactory is a domain.TransitionFactory for Instant.
func InstantFactory() domain.Transition {
	return Instant{}
}

// Func adapts a function to domain.Transition.
type Func func(ctx context.Context, outgoing, incoming domain.Screen) error

// Run calls f.
func (f Func) Run(ctx context.Context, outgoing, incoming domain.Screen) error {
	return f(ctx, outgoing, incoming)
}

// Revert undoes the visibility change of a transition from outgoing to
// incoming: incoming is hidden again and outgoing shown. It is safe to call
// whether or not the swap had happened.
func Revert(outgoing, incoming domain.Screen) {
	swap(incoming, outgoing)
}

// swap hides outgoing and shows incoming, for whichever of them can be
// toggled.
func swap(outgoing, incoming domain.Screen) {
	if v, ok := outgoing.(domain.Visible); ok {
		v.SetVisible(false)
	}
	if v, ok := incoming.(domain.Visible); ok {
		v.SetVisible(true)
	}
}
