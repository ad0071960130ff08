package ports

import (
	"context"

	"github.com/jsamuelsen11/screennav/internal/domain"
)

// NavigateOption configures a single Open, OpenID or Close call.
type NavigateOption func(opts *NavigateOptions)

// NavigateOptions are the per-call navigation settings.
type NavigateOptions struct {
	// OverExisting opens the screen on top of the current one without
	// exiting it. Ignored by Close.
	OverExisting bool

	// Transition overrides the navigator's default transition for this call.
	Transition domain.TransitionFactory
}

// Navigator defines the port host code uses to register and navigate screens.
// Implementations process at most one navigation operation at a time.
type Navigator interface {
	// Register adds or silently replaces the screen for id.
	// Returns domain.ErrInvalidOperation for an empty id or nil screen.
	Register(id string, screen domain.Screen) error

	// Unregister removes the screen for id. Screens already on the stack are
	// unaffected.
	Unregister(id string)

	// Resolve returns the screen for id.
	// Returns a *domain.NotFoundError if id is not registered.
	Resolve(id string) (domain.Screen, error)

	// LoadBundle registers every screen of the bundle, or none of them.
	LoadBundle(b *domain.Bundle) error

	// UnloadBundle removes the registrations of the bundle's screens.
	UnloadBundle(b *domain.Bundle)

	// Open transitions to screen and pushes it. It returns once the screen
	// is on the stack and has received OnEnter, or with the reason it is not.
	Open(ctx context.Context, screen domain.Screen, opts ...NavigateOption) error

	// OpenID resolves id through the registry and opens the result.
	OpenID(ctx context.Context, id string, opts ...NavigateOption) error

	// Close transitions away from the top screen and pops it. The screen
	// underneath, if any, receives OnEnter.
	Close(ctx context.Context, opts ...NavigateOption) error

	// Reset exits the top screen, hides it and empties the stack without a
	// transition. Screens below the top receive no hooks.
	Reset(ctx context.Context) error

	// Registered returns the number of registered screens.
	Registered() int

	// Current returns the top of the stack, or nil when it is empty.
	Current() domain.Screen

	// Depth returns the number of screens on the stack.
	Depth() int

	// History returns the stacked screen ids from bottom to top.
	History() []string

	// State reports whether an operation is in flight.
	State() domain.NavigationState
}
