package domain

import "context"

// Screen is a unit of navigable UI content. Screens are created and destroyed
// by the host application; the navigator only holds references to them while
// they are registered or on the stack.
type Screen interface {
	// ID returns the identifier of the screen. It must be stable for the
	// lifetime of the instance.
	ID() string

	// OnEnter is called after the transition into the screen has completed
	// and the screen is the top of the stack.
	OnEnter()

	// OnExit is called before the transition away from the screen starts.
	OnExit()
}

// Visible is implemented by screens whose visibility can be toggled by a
// transition. Transitions swap visibility only for screens that implement it.
type Visible interface {
	SetVisible(visible bool)
}

// Transition orchestrates the handoff between an outgoing and an incoming
// screen. Either screen may be nil: outgoing is nil when opening onto an empty
// stack or over an existing screen, incoming is nil when the last screen is
// closed.
//
// When Run is called the outgoing screen has already received OnExit. The
// incoming screen receives OnEnter only if Run returns nil. Implementations
// should return promptly with ctx.Err() once ctx is done.
type Transition interface {
	Run(ctx context.Context, outgoing, incoming Screen) error
}

// Bundle is a named group of screens that are registered and unregistered
// together. A bundle is never itself part of the navigation stack.
type Bundle struct {
	Name    string
	Screens []Screen
}

// TransitionFactory creates a fresh Transition for a single navigation
// operation. If the returned value also implements io.Closer it is closed
// once the operation ends, whether or not it succeeded.
type TransitionFactory func() Transition

// ScreenID returns s.ID(), or an empty string for a nil screen. Used for
// logging and span attributes where either side of a transition may be absent.
func ScreenID(s Screen) string {
	if s == nil {
		return ""
	}
	return s.ID()
}
