package navigator

import (
	"github.com/jsamuelsen11/screennav/internal/domain"
	"github.com/jsamuelsen11/screennav/internal/ports"
)

// WithOverExisting opens the screen on top of the current one. The current
// screen is not exited and stays reachable by a later Close.
func WithOverExisting() ports.NavigateOption {
	return func(o *ports.NavigateOptions) {
		o.OverExisting = true
	}
}

// WithTransition uses factory instead of the navigator's default transition
// for one call. A nil factory keeps the default.
func WithTransition(factory domain.TransitionFactory) ports.NavigateOption {
	return func(o *ports.NavigateOptions) {
		o.Transition = factory
	}
}

func applyOptions(opts []ports.NavigateOption) ports.NavigateOptions {
	var o ports.NavigateOptions
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	return o
}
