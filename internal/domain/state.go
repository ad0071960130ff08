package domain

// NavigationState is the state of a navigator's two-state machine.
type NavigationState int32

const (
	// StateIdle means no navigation operation is in flight.
	StateIdle NavigationState = iota
	// StateTransitioning means an open or close operation holds the
	// navigator, from slot acquisition until its hooks have run.
	StateTransitioning
)

func (s NavigationState) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateTransitioning:
		return "transitioning"
	default:
		return "unknown"
	}
}
