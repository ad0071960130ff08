package navigator

import (
	"context"
	"fmt"

	"github.com/sony/gobreaker/v2"
)

const healthName = "navigator"

// Name identifies the navigator in health reports.
func (n *Navigator) Name() string {
	return healthName
}

// HealthCheck reports transition health from the breaker state. No
// transition is run.
//
//   - closed: transitions are running normally; returns nil.
//   - half-open: a trial transition is being let through; degraded.
//   - open: transitions are being replaced by instant swaps; failing.
func (n *Navigator) HealthCheck(_ context.Context) error {
	state := n.breaker.State()
	switch state {
	case gobreaker.StateClosed:
		return nil
	case gobreaker.StateHalfOpen:
		return fmt.Errorf("%s: degraded (transition breaker half-open)", healthName)
	case gobreaker.StateOpen:
		return fmt.Errorf("%s: failing (transition breaker open, using instant swaps)", healthName)
	default:
		return fmt.Errorf("%s: unknown transition breaker state %v", healthName, state)
	}
}
