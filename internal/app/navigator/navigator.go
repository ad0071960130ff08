// Package navigator implements the screen navigator: the orchestrator that
// owns a navigation stack, resolves screens through a registry, and runs one
// transition-driven open or close at a time.
//
// Construction:
//
//	nav := navigator.New(&cfg.Navigator, registry.New(), stack.New(),
//	    transition.NewFadeFactory(cfg.Navigator.Fade, nil), metrics, logger)
//
// Navigation:
//
//	err := nav.OpenID(ctx, "settings")
//	err = nav.Open(ctx, dialog, navigator.WithOverExisting())
//	err = nav.Close(ctx)
//
// Every call blocks until the operation has fully committed or fully rolled
// back; the returned error is the only completion signal.
package navigator

import (
	"context"
	"errors"
	"log/slog"
	"math"
	"sync"

	"github.com/sony/gobreaker/v2"
	"go.uber.org/atomic"

	"github.com/jsamuelsen11/screennav/internal/app/registry"
	"github.com/jsamuelsen11/screennav/internal/app/stack"
	"github.com/jsamuelsen11/screennav/internal/app/transition"
	"github.com/jsamuelsen11/screennav/internal/domain"
	"github.com/jsamuelsen11/screennav/internal/platform/config"
	"github.com/jsamuelsen11/screennav/internal/platform/telemetry"
	"github.com/jsamuelsen11/screennav/internal/ports"
)

// Compile-time interface checks.
var (
	_ ports.Navigator     = (*Navigator)(nil)
	_ ports.HealthChecker = (*Navigator)(nil)
)

const (
	defaultBreakerMaxFailures = 3
	defaultBreakerHalfOpen    = 1
)

// Navigator coordinates registry lookups, stack mutation, lifecycle hooks and
// transitions. Operations are serialized through a single slot; the policy
// for overlapping calls comes from config.NavigatorConfig.OverlapPolicy.
type Navigator struct {
	cfg      config.NavigatorConfig
	registry *registry.Registry
	stack    *stack.Stack
	breaker  *gobreaker.CircuitBreaker[struct{}]
	metrics  *telemetry.Metrics
	logger   *slog.Logger

	// slot holds a token while an operation is in flight.
	slot  chan struct{}
	state *atomic.Int32

	// mu guards the stack against readers outside the operation slot and
	// the default transition.
	mu                sync.RWMutex
	defaultTransition domain.TransitionFactory
}

// New creates a Navigator. A nil registry or stack is replaced by an empty
// one, a nil default transition by transition.InstantFactory and a nil logger
// by a discarding logger. metrics may be nil.
func New(
	cfg *config.NavigatorConfig,
	reg *registry.Registry,
	st *stack.Stack,
	defaultTransition domain.TransitionFactory,
	metrics *telemetry.Metrics,
	logger *slog.Logger,
) *Navigator {
	var c config.NavigatorConfig
	if cfg != nil {
		c = *cfg
	}
	if c.OverlapPolicy == "" {
		c.OverlapPolicy = config.OverlapQueue
	}
	if c.Breaker.MaxFailures < 1 {
		c.Breaker.MaxFailures = defaultBreakerMaxFailures
	}
	if c.Breaker.HalfOpenLimit < 1 {
		c.Breaker.HalfOpenLimit = defaultBreakerHalfOpen
	}

	if reg == nil {
		reg = registry.New()
	}
	if st == nil {
		st = stack.New()
	}
	if defaultTransition == nil {
		defaultTransition = transition.InstantFactory
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	return &Navigator{
		cfg:               c,
		registry:          reg,
		stack:             st,
		breaker:           newBreaker(c.Breaker, logger),
		metrics:           metrics,
		logger:            logger,
		slot:              make(chan struct{}, 1),
		state:             atomic.NewInt32(int32(domain.StateIdle)),
		defaultTransition: defaultTransition,
	}
}

func newBreaker(cfg config.BreakerConfig, logger *slog.Logger) *gobreaker.CircuitBreaker[struct{}] {
	return gobreaker.NewCircuitBreaker[struct{}](gobreaker.Settings{
		Name:        "transitions",
		MaxRequests: toUint32(cfg.HalfOpenLimit),
		Timeout:     cfg.Timeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return int(counts.ConsecutiveFailures) >= cfg.MaxFailures
		},
		// A caller giving up is not the transition's fault.
		IsSuccessful: func(err error) bool {
			return err == nil ||
				errors.Is(err, context.Canceled) ||
				errors.Is(err, context.DeadlineExceeded)
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logger.Warn("circuit breaker state change",
				slog.String("breaker", name),
				slog.String("from", from.String()),
				slog.String("to", to.String()),
			)
		},
	})
}

// Register adds or silently replaces the screen registered under id.
func (n *Navigator) Register(id string, screen domain.Screen) error {
	if err := n.registry.Register(id, screen); err != nil {
		return err
	}
	n.logger.Debug("screen registered", slog.String("screen", id))
	return nil
}

// Unregister removes the screen registered under id.
func (n *Navigator) Unregister(id string) {
	n.registry.Unregister(id)
	n.logger.Debug("screen unregistered", slog.String("screen", id))
}

// Resolve returns the screen registered under id.
func (n *Navigator) Resolve(id string) (domain.Screen, error) {
	return n.registry.Resolve(id)
}

// LoadBundle registers every screen of b, or none of them.
func (n *Navigator) LoadBundle(b *domain.Bundle) error {
	if err := n.registry.RegisterBundle(b); err != nil {
		n.logger.Error("failed to load bundle",
			slog.String("operation", "Navigator.LoadBundle"),
			slog.Any("error", err),
		)
		return err
	}
	n.logger.Info("bundle loaded",
		slog.String("bundle", b.Name),
		slog.Int("screens", len(b.Screens)),
	)
	return nil
}

// UnloadBundle removes the registrations of b's screens. Screens of b that
// are on the stack stay there.
func (n *Navigator) UnloadBundle(b *domain.Bundle) {
	if b == nil {
		return
	}
	n.registry.UnregisterBundle(b)
	n.logger.Info("bundle unloaded", slog.String("bundle", b.Name))
}

// Registered returns the number of registered screens.
func (n *Navigator) Registered() int {
	return n.registry.Len()
}

// SetDefaultTransition replaces the transition used when a call does not
// pass WithTransition. A nil factory restores the instant swap.
func (n *Navigator) SetDefaultTransition(factory domain.TransitionFactory) {
	if factory == nil {
		factory = transition.InstantFactory
	}
	n.mu.Lock()
	defer n.mu.Unlock()
	n.defaultTransition = factory
}

// Current returns the top of the stack, or nil when the stack is empty.
func (n *Navigator) Current() domain.Screen {
	n.mu.RLock()
	defer n.mu.RUnlock()
	return n.stack.Current()
}

// Depth returns the number of screens on the stack.
func (n *Navigator) Depth() int {
	n.mu.RLock()
	defer n.mu.RUnlock()
	return n.stack.Len()
}

// History returns the stacked screen ids from bottom to top.
func (n *Navigator) History() []string {
	n.mu.RLock()
	defer n.mu.RUnlock()
	return n.stack.IDs()
}

// State reports whether an operation is in flight.
func (n *Navigator) State() domain.NavigationState {
	return domain.NavigationState(n.state.Load())
}

// acquire takes the operation slot according to the overlap policy.
func (n *Navigator) acquire(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if n.cfg.OverlapPolicy == config.OverlapReject {
		select {
		case n.slot <- struct{}{}:
		default:
			return domain.ErrBusy
		}
	} else {
		select {
		case n.slot <- struct{}{}:
		case <-ctx.Done():
			return ctx.Err()
		}
	}

	n.state.Store(int32(domain.StateTransitioning))
	return nil
}

func (n *Navigator) release() {
	n.state.Store(int32(domain.StateIdle))
	<-n.slot
}

func (n *Navigator) push(s domain.Screen) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.stack.Push(s)
}

func (n *Navigator) pop() {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.stack.Pop()
}

// toUint32 safely converts a non-negative int to uint32, clamping at the
// uint32 maximum. Negative values are treated as zero.
func toUint32(v int) uint32 {
	if v <= 0 {
		return 0
	}
	if v > math.MaxUint32 {
		return math.MaxUint32
	}
	return uint32(v)
}
