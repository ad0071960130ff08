// Package health collects health checkers for the navigation host. The host
// polls CheckAll to decide whether to show a degraded-status indicator.
package health

import (
	"context"
	"slices"
	"sync"

	"github.com/jsamuelsen11/screennav/internal/ports"
)

var _ ports.HealthRegistry = (*Registry)(nil)

// Registry holds the checkers registered by the host. Safe for concurrent use.
type Registry struct {
	mu       sync.RWMutex
	checkers []ports.HealthChecker
}

// New creates an empty health check registry.
func New() *Registry {
	return &Registry{}
}

// Register adds checker. Registering the same name twice keeps both; the
// later one wins in CheckAll results.
func (r *Registry) Register(checker ports.HealthChecker) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.checkers = append(r.checkers, checker)
}

// CheckAll runs every registered check and returns the results keyed by
// checker name; nil means healthy. Checks run without the lock held.
func (r *Registry) CheckAll(ctx context.Context) map[string]error {
	r.mu.RLock()
	checkers := slices.Clone(r.checkers)
	r.mu.RUnlock()

	results := make(map[string]error, len(checkers))
	for _, c := range checkers {
		results[c.Name()] = c.HealthCheck(ctx)
	}
	return results
}

// Failing runs every check and returns the sorted names of the checkers that
// reported an error. An empty result means everything is healthy.
func (r *Registry) Failing(ctx context.Context) []string {
	var names []string
	for name, err := range r.CheckAll(ctx) {
		if err != nil {
			names = append(names, name)
		}
	}
	slices.Sort(names)
	return names
}
