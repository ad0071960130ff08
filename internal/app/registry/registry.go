// Package registry maps screen identifiers to screen instances. Registration
// is decoupled from navigation: removing a screen from the registry never
// affects screens that are already on a navigator's stack.
package registry

import (
	"sort"
	"strings"
	"sync"

	"github.com/agnivade/levenshtein"

	"github.com/jsamuelsen11/screennav/internal/domain"
)

// maxSuggestionDistance bounds how different a registered id may be from a
// missing one and still be offered as a suggestion.
const maxSuggestionDistance = 3

// Registry is a thread-safe identifier to screen lookup table. The last
// registration for an identifier wins.
type Registry struct {
	mu      sync.RWMutex
	screens map[string]domain.Screen
}

// New creates an empty registry.
func New() *Registry {
	return &Registry{screens: make(map[string]domain.Screen)}
}

// Register inserts or silently overwrites the mapping for id.
// Returns domain.ErrInvalidOperation for an empty id or a nil screen.
func (r *Registry) Register(id string, screen domain.Screen) error {
	if err := validate(id, screen); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.screens[id] = screen
	return nil
}

// Unregister removes the mapping for id. Unknown ids are ignored.
func (r *Registry) Unregister(id string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.screens, id)
}

// Resolve returns the screen registered under id, or a *domain.NotFoundError.
func (r *Registry) Resolve(id string) (domain.Screen, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if s, ok := r.screens[id]; ok {
		return s, nil
	}
	return nil, &domain.NotFoundError{ID: id, Suggestion: r.closestLocked(id)}
}

// IDs returns the registered identifiers in sorted order.
func (r *Registry) IDs() []string {
	r.mu.RLock()
	ids := make([]string, 0, len(r.screens))
	for id := range r.screens {
		ids = append(ids, id)
	}
	r.mu.RUnlock()

	sort.Strings(ids)
	return ids
}

// Len returns the number of registered screens.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.screens)
}

// closestLocked returns the registered id nearest to id by edit distance, or
// "" when nothing is within maxSuggestionDistance. Ties resolve to the
// lexically smallest id so the suggestion is deterministic.
func (r *Registry) closestLocked(id string) string {
	best := ""
	bestDist := maxSuggestionDistance + 1
	for candidate := range r.screens {
		d := levenshtein.ComputeDistance(strings.ToLower(id), strings.ToLower(candidate))
		if d < bestDist || (d == bestDist && candidate < best) {
			best, bestDist = candidate, d
		}
	}
	if bestDist > maxSuggestionDistance {
		return ""
	}
	return best
}

func validate(id string, screen domain.Screen) error {
	if strings.TrimSpace(id) == "" {
		return domain.InvalidOperation("screen id must not be empty")
	}
	if screen == nil {
		return domain.InvalidOperation("screen %q is nil", id)
	}
	return nil
}
