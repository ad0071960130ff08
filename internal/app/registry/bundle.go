package registry

import (
	"errors"
	"fmt"

	"github.com/jsamuelsen11/screennav/internal/domain"
)

// RegisterBundle registers every screen of b under its own ID. All members are
// validated first, so either every screen is registered or none is.
func (r *Registry) RegisterBundle(b *domain.Bundle) error {
	if b == nil {
		return domain.InvalidOperation("nil bundle")
	}

	var errs []error
	for i, s := range b.Screens {
		if err := validate(domain.ScreenID(s), s); err != nil {
			errs = append(errs, fmt.Errorf("bundle %q screen %d: %w", b.Name, i, err))
		}
	}
	if err := errors.Join(errs...); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	for _, s := range b.Screens {
		r.screens[s.ID()] = s
	}
	return nil
}

// UnregisterBundle removes the registrations for the ids of b's screens.
func (r *Registry) UnregisterBundle(b *domain.Bundle) {
	if b == nil {
		return
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	for _, s := range b.Screens {
		if s != nil {
			delete(r.screens, s.ID())
		}
	}
}
