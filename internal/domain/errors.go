package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors for errors.Is() checking.
var (
	ErrNotFound          = errors.New("screen not found")
	ErrInvalidOperation  = errors.New("invalid navigation operation")
	ErrTransitionFailed  = errors.New("transition failed")
	ErrTransitionTimeout = errors.New("transition timed out")
	ErrBusy              = errors.New("navigator busy")
)

// NotFoundError is returned when a screen identifier has no registration.
// Suggestion holds the closest registered identifier, if any was close enough
// to be a plausible typo.
type NotFoundError struct {
	ID         string
	Suggestion string
}

func (e *NotFoundError) Error() string {
	if e.Suggestion != "" {
		return fmt.Sprintf("%s: %q (did you mean %q?)", ErrNotFound.Error(), e.ID, e.Suggestion)
	}
	return fmt.Sprintf("%s: %q", ErrNotFound.Error(), e.ID)
}

func (e *NotFoundError) Unwrap() error {
	return ErrNotFound
}

// TransitionError describes a transition that did not complete. It matches
// both ErrTransitionFailed and its underlying cause, so callers can check
// errors.Is(err, context.Canceled) or errors.Is(err, ErrTransitionTimeout).
type TransitionError struct {
	Op   string // "open" or "close"
	From string // outgoing screen id, empty when absent
	To   string // incoming screen id, empty when absent
	Err  error
}

func (e *TransitionError) Error() string {
	return fmt.Sprintf("%s: %s %q -> %q: %v", ErrTransitionFailed.Error(), e.Op, e.From, e.To, e.Err)
}

func (e *TransitionError) Unwrap() []error {
	return []error{ErrTransitionFailed, e.Err}
}

// InvalidOperation builds an error wrapping ErrInvalidOperation with the
// given reason.
func InvalidOperation(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidOperation, fmt.Sprintf(format, args...))
}
