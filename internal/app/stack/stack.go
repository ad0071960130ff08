// Package stack holds the ordered navigation history of a navigator. The top
// of the stack is the only active screen; everything below it is suspended
// but retained for back navigation.
package stack

import "github.com/jsamuelsen11/screennav/internal/domain"

// Stack is a LIFO sequence of screen references. It is purely positional:
// screens can only be added or removed at the top.
//
// Stack is not safe for concurrent use. A navigator serializes its own access.
type Stack struct {
	screens []domain.Screen
}

// New creates an empty stack.
func New() *Stack {
	return &Stack{screens: make([]domain.Screen, 0)}
}

// Push adds s to the top of the stack.
func (s *Stack) Push(screen domain.Screen) {
	s.screens = append(s.screens, screen)
}

// Pop removes and returns the top screen.
// Returns nil if the stack is empty.
func (s *Stack) Pop() domain.Screen {
	if len(s.screens) == 0 {
		return nil
	}
	top := s.screens[len(s.screens)-1]
	s.screens[len(s.screens)-1] = nil
	s.screens = s.screens[:len(s.screens)-1]
	return top
}

// Current returns the top screen without removing it.
// Returns nil if the stack is empty.
func (s *Stack) Current() domain.Screen {
	if len(s.screens) == 0 {
		return nil
	}
	return s.screens[len(s.screens)-1]
}

// Below returns the screen directly under the top, which becomes current
// once the top is popped. Returns nil when fewer than two screens are held.
func (s *Stack) Below() domain.Screen {
	if len(s.screens) < 2 {
		return nil
	}
	return s.screens[len(s.screens)-2]
}

// Contains reports whether a screen with the given id is on the stack.
func (s *Stack) Contains(id string) bool {
	for _, scr := range s.screens {
		if scr.ID() == id {
			return true
		}
	}
	return false
}

// IDs returns the ids of the stacked screens from bottom to top.
func (s *Stack) IDs() []string {
	ids := make([]string, len(s.screens))
	for i, scr := range s.screens {
		ids[i] = scr.ID()
	}
	return ids
}

// Len returns the number of screens on the stack.
func (s *Stack) Len() int {
	return len(s.screens)
}

// IsEmpty returns true if the stack holds no screens.
func (s *Stack) IsEmpty() bool {
	return len(s.screens) == 0
}

// Clear removes all screens without invoking any lifecycle hooks.
func (s *Stack) Clear() {
	clear(s.screens)
	s.screens = s.screens[:0]
}
