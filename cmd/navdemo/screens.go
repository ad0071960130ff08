package main

import (
	"log/slog"
	"sync"

	"go.uber.org/atomic"

	"github.com/jsamuelsen11/screennav/internal/domain"
)

// shownSeq orders SetVisible(true) calls so the view can tell which of
// several visible screens was revealed last.
var shownSeq atomic.Uint64

// demoScreen is a static page of text. Hooks run on the navigator's
// goroutine while View reads from the bubbletea goroutine.
type demoScreen struct {
	id     string
	title  string
	body   string
	logger *slog.Logger

	mu      sync.Mutex
	visible bool
	shownAt uint64
	visits  int
}

var (
	_ domain.Screen  = (*demoScreen)(nil)
	_ domain.Visible = (*demoScreen)(nil)
)

func (s *demoScreen) ID() string { return s.id }

func (s *demoScreen) OnEnter() {
	s.mu.Lock()
	s.visits++
	visits := s.visits
	s.mu.Unlock()
	s.logger.Debug("screen entered", slog.String("screen", s.id), slog.Int("visits", visits))
}

func (s *demoScreen) OnExit() {
	s.logger.Debug("screen exited", slog.String("screen", s.id))
}

func (s *demoScreen) SetVisible(visible bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.visible = visible
	if visible {
		s.shownAt = shownSeq.Inc()
	}
}

// snapshot returns the fields needed for rendering.
func (s *demoScreen) snapshot() (visible bool, shownAt uint64, visits int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.visible, s.shownAt, s.visits
}

func demoBundle(logger *slog.Logger) *domain.Bundle {
	return &domain.Bundle{
		Name: "demo",
		Screens: []domain.Screen{
			&demoScreen{
				id:     "home",
				title:  "Home",
				body:   "Start here. Open another screen with 2 or 3.",
				logger: logger,
			},
			&demoScreen{
				id:     "settings",
				title:  "Settings",
				body:   "Nothing to configure yet. Press esc to go back.",
				logger: logger,
			},
			&demoScreen{
				id:     "about",
				title:  "About",
				body:   "A stack of screens driven by fade transitions.",
				logger: logger,
			},
		},
	}
}
