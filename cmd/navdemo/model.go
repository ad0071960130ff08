package main

import (
	"context"
	"errors"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/jsamuelsen11/screennav/internal/app/navigator"
	"github.com/jsamuelsen11/screennav/internal/domain"
	"github.com/jsamuelsen11/screennav/internal/platform/health"
	"github.com/jsamuelsen11/screennav/internal/ports"
)

// frameMsg carries the curtain opacity of a running fade.
type frameMsg float64

// navDoneMsg reports the outcome of one navigator call.
type navDoneMsg struct {
	action string
	err    error
}

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("86"))
	crumbStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	helpStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("205"))
	boxStyle    = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("86")).
			Padding(1, 2).
			Width(56)
)

type model struct {
	ctx     context.Context
	nav     ports.Navigator
	health  *health.Registry
	screens []*demoScreen

	opacity      float64
	overExisting bool
	status       string
	failing      []string
}

func newModel(ctx context.Context, nav ports.Navigator, hr *health.Registry, bundle *domain.Bundle) model {
	m := model{ctx: ctx, nav: nav, health: hr}
	for _, s := range bundle.Screens {
		if ds, ok := s.(*demoScreen); ok {
			m.screens = append(m.screens, ds)
		}
	}
	return m
}

func (m model) Init() tea.Cmd {
	return m.run("open home", func(ctx context.Context) error {
		return m.nav.OpenID(ctx, "home")
	})
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case frameMsg:
		m.opacity = float64(msg)
		return m, nil

	case navDoneMsg:
		m.opacity = 0
		m.failing = m.health.Failing(m.ctx)
		switch {
		case msg.err == nil:
			m.status = msg.action
		case errors.Is(msg.err, domain.ErrBusy):
			m.status = "busy, try again"
		default:
			m.status = msg.err.Error()
		}
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "q":
		return m, tea.Quit

	case "1", "2", "3":
		id := []string{"home", "settings", "about"}[msg.String()[0]-'1']
		var opts []ports.NavigateOption
		action := "open " + id
		if m.overExisting {
			opts = append(opts, navigator.WithOverExisting())
			action += " over existing"
			m.overExisting = false
		}
		return m, m.run(action, func(ctx context.Context) error {
			return m.nav.OpenID(ctx, id, opts...)
		})

	case "o":
		m.overExisting = !m.overExisting
		return m, nil

	case "r":
		return m, m.run("reset", func(ctx context.Context) error {
			return m.nav.Reset(ctx)
		})

	case "esc", "backspace":
		return m, m.run("close", func(ctx context.Context) error {
			return m.nav.Close(ctx)
		})
	}
	return m, nil
}

// run executes a navigator call off the bubbletea goroutine.
func (m model) run(action string, call func(ctx context.Context) error) tea.Cmd {
	ctx := m.ctx
	return func() tea.Msg {
		return navDoneMsg{action: action, err: call(ctx)}
	}
}

func (m model) View() string {
	var b strings.Builder

	history := m.nav.History()
	b.WriteString(crumbStyle.Render(strings.Join(history, " › ")))
	b.WriteString("\n\n")

	b.WriteString(m.renderScreen())
	b.WriteString("\n")

	mode := "replace"
	if m.overExisting {
		mode = "over existing"
	}
	b.WriteString(helpStyle.Render(fmt.Sprintf(
		"1 home · 2 settings · 3 about · o mode (%s) · esc close · r reset · q quit", mode)))
	b.WriteString("\n")

	if m.status != "" {
		b.WriteString(statusStyle.Render(fmt.Sprintf("%s · %s · depth %d of %d screens",
			m.status, m.nav.State(), m.nav.Depth(), m.nav.Registered())))
		b.WriteString("\n")
	}
	if len(m.failing) > 0 {
		b.WriteString(errorStyle.Render("degraded: " + strings.Join(m.failing, ", ")))
		b.WriteString("\n")
	}
	return b.String()
}

// renderScreen draws the most recently revealed screen, shaded by the
// curtain opacity of the running fade.
func (m model) renderScreen() string {
	var (
		top    *demoScreen
		latest uint64
		visits int
	)
	for _, s := range m.screens {
		visible, shownAt, v := s.snapshot()
		if visible && shownAt >= latest {
			top, latest, visits = s, shownAt, v
		}
	}
	if top == nil {
		return boxStyle.Render(crumbStyle.Render("(no screen)"))
	}

	shade := lipgloss.NewStyle().Foreground(curtain(m.opacity))
	content := titleStyle.Render(top.title) + "\n\n" +
		shade.Render(top.body) + "\n\n" +
		crumbStyle.Render(fmt.Sprintf("visits: %d", visits))
	return boxStyle.Render(content)
}

// curtain maps opacity 0 (clear) .. 1 (covered) onto the xterm grayscale
// ramp, light to dark.
func curtain(opacity float64) lipgloss.Color {
	opacity = max(0, min(1, opacity))
	level := 255 - int(opacity*23)
	return lipgloss.Color(fmt.Sprintf("%d", level))
}
