package transition_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/jsamuelsen11/screennav/internal/app/transition"
	"github.com/jsamuelsen11/screennav/internal/domain"
	"github.com/jsamuelsen11/screennav/internal/platform/config"
)

// visibleScreen records SetVisible calls.
type visibleScreen struct {
	id      string
	mu      sync.Mutex
	visible bool
	toggles int
}

func (s *visibleScreen) ID() string { return s.id }
func (s *visibleScreen) OnEnter()   {}
func (s *visibleScreen) OnExit()    {}

func (s *visibleScreen) SetVisible(v bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.visible = v
	s.toggles++
}

func (s *visibleScreen) state() (bool, int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.visible, s.toggles
}

// plainScreen does not implement domain.Visible.
type plainScreen struct{ id string }

func (s *plainScreen) ID() string { return s.id }
func (s *plainScreen) OnEnter()   {}
func (s *plainScreen) OnExit()    {}

func fastFade() config.FadeConfig {
	return config.FadeConfig{Duration: 20 * time.Millisecond, FrameRate: 1000}
}

// --- Instant ---

func TestInstant_SwapsVisibility(t *testing.T) {
	t.Parallel()

	out := &visibleScreen{id: "a", visible: true}
	in := &visibleScreen{id: "b"}

	if err := (transition.Instant{}).Run(context.Background(), out, in); err != nil {
		t.Fatalf("Run error = %v", err)
	}

	if v, _ := out.state(); v {
		t.Error("outgoing still visible after instant transition")
	}
	if v, _ := in.state(); !v {
		t.Error("incoming not visible after instant transition")
	}
}

func TestInstant_NilAndPlainScreens(t *testing.T) {
	t.Parallel()

	if err := transition.InstantFactory().Run(context.Background(), nil, &plainScreen{id: "b"}); err != nil {
		t.Fatalf("Run(nil, plain) error = %v", err)
	}
	if err := transition.InstantFactory().Run(context.Background(), &plainScreen{id: "a"}, nil); err != nil {
		t.Fatalf("Run(plain, nil) error = %v", err)
	}
}

func TestInstant_CancelledContext(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	in := &visibleScreen{id: "b"}
	err := (transition.Instant{}).Run(ctx, nil, in)
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("Run error = %v, want context.Canceled", err)
	}
	if _, toggles := in.state(); toggles != 0 {
		t.Error("incoming visibility changed despite cancelled context")
	}
}

func TestRevert_UndoesSwap(t *testing.T) {
	t.Parallel()

	out := &visibleScreen{id: "a", visible: true}
	in := &visibleScreen{id: "b"}

	if err := (transition.Instant{}).Run(context.Background(), out, in); err != nil {
		t.Fatalf("Run error = %v", err)
	}
	transition.Revert(out, in)

	if v, _ := out.state(); !v {
		t.Error("outgoing hidden after Revert, want visible")
	}
	if v, _ := in.state(); v {
		t.Error("incoming visible after Revert, want hidden")
	}

	// Reverting nil or plain screens is a no-op.
	transition.Revert(nil, &plainScreen{id: "c"})
	transition.Revert(&plainScreen{id: "d"}, nil)
}

// --- Func ---

func TestFunc_DelegatesArguments(t *testing.T) {
	t.Parallel()

	out, in := &plainScreen{id: "a"}, &plainScreen{id: "b"}
	var gotOut, gotIn domain.Screen

	f := transition.Func(func(_ context.Context, o, i domain.Screen) error {
		gotOut, gotIn = o, i
		return nil
	})
	if err := f.Run(context.Background(), out, in); err != nil {
		t.Fatalf("Run error = %v", err)
	}
	if gotOut != out || gotIn != in {
		t.Errorf("Func received (%v, %v), want (a, b)", gotOut, gotIn)
	}
}

// --- Fade ---

func TestFade_FullFadeOpacitySequence(t *testing.T) {
	t.Parallel()

	var frames []float64
	fade := transition.NewFade(fastFade(), func(o float64) { frames = append(frames, o) })

	out := &visibleScreen{id: "a", visible: true}
	in := &visibleScreen{id: "b"}

	if err := fade.Run(context.Background(), out, in); err != nil {
		t.Fatalf("Run error = %v", err)
	}

	if len(frames) < 3 {
		t.Fatalf("got %d frames, want at least 3", len(frames))
	}
	if frames[0] != 0 {
		t.Errorf("first frame = %v, want 0", frames[0])
	}
	if last := frames[len(frames)-1]; last != 0 {
		t.Errorf("last frame = %v, want 0", last)
	}

	peak := 0.0
	for _, f := range frames {
		if f < 0 || f > 1 {
			t.Fatalf("frame opacity %v out of [0,1]", f)
		}
		peak = max(peak, f)
	}
	if peak != 1 {
		t.Errorf("peak opacity = %v, want 1", peak)
	}

	if v, _ := out.state(); v {
		t.Error("outgoing still visible after fade")
	}
	if v, _ := in.state(); !v {
		t.Error("incoming not visible after fade")
	}
}

func TestFade_NoOutgoingSkipsFadeOut(t *testing.T) {
	t.Parallel()

	var frames []float64
	fade := transition.NewFade(fastFade(), func(o float64) { frames = append(frames, o) })

	if err := fade.Run(context.Background(), nil, &visibleScreen{id: "b"}); err != nil {
		t.Fatalf("Run error = %v", err)
	}

	if len(frames) == 0 || frames[0] != 1 {
		t.Fatalf("frames = %v, want to start fully opaque", frames)
	}
	for i := 1; i < len(frames); i++ {
		if frames[i] > frames[i-1] {
			t.Fatalf("opacity rose from %v to %v without an outgoing screen", frames[i-1], frames[i])
		}
	}
}

func TestFade_NoIncoming(t *testing.T) {
	t.Parallel()

	out := &visibleScreen{id: "a", visible: true}
	fade := transition.NewFade(fastFade(), nil)

	if err := fade.Run(context.Background(), out, nil); err != nil {
		t.Fatalf("Run error = %v", err)
	}
	if v, _ := out.state(); v {
		t.Error("outgoing still visible after closing fade")
	}
}

func TestFade_CancelledMidway(t *testing.T) {
	t.Parallel()

	slow := config.FadeConfig{Duration: 10 * time.Second, FrameRate: 10}
	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	in := &visibleScreen{id: "b"}
	err := transition.NewFade(slow, nil).Run(ctx, &visibleScreen{id: "a", visible: true}, in)

	if !errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("Run error = %v, want context.DeadlineExceeded", err)
	}
	if v, _ := in.state(); v {
		t.Error("incoming became visible although the fade-out never completed")
	}
}

func TestFade_ClosedRefusesToRun(t *testing.T) {
	t.Parallel()

	fade := transition.NewFade(fastFade(), nil)
	if err := fade.Close(); err != nil {
		t.Fatalf("Close error = %v", err)
	}

	err := fade.Run(context.Background(), nil, &plainScreen{id: "b"})
	if !errors.Is(err, transition.ErrClosed) {
		t.Fatalf("Run after Close error = %v, want ErrClosed", err)
	}
}

func TestNewFadeFactory_NewInstancePerCall(t *testing.T) {
	t.Parallel()

	factory := transition.NewFadeFactory(fastFade(), nil)
	first, second := factory(), factory()

	if first == second {
		t.Fatal("factory returned the same Fade twice, want a fresh instance per call")
	}

	// Closing one instance must not affect the other.
	_ = first.(*transition.Fade).Close()
	if err := second.Run(context.Background(), nil, &plainScreen{id: "b"}); err != nil {
		t.Fatalf("second.Run error = %v", err)
	}
}
