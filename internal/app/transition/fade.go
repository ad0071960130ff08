package transition

import (
	"context"
	"time"

	"go.uber.org/atomic"
	"golang.org/x/time/rate"

	"github.com/jsamuelsen11/screennav/internal/domain"
	"github.com/jsamuelsen11/screennav/internal/platform/config"
)

const (
	defaultFadeDuration  = 500 * time.Millisecond
	defaultFadeFrameRate = 60
)

// FrameFunc receives the curtain opacity for each rendered frame: 0 is fully
// transparent (screen visible), 1 fully opaque (screen hidden).
type FrameFunc func(opacity float64)

// Fade raises a curtain over the outgoing screen, swaps visibility while the
// curtain is opaque, then lowers it over the incoming screen. Without an
// outgoing screen the curtain starts opaque and only the second half runs.
//
// A Fade is meant for a single navigation operation; once closed it refuses
// to run.
type Fade struct {
	half    time.Duration
	fps     int
	limiter *rate.Limiter
	onFrame FrameFunc
	closed  *atomic.Bool
}

// NewFade creates a Fade from cfg. Half of cfg.Duration is spent on each side
// of the swap. onFrame may be nil.
func NewFade(cfg config.FadeConfig, onFrame FrameFunc) *Fade {
	d := cfg.Duration
	if d <= 0 {
		d = defaultFadeDuration
	}
	fps := cfg.FrameRate
	if fps < 1 {
		fps = defaultFadeFrameRate
	}

	return &Fade{
		half:    d / 2,
		fps:     fps,
		limiter: rate.NewLimiter(rate.Limit(fps), 1),
		onFrame: onFrame,
		closed:  atomic.NewBool(false),
	}
}

// NewFadeFactory returns a factory creating a new Fade per operation.
func NewFadeFactory(cfg config.FadeConfig, onFrame FrameFunc) domain.TransitionFactory {
	return func() domain.Transition {
		return NewFade(cfg, onFrame)
	}
}

// Run performs the fade. It returns ctx.Err() if ctx ends mid-fade; the
// visibility swap has then happened only if the curtain had fully risen.
func (f *Fade) Run(ctx context.Context, outgoing, incoming domain.Screen) error {
	if f.closed.Load() {
		return ErrClosed
	}

	if outgoing != nil {
		f.emit(0)
		if err := f.phase(ctx, 0, 1); err != nil {
			return err
		}
	} else {
		f.emit(1)
	}

	swap(outgoing, incoming)

	return f.phase(ctx, 1, 0)
}

// Close marks the fade as destroyed.
func (f *Fade) Close() error {
	f.closed.Store(true)
	return nil
}

// phase steps the opacity from -> to over half the fade duration, one frame
// per limiter token.
func (f *Fade) phase(ctx context.Context, from, to float64) error {
	frames := max(1, int(f.half.Seconds()*float64(f.fps)))
	for i := 1; i <= frames; i++ {
		if err := f.limiter.Wait(ctx); err != nil {
			// Wait fails early when the next token lies past the deadline;
			// report the context's own error once it actually ends.
			<-ctx.Done()
			return ctx.Err()
		}
		f.emit(from + (to-from)*float64(i)/float64(frames))
	}
	return nil
}

func (f *Fade) emit(opacity float64) {
	if f.onFrame != nil {
		f.onFrame(opacity)
	}
}
