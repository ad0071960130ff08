package navigator

import (
	"context"
	"log/slog"

	"github.com/jsamuelsen11/screennav/internal/platform/logging"
)

// step is one stage of a navigation operation. undo reverses a completed
// step; it is nil for steps that have nothing to reverse.
type step struct {
	desc string
	run  func(ctx context.Context) error
	undo func(ctx context.Context)
}

// plan is the ordered list of steps making up one open or close.
type plan struct {
	op    string
	steps []step
}

func newPlan(op string) *plan {
	return &plan{op: op}
}

func (p *plan) add(desc string, run func(ctx context.Context) error, undo func(ctx context.Context)) {
	p.steps = append(p.steps, step{desc: desc, run: run, undo: undo})
}

// commit runs the steps in order. When a step fails and restore(err) reports
// true, the already completed steps are undone in reverse order before the
// error is returned.
func (p *plan) commit(ctx context.Context, restore func(error) bool) error {
	logger := logging.FromContext(ctx)

	for i, s := range p.steps {
		logger.DebugContext(ctx, "executing step",
			slog.String("operation", p.op),
			slog.Int("step", i+1),
			slog.Int("total", len(p.steps)),
			slog.String("action", s.desc),
		)

		if err := s.run(ctx); err != nil {
			logger.ErrorContext(ctx, "step failed",
				slog.String("operation", p.op),
				slog.Int("failed_step", i+1),
				slog.String("action", s.desc),
				slog.Any("error", err),
			)
			if restore(err) {
				p.rollback(ctx, i-1, logger)
			}
			return err
		}
	}
	return nil
}

// rollback undoes steps 0..upTo (inclusive) in reverse order.
func (p *plan) rollback(ctx context.Context, upTo int, logger *slog.Logger) {
	for i := upTo; i >= 0; i-- {
		s := p.steps[i]
		if s.undo == nil {
			continue
		}
		logger.InfoContext(ctx, "rolling back step",
			slog.String("operation", p.op),
			slog.Int("step", i+1),
			slog.String("action", s.desc),
		)
		s.undo(ctx)
	}
}
