package usecase

import (
	"context"
	"log/slog"
)

// sagaStep pairs an action with the compensation that undoes it.
type sagaStep struct {
	name       string
	action     func(ctx context.Context) error
	compensate func(ctx context.Context) error
}

// saga executes steps in order. When a step fails, the compensations of
// every previously completed step run in reverse order before the
// step's error is returned. Compensation failures are logged and do not
// change the reported error.
type saga struct {
	steps  []sagaStep
	logger *slog.Logger
}

func newSaga(logger *slog.Logger, steps ...sagaStep) *saga {
	return &saga{steps: steps, logger: logger}
}

func (s *saga) run(ctx context.Context) error {
	completed := make([]sagaStep, 0, len(s.steps))

	for _, step := range s.steps {
		if err := step.action(ctx); err != nil {
			s.unwind(ctx, completed)
			return err
		}
		completed = append(completed, step)
	}

	return nil
}

func (s *saga) unwind(ctx context.Context, completed []sagaStep) {
	for i := len(completed) - 1; i >= 0; i-- {
		step := completed[i]
		if step.compensate == nil {
			continue
		}
		if err := step.compensate(ctx); err != nil {
			s.logger.Error("saga compensation failed", "step", step.name, "error", err)
		} else {
			s.logger.Info("saga step compensated", "step", step.name)
		}
	}
}
