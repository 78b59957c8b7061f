package service

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"
)

type compensation struct {
	name string
	fn   func(ctx context.Context) error
}

// saga collects the compensating deletes of one unit of work. Compensations
// are registered before the write they undo, so a partially applied write is
// still cleaned up. Every compensation must be idempotent.
type saga struct {
	steps  []compensation
	logger *zap.Logger
}

func newSaga(logger *zap.Logger) *saga {
	return &saga{logger: logger}
}

func (s *saga) add(name string, fn func(ctx context.Context) error) {
	s.steps = append(s.steps, compensation{name: name, fn: fn})
}

// compensate runs every registered step in reverse order. Failures are logged
// and do not stop the remaining steps.
func (s *saga) compensate(ctx context.Context) error {
	var errs []error
	for i := len(s.steps) - 1; i >= 0; i-- {
		step := s.steps[i]
		if err := step.fn(ctx); err != nil {
			s.logger.Error("Compensation failed", zap.String("step", step.name), zap.Error(err))
			errs = append(errs, fmt.Errorf("%s: %w", step.name, err))
		}
	}
	s.steps = nil
	return errors.Join(errs...)
}
