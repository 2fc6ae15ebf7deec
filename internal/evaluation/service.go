package evaluation

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"time"

	"github.com/DjordjeVuckovic/linked-calc/internal/calc"
	"github.com/DjordjeVuckovic/linked-calc/internal/history"
	"github.com/DjordjeVuckovic/linked-calc/internal/metrics"
	"github.com/google/uuid"
)

// Result is a successful evaluation.
type Result struct {
	Expression string
	Value      float32
	Display    string
	// RecordID is uuid.Nil when the evaluation could not be persisted.
	RecordID uuid.UUID
}

// Finite reports whether Value is neither infinite nor NaN.
func (r Result) Finite() bool {
	f := float64(r.Value)
	return !math.IsInf(f, 0) && !math.IsNaN(f)
}

// Verdict is the outcome of validating an expression.
type Verdict struct {
	Expression string
	Valid      bool
	// Syntax is set when Valid is false.
	Syntax *calc.SyntaxError
}

// Service runs expressions through the calculator, records metrics and keeps
// a history of evaluations. Failing to persist history never fails an
// evaluation.
type Service struct {
	storer  history.Storer
	metrics *metrics.Recorder
}

type Option func(*Service)

func WithMetrics(r *metrics.Recorder) Option {
	return func(s *Service) {
		s.metrics = r
	}
}

func NewService(storer history.Storer, opts ...Option) *Service {
	s := &Service{storer: storer}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Service) Evaluate(ctx context.Context, expression string) (Result, error) {
	start := time.Now()
	v, err := calc.Evaluate(calc.FromString(expression))
	elapsed := time.Since(start)

	if err != nil {
		s.observeEvaluation(metrics.OutcomeInvalid, elapsed)
		s.save(ctx, history.NewFailedRecord(expression, err))
		return Result{}, err
	}

	res := Result{
		Expression: expression,
		Value:      v,
		Display:    history.FormatValue(v),
	}
	if res.Finite() {
		s.observeEvaluation(metrics.OutcomeOK, elapsed)
	} else {
		s.observeEvaluation(metrics.OutcomeNonFinite, elapsed)
	}

	res.RecordID = s.save(ctx, history.NewRecord(expression, v))
	slog.Debug("Expression evaluated", "expression", expression, "result", res.Display, "elapsed", elapsed)
	return res, nil
}

func (s *Service) Validate(ctx context.Context, expression string) Verdict {
	err := calc.Check(calc.Text(expression))

	verdict := Verdict{Expression: expression, Valid: err == nil}
	if err != nil {
		var se *calc.SyntaxError
		if errors.As(err, &se) {
			verdict.Syntax = se
		}
	}

	if s.metrics != nil {
		s.metrics.ObserveValidation(verdict.Valid)
	}
	return verdict
}

func (s *Service) History(ctx context.Context, limit int) ([]history.Record, error) {
	if s.storer == nil {
		return []history.Record{}, nil
	}
	records, err := s.storer.List(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list history: %w", err)
	}
	return records, nil
}

func (s *Service) observeEvaluation(outcome string, elapsed time.Duration) {
	if s.metrics != nil {
		s.metrics.ObserveEvaluation(outcome, elapsed.Seconds())
	}
}

func (s *Service) save(ctx context.Context, record history.Record) uuid.UUID {
	if s.storer == nil {
		return uuid.Nil
	}
	id, err := s.storer.Save(ctx, record)
	if err != nil {
		slog.Error("Failed to save evaluation history", "error", err, "expression", record.Expression)
		return uuid.Nil
	}
	return id
}
