package suite

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"time"

	"github.com/DjordjeVuckovic/linked-calc/internal/calc"
	"github.com/DjordjeVuckovic/linked-calc/internal/history"
)

// Run checks every case of s in order. It stops early only when ctx is
// cancelled.
func Run(ctx context.Context, s *Suite) (*Report, error) {
	r := &Report{
		Suite:     s.Name,
		Version:   s.Version,
		StartedAt: time.Now(),
		Results:   make([]CaseResult, 0, len(s.Cases)),
	}

	for _, c := range s.Cases {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("suite %q interrupted: %w", s.Name, err)
		}

		start := time.Now()
		res := runCase(c)
		res.Elapsed = time.Since(start)
		if res.Passed {
			r.Passed++
		} else {
			r.Failed++
			slog.Debug("Case failed", "id", c.ID, "expression", c.Expression, "reason", res.Message)
		}
		r.Results = append(r.Results, res)
	}

	r.Duration = time.Since(r.StartedAt)
	return r, nil
}

func runCase(c Case) CaseResult {
	res := CaseResult{
		ID:         c.ID,
		Expression: c.Expression,
		WantValid:  c.WantValid(),
	}
	if c.Expect != nil {
		res.Want = history.FormatValue(*c.Expect)
	}

	err := calc.Check(calc.Text(c.Expression))
	res.Valid = err == nil

	if !res.WantValid {
		res.Passed = !res.Valid
		if res.Passed {
			var se *calc.SyntaxError
			if errors.As(err, &se) {
				res.Message = string(se.Reason)
			}
		} else {
			res.Message = "expected expression to be rejected"
		}
		return res
	}

	if !res.Valid {
		res.Message = err.Error()
		return res
	}

	got, err := calc.Evaluate(calc.Text(c.Expression))
	if err != nil {
		res.Message = err.Error()
		return res
	}
	res.Got = history.FormatValue(got)
	res.Passed = sameFloat32(got, *c.Expect)
	if !res.Passed {
		res.Message = fmt.Sprintf("got %s, want %s", res.Got, res.Want)
	}
	return res
}

// sameFloat32 is exact equality, except that NaN matches NaN.
func sameFloat32(a, b float32) bool {
	if math.IsNaN(float64(a)) || math.IsNaN(float64(b)) {
		return math.IsNaN(float64(a)) && math.IsNaN(float64(b))
	}
	return a == b
}
