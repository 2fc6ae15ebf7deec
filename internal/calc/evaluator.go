package calc

import (
	"errors"

	"github.com/DjordjeVuckovic/linked-calc/internal/apperr"
	"github.com/DjordjeVuckovic/linked-calc/internal/types/operator"
)

// ErrInvalidExpression is returned by Evaluate for expressions that fail
// validation.
var ErrInvalidExpression = errors.New("invalid expression")

// Evaluate validates src and folds it left to right into a single value.
// Operators have no precedence. Division by zero yields ±Inf or NaN rather
// than an error.
//
// The returned error wraps ErrInvalidExpression and the *SyntaxError that
// caused it, inside an *apperr.ValidationError.
func Evaluate(src Source) (float32, error) {
	if err := Check(src); err != nil {
		return 0, apperr.NewValidationWrap(ErrInvalidExpression.Error(), &invalidError{cause: err})
	}

	var (
		answer  float32
		current float32
		pending = operator.Default
	)

	n := src.Len()
	for pos := 0; pos < n; {
		c := src.At(pos)
		if isNumberChar(c) {
			current, pos = convertToFloat(src, pos)
			continue
		}

		op, err := operator.Parse(c)
		if err != nil {
			return 0, apperr.NewValidationWrap(ErrInvalidExpression.Error(), &invalidError{cause: err})
		}
		answer = pending.Apply(answer, current)
		pending = op
		pos++
	}

	return pending.Apply(answer, current), nil
}

// convertToFloat reads the number token starting at pos and returns its value
// and the position of the first character after it.
func convertToFloat(src Source, pos int) (float32, int) {
	var (
		num        float32
		place      float32 = 1
		fractional bool
	)

	for ; pos < src.Len() && isNumberChar(src.At(pos)); pos++ {
		c := src.At(pos)
		if c == decimalPoint {
			fractional = true
			continue
		}

		d := float32(c - '0')
		// explicit conversions keep every step rounded to float32 (no FMA)
		if fractional {
			place /= 10
			num += float32(d * place)
		} else {
			num = float32(num*10) + d
		}
	}

	return num, pos
}

// invalidError joins ErrInvalidExpression with the syntax error that caused it.
type invalidError struct {
	cause error
}

func (e *invalidError) Error() string {
	return e.cause.Error()
}

func (e *invalidError) Unwrap() []error {
	return []error{ErrInvalidExpression, e.cause}
}
