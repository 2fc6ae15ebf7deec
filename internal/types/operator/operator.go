package operator

import "fmt"

// Operator represents one of the four binary arithmetic operators a
// calculator expression may contain.
//
// Usage:
//
//	op, _ := operator.Parse('*')
//	op.Apply(3, 4) // 12
type Operator byte

const (
	Add      Operator = '+'
	Subtract Operator = '-'
	Multiply Operator = '*'
	Divide   Operator = '/'
)

// Default is the operator an evaluation starts with, so the first number is
// folded into a zero total unchanged.
const Default = Add

// IsOperator reports whether c is one of + - * /.
func IsOperator(c byte) bool {
	switch Operator(c) {
	case Add, Subtract, Multiply, Divide:
		return true
	default:
		return false
	}
}

func Parse(c byte) (Operator, error) {
	if !IsOperator(c) {
		return 0, fmt.Errorf("invalid operator: %q (must be one of '+', '-', '*', '/')", c)
	}
	return Operator(c), nil
}

// String returns the string representation of the operator
func (o Operator) String() string {
	return string(rune(o))
}

// Apply folds b into a. Division by zero is not checked and yields the IEEE 754
// result (±Inf or NaN).
func (o Operator) Apply(a, b float32) float32 {
	switch o {
	case Add:
		return a + b
	case Subtract:
		return a - b
	case Multiply:
		return a * b
	case Divide:
		return a / b
	default:
		panic(fmt.Sprintf("operator: apply of invalid operator %q", byte(o)))
	}
}
