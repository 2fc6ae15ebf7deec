package calc

import "github.com/DjordjeVuckovic/linked-calc/internal/types/operator"

// Class is the lexical category of a single expression character.
type Class int

const (
	Unknown Class = iota
	Digit
	DecimalPoint
	Operator
)

func (c Class) String() string {
	switch c {
	case Digit:
		return "DIGIT"
	case DecimalPoint:
		return "DECIMAL_POINT"
	case Operator:
		return "OPERATOR"
	default:
		return "UNKNOWN"
	}
}

const decimalPoint = '.'

// Classify returns the class of c.
func Classify(c byte) Class {
	switch {
	case isDigit(c):
		return Digit
	case c == decimalPoint:
		return DecimalPoint
	case operator.IsOperator(c):
		return Operator
	default:
		return Unknown
	}
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func isNumberChar(c byte) bool {
	return isDigit(c) || c == decimalPoint
}
