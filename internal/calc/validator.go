package calc

import (
	"fmt"
	"unicode/utf8"
)

// Reason names the grammar rule a malformed expression breaks.
type Reason string

const (
	ReasonEmpty              Reason = "expression is empty"
	ReasonUnknownCharacter   Reason = "unknown character"
	ReasonLeadingOperator    Reason = "expression starts with an operator"
	ReasonConsecutiveOps     Reason = "operator follows another operator"
	ReasonOperatorAfterPoint Reason = "operator follows a decimal point"
	ReasonLeadingPoint       Reason = "decimal point does not follow a digit"
	ReasonConsecutivePoints  Reason = "decimal point follows another decimal point"
	ReasonMultiplePoints     Reason = "number has more than one decimal point"
	ReasonTrailingOperator   Reason = "expression ends with an operator"
)

// SyntaxError describes where and why an expression is malformed. Pos is a
// byte offset; Char is the character starting there, decoded as UTF-8.
type SyntaxError struct {
	Pos    int
	Char   rune
	Reason Reason
}

func (e *SyntaxError) Error() string {
	if e.Reason == ReasonEmpty {
		return string(e.Reason)
	}
	return fmt.Sprintf("%s: %q at position %d", e.Reason, e.Char, e.Pos)
}

// validationState tracks the class of the previous character. At most one of
// the last* flags is set at a time. pointInNumber stays set until the current
// number token ends.
type validationState struct {
	lastWasDigit        bool
	lastWasOperator     bool
	lastWasDecimalPoint bool
	pointInNumber       bool
}

func (s *validationState) set(c Class) {
	s.lastWasDigit = c == Digit
	s.lastWasOperator = c == Operator
	s.lastWasDecimalPoint = c == DecimalPoint
	switch c {
	case DecimalPoint:
		s.pointInNumber = true
	case Operator:
		s.pointInNumber = false
	}
}

// Validate reports whether src is a well-formed expression.
func Validate(src Source) bool {
	return Check(src) == nil
}

// Check validates src in a single pass and returns a *SyntaxError for the
// first rule it breaks, or nil.
func Check(src Source) error {
	n := src.Len()
	if n == 0 {
		return &SyntaxError{Reason: ReasonEmpty}
	}

	var st validationState
	for i := 0; i < n; i++ {
		c := src.At(i)
		class := Classify(c)

		switch class {
		case Digit:
		case DecimalPoint:
			switch {
			case st.lastWasDecimalPoint:
				return &SyntaxError{Pos: i, Char: rune(c), Reason: ReasonConsecutivePoints}
			case !st.lastWasDigit:
				return &SyntaxError{Pos: i, Char: rune(c), Reason: ReasonLeadingPoint}
			case st.pointInNumber:
				return &SyntaxError{Pos: i, Char: rune(c), Reason: ReasonMultiplePoints}
			}
		case Operator:
			switch {
			case st.lastWasOperator:
				return &SyntaxError{Pos: i, Char: rune(c), Reason: ReasonConsecutiveOps}
			case st.lastWasDecimalPoint:
				return &SyntaxError{Pos: i, Char: rune(c), Reason: ReasonOperatorAfterPoint}
			case !st.lastWasDigit:
				return &SyntaxError{Pos: i, Char: rune(c), Reason: ReasonLeadingOperator}
			}
		default:
			return &SyntaxError{Pos: i, Char: runeAt(src, i), Reason: ReasonUnknownCharacter}
		}

		st.set(class)
	}

	if st.lastWasOperator {
		return &SyntaxError{Pos: n - 1, Char: rune(src.At(n - 1)), Reason: ReasonTrailingOperator}
	}
	return nil
}

// runeAt decodes the UTF-8 character starting at byte offset i.
func runeAt(src Source, i int) rune {
	var buf [utf8.UTFMax]byte
	n := 0
	for ; n < len(buf) && i+n < src.Len(); n++ {
		buf[n] = src.At(i + n)
	}
	r, _ := utf8.DecodeRune(buf[:n])
	return r
}
