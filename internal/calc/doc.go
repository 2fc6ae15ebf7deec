// Package calc validates and evaluates arithmetic expressions built one
// character at a time.
//
// An expression is a run of digits, decimal points and the binary operators
// + - * /. Operators bind with equal strength and are applied strictly left to
// right, so "2+3*4" evaluates to 20. There are no parentheses, no unary minus
// and no exponent notation. Arithmetic is single precision.
//
//	seq := calc.New()
//	for _, c := range []byte("1.5+2.5") {
//		seq.Append(c)
//	}
//	v, err := calc.Evaluate(seq) // 4, nil
package calc
