package calc

import (
	"errors"
	"math"
	"testing"

	"github.com/DjordjeVuckovic/linked-calc/internal/apperr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildSequence(input string) *Sequence {
	seq := New()
	for _, c := range []byte(input) {
		seq.Append(c)
	}
	return seq
}

func TestEvaluate(t *testing.T) {
	tests := []struct {
		input string
		want  float32
	}{
		{"1+2", 3},
		{"5-2", 3},
		{"3*4", 12},
		{"8/2", 4},
		{"5/2", 2.5},
		{"1.5+2.5", 4},
		{"1.5+1.5", 3},
		{"42", 42},
		{"0", 0},
		{"007", 7},
		{"3.", 3},
		{"2.25", 2.25},
		{"7-10", -3},
		{"10/4*2", 5},
		{"1.25*4", 5},
		{"100-1-1-1", 97},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := Evaluate(buildSequence(tt.input))
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestEvaluate_LeftToRightWithoutPrecedence(t *testing.T) {
	tests := []struct {
		input string
		want  float32
	}{
		{"2+3*4", 20},
		{"2*3+4", 10},
		{"10-4/2", 3},
		{"1+1/2", 1},
		{"8/4/2", 1},
		{"2-3-4", -5},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := Evaluate(Text(tt.input))
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestEvaluate_TwoOperandsMatchFloat32Arithmetic(t *testing.T) {
	operands := []struct {
		text  string
		value float32
	}{
		{"3", 3},
		{"12", 12},
		{"0.5", 0.5},
		{"7.25", 7.25},
	}

	for _, a := range operands {
		for _, b := range operands {
			tests := map[string]float32{
				a.text + "+" + b.text: a.value + b.value,
				a.text + "-" + b.text: a.value - b.value,
				a.text + "*" + b.text: a.value * b.value,
				a.text + "/" + b.text: a.value / b.value,
			}
			for input, want := range tests {
				got, err := Evaluate(Text(input))
				require.NoError(t, err, input)
				assert.Equal(t, want, got, input)
			}
		}
	}
}

func TestEvaluate_DivisionByZero(t *testing.T) {
	got, err := Evaluate(Text("1/0"))
	require.NoError(t, err)
	assert.True(t, math.IsInf(float64(got), 1))

	got, err = Evaluate(Text("1-2/0"))
	require.NoError(t, err)
	assert.True(t, math.IsInf(float64(got), -1))

	got, err = Evaluate(Text("0/0"))
	require.NoError(t, err)
	assert.True(t, math.IsNaN(float64(got)))
}

func TestEvaluate_InvalidExpression(t *testing.T) {
	for _, input := range []string{"", "3+5*", "3+*2", "3..2", "+1", "1 2"} {
		t.Run(input, func(t *testing.T) {
			got, err := Evaluate(buildSequence(input))
			require.Error(t, err)
			assert.Zero(t, got)
			assert.True(t, errors.Is(err, ErrInvalidExpression))

			var ve *apperr.ValidationError
			assert.True(t, errors.As(err, &ve))

			var se *SyntaxError
			assert.True(t, errors.As(err, &se))
		})
	}
}

func TestEvaluate_ErrorMessage(t *testing.T) {
	_, err := Evaluate(Text("3+5*"))
	assert.EqualError(t, err, `invalid expression: expression ends with an operator: '*' at position 3`)
}

func TestConvertToFloat(t *testing.T) {
	tests := []struct {
		input   string
		start   int
		want    float32
		wantPos int
	}{
		{"123", 0, 123, 3},
		{"12.5+1", 0, 12.5, 4},
		{"1+2.75", 2, 2.75, 6},
		{"0.5", 0, 0.5, 3},
		{"9.", 0, 9, 2},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, pos := convertToFloat(Text(tt.input), tt.start)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.wantPos, pos)
		})
	}
}

func TestSequence(t *testing.T) {
	seq := New()
	assert.Equal(t, 0, seq.Len())

	seq.Append('1')
	seq.Append('+')
	seq.Append('2')
	assert.Equal(t, 3, seq.Len())
	assert.Equal(t, byte('+'), seq.At(1))
	assert.Equal(t, "1+2", seq.String())

	seq.Reset()
	assert.Equal(t, 0, seq.Len())
	assert.False(t, Validate(seq))

	seq.Append('9')
	got, err := Evaluate(seq)
	require.NoError(t, err)
	assert.Equal(t, float32(9), got)
}

func TestSequence_AppendDoesNotValidate(t *testing.T) {
	seq := FromString("1+")
	seq.Append('x')
	assert.Equal(t, "1+x", seq.String())
	assert.False(t, Validate(seq))
}
