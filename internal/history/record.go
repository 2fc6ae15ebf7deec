package history

import (
	"math"
	"strconv"
	"time"

	"github.com/google/uuid"
)

// Record is one evaluation request as it was answered.
type Record struct {
	ID         uuid.UUID `json:"id"`
	Expression string    `json:"expression"`
	Valid      bool      `json:"valid"`
	// Result is nil for invalid expressions and for non-finite results,
	// which JSON cannot carry. Display always holds the printable value.
	Result    *float64  `json:"result,omitempty"`
	Display   string    `json:"display,omitempty"`
	Error     string    `json:"error,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// NewRecord builds the record of a successful evaluation.
func NewRecord(expression string, value float32) Record {
	r := Record{
		ID:         uuid.New(),
		Expression: expression,
		Valid:      true,
		Display:    FormatValue(value),
		CreatedAt:  time.Now().UTC(),
	}
	if f := float64(value); !math.IsInf(f, 0) && !math.IsNaN(f) {
		r.Result = &f
	}
	return r
}

// NewFailedRecord builds the record of an expression that did not evaluate.
func NewFailedRecord(expression string, err error) Record {
	return Record{
		ID:         uuid.New(),
		Expression: expression,
		Error:      err.Error(),
		CreatedAt:  time.Now().UTC(),
	}
}

// FormatValue prints v with the shortest representation that round-trips as
// a float32.
func FormatValue(v float32) string {
	return strconv.FormatFloat(float64(v), 'g', -1, 32)
}
