package evaluation

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/DjordjeVuckovic/linked-calc/internal/calc"
	"github.com/DjordjeVuckovic/linked-calc/internal/history"
	"github.com/DjordjeVuckovic/linked-calc/internal/history/in_mem"
	"github.com/DjordjeVuckovic/linked-calc/internal/metrics"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type failingStorer struct{}

func (failingStorer) Save(context.Context, history.Record) (uuid.UUID, error) {
	return uuid.Nil, errors.New("storage down")
}

func (failingStorer) List(context.Context, int) ([]history.Record, error) {
	return nil, errors.New("storage down")
}

func TestService_Evaluate(t *testing.T) {
	ctx := context.Background()
	storer := in_mem.NewStorer()
	svc := NewService(storer)

	res, err := svc.Evaluate(ctx, "2+3*4")
	require.NoError(t, err)
	assert.Equal(t, float32(20), res.Value)
	assert.Equal(t, "20", res.Display)
	assert.True(t, res.Finite())
	assert.NotEqual(t, uuid.Nil, res.RecordID)

	records, err := svc.History(ctx, 10)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, res.RecordID, records[0].ID)
	assert.True(t, records[0].Valid)
}

func TestService_EvaluateInvalid(t *testing.T) {
	ctx := context.Background()
	svc := NewService(in_mem.NewStorer())

	_, err := svc.Evaluate(ctx, "3+*2")
	require.Error(t, err)
	assert.ErrorIs(t, err, calc.ErrInvalidExpression)

	records, err := svc.History(ctx, 10)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.False(t, records[0].Valid)
	assert.Contains(t, records[0].Error, "operator follows another operator")
}

func TestService_EvaluateNonFinite(t *testing.T) {
	svc := NewService(in_mem.NewStorer())

	res, err := svc.Evaluate(context.Background(), "1/0")
	require.NoError(t, err)
	assert.False(t, res.Finite())
	assert.Equal(t, "+Inf", res.Display)
}

func TestService_StorageFailureDoesNotFailEvaluation(t *testing.T) {
	svc := NewService(failingStorer{})

	res, err := svc.Evaluate(context.Background(), "8/2")
	require.NoError(t, err)
	assert.Equal(t, float32(4), res.Value)
	assert.Equal(t, uuid.Nil, res.RecordID)

	_, err = svc.History(context.Background(), 5)
	assert.ErrorContains(t, err, "storage down")
}

func TestService_WithoutStorer(t *testing.T) {
	svc := NewService(nil)

	res, err := svc.Evaluate(context.Background(), "1+2")
	require.NoError(t, err)
	assert.Equal(t, float32(3), res.Value)

	records, err := svc.History(context.Background(), 5)
	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestService_Validate(t *testing.T) {
	recorder := metrics.NewRecorder()
	svc := NewService(nil, WithMetrics(recorder))

	ok := svc.Validate(context.Background(), "1.5+2.5")
	assert.True(t, ok.Valid)
	assert.Nil(t, ok.Syntax)

	bad := svc.Validate(context.Background(), "3..2")
	assert.False(t, bad.Valid)
	require.NotNil(t, bad.Syntax)
	assert.Equal(t, calc.ReasonConsecutivePoints, bad.Syntax.Reason)
	assert.Equal(t, 2, bad.Syntax.Pos)

	rec := httptest.NewRecorder()
	recorder.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Contains(t, rec.Body.String(), `linkedcalc_validations_total{valid="false"} 1`)
	assert.Contains(t, rec.Body.String(), `linkedcalc_validations_total{valid="true"} 1`)
}

func TestService_MetricsOutcomes(t *testing.T) {
	recorder := metrics.NewRecorder()
	svc := NewService(nil, WithMetrics(recorder))
	ctx := context.Background()

	_, _ = svc.Evaluate(ctx, "1+1")
	_, _ = svc.Evaluate(ctx, "0/0")
	_, _ = svc.Evaluate(ctx, "+")

	n, err := testutil.GatherAndCount(recorder.Registry(), "linkedcalc_evaluations_total")
	require.NoError(t, err)
	assert.Equal(t, 3, n)
}
