package pg

import (
	"context"
	"math"
	"testing"
	"time"

	"github.com/DjordjeVuckovic/linked-calc/internal/history"
	pkgtesting "github.com/DjordjeVuckovic/linked-calc/pkg/testing"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStorer_Integration(t *testing.T) {
	pkgtesting.SkipIfShort(t)

	ctx := context.Background()
	container := pkgtesting.StartPostgres(ctx, t)

	pool, err := NewConnectionPool(ctx, PoolConfig{ConnStr: container.DSN})
	require.NoError(t, err)

	s, err := NewStorer(ctx, pool)
	require.NoError(t, err)
	defer s.Close()

	// migrations are idempotent
	_, err = NewStorer(ctx, pool)
	require.NoError(t, err)

	assert.True(t, s.Healthy(ctx))

	ok := history.NewRecord("5/2", 2.5)
	inf := history.NewRecord("1/0", float32(math.Inf(1)))
	bad := history.NewFailedRecord("3+", assert.AnError)
	inf.CreatedAt = ok.CreatedAt.Add(time.Second)
	bad.CreatedAt = ok.CreatedAt.Add(2 * time.Second)
	for _, r := range []history.Record{ok, inf, bad} {
		id, err := s.Save(ctx, r)
		require.NoError(t, err)
		assert.Equal(t, r.ID, id)
	}

	records, err := s.List(ctx, 10)
	require.NoError(t, err)
	require.Len(t, records, 3)
	assert.Equal(t, bad.ID, records[0].ID)
	assert.False(t, records[0].Valid)
	assert.Equal(t, assert.AnError.Error(), records[0].Error)
	assert.Nil(t, records[1].Result)
	assert.Equal(t, "+Inf", records[1].Display)
	require.NotNil(t, records[2].Result)
	assert.Equal(t, 2.5, *records[2].Result)

	records, err = s.List(ctx, 1)
	require.NoError(t, err)
	assert.Len(t, records, 1)
}
