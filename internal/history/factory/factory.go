package factory

import (
	"context"
	"fmt"

	"github.com/DjordjeVuckovic/linked-calc/internal/history"
	"github.com/DjordjeVuckovic/linked-calc/internal/history/es"
	"github.com/DjordjeVuckovic/linked-calc/internal/history/in_mem"
	"github.com/DjordjeVuckovic/linked-calc/internal/history/pg"
	"github.com/DjordjeVuckovic/linked-calc/internal/history/redis"
)

// NewStorer creates the history.Storer selected by cfg. The returned cleanup
// releases its connections and is never nil.
func NewStorer(ctx context.Context, cfg *StorageConfig) (history.Storer, func(), error) {
	noop := func() {}

	switch cfg.Type {
	case history.PG:
		pool, err := pg.NewConnectionPool(ctx, *cfg.Pg)
		if err != nil {
			return nil, noop, fmt.Errorf("failed to create PostgreSQL connection pool: %w", err)
		}
		s, err := pg.NewStorer(ctx, pool)
		if err != nil {
			pool.Close()
			return nil, noop, err
		}
		return s, s.Close, nil

	case history.ES:
		s, err := es.NewStorer(ctx, *cfg.Es)
		if err != nil {
			return nil, noop, err
		}
		return s, noop, nil

	case history.Redis:
		s := redis.New(*cfg.Redis)
		return s, func() { _ = s.Close() }, nil

	case history.InMem:
		return in_mem.NewStorer(), noop, nil

	default:
		return nil, noop, fmt.Errorf("%w: %s", history.ErrUnsupportedStorer, cfg.Type)
	}
}
