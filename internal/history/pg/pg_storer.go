package pg

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/DjordjeVuckovic/linked-calc/db"
	"github.com/DjordjeVuckovic/linked-calc/internal/history"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Storer struct {
	pool *ConnectionPool
	db   *pgxpool.Pool
}

// NewStorer applies the embedded migrations and returns a Storer backed by
// the evaluations table.
func NewStorer(ctx context.Context, pool *ConnectionPool) (*Storer, error) {
	s := &Storer{pool: pool, db: pool.conn}
	if err := s.migrate(ctx); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Storer) migrate(ctx context.Context) error {
	scripts, err := db.UpMigrations()
	if err != nil {
		return err
	}
	for _, script := range scripts {
		if _, err := s.db.Exec(ctx, script); err != nil {
			return fmt.Errorf("failed to apply migration: %w", err)
		}
	}
	slog.Info("PostgreSQL history schema ready", "migrations", len(scripts))
	return nil
}

func (s *Storer) Save(ctx context.Context, record history.Record) (uuid.UUID, error) {
	if record.ID == uuid.Nil {
		record.ID = uuid.New()
	}
	if record.CreatedAt.IsZero() {
		record.CreatedAt = time.Now().UTC()
	}

	cmd := `
        INSERT INTO evaluations (id, expression, valid, result, display, error, created_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7)
        RETURNING id;
    `
	var id uuid.UUID
	err := s.db.QueryRow(
		ctx,
		cmd,
		record.ID,
		record.Expression,
		record.Valid,
		record.Result,
		record.Display,
		record.Error,
		record.CreatedAt,
	).Scan(&id)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to insert evaluation: %w", err)
	}

	return id, nil
}

func (s *Storer) List(ctx context.Context, limit int) ([]history.Record, error) {
	query := `
        SELECT id, expression, valid, result, display, error, created_at
        FROM evaluations
        ORDER BY created_at DESC
        LIMIT $1;
    `
	rows, err := s.db.Query(ctx, query, history.NormalizeLimit(limit))
	if err != nil {
		return nil, fmt.Errorf("failed to query evaluations: %w", err)
	}

	records, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (history.Record, error) {
		var r history.Record
		err := row.Scan(&r.ID, &r.Expression, &r.Valid, &r.Result, &r.Display, &r.Error, &r.CreatedAt)
		return r, err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan evaluations: %w", err)
	}

	return records, nil
}

func (s *Storer) Healthy(ctx context.Context) bool {
	if err := s.pool.Ping(ctx); err != nil {
		slog.Error("PostgreSQL health check failed", "error", err)
		return false
	}
	return true
}

func (s *Storer) Close() {
	s.pool.Close()
}
