package in_mem

import (
	"context"
	"log/slog"
	"sync"

	"github.com/DjordjeVuckovic/linked-calc/internal/history"
	"github.com/google/uuid"
)

// Storer keeps records in insertion order. Nothing survives a restart.
type Storer struct {
	storageLock sync.RWMutex
	records     []history.Record
}

func NewStorer() *Storer {
	return &Storer{}
}

func (s *Storer) Save(ctx context.Context, record history.Record) (uuid.UUID, error) {
	if record.ID == uuid.Nil {
		record.ID = uuid.New()
	}

	s.storageLock.Lock()
	defer s.storageLock.Unlock()
	s.records = append(s.records, record)

	slog.Debug("Saved evaluation to in-memory storage", "id", record.ID, "expression", record.Expression)
	return record.ID, nil
}

func (s *Storer) List(ctx context.Context, limit int) ([]history.Record, error) {
	limit = history.NormalizeLimit(limit)

	s.storageLock.RLock()
	defer s.storageLock.RUnlock()

	n := min(limit, len(s.records))
	out := make([]history.Record, 0, n)
	for i := len(s.records) - 1; i >= 0 && len(out) < n; i-- {
		out = append(out, s.records[i])
	}
	return out, nil
}

func (s *Storer) Healthy(ctx context.Context) bool {
	return true
}
