package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/DjordjeVuckovic/linked-calc/internal/history"
	"github.com/google/uuid"
	backend "github.com/redis/go-redis/v9"
)

const (
	DefaultKey      = "linkedcalc:history"
	DefaultCapacity = 1000
)

type Config struct {
	Addr     string
	Password string
	DB       int
	Key      string
}

// Store keeps records as JSON in a capped Redis list, newest at the head.
type Store struct {
	client   *backend.Client
	key      string
	capacity int64
}

type Option func(*Store)

// WithKey sets the list key records are pushed to.
func WithKey(key string) Option {
	return func(s *Store) {
		if key != "" {
			s.key = key
		}
	}
}

// WithCapacity bounds the list length; older records are trimmed.
func WithCapacity(n int64) Option {
	return func(s *Store) {
		if n > 0 {
			s.capacity = n
		}
	}
}

func New(cfg Config, opts ...Option) *Store {
	rdb := backend.NewClient(&backend.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
	return NewFromClient(rdb, append([]Option{WithKey(cfg.Key)}, opts...)...)
}

func NewFromClient(client *backend.Client, opts ...Option) *Store {
	s := &Store{
		client:   client,
		key:      DefaultKey,
		capacity: DefaultCapacity,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Store) Save(ctx context.Context, record history.Record) (uuid.UUID, error) {
	if record.ID == uuid.Nil {
		record.ID = uuid.New()
	}

	data, err := json.Marshal(record)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to marshal evaluation: %w", err)
	}

	_, err = s.client.TxPipelined(ctx, func(pipe backend.Pipeliner) error {
		pipe.LPush(ctx, s.key, data)
		pipe.LTrim(ctx, s.key, 0, s.capacity-1)
		return nil
	})
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to push evaluation: %w", err)
	}

	return record.ID, nil
}

func (s *Store) List(ctx context.Context, limit int) ([]history.Record, error) {
	limit = history.NormalizeLimit(limit)

	items, err := s.client.LRange(ctx, s.key, 0, int64(limit-1)).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to read evaluations: %w", err)
	}

	records := make([]history.Record, 0, len(items))
	for _, item := range items {
		var r history.Record
		if err := json.Unmarshal([]byte(item), &r); err != nil {
			slog.Warn("Skipping corrupt history entry", "key", s.key, "error", err)
			continue
		}
		records = append(records, r)
	}
	return records, nil
}

func (s *Store) Healthy(ctx context.Context) bool {
	if err := s.client.Ping(ctx).Err(); err != nil {
		slog.Error("Redis health check failed", "error", err)
		return false
	}
	return true
}

func (s *Store) Close() error {
	return s.client.Close()
}
