package history

import (
	"context"

	"github.com/google/uuid"
)

const DefaultListLimit = 20

type Storer interface {
	Save(ctx context.Context, record Record) (uuid.UUID, error)
	// List returns up to limit records, newest first. A limit <= 0 means
	// DefaultListLimit.
	List(ctx context.Context, limit int) ([]Record, error)
}

type Type string

const (
	ES    Type = "es"
	PG    Type = "pg"
	Redis Type = "redis"
	InMem Type = "in_mem"
)

var Types = []Type{InMem, PG, ES, Redis}

type StorerError string

const (
	ErrUnsupportedStorer StorerError = "unsupported storer type"
)

func (e StorerError) Error() string {
	return string(e)
}

// NormalizeLimit applies DefaultListLimit to non-positive limits.
func NormalizeLimit(limit int) int {
	if limit <= 0 {
		return DefaultListLimit
	}
	return limit
}
