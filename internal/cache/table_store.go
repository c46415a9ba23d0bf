package cache

import (
	"context"
	"time"
)

// TableStore keeps one management table per session.
type TableStore[T any] interface {
	// Load returns the stored rows. Returns false if the table was never filled.
	Load(ctx context.Context, sessionID string) ([]T, bool, error)
	// Save replaces the stored rows.
	Save(ctx context.Context, sessionID string, rows []T, ttl time.Duration) error
}

type tableStore[T any] struct {
	cache Cache
	table string
}

// NewTableStore creates a TableStore for the named table.
func NewTableStore[T any](cache Cache, table string) TableStore[T] {
	return &tableStore[T]{cache: cache, table: table}
}

func (s *tableStore[T]) Load(ctx context.Context, sessionID string) ([]T, bool, error) {
	var rows []T
	found, err := s.cache.Get(ctx, TableKey(sessionID, s.table), &rows)
	if err != nil || !found {
		return nil, false, err
	}
	if rows == nil {
		rows = []T{}
	}
	return rows, true, nil
}

func (s *tableStore[T]) Save(ctx context.Context, sessionID string, rows []T, ttl time.Duration) error {
	if rows == nil {
		rows = []T{}
	}
	return s.cache.Set(ctx, TableKey(sessionID, s.table), rows, ttl)
}
