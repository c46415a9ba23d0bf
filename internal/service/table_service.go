package service

import (
	"context"
	"fmt"
	"log"
	"time"

	"ecobin-portal/internal/cache"
	"ecobin-portal/internal/catalog"
	apperrors "ecobin-portal/internal/errors"
	"ecobin-portal/internal/models"
	"ecobin-portal/internal/repository"
)

// tableService keeps a backend collection as session table state.
type tableService[T catalog.Record] struct {
	store     cache.TableStore[T]
	ttl       time.Duration
	fetch     func(ctx context.Context) ([]T, error)
	remove    func(ctx context.Context, id int) error
	fetchErr  error
	deleteErr error
}

func (s *tableService[T]) list(ctx context.Context, session *models.Session, search string, refresh bool) (*models.TableView[T], error) {
	rows, err := s.rows(ctx, session, refresh)
	if err != nil {
		return nil, err
	}

	items := catalog.Filter(rows, search)
	return &models.TableView[T]{Items: items, Total: len(rows), Search: search}, nil
}

func (s *tableService[T]) get(ctx context.Context, session *models.Session, id int) (*T, error) {
	rows, err := s.rows(ctx, session, false)
	if err != nil {
		return nil, err
	}

	row, ok := catalog.Find(rows, id)
	if !ok {
		return nil, apperrors.ErrRecordNotFound
	}
	return &row, nil
}

// delete removes the record in the backend, then from the table. A failed
// call leaves the table untouched.
func (s *tableService[T]) delete(ctx context.Context, session *models.Session, id int) error {
	if err := s.remove(repository.WithToken(ctx, session.BackendToken), id); err != nil {
		return apperrors.Wrap(s.deleteErr, err)
	}

	rows, found, err := s.store.Load(ctx, session.ID)
	if err != nil || !found {
		if err != nil {
			log.Printf("Failed to load table after deleting %d: %v", id, err)
		}
		return nil
	}
	if rows, removed := catalog.Remove(rows, id); removed {
		if err := s.store.Save(ctx, session.ID, rows, s.ttl); err != nil {
			log.Printf("Failed to save table after deleting %d: %v", id, err)
		}
	}
	return nil
}

// appendRow adds a created record to an already loaded table.
func (s *tableService[T]) appendRow(ctx context.Context, session *models.Session, row T) error {
	rows, found, err := s.store.Load(ctx, session.ID)
	if err != nil || !found {
		return err
	}
	return s.store.Save(ctx, session.ID, catalog.Append(rows, row), s.ttl)
}

// rows returns the table state, fetching the collection on first use or
// when refresh is set.
func (s *tableService[T]) rows(ctx context.Context, session *models.Session, refresh bool) ([]T, error) {
	if !refresh {
		rows, found, err := s.store.Load(ctx, session.ID)
		if err != nil {
			return nil, fmt.Errorf("failed to load table: %w", err)
		}
		if found {
			return rows, nil
		}
	}

	rows, err := s.fetch(repository.WithToken(ctx, session.BackendToken))
	if err != nil {
		return nil, apperrors.Wrap(s.fetchErr, err)
	}
	if rows == nil {
		rows = []T{}
	}
	if err := s.store.Save(ctx, session.ID, rows, s.ttl); err != nil {
		return nil, fmt.Errorf("failed to save table: %w", err)
	}
	return rows, nil
}
