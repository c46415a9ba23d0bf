package cache

import (
	"context"
	"time"

	"ecobin-portal/internal/models"
)

// Management tables kept per session.
const (
	TableUsers = "users"
	TableBins  = "bins"
)

//go:generate mockgen -destination=mocks/mock_stores.go -package=mocks ecobin-portal/internal/cache SessionStore,DisposalStore,TableStore

// SessionStore manages login sessions in Redis.
type SessionStore interface {
	// Create stores a new session.
	Create(ctx context.Context, session *models.Session, ttl time.Duration) error
	// Get retrieves a session by ID. Returns nil if not found.
	Get(ctx context.Context, sessionID string) (*models.Session, error)
	// Delete removes a session together with its view state.
	Delete(ctx context.Context, sessionID string) error
}

type sessionStore struct {
	cache Cache
}

// NewSessionStore creates a new SessionStore.
func NewSessionStore(cache Cache) SessionStore {
	return &sessionStore{cache: cache}
}

func (s *sessionStore) Create(ctx context.Context, session *models.Session, ttl time.Duration) error {
	return s.cache.Set(ctx, SessionKey(session.ID), session, ttl)
}

func (s *sessionStore) Get(ctx context.Context, sessionID string) (*models.Session, error) {
	var session models.Session
	found, err := s.cache.Get(ctx, SessionKey(sessionID), &session)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, nil
	}
	return &session, nil
}

func (s *sessionStore) Delete(ctx context.Context, sessionID string) error {
	return s.cache.Delete(ctx,
		SessionKey(sessionID),
		TableKey(sessionID, TableUsers),
		TableKey(sessionID, TableBins),
	)
}
