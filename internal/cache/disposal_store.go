package cache

import (
	"context"
	"time"

	apperrors "ecobin-portal/internal/errors"
	"ecobin-portal/internal/workflow"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// LockTTL bounds how long a disposal stays locked if its holder dies.
const LockTTL = 2 * time.Minute

// DisposalStore persists disposal workflows.
type DisposalStore interface {
	// Save stores the disposal with TTL.
	Save(ctx context.Context, d *workflow.Disposal, ttl time.Duration) error
	// Get retrieves a disposal by ID. Returns nil if not found.
	Get(ctx context.Context, disposalID string) (*workflow.Disposal, error)
	// Delete removes a disposal.
	Delete(ctx context.Context, disposalID string) error
	// Lock serializes mutations of one disposal. Returns ErrDisposalBusy if
	// another request holds the lock.
	Lock(ctx context.Context, disposalID string) (unlock func(), err error)
}

// RedisClientProvider provides access to the underlying Redis client.
type RedisClientProvider interface {
	Client() *redis.Client
}

type disposalStore struct {
	cache  Cache
	client *redis.Client
}

// NewDisposalStore creates a new DisposalStore.
// If cache implements RedisClientProvider (e.g., *Redis) unlocks are atomic.
func NewDisposalStore(cache Cache) DisposalStore {
	store := &disposalStore{cache: cache}
	if provider, ok := cache.(RedisClientProvider); ok {
		store.client = provider.Client()
	}
	return store
}

func (s *disposalStore) Save(ctx context.Context, d *workflow.Disposal, ttl time.Duration) error {
	return s.cache.Set(ctx, DisposalKey(d.ID), d, ttl)
}

func (s *disposalStore) Get(ctx context.Context, disposalID string) (*workflow.Disposal, error) {
	var d workflow.Disposal
	found, err := s.cache.Get(ctx, DisposalKey(disposalID), &d)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, nil
	}
	return &d, nil
}

func (s *disposalStore) Delete(ctx context.Context, disposalID string) error {
	return s.cache.Delete(ctx, DisposalKey(disposalID))
}

// unlockScript deletes the lock only if it still carries our token.
var unlockScript = redis.NewScript(`
if redis.call('GET', KEYS[1]) == ARGV[1] then
    return redis.call('DEL', KEYS[1])
end
return 0
`)

func (s *disposalStore) Lock(ctx context.Context, disposalID string) (func(), error) {
	key := DisposalLockKey(disposalID)
	token := uuid.NewString()

	ok, err := s.cache.SetNX(ctx, key, token, LockTTL)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, apperrors.ErrDisposalBusy
	}

	return func() {
		// Released on a fresh context so a cancelled request still unlocks.
		unlockCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if s.client != nil {
			// Values are stored JSON encoded.
			_ = unlockScript.Run(unlockCtx, s.client, []string{key}, `"`+token+`"`).Err()
			return
		}
		_ = s.cache.Delete(unlockCtx, key)
	}, nil
}
