package queue

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// fakeCrediter fails the first failures calls.
type fakeCrediter struct {
	mu       sync.Mutex
	failures int
	calls    int
	keys     []string
}

func (c *fakeCrediter) GivePoints(_ context.Context, _ string, _ int, key string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.calls++
	c.keys = append(c.keys, key)
	if c.calls <= c.failures {
		return errors.New("give points: 503 Service Unavailable")
	}
	return nil
}

func (c *fakeCrediter) Calls() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.calls
}

// fakeLedger records claim updates.
type fakeLedger struct {
	mu       sync.Mutex
	attempts map[primitive.ObjectID]int
	status   map[primitive.ObjectID]string
}

func newFakeLedger() *fakeLedger {
	return &fakeLedger{attempts: map[primitive.ObjectID]int{}, status: map[primitive.ObjectID]string{}}
}

func (l *fakeLedger) RecordAttempt(_ context.Context, id primitive.ObjectID, _ string) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.attempts[id]++
	return nil
}

func (l *fakeLedger) MarkCredited(_ context.Context, id primitive.ObjectID) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.attempts[id]++
	l.status[id] = "credited"
	return nil
}

func (l *fakeLedger) MarkFailed(_ context.Context, id primitive.ObjectID, _ string) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.status[id] = "failed"
	return nil
}

func (l *fakeLedger) Status(id primitive.ObjectID) string {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.status[id]
}

func (l *fakeLedger) Attempts(id primitive.ObjectID) int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.attempts[id]
}

type countingObserver struct {
	mu       sync.Mutex
	outcomes map[string]int
}

func (o *countingObserver) RewardRetried(outcome string) {
	o.mu.Lock()
	defer o.mu.Unlock()
	if o.outcomes == nil {
		o.outcomes = map[string]int{}
	}
	o.outcomes[outcome]++
}

func (o *countingObserver) Count(outcome string) int {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.outcomes[outcome]
}

func TestProcessor_StartStop(t *testing.T) {
	t.Run("starts and stops cleanly", func(t *testing.T) {
		p := NewProcessor(NewMemoryQueue(10), &fakeCrediter{}, newFakeLedger(), 3)
		p.Start(context.Background())

		done := make(chan struct{})
		go func() {
			p.Stop()
			close(done)
		}()

		select {
		case <-done:
		case <-time.After(2 * time.Second):
			t.Fatal("Stop() timed out")
		}
	})

	t.Run("workers exit when the context deadline passes", func(t *testing.T) {
		p := NewProcessor(NewMemoryQueue(10), &fakeCrediter{}, newFakeLedger(), 2)
		ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
		defer cancel()
		p.Start(ctx)

		done := make(chan struct{})
		go func() {
			p.wg.Wait()
			close(done)
		}()

		select {
		case <-done:
		case <-time.After(2 * time.Second):
			t.Fatal("workers still running after the deadline")
		}
		p.Stop()
	})

	t.Run("stop is idempotent", func(t *testing.T) {
		p := NewProcessor(NewMemoryQueue(10), &fakeCrediter{}, newFakeLedger(), 1)
		p.Start(context.Background())

		p.Stop()
		p.Stop()
	})
}

func TestProcessor_CreditsQueuedJob(t *testing.T) {
	q := NewMemoryQueue(10)
	crediter := &fakeCrediter{}
	ledger := newFakeLedger()
	observer := &countingObserver{}
	p := NewProcessor(q, crediter, ledger, 1, WithObserver(observer))

	job := newJob()
	job.Attempts = 1
	_ = q.Enqueue(job)
	p.Start(context.Background())

	assert.Eventually(t, func() bool { return ledger.Status(job.ClaimID) == "credited" }, 2*time.Second, 10*time.Millisecond)
	p.Stop()

	assert.Equal(t, 1, crediter.Calls())
	assert.Equal(t, []string{"key"}, crediter.keys)
	assert.Equal(t, 1, observer.Count(OutcomeCredited))
}

func TestProcessor_RetriesWithSameKeyThenCredits(t *testing.T) {
	q := NewMemoryQueue(10)
	crediter := &fakeCrediter{failures: 1}
	ledger := newFakeLedger()
	p := NewProcessor(q, crediter, ledger, 1, WithRetryDelay(10*time.Millisecond))

	job := newJob()
	job.Attempts = 1
	_ = q.Enqueue(job)
	p.Start(context.Background())

	assert.Eventually(t, func() bool { return ledger.Status(job.ClaimID) == "credited" }, 2*time.Second, 10*time.Millisecond)
	p.Stop()

	assert.Equal(t, 2, crediter.Calls())
	assert.Equal(t, []string{"key", "key"}, crediter.keys)
	assert.Equal(t, 2, ledger.Attempts(job.ClaimID))
}

func TestProcessor_GivesUpAfterMaxRetries(t *testing.T) {
	q := NewMemoryQueue(10)
	crediter := &fakeCrediter{failures: 100}
	ledger := newFakeLedger()
	observer := &countingObserver{}
	p := NewProcessor(q, crediter, ledger, 1, WithRetryDelay(5*time.Millisecond), WithObserver(observer))
	p.Start(context.Background())

	// The synchronous attempt already failed once.
	job := newJob()
	job.Attempts = 1
	p.Retry(job)

	assert.Eventually(t, func() bool { return ledger.Status(job.ClaimID) == "failed" }, 2*time.Second, 10*time.Millisecond)
	p.Stop()

	assert.Equal(t, MaxRetries-1, crediter.Calls())
	assert.Equal(t, 1, observer.Count(OutcomeFailed))
}

func TestProcessor_RetryAtLimitFailsImmediately(t *testing.T) {
	ledger := newFakeLedger()
	p := NewProcessor(NewMemoryQueue(1), &fakeCrediter{}, ledger, 1)

	job := newJob()
	job.Attempts = MaxRetries
	p.Retry(job)

	assert.Equal(t, "failed", ledger.Status(job.ClaimID))
}

func TestProcessor_ShutdownLeavesRetryPending(t *testing.T) {
	crediter := &fakeCrediter{}
	ledger := newFakeLedger()
	p := NewProcessor(NewMemoryQueue(1), crediter, ledger, 1, WithRetryDelay(time.Hour))
	p.Start(context.Background())

	job := newJob()
	job.Attempts = 1
	p.Retry(job)
	p.Stop()

	time.Sleep(20 * time.Millisecond)
	assert.Empty(t, ledger.Status(job.ClaimID))
	assert.Zero(t, crediter.Calls())
}
