// Package queue retries failed reward credits in the background.
package queue

import (
	"context"
	"sync"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// RewardJob is one pending credit of a reward claim.
type RewardJob struct {
	ClaimID        primitive.ObjectID
	IdempotencyKey string
	UserEmail      string
	Points         int
	// Attempts is the number of credit calls already made for the claim.
	Attempts int
}

// MemoryQueue is a bounded FIFO of reward jobs holding each claim at most
// once.
type MemoryQueue struct {
	jobs chan RewardJob

	mu     sync.Mutex
	queued map[primitive.ObjectID]struct{}
	closed bool
}

// NewMemoryQueue returns a queue holding up to capacity claims.
func NewMemoryQueue(capacity int) *MemoryQueue {
	return &MemoryQueue{
		jobs:   make(chan RewardJob, capacity),
		queued: make(map[primitive.ObjectID]struct{}, capacity),
	}
}

// Enqueue adds job without blocking. A claim already waiting in the queue
// is refused with ErrAlreadyQueued.
func (q *MemoryQueue) Enqueue(job RewardJob) error {
	q.mu.Lock()
	defer q.mu.Unlock()

	if q.closed {
		return ErrQueueClosed
	}
	if _, ok := q.queued[job.ClaimID]; ok {
		return ErrAlreadyQueued
	}

	select {
	case q.jobs <- job:
		q.queued[job.ClaimID] = struct{}{}
		return nil
	default:
		return ErrQueueFull
	}
}

// Dequeue blocks until a job is available, ctx is done or the queue is
// closed and drained.
func (q *MemoryQueue) Dequeue(ctx context.Context) (RewardJob, error) {
	select {
	case <-ctx.Done():
		return RewardJob{}, ctx.Err()
	case job, ok := <-q.jobs:
		if !ok {
			return RewardJob{}, ErrQueueClosed
		}
		q.mu.Lock()
		delete(q.queued, job.ClaimID)
		q.mu.Unlock()
		return job, nil
	}
}

// Close refuses further jobs. Jobs already queued can still be dequeued.
func (q *MemoryQueue) Close() {
	q.mu.Lock()
	defer q.mu.Unlock()
	if !q.closed {
		q.closed = true
		close(q.jobs)
	}
}

// Len is the number of claims waiting.
func (q *MemoryQueue) Len() int {
	return len(q.jobs)
}
