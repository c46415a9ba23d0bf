package queue

import "context"

//go:generate mockgen -destination=mocks/mock_queue.go -package=mocks ecobin-portal/internal/queue Queue

// Queue holds reward jobs waiting for a worker.
type Queue interface {
	Enqueue(job RewardJob) error
	Dequeue(ctx context.Context) (RewardJob, error)
	Close()
	Len() int
}

var _ Queue = (*MemoryQueue)(nil)
