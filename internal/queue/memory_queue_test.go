package queue

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func newJob() RewardJob {
	return RewardJob{
		ClaimID:        primitive.NewObjectID(),
		IdempotencyKey: "key",
		UserEmail:      "thandi@example.com",
		Points:         10,
	}
}

func TestNewMemoryQueue(t *testing.T) {
	q := NewMemoryQueue(10)

	assert.Equal(t, 0, q.Len())
}

func TestMemoryQueue_Enqueue(t *testing.T) {
	t.Run("enqueues up to capacity", func(t *testing.T) {
		q := NewMemoryQueue(2)

		require.NoError(t, q.Enqueue(newJob()))
		require.NoError(t, q.Enqueue(newJob()))

		assert.Equal(t, 2, q.Len())
		assert.Equal(t, ErrQueueFull, q.Enqueue(newJob()))
	})

	t.Run("refuses a claim already waiting", func(t *testing.T) {
		q := NewMemoryQueue(2)
		job := newJob()

		require.NoError(t, q.Enqueue(job))
		job.Attempts = 2
		assert.ErrorIs(t, q.Enqueue(job), ErrAlreadyQueued)
		assert.Equal(t, 1, q.Len())
	})

	t.Run("accepts a claim again once dequeued", func(t *testing.T) {
		q := NewMemoryQueue(2)
		job := newJob()
		require.NoError(t, q.Enqueue(job))

		_, err := q.Dequeue(context.Background())
		require.NoError(t, err)

		assert.NoError(t, q.Enqueue(job))
	})

	t.Run("returns error when closed", func(t *testing.T) {
		q := NewMemoryQueue(2)
		q.Close()

		assert.Equal(t, ErrQueueClosed, q.Enqueue(newJob()))
	})
}

func TestMemoryQueue_Dequeue(t *testing.T) {
	t.Run("returns jobs in order", func(t *testing.T) {
		q := NewMemoryQueue(10)
		first, second := newJob(), newJob()
		_ = q.Enqueue(first)
		_ = q.Enqueue(second)

		got1, err := q.Dequeue(context.Background())
		require.NoError(t, err)
		got2, err := q.Dequeue(context.Background())
		require.NoError(t, err)

		assert.Equal(t, first.ClaimID, got1.ClaimID)
		assert.Equal(t, second.ClaimID, got2.ClaimID)
	})

	t.Run("returns context error when cancelled", func(t *testing.T) {
		q := NewMemoryQueue(10)
		ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
		defer cancel()

		_, err := q.Dequeue(ctx)

		assert.ErrorIs(t, err, context.DeadlineExceeded)
	})

	t.Run("drains then reports closed", func(t *testing.T) {
		q := NewMemoryQueue(10)
		job := newJob()
		_ = q.Enqueue(job)
		q.Close()

		got, err := q.Dequeue(context.Background())
		require.NoError(t, err)
		assert.Equal(t, job.ClaimID, got.ClaimID)

		_, err = q.Dequeue(context.Background())
		assert.Equal(t, ErrQueueClosed, err)
	})
}

func TestMemoryQueue_CloseIdempotent(t *testing.T) {
	q := NewMemoryQueue(1)

	q.Close()
	q.Close()

	assert.Equal(t, ErrQueueClosed, q.Enqueue(newJob()))
}

func TestMemoryQueue_Concurrency(t *testing.T) {
	q := NewMemoryQueue(100)
	ctx := context.Background()
	jobCount := 50

	results := make(chan RewardJob, jobCount)
	for i := 0; i < 5; i++ {
		go func() {
			for {
				job, err := q.Dequeue(ctx)
				if err != nil {
					return
				}
				results <- job
			}
		}()
	}

	for i := 0; i < jobCount; i++ {
		go func() {
			_ = q.Enqueue(newJob())
		}()
	}

	receivedCount := 0
	timeout := time.After(2 * time.Second)
	for receivedCount < jobCount {
		select {
		case <-results:
			receivedCount++
		case <-timeout:
			t.Fatalf("Timed out waiting for jobs, received %d/%d", receivedCount, jobCount)
		}
	}

	q.Close()
	assert.Equal(t, jobCount, receivedCount)
}
