package queue

import (
	"context"
	"errors"
	"log"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	// MaxRetries is the maximum number of credit attempts per claim,
	// including the synchronous one.
	MaxRetries = 3
	// RetryDelay is the base delay between retries (exponential backoff).
	RetryDelay = 5 * time.Second
	// StatusUpdateTimeout bounds ledger updates made outside a worker.
	StatusUpdateTimeout = 5 * time.Second
)

// Crediter credits reward points.
type Crediter interface {
	GivePoints(ctx context.Context, email string, points int, idempotencyKey string) error
}

// ClaimLedger records the outcome of each credit attempt.
type ClaimLedger interface {
	RecordAttempt(ctx context.Context, id primitive.ObjectID, lastError string) error
	MarkCredited(ctx context.Context, id primitive.ObjectID) error
	MarkFailed(ctx context.Context, id primitive.ObjectID, lastError string) error
}

// Observer is notified of settled claims. Used for metrics.
type Observer interface {
	RewardRetried(outcome string)
}

// Retry outcomes reported to the Observer.
const (
	OutcomeCredited = "credited"
	OutcomeRetrying = "retrying"
	OutcomeFailed   = "failed"
)

// Processor retries reward credits from the queue.
type Processor struct {
	queue        Queue
	crediter     Crediter
	ledger       ClaimLedger
	observer     Observer
	workerCount  int
	retryDelay   time.Duration
	wg           sync.WaitGroup
	shutdownOnce sync.Once
	shutdownCh   chan struct{}
}

// Option configures a Processor.
type Option func(*Processor)

// WithRetryDelay overrides the base backoff delay.
func WithRetryDelay(d time.Duration) Option {
	return func(p *Processor) { p.retryDelay = d }
}

// WithObserver reports retry outcomes to o.
func WithObserver(o Observer) Option {
	return func(p *Processor) { p.observer = o }
}

// NewProcessor creates a new reward retry processor.
func NewProcessor(queue Queue, crediter Crediter, ledger ClaimLedger, workerCount int, opts ...Option) *Processor {
	p := &Processor{
		queue:       queue,
		crediter:    crediter,
		ledger:      ledger,
		workerCount: workerCount,
		retryDelay:  RetryDelay,
		shutdownCh:  make(chan struct{}),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Start begins processing jobs with the configured number of workers.
func (p *Processor) Start(ctx context.Context) {
	for i := 0; i < p.workerCount; i++ {
		p.wg.Add(1)
		go p.worker(ctx, i)
	}
	log.Printf("Reward processor started with %d workers", p.workerCount)
}

// Stop gracefully stops the processor, waiting for workers to finish.
// Jobs still waiting for their retry delay stay pending in the ledger and
// are picked up again at the next start.
func (p *Processor) Stop() {
	p.shutdownOnce.Do(func() {
		close(p.shutdownCh)
		p.queue.Close()
	})
	p.wg.Wait()
	log.Println("Reward processor stopped")
}

// Retry schedules another credit attempt for job after the backoff delay,
// or marks the claim failed once MaxRetries attempts were made.
func (p *Processor) Retry(job RewardJob) {
	if job.Attempts >= MaxRetries {
		log.Printf("Max retries reached for reward claim %s, marking as failed", job.ClaimID.Hex())
		p.markFailed(job, "max retries reached")
		p.observe(OutcomeFailed)
		return
	}

	delay := p.retryDelay * time.Duration(1<<uint(max(job.Attempts-1, 0)))
	log.Printf("Retrying reward claim %s in %v (attempt %d/%d)", job.ClaimID.Hex(), delay, job.Attempts+1, MaxRetries)
	p.observe(OutcomeRetrying)

	// Uses shutdownCh instead of a ctx so a pending retry is abandoned, not
	// failed, on graceful shutdown.
	go func() {
		select {
		case <-p.shutdownCh:
			log.Printf("Shutdown during retry delay for reward claim %s, left pending", job.ClaimID.Hex())
		case <-time.After(delay):
			if err := p.queue.Enqueue(job); err != nil {
				switch {
				case errors.Is(err, ErrQueueClosed):
					log.Printf("Queue closed before retry of reward claim %s, left pending", job.ClaimID.Hex())
					return
				case errors.Is(err, ErrAlreadyQueued):
					return
				}
				log.Printf("Failed to re-enqueue reward claim %s: %v", job.ClaimID.Hex(), err)
				p.markFailed(job, err.Error())
				p.observe(OutcomeFailed)
			}
		}
	}()
}

func (p *Processor) worker(ctx context.Context, id int) {
	defer p.wg.Done()
	log.Printf("Worker %d started", id)

	for {
		job, err := p.queue.Dequeue(ctx)
		if err != nil {
			if errors.Is(err, ErrQueueClosed) || ctx.Err() != nil {
				log.Printf("Worker %d shutting down", id)
				return
			}
			log.Printf("Worker %d failed to dequeue: %v", id, err)
			continue
		}
		p.processJob(ctx, job)
	}
}

func (p *Processor) processJob(ctx context.Context, job RewardJob) {
	log.Printf("Crediting reward claim %s (attempt %d)", job.ClaimID.Hex(), job.Attempts+1)

	err := p.crediter.GivePoints(ctx, job.UserEmail, job.Points, job.IdempotencyKey)
	job.Attempts++
	if err != nil {
		log.Printf("Reward credit failed for claim %s: %v", job.ClaimID.Hex(), err)
		if recErr := p.ledger.RecordAttempt(ctx, job.ClaimID, err.Error()); recErr != nil {
			log.Printf("Failed to record attempt for claim %s: %v", job.ClaimID.Hex(), recErr)
		}
		p.Retry(job)
		return
	}

	if err := p.ledger.MarkCredited(ctx, job.ClaimID); err != nil {
		log.Printf("Failed to mark reward claim %s credited: %v", job.ClaimID.Hex(), err)
	}
	p.observe(OutcomeCredited)
	log.Printf("Reward claim %s credited", job.ClaimID.Hex())
}

func (p *Processor) markFailed(job RewardJob, reason string) {
	ctx, cancel := context.WithTimeout(context.Background(), StatusUpdateTimeout)
	defer cancel()
	if err := p.ledger.MarkFailed(ctx, job.ClaimID, reason); err != nil {
		log.Printf("Failed to mark reward claim %s failed: %v", job.ClaimID.Hex(), err)
	}
}

func (p *Processor) observe(outcome string) {
	if p.observer != nil {
		p.observer.RewardRetried(outcome)
	}
}
