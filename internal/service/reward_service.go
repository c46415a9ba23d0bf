package service

import (
	"context"
	"errors"
	"log"

	apperrors "ecobin-portal/internal/errors"
	"ecobin-portal/internal/models"
	"ecobin-portal/internal/queue"
	"ecobin-portal/internal/repository"

	"github.com/google/uuid"
)

// RewardRequest identifies the deposit a reward is credited for.
type RewardRequest struct {
	DisposalID   string
	UserEmail    string
	BinID        int
	Points       int
	BackendToken string
}

// RetryScheduler schedules another credit attempt of a claim.
type RetryScheduler interface {
	Retry(job queue.RewardJob)
}

// RewardService credits points and keeps the reward ledger.
type RewardService struct {
	claims    repository.RewardClaimRepository
	points    repository.PointsRepository
	jobs      queue.Queue
	scheduler RetryScheduler
	recorder  Recorder
}

// NewRewardService creates a new RewardService. recorder may be nil.
func NewRewardService(
	claims repository.RewardClaimRepository,
	points repository.PointsRepository,
	jobs queue.Queue,
	scheduler RetryScheduler,
	recorder Recorder,
) *RewardService {
	if recorder == nil {
		recorder = nopRecorder{}
	}
	return &RewardService{
		claims:    claims,
		points:    points,
		jobs:      jobs,
		scheduler: scheduler,
		recorder:  recorder,
	}
}

// Credit makes the synchronous credit call for a deposit. A failed call is
// reported to the caller and retried in the background under the same
// idempotency key.
func (s *RewardService) Credit(ctx context.Context, req RewardRequest) (string, error) {
	if req.UserEmail == "" {
		return "", apperrors.ErrNotLoggedIn
	}

	claim := &models.RewardClaim{
		IdempotencyKey: uuid.NewString(),
		DisposalID:     req.DisposalID,
		UserEmail:      req.UserEmail,
		BinID:          req.BinID,
		Points:         req.Points,
	}
	tracked := true
	if err := s.claims.Create(ctx, claim); err != nil {
		// The credit is still attempted, it just cannot be reconciled.
		log.Printf("Failed to record reward claim for disposal %s: %v", req.DisposalID, err)
		tracked = false
	}

	ctx = repository.WithToken(ctx, req.BackendToken)
	creditErr := s.points.GivePoints(ctx, req.UserEmail, req.Points, claim.IdempotencyKey)
	if !tracked {
		if creditErr != nil {
			s.recorder.RewardCredited(queue.OutcomeFailed)
			return "", apperrors.Wrap(apperrors.ErrRewardFailed, creditErr)
		}
		s.recorder.RewardCredited(queue.OutcomeCredited)
		return "", nil
	}

	claimID := claim.ID.Hex()
	if creditErr == nil {
		if err := s.claims.MarkCredited(ctx, claim.ID); err != nil {
			log.Printf("Failed to mark reward claim %s credited: %v", claimID, err)
		}
		s.recorder.RewardCredited(queue.OutcomeCredited)
		return claimID, nil
	}

	if err := s.claims.RecordAttempt(ctx, claim.ID, creditErr.Error()); err != nil {
		log.Printf("Failed to record attempt for reward claim %s: %v", claimID, err)
	}
	s.recorder.RewardCredited(queue.OutcomeRetrying)
	s.scheduler.Retry(queue.RewardJob{
		ClaimID:        claim.ID,
		IdempotencyKey: claim.IdempotencyKey,
		UserEmail:      claim.UserEmail,
		Points:         claim.Points,
		Attempts:       1,
	})
	return claimID, apperrors.Wrap(apperrors.ErrRewardFailed, creditErr)
}

// ResumePending re-enqueues claims left pending by a previous run. It
// returns the number of claims handed to the queue.
func (s *RewardService) ResumePending(ctx context.Context) (int, error) {
	pending, err := s.claims.FindPending(ctx)
	if err != nil {
		return 0, err
	}

	resumed := 0
	for _, claim := range pending {
		job := queue.RewardJob{
			ClaimID:        claim.ID,
			IdempotencyKey: claim.IdempotencyKey,
			UserEmail:      claim.UserEmail,
			Points:         claim.Points,
			Attempts:       claim.Attempts,
		}
		if job.Attempts >= queue.MaxRetries {
			s.scheduler.Retry(job)
			continue
		}
		if err := s.jobs.Enqueue(job); err != nil {
			if errors.Is(err, queue.ErrAlreadyQueued) {
				continue
			}
			if errors.Is(err, queue.ErrQueueFull) {
				log.Println("Reward queue full, remaining pending claims wait for the next start")
				break
			}
			return resumed, err
		}
		resumed++
	}
	return resumed, nil
}
