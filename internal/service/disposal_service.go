package service

import (
	"bytes"
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"ecobin-portal/internal/cache"
	"ecobin-portal/internal/classifier"
	apperrors "ecobin-portal/internal/errors"
	"ecobin-portal/internal/models"
	"ecobin-portal/internal/repository"
	"ecobin-portal/internal/storage"
	"ecobin-portal/internal/workflow"

	"github.com/google/uuid"
)

// PreviewURLExpiry is the lifetime of presigned image preview links.
const PreviewURLExpiry = 15 * time.Minute

// ImageUpload is an item image received from the browser.
type ImageUpload struct {
	Filename    string
	ContentType string
	Data        []byte
}

// DisposalService drives the disposal workflow.
type DisposalService struct {
	store        cache.DisposalStore
	binRepo      repository.BinRepository
	depositRepo  repository.DepositRepository
	classifier   classifier.Service
	storage      storage.Storage
	rewards      RewardServicer
	recorder     Recorder
	ttl          time.Duration
	weight       float64
	points       int
	binOpenFor   time.Duration
	maxImageSize int64
	staleAfter   time.Duration
	now          func() time.Time
}

// DisposalServiceConfig holds configuration for DisposalService.
type DisposalServiceConfig struct {
	Store        cache.DisposalStore
	BinRepo      repository.BinRepository
	DepositRepo  repository.DepositRepository
	Classifier   classifier.Service
	Storage      storage.Storage
	Rewards      RewardServicer
	Recorder     Recorder
	TTL          time.Duration
	Weight       float64
	Points       int
	BinOpenFor   time.Duration
	MaxImageSize int64
}

// NewDisposalService creates a new DisposalService.
func NewDisposalService(cfg DisposalServiceConfig) *DisposalService {
	recorder := cfg.Recorder
	if recorder == nil {
		recorder = nopRecorder{}
	}
	return &DisposalService{
		store:        cfg.Store,
		binRepo:      cfg.BinRepo,
		depositRepo:  cfg.DepositRepo,
		classifier:   cfg.Classifier,
		storage:      cfg.Storage,
		rewards:      cfg.Rewards,
		recorder:     recorder,
		ttl:          cfg.TTL,
		weight:       cfg.Weight,
		points:       cfg.Points,
		binOpenFor:   cfg.BinOpenFor,
		maxImageSize: cfg.MaxImageSize,
		staleAfter:   cache.LockTTL,
		now:          time.Now,
	}
}

// Create starts a disposal with its first image. The response carries an
// inline preview of the upload.
func (s *DisposalService) Create(ctx context.Context, session *models.Session, upload *ImageUpload) (*models.DisposalView, error) {
	if err := s.validate(upload); err != nil {
		return nil, err
	}

	now := s.now()
	d := workflow.New(uuid.NewString(), session.Email, now)
	img := s.image(d.ID, upload)
	if err := s.putImage(ctx, img, upload); err != nil {
		return nil, err
	}
	if _, err := d.SelectImage(img, now); err != nil {
		return nil, err
	}

	if err := s.store.Save(ctx, d, s.ttl); err != nil {
		s.deleteImage(d.ID, img.Key)
		return nil, fmt.Errorf("failed to save disposal: %w", err)
	}

	view := d.View(now, dataURL(upload))
	return &view, nil
}

// ReplaceImage selects a new image for an existing disposal. Allowed from
// any state that is neither in flight nor showing the bin modal.
func (s *DisposalService) ReplaceImage(ctx context.Context, session *models.Session, id string, upload *ImageUpload) (*models.DisposalView, error) {
	if err := s.validate(upload); err != nil {
		return nil, err
	}

	var view models.DisposalView
	err := s.mutate(ctx, session, id, func(d *workflow.Disposal, now time.Time) error {
		img := s.image(d.ID, upload)
		if _, err := d.SelectImage(img, now); err != nil {
			return err
		}
		if err := s.putImage(ctx, img, upload); err != nil {
			return err
		}
		view = d.View(now, dataURL(upload))
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &view, nil
}

// Get returns the current view of a disposal. A held image is linked with a
// presigned URL.
func (s *DisposalService) Get(ctx context.Context, session *models.Session, id string) (*models.DisposalView, error) {
	d, err := s.load(ctx, session, id)
	if err != nil {
		return nil, err
	}

	preview := ""
	if d.Image != nil {
		preview, err = s.storage.GetPresignedURL(ctx, d.Image.Key, PreviewURLExpiry)
		if err != nil {
			log.Printf("Failed to presign preview of disposal %s: %v", d.ID, err)
			preview = ""
		}
	}

	view := d.View(s.now(), preview)
	return &view, nil
}

// OpenBins opens the bin selection modal. The bin list is fetched once and
// kept with the disposal until the modal closes.
func (s *DisposalService) OpenBins(ctx context.Context, session *models.Session, id string) (*models.BinSelectionView, error) {
	var options []models.BinOption
	err := s.mutate(ctx, session, id, func(d *workflow.Disposal, now time.Time) error {
		if err := d.ReadyForBins(); err != nil {
			return err
		}
		bins, err := s.binRepo.List(repository.WithToken(ctx, session.BackendToken))
		if err != nil {
			return apperrors.Wrap(apperrors.ErrFetchBinsFailed, err)
		}
		if err := d.OpenBinModal(bins, now); err != nil {
			return err
		}
		options, err = d.SearchBins("")
		return err
	})
	if err != nil {
		return nil, err
	}
	return &models.BinSelectionView{DisposalID: id, Bins: options}, nil
}

// SearchBins filters the open modal's bins by location.
func (s *DisposalService) SearchBins(ctx context.Context, session *models.Session, id, search string) (*models.BinSelectionView, error) {
	d, err := s.load(ctx, session, id)
	if err != nil {
		return nil, err
	}

	options, err := d.SearchBins(search)
	if err != nil {
		return nil, err
	}
	return &models.BinSelectionView{DisposalID: id, Search: search, Bins: options}, nil
}

// CloseBins dismisses the modal.
func (s *DisposalService) CloseBins(ctx context.Context, session *models.Session, id string) (*models.DisposalView, error) {
	var view models.DisposalView
	err := s.mutate(ctx, session, id, func(d *workflow.Disposal, now time.Time) error {
		if err := d.CloseBinModal(now); err != nil {
			return err
		}
		view = d.View(now, "")
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &view, nil
}

// SelectBin picks a bin and runs classify, deposit and reward in order.
// Failures of the chain settle the disposal in the error state and are
// reported in the view, not as an error. A full bin returns ErrBinFull
// together with the view.
func (s *DisposalService) SelectBin(ctx context.Context, session *models.Session, id string, binID int) (*models.DisposalView, error) {
	var view *models.DisposalView
	err := s.mutate(ctx, session, id, func(d *workflow.Disposal, now time.Time) error {
		bin, err := d.SelectBin(binID, now)
		if err != nil {
			if errors.Is(err, apperrors.ErrBinFull) {
				v := d.View(now, "")
				view = &v
			}
			return err
		}

		// Readers polling the disposal see the chain in flight.
		if err := s.store.Save(ctx, d, s.ttl); err != nil {
			log.Printf("Failed to save in-flight disposal %s: %v", d.ID, err)
		}
		s.runChain(ctx, session, d, bin)
		v := d.View(s.now(), "")
		view = &v
		return nil
	})
	return view, err
}

// runChain performs the outbound calls for an accepted bin selection and
// settles d. The stored image is always released afterwards.
func (s *DisposalService) runChain(ctx context.Context, session *models.Session, d *workflow.Disposal, bin models.Bin) {
	defer s.settle(d)

	backendCtx := repository.WithToken(ctx, session.BackendToken)

	label, err := s.classify(ctx, d)
	if err != nil {
		log.Printf("Classification failed for disposal %s: %v", d.ID, err)
		d.Fail(apperrors.ErrClassificationFailed, s.now())
		return
	}

	accepted, err := d.Classified(label, s.now())
	if err != nil || !accepted {
		return
	}

	deposit := models.Deposit{
		ID:          0,
		BinID:       bin.ID,
		Weight:      s.weight,
		RequestDate: models.NewTimestamp(s.now()),
		IsApproved:  true,
	}
	if err := s.depositRepo.Create(backendCtx, deposit); err != nil {
		log.Printf("Deposit failed for disposal %s: %v", d.ID, err)
		d.Fail(apperrors.ErrDepositFailed, s.now())
		return
	}
	if err := d.Deposited(s.binOpenFor, s.now()); err != nil {
		return
	}

	claimID, err := s.rewards.Credit(ctx, RewardRequest{
		DisposalID:   d.ID,
		UserEmail:    session.Email,
		BinID:        bin.ID,
		Points:       s.points,
		BackendToken: session.BackendToken,
	})
	d.ClaimID = claimID
	if err != nil {
		log.Printf("Reward failed for disposal %s: %v", d.ID, err)
		reason := apperrors.ErrRewardFailed
		if errors.Is(err, apperrors.ErrNotLoggedIn) {
			reason = apperrors.ErrNotLoggedIn
		}
		_ = d.RewardFailed(reason, s.now())
		return
	}
	_ = d.Rewarded(s.points, s.now())
}

func (s *DisposalService) classify(ctx context.Context, d *workflow.Disposal) (string, error) {
	if d.Image == nil {
		return "", apperrors.ErrNoImage
	}
	body, err := s.storage.GetObject(ctx, d.Image.Key)
	if err != nil {
		return "", err
	}
	defer body.Close()

	return s.classifier.Classify(ctx, d.Image.Name, d.Image.ContentType, body)
}

// settle releases the stored image once the chain has finished.
func (s *DisposalService) settle(d *workflow.Disposal) {
	outcome := string(d.Outcome)
	if d.State == workflow.StateError {
		outcome = string(workflow.StateError)
	}
	s.recorder.DisposalSettled(outcome)

	if img := d.ClearImage(s.now()); img != nil {
		s.deleteImage(d.ID, img.Key)
	}
}

// mutate runs fn on the locked disposal and saves the result. Refused
// actions leave the stored record unchanged, except a full bin which keeps
// its message.
func (s *DisposalService) mutate(ctx context.Context, session *models.Session, id string, fn func(d *workflow.Disposal, now time.Time) error) error {
	unlock, err := s.store.Lock(ctx, id)
	if err != nil {
		return err
	}
	defer unlock()

	d, err := s.load(ctx, session, id)
	if err != nil {
		return err
	}

	fnErr := fn(d, s.now())
	if fnErr != nil && !errors.Is(fnErr, apperrors.ErrBinFull) {
		return fnErr
	}

	if err := s.store.Save(ctx, d, s.ttl); err != nil {
		return fmt.Errorf("failed to save disposal: %w", err)
	}
	return fnErr
}

// load returns the disposal if it belongs to the session user. A chain
// in flight for longer than the lock TTL has lost its worker and is failed.
func (s *DisposalService) load(ctx context.Context, session *models.Session, id string) (*workflow.Disposal, error) {
	d, err := s.store.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if d == nil || !strings.EqualFold(d.UserEmail, session.Email) {
		return nil, apperrors.ErrDisposalNotFound
	}
	if d.Recover(s.staleAfter, s.now()) {
		log.Printf("Disposal %s was left in flight, marked interrupted", d.ID)
	}
	return d, nil
}

func (s *DisposalService) validate(upload *ImageUpload) error {
	if upload == nil || len(upload.Data) == 0 {
		return apperrors.ErrNoImage
	}
	if !strings.HasPrefix(upload.ContentType, "image/") {
		return apperrors.ErrInvalidImage
	}
	if s.maxImageSize > 0 && int64(len(upload.Data)) > s.maxImageSize {
		return apperrors.ErrImageTooLarge
	}
	return nil
}

func (s *DisposalService) image(disposalID string, upload *ImageUpload) workflow.Image {
	return workflow.Image{
		Key:         storage.ItemKey(disposalID),
		Name:        upload.Filename,
		ContentType: upload.ContentType,
		Size:        int64(len(upload.Data)),
	}
}

func (s *DisposalService) putImage(ctx context.Context, img workflow.Image, upload *ImageUpload) error {
	if err := s.storage.PutObject(ctx, img.Key, bytes.NewReader(upload.Data), img.Size, img.ContentType); err != nil {
		return fmt.Errorf("failed to store image: %w", err)
	}
	return nil
}

// deleteImage removes a stored image on a fresh context; failures only leave
// an orphan object behind.
func (s *DisposalService) deleteImage(disposalID, key string) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := s.storage.DeleteObject(ctx, key); err != nil {
		log.Printf("Failed to delete image of disposal %s: %v", disposalID, err)
	}
}

// dataURL renders the upload as an inline preview.
func dataURL(upload *ImageUpload) string {
	return "data:" + upload.ContentType + ";base64," + base64.StdEncoding.EncodeToString(upload.Data)
}
