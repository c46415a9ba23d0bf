package service

import (
	"context"
	"log"
	"time"

	"ecobin-portal/internal/cache"
	apperrors "ecobin-portal/internal/errors"
	"ecobin-portal/internal/models"
	"ecobin-portal/internal/repository"
)

// BinAdminService handles the bin management table.
type BinAdminService struct {
	binRepo repository.BinRepository
	table   *tableService[models.Bin]
}

// NewBinAdminService creates a new BinAdminService.
func NewBinAdminService(binRepo repository.BinRepository, store cache.TableStore[models.Bin], ttl time.Duration) *BinAdminService {
	return &BinAdminService{
		binRepo: binRepo,
		table: &tableService[models.Bin]{
			store:     store,
			ttl:       ttl,
			fetch:     binRepo.List,
			remove:    binRepo.Delete,
			fetchErr:  apperrors.ErrFetchBinsFailed,
			deleteErr: apperrors.ErrDeleteBinFailed,
		},
	}
}

// List returns the bins whose id contains search.
func (s *BinAdminService) List(ctx context.Context, session *models.Session, search string, refresh bool) (*models.TableView[models.Bin], error) {
	return s.table.list(ctx, session, search, refresh)
}

// Get returns one bin from the table.
func (s *BinAdminService) Get(ctx context.Context, session *models.Session, id int) (*models.Bin, error) {
	return s.table.get(ctx, session, id)
}

// Delete removes a bin.
func (s *BinAdminService) Delete(ctx context.Context, session *models.Session, id int) error {
	return s.table.delete(ctx, session, id)
}

// Create adds a bin with defaults applied and appends it to the table.
func (s *BinAdminService) Create(ctx context.Context, session *models.Session, req *models.CreateBinRequest) (*models.Bin, error) {
	bin, err := s.binRepo.Create(repository.WithToken(ctx, session.BackendToken), req.ToBin())
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrAddBinFailed, err)
	}

	if err := s.table.appendRow(ctx, session, *bin); err != nil {
		log.Printf("Failed to append bin %d to table state: %v", bin.ID, err)
	}
	return bin, nil
}
