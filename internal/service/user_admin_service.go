package service

import (
	"context"
	"time"

	"ecobin-portal/internal/cache"
	apperrors "ecobin-portal/internal/errors"
	"ecobin-portal/internal/models"
	"ecobin-portal/internal/repository"
)

// UserAdminService handles the user management table.
type UserAdminService struct {
	table *tableService[models.User]
}

// NewUserAdminService creates a new UserAdminService. Table state lives as
// long as ttl.
func NewUserAdminService(userRepo repository.UserRepository, store cache.TableStore[models.User], ttl time.Duration) *UserAdminService {
	return &UserAdminService{
		table: &tableService[models.User]{
			store:     store,
			ttl:       ttl,
			fetch:     userRepo.List,
			remove:    userRepo.Delete,
			fetchErr:  apperrors.ErrFetchUsersFailed,
			deleteErr: apperrors.ErrDeleteUserFailed,
		},
	}
}

// List returns the users whose id contains search.
func (s *UserAdminService) List(ctx context.Context, session *models.Session, search string, refresh bool) (*models.TableView[models.User], error) {
	return s.table.list(ctx, session, search, refresh)
}

// Get returns one user from the table.
func (s *UserAdminService) Get(ctx context.Context, session *models.Session, id int) (*models.User, error) {
	return s.table.get(ctx, session, id)
}

// Delete removes a user account.
func (s *UserAdminService) Delete(ctx context.Context, session *models.Session, id int) error {
	return s.table.delete(ctx, session, id)
}
