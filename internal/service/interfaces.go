// Package service contains business logic for the application.
package service

import (
	"context"

	"ecobin-portal/internal/models"
)

// AuthServicer defines the interface for authentication operations.
type AuthServicer interface {
	Login(ctx context.Context, req *models.LoginRequest) (*models.LoginResponse, error)
	Register(ctx context.Context, req *models.RegisterRequest) (*models.RegisterResponse, error)
	Logout(ctx context.Context, session *models.Session) error
}

// ProfileServicer defines the interface for the profile view.
type ProfileServicer interface {
	GetProfile(ctx context.Context, session *models.Session) (*models.ProfileView, error)
}

// HomeServicer defines the interface for the public landing view.
type HomeServicer interface {
	GetHome(session *models.Session) *models.HomeView
}

// DisposalServicer defines the interface for disposal workflow operations.
type DisposalServicer interface {
	Create(ctx context.Context, session *models.Session, upload *ImageUpload) (*models.DisposalView, error)
	ReplaceImage(ctx context.Context, session *models.Session, id string, upload *ImageUpload) (*models.DisposalView, error)
	Get(ctx context.Context, session *models.Session, id string) (*models.DisposalView, error)
	OpenBins(ctx context.Context, session *models.Session, id string) (*models.BinSelectionView, error)
	SearchBins(ctx context.Context, session *models.Session, id, search string) (*models.BinSelectionView, error)
	CloseBins(ctx context.Context, session *models.Session, id string) (*models.DisposalView, error)
	SelectBin(ctx context.Context, session *models.Session, id string, binID int) (*models.DisposalView, error)
}

// RewardServicer defines the interface for crediting disposal rewards.
type RewardServicer interface {
	Credit(ctx context.Context, req RewardRequest) (claimID string, err error)
	ResumePending(ctx context.Context) (int, error)
}

// DashboardServicer defines the interface for the admin console.
type DashboardServicer interface {
	GetDashboard(ctx context.Context, session *models.Session) (*models.DashboardView, error)
}

// UserAdminServicer defines the interface for user management.
type UserAdminServicer interface {
	List(ctx context.Context, session *models.Session, search string, refresh bool) (*models.TableView[models.User], error)
	Get(ctx context.Context, session *models.Session, id int) (*models.User, error)
	Delete(ctx context.Context, session *models.Session, id int) error
}

// BinAdminServicer defines the interface for bin management.
type BinAdminServicer interface {
	List(ctx context.Context, session *models.Session, search string, refresh bool) (*models.TableView[models.Bin], error)
	Get(ctx context.Context, session *models.Session, id int) (*models.Bin, error)
	Delete(ctx context.Context, session *models.Session, id int) error
	Create(ctx context.Context, session *models.Session, req *models.CreateBinRequest) (*models.Bin, error)
}

// Recorder receives workflow outcomes. Used for metrics.
type Recorder interface {
	DisposalSettled(outcome string)
	RewardCredited(outcome string)
}

type nopRecorder struct{}

func (nopRecorder) DisposalSettled(string) {}
func (nopRecorder) RewardCredited(string)  {}

// Ensure concrete types implement interfaces
var (
	_ AuthServicer      = (*AuthService)(nil)
	_ ProfileServicer   = (*ProfileService)(nil)
	_ HomeServicer      = (*HomeService)(nil)
	_ DisposalServicer  = (*DisposalService)(nil)
	_ RewardServicer    = (*RewardService)(nil)
	_ DashboardServicer = (*DashboardService)(nil)
	_ UserAdminServicer = (*UserAdminService)(nil)
	_ BinAdminServicer  = (*BinAdminService)(nil)
)
