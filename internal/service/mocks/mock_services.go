// Package mocks provides mock implementations of service interfaces for testing.
package mocks

import (
	"context"

	"ecobin-portal/internal/models"
	"ecobin-portal/internal/service"
)

// MockAuthService is a mock implementation of AuthServicer.
type MockAuthService struct {
	LoginFunc    func(ctx context.Context, req *models.LoginRequest) (*models.LoginResponse, error)
	RegisterFunc func(ctx context.Context, req *models.RegisterRequest) (*models.RegisterResponse, error)
	LogoutFunc   func(ctx context.Context, session *models.Session) error
}

func (m *MockAuthService) Login(ctx context.Context, req *models.LoginRequest) (*models.LoginResponse, error) {
	if m.LoginFunc != nil {
		return m.LoginFunc(ctx, req)
	}
	return nil, nil
}

func (m *MockAuthService) Register(ctx context.Context, req *models.RegisterRequest) (*models.RegisterResponse, error) {
	if m.RegisterFunc != nil {
		return m.RegisterFunc(ctx, req)
	}
	return nil, nil
}

func (m *MockAuthService) Logout(ctx context.Context, session *models.Session) error {
	if m.LogoutFunc != nil {
		return m.LogoutFunc(ctx, session)
	}
	return nil
}

// MockProfileService is a mock implementation of ProfileServicer.
type MockProfileService struct {
	GetProfileFunc func(ctx context.Context, session *models.Session) (*models.ProfileView, error)
}

func (m *MockProfileService) GetProfile(ctx context.Context, session *models.Session) (*models.ProfileView, error) {
	if m.GetProfileFunc != nil {
		return m.GetProfileFunc(ctx, session)
	}
	return nil, nil
}

// MockHomeService is a mock implementation of HomeServicer.
type MockHomeService struct {
	GetHomeFunc func(session *models.Session) *models.HomeView
}

func (m *MockHomeService) GetHome(session *models.Session) *models.HomeView {
	if m.GetHomeFunc != nil {
		return m.GetHomeFunc(session)
	}
	return &models.HomeView{}
}

// MockDisposalService is a mock implementation of DisposalServicer.
type MockDisposalService struct {
	CreateFunc       func(ctx context.Context, session *models.Session, upload *service.ImageUpload) (*models.DisposalView, error)
	ReplaceImageFunc func(ctx context.Context, session *models.Session, id string, upload *service.ImageUpload) (*models.DisposalView, error)
	GetFunc          func(ctx context.Context, session *models.Session, id string) (*models.DisposalView, error)
	OpenBinsFunc     func(ctx context.Context, session *models.Session, id string) (*models.BinSelectionView, error)
	SearchBinsFunc   func(ctx context.Context, session *models.Session, id, search string) (*models.BinSelectionView, error)
	CloseBinsFunc    func(ctx context.Context, session *models.Session, id string) (*models.DisposalView, error)
	SelectBinFunc    func(ctx context.Context, session *models.Session, id string, binID int) (*models.DisposalView, error)
}

func (m *MockDisposalService) Create(ctx context.Context, session *models.Session, upload *service.ImageUpload) (*models.DisposalView, error) {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, session, upload)
	}
	return nil, nil
}

func (m *MockDisposalService) ReplaceImage(ctx context.Context, session *models.Session, id string, upload *service.ImageUpload) (*models.DisposalView, error) {
	if m.ReplaceImageFunc != nil {
		return m.ReplaceImageFunc(ctx, session, id, upload)
	}
	return nil, nil
}

func (m *MockDisposalService) Get(ctx context.Context, session *models.Session, id string) (*models.DisposalView, error) {
	if m.GetFunc != nil {
		return m.GetFunc(ctx, session, id)
	}
	return nil, nil
}

func (m *MockDisposalService) OpenBins(ctx context.Context, session *models.Session, id string) (*models.BinSelectionView, error) {
	if m.OpenBinsFunc != nil {
		return m.OpenBinsFunc(ctx, session, id)
	}
	return nil, nil
}

func (m *MockDisposalService) SearchBins(ctx context.Context, session *models.Session, id, search string) (*models.BinSelectionView, error) {
	if m.SearchBinsFunc != nil {
		return m.SearchBinsFunc(ctx, session, id, search)
	}
	return nil, nil
}

func (m *MockDisposalService) CloseBins(ctx context.Context, session *models.Session, id string) (*models.DisposalView, error) {
	if m.CloseBinsFunc != nil {
		return m.CloseBinsFunc(ctx, session, id)
	}
	return nil, nil
}

func (m *MockDisposalService) SelectBin(ctx context.Context, session *models.Session, id string, binID int) (*models.DisposalView, error) {
	if m.SelectBinFunc != nil {
		return m.SelectBinFunc(ctx, session, id, binID)
	}
	return nil, nil
}

// MockRewardService is a mock implementation of RewardServicer.
type MockRewardService struct {
	CreditFunc        func(ctx context.Context, req service.RewardRequest) (string, error)
	ResumePendingFunc func(ctx context.Context) (int, error)
}

func (m *MockRewardService) Credit(ctx context.Context, req service.RewardRequest) (string, error) {
	if m.CreditFunc != nil {
		return m.CreditFunc(ctx, req)
	}
	return "", nil
}

func (m *MockRewardService) ResumePending(ctx context.Context) (int, error) {
	if m.ResumePendingFunc != nil {
		return m.ResumePendingFunc(ctx)
	}
	return 0, nil
}

// MockDashboardService is a mock implementation of DashboardServicer.
type MockDashboardService struct {
	GetDashboardFunc func(ctx context.Context, session *models.Session) (*models.DashboardView, error)
}

func (m *MockDashboardService) GetDashboard(ctx context.Context, session *models.Session) (*models.DashboardView, error) {
	if m.GetDashboardFunc != nil {
		return m.GetDashboardFunc(ctx, session)
	}
	return nil, nil
}

// MockUserAdminService is a mock implementation of UserAdminServicer.
type MockUserAdminService struct {
	ListFunc   func(ctx context.Context, session *models.Session, search string, refresh bool) (*models.TableView[models.User], error)
	GetFunc    func(ctx context.Context, session *models.Session, id int) (*models.User, error)
	DeleteFunc func(ctx context.Context, session *models.Session, id int) error
}

func (m *MockUserAdminService) List(ctx context.Context, session *models.Session, search string, refresh bool) (*models.TableView[models.User], error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, session, search, refresh)
	}
	return nil, nil
}

func (m *MockUserAdminService) Get(ctx context.Context, session *models.Session, id int) (*models.User, error) {
	if m.GetFunc != nil {
		return m.GetFunc(ctx, session, id)
	}
	return nil, nil
}

func (m *MockUserAdminService) Delete(ctx context.Context, session *models.Session, id int) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, session, id)
	}
	return nil
}

// MockBinAdminService is a mock implementation of BinAdminServicer.
type MockBinAdminService struct {
	ListFunc   func(ctx context.Context, session *models.Session, search string, refresh bool) (*models.TableView[models.Bin], error)
	GetFunc    func(ctx context.Context, session *models.Session, id int) (*models.Bin, error)
	DeleteFunc func(ctx context.Context, session *models.Session, id int) error
	CreateFunc func(ctx context.Context, session *models.Session, req *models.CreateBinRequest) (*models.Bin, error)
}

func (m *MockBinAdminService) List(ctx context.Context, session *models.Session, search string, refresh bool) (*models.TableView[models.Bin], error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, session, search, refresh)
	}
	return nil, nil
}

func (m *MockBinAdminService) Get(ctx context.Context, session *models.Session, id int) (*models.Bin, error) {
	if m.GetFunc != nil {
		return m.GetFunc(ctx, session, id)
	}
	return nil, nil
}

func (m *MockBinAdminService) Delete(ctx context.Context, session *models.Session, id int) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, session, id)
	}
	return nil
}

func (m *MockBinAdminService) Create(ctx context.Context, session *models.Session, req *models.CreateBinRequest) (*models.Bin, error) {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, session, req)
	}
	return nil, nil
}

// Ensure mocks implement the service interfaces
var (
	_ service.AuthServicer      = (*MockAuthService)(nil)
	_ service.ProfileServicer   = (*MockProfileService)(nil)
	_ service.HomeServicer      = (*MockHomeService)(nil)
	_ service.DisposalServicer  = (*MockDisposalService)(nil)
	_ service.RewardServicer    = (*MockRewardService)(nil)
	_ service.DashboardServicer = (*MockDashboardService)(nil)
	_ service.UserAdminServicer = (*MockUserAdminService)(nil)
	_ service.BinAdminServicer  = (*MockBinAdminService)(nil)
)
