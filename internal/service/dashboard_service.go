package service

import (
	"context"
	"log"
	"time"

	"ecobin-portal/internal/analytics"
	apperrors "ecobin-portal/internal/errors"
	"ecobin-portal/internal/models"
	"ecobin-portal/internal/repository"

	"golang.org/x/sync/errgroup"
)

// DashboardService builds the admin console charts.
type DashboardService struct {
	binRepo     repository.BinRepository
	depositRepo repository.DepositRepository
	location    *time.Location
	now         func() time.Time
}

// NewDashboardService creates a new DashboardService. Hour buckets are
// labelled in loc.
func NewDashboardService(binRepo repository.BinRepository, depositRepo repository.DepositRepository, loc *time.Location) *DashboardService {
	if loc == nil {
		loc = time.UTC
	}
	return &DashboardService{
		binRepo:     binRepo,
		depositRepo: depositRepo,
		location:    loc,
		now:         time.Now,
	}
}

// GetDashboard fetches bins and deposits concurrently. A failed fetch
// renders its charts empty and adds a warning.
func (s *DashboardService) GetDashboard(ctx context.Context, session *models.Session) (*models.DashboardView, error) {
	ctx = repository.WithToken(ctx, session.BackendToken)

	var (
		bins        []models.Bin
		deposits    []models.Deposit
		binsErr     error
		depositsErr error
	)

	var g errgroup.Group
	g.Go(func() error {
		bins, binsErr = s.binRepo.List(ctx)
		return nil
	})
	g.Go(func() error {
		deposits, depositsErr = s.depositRepo.List(ctx)
		return nil
	})
	_ = g.Wait()

	view := &models.DashboardView{}
	if binsErr != nil {
		log.Printf("Dashboard: failed to fetch bins: %v", binsErr)
		view.Warnings = append(view.Warnings, apperrors.ErrFetchBinsFailed.Error())
		bins = nil
	}
	if depositsErr != nil {
		log.Printf("Dashboard: failed to fetch deposits: %v", depositsErr)
		view.Warnings = append(view.Warnings, apperrors.ErrFetchDepositsFailed.Error())
		deposits = nil
	}

	view.Capacity = analytics.CapacitySeries(bins)
	view.Points = analytics.PointsSeries(bins)
	view.Hourly = analytics.HourlyWeights(deposits, s.now(), s.location)
	return view, nil
}
