package repository

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"ecobin-portal/internal/models"
)

//go:generate mockgen -destination=mocks/mock_repositories.go -package=mocks ecobin-portal/internal/repository BinRepository,UserRepository,DepositRepository,AuthRepository,PointsRepository,RewardClaimRepository

// BinRepository defines the interface for bin data operations
type BinRepository interface {
	List(ctx context.Context) ([]models.Bin, error)
	Create(ctx context.Context, bin models.Bin) (*models.Bin, error)
	Delete(ctx context.Context, id int) error
}

type binRepository struct {
	client *Client
}

// NewBinRepository creates a new BinRepository
func NewBinRepository(client *Client) BinRepository {
	return &binRepository{client: client}
}

// List returns every bin known to the backend.
func (r *binRepository) List(ctx context.Context) ([]models.Bin, error) {
	var bins []models.Bin
	if err := r.client.do(ctx, "list bins", http.MethodGet, "/api/smartbins", nil, &bins); err != nil {
		if errors.Is(err, errEmptyBody) {
			return []models.Bin{}, nil
		}
		return nil, err
	}
	if bins == nil {
		bins = []models.Bin{}
	}
	return bins, nil
}

// Create posts a new bin and returns the stored record. When the backend
// answers without a body the posted bin is returned.
func (r *binRepository) Create(ctx context.Context, bin models.Bin) (*models.Bin, error) {
	var created models.Bin
	err := r.client.do(ctx, "create bin", http.MethodPost, "/api/smartbins", bin, &created)
	if errors.Is(err, errEmptyBody) {
		return &bin, nil
	}
	if err != nil {
		return nil, err
	}
	return &created, nil
}

// Delete removes a bin by id.
func (r *binRepository) Delete(ctx context.Context, id int) error {
	return r.client.do(ctx, "delete bin", http.MethodDelete, fmt.Sprintf("/api/deleteBin/%d", id), nil, nil)
}
