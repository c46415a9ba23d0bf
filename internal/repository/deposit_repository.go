package repository

import (
	"context"
	"errors"
	"net/http"

	"ecobin-portal/internal/models"
)

// DepositRepository defines the interface for deposit data operations
type DepositRepository interface {
	List(ctx context.Context) ([]models.Deposit, error)
	Create(ctx context.Context, deposit models.Deposit) error
}

type depositRepository struct {
	client *Client
}

// NewDepositRepository creates a new DepositRepository
func NewDepositRepository(client *Client) DepositRepository {
	return &depositRepository{client: client}
}

// List returns every recorded deposit.
func (r *depositRepository) List(ctx context.Context) ([]models.Deposit, error) {
	var deposits []models.Deposit
	if err := r.client.do(ctx, "list deposits", http.MethodGet, "/api/deposit", nil, &deposits); err != nil {
		if errors.Is(err, errEmptyBody) {
			return []models.Deposit{}, nil
		}
		return nil, err
	}
	if deposits == nil {
		deposits = []models.Deposit{}
	}
	return deposits, nil
}

// Create records a deposit.
func (r *depositRepository) Create(ctx context.Context, deposit models.Deposit) error {
	return r.client.do(ctx, "create deposit", http.MethodPost, "/api/deposit", deposit, nil)
}
