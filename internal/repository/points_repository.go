package repository

import (
	"context"
	"net/http"

	"ecobin-portal/internal/models"
)

// PointsRepository credits reward points.
type PointsRepository interface {
	// GivePoints credits points to email. idempotencyKey identifies the
	// reward claim so a retried credit can be recognised by the backend.
	GivePoints(ctx context.Context, email string, points int, idempotencyKey string) error
}

type pointsRepository struct {
	client *Client
}

// NewPointsRepository creates a new PointsRepository
func NewPointsRepository(client *Client) PointsRepository {
	return &pointsRepository{client: client}
}

func (r *pointsRepository) GivePoints(ctx context.Context, email string, points int, idempotencyKey string) error {
	if idempotencyKey != "" {
		ctx = WithIdempotencyKey(ctx, idempotencyKey)
	}
	payload := models.GivePointsRequest{UserEmail: email, Points: points}
	return r.client.do(ctx, "give points", http.MethodPost, "/api/givePoints", payload, nil)
}
