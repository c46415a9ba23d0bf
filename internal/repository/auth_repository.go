package repository

import (
	"context"
	"errors"
	"net/http"
)

// AuthRepository authenticates credentials against the backend.
type AuthRepository interface {
	// Login returns the backend token. The token is empty when the backend
	// accepted the credentials without issuing one.
	Login(ctx context.Context, email, password string) (string, error)
}

type authRepository struct {
	client *Client
}

// NewAuthRepository creates a new AuthRepository
func NewAuthRepository(client *Client) AuthRepository {
	return &authRepository{client: client}
}

type loginPayload struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginResult struct {
	Token string `json:"Token"`
}

func (r *authRepository) Login(ctx context.Context, email, password string) (string, error) {
	var result loginResult
	err := r.client.do(ctx, "login", http.MethodPost, "/api/login", loginPayload{Email: email, Password: password}, &result)
	if errors.Is(err, errEmptyBody) {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return result.Token, nil
}
