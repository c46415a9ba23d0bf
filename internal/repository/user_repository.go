package repository

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	apperrors "ecobin-portal/internal/errors"
	"ecobin-portal/internal/models"
)

// UserRepository defines the interface for user data operations
type UserRepository interface {
	List(ctx context.Context) ([]models.User, error)
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	Create(ctx context.Context, req *models.RegisterRequest, role string) error
	Delete(ctx context.Context, id int) error
}

type userRepository struct {
	client *Client
}

// NewUserRepository creates a new UserRepository
func NewUserRepository(client *Client) UserRepository {
	return &userRepository{client: client}
}

// appUserPayload is the backend's AppUsers creation body.
type appUserPayload struct {
	Name        string `json:"Name"`
	Email       string `json:"email"`
	Password    string `json:"password"`
	PhoneNumber string `json:"phoneNumber"`
	Role        string `json:"Role"`
}

// List returns every registered user.
func (r *userRepository) List(ctx context.Context) ([]models.User, error) {
	var users []models.User
	if err := r.client.do(ctx, "list users", http.MethodGet, "/api/AppUsers", nil, &users); err != nil {
		if errors.Is(err, errEmptyBody) {
			return []models.User{}, nil
		}
		return nil, err
	}
	if users == nil {
		users = []models.User{}
	}
	return users, nil
}

// FindByEmail scans the user list for email. The backend has no lookup
// endpoint.
func (r *userRepository) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	users, err := r.List(ctx)
	if err != nil {
		return nil, err
	}
	for i := range users {
		if strings.EqualFold(users[i].Email, email) {
			return &users[i], nil
		}
	}
	return nil, apperrors.ErrUserNotFound
}

// Create registers a new account with role.
func (r *userRepository) Create(ctx context.Context, req *models.RegisterRequest, role string) error {
	payload := appUserPayload{
		Name:        req.Name,
		Email:       req.Email,
		Password:    req.Password,
		PhoneNumber: req.PhoneNumber,
		Role:        role,
	}
	return r.client.do(ctx, "register user", http.MethodPost, "/api/AppUsers", payload, nil)
}

// Delete removes a user by id.
func (r *userRepository) Delete(ctx context.Context, id int) error {
	return r.client.do(ctx, "delete user", http.MethodDelete, fmt.Sprintf("/api/deleteUser/%d", id), nil, nil)
}
