package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"ecobin-portal/internal/authz"
	"ecobin-portal/internal/cache"
	apperrors "ecobin-portal/internal/errors"
	"ecobin-portal/internal/models"
	"ecobin-portal/internal/repository"
	"ecobin-portal/pkg/auth"

	"github.com/google/uuid"
)

// Landing routes after login.
const (
	AdminLanding  = "/admin"
	MemberLanding = "/profile"
)

// RegistrationRole is assigned to every self-registered account.
const RegistrationRole = "disposalMember"

// RegistrationSucceeded is shown after a successful registration.
const RegistrationSucceeded = "Registration successful! You can now log in."

// AuthService handles authentication business logic.
type AuthService struct {
	authRepo   repository.AuthRepository
	userRepo   repository.UserRepository
	sessions   cache.SessionStore
	tokens     auth.TokenManager
	authorizer authz.Authorizer
	sessionTTL time.Duration
}

// AuthServiceConfig holds configuration for AuthService.
type AuthServiceConfig struct {
	AuthRepo   repository.AuthRepository
	UserRepo   repository.UserRepository
	Sessions   cache.SessionStore
	Tokens     auth.TokenManager
	Authorizer authz.Authorizer
	SessionTTL time.Duration
}

// NewAuthService creates a new AuthService.
func NewAuthService(cfg AuthServiceConfig) *AuthService {
	return &AuthService{
		authRepo:   cfg.AuthRepo,
		userRepo:   cfg.UserRepo,
		sessions:   cfg.Sessions,
		tokens:     cfg.Tokens,
		authorizer: cfg.Authorizer,
		sessionTTL: cfg.SessionTTL,
	}
}

// Login authenticates against the backend and opens a session. The role is
// taken from the backend user record, never from the request.
func (s *AuthService) Login(ctx context.Context, req *models.LoginRequest) (*models.LoginResponse, error) {
	backendToken, err := s.authRepo.Login(ctx, req.Email, req.Password)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInvalidCredentials, err)
	}

	user, err := s.userRepo.FindByEmail(repository.WithToken(ctx, backendToken), req.Email)
	if err != nil {
		if errors.Is(err, apperrors.ErrUserNotFound) {
			return nil, apperrors.Wrap(apperrors.ErrInvalidCredentials, err)
		}
		return nil, apperrors.Wrap(apperrors.ErrProfileFetchFailed, err)
	}

	now := time.Now()
	session := &models.Session{
		ID:           uuid.NewString(),
		Email:        user.Email,
		Role:         user.Role,
		BackendToken: backendToken,
		CreatedAt:    now,
	}

	token, expiresAt, err := s.tokens.GenerateToken(session.ID, session.Email, session.Role)
	if err != nil {
		return nil, fmt.Errorf("failed to sign session token: %w", err)
	}
	session.ExpiresAt = expiresAt

	if err := s.sessions.Create(ctx, session, s.sessionTTL); err != nil {
		return nil, fmt.Errorf("failed to store session: %w", err)
	}

	isAdmin := s.authorizer.IsAdmin(session.Role)
	redirect := MemberLanding
	if isAdmin {
		redirect = AdminLanding
	}

	return &models.LoginResponse{
		Token:     token,
		ExpiresAt: expiresAt.Unix(),
		Email:     session.Email,
		Role:      session.Role,
		IsAdmin:   isAdmin,
		Redirect:  redirect,
	}, nil
}

// Register creates a member account in the backend.
func (s *AuthService) Register(ctx context.Context, req *models.RegisterRequest) (*models.RegisterResponse, error) {
	for _, field := range []string{req.Name, req.Email, req.Password, req.PhoneNumber} {
		if strings.TrimSpace(field) == "" {
			return nil, apperrors.ErrMissingFields
		}
	}

	if err := s.userRepo.Create(ctx, req, RegistrationRole); err != nil {
		return nil, &apperrors.UserFacingError{
			Message: fmt.Errorf("%w %s", apperrors.ErrRegistrationFailed, registrationDetail(err)),
			Cause:   err,
		}
	}

	return &models.RegisterResponse{Message: RegistrationSucceeded}, nil
}

// Logout deletes the session and its view state.
func (s *AuthService) Logout(ctx context.Context, session *models.Session) error {
	if err := s.sessions.Delete(ctx, session.ID); err != nil {
		return err
	}
	log.Printf("Session %s closed for %s", session.ID, session.Email)
	return nil
}

func registrationDetail(err error) string {
	if be, ok := apperrors.AsBackendError(err); ok {
		return be.Detail()
	}
	return err.Error()
}
