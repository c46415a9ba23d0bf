package handler

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"testing"

	apperrors "ecobin-portal/internal/errors"
	"ecobin-portal/internal/models"
	"ecobin-portal/internal/service/mocks"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func authRouter(m *mocks.MockAuthService, session *models.Session) *gin.Engine {
	h := NewAuthHandler(m)
	router := gin.New()
	router.POST("/auth/register", h.Register)
	router.POST("/auth/login", h.Login)
	router.POST("/auth/logout", withSession(session), h.Logout)
	return router
}

func TestNewAuthHandler(t *testing.T) {
	mockService := &mocks.MockAuthService{}
	handler := NewAuthHandler(mockService)

	assert.NotNil(t, handler)
	assert.Equal(t, mockService, handler.service)
}

func TestAuthHandler_Register(t *testing.T) {
	valid := models.RegisterRequest{Name: "Thandi", Email: "thandi@example.com", Password: "secret123", PhoneNumber: "0821234567"}

	tests := []struct {
		name           string
		body           any
		mockSetup      func(*mocks.MockAuthService)
		expectedStatus int
		expectedError  string
	}{
		{
			name: "successful registration",
			body: valid,
			mockSetup: func(m *mocks.MockAuthService) {
				m.RegisterFunc = func(ctx context.Context, req *models.RegisterRequest) (*models.RegisterResponse, error) {
					return &models.RegisterResponse{Message: "Registration successful! You can now log in."}, nil
				}
			},
			expectedStatus: http.StatusCreated,
		},
		{
			name:           "missing field",
			body:           map[string]string{"name": "Thandi", "email": "thandi@example.com", "password": "x"},
			mockSetup:      func(m *mocks.MockAuthService) {},
			expectedStatus: http.StatusBadRequest,
			expectedError:  "All fields are required.",
		},
		{
			name:           "invalid JSON body",
			body:           "invalid json",
			mockSetup:      func(m *mocks.MockAuthService) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "backend refuses registration",
			body: valid,
			mockSetup: func(m *mocks.MockAuthService) {
				m.RegisterFunc = func(ctx context.Context, req *models.RegisterRequest) (*models.RegisterResponse, error) {
					return nil, &apperrors.UserFacingError{
						Message: fmt.Errorf("%w %s", apperrors.ErrRegistrationFailed, "Email already exists."),
						Cause:   &apperrors.BackendError{Op: "register user", StatusCode: 400},
					}
				}
			},
			expectedStatus: http.StatusBadGateway,
			expectedError:  "Registration failed. Email already exists.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := &mocks.MockAuthService{}
			tt.mockSetup(mockService)

			w := serveJSON(authRouter(mockService, nil), http.MethodPost, "/auth/register", tt.body)

			assert.Equal(t, tt.expectedStatus, w.Code)
			if tt.expectedError != "" {
				resp, _ := decode(t, w)
				assert.Equal(t, tt.expectedError, resp.Error)
			}
		})
	}
}

func TestAuthHandler_Login(t *testing.T) {
	creds := models.LoginRequest{Email: "thandi@example.com", Password: "secret123"}

	t.Run("returns token and landing route", func(t *testing.T) {
		mockService := &mocks.MockAuthService{
			LoginFunc: func(ctx context.Context, req *models.LoginRequest) (*models.LoginResponse, error) {
				assert.Equal(t, "thandi@example.com", req.Email)
				return &models.LoginResponse{Token: "session-token", Redirect: "/profile"}, nil
			},
		}

		w := serveJSON(authRouter(mockService, nil), http.MethodPost, "/auth/login", creds)

		require.Equal(t, http.StatusOK, w.Code)
		resp, data := decode(t, w)
		assert.True(t, resp.Success)
		var login models.LoginResponse
		require.NoError(t, json.Unmarshal(data, &login))
		assert.Equal(t, "session-token", login.Token)
		assert.Equal(t, "/profile", login.Redirect)
	})

	t.Run("invalid credentials", func(t *testing.T) {
		mockService := &mocks.MockAuthService{
			LoginFunc: func(ctx context.Context, req *models.LoginRequest) (*models.LoginResponse, error) {
				return nil, apperrors.Wrap(apperrors.ErrInvalidCredentials, &apperrors.BackendError{Op: "login", StatusCode: 401})
			},
		}

		w := serveJSON(authRouter(mockService, nil), http.MethodPost, "/auth/login", creds)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		resp, _ := decode(t, w)
		assert.Equal(t, "Login failed. Please check your credentials.", resp.Error)
	})

	t.Run("invalid email", func(t *testing.T) {
		w := serveJSON(authRouter(&mocks.MockAuthService{}, nil), http.MethodPost, "/auth/login", map[string]string{"email": "nope", "password": "x"})

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("session store failure hides detail", func(t *testing.T) {
		mockService := &mocks.MockAuthService{
			LoginFunc: func(ctx context.Context, req *models.LoginRequest) (*models.LoginResponse, error) {
				return nil, errors.New("failed to create session: redis down")
			},
		}

		w := serveJSON(authRouter(mockService, nil), http.MethodPost, "/auth/login", creds)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		resp, _ := decode(t, w)
		assert.Equal(t, "internal server error", resp.Error)
	})
}

func TestAuthHandler_Logout(t *testing.T) {
	t.Run("closes the session", func(t *testing.T) {
		var closed string
		mockService := &mocks.MockAuthService{
			LogoutFunc: func(ctx context.Context, session *models.Session) error {
				closed = session.ID
				return nil
			},
		}

		w := serveJSON(authRouter(mockService, memberSession), http.MethodPost, "/auth/logout", nil)

		assert.Equal(t, http.StatusNoContent, w.Code)
		assert.Equal(t, "sid-1", closed)
	})

	t.Run("without session", func(t *testing.T) {
		w := serveJSON(authRouter(&mocks.MockAuthService{}, nil), http.MethodPost, "/auth/logout", nil)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("store failure", func(t *testing.T) {
		mockService := &mocks.MockAuthService{
			LogoutFunc: func(ctx context.Context, session *models.Session) error {
				return errors.New("redis down")
			},
		}

		w := serveJSON(authRouter(mockService, memberSession), http.MethodPost, "/auth/logout", nil)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
	})
}
