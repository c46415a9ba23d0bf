package service

import (
	"context"
	"net/http"
	"testing"

	"ecobin-portal/internal/authz"
	apperrors "ecobin-portal/internal/errors"
	"ecobin-portal/internal/models"
	"ecobin-portal/internal/repository"
	repomocks "ecobin-portal/internal/repository/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestProfileService_GetProfile(t *testing.T) {
	authorizer := authz.NewRoleAuthorizer([]string{"admin"})
	user := &models.User{ID: 7, Name: "Thandi", Email: "thandi@example.com", Points: 40}

	t.Run("member sees points and disposal link", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		userRepo := repomocks.NewMockUserRepository(ctrl)
		userRepo.EXPECT().FindByEmail(gomock.Any(), "thandi@example.com").
			DoAndReturn(func(ctx context.Context, email string) (*models.User, error) {
				assert.Equal(t, "backend-token", repository.TokenFromContext(ctx))
				return user, nil
			})
		svc := NewProfileService(userRepo, authorizer)

		view, err := svc.GetProfile(context.Background(), &models.Session{Email: user.Email, Role: "disposalMember", BackendToken: "backend-token"})

		require.NoError(t, err)
		assert.False(t, view.IsAdmin)
		assert.Equal(t, "Hi, Thandi!", view.Title)
		require.NotNil(t, view.Points)
		assert.Equal(t, 40, *view.Points)
		assert.Empty(t, view.Tools)
		assert.Contains(t, view.Nav, linkDispose)
	})

	t.Run("admin sees tools", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		userRepo := repomocks.NewMockUserRepository(ctrl)
		userRepo.EXPECT().FindByEmail(gomock.Any(), gomock.Any()).Return(user, nil)
		svc := NewProfileService(userRepo, authorizer)

		view, err := svc.GetProfile(context.Background(), &models.Session{Email: user.Email, Role: "admin"})

		require.NoError(t, err)
		assert.True(t, view.IsAdmin)
		assert.Nil(t, view.Points)
		routes := make([]string, 0, len(view.Tools))
		for _, l := range view.Tools {
			routes = append(routes, l.Route)
		}
		assert.Equal(t, []string{"/users", "/admin", "/bins"}, routes)
		assert.NotContains(t, view.Nav, linkDispose)
	})

	t.Run("user not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		userRepo := repomocks.NewMockUserRepository(ctrl)
		userRepo.EXPECT().FindByEmail(gomock.Any(), gomock.Any()).Return(nil, apperrors.ErrUserNotFound)
		svc := NewProfileService(userRepo, authorizer)

		_, err := svc.GetProfile(context.Background(), &models.Session{Email: "ghost@example.com"})

		assert.ErrorIs(t, err, apperrors.ErrUserNotFound)
		assert.Equal(t, "User not found.", err.Error())
	})

	t.Run("backend failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		userRepo := repomocks.NewMockUserRepository(ctrl)
		userRepo.EXPECT().FindByEmail(gomock.Any(), gomock.Any()).
			Return(nil, &apperrors.BackendError{Op: "list users", StatusCode: http.StatusInternalServerError})
		svc := NewProfileService(userRepo, authorizer)

		_, err := svc.GetProfile(context.Background(), &models.Session{Email: user.Email})

		assert.ErrorIs(t, err, apperrors.ErrProfileFetchFailed)
		assert.Equal(t, "Failed to fetch user details.", err.Error())
	})
}

func TestHomeService_GetHome(t *testing.T) {
	svc := NewHomeService(authz.NewRoleAuthorizer([]string{"admin"}))

	t.Run("anonymous visitor", func(t *testing.T) {
		view := svc.GetHome(nil)

		assert.False(t, view.LoggedIn)
		assert.Equal(t, []models.Link{linkLogin, linkRegister}, view.Nav)
		assert.Len(t, view.Features, 4)
		assert.Equal(t, "Welcome to SmartBin", view.Title)
	})

	t.Run("member", func(t *testing.T) {
		view := svc.GetHome(&models.Session{Role: "disposalMember"})

		assert.True(t, view.LoggedIn)
		assert.Equal(t, []models.Link{linkProfile, linkDispose, linkLogout}, view.Nav)
	})

	t.Run("admin", func(t *testing.T) {
		view := svc.GetHome(&models.Session{Role: "admin"})

		assert.True(t, view.LoggedIn)
		assert.Contains(t, view.Nav, linkAdmin)
	})
}
