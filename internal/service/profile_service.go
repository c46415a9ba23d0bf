package service

import (
	"context"
	"errors"

	"ecobin-portal/internal/authz"
	apperrors "ecobin-portal/internal/errors"
	"ecobin-portal/internal/models"
	"ecobin-portal/internal/repository"
)

// Navigation entries shared by the views.
var (
	linkHome     = models.Link{Label: "Home", Route: "/"}
	linkLogin    = models.Link{Label: "Login", Route: "/login"}
	linkRegister = models.Link{Label: "Register", Route: "/register"}
	linkProfile  = models.Link{Label: "Profile", Route: "/profile"}
	linkDispose  = models.Link{Label: "Dispose", Route: "/dustbininteraction"}
	linkAdmin    = models.Link{Label: "Admin", Route: "/admin"}
	linkLogout   = models.Link{Label: "Logout", Route: "/logout"}
)

// adminTools are the cards shown on an administrator's profile.
var adminTools = []models.Link{
	{Label: "Manage Users", Route: "/users"},
	{Label: "Analytics", Route: "/admin"},
	{Label: "Bin Status", Route: "/bins"},
}

// ProfileService builds the logged-in user's summary.
type ProfileService struct {
	userRepo   repository.UserRepository
	authorizer authz.Authorizer
}

// NewProfileService creates a new ProfileService.
func NewProfileService(userRepo repository.UserRepository, authorizer authz.Authorizer) *ProfileService {
	return &ProfileService{userRepo: userRepo, authorizer: authorizer}
}

// GetProfile finds the session user in the backend user list.
func (s *ProfileService) GetProfile(ctx context.Context, session *models.Session) (*models.ProfileView, error) {
	ctx = repository.WithToken(ctx, session.BackendToken)

	user, err := s.userRepo.FindByEmail(ctx, session.Email)
	if err != nil {
		if errors.Is(err, apperrors.ErrUserNotFound) {
			return nil, err
		}
		return nil, apperrors.Wrap(apperrors.ErrProfileFetchFailed, err)
	}

	if s.authorizer.IsAdmin(session.Role) {
		return &models.ProfileView{
			User:     *user,
			IsAdmin:  true,
			Title:    "Admin Dashboard",
			Subtitle: "Welcome, Administrator. Here are your tools:",
			Tools:    adminTools,
			Nav:      []models.Link{linkHome, linkLogout},
		}, nil
	}

	points := user.Points
	return &models.ProfileView{
		User:     *user,
		Title:    "Hi, " + user.Name + "!",
		Subtitle: "Here's your profile summary:",
		Points:   &points,
		Actions:  []models.Link{{Label: "Deposit Waste", Route: linkDispose.Route}, {Label: "Go Home", Route: linkHome.Route}},
		Nav:      []models.Link{linkHome, linkDispose, linkLogout},
	}, nil
}
