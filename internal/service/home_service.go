package service

import (
	"ecobin-portal/internal/authz"
	"ecobin-portal/internal/models"
)

var homeFeatures = []string{
	"Register and manage your account",
	"Dispose of waste using smart bins",
	"Track your bin usage and points",
	"Earn rewards for proper disposal",
}

// HomeService builds the public landing page.
type HomeService struct {
	authorizer authz.Authorizer
}

// NewHomeService creates a new HomeService.
func NewHomeService(authorizer authz.Authorizer) *HomeService {
	return &HomeService{authorizer: authorizer}
}

// GetHome returns the landing view. session is nil for anonymous visitors.
func (s *HomeService) GetHome(session *models.Session) *models.HomeView {
	view := &models.HomeView{
		Title:    "Welcome to SmartBin",
		Lead:     "Smart Waste Management at Your Fingertips.",
		Features: homeFeatures,
		Actions:  []models.Link{linkRegister, linkLogin},
	}

	switch {
	case session == nil:
		view.Nav = []models.Link{linkLogin, linkRegister}
	case s.authorizer.IsAdmin(session.Role):
		view.LoggedIn = true
		view.Nav = []models.Link{linkProfile, linkAdmin, linkLogout}
	default:
		view.LoggedIn = true
		view.Nav = []models.Link{linkProfile, linkDispose, linkLogout}
	}
	return view
}
