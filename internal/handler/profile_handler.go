package handler

import (
	"ecobin-portal/internal/middleware"
	"ecobin-portal/internal/service"
	"ecobin-portal/pkg/response"

	"github.com/gin-gonic/gin"
)

// ProfileHandler serves the landing and profile views.
type ProfileHandler struct {
	profiles service.ProfileServicer
	home     service.HomeServicer
}

// NewProfileHandler creates a new ProfileHandler.
func NewProfileHandler(profiles service.ProfileServicer, home service.HomeServicer) *ProfileHandler {
	return &ProfileHandler{profiles: profiles, home: home}
}

// GetHome godoc
// @Summary      Landing page
// @Description  Public landing view. Navigation depends on whether a valid session is presented.
// @Tags         views
// @Produce      json
// @Success      200  {object}  response.Response{data=models.HomeView}
// @Router       /home [get]
func (h *ProfileHandler) GetHome(c *gin.Context) {
	response.Success(c, h.home.GetHome(middleware.GetSession(c)))
}

// GetProfile godoc
// @Summary      Profile summary
// @Description  Points and links for members, tool links for admins
// @Tags         views
// @Produce      json
// @Success      200  {object}  response.Response{data=models.ProfileView}
// @Failure      401  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Failure      502  {object}  response.Response
// @Security     BearerAuth
// @Router       /profile [get]
func (h *ProfileHandler) GetProfile(c *gin.Context) {
	session, ok := requireSession(c)
	if !ok {
		return
	}

	profile, err := h.profiles.GetProfile(c.Request.Context(), session)
	if err != nil {
		writeError(c, err)
		return
	}

	response.Success(c, profile)
}
