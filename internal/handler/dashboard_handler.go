package handler

import (
	"ecobin-portal/internal/service"
	"ecobin-portal/pkg/response"

	"github.com/gin-gonic/gin"
)

// DashboardHandler serves the admin console.
type DashboardHandler struct {
	service service.DashboardServicer
}

// NewDashboardHandler creates a new DashboardHandler.
func NewDashboardHandler(service service.DashboardServicer) *DashboardHandler {
	return &DashboardHandler{service: service}
}

// GetDashboard godoc
// @Summary      Admin dashboard
// @Description  Bin capacity, points per bin and hourly deposit weight charts. A failed backend fetch renders its charts empty and adds a warning.
// @Tags         admin
// @Produce      json
// @Success      200  {object}  response.Response{data=models.DashboardView}
// @Failure      401  {object}  response.Response
// @Failure      403  {object}  response.Response
// @Security     BearerAuth
// @Router       /admin/dashboard [get]
func (h *DashboardHandler) GetDashboard(c *gin.Context) {
	session, ok := requireSession(c)
	if !ok {
		return
	}

	view, err := h.service.GetDashboard(c.Request.Context(), session)
	if err != nil {
		writeError(c, err)
		return
	}

	response.Success(c, view)
}
