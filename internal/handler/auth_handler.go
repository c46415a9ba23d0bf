// Package handler contains HTTP handlers for the API.
package handler

import (
	apperrors "ecobin-portal/internal/errors"
	"ecobin-portal/internal/middleware"
	"ecobin-portal/internal/models"
	"ecobin-portal/internal/service"
	"ecobin-portal/pkg/response"

	"github.com/gin-gonic/gin"
)

// AuthHandler handles HTTP requests for authentication operations.
type AuthHandler struct {
	service service.AuthServicer
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(service service.AuthServicer) *AuthHandler {
	return &AuthHandler{service: service}
}

// Register godoc
// @Summary      Register a new account
// @Description  Create a disposal member account in the backend
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        request  body      models.RegisterRequest  true  "Account details"
// @Success      201      {object}  response.Response{data=models.RegisterResponse}
// @Failure      400      {object}  response.Response
// @Failure      502      {object}  response.Response
// @Router       /auth/register [post]
func (h *AuthHandler) Register(c *gin.Context) {
	var req models.RegisterRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		if missingField(err) {
			response.BadRequest(c, apperrors.ErrMissingFields.Error())
			return
		}
		response.BadRequest(c, err.Error())
		return
	}

	result, err := h.service.Register(c.Request.Context(), &req)
	if err != nil {
		writeError(c, err)
		return
	}

	response.Created(c, result)
}

// Login godoc
// @Summary      User login
// @Description  Authenticate against the backend and open a session
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        request  body      models.LoginRequest  true  "User credentials"
// @Success      200      {object}  response.Response{data=models.LoginResponse}
// @Failure      400      {object}  response.Response
// @Failure      401      {object}  response.Response
// @Failure      502      {object}  response.Response
// @Router       /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req models.LoginRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	result, err := h.service.Login(c.Request.Context(), &req)
	if err != nil {
		writeError(c, err)
		return
	}

	response.Success(c, result)
}

// Logout godoc
// @Summary      User logout
// @Description  Close the session and drop its view state
// @Tags         auth
// @Produce      json
// @Success      204      "No Content"
// @Failure      401      {object}  response.Response
// @Failure      500      {object}  response.Response
// @Security     BearerAuth
// @Router       /auth/logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	session, ok := requireSession(c)
	if !ok {
		return
	}

	if err := h.service.Logout(c.Request.Context(), session); err != nil {
		writeError(c, err)
		return
	}

	response.NoContent(c)
}

// requireSession returns the session set by the auth middleware, or writes
// 401 when there is none.
func requireSession(c *gin.Context) (*models.Session, bool) {
	session := middleware.GetSession(c)
	if session == nil {
		response.Unauthorized(c, apperrors.ErrNotLoggedIn.Error())
		return nil, false
	}
	return session, true
}
