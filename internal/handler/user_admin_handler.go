package handler

import (
	"strconv"

	"ecobin-portal/internal/service"
	"ecobin-portal/pkg/response"

	"github.com/gin-gonic/gin"
)

// UserAdminHandler handles HTTP requests for user management.
type UserAdminHandler struct {
	service service.UserAdminServicer
}

// NewUserAdminHandler creates a new UserAdminHandler.
func NewUserAdminHandler(service service.UserAdminServicer) *UserAdminHandler {
	return &UserAdminHandler{service: service}
}

// ListUsers godoc
// @Summary      List users
// @Description  The user table is fetched on first view or refresh and searched by id afterwards
// @Tags         admin
// @Produce      json
// @Param        search   query     string  false  "ID substring"
// @Param        refresh  query     bool    false  "Refetch from the backend"
// @Success      200      {object}  response.Response{data=models.TableView[models.User]}
// @Failure      403      {object}  response.Response
// @Failure      502      {object}  response.Response
// @Security     BearerAuth
// @Router       /admin/users [get]
func (h *UserAdminHandler) ListUsers(c *gin.Context) {
	session, ok := requireSession(c)
	if !ok {
		return
	}

	search, refresh := tableQuery(c)
	view, err := h.service.List(c.Request.Context(), session, search, refresh)
	if err != nil {
		writeError(c, err)
		return
	}

	response.Success(c, view)
}

// GetUser godoc
// @Summary      Get user by ID
// @Tags         admin
// @Produce      json
// @Param        id   path      int  true  "User ID"
// @Success      200  {object}  response.Response{data=models.User}
// @Failure      400  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Security     BearerAuth
// @Router       /admin/users/{id} [get]
func (h *UserAdminHandler) GetUser(c *gin.Context) {
	session, ok := requireSession(c)
	if !ok {
		return
	}
	id, ok := parseID(c)
	if !ok {
		return
	}

	user, err := h.service.Get(c.Request.Context(), session, id)
	if err != nil {
		writeError(c, err)
		return
	}

	response.Success(c, user)
}

// DeleteUser godoc
// @Summary      Delete user
// @Description  Remove the account in the backend, then from the table
// @Tags         admin
// @Produce      json
// @Param        id   path      int  true  "User ID"
// @Success      200  {object}  response.Response
// @Failure      400  {object}  response.Response
// @Failure      502  {object}  response.Response
// @Security     BearerAuth
// @Router       /admin/users/{id} [delete]
func (h *UserAdminHandler) DeleteUser(c *gin.Context) {
	session, ok := requireSession(c)
	if !ok {
		return
	}
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.service.Delete(c.Request.Context(), session, id); err != nil {
		writeError(c, err)
		return
	}

	response.Success(c, gin.H{"message": "user deleted"})
}

// tableQuery reads the search and refresh parameters of a table listing.
func tableQuery(c *gin.Context) (string, bool) {
	refresh, _ := strconv.ParseBool(c.DefaultQuery("refresh", "false"))
	return c.Query("search"), refresh
}

// parseID reads the integer id path parameter, writing 400 if malformed.
func parseID(c *gin.Context) (int, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		response.BadRequest(c, "invalid id")
		return 0, false
	}
	return id, true
}
