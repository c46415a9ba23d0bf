package handler

import (
	"ecobin-portal/internal/models"
	"ecobin-portal/internal/service"
	"ecobin-portal/pkg/response"

	"github.com/gin-gonic/gin"
)

// BinAdminHandler handles HTTP requests for bin management.
type BinAdminHandler struct {
	service service.BinAdminServicer
}

// NewBinAdminHandler creates a new BinAdminHandler.
func NewBinAdminHandler(service service.BinAdminServicer) *BinAdminHandler {
	return &BinAdminHandler{service: service}
}

// ListBins godoc
// @Summary      List bins
// @Tags         admin
// @Produce      json
// @Param        search   query     string  false  "ID substring"
// @Param        refresh  query     bool    false  "Refetch from the backend"
// @Success      200      {object}  response.Response{data=models.TableView[models.Bin]}
// @Failure      403      {object}  response.Response
// @Failure      502      {object}  response.Response
// @Security     BearerAuth
// @Router       /admin/bins [get]
func (h *BinAdminHandler) ListBins(c *gin.Context) {
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

// GetBin godoc
// @Summary      Get bin by ID
// @Tags         admin
// @Produce      json
// @Param        id   path      int  true  "Bin ID"
// @Success      200  {object}  response.Response{data=models.Bin}
// @Failure      400  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Security     BearerAuth
// @Router       /admin/bins/{id} [get]
func (h *BinAdminHandler) GetBin(c *gin.Context) {
	session, ok := requireSession(c)
	if !ok {
		return
	}
	id, ok := parseID(c)
	if !ok {
		return
	}

	bin, err := h.service.Get(c.Request.Context(), session, id)
	if err != nil {
		writeError(c, err)
		return
	}

	response.Success(c, bin)
}

// CreateBin godoc
// @Summary      Add a bin
// @Description  Capacity defaults to 2000 and current weight to 0
// @Tags         admin
// @Accept       json
// @Produce      json
// @Param        request  body      models.CreateBinRequest  true  "Bin details"
// @Success      201      {object}  response.Response{data=models.Bin}
// @Failure      400      {object}  response.Response
// @Failure      502      {object}  response.Response
// @Security     BearerAuth
// @Router       /admin/bins [post]
func (h *BinAdminHandler) CreateBin(c *gin.Context) {
	session, ok := requireSession(c)
	if !ok {
		return
	}

	var req models.CreateBinRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	bin, err := h.service.Create(c.Request.Context(), session, &req)
	if err != nil {
		writeError(c, err)
		return
	}

	response.Created(c, bin)
}

// DeleteBin godoc
// @Summary      Delete bin
// @Tags         admin
// @Produce      json
// @Param        id   path      int  true  "Bin ID"
// @Success      200  {object}  response.Response
// @Failure      400  {object}  response.Response
// @Failure      502  {object}  response.Response
// @Security     BearerAuth
// @Router       /admin/bins/{id} [delete]
func (h *BinAdminHandler) DeleteBin(c *gin.Context) {
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

	response.Success(c, gin.H{"message": "bin deleted"})
}
