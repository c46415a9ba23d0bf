package handler

import (
	"errors"
	"io"
	"net/http"
	"strings"

	apperrors "ecobin-portal/internal/errors"
	"ecobin-portal/internal/models"
	"ecobin-portal/internal/service"
	"ecobin-portal/pkg/response"

	"github.com/gin-gonic/gin"
)

// ImageField is the multipart field carrying the item image.
const ImageField = "image"

// multipartOverhead leaves room for boundaries and part headers on top of
// the image itself.
const multipartOverhead = 64 << 10

// DisposalHandler handles HTTP requests for the disposal workflow.
type DisposalHandler struct {
	service      service.DisposalServicer
	maxImageSize int64
}

// NewDisposalHandler creates a new DisposalHandler. Uploads larger than
// maxImageSize are refused; zero disables the limit.
func NewDisposalHandler(service service.DisposalServicer, maxImageSize int64) *DisposalHandler {
	return &DisposalHandler{service: service, maxImageSize: maxImageSize}
}

// Create godoc
// @Summary      Start a disposal
// @Description  Upload the item image and start a disposal. The response carries an inline preview.
// @Tags         disposals
// @Accept       multipart/form-data
// @Produce      json
// @Param        image  formData  file  true  "Item image"
// @Success      201    {object}  response.Response{data=models.DisposalView}
// @Failure      400    {object}  response.Response
// @Failure      401    {object}  response.Response
// @Failure      413    {object}  response.Response
// @Security     BearerAuth
// @Router       /disposals [post]
func (h *DisposalHandler) Create(c *gin.Context) {
	session, ok := requireSession(c)
	if !ok {
		return
	}

	upload, err := h.readUpload(c)
	if err != nil {
		writeError(c, err)
		return
	}

	view, err := h.service.Create(c.Request.Context(), session, upload)
	if err != nil {
		writeError(c, err)
		return
	}

	response.Created(c, view)
}

// ReplaceImage godoc
// @Summary      Replace the item image
// @Description  Select a new image for a disposal that is neither in flight nor showing the bin modal
// @Tags         disposals
// @Accept       multipart/form-data
// @Produce      json
// @Param        id     path      string  true  "Disposal ID"
// @Param        image  formData  file    true  "Item image"
// @Success      200    {object}  response.Response{data=models.DisposalView}
// @Failure      400    {object}  response.Response
// @Failure      404    {object}  response.Response
// @Failure      409    {object}  response.Response
// @Failure      413    {object}  response.Response
// @Security     BearerAuth
// @Router       /disposals/{id}/image [put]
func (h *DisposalHandler) ReplaceImage(c *gin.Context) {
	session, ok := requireSession(c)
	if !ok {
		return
	}

	upload, err := h.readUpload(c)
	if err != nil {
		writeError(c, err)
		return
	}

	view, err := h.service.ReplaceImage(c.Request.Context(), session, c.Param("id"), upload)
	if err != nil {
		writeError(c, err)
		return
	}

	response.Success(c, view)
}

// Get godoc
// @Summary      Get a disposal
// @Description  Current state, outcome, messages and bin-opening cue. A held image is linked with a presigned URL.
// @Tags         disposals
// @Produce      json
// @Param        id   path      string  true  "Disposal ID"
// @Success      200  {object}  response.Response{data=models.DisposalView}
// @Failure      404  {object}  response.Response
// @Security     BearerAuth
// @Router       /disposals/{id} [get]
func (h *DisposalHandler) Get(c *gin.Context) {
	session, ok := requireSession(c)
	if !ok {
		return
	}

	view, err := h.service.Get(c.Request.Context(), session, c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}

	response.Success(c, view)
}

// OpenBins godoc
// @Summary      Open the bin selection
// @Description  Fetch the bins once and open the selection modal
// @Tags         disposals
// @Produce      json
// @Param        id   path      string  true  "Disposal ID"
// @Success      200  {object}  response.Response{data=models.BinSelectionView}
// @Failure      400  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Failure      409  {object}  response.Response
// @Failure      502  {object}  response.Response
// @Security     BearerAuth
// @Router       /disposals/{id}/bins [post]
func (h *DisposalHandler) OpenBins(c *gin.Context) {
	session, ok := requireSession(c)
	if !ok {
		return
	}

	selection, err := h.service.OpenBins(c.Request.Context(), session, c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}

	response.Success(c, selection)
}

// SearchBins godoc
// @Summary      Search the bin selection
// @Description  Filter the open selection by location, case-insensitive
// @Tags         disposals
// @Produce      json
// @Param        id      path      string  true   "Disposal ID"
// @Param        search  query     string  false  "Location substring"
// @Success      200     {object}  response.Response{data=models.BinSelectionView}
// @Failure      404     {object}  response.Response
// @Failure      409     {object}  response.Response
// @Security     BearerAuth
// @Router       /disposals/{id}/bins [get]
func (h *DisposalHandler) SearchBins(c *gin.Context) {
	session, ok := requireSession(c)
	if !ok {
		return
	}

	selection, err := h.service.SearchBins(c.Request.Context(), session, c.Param("id"), c.Query("search"))
	if err != nil {
		writeError(c, err)
		return
	}

	response.Success(c, selection)
}

// CloseBins godoc
// @Summary      Close the bin selection
// @Tags         disposals
// @Produce      json
// @Param        id   path      string  true  "Disposal ID"
// @Success      200  {object}  response.Response{data=models.DisposalView}
// @Failure      404  {object}  response.Response
// @Failure      409  {object}  response.Response
// @Security     BearerAuth
// @Router       /disposals/{id}/bins [delete]
func (h *DisposalHandler) CloseBins(c *gin.Context) {
	session, ok := requireSession(c)
	if !ok {
		return
	}

	view, err := h.service.CloseBins(c.Request.Context(), session, c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}

	response.Success(c, view)
}

// SelectBin godoc
// @Summary      Select a bin
// @Description  Classify the item, deposit it and credit the reward. Chain failures settle the disposal and are reported in the view.
// @Tags         disposals
// @Accept       json
// @Produce      json
// @Param        id       path      string                   true  "Disposal ID"
// @Param        request  body      models.SelectBinRequest  true  "Selected bin"
// @Success      200      {object}  response.Response{data=models.DisposalView}
// @Failure      400      {object}  response.Response
// @Failure      404      {object}  response.Response
// @Failure      409      {object}  response.Response{data=models.DisposalView}
// @Security     BearerAuth
// @Router       /disposals/{id}/select [post]
func (h *DisposalHandler) SelectBin(c *gin.Context) {
	session, ok := requireSession(c)
	if !ok {
		return
	}

	var req models.SelectBinRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	view, err := h.service.SelectBin(c.Request.Context(), session, c.Param("id"), req.BinID)
	if err != nil {
		if view != nil {
			response.WithData(c, statusFor(err), view, err.Error())
			return
		}
		writeError(c, err)
		return
	}

	response.Success(c, view)
}

// readUpload reads the image part of a multipart request.
func (h *DisposalHandler) readUpload(c *gin.Context) (*service.ImageUpload, error) {
	if h.maxImageSize > 0 {
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, h.maxImageSize+multipartOverhead)
	}

	fh, err := c.FormFile(ImageField)
	if err != nil {
		if tooLarge(err) {
			return nil, apperrors.ErrImageTooLarge
		}
		return nil, apperrors.ErrNoImage
	}
	if h.maxImageSize > 0 && fh.Size > h.maxImageSize {
		return nil, apperrors.ErrImageTooLarge
	}

	f, err := fh.Open()
	if err != nil {
		return nil, err
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return nil, err
	}

	contentType := fh.Header.Get("Content-Type")
	if contentType == "" || contentType == "application/octet-stream" {
		contentType = http.DetectContentType(data)
	}
	return &service.ImageUpload{Filename: fh.Filename, ContentType: contentType, Data: data}, nil
}

func tooLarge(err error) bool {
	var maxErr *http.MaxBytesError
	return errors.As(err, &maxErr) || strings.Contains(err.Error(), "request body too large")
}
