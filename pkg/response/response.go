// Package response writes the JSON envelope every portal endpoint answers
// with: {"success", "data", "error"}.
package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Response is the envelope. Data and Error are omitted when empty.
type Response struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
}

const internalMessage = "internal server error"

func write(c *gin.Context, status int, data interface{}, message string) {
	c.JSON(status, Response{Success: message == "", Data: data, Error: message})
}

// Success answers 200 with data.
func Success(c *gin.Context, data interface{}) {
	write(c, http.StatusOK, data, "")
}

// Created answers 201 with the created record.
func Created(c *gin.Context, data interface{}) {
	write(c, http.StatusCreated, data, "")
}

// NoContent answers 204 with an empty body.
func NoContent(c *gin.Context) {
	c.Status(http.StatusNoContent)
}

// Error answers status with a user facing message and no data.
func Error(c *gin.Context, status int, message string) {
	write(c, status, nil, message)
}

// WithData answers status with both a view and a message, for operations
// that settle with a failure the client still has to render. An empty
// message is a success.
func WithData(c *gin.Context, status int, data interface{}, message string) {
	write(c, status, data, message)
}

func BadRequest(c *gin.Context, message string) {
	Error(c, http.StatusBadRequest, message)
}

func Unauthorized(c *gin.Context, message string) {
	Error(c, http.StatusUnauthorized, message)
}

func Forbidden(c *gin.Context, message string) {
	Error(c, http.StatusForbidden, message)
}

// InternalError hides the cause behind a generic message. Callers log it.
func InternalError(c *gin.Context) {
	Error(c, http.StatusInternalServerError, internalMessage)
}
