package handler

import (
	"errors"
	"log"
	"net/http"

	apperrors "ecobin-portal/internal/errors"
	"ecobin-portal/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// errorStatuses maps user facing sentinels to HTTP status codes. The first
// match wins.
var errorStatuses = []struct {
	err    error
	status int
}{
	{apperrors.ErrNotLoggedIn, http.StatusUnauthorized},
	{apperrors.ErrSessionNotFound, http.StatusUnauthorized},
	{apperrors.ErrInvalidCredentials, http.StatusUnauthorized},
	{apperrors.ErrInsufficientRole, http.StatusForbidden},

	{apperrors.ErrDisposalNotFound, http.StatusNotFound},
	{apperrors.ErrRecordNotFound, http.StatusNotFound},
	{apperrors.ErrUserNotFound, http.StatusNotFound},

	{apperrors.ErrMissingFields, http.StatusBadRequest},
	{apperrors.ErrNoImage, http.StatusBadRequest},
	{apperrors.ErrInvalidImage, http.StatusBadRequest},
	{apperrors.ErrBinNotInSelection, http.StatusBadRequest},
	{apperrors.ErrImageTooLarge, http.StatusRequestEntityTooLarge},

	{apperrors.ErrBinFull, http.StatusConflict},
	{apperrors.ErrInvalidTransition, http.StatusConflict},
	{apperrors.ErrDisposalBusy, http.StatusConflict},

	{apperrors.ErrRegistrationFailed, http.StatusBadGateway},
	{apperrors.ErrProfileFetchFailed, http.StatusBadGateway},
	{apperrors.ErrFetchUsersFailed, http.StatusBadGateway},
	{apperrors.ErrDeleteUserFailed, http.StatusBadGateway},
	{apperrors.ErrFetchBinsFailed, http.StatusBadGateway},
	{apperrors.ErrDeleteBinFailed, http.StatusBadGateway},
	{apperrors.ErrAddBinFailed, http.StatusBadGateway},
	{apperrors.ErrFetchDepositsFailed, http.StatusBadGateway},
}

// statusFor returns the HTTP status for err. Unmapped errors are internal.
func statusFor(err error) int {
	for _, e := range errorStatuses {
		if errors.Is(err, e.err) {
			return e.status
		}
	}
	return http.StatusInternalServerError
}

// writeError renders err. Mapped errors carry their own message, anything
// else is logged and hidden behind a generic one.
func writeError(c *gin.Context, err error) {
	status := statusFor(err)
	if status == http.StatusInternalServerError {
		log.Printf("%s %s: %v", c.Request.Method, c.FullPath(), err)
		response.InternalError(c)
		return
	}
	response.Error(c, status, err.Error())
}

// missingField reports whether a binding failure is a required rule.
func missingField(err error) bool {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return false
	}
	for _, fe := range verrs {
		if fe.Tag() == "required" {
			return true
		}
	}
	return false
}
