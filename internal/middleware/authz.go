package middleware

import (
	"ecobin-portal/internal/authz"
	apperrors "ecobin-portal/internal/errors"
	"ecobin-portal/pkg/response"

	"github.com/gin-gonic/gin"
)

// RequireAction returns a middleware that checks the session role may
// perform action. It must run after Auth.
func RequireAction(authorizer authz.Authorizer, action string) gin.HandlerFunc {
	return func(c *gin.Context) {
		session := GetSession(c)
		if session == nil {
			response.Unauthorized(c, apperrors.ErrNotLoggedIn.Error())
			c.Abort()
			return
		}

		if !authorizer.CanPerform(session.Role, action) {
			response.Forbidden(c, apperrors.ErrInsufficientRole.Error())
			c.Abort()
			return
		}

		c.Next()
	}
}
