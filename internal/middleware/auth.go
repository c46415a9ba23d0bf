// Package middleware provides HTTP middleware for the API.
package middleware

import (
	"log"
	"strings"
	"time"

	"ecobin-portal/internal/cache"
	apperrors "ecobin-portal/internal/errors"
	"ecobin-portal/internal/models"
	"ecobin-portal/pkg/auth"
	"ecobin-portal/pkg/response"

	"github.com/gin-gonic/gin"
)

// Context keys for storing session data
const (
	SessionKey = "session"
)

// Auth returns a middleware that validates the session token and the live
// session behind it.
func Auth(tokens auth.TokenManager, sessions cache.SessionStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, ok := bearerToken(c.GetHeader("Authorization"))
		if !ok {
			response.Unauthorized(c, "missing or invalid authorization header")
			c.Abort()
			return
		}

		session, err := loadSession(c, tokens, sessions, token)
		if err != nil {
			response.InternalError(c)
			c.Abort()
			return
		}
		if session == nil {
			response.Unauthorized(c, apperrors.ErrSessionNotFound.Error())
			c.Abort()
			return
		}

		c.Set(SessionKey, session)
		c.Next()
	}
}

// OptionalAuth attaches the session when a valid token is presented and lets
// anonymous requests through.
func OptionalAuth(tokens auth.TokenManager, sessions cache.SessionStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		if token, ok := bearerToken(c.GetHeader("Authorization")); ok {
			session, err := loadSession(c, tokens, sessions, token)
			if err != nil {
				log.Printf("optional auth: session lookup failed: %v", err)
			}
			if session != nil {
				c.Set(SessionKey, session)
			}
		}
		c.Next()
	}
}

// loadSession returns nil without error when the token or session is not
// valid.
func loadSession(c *gin.Context, tokens auth.TokenManager, sessions cache.SessionStore, token string) (*models.Session, error) {
	claims, err := tokens.ValidateToken(token)
	if err != nil {
		return nil, nil
	}

	session, err := sessions.Get(c.Request.Context(), claims.SessionID)
	if err != nil {
		return nil, err
	}
	if session == nil || session.Expired(time.Now()) {
		return nil, nil
	}
	return session, nil
}

func bearerToken(header string) (string, bool) {
	parts := strings.Split(header, " ")
	if len(parts) != 2 || parts[0] != "Bearer" || parts[1] == "" {
		return "", false
	}
	return parts[1], true
}

// GetSession retrieves the session from the context.
// Returns nil if not found.
func GetSession(c *gin.Context) *models.Session {
	session, exists := c.Get(SessionKey)
	if !exists {
		return nil
	}
	return session.(*models.Session)
}
