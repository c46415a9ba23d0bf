package auth

import "time"

//go:generate mockgen -destination=mocks/mock_jwt.go -package=mocks ecobin-portal/pkg/auth TokenManager

// TokenManager defines the interface for session token operations.
type TokenManager interface {
	// GenerateToken signs a token for a session. It returns the token and its expiry.
	GenerateToken(sessionID, email, role string) (string, time.Time, error)
	// ValidateToken parses and validates a token, returning the claims if valid.
	ValidateToken(tokenString string) (*Claims, error)
}

// Ensure JWTManager implements TokenManager interface
var _ TokenManager = (*JWTManager)(nil)
