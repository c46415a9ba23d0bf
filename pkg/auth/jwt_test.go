package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testKey = []byte("0123456789abcdef0123456789abcdef")

func TestNewJWTManager(t *testing.T) {
	manager := NewJWTManager(testKey, 15*time.Minute)

	assert.NotNil(t, manager)
	assert.Equal(t, 15*time.Minute, manager.Expiry())
}

func TestJWTManager_GenerateToken(t *testing.T) {
	manager := NewJWTManager(testKey, 15*time.Minute)

	t.Run("generates valid token for session", func(t *testing.T) {
		token, expiresAt, err := manager.GenerateToken("sid-1", "user@example.com", "disposalMember")

		require.NoError(t, err)
		assert.Regexp(t, `^[A-Za-z0-9_-]+\.[A-Za-z0-9_-]+\.[A-Za-z0-9_-]+$`, token)
		assert.WithinDuration(t, time.Now().Add(15*time.Minute), expiresAt, 2*time.Second)
	})

	t.Run("token carries session claims", func(t *testing.T) {
		token, _, err := manager.GenerateToken("sid-2", "admin@example.com", "admin")
		require.NoError(t, err)

		claims, err := manager.ValidateToken(token)

		require.NoError(t, err)
		assert.Equal(t, "sid-2", claims.SessionID)
		assert.Equal(t, "admin@example.com", claims.Email)
		assert.Equal(t, "admin", claims.Role)
		assert.Equal(t, Issuer, claims.Issuer)
	})
}

func TestJWTManager_ValidateToken(t *testing.T) {
	manager := NewJWTManager(testKey, 15*time.Minute)

	t.Run("rejects token signed with different key", func(t *testing.T) {
		other := NewJWTManager([]byte("another-key-another-key-another!!"), 15*time.Minute)
		token, _, _ := other.GenerateToken("sid", "user@example.com", "member")

		_, err := manager.ValidateToken(token)

		assert.Error(t, err)
	})

	t.Run("rejects expired token", func(t *testing.T) {
		past := NewJWTManager(testKey, time.Minute)
		past.now = func() time.Time { return time.Now().Add(-time.Hour) }
		token, _, _ := past.GenerateToken("sid", "user@example.com", "member")

		_, err := manager.ValidateToken(token)

		assert.ErrorIs(t, err, jwt.ErrTokenExpired)
	})

	t.Run("rejects token without session id", func(t *testing.T) {
		token, _, _ := manager.GenerateToken("", "user@example.com", "member")

		_, err := manager.ValidateToken(token)

		assert.ErrorIs(t, err, ErrMissingSessionID)
	})

	t.Run("rejects token from another issuer", func(t *testing.T) {
		claims := &Claims{
			SessionID: "sid",
			RegisteredClaims: jwt.RegisteredClaims{
				Issuer:    "someone-else",
				ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
			},
		}
		token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(testKey)
		require.NoError(t, err)

		_, err = manager.ValidateToken(token)

		assert.ErrorIs(t, err, jwt.ErrTokenInvalidIssuer)
	})

	t.Run("rejects none algorithm", func(t *testing.T) {
		claims := &Claims{SessionID: "sid", RegisteredClaims: jwt.RegisteredClaims{Issuer: Issuer}}
		token, err := jwt.NewWithClaims(jwt.SigningMethodNone, claims).SignedString(jwt.UnsafeAllowNoneSignatureType)
		require.NoError(t, err)

		_, err = manager.ValidateToken(token)

		assert.Error(t, err)
	})

	t.Run("rejects malformed token", func(t *testing.T) {
		_, err := manager.ValidateToken("not-a-token")

		assert.Error(t, err)
	})
}
