package handler

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	apperrors "ecobin-portal/internal/errors"
	"ecobin-portal/internal/middleware"
	"ecobin-portal/internal/models"
	"ecobin-portal/internal/validator"
	"ecobin-portal/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
	validator.RegisterCustomValidators()
}

var (
	memberSession = &models.Session{ID: "sid-1", Email: "thandi@example.com", Role: "disposalMember", BackendToken: "backend-token"}
	adminSession  = &models.Session{ID: "sid-2", Email: "admin@example.com", Role: "admin", BackendToken: "backend-token"}
)

// withSession stands in for the auth middleware.
func withSession(session *models.Session) gin.HandlerFunc {
	return func(c *gin.Context) {
		if session != nil {
			c.Set(middleware.SessionKey, session)
		}
		c.Next()
	}
}

func serve(router *gin.Engine, method, path string, body io.Reader, contentType string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, body)
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func serveJSON(router *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	var raw []byte
	switch v := body.(type) {
	case nil:
	case string:
		raw = []byte(v)
	default:
		raw, _ = json.Marshal(v)
	}
	return serve(router, method, path, bytes.NewReader(raw), "application/json")
}

// decode returns the envelope with its data left raw.
func decode(t *testing.T, w *httptest.ResponseRecorder) (response.Response, json.RawMessage) {
	t.Helper()
	var env struct {
		response.Response
		Data json.RawMessage `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	return env.Response, env.Data
}

func TestStatusFor(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
	}{
		{"not logged in", apperrors.ErrNotLoggedIn, http.StatusUnauthorized},
		{"bin full", apperrors.ErrBinFull, http.StatusConflict},
		{"busy", apperrors.ErrDisposalBusy, http.StatusConflict},
		{"too large", apperrors.ErrImageTooLarge, http.StatusRequestEntityTooLarge},
		{"wrapped backend failure", apperrors.Wrap(apperrors.ErrFetchBinsFailed, &apperrors.BackendError{Op: "list bins", StatusCode: 500}), http.StatusBadGateway},
		{"unmapped", errors.New("redis down"), http.StatusInternalServerError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.status, statusFor(tt.err))
		})
	}
}
