package response

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func setupTestContext() (*gin.Context, *httptest.ResponseRecorder) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	return c, w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) Response {
	t.Helper()
	var resp Response
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp
}

func TestSuccessResponses(t *testing.T) {
	tests := []struct {
		name   string
		send   func(c *gin.Context)
		status int
	}{
		{"success", func(c *gin.Context) { Success(c, gin.H{"bins": 3}) }, http.StatusOK},
		{"created", func(c *gin.Context) { Created(c, gin.H{"id": 7}) }, http.StatusCreated},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, w := setupTestContext()

			tt.send(c)

			assert.Equal(t, tt.status, w.Code)
			resp := decode(t, w)
			assert.True(t, resp.Success)
			assert.NotNil(t, resp.Data)
			assert.Empty(t, resp.Error)
		})
	}
}

func TestNoContent(t *testing.T) {
	router := gin.New()
	router.GET("/test", func(c *gin.Context) {
		NoContent(c)
	})

	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Empty(t, w.Body.String())
}

func TestErrorResponses(t *testing.T) {
	const binFull = "Selected bin is full. Please choose another bin."

	tests := []struct {
		name    string
		send    func(c *gin.Context)
		status  int
		message string
	}{
		{"error", func(c *gin.Context) { Error(c, http.StatusTeapot, "I'm a teapot") }, http.StatusTeapot, "I'm a teapot"},
		{"bad request", func(c *gin.Context) { BadRequest(c, "All fields are required.") }, http.StatusBadRequest, "All fields are required."},
		{"unauthorized", func(c *gin.Context) { Unauthorized(c, "User not logged in.") }, http.StatusUnauthorized, "User not logged in."},
		{"forbidden", func(c *gin.Context) { Forbidden(c, "insufficient permissions") }, http.StatusForbidden, "insufficient permissions"},
		{"conflict status", func(c *gin.Context) { Error(c, http.StatusConflict, binFull) }, http.StatusConflict, binFull},
		{"internal error", func(c *gin.Context) { InternalError(c) }, http.StatusInternalServerError, "internal server error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, w := setupTestContext()

			tt.send(c)

			assert.Equal(t, tt.status, w.Code)
			resp := decode(t, w)
			assert.False(t, resp.Success)
			assert.Nil(t, resp.Data)
			assert.Equal(t, tt.message, resp.Error)
		})
	}
}

func TestWithData(t *testing.T) {
	t.Run("partial failure carries data and error", func(t *testing.T) {
		c, w := setupTestContext()

		WithData(c, http.StatusOK, gin.H{"state": "error"}, "Failed to classify the item.")

		assert.Equal(t, http.StatusOK, w.Code)
		resp := decode(t, w)
		assert.False(t, resp.Success)
		assert.NotNil(t, resp.Data)
		assert.Equal(t, "Failed to classify the item.", resp.Error)
	})

	t.Run("empty message is a success", func(t *testing.T) {
		c, w := setupTestContext()

		WithData(c, http.StatusOK, gin.H{"state": "done"}, "")

		resp := decode(t, w)
		assert.True(t, resp.Success)
		assert.Empty(t, resp.Error)
	})
}

func TestResponseJSONSerialization(t *testing.T) {
	tests := []struct {
		name     string
		response Response
		expected string
	}{
		{"success with data", Response{Success: true, Data: map[string]string{"key": "value"}}, `{"success":true,"data":{"key":"value"}}`},
		{"error response", Response{Error: "something went wrong"}, `{"success":false,"error":"something went wrong"}`},
		{"success without data", Response{Success: true}, `{"success":true}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, err := json.Marshal(tt.response)
			assert.NoError(t, err)
			assert.JSONEq(t, tt.expected, string(data))
		})
	}
}
