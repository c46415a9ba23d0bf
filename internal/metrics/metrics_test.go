package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func TestMiddleware_CountsByRoute(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := New(reg)

	router := gin.New()
	router.Use(m.Middleware())
	router.GET("/bins/:id", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	for _, path := range []string{"/bins/1", "/bins/2", "/missing"} {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
	}

	assert.Equal(t, 2.0, testutil.ToFloat64(m.requests.WithLabelValues(http.MethodGet, "/bins/:id", "200")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.requests.WithLabelValues(http.MethodGet, "unmatched", "404")))

	count, err := testutil.GatherAndCount(reg, "ecobin_portal_http_request_duration_seconds")
	require.NoError(t, err)
	assert.Equal(t, 2, count)
}

func TestOutcomeCounters(t *testing.T) {
	m := New(prometheus.NewRegistry())

	m.DisposalSettled("success")
	m.DisposalSettled("success")
	m.DisposalSettled("rejected")
	m.RewardCredited("credited")
	m.RewardRetried("failed")

	assert.Equal(t, 2.0, testutil.ToFloat64(m.disposals.WithLabelValues("success")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.disposals.WithLabelValues("rejected")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.rewards.WithLabelValues("credited")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.rewards.WithLabelValues("retry_failed")))
}
