// Package metrics exposes Prometheus collectors for the portal.
package metrics

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "ecobin_portal"

// Metrics holds the collectors registered for the portal.
type Metrics struct {
	requests        *prometheus.CounterVec
	requestDuration *prometheus.HistogramVec
	disposals       *prometheus.CounterVec
	rewards         *prometheus.CounterVec
}

// New creates the collectors and registers them with reg.
func New(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "HTTP requests handled, by route and status.",
		}, []string{"method", "route", "status"}),
		requestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency, by route.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route"}),
		disposals: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "disposals_settled_total",
			Help:      "Disposal workflows settled, by outcome.",
		}, []string{"outcome"}),
		rewards: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "reward_credits_total",
			Help:      "Reward credit attempts, by outcome.",
		}, []string{"outcome"}),
	}
	reg.MustRegister(m.requests, m.requestDuration, m.disposals, m.rewards)
	return m
}

// Middleware records request counts and latency per matched route.
func (m *Metrics) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		method := c.Request.Method
		m.requests.WithLabelValues(method, route, strconv.Itoa(c.Writer.Status())).Inc()
		m.requestDuration.WithLabelValues(method, route).Observe(time.Since(start).Seconds())
	}
}

// DisposalSettled counts a disposal reaching done or error.
func (m *Metrics) DisposalSettled(outcome string) {
	m.disposals.WithLabelValues(outcome).Inc()
}

// RewardCredited counts a synchronous or queued reward attempt.
func (m *Metrics) RewardCredited(outcome string) {
	m.rewards.WithLabelValues(outcome).Inc()
}

// RewardRetried implements queue.Observer.
func (m *Metrics) RewardRetried(outcome string) {
	m.rewards.WithLabelValues("retry_" + outcome).Inc()
}
