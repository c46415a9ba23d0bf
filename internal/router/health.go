package router

import (
	"context"
	"net/http"
	"sort"
	"time"

	"github.com/gin-gonic/gin"
)

// healthTimeout bounds all dependency checks of one health request.
const healthTimeout = 2 * time.Second

// Pinger reports whether a dependency is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

// health answers {"status":"ok"} when every check passes, otherwise 503
// with the failing dependencies and their errors.
func health(checks map[string]Pinger) gin.HandlerFunc {
	names := make([]string, 0, len(checks))
	for name := range checks {
		names = append(names, name)
	}
	sort.Strings(names)

	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), healthTimeout)
		defer cancel()

		body := gin.H{"status": "ok"}
		status := http.StatusOK
		for _, name := range names {
			if err := checks[name].Ping(ctx); err != nil {
				body[name] = err.Error()
				body["status"] = "degraded"
				status = http.StatusServiceUnavailable
			}
		}
		c.JSON(status, body)
	}
}
