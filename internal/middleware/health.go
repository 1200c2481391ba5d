package middleware

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

type Pinger interface {
	PingContext(ctx context.Context) error
}

type HealthStatus struct {
	Status   string `json:"status"`
	Database string `json:"database"`
	Uptime   string `json:"uptime"`
}

// HealthCheckHandler reports whether the database answers within timeout.
func HealthCheckHandler(db Pinger, timeout time.Duration) gin.HandlerFunc {
	startTime := time.Now()

	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), timeout)
		defer cancel()

		status := HealthStatus{
			Status:   "ok",
			Database: "ok",
			Uptime:   time.Since(startTime).Round(time.Second).String(),
		}

		if err := db.PingContext(ctx); err != nil {
			status.Status = "degraded"
			status.Database = err.Error()
			c.JSON(http.StatusServiceUnavailable, status)
			return
		}

		c.JSON(http.StatusOK, status)
	}
}
