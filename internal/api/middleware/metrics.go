package middleware

import (
	"strconv"
	"time"

	"mundell-fleming/internal/metrics"

	"github.com/gin-gonic/gin"
)

// Metrics records request latency by matched route. Unmatched paths share
// one label so arbitrary URLs cannot grow the series count.
func Metrics() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		metrics.HTTPRequestDuration.
			WithLabelValues(c.Request.Method, route, strconv.Itoa(c.Writer.Status())).
			Observe(time.Since(start).Seconds())
	}
}
