package middleware

import (
	"time"

	"github.com/gin-gonic/gin"

	"bharatexplore/internal/observability/metrics"
)

// RequestMetrics records a counter and duration histogram for every
// completed request, labelled by method, route template and status.
func RequestMetrics() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			// No matching route; avoid a per-URL label explosion.
			route = "unmatched"
		}
		metrics.HTTPRequest(c.Request.Context(), c.Request.Method, route, c.Writer.Status(), time.Since(start))
	}
}
