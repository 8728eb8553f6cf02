package middleware

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/phylo-app/phylo/internal/metrics"
)

// PrometheusMiddleware records HTTP request duration and count, labelled by
// route pattern rather than concrete path so tree and member ids do not
// become label values.
func PrometheusMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}

		status := strconv.Itoa(c.Writer.Status())
		metrics.RequestDuration.WithLabelValues(c.Request.Method, path, status).Observe(time.Since(start).Seconds())
		metrics.RequestsTotal.WithLabelValues(c.Request.Method, path, status).Inc()
	}
}
