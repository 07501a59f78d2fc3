package middleware

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"

	"sportapp/internal/metrics"
)

const unmatchedRoute = "unmatched"

func RequestMetrics(metricsManager *metrics.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		metricsManager.GaugeRequests.Inc()
		defer metricsManager.GaugeRequests.Dec()

		begin := time.Now()
		c.Next()

		// route templates keep the label cardinality bounded
		route := c.FullPath()
		if route == "" {
			route = unmatchedRoute
		}
		metricsManager.HistRequestDuration.WithLabelValues(route).Observe(time.Since(begin).Seconds())
		metricsManager.CounterRequests.With(prometheus.Labels{
			"method": c.Request.Method,
			"route":  route,
			"status": strconv.Itoa(c.Writer.Status()),
		}).Inc()
	}
}
