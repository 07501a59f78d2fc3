package middleware

import (
	"net/http"
	"runtime/debug"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"sportapp/internal/metrics"
	"sportapp/pkg/utils"
)

func PanicRecovery(metricsManager *metrics.Manager, log *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				log.Error("panic serving request",
					zap.String("path", c.Request.URL.Path),
					zap.String("trace_id", c.GetString("trace_id")),
					zap.Any("panic", r),
					zap.ByteString("stack", debug.Stack()),
				)
				if metricsManager != nil {
					metricsManager.CounterPanics.Inc()
				}
				if !c.Writer.Written() {
					utils.RespondError(c, http.StatusInternalServerError, "Internal server error")
				}
				c.Abort()
			}
		}()

		c.Next()
	}
}
