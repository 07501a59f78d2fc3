package controllers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"sportapp/pkg/utils"
)

const healthPingTimeout = 2 * time.Second

// PingFunc reports whether the database answers.
type PingFunc func(ctx context.Context) error

type HealthController struct {
	ping     PingFunc
	gatherer prometheus.Gatherer
	log      *zap.Logger
}

func NewHealthController(ping PingFunc, gatherer prometheus.Gatherer, log *zap.Logger) *HealthController {
	return &HealthController{
		ping:     ping,
		gatherer: gatherer,
		log:      log.Named("health"),
	}
}

// Healthz godoc
// @Summary Liveness and database check
// @Tags Health
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Failure 503 {object} utils.APIResponse
// @Router /healthz [get]
func (h *HealthController) Healthz(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), healthPingTimeout)
	defer cancel()

	if err := h.ping(ctx); err != nil {
		h.log.Warn("database ping failed", zap.Error(err))
		utils.RespondError(c, http.StatusServiceUnavailable, "Database unavailable")
		return
	}

	utils.RespondSuccess(c, gin.H{"database": "ok"}, "ok")
}

// Metrics exposes the prometheus registry.
func (h *HealthController) Metrics() gin.HandlerFunc {
	return gin.WrapH(promhttp.HandlerFor(h.gatherer, promhttp.HandlerOpts{}))
}
