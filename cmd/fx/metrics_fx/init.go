package metrics_fx

import (
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/fx"

	"sportapp/internal/metrics"
)

var Module = fx.Provide(
	metrics.NewRegistry,
	provideGatherer,
	provideManager,
)

func provideGatherer(reg *prometheus.Registry) prometheus.Gatherer {
	return reg
}

func provideManager(reg *prometheus.Registry) *metrics.Manager {
	return metrics.NewManager(reg)
}
