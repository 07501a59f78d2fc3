package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	Namespace = "sportapp"
	Subsystem = "api"
)

type Manager struct {
	// http
	CounterRequests     *prometheus.CounterVec
	HistRequestDuration *prometheus.HistogramVec
	GaugeRequests       prometheus.Gauge
	CounterPanics       prometheus.Counter

	// domain
	CounterRegistrations     prometheus.Counter
	CounterSessionsStarted   prometheus.Counter
	CounterSessionsCompleted prometheus.Counter
	CounterExerciseLogsSaved prometheus.Counter
}

// NewRegistry returns a registry with the Go runtime and process collectors attached.
func NewRegistry() *prometheus.Registry {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewBuildInfoCollector(),
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return reg
}

func NewTestManager() *Manager {
	return NewManager(prometheus.NewRegistry())
}

func NewTestManagerAndRegistry() (*Manager, *prometheus.Registry) {
	reg := prometheus.NewRegistry()
	return NewManager(reg), reg
}

func NewManager(reg prometheus.Registerer) *Manager {
	factory := promauto.With(reg)

	counter := func(name, help string) prometheus.Counter {
		return factory.NewCounter(prometheus.CounterOpts{
			Namespace: Namespace,
			Subsystem: Subsystem,
			Name:      name,
			Help:      help,
		})
	}

	return &Manager{
		CounterRequests: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: Namespace,
			Subsystem: Subsystem,
			Name:      "requests_total",
			Help:      "The total number of handled requests",
		}, []string{"method", "route", "status"}),
		HistRequestDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: Namespace,
			Subsystem: Subsystem,
			Name:      "request_duration_seconds",
			Help:      "Duration of requests in seconds",
			Buckets:   []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		}, []string{"route"}),
		GaugeRequests: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: Namespace,
			Subsystem: Subsystem,
			Name:      "current_requests",
			Help:      "Current number of requests in flight",
		}),
		CounterPanics:            counter("handler_panics_total", "The total number of recovered handler panics"),
		CounterRegistrations:     counter("registrations_total", "The total number of registered users"),
		CounterSessionsStarted:   counter("sessions_started_total", "The total number of started workout sessions"),
		CounterSessionsCompleted: counter("sessions_completed_total", "The total number of completed workout sessions"),
		CounterExerciseLogsSaved: counter("exercise_logs_saved_total", "The total number of saved exercise progress submissions"),
	}
}
