package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewManager_RegistersCollectors(t *testing.T) {
	m, reg := NewTestManagerAndRegistry()

	m.CounterSessionsStarted.Inc()
	m.CounterSessionsStarted.Inc()
	m.CounterRequests.WithLabelValues("GET", "/workouts", "200").Inc()

	assert.Equal(t, 2.0, testutil.ToFloat64(m.CounterSessionsStarted))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.CounterRequests.WithLabelValues("GET", "/workouts", "200")))

	families, err := reg.Gather()
	require.NoError(t, err)
	names := make([]string, 0, len(families))
	for _, f := range families {
		names = append(names, f.GetName())
	}
	assert.Contains(t, names, "sportapp_api_sessions_started_total")
	assert.Contains(t, names, "sportapp_api_requests_total")
}

func TestNewRegistry_HasRuntimeCollectors(t *testing.T) {
	families, err := NewRegistry().Gather()
	require.NoError(t, err)
	assert.NotEmpty(t, families)
}
