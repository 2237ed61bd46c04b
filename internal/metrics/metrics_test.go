package metrics_test

import (
	"testing"

	"github.com/angristan/nebula-backend/internal/metrics"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegister(t *testing.T) {
	reg := prometheus.NewRegistry()
	require.NotPanics(t, func() { metrics.Register(reg) })

	before := testutil.ToFloat64(metrics.StreamCacheHitsTotal)
	metrics.StreamCacheHitsTotal.Inc()
	assert.Equal(t, before+1, testutil.ToFloat64(metrics.StreamCacheHitsTotal))

	metrics.ExtractorRequestsTotal.WithLabelValues("flat", "ok").Inc()
	families, err := reg.Gather()
	require.NoError(t, err)

	names := make([]string, 0, len(families))
	for _, f := range families {
		names = append(names, f.GetName())
	}
	assert.Contains(t, names, "nebula_stream_cache_hits_total")
	assert.Contains(t, names, "nebula_extractor_requests_total")
}
