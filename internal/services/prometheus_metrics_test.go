package services_test

import (
	"testing"
	"time"

	"receipt-tracker/internal/services"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func findFamily(t *testing.T, reg *prometheus.Registry, name string) bool {
	t.Helper()
	families, err := reg.Gather()
	require.NoError(t, err)
	for _, family := range families {
		if family.GetName() == name {
			return true
		}
	}
	return false
}

func seriesCount(t *testing.T, reg *prometheus.Registry, name string) int {
	t.Helper()
	count, err := testutil.GatherAndCount(reg, name)
	require.NoError(t, err)
	return count
}

func TestPrometheusMetrics_Counters(t *testing.T) {
	reg := prometheus.NewRegistry()
	metrics := services.NewPrometheusMetrics(reg)

	metrics.IncrementCounter(services.MetricLookup, map[string]string{"result": "hit"})
	metrics.IncrementCounter(services.MetricLookup, map[string]string{"result": "hit"})
	metrics.IncrementCounter(services.MetricLookup, map[string]string{"result": "miss_found"})
	metrics.IncrementCounter(services.MetricLookup, nil)
	metrics.IncrementCounter(services.MetricMappingUpdated, map[string]string{"status": "success"})
	metrics.IncrementCounter(services.MetricInvalidation, map[string]string{"kind": "mapping.updated", "source": "remote"})
	metrics.IncrementCounter(services.MetricPublishFailed, nil)
	metrics.IncrementCounter("unknown.metric", nil)

	assert.Equal(t, 2, seriesCount(t, reg, "merchant_mapping_lookups_total"))
	assert.Equal(t, 1, seriesCount(t, reg, "merchant_mapping_updates_total"))
	assert.Equal(t, 1, seriesCount(t, reg, "merchant_mapping_cache_invalidations_total"))
	assert.True(t, findFamily(t, reg, "merchant_mapping_publish_failures_total"))
}

func TestPrometheusMetrics_GaugesAndHistogram(t *testing.T) {
	reg := prometheus.NewRegistry()
	metrics := services.NewPrometheusMetrics(reg)

	metrics.RecordGauge(services.MetricCacheEntries, 42, nil)
	metrics.RecordGauge(services.MetricCacheHitRate, 66.67, nil)
	metrics.RecordGauge(services.MetricCircuitBreakerState, float64(services.StateOpen), map[string]string{"service": "mapping_store"})
	metrics.RecordProcessingTime(services.MetricStoreLookupDuration, 12*time.Millisecond)

	assert.True(t, findFamily(t, reg, "merchant_mapping_cache_entries"))
	assert.True(t, findFamily(t, reg, "merchant_mapping_cache_hit_rate"))
	assert.Equal(t, 1, seriesCount(t, reg, "circuit_breaker_state"))
	assert.Equal(t, 1, seriesCount(t, reg, "merchant_mapping_store_lookup_duration_milliseconds"))
}

func TestPrometheusMetrics_SeparateRegistries(t *testing.T) {
	assert.NotPanics(t, func() {
		services.NewPrometheusMetrics(prometheus.NewRegistry())
		services.NewPrometheusMetrics(prometheus.NewRegistry())
	})
}
