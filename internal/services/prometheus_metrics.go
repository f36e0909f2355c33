package services

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metric names understood by PrometheusMetrics
const (
	MetricLookup               = "merchant_mapping.lookup"
	MetricStoreLookupDuration  = "merchant_mapping.store_lookup"
	MetricMappingApplied       = "merchant_mapping.applied"
	MetricMappingUpdated       = "merchant_mapping.updated"
	MetricMappingDeleted       = "merchant_mapping.deleted"
	MetricInvalidation         = "merchant_mapping.invalidation"
	MetricCircuitBreakerState  = "circuit_breaker.state"
	MetricCacheEntries         = "merchant_mapping.cache_entries"
	MetricCacheHitRate         = "merchant_mapping.cache_hit_rate"
	MetricPublishFailed        = "merchant_mapping.publish_failed"
	MetricLearningPathRecovery = "merchant_mapping.learning_panic"
)

type PrometheusMetrics struct {
	lookupsTotal        *prometheus.CounterVec
	storeLookupDuration prometheus.Histogram
	appliedTotal        *prometheus.CounterVec
	updatesTotal        *prometheus.CounterVec
	deletesTotal        *prometheus.CounterVec
	invalidationsTotal  *prometheus.CounterVec
	publishFailedTotal  prometheus.Counter
	learningPanicsTotal prometheus.Counter
	circuitBreakerState *prometheus.GaugeVec
	cacheEntries        prometheus.Gauge
	cacheHitRate        prometheus.Gauge
}

// NewPrometheusMetrics registers the learning-path collectors on reg, or on
// the default registry when reg is nil.
func NewPrometheusMetrics(reg prometheus.Registerer) MetricsRecorderInterface {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	factory := promauto.With(reg)

	return &PrometheusMetrics{
		lookupsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "merchant_mapping_lookups_total",
				Help: "Total number of merchant mapping lookups by outcome",
			},
			[]string{"result"},
		),
		storeLookupDuration: factory.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "merchant_mapping_store_lookup_duration_milliseconds",
				Help:    "Mapping store lookup duration on cache miss in milliseconds",
				Buckets: prometheus.ExponentialBuckets(1, 2, 12),
			},
		),
		appliedTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "merchant_mapping_categorizations_total",
				Help: "Total number of receipt categorizations by whether a learned mapping was applied",
			},
			[]string{"applied"},
		),
		updatesTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "merchant_mapping_updates_total",
				Help: "Total number of user corrections saved",
			},
			[]string{"status"},
		),
		deletesTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "merchant_mapping_deletes_total",
				Help: "Total number of learned mappings removed",
			},
			[]string{"status"},
		),
		invalidationsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "merchant_mapping_cache_invalidations_total",
				Help: "Total number of cache invalidations by kind and origin",
			},
			[]string{"kind", "source"},
		),
		publishFailedTotal: factory.NewCounter(
			prometheus.CounterOpts{
				Name: "merchant_mapping_publish_failures_total",
				Help: "Total number of invalidation events that could not be published",
			},
		),
		learningPanicsTotal: factory.NewCounter(
			prometheus.CounterOpts{
				Name: "merchant_mapping_learning_panics_total",
				Help: "Total number of panics recovered in the learning path",
			},
		),
		circuitBreakerState: factory.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "circuit_breaker_state",
				Help: "Circuit breaker state (0=closed, 1=open, 2=half-open)",
			},
			[]string{"service"},
		),
		cacheEntries: factory.NewGauge(
			prometheus.GaugeOpts{
				Name: "merchant_mapping_cache_entries",
				Help: "Current number of entries in the merchant mapping cache",
			},
		),
		cacheHitRate: factory.NewGauge(
			prometheus.GaugeOpts{
				Name: "merchant_mapping_cache_hit_rate",
				Help: "Merchant mapping cache hit rate as a percentage",
			},
		),
	}
}

func (m *PrometheusMetrics) IncrementCounter(name string, tags map[string]string) {
	status := tags["status"]

	switch name {
	case MetricLookup:
		if result := tags["result"]; result != "" {
			m.lookupsTotal.WithLabelValues(result).Inc()
		}
	case MetricMappingApplied:
		m.appliedTotal.WithLabelValues(tags["applied"]).Inc()
	case MetricMappingUpdated:
		if status != "" {
			m.updatesTotal.WithLabelValues(status).Inc()
		}
	case MetricMappingDeleted:
		if status != "" {
			m.deletesTotal.WithLabelValues(status).Inc()
		}
	case MetricInvalidation:
		m.invalidationsTotal.WithLabelValues(tags["kind"], tags["source"]).Inc()
	case MetricPublishFailed:
		m.publishFailedTotal.Inc()
	case MetricLearningPathRecovery:
		m.learningPanicsTotal.Inc()
	}
}

func (m *PrometheusMetrics) RecordProcessingTime(name string, duration time.Duration) {
	switch name {
	case MetricStoreLookupDuration:
		m.storeLookupDuration.Observe(float64(duration.Milliseconds()))
	}
}

func (m *PrometheusMetrics) RecordGauge(name string, value float64, tags map[string]string) {
	switch name {
	case MetricCircuitBreakerState:
		m.circuitBreakerState.WithLabelValues(tags["service"]).Set(value)
	case MetricCacheEntries:
		m.cacheEntries.Set(value)
	case MetricCacheHitRate:
		m.cacheHitRate.Set(value)
	}
}
