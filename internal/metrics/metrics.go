// Package metrics provides centralized Prometheus metrics registry for the dashboard engine.
package metrics

import (
	"net/http"
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "gridiron"

// Global registry instance
var (
	registry *prometheus.Registry
	once     sync.Once
)

// InitRegistry initializes the global Prometheus registry.
func InitRegistry() *prometheus.Registry {
	once.Do(func() {
		registry = prometheus.NewRegistry()

		// Register feed metrics
		registry.MustRegister(FeedFetchesTotal)
		registry.MustRegister(FeedFetchErrorsTotal)
		registry.MustRegister(FeedFetchLatency)
		registry.MustRegister(CircuitBreakerTripsTotal)
		registry.MustRegister(SnapshotCacheLookupsTotal)
		registry.MustRegister(SnapshotRevalidationsTotal)
		registry.MustRegister(RecordsSkippedTotal)

		// Register dashboard metrics
		registry.MustRegister(PipelineApplicationsTotal)
		registry.MustRegister(CriteriaErrorsTotal)
		registry.MustRegister(PipelineDuration)
		registry.MustRegister(RecordsRendered)
		registry.MustRegister(TeamPanelsRenderedTotal)
	})
	return registry
}

// GetRegistry returns the global Prometheus registry.
func GetRegistry() *prometheus.Registry {
	if registry == nil {
		return InitRegistry()
	}
	return registry
}

// Handler returns the Prometheus HTTP handler.
func Handler() http.Handler {
	return promhttp.HandlerFor(GetRegistry(), promhttp.HandlerOpts{})
}
