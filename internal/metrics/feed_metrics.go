package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Feed metrics
var (
	FeedFetchesTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "feed_fetches_total",
		Help:      "Total number of betting data fetches by source",
	}, []string{"source"})

	FeedFetchErrorsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "feed_fetch_errors_total",
		Help:      "Total number of failed fetches by source and error code",
	}, []string{"source", "code"})

	FeedFetchLatency = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "feed_fetch_latency_seconds",
		Help:      "Latency of betting data fetches in seconds",
		Buckets:   prometheus.DefBuckets,
	}, []string{"source"})

	CircuitBreakerTripsTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "circuit_breaker_trips_total",
		Help:      "Total number of feed circuit breaker trips",
	})

	SnapshotCacheLookupsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "snapshot_cache_lookups_total",
		Help:      "Snapshot cache lookups by result",
	}, []string{"result"})

	SnapshotRevalidationsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "snapshot_revalidations_total",
		Help:      "Scheduled snapshot revalidations by outcome",
	}, []string{"outcome"})

	RecordsSkippedTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "records_skipped_total",
		Help:      "Betting records dropped for failing validation",
	})
)

// RecordFeedFetch records a successful fetch and its latency.
func RecordFeedFetch(source string, durationSeconds float64) {
	FeedFetchesTotal.WithLabelValues(source).Inc()
	FeedFetchLatency.WithLabelValues(source).Observe(durationSeconds)
}

// RecordFeedFetchError records a failed fetch.
func RecordFeedFetchError(source, code string) {
	FeedFetchErrorsTotal.WithLabelValues(source, code).Inc()
}

// RecordCircuitBreakerTrip records a circuit breaker trip event.
func RecordCircuitBreakerTrip() {
	CircuitBreakerTripsTotal.Inc()
}

// RecordCacheLookup records a snapshot cache hit or miss.
func RecordCacheLookup(hit bool) {
	result := "miss"
	if hit {
		result = "hit"
	}
	SnapshotCacheLookupsTotal.WithLabelValues(result).Inc()
}

// RecordRevalidation records the outcome of a scheduled revalidation.
func RecordRevalidation(success bool) {
	outcome := "failure"
	if success {
		outcome = "success"
	}
	SnapshotRevalidationsTotal.WithLabelValues(outcome).Inc()
}

// RecordSkippedRecords adds to the invalid record counter.
func RecordSkippedRecords(count int) {
	RecordsSkippedTotal.Add(float64(count))
}
