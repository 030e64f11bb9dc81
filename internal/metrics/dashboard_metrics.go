package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Dashboard metrics
var (
	PipelineApplicationsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "pipeline_applications_total",
		Help:      "Sort/filter pipeline runs by sort field and order",
	}, []string{"sort_by", "sort_order"})

	CriteriaErrorsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "criteria_errors_total",
		Help:      "Rejected criteria by offending field",
	}, []string{"field"})

	PipelineDuration = prometheus.NewHistogram(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "pipeline_duration_seconds",
		Help:      "Duration of sort/filter pipeline runs in seconds",
		Buckets:   []float64{0.0001, 0.0005, 0.001, 0.005, 0.01, 0.05, 0.1},
	})

	RecordsRendered = prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "records_rendered",
		Help:      "Number of game cards in the most recent render",
	})

	TeamPanelsRenderedTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "team_panels_rendered_total",
		Help:      "Total number of team analytics panels rendered",
	})
)

// RecordPipelineApplication records a pipeline run.
func RecordPipelineApplication(sortBy, sortOrder string, durationSeconds float64, rendered int) {
	PipelineApplicationsTotal.WithLabelValues(sortBy, sortOrder).Inc()
	PipelineDuration.Observe(durationSeconds)
	RecordsRendered.Set(float64(rendered))
}

// RecordCriteriaError records a rejected criteria field.
func RecordCriteriaError(field string) {
	CriteriaErrorsTotal.WithLabelValues(field).Inc()
}

// RecordTeamPanel records a team panel render.
func RecordTeamPanel() {
	TeamPanelsRenderedTotal.Inc()
}
