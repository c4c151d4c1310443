// internal/common/metrics/metrics.go
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	SubmissionsProcessed = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "scoping_submissions_total",
			Help: "Total number of scoping submissions accepted",
		},
	)

	SubmissionErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "scoping_submission_errors_total",
			Help: "Total number of failed scoping submissions by error code",
		},
		[]string{"code"},
	)

	SubmissionDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name: "scoping_submission_duration_seconds",
			Help: "Duration of the scoring-to-persist pipeline in seconds",
		},
	)

	ReportsRendered = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "scoping_reports_rendered_total",
			Help: "Total number of report downloads by cache outcome",
		},
		[]string{"cache"},
	)

	ConfigWrites = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "scoping_config_writes_total",
			Help: "Total number of configuration document replacements",
		},
		[]string{"document"},
	)
)
