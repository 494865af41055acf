// Package metrics registers the Prometheus metrics for rosterd.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all Prometheus metrics for the application.
type Metrics struct {
	SubmissionsProcessed *prometheus.CounterVec
	SubmissionsDuplicate prometheus.Counter
	RowsInserted         prometheus.Counter
	RowsUpdated          prometheus.Counter
	ContactMirrorErrors  prometheus.Counter
	ProcessDuration      prometheus.Histogram
}

// New creates and registers all metrics on the default registry.
func New() *Metrics {
	return &Metrics{
		SubmissionsProcessed: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "rosterd_submissions_processed_total",
			Help: "Form submissions processed, labeled by outcome.",
		}, []string{"outcome"}),
		SubmissionsDuplicate: promauto.NewCounter(prometheus.CounterOpts{
			Name: "rosterd_submissions_duplicate_total",
			Help: "Redelivered submissions suppressed by the dedupe guard.",
		}),
		RowsInserted: promauto.NewCounter(prometheus.CounterOpts{
			Name: "rosterd_directory_rows_inserted_total",
			Help: "New rows inserted into the directory table.",
		}),
		RowsUpdated: promauto.NewCounter(prometheus.CounterOpts{
			Name: "rosterd_directory_rows_updated_total",
			Help: "Existing directory rows updated in place.",
		}),
		ContactMirrorErrors: promauto.NewCounter(prometheus.CounterOpts{
			Name: "rosterd_contact_mirror_errors_total",
			Help: "Failed contact-store mirroring calls.",
		}),
		ProcessDuration: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "rosterd_submission_process_seconds",
			Help:    "Time spent processing one submission end to end.",
			Buckets: prometheus.DefBuckets,
		}),
	}
}
