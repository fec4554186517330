package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Email outcome labels
const (
	EmailStatusSuccess       = "success"
	EmailStatusError         = "error"
	EmailStatusNotConfigured = "not_configured"
)

var (
	// transcriptAnalysesTotal counts transcript analyses by outcome.
	// Labels: status (success/error)
	transcriptAnalysesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "meeting_summary_transcript_analyses_total",
			Help: "Total number of transcript analyses by outcome",
		},
		[]string{"status"},
	)

	// analysisDuration observes the model round trip including parsing.
	analysisDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "meeting_summary_analysis_duration_seconds",
			Help:    "Transcript analysis duration in seconds",
			Buckets: []float64{0.5, 1, 2, 5, 10, 20, 30, 60, 120},
		},
	)

	// emailsTotal counts summary emails by outcome.
	// Labels: status (success/error/not_configured)
	emailsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "meeting_summary_emails_total",
			Help: "Total number of summary emails by outcome",
		},
		[]string{"status"},
	)
)

// RecordAnalysis records one finished transcript analysis
func RecordAnalysis(success bool, durationSeconds float64) {
	status := "success"
	if !success {
		status = "error"
	}
	transcriptAnalysesTotal.WithLabelValues(status).Inc()
	analysisDuration.Observe(durationSeconds)
}

// RecordEmail records one summary email attempt
func RecordEmail(status string) {
	emailsTotal.WithLabelValues(status).Inc()
}
