// Package observability holds the Prometheus collectors shared by the CLI and
// the API.
package observability

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	recordsProcessed = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "ftracker",
		Subsystem: "batch",
		Name:      "records_processed_total",
		Help:      "Workout records summarized successfully, by workout code.",
	}, []string{"code"})
	recordsFailed = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "ftracker",
		Subsystem: "batch",
		Name:      "records_failed_total",
		Help:      "Workout records that produced no summary, by failure reason.",
	}, []string{"reason"})
)

// Failure reasons used as label values.
const (
	ReasonUnknownType     = "unknown_type"
	ReasonArity           = "arity"
	ReasonInvalidDuration = "invalid_duration"
	ReasonInvalidArgument = "invalid_argument"
	ReasonNonFinite       = "non_finite"
	ReasonOther           = "other"
)

func init() {
	prometheus.MustRegister(recordsProcessed, recordsFailed)
}

// RecordProcessed counts a summarized record.
func RecordProcessed(code string) {
	recordsProcessed.WithLabelValues(code).Inc()
}

// RecordFailed counts a record that failed for reason.
func RecordFailed(reason string) {
	recordsFailed.WithLabelValues(reason).Inc()
}

// ProcessedCounter exposes the processed counter for code, for tests.
func ProcessedCounter(code string) prometheus.Counter {
	return recordsProcessed.WithLabelValues(code)
}

// FailedCounter exposes the failure counter for reason, for tests.
func FailedCounter(reason string) prometheus.Counter {
	return recordsFailed.WithLabelValues(reason)
}
