package recorders

import (
	"usage-statistics/internal/shared/metrics"
)

var (
	// metricRequestsRecordedTotal counts recorded requests per request type
	// and outcome. The error_code label is empty on success.
	metricRequestsRecordedTotal = metrics.NewCounterVec(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubRecording,
			Name:      "requests_recorded_total",
		},
		[]string{"request_type", metrics.FieldErrorCode},
	)

	// metricDayRolloverTotal counts day-boundary transitions of the open
	// aggregate, including failed attempts to load the new day's state.
	metricDayRolloverTotal = metrics.NewCounterVec(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubRecording,
			Name:      "day_rollover_total",
		},
		[]string{metrics.FieldErrorCode},
	)
)
