package exporters

import (
	"usage-statistics/internal/shared/metrics"
)

var (
	// metricDayExportedTotal counts export attempts per outcome. The
	// error_code label is empty on success.
	metricDayExportedTotal = metrics.NewCounterVec(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubExport,
			Name:      "day_exported_total",
		},
		[]string{metrics.FieldErrorCode},
	)
)
