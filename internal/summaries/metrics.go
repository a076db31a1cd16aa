package summaries

import (
	"usage-statistics/internal/shared/metrics"
)

var (
	// metricSummaryBuiltTotal counts summary requests per outcome. The cache
	// label is "hit" when a cached summary was fresh enough to serve.
	metricSummaryBuiltTotal = metrics.NewCounterVec(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubSummary,
			Name:      "summary_built_total",
		},
		[]string{metrics.FieldErrorCode, "cache"},
	)
)
