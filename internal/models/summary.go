package models

import (
	"strings"
	"time"
)

// SummaryFilter selects the data a summary is built over: an optional
// free-text record query (resolved by the external search engine) and an
// optional inclusive date range in StatsDateLayout form. An empty query
// means all records.
type SummaryFilter struct {
	Query    string `json:"query"`
	FromDate string `json:"from"`
	ToDate   string `json:"to"`
}

// Key returns a stable identity for the filter, used for summary caching.
func (f SummaryFilter) Key() string {
	return strings.Join([]string{f.Query, f.FromDate, f.ToDate}, "\x1f")
}

// RequestTypeSummary carries the folded numbers for one request type.
//
// UniqueSessions counts distinct sessions that made at least one such
// request. It only covers days read from the live store: exported documents
// carry flattened per-record count arrays from which session identity is not
// recoverable, so for ranges spanning exported days the unique count is a
// best-effort lower bound.
type RequestTypeSummary struct {
	Type           RequestType `json:"-"`
	TypeName       string      `json:"type"`
	TotalRequests  int64       `json:"totalRequests"`
	UniqueSessions int64       `json:"uniqueSessions"`
}

// StatisticsSummary is a computed, immutable report over a date range and
// record filter. Callers cache it and use OlderThan to decide when to
// rebuild; it never expires by itself.
type StatisticsSummary struct {
	Filter    SummaryFilter        `json:"filter"`
	Types     []RequestTypeSummary `json:"types"`
	CreatedAt time.Time            `json:"createdAt"`
}

// NewEmptyStatisticsSummary returns an all-zero summary for the filter,
// stamped with createdAt.
func NewEmptyStatisticsSummary(filter SummaryFilter, createdAt time.Time) *StatisticsSummary {
	types := make([]RequestTypeSummary, RequestTypeCount)
	for i := range types {
		t := RequestType(i)
		types[i] = RequestTypeSummary{Type: t, TypeName: t.String()}
	}
	return &StatisticsSummary{
		Filter:    filter,
		Types:     types,
		CreatedAt: createdAt,
	}
}

// TypeSummary returns the entry for the given request type.
func (s *StatisticsSummary) TypeSummary(t RequestType) RequestTypeSummary {
	if !t.Valid() || int(t) >= len(s.Types) {
		return RequestTypeSummary{Type: t, TypeName: t.String()}
	}
	return s.Types[t]
}

// OlderThan reports whether the summary was created at least maxAge before
// now. The boundary is inclusive: exactly maxAge old is stale.
func (s *StatisticsSummary) OlderThan(maxAge time.Duration, now time.Time) bool {
	return now.Sub(s.CreatedAt) >= maxAge
}
