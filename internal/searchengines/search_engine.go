package searchengines

import (
	"context"

	"usage-statistics/internal/models"
)

// ExportedDay is one already-exported day's worth of per-record counts as
// returned by the external index. Session identity is not part of the export
// format, so only totals can be folded from these.
type ExportedDay struct {
	Date    string                   `json:"date"`
	Records []models.ExportRecordRow `json:"records"`
}

// SearchEngine is the external search/index collaborator. ResolveRecordIDs
// turns a free-text record query into the set of matching record ids.
// QueryExportedCounts returns the exported daily documents for an inclusive
// date range, optionally restricted to the given record ids (nil means all).
//
//go:generate mockgen -source=search_engine.go -destination=./mocks/search_engine_mock.go -package=mocks
type SearchEngine interface {
	ResolveRecordIDs(ctx context.Context, query string) (map[string]struct{}, error)
	QueryExportedCounts(ctx context.Context, fromDate, toDate string, recordIDs map[string]struct{}) ([]ExportedDay, error)
}
