package summaries

import (
	"context"
	"strings"
	"sync"
	"time"

	"usage-statistics/internal/models"
	"usage-statistics/internal/searchengines"
	"usage-statistics/internal/shared/clocks"
	"usage-statistics/internal/shared/loggers"
	"usage-statistics/internal/shared/metrics"
	"usage-statistics/internal/shared/svcerrors"
	"usage-statistics/internal/stores"
)

// maxRangeDays caps how many daily aggregates a single summary may fold, so
// a runaway date range cannot turn into millions of store reads.
const maxRangeDays = 3660

// SummaryService answers reporting queries. LoadSummary builds a
// StatisticsSummary for a filter by folding recent days from the live store
// with already-exported days from the external index; CachedSummary wraps it
// with a staleness-based cache keyed by the filter.
//
// Reads run concurrently with the recorder's writes: the current day is
// loaded from its last persisted state, so summaries covering today are
// eventually-consistent snapshots.
//
//go:generate mockgen -source=summary_service.go -destination=./mocks/summary_service_mock.go -package=mocks
type SummaryService interface {
	LoadSummary(ctx context.Context, filter models.SummaryFilter) (*models.StatisticsSummary, error)
	CachedSummary(ctx context.Context, filter models.SummaryFilter, maxAge time.Duration) (*models.StatisticsSummary, error)
}

type summaryService struct {
	store        stores.DailyStatsStore
	searchEngine searchengines.SearchEngine
	clock        clocks.Clock
	viewerName   string

	mu    sync.Mutex
	cache map[string]*models.StatisticsSummary
}

func NewSummaryService(store stores.DailyStatsStore, searchEngine searchengines.SearchEngine, clock clocks.Clock, viewerName string) SummaryService {
	return &summaryService{
		store:        store,
		searchEngine: searchEngine,
		clock:        clock,
		viewerName:   viewerName,
		cache:        make(map[string]*models.StatisticsSummary),
	}
}

func (s *summaryService) CachedSummary(ctx context.Context, filter models.SummaryFilter, maxAge time.Duration) (*models.StatisticsSummary, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if cached, ok := s.cache[filter.Key()]; ok && !cached.OlderThan(maxAge, s.clock.Now()) {
		metricSummaryBuiltTotal.WithLabelValues(metrics.ValueNoError, "hit").Inc()
		return cached, nil
	}

	summary, err := s.LoadSummary(ctx, filter)
	if err != nil {
		return nil, err
	}
	s.cache[filter.Key()] = summary
	return summary, nil
}

func (s *summaryService) LoadSummary(ctx context.Context, filter models.SummaryFilter) (*models.StatisticsSummary, error) {
	logger := loggers.Ctx(ctx)
	logger.Debug().
		Str("summary_query", filter.Query).
		Str("summary_from", filter.FromDate).
		Str("summary_to", filter.ToDate).
		Msg("started building statistics summary")

	dates, err := s.rangeDates(filter)
	if err != nil {
		metricSummaryBuiltTotal.WithLabelValues(err.Code, "miss").Inc()
		return nil, err
	}
	if len(dates) == 0 {
		metricSummaryBuiltTotal.WithLabelValues(metrics.ValueNoError, "miss").Inc()
		return models.NewEmptyStatisticsSummary(filter, s.clock.Now()), nil
	}

	eligible, svcErr := s.resolveEligibleRecords(ctx, filter)
	if svcErr != nil {
		metricSummaryBuiltTotal.WithLabelValues(svcErr.Code, "miss").Inc()
		return nil, svcErr
	}
	if eligible != nil && len(eligible) == 0 {
		// Record query matched nothing.
		metricSummaryBuiltTotal.WithLabelValues(metrics.ValueNoError, "miss").Inc()
		return models.NewEmptyStatisticsSummary(filter, s.clock.Now()), nil
	}

	totals := make([]int64, models.RequestTypeCount)
	uniqueSessions := make([]map[string]struct{}, models.RequestTypeCount)
	for i := range uniqueSessions {
		uniqueSessions[i] = make(map[string]struct{})
	}

	// Live store first: it is authoritative for any day it still holds.
	liveDates := make(map[string]struct{})
	for _, date := range dates {
		daily, err := s.store.Load(ctx, date, s.viewerName)
		if err != nil {
			svcErr := errInternalDailyStoreFailed(err)
			metricSummaryBuiltTotal.WithLabelValues(svcErr.Code, "miss").Inc()
			return nil, svcErr
		}
		if daily == nil {
			continue
		}
		liveDates[date] = struct{}{}
		foldLiveDay(daily, eligible, totals, uniqueSessions)
	}

	// Exported index covers days the live store no longer (or never) has.
	// Distinct-session identity is flattened away in the export format, so
	// exported days contribute to totals only.
	exportedDays, err2 := s.searchEngine.QueryExportedCounts(ctx, dates[0], dates[len(dates)-1], eligible)
	if err2 != nil {
		svcErr := errSearchEngineFailed(err2)
		metricSummaryBuiltTotal.WithLabelValues(svcErr.Code, "miss").Inc()
		return nil, svcErr
	}
	for _, day := range exportedDays {
		if _, live := liveDates[day.Date]; live {
			continue
		}
		foldExportedDay(day, eligible, totals)
	}

	summary := models.NewEmptyStatisticsSummary(filter, s.clock.Now())
	for i := range summary.Types {
		summary.Types[i].TotalRequests = totals[i]
		summary.Types[i].UniqueSessions = int64(len(uniqueSessions[i]))
	}

	metricSummaryBuiltTotal.WithLabelValues(metrics.ValueNoError, "miss").Inc()
	return summary, nil
}

// resolveEligibleRecords returns the record ids the filter's query matches,
// or nil when the filter has no query and every record is eligible.
func (s *summaryService) resolveEligibleRecords(ctx context.Context, filter models.SummaryFilter) (map[string]struct{}, *svcerrors.ServiceError) {
	query := strings.TrimSpace(filter.Query)
	if query == "" {
		return nil, nil
	}
	recordIDs, err := s.searchEngine.ResolveRecordIDs(ctx, query)
	if err != nil {
		return nil, errSearchEngineFailed(err)
	}
	return recordIDs, nil
}

// rangeDates expands the filter's inclusive date range into individual
// dates. A missing or inverted range yields no dates, which the caller
// turns into an all-zero summary rather than an error.
func (s *summaryService) rangeDates(filter models.SummaryFilter) ([]string, *svcerrors.ServiceError) {
	if filter.FromDate == "" || filter.ToDate == "" {
		return nil, nil
	}
	from, err := models.ParseStatsDate(filter.FromDate)
	if err != nil {
		return nil, errValidationFailed(err.Error(), err)
	}
	to, err := models.ParseStatsDate(filter.ToDate)
	if err != nil {
		return nil, errValidationFailed(err.Error(), err)
	}
	if to.Before(from) {
		return nil, nil
	}
	if to.Sub(from) > maxRangeDays*24*time.Hour {
		return nil, errValidationFailed("date range too large", nil)
	}

	var dates []string
	for d := from; !d.After(to); d = d.AddDate(0, 0, 1) {
		dates = append(dates, models.FormatStatsDate(d))
	}
	return dates, nil
}

func foldLiveDay(daily *models.DailyUsageStatistics, eligible map[string]struct{}, totals []int64, uniqueSessions []map[string]struct{}) {
	for sessionID, session := range daily.Sessions {
		for recordID, counts := range session.ByRecord {
			if eligible != nil {
				if _, ok := eligible[recordID]; !ok {
					continue
				}
			}
			for _, t := range models.AllRequestTypes() {
				c := counts.Count(t)
				if c == 0 {
					continue
				}
				totals[t] += c
				uniqueSessions[t][sessionID] = struct{}{}
			}
		}
	}
}

func foldExportedDay(day searchengines.ExportedDay, eligible map[string]struct{}, totals []int64) {
	for _, row := range day.Records {
		if eligible != nil {
			if _, ok := eligible[row.RecordID]; !ok {
				continue
			}
		}
		// Tolerate short arrays from older exports; extra entries from
		// unknown future types are ignored.
		counts := models.NewSessionRequestCountsFromArray(row.Counts)
		for _, t := range models.AllRequestTypes() {
			totals[t] += counts.Count(t)
		}
	}
}
