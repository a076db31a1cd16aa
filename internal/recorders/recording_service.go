package recorders

import (
	"context"
	"strings"
	"sync"

	"usage-statistics/internal/exporters"
	"usage-statistics/internal/models"
	"usage-statistics/internal/shared/clocks"
	"usage-statistics/internal/shared/loggers"
	"usage-statistics/internal/shared/metrics"
	"usage-statistics/internal/stores"

	"github.com/mileusna/useragent"
)

const maxUserAgentLen = 1024

// RecordingService is the concurrency-safe entry point for counting viewer
// interactions. RecordRequest is fire-and-forget: it never returns an error
// and never panics into the request path that triggered it; persistence
// failures are logged, counted and swallowed.
//
// All mutation of the open day goes through one mutex with short critical
// sections. The day-rollover transition swaps the closed aggregate out under
// the same mutex, so concurrent callers converge on a single new day and the
// closed day is handed to the exporter exactly once.
//
//go:generate mockgen -source=recording_service.go -destination=./mocks/recording_service_mock.go -package=mocks
type RecordingService interface {
	RecordRequest(ctx context.Context, requestType models.RequestType, recordID, sessionID, userAgent, clientAddress string)

	// Close persists the open day a final time. Called on shutdown so the
	// last increments are never lost.
	Close(ctx context.Context) error
}

type recordingService struct {
	store      stores.DailyStatsStore
	exporter   exporters.StatisticsExporter
	clock      clocks.Clock
	viewerName string
	logger     loggers.Logger

	mu      sync.Mutex
	current *models.DailyUsageStatistics
}

func NewRecordingService(store stores.DailyStatsStore, exporter exporters.StatisticsExporter, clock clocks.Clock, viewerName string, logger loggers.Logger) RecordingService {
	return &recordingService{
		store:      store,
		exporter:   exporter,
		clock:      clock,
		viewerName: viewerName,
		logger:     logger,
	}
}

func (s *recordingService) RecordRequest(ctx context.Context, requestType models.RequestType, recordID, sessionID, userAgent, clientAddress string) {
	logger := loggers.Ctx(ctx)

	recordID = strings.TrimSpace(recordID)
	sessionID = strings.TrimSpace(sessionID)
	if !requestType.Valid() || recordID == "" || sessionID == "" {
		logger.Debug().
			Str(loggers.FieldRequestType, requestType.String()).
			Str(loggers.FieldRecordID, recordID).
			Msg("dropping request with incomplete identity")
		metricRequestsRecordedTotal.WithLabelValues(requestType.String(), codeValidationFailed).Inc()
		return
	}

	s.mu.Lock()
	closed, ok := s.rolloverLocked(ctx)
	if !ok {
		// Today's persisted state could not be loaded; this call's count is
		// best-effort lost and the next call retries the load.
		s.mu.Unlock()
		return
	}

	session, found := s.current.Session(sessionID)
	if !found {
		session = models.NewSessionUsageStatistics(sessionID)
		s.current.AddSession(session)
	}
	session.UserAgent = normalizeUserAgent(userAgent)
	session.ClientAddress = clientAddress
	session.RecordRequest(requestType, recordID)

	if err := s.store.Upsert(ctx, s.current); err != nil {
		svcErr := errInternalDailyStoreUpsertFailed(err)
		logger.Error().
			Err(svcErr.Cause).
			Str(loggers.FieldErrorCode, svcErr.Code).
			Str(loggers.FieldStatsDate, s.current.Date).
			Msg("failed to persist daily statistics")
		metricRequestsRecordedTotal.WithLabelValues(requestType.String(), svcErr.Code).Inc()
		s.mu.Unlock()
		s.exportClosedDay(closed)
		return
	}
	s.mu.Unlock()

	metricRequestsRecordedTotal.WithLabelValues(requestType.String(), metrics.ValueNoError).Inc()
	s.exportClosedDay(closed)
}

// rolloverLocked makes sure s.current is the aggregate for today, creating
// or reloading it on the first call of a new day (or after restart). It
// returns the previous day's aggregate when the date just changed, so the
// caller can hand it to the exporter after releasing the lock.
// The second return value is false when today's persisted state exists but
// could not be loaded; s.current is left untouched in that case.
func (s *recordingService) rolloverLocked(ctx context.Context) (*models.DailyUsageStatistics, bool) {
	today := models.FormatStatsDate(s.clock.Now())
	if s.current != nil && s.current.Date == today {
		return nil, true
	}

	loaded, err := s.store.Load(ctx, today, s.viewerName)
	if err != nil {
		svcErr := errInternalDailyStoreLoadFailed(err)
		loggers.Ctx(ctx).Error().
			Err(svcErr.Cause).
			Str(loggers.FieldErrorCode, svcErr.Code).
			Str(loggers.FieldStatsDate, today).
			Msg("failed to load daily statistics")
		metricDayRolloverTotal.WithLabelValues(svcErr.Code).Inc()
		return nil, false
	}
	if loaded == nil {
		// NewDailyUsageStatistics only rejects malformed input; today's date
		// and the configured viewer name are validated at startup.
		loaded, _ = models.NewDailyUsageStatistics(today, s.viewerName)
	}

	closed := s.current
	s.current = loaded
	if closed != nil {
		metricDayRolloverTotal.WithLabelValues(metrics.ValueNoError).Inc()
	}
	return closed, true
}

// exportClosedDay hands a completed day to the exporter off the request
// path. Export failures are an operational concern: logged and counted, not
// surfaced to the caller that happened to trigger the rollover.
func (s *recordingService) exportClosedDay(closed *models.DailyUsageStatistics) {
	if closed == nil {
		return
	}
	go func() {
		ctx := s.logger.WithContext(context.Background())
		if err := s.exporter.Export(ctx, closed); err != nil {
			s.logger.Error().
				Err(err).
				Str(loggers.FieldStatsDate, closed.Date).
				Msg("failed to export closed day")
		}
	}()
}

func (s *recordingService) Close(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.current == nil {
		return nil
	}
	if err := s.store.Upsert(ctx, s.current); err != nil {
		return errInternalDailyStoreUpsertFailed(err)
	}
	return nil
}

// normalizeUserAgent reduces a raw user-agent string to its coarse browser
// family, falling back to the (length-capped) original when parsing fails.
func normalizeUserAgent(ua string) string {
	ua = strings.TrimSpace(ua)
	if len(ua) > maxUserAgentLen {
		ua = ua[:maxUserAgentLen]
	}
	parsed := useragent.Parse(ua)
	if parsed.Name != "" {
		return parsed.Name
	}
	return ua
}
