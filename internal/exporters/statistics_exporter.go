package exporters

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"

	"usage-statistics/internal/models"
	"usage-statistics/internal/shared/filestorages"
	"usage-statistics/internal/shared/loggers"
	"usage-statistics/internal/shared/metrics"
)

// StatisticsExporter flattens a closed daily aggregate into one JSON
// document in the export drop location, where the external record-indexing
// pipeline picks it up.
//
// The filename is derived from the date (statistics-usage-<date>.json), so
// re-exporting a day overwrites the previous document instead of appending.
// Placement is atomic via the file storage, so the consumer never observes a
// partial file.
//
//go:generate mockgen -source=statistics_exporter.go -destination=./mocks/statistics_exporter_mock.go -package=mocks
type StatisticsExporter interface {
	// Export serializes daily, which must no longer be mutated.
	Export(ctx context.Context, daily *models.DailyUsageStatistics) error
}

type statisticsExporter struct {
	fileStorage filestorages.FileStorage
	dir         string
}

func NewStatisticsExporter(fileStorage filestorages.FileStorage, dir string) StatisticsExporter {
	return &statisticsExporter{fileStorage: fileStorage, dir: dir}
}

func (e *statisticsExporter) Export(ctx context.Context, daily *models.DailyUsageStatistics) error {
	logger := loggers.Ctx(ctx)
	logger.Debug().
		Str(loggers.FieldStatsDate, daily.Date).
		Str(loggers.FieldViewerName, daily.ViewerName).
		Msg("started exporting daily statistics")

	document := BuildExportDocument(daily)

	jsonData, err := json.Marshal(document)
	if err != nil {
		svcErr := errExportSerializationFailed(err)
		metricDayExportedTotal.WithLabelValues(svcErr.Code).Inc()
		return svcErr
	}

	key := fmt.Sprintf("%s/statistics-usage-%s.json", e.dir, daily.Date)
	if _, err := e.fileStorage.Put(ctx, key, bytes.NewReader(jsonData)); err != nil {
		svcErr := errExportWriteFailed(err)
		metricDayExportedTotal.WithLabelValues(svcErr.Code).Inc()
		return svcErr
	}

	metricDayExportedTotal.WithLabelValues(metrics.ValueNoError).Inc()
	return nil
}

// BuildExportDocument folds a daily aggregate into its flat export form:
// one row per touched record, rows sorted by record id, each row carrying
// the full-length per-type count array.
func BuildExportDocument(daily *models.DailyUsageStatistics) *models.ExportDocument {
	recordIDs := daily.RecordIDs()
	rows := make([]models.ExportRecordRow, 0, len(recordIDs))
	for _, recordID := range recordIDs {
		counts := make([]int64, models.RequestTypeCount)
		for _, t := range models.AllRequestTypes() {
			counts[t] = daily.TotalRequestCount(t, recordID)
		}
		rows = append(rows, models.ExportRecordRow{RecordID: recordID, Counts: counts})
	}
	return &models.ExportDocument{
		ViewerName: daily.ViewerName,
		Date:       daily.Date,
		Records:    rows,
	}
}
