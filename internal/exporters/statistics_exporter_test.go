package exporters

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"testing"

	"usage-statistics/internal/models"
	"usage-statistics/internal/shared/filestorages"
	"usage-statistics/internal/shared/filestorages/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func buildClosedDay(t *testing.T) *models.DailyUsageStatistics {
	t.Helper()
	daily, err := models.NewDailyUsageStatistics("2026-03-15", "viewer-main")
	require.NoError(t, err)

	abcd := models.NewSessionUsageStatistics("ABCD")
	for i := 0; i < 7; i++ {
		abcd.RecordRequest(models.RequestRecordView, "PI_01")
	}
	for i := 0; i < 3; i++ {
		abcd.RecordRequest(models.RequestRecordView, "PI_02")
	}
	daily.AddSession(abcd)

	efgh := models.NewSessionUsageStatistics("EFGH")
	for i := 0; i < 2; i++ {
		efgh.RecordRequest(models.RequestRecordView, "PI_01")
	}
	efgh.RecordRequest(models.RequestFileDownload, "PI_01")
	daily.AddSession(efgh)

	return daily
}

func TestStatisticsExporter_Export_WritesDeterministicDocument(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockFileStorage := mocks.NewMockFileStorage(ctrl)
	exporter := NewStatisticsExporter(mockFileStorage, "export")

	ctx := context.Background()
	daily := buildClosedDay(t)

	var written []byte
	mockFileStorage.EXPECT().
		Put(gomock.Any(), "export/statistics-usage-2026-03-15.json", gomock.Any()).
		DoAndReturn(func(ctx context.Context, key string, r io.Reader) (*filestorages.PutResult, error) {
			data, err := io.ReadAll(r)
			require.NoError(t, err)
			written = data
			return &filestorages.PutResult{FileKey: key}, nil
		})

	err := exporter.Export(ctx, daily)
	require.NoError(t, err)

	var document models.ExportDocument
	require.NoError(t, json.Unmarshal(written, &document))

	assert.Equal(t, "viewer-main", document.ViewerName)
	assert.Equal(t, "2026-03-15", document.Date)
	require.Len(t, document.Records, 2)

	// Rows sorted by record id, each carrying the full-length count array.
	assert.Equal(t, "PI_01", document.Records[0].RecordID)
	assert.Equal(t, []int64{9, 1, 0}, document.Records[0].Counts)
	assert.Len(t, document.Records[0].Counts, models.RequestTypeCount)

	assert.Equal(t, "PI_02", document.Records[1].RecordID)
	assert.Equal(t, []int64{3, 0, 0}, document.Records[1].Counts)
}

func TestStatisticsExporter_Export_EmptyDay(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockFileStorage := mocks.NewMockFileStorage(ctrl)
	exporter := NewStatisticsExporter(mockFileStorage, "export")

	daily, err := models.NewDailyUsageStatistics("2026-03-15", "viewer-main")
	require.NoError(t, err)

	var written []byte
	mockFileStorage.EXPECT().
		Put(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, key string, r io.Reader) (*filestorages.PutResult, error) {
			data, readErr := io.ReadAll(r)
			require.NoError(t, readErr)
			written = data
			return &filestorages.PutResult{FileKey: key}, nil
		})

	require.NoError(t, exporter.Export(context.Background(), daily))

	var document models.ExportDocument
	require.NoError(t, json.Unmarshal(written, &document))
	assert.Empty(t, document.Records)
}

func TestStatisticsExporter_Export_WriteFailureIsReported(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockFileStorage := mocks.NewMockFileStorage(ctrl)
	exporter := NewStatisticsExporter(mockFileStorage, "export")

	mockFileStorage.EXPECT().
		Put(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil, errors.New("disk full"))

	err := exporter.Export(context.Background(), buildClosedDay(t))
	assert.Error(t, err)
}

func TestBuildExportDocument_TotalsFoldAcrossSessions(t *testing.T) {
	t.Parallel()

	document := BuildExportDocument(buildClosedDay(t))
	require.Len(t, document.Records, 2)
	assert.Equal(t, int64(9), document.Records[0].Counts[models.RequestRecordView])
}
