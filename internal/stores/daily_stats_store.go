package stores

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"usage-statistics/internal/models"
	"usage-statistics/internal/shared/filestorages"
)

// DailyStatsStore is the live persistence contract for daily aggregates:
// upsert keyed by the natural key (date, viewer name), load returning nil
// when no aggregate exists for that day yet.
//
//go:generate mockgen -source=daily_stats_store.go -destination=./mocks/daily_stats_store_mock.go -package=mocks
type DailyStatsStore interface {
	Load(ctx context.Context, date string, viewerName string) (*models.DailyUsageStatistics, error)
	Upsert(ctx context.Context, daily *models.DailyUsageStatistics) error
}

type dailyStatsStore struct {
	fileStorage filestorages.FileStorage
	dir         string
}

func NewDailyStatsStore(fileStorage filestorages.FileStorage) DailyStatsStore {
	return &dailyStatsStore{fileStorage: fileStorage, dir: "daily-statistics"}
}

func (s *dailyStatsStore) Upsert(ctx context.Context, daily *models.DailyUsageStatistics) error {
	jsonData, err := json.Marshal(daily)
	if err != nil {
		return fmt.Errorf("failed to marshal daily statistics: %w", err)
	}
	reader := bytes.NewReader(jsonData)
	key := s.getKey(daily.Date, daily.ViewerName)
	_, err = s.fileStorage.Put(ctx, key, reader)
	if err != nil {
		return fmt.Errorf("failed to put daily statistics: %w", err)
	}
	return nil
}

func (s *dailyStatsStore) Load(ctx context.Context, date string, viewerName string) (*models.DailyUsageStatistics, error) {
	key := s.getKey(date, viewerName)
	readCloser, err := s.fileStorage.Get(ctx, key)
	if err != nil {
		if errors.Is(err, filestorages.ErrFileNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get daily statistics: %w", err)
	}

	defer readCloser.Close()
	data, err := io.ReadAll(readCloser)
	if err != nil {
		return nil, fmt.Errorf("failed to read daily statistics: %w", err)
	}
	var daily models.DailyUsageStatistics
	if err := json.Unmarshal(data, &daily); err != nil {
		return nil, fmt.Errorf("failed to unmarshal daily statistics: %w", err)
	}
	return &daily, nil
}

func (s *dailyStatsStore) getKey(date string, viewerName string) string {
	return fmt.Sprintf("%s/%s/%s.json", s.dir, viewerName, date)
}
