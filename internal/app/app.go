package app

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"usage-statistics/internal/exporters"
	internalhttp "usage-statistics/internal/http"
	"usage-statistics/internal/recorders"
	"usage-statistics/internal/searchengines"
	"usage-statistics/internal/shared/clocks"
	"usage-statistics/internal/shared/configs"
	"usage-statistics/internal/shared/filestorages"
	"usage-statistics/internal/shared/loggers"
	"usage-statistics/internal/stores"
	"usage-statistics/internal/summaries"
)

// App holds all application dependencies and manages lifecycle.
type App struct {
	config    *configs.Config
	appLogger loggers.Logger
	server    *http.Server

	recordingService recorders.RecordingService
}

// New creates and initializes a new App instance.
func New(config *configs.Config) (*App, error) {
	appLogger, err := loggers.New(config.Log.Level)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	appLogger = appLogger.With().
		Str(loggers.FieldApp, "usage-statistics").
		Logger()

	// Initialize blob store
	fileStorage, err := filestorages.NewFileStorage(config.FileStorage.RootDir)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize storage: %w", err)
	}

	clock := clocks.NewSystemClock()

	// Initialize recording
	dailyStatsStore := stores.NewDailyStatsStore(fileStorage)
	statisticsExporter := exporters.NewStatisticsExporter(fileStorage, config.Statistics.ExportDir)
	recorderLogger := appLogger.With().Str(loggers.FieldComponent, "recorder").Logger()
	recordingService := recorders.NewRecordingService(dailyStatsStore, statisticsExporter, clock, config.Statistics.ViewerName, recorderLogger)

	// Initialize reporting
	searchEngine := searchengines.NewHTTPSearchEngine(config.Search.BaseURL, time.Duration(config.Search.TimeoutSeconds)*time.Second)
	summaryService := summaries.NewSummaryService(dailyStatsStore, searchEngine, clock, config.Statistics.ViewerName)
	summaryCacheTTL := time.Duration(config.Summary.CacheTTLSeconds) * time.Second

	// Initialize http router
	httpLogger := appLogger.With().Str(loggers.FieldComponent, "http").Logger()
	router := internalhttp.NewRouter(recordingService, summaryService, summaryCacheTTL, httpLogger)

	// Create HTTP server
	server := &http.Server{
		Addr:              fmt.Sprintf(":%d", config.Server.Port),
		Handler:           router,
		ReadHeaderTimeout: time.Duration(config.Server.ReadHeaderTimeout) * time.Second,
		ReadTimeout:       time.Duration(config.Server.ReadTimeout) * time.Second,
		WriteTimeout:      time.Duration(config.Server.WriteTimeout) * time.Second,
		IdleTimeout:       time.Duration(config.Server.IdleTimeout) * time.Second,
	}

	return &App{
		config:           config,
		appLogger:        appLogger,
		server:           server,
		recordingService: recordingService,
	}, nil
}

// Start starts the HTTP server in a blocking manner.
func (app *App) Start() error {
	app.appLogger.Info().
		Msgf("Starting usage-statistics service on port %d (viewer_name=%s, log_level=%s, file_storage_root_dir=%s)",
			app.config.Server.Port,
			app.config.Statistics.ViewerName,
			app.config.Log.Level,
			app.config.FileStorage.RootDir)

	return app.server.ListenAndServe()
}

// Shutdown gracefully shuts down the application.
func (app *App) Shutdown(ctx context.Context) error {
	// 1) Shutdown server
	app.appLogger.Info().Msg("Shutting down server...")
	if err := app.server.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}
	app.appLogger.Info().Msg("Server stopped")

	// 2) Flush the open day so no counts are lost
	if err := app.recordingService.Close(ctx); err != nil {
		return fmt.Errorf("recorder flush failed: %w", err)
	}
	app.appLogger.Info().Msg("Recorder flushed")

	return nil
}
