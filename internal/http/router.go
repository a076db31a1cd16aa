package http

import (
	"net/http"
	"time"

	"usage-statistics/internal/recorders"
	"usage-statistics/internal/shared/loggers"
	"usage-statistics/internal/shared/metrics"
	"usage-statistics/internal/summaries"

	"github.com/go-chi/chi/v5"
)

// NewRouter creates and configures the HTTP router.
func NewRouter(recordingService recorders.RecordingService, summaryService summaries.SummaryService, summaryCacheTTL time.Duration, httpLogger loggers.Logger) http.Handler {
	router := chi.NewRouter()
	setupMiddleware(router, httpLogger)

	// Initialize handlers
	recordRequestHandler := NewRecordRequestHandler(recordingService)
	summaryHandler := NewSummaryHandler(summaryService, summaryCacheTTL)

	// Routes
	router.Post("/statistics/requests", errorHandlingAdapter(recordRequestHandler))
	router.Get("/statistics/summary", errorHandlingAdapter(summaryHandler))
	router.Get("/metrics", metrics.PromHTTP.Handler().ServeHTTP)

	return router
}
