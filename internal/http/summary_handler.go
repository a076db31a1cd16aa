package http

import (
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"usage-statistics/internal/models"
	"usage-statistics/internal/summaries"
)

type summaryHandler struct {
	summaryService summaries.SummaryService
	cacheTTL       time.Duration
}

func NewSummaryHandler(summaryService summaries.SummaryService, cacheTTL time.Duration) AppHttpHandler {
	return &summaryHandler{
		summaryService: summaryService,
		cacheTTL:       cacheTTL,
	}
}

// Handle processes GET /statistics/summary?query=&from=&to=. Dates are ISO
// calendar dates; both bounds are required for a non-empty report.
func (h *summaryHandler) Handle(w http.ResponseWriter, r *http.Request) error {
	params := r.URL.Query()

	filter := models.SummaryFilter{
		Query:    strings.TrimSpace(params.Get("query")),
		FromDate: strings.TrimSpace(params.Get("from")),
		ToDate:   strings.TrimSpace(params.Get("to")),
	}
	if filter.FromDate != "" {
		if _, err := models.ParseStatsDate(filter.FromDate); err != nil {
			return errSummaryValidationFailed(err.Error(), err)
		}
	}
	if filter.ToDate != "" {
		if _, err := models.ParseStatsDate(filter.ToDate); err != nil {
			return errSummaryValidationFailed(err.Error(), err)
		}
	}

	summary, err := h.summaryService.CachedSummary(r.Context(), filter, h.cacheTTL)
	if err != nil {
		return err
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	return json.NewEncoder(w).Encode(summary)
}
