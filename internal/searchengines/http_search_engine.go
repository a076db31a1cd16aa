package searchengines

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"sort"
	"strings"
	"time"
)

const maxResponseBytes = 32 * 1024 * 1024

// httpSearchEngine talks to the platform's search/index service over its
// JSON HTTP API:
//
//	GET {base}/records?q=<query>                 -> {"ids": ["PI_01", ...]}
//	GET {base}/statistics?from=&to=&ids=a,b,c    -> [{"date": "...", "records": [{"pi": ..., "counts": [...]}]}]
type httpSearchEngine struct {
	baseURL    string
	httpClient *http.Client
}

func NewHTTPSearchEngine(baseURL string, timeout time.Duration) SearchEngine {
	return &httpSearchEngine{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
	}
}

func (e *httpSearchEngine) ResolveRecordIDs(ctx context.Context, query string) (map[string]struct{}, error) {
	endpoint := fmt.Sprintf("%s/records?q=%s", e.baseURL, url.QueryEscape(query))

	var payload struct {
		IDs []string `json:"ids"`
	}
	if err := e.getJSON(ctx, endpoint, &payload); err != nil {
		return nil, fmt.Errorf("failed to resolve record ids: %w", err)
	}

	recordIDs := make(map[string]struct{}, len(payload.IDs))
	for _, id := range payload.IDs {
		recordIDs[id] = struct{}{}
	}
	return recordIDs, nil
}

func (e *httpSearchEngine) QueryExportedCounts(ctx context.Context, fromDate, toDate string, recordIDs map[string]struct{}) ([]ExportedDay, error) {
	params := url.Values{}
	params.Set("from", fromDate)
	params.Set("to", toDate)
	if recordIDs != nil {
		ids := make([]string, 0, len(recordIDs))
		for id := range recordIDs {
			ids = append(ids, id)
		}
		sort.Strings(ids)
		params.Set("ids", strings.Join(ids, ","))
	}
	endpoint := fmt.Sprintf("%s/statistics?%s", e.baseURL, params.Encode())

	var days []ExportedDay
	if err := e.getJSON(ctx, endpoint, &days); err != nil {
		return nil, fmt.Errorf("failed to query exported statistics: %w", err)
	}
	return days, nil
}

func (e *httpSearchEngine) getJSON(ctx context.Context, endpoint string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := e.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("search engine returned status %d", resp.StatusCode)
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return err
	}
	return json.Unmarshal(data, out)
}
