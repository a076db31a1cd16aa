package searchengines

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHTTPSearchEngine_ResolveRecordIDs(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/records", r.URL.Path)
		assert.Equal(t, "DC:varia", r.URL.Query().Get("q"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"ids": ["PI_01", "PI_02"]}`))
	}))
	defer server.Close()

	engine := NewHTTPSearchEngine(server.URL, 2*time.Second)

	recordIDs, err := engine.ResolveRecordIDs(context.Background(), "DC:varia")
	require.NoError(t, err)
	assert.Equal(t, map[string]struct{}{"PI_01": {}, "PI_02": {}}, recordIDs)
}

func TestHTTPSearchEngine_ResolveRecordIDs_EmptyResult(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"ids": []}`))
	}))
	defer server.Close()

	engine := NewHTTPSearchEngine(server.URL, 2*time.Second)

	recordIDs, err := engine.ResolveRecordIDs(context.Background(), "DC:nothing")
	require.NoError(t, err)
	assert.Empty(t, recordIDs)
	assert.NotNil(t, recordIDs, "empty result must stay distinguishable from no filter")
}

func TestHTTPSearchEngine_QueryExportedCounts(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/statistics", r.URL.Path)
		assert.Equal(t, "2026-03-01", r.URL.Query().Get("from"))
		assert.Equal(t, "2026-03-15", r.URL.Query().Get("to"))
		assert.Equal(t, "PI_01,PI_02", r.URL.Query().Get("ids"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[
			{"date": "2026-03-14", "records": [{"pi": "PI_01", "counts": [9, 1, 0]}]}
		]`))
	}))
	defer server.Close()

	engine := NewHTTPSearchEngine(server.URL, 2*time.Second)

	days, err := engine.QueryExportedCounts(context.Background(), "2026-03-01", "2026-03-15",
		map[string]struct{}{"PI_02": {}, "PI_01": {}})
	require.NoError(t, err)
	require.Len(t, days, 1)
	assert.Equal(t, "2026-03-14", days[0].Date)
	require.Len(t, days[0].Records, 1)
	assert.Equal(t, "PI_01", days[0].Records[0].RecordID)
	assert.Equal(t, []int64{9, 1, 0}, days[0].Records[0].Counts)
}

func TestHTTPSearchEngine_QueryExportedCounts_NoIDFilter(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.False(t, r.URL.Query().Has("ids"), "no ids parameter without a record filter")
		_, _ = w.Write([]byte(`[]`))
	}))
	defer server.Close()

	engine := NewHTTPSearchEngine(server.URL, 2*time.Second)

	days, err := engine.QueryExportedCounts(context.Background(), "2026-03-01", "2026-03-15", nil)
	require.NoError(t, err)
	assert.Empty(t, days)
}

func TestHTTPSearchEngine_NonOKStatus(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()

	engine := NewHTTPSearchEngine(server.URL, 2*time.Second)

	_, err := engine.ResolveRecordIDs(context.Background(), "DC:varia")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "502")
}

func TestHTTPSearchEngine_Unreachable(t *testing.T) {
	t.Parallel()

	// Port 1 is reserved; nothing listens there.
	engine := NewHTTPSearchEngine("http://127.0.0.1:1", 500*time.Millisecond)

	_, err := engine.ResolveRecordIDs(context.Background(), "DC:varia")
	assert.Error(t, err)
}
