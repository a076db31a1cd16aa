package models

import (
	"fmt"
	"sort"
	"strings"
	"time"
)

// StatsDateLayout is the ISO calendar-date form used for daily aggregate
// identity, store keys and export documents.
const StatsDateLayout = "2006-01-02"

// FormatStatsDate renders the calendar date of t in UTC.
func FormatStatsDate(t time.Time) string {
	return t.UTC().Format(StatsDateLayout)
}

// ParseStatsDate parses an ISO calendar date into a UTC midnight instant.
func ParseStatsDate(date string) (time.Time, error) {
	t, err := time.Parse(StatsDateLayout, date)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid stats date %q: %w", date, err)
	}
	return t.UTC(), nil
}

// DailyUsageStatistics is all usage counts of one viewer instance for one
// calendar day. Its natural key is (Date, ViewerName).
//
// The struct itself is not synchronized; the recorder serializes all
// mutations of the open day (see recorders.RecordingService). Once a day has
// been closed and handed to the exporter it is never mutated again.
type DailyUsageStatistics struct {
	Date       string                             `json:"date"`
	ViewerName string                             `json:"viewer-name"`
	Sessions   map[string]*SessionUsageStatistics `json:"sessions"`
}

// NewDailyUsageStatistics creates an empty daily aggregate. The date must be
// a valid ISO calendar date and the viewer name must not be blank; both are
// immutable for the object's lifetime.
func NewDailyUsageStatistics(date string, viewerName string) (*DailyUsageStatistics, error) {
	if _, err := ParseStatsDate(date); err != nil {
		return nil, err
	}
	if strings.TrimSpace(viewerName) == "" {
		return nil, fmt.Errorf("viewer name cannot be blank")
	}
	return &DailyUsageStatistics{
		Date:       date,
		ViewerName: viewerName,
		Sessions:   make(map[string]*SessionUsageStatistics),
	}, nil
}

// AddSession inserts or replaces the entry for the session's id. Replacement
// is last-write-wins at session granularity: a session's counters are
// maintained by a single recorder path, never merged from independent
// producers.
func (d *DailyUsageStatistics) AddSession(session *SessionUsageStatistics) {
	if d.Sessions == nil {
		d.Sessions = make(map[string]*SessionUsageStatistics)
	}
	d.Sessions[session.SessionID] = session
}

// Session returns the session entry for sessionID, if present.
func (d *DailyUsageStatistics) Session(sessionID string) (*SessionUsageStatistics, bool) {
	session, ok := d.Sessions[sessionID]
	return session, ok
}

// TotalRequestCount folds the count for (t, recordID) across all sessions.
func (d *DailyUsageStatistics) TotalRequestCount(t RequestType, recordID string) int64 {
	var total int64
	for _, session := range d.Sessions {
		total += session.Counters(recordID).Count(t)
	}
	return total
}

// RecordIDs returns the union of record ids touched by any session, sorted
// so export rows are deterministic.
func (d *DailyUsageStatistics) RecordIDs() []string {
	seen := make(map[string]struct{})
	for _, session := range d.Sessions {
		for recordID := range session.ByRecord {
			seen[recordID] = struct{}{}
		}
	}
	ids := make([]string, 0, len(seen))
	for id := range seen {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}
