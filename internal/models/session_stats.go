package models

// SessionUsageStatistics is one anonymous browser session's share of a daily
// aggregate: the session identity plus per-record request counts.
//
// UserAgent and ClientAddress are display metadata, overwritten on every
// recorded request (last write wins); they are never counted.
type SessionUsageStatistics struct {
	SessionID     string                           `json:"sessionId"`
	UserAgent     string                           `json:"userAgent"`
	ClientAddress string                           `json:"clientAddress"`
	ByRecord      map[string]*SessionRequestCounts `json:"records"`
}

func NewSessionUsageStatistics(sessionID string) *SessionUsageStatistics {
	return &SessionUsageStatistics{
		SessionID: sessionID,
		ByRecord:  make(map[string]*SessionRequestCounts),
	}
}

// RecordRequest increments the counter for (recordID, t), creating the
// record's counters on first use.
func (s *SessionUsageStatistics) RecordRequest(t RequestType, recordID string) {
	counts, ok := s.ByRecord[recordID]
	if !ok {
		counts = NewSessionRequestCounts()
		if s.ByRecord == nil {
			s.ByRecord = make(map[string]*SessionRequestCounts)
		}
		s.ByRecord[recordID] = counts
	}
	counts.Increment(t)
}

// Counters returns the counts for recordID, or an all-zero value for unseen
// records. Callers never receive nil and never branch on absence.
func (s *SessionUsageStatistics) Counters(recordID string) *SessionRequestCounts {
	if counts, ok := s.ByRecord[recordID]; ok {
		return counts
	}
	return NewSessionRequestCounts()
}
