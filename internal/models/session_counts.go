package models

import "encoding/json"

// SessionRequestCounts holds the per-request-type counts of one session for
// one record. Its JSON form is a dense integer array indexed by RequestType
// ordinal, e.g. [23,4,3].
//
// Decoding is deliberately tolerant: a short array leaves the trailing types
// at zero, a malformed or absent array yields all zeros, and negative values
// are clamped to zero. Historical documents written with fewer request types
// must stay readable after new types are appended.
type SessionRequestCounts struct {
	counts [RequestTypeCount]int64
}

// NewSessionRequestCounts returns an all-zero counts value.
func NewSessionRequestCounts() *SessionRequestCounts {
	return &SessionRequestCounts{}
}

// NewSessionRequestCountsFromArray reconstructs counts from a dense array.
// Missing trailing entries default to zero; negative entries are clamped to
// zero; entries beyond the known request types are ignored.
func NewSessionRequestCountsFromArray(values []int64) *SessionRequestCounts {
	c := &SessionRequestCounts{}
	for i, v := range values {
		if i >= RequestTypeCount {
			break
		}
		if v < 0 {
			v = 0
		}
		c.counts[i] = v
	}
	return c
}

// Increment adds 1 to the count for the given type. Invalid types are ignored.
func (c *SessionRequestCounts) Increment(t RequestType) {
	if !t.Valid() {
		return
	}
	c.counts[t]++
}

// Count returns the current count for the given type, 0 for unset or invalid
// types.
func (c *SessionRequestCounts) Count(t RequestType) int64 {
	if !t.Valid() {
		return 0
	}
	return c.counts[t]
}

// Total returns the sum over all request types.
func (c *SessionRequestCounts) Total() int64 {
	var total int64
	for _, v := range c.counts {
		total += v
	}
	return total
}

// IsZero reports whether every count is zero.
func (c *SessionRequestCounts) IsZero() bool {
	for _, v := range c.counts {
		if v != 0 {
			return false
		}
	}
	return true
}

// ToArray returns the full-length dense array in ordinal order.
func (c *SessionRequestCounts) ToArray() []int64 {
	out := make([]int64, RequestTypeCount)
	copy(out, c.counts[:])
	return out
}

// MarshalJSON encodes the counts as a dense array, e.g. [23,4,3].
func (c *SessionRequestCounts) MarshalJSON() ([]byte, error) {
	return json.Marshal(c.ToArray())
}

// UnmarshalJSON decodes a dense array, zero-filling on malformed input
// rather than failing.
func (c *SessionRequestCounts) UnmarshalJSON(data []byte) error {
	var values []int64
	if err := json.Unmarshal(data, &values); err != nil {
		*c = SessionRequestCounts{}
		return nil
	}
	*c = *NewSessionRequestCountsFromArray(values)
	return nil
}
