package api

import (
	"strconv"
	"time"
)

// Timestamp is an instant carried on the wire as unix seconds.
type Timestamp struct {
	time.Time
}

// NewTimestamp truncates t to whole seconds.
func NewTimestamp(t time.Time) Timestamp {
	return Timestamp{Time: time.Unix(t.Unix(), 0).UTC()}
}

// UnixSeconds formats t the way timestamps are sent as parameters.
func UnixSeconds(t time.Time) string {
	return strconv.FormatInt(t.Unix(), 10)
}

// UnmarshalJSON accepts a number or a numeric string. Null and "" leave the
// zero value.
func (ts *Timestamp) UnmarshalJSON(data []byte) error {
	if n := len(data); n >= 2 && data[0] == '"' && data[n-1] == '"' {
		data = data[1 : n-1]
	}
	if len(data) == 0 || string(data) == "null" {
		ts.Time = time.Time{}
		return nil
	}
	secs, err := strconv.ParseInt(string(data), 10, 64)
	if err != nil {
		return err
	}
	ts.Time = time.Unix(secs, 0).UTC()
	return nil
}

// MarshalJSON writes unix seconds, or null for the zero value.
func (ts Timestamp) MarshalJSON() ([]byte, error) {
	if ts.IsZero() {
		return []byte("null"), nil
	}
	return []byte(strconv.FormatInt(ts.Unix(), 10)), nil
}
