package store

import (
	"encoding/json"
	"time"
)

// Timestamps and dates are stored as text. The driver hands them back as
// strings, so row structs carry strings and convert at the boundary.
const (
	timeFormat = time.RFC3339
	dateFormat = "2006-01-02"
)

func encodeTime(t time.Time) string {
	return t.UTC().Format(timeFormat)
}

func decodeTime(s string) time.Time {
	if s == "" {
		return time.Time{}
	}
	t, err := time.Parse(timeFormat, s)
	if err != nil {
		return time.Time{}
	}
	return t
}

func encodeDate(t time.Time) string {
	return t.Format(dateFormat)
}

func decodeDate(s string) time.Time {
	if s == "" {
		return time.Time{}
	}
	t, err := time.Parse(dateFormat, s)
	if err != nil {
		return time.Time{}
	}
	return t
}

// encodeList stores a string slice as a JSON array, never null.
func encodeList(v []string) string {
	if v == nil {
		v = []string{}
	}
	b, _ := json.Marshal(v)
	return string(b)
}

func decodeList(s string) []string {
	var v []string
	if err := json.Unmarshal([]byte(s), &v); err != nil {
		return nil
	}
	return v
}

func encodeAnswers(v map[string]int) string {
	if v == nil {
		v = map[string]int{}
	}
	b, _ := json.Marshal(v)
	return string(b)
}

func decodeAnswers(s string) map[string]int {
	var v map[string]int
	if err := json.Unmarshal([]byte(s), &v); err != nil {
		return map[string]int{}
	}
	return v
}
