package models

import (
	"strings"
	"time"
)

// DefaultRecentWindow is the look-back used by the recent IP report
const DefaultRecentWindow = 24 * time.Hour

// TimeRange represents a closed range of instants
type TimeRange struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// LastWindow returns the range [now-window, now]
func LastWindow(now time.Time, window time.Duration) TimeRange {
	if window <= 0 {
		window = DefaultRecentWindow
	}
	return TimeRange{Start: now.Add(-window), End: now}
}

// Contains reports whether t falls inside the range, bounds included
func (tr TimeRange) Contains(t time.Time) bool {
	return !t.Before(tr.Start) && !t.After(tr.End)
}

// FormatLedgerTime formats a timestamp as "2006-01-02 15:04:05[.ffffff]+00:00".
// Microseconds are printed only when non-zero.
func FormatLedgerTime(t time.Time) string {
	t = t.UTC()
	if t.Nanosecond()/int(time.Microsecond) == 0 {
		return t.Format("2006-01-02 15:04:05-07:00")
	}
	return t.Format("2006-01-02 15:04:05.000000-07:00")
}

// ParseAddressList splits a comma separated header or env value, dropping blanks
func ParseAddressList(value string) []string {
	var out []string
	for _, part := range strings.Split(value, ",") {
		part = strings.TrimSpace(part)
		if part != "" {
			out = append(out, part)
		}
	}
	return out
}
