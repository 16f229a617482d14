package utils

import (
	"strings"
	"time"
)

// timeLayouts are tried in order when parsing timestamps from track and
// metadata sources. Layouts with an explicit offset keep it; the zoneless
// layouts are interpreted in the location passed to ParseTimeIn.
var timeLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04:05",
	"2006:01:02 15:04:05", // EXIF DateTime form
	"2006-01-02 15:04:05",
}

// offsetLayouts are the entries of timeLayouts that carry their own offset.
var offsetLayouts = map[string]bool{
	time.RFC3339Nano: true,
	time.RFC3339:     true,
}

// ParseTimeIn parses s using the first matching known layout. Zoneless
// timestamps are interpreted in loc; timestamps with an explicit offset
// keep that offset. Returns false if no layout matches.
func ParseTimeIn(s string, loc *time.Location) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	if loc == nil {
		loc = time.UTC
	}
	for _, layout := range timeLayouts {
		if offsetLayouts[layout] {
			if t, err := time.Parse(layout, s); err == nil {
				return t, true
			}
			continue
		}
		if t, err := time.ParseInLocation(layout, s, loc); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// ParseTime parses s with zoneless timestamps interpreted as UTC.
func ParseTime(s string) (time.Time, bool) {
	return ParseTimeIn(s, time.UTC)
}

// Iso8601Now returns the current time in ISO8601 format
func Iso8601Now() string {
	return time.Now().UTC().Format(time.RFC3339)
}

// Iso8601UTC formats t in ISO8601, normalized to UTC
func Iso8601UTC(t time.Time) string {
	return t.UTC().Format(time.RFC3339)
}

// DayKey returns the civil date of t in t's own location, YYYY-MM-DD
func DayKey(t time.Time) string {
	return t.Format("2006-01-02")
}
