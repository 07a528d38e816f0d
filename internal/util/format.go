package util

import (
	"strconv"
	"strings"
	"time"

	"github.com/mattn/go-runewidth"
)

// InvalidDate is rendered in place of a timestamp that cannot be parsed.
const InvalidDate = "Invalid DateTime"

// localLayouts carry no zone and are read as local time.
var localLayouts = []string{
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04",
	"2006-01-02",
}

// ParseISO parses an ISO 8601 timestamp or plain date. Input without a
// zone is taken to be local time.
func ParseISO(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	if t, err := time.Parse(time.RFC3339Nano, s); err == nil {
		return t, true
	}
	for _, layout := range localLayouts {
		if t, err := time.ParseInLocation(layout, s, time.Local); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// FormatDateMedium formats an ISO 8601 timestamp as "Jan 2, 2006" in the
// local zone. Malformed input renders InvalidDate so the rest of the row
// still displays.
func FormatDateMedium(iso string) string {
	t, ok := ParseISO(iso)
	if !ok {
		return InvalidDate
	}
	return t.Local().Format("Jan 2, 2006")
}

// FormatNumber formats a number with the fewest digits that round-trip,
// so 12.5 renders "12.5" and 40 renders "40".
func FormatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// TruncateString truncates s to maxWidth display cells and adds "..." if needed.
func TruncateString(s string, maxWidth int) string {
	if maxWidth <= 0 {
		return ""
	}
	if runewidth.StringWidth(s) <= maxWidth {
		return s
	}
	if maxWidth < 3 {
		return runewidth.Truncate(s, maxWidth, "")
	}
	return runewidth.Truncate(s, maxWidth, "...")
}
