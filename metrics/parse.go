// metrics/parse.go
package metrics

import (
	"strconv"
	"strings"
	"time"
)

// ParseAmount converts a raw form string to a number. Unparseable input
// coerces to 0 so the calculators stay total functions.
func ParseAmount(s string) float64 {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "$")
	s = strings.ReplaceAll(s, ",", "")
	if s == "" {
		return 0
	}
	x, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return x
}

// NormalizeSymbol trims and upper-cases a ticker symbol.
func NormalizeSymbol(s string) string {
	return strings.ToUpper(strings.TrimSpace(s))
}

// ParseTags splits a comma-separated tag string into trimmed,
// lower-cased, non-empty tags.
func ParseTags(s string) []string {
	parts := strings.Split(s, ",")
	tags := make([]string, 0, len(parts))
	for _, p := range parts {
		t := strings.ToLower(strings.TrimSpace(p))
		if t != "" {
			tags = append(tags, t)
		}
	}
	return tags
}

// NormalizeMonthKey trims a "YYYY-MM" key.
func NormalizeMonthKey(s string) string {
	return strings.TrimSpace(s)
}

// MonthKeyFromDate derives the "YYYY-MM" key from an ISO "YYYY-MM-DD"
// date. Falls back to a prefix slice for inputs that carry a key-shaped
// prefix but do not parse as a full date.
func MonthKeyFromDate(date string) string {
	date = strings.TrimSpace(date)
	if t, err := time.Parse("2006-01-02", date); err == nil {
		return t.Format("2006-01")
	}
	if len(date) >= 7 {
		return date[:7]
	}
	return ""
}
