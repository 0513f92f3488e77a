package dataset

import (
	"math"
	"strconv"
	"strings"
	"time"
)

var DefaultDateLayouts = []string{
	"2006-01-02",
	"1/2/2006",
	"01/02/2006",
	"1/2/2006 (Monday)",
	"Jan-2006",
	time.RFC3339,
}

// ParseNumber converts a raw cell to a number. Anything that does not parse
// to a finite number becomes 0, so a missing or garbled measure counts as a
// zero observation.
func ParseNumber(raw string) float64 {
	f, _ := parseNumber(raw)
	return f
}

// parseNumber also reports whether raw held a finite number. An empty cell
// is not reported since d3 reads it as 0 too.
func parseNumber(raw string) (float64, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, true
	}
	f, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return f, true
}

// ParseDate tries layouts in order, DefaultDateLayouts when none are given.
func ParseDate(raw string, layouts ...string) (time.Time, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return time.Time{}, false
	}
	if len(layouts) == 0 {
		layouts = DefaultDateLayouts
	}
	for _, layout := range layouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}
