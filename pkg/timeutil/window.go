// Package timeutil provides the calendar grid's time arithmetic: 15-minute
// snapping, slot/instant conversion, and human-friendly window parsing.
package timeutil

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// DefaultWindow is the listing window used when none is provided.
const DefaultWindow = "1w"

var segmentPattern = regexp.MustCompile(`^(\d+)([wdhm])`)

var segmentUnits = map[string]time.Duration{
	"w": 7 * 24 * time.Hour,
	"d": 24 * time.Hour,
	"h": time.Hour,
	"m": time.Minute,
}

// ParseWindow parses a compact window such as "1w", "3d" or "1w2d6h" into a
// duration plus its canonical form. An empty input yields the default window.
func ParseWindow(input string) (time.Duration, string, error) {
	trimmed := strings.ToLower(strings.ReplaceAll(strings.TrimSpace(input), " ", ""))
	if trimmed == "" {
		trimmed = DefaultWindow
	}

	var total time.Duration
	rest := trimmed
	for len(rest) > 0 {
		m := segmentPattern.FindStringSubmatch(rest)
		if m == nil {
			return 0, "", fmt.Errorf("invalid window segment %q", rest)
		}
		n, err := strconv.ParseInt(m[1], 10, 64)
		if err != nil {
			return 0, "", fmt.Errorf("invalid window value %q: %w", m[1], err)
		}
		total += time.Duration(n) * segmentUnits[m[2]]
		rest = rest[len(m[0]):]
	}
	if total <= 0 {
		return 0, "", fmt.Errorf("window must be greater than zero")
	}
	return total, FormatWindow(total), nil
}

// FormatWindow renders a duration with week/day/hour/minute tokens.
func FormatWindow(d time.Duration) string {
	if d <= 0 {
		return "0m"
	}
	labels := []string{"w", "d", "h", "m"}
	values := []time.Duration{7 * 24 * time.Hour, 24 * time.Hour, time.Hour, time.Minute}

	var b strings.Builder
	rest := d
	for i, v := range values {
		if rest < v {
			continue
		}
		fmt.Fprintf(&b, "%d%s", rest/v, labels[i])
		rest %= v
	}
	if b.Len() == 0 {
		return "0m"
	}
	return b.String()
}
