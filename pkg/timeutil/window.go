// Package timeutil parses the human-friendly horizon windows accepted by
// the list command, for example "2w" or "10d".
package timeutil

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

const (
	// DefaultWindow is the horizon used when none is provided.
	DefaultWindow = "2w"
)

var (
	windowPattern = regexp.MustCompile(`^\s*(\d+)\s*([a-z]+)`)
	unitMap       = map[string]time.Duration{
		"d":      24 * time.Hour,
		"day":    24 * time.Hour,
		"days":   24 * time.Hour,
		"w":      7 * 24 * time.Hour,
		"wk":     7 * 24 * time.Hour,
		"wks":    7 * 24 * time.Hour,
		"week":   7 * 24 * time.Hour,
		"weeks":  7 * 24 * time.Hour,
		"m":      30 * 24 * time.Hour,
		"mo":     30 * 24 * time.Hour,
		"month":  30 * 24 * time.Hour,
		"months": 30 * 24 * time.Hour,
	}
)

// ParseWindow parses a horizon string such as "2w", "10 days", or "1w3d"
// and returns the duration along with a compact canonical form. An empty
// input means the default window of two weeks.
func ParseWindow(input string) (time.Duration, string, error) {
	trimmed := strings.TrimSpace(input)
	if trimmed == "" {
		trimmed = DefaultWindow
	}

	remaining := strings.ToLower(trimmed)
	total := time.Duration(0)
	for len(remaining) > 0 {
		matches := windowPattern.FindStringSubmatch(remaining)
		if len(matches) != 3 {
			return 0, "", fmt.Errorf("invalid window segment %q", strings.TrimSpace(remaining))
		}

		value, err := strconv.ParseInt(matches[1], 10, 64)
		if err != nil {
			return 0, "", fmt.Errorf("invalid window value %q: %w", matches[1], err)
		}
		base, ok := unitMap[matches[2]]
		if !ok {
			return 0, "", fmt.Errorf("unsupported window unit %q", matches[2])
		}
		total += time.Duration(value) * base

		remaining = remaining[len(matches[0]):]
	}

	if total <= 0 {
		return 0, "", fmt.Errorf("window must be greater than zero")
	}

	return total, FormatWindow(total), nil
}

// WindowDays parses a horizon string and returns it as a whole number of
// days, rounding partial days up.
func WindowDays(input string) (int, string, error) {
	d, label, err := ParseWindow(input)
	if err != nil {
		return 0, "", err
	}
	const day = 24 * time.Hour
	days := int((d + day - 1) / day)
	return days, label, nil
}

// FormatWindow renders a duration using week and day tokens.
func FormatWindow(d time.Duration) string {
	if d <= 0 {
		return "0d"
	}

	var parts []string
	remaining := d
	for _, u := range []struct {
		label string
		value time.Duration
	}{
		{"w", 7 * 24 * time.Hour},
		{"d", 24 * time.Hour},
	} {
		if remaining < u.value {
			continue
		}
		count := remaining / u.value
		remaining -= count * u.value
		parts = append(parts, fmt.Sprintf("%d%s", count, u.label))
	}
	if len(parts) == 0 {
		return "<1d"
	}
	return strings.Join(parts, "")
}
