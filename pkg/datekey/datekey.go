// Package datekey provides the canonical YYYY-MM-DD date keys the rest of
// the calendar is built on, plus weekday and time-of-day bucketing helpers.
//
// Keys are always derived from the local calendar date. Going through UTC
// here is a one-day-shift bug waiting to happen, so nothing in this package
// ever converts a key through a UTC timestamp.
package datekey

import (
	"fmt"
	"time"
)

// Layout is the wire format for date keys.
const Layout = "2006-01-02"

// Key returns the date key for the local calendar date of t.
func Key(t time.Time) string {
	return fmt.Sprintf("%04d-%02d-%02d", t.Year(), int(t.Month()), t.Day())
}

// Today returns the key for the current local date.
func Today() string {
	return Key(time.Now())
}

// ParseLocalNoon parses a date key into a local time pinned to midday.
// Pinning to noon keeps the host UTC offset from pulling the date across
// midnight in either direction when the value is later formatted back.
func ParseLocalNoon(key string) (time.Time, error) {
	t, err := time.ParseInLocation(Layout, key, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("datekey: parse %q: %w", key, err)
	}
	return time.Date(t.Year(), t.Month(), t.Day(), 12, 0, 0, 0, time.Local), nil
}

// Valid reports whether key is a well-formed date key.
func Valid(key string) bool {
	_, err := time.ParseInLocation(Layout, key, time.Local)
	return err == nil
}

// WeekdayIndex returns the Sunday-first weekday index (0..6) of t.
func WeekdayIndex(t time.Time) int {
	return int(t.Weekday())
}

// MonthID returns the YYYY-MM prefix of a date key. The key is not
// validated; callers validate at the load boundary.
func MonthID(key string) string {
	if len(key) < 7 {
		return key
	}
	return key[:7]
}

// AddDays returns the key offset n calendar days from key.
func AddDays(key string, n int) (string, error) {
	t, err := ParseLocalNoon(key)
	if err != nil {
		return "", err
	}
	return Key(t.AddDate(0, 0, n)), nil
}

// WeekStart returns the key of the Sunday on or before the given day.
func WeekStart(t time.Time) string {
	return Key(t.AddDate(0, 0, -WeekdayIndex(t)))
}
