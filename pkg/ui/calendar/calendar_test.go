package calendar

import (
	"strings"
	"testing"
	"time"
)

func TestRenderGeometry(t *testing.T) {
	tests := []struct {
		month time.Time
		rows  int
	}{
		// December 2025 starts on a Monday, 31 days.
		{time.Date(2025, time.December, 1, 12, 0, 0, 0, time.Local), 5},
		// February 2026 starts on a Sunday, 28 days, exactly 4 rows.
		{time.Date(2026, time.February, 1, 12, 0, 0, 0, time.Local), 4},
		// August 2026 starts on a Saturday, 31 days, spills into 6 rows.
		{time.Date(2026, time.August, 1, 12, 0, 0, 0, time.Local), 6},
	}
	for _, tc := range tests {
		out := Render(tc.month, nil, Options{ShowHeader: true})
		lines := strings.Split(out, "\n")
		if got := len(lines) - 1; got != tc.rows {
			t.Fatalf("%s: %d rows, want %d\n%s", tc.month.Format("2006-01"), got, tc.rows, out)
		}
		if lines[0] != "Su Mo Tu We Th Fr Sa" {
			t.Fatalf("header = %q", lines[0])
		}
	}
}

func TestRenderMarksOverflowDays(t *testing.T) {
	month := time.Date(2025, time.December, 1, 12, 0, 0, 0, time.Local)
	out := Render(month, []Day{
		{Day: 4, HasEvents: true, Overflow: true},
		{Day: 5, HasEvents: true},
	}, Options{})

	if !strings.Contains(out, "❹") {
		t.Fatalf("expected filled glyph for overflow day\n%s", out)
	}
	if !strings.Contains(out, "⑤") {
		t.Fatalf("expected open glyph for plain day\n%s", out)
	}
}

func TestRenderZeroMonth(t *testing.T) {
	if out := Render(time.Time{}, nil, Options{}); out != "" {
		t.Fatalf("expected empty render, got %q", out)
	}
}
