package store

import (
	"fmt"
	"testing"

	"github.com/homec-dev/homec/pkg/dataset"
	"github.com/homec-dev/homec/pkg/event"
)

func TestAnalyzeCountsSlots(t *testing.T) {
	week := &dataset.Week{
		WeekOf: "2025-11-30",
		Events: []*event.Event{
			{Date: "2025-11-30", Title: "Church", Time: "10:00 AM"},             // Sunday
			{Date: "2025-12-02", Title: "Parent council", Time: "7:00 PM"},      // evening
			{Date: "2025-12-04", Title: "Recital", Time: "6:00 PM - 8:00 PM"},   // evening
			{Date: "2025-12-06", Title: "Market run", PrepTasks: []string{"list", "bags"}}, // Saturday
		},
	}

	a := Analyze(week)
	if a.TotalEvents != 4 {
		t.Fatalf("TotalEvents = %d, want 4", a.TotalEvents)
	}
	if a.EveningCommitments != 2 {
		t.Fatalf("EveningCommitments = %d, want 2", a.EveningCommitments)
	}
	if a.WeekendEvents != 2 {
		t.Fatalf("WeekendEvents = %d, want 2", a.WeekendEvents)
	}
	if a.PrepTaskCount != 2 {
		t.Fatalf("PrepTaskCount = %d, want 2", a.PrepTaskCount)
	}
	if a.BusyScore != dataset.BusyMedium {
		t.Fatalf("BusyScore = %q, want %q", a.BusyScore, dataset.BusyMedium)
	}
}

func TestAnalyzeEmptyWeek(t *testing.T) {
	a := Analyze(&dataset.Week{WeekOf: "2025-12-07"})
	if a.TotalEvents != 0 || a.BusyScore != dataset.BusyLow {
		t.Fatalf("empty week analysis: %+v", a)
	}
}

func TestBusyScoreThresholds(t *testing.T) {
	tests := []struct {
		events   int
		evenings int
		prep     int
		want     string
	}{
		{0, 0, 0, dataset.BusyLow},
		{3, 0, 0, dataset.BusyLow},
		{3, 1, 0, dataset.BusyMedium},
		{5, 2, 1, dataset.BusyMedium},
		{6, 2, 0, dataset.BusyHigh},
		{8, 3, 2, dataset.BusyHigh},
		{9, 4, 4, dataset.BusyExtreme},
	}
	for _, tc := range tests {
		t.Run(fmt.Sprintf("%d-%d-%d", tc.events, tc.evenings, tc.prep), func(t *testing.T) {
			a := &dataset.Analysis{
				TotalEvents:        tc.events,
				EveningCommitments: tc.evenings,
				PrepTaskCount:      tc.prep,
			}
			if got := busyScore(a); got != tc.want {
				t.Fatalf("busyScore = %q, want %q", got, tc.want)
			}
		})
	}
}
