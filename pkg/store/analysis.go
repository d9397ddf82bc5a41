package store

import (
	"time"

	"github.com/homec-dev/homec/pkg/datekey"
	"github.com/homec-dev/homec/pkg/dataset"
)

// Analyze recomputes the derived metadata for a week from its events.
// Values shipped in a dataset are advisory at best; this is the only
// producer of analysis the rest of the system trusts.
func Analyze(week *dataset.Week) *dataset.Analysis {
	a := &dataset.Analysis{TotalEvents: len(week.Events)}
	for _, e := range week.Events {
		if datekey.SlotFor(e.Time) == datekey.Evening {
			a.EveningCommitments++
		}
		if t, err := datekey.ParseLocalNoon(e.Date); err == nil {
			if idx := datekey.WeekdayIndex(t); idx == 0 || idx == 6 {
				a.WeekendEvents++
			}
		}
		a.PrepTaskCount += len(e.PrepTasks)
	}
	a.BusyScore = busyScore(a)
	return a
}

// busyScore collapses the week's load into a coarse label. Evening
// commitments weigh extra since they compress the day's free time, and
// prep tasks count at half weight.
func busyScore(a *dataset.Analysis) string {
	load := a.TotalEvents + a.EveningCommitments + a.PrepTaskCount/2
	switch {
	case load <= 3:
		return dataset.BusyLow
	case load <= 7:
		return dataset.BusyMedium
	case load <= 12:
		return dataset.BusyHigh
	default:
		return dataset.BusyExtreme
	}
}

// mustNoon is for internal paths where the date key was already validated.
func mustNoon(key string) time.Time {
	t, err := datekey.ParseLocalNoon(key)
	if err != nil {
		return time.Now()
	}
	return t
}
