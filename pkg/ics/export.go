// Package ics serializes events into an iCalendar feed so the dataset can
// be imported into a phone or shared calendar. Events without a parseable
// clock time export as all-day VEVENTs.
package ics

import (
	"fmt"
	"time"

	ical "github.com/arran4/golang-ical"

	"github.com/homec-dev/homec/pkg/datekey"
	"github.com/homec-dev/homec/pkg/event"
)

// uidDomain suffixes generated VEVENT uids.
const uidDomain = "homec"

// Export serializes the events into an iCalendar document. The stamp
// becomes DTSTAMP on every event so repeated exports of the same data are
// byte-stable when the stamp is pinned.
func Export(events []*event.Event, stamp time.Time) (string, error) {
	cal := ical.NewCalendar()
	cal.SetMethod(ical.MethodPublish)
	cal.SetProductId("-//homec//calendar//EN")

	for _, e := range events {
		if e == nil || !datekey.Valid(e.Date) {
			continue
		}
		start, err := datekey.ParseLocalNoon(e.Date)
		if err != nil {
			return "", fmt.Errorf("ics: event %q: %w", e.ID, err)
		}

		ve := cal.AddEvent(fmt.Sprintf("%s@%s", e.ID, uidDomain))
		ve.SetDtStampTime(stamp)
		ve.SetSummary(e.Title)
		ve.SetAllDayStartAt(start)
		ve.SetAllDayEndAt(start.AddDate(0, 0, 1))
		if e.Location != "" {
			ve.SetLocation(e.Location)
		}
		if desc := description(e); desc != "" {
			ve.SetDescription(desc)
		}
	}
	return cal.Serialize(), nil
}

// description folds the fields that have no native ICS property into the
// free-text body.
func description(e *event.Event) string {
	desc := e.Notes
	if e.Time != "" && e.Time != "all-day" {
		if desc != "" {
			desc = e.Time + "\n" + desc
		} else {
			desc = e.Time
		}
	}
	if e.Category != "" {
		if desc != "" {
			desc += "\n"
		}
		desc += "category: " + e.Category
	}
	return desc
}
