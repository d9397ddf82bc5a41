package store

import (
	"errors"
	"testing"

	"github.com/homec-dev/homec/pkg/dataset"
	"github.com/homec-dev/homec/pkg/event"
)

func flatDoc() *dataset.Document {
	return &dataset.Document{
		Months: &dataset.MonthSet{
			Shape: dataset.ShapeFlat,
			Flat: []*dataset.FlatMonth{
				{ID: "2025-11", Name: "November 2025", Events: []*event.Event{
					{ID: "thanksgiving", Date: "2025-11-27", Title: "Thanksgiving", Category: "family"},
				}},
				{ID: "2025-12", Name: "December 2025"},
			},
		},
	}
}

func nestedDoc() *dataset.Document {
	return &dataset.Document{
		Months: &dataset.MonthSet{
			Shape: dataset.ShapeNested,
			Nested: []*dataset.NestedMonth{
				{
					Slug:      "december",
					MonthName: "December 2025",
					Weeks: []*dataset.Week{
						{WeekOf: "2025-11-30", WeekNumber: 1, Events: []*event.Event{
							{ID: "recital", Date: "2025-12-04", Title: "Piano recital", Time: "6:00 PM"},
						}},
						{WeekOf: "2025-12-07", WeekNumber: 2},
					},
				},
			},
		},
	}
}

func TestFlatAddPlacesInMatchingMonth(t *testing.T) {
	s := New(flatDoc())

	p, err := s.Add(&event.Event{Date: "2025-12-05", Title: "School concert"})
	if err != nil {
		t.Fatalf("add: %v", err)
	}
	if p.MonthID != "2025-12" || p.Orphaned {
		t.Fatalf("unexpected placement: %+v", p)
	}

	got := s.EventsOn("2025-12-05")
	if len(got) != 1 || got[0].Title != "School concert" {
		t.Fatalf("index not updated, got %v", got)
	}
	if got[0].ID == "" {
		t.Fatal("add must assign an id")
	}

	count := 0
	for _, e := range s.Events() {
		if e.Title == "School concert" {
			count++
		}
	}
	if count != 1 {
		t.Fatalf("event stored %d times, want exactly once", count)
	}
}

func TestFlatAddRejectsBadDate(t *testing.T) {
	s := New(flatDoc())
	for _, date := range []string{"", "12/05/2025", "2025-13-01", "someday"} {
		if _, err := s.Add(&event.Event{Date: date, Title: "x"}); !errors.Is(err, ErrNoDate) {
			t.Fatalf("date %q: got err %v, want ErrNoDate", date, err)
		}
	}
	if _, err := s.Add(nil); !errors.Is(err, ErrNoDate) {
		t.Fatalf("nil event: got err %v, want ErrNoDate", err)
	}
}

func TestFlatAddOrphanLandsInBacklog(t *testing.T) {
	s := New(flatDoc())

	p, err := s.Add(&event.Event{Date: "2026-03-10", Title: "Dentist"})
	if err != nil {
		t.Fatalf("add: %v", err)
	}
	if !p.Orphaned || p.MonthID != backlogID {
		t.Fatalf("unexpected placement: %+v", p)
	}

	month, ok := s.Document().Months.FlatByID(backlogID)
	if !ok {
		t.Fatal("backlog month not created")
	}
	if len(month.Events) != 1 || month.Events[0].Title != "Dentist" {
		t.Fatalf("backlog contents: %v", month.Events)
	}

	// The orphan is still reachable through the index.
	if got := s.EventsOn("2026-03-10"); len(got) != 1 {
		t.Fatalf("orphan not indexed: %v", got)
	}
}

func TestFlatUpdateMovesOnDateChange(t *testing.T) {
	s := New(flatDoc())

	newDate := "2025-12-12"
	e, ok := s.Update("thanksgiving", event.Patch{Date: &newDate})
	if !ok {
		t.Fatal("update reported missing event")
	}
	if e.ID != "thanksgiving" {
		t.Fatalf("update changed identity: %q", e.ID)
	}

	nov, _ := s.Document().Months.FlatByID("2025-11")
	if len(nov.Events) != 0 {
		t.Fatalf("event left behind in old month: %v", nov.Events)
	}
	dec, _ := s.Document().Months.FlatByID("2025-12")
	if len(dec.Events) != 1 || dec.Events[0].ID != "thanksgiving" {
		t.Fatalf("event not re-placed: %v", dec.Events)
	}

	if got := s.EventsOn("2025-11-27"); len(got) != 0 {
		t.Fatalf("stale index entry: %v", got)
	}
	if got := s.EventsOn(newDate); len(got) != 1 {
		t.Fatalf("index missing moved event: %v", got)
	}
}

func TestFlatUpdateTitleKeepsPlacement(t *testing.T) {
	s := New(flatDoc())

	title := "Thanksgiving dinner"
	if _, ok := s.Update("thanksgiving", event.Patch{Title: &title}); !ok {
		t.Fatal("update reported missing event")
	}
	nov, _ := s.Document().Months.FlatByID("2025-11")
	if len(nov.Events) != 1 || nov.Events[0].Title != title {
		t.Fatalf("patch not applied in place: %v", nov.Events)
	}
}

func TestFlatRemoveIsIdempotent(t *testing.T) {
	s := New(flatDoc())

	if !s.Remove("thanksgiving") {
		t.Fatal("first remove should report true")
	}
	if s.Remove("thanksgiving") {
		t.Fatal("second remove should report false")
	}
	if got := s.EventsOn("2025-11-27"); len(got) != 0 {
		t.Fatalf("index retains removed event: %v", got)
	}
	if _, ok := s.Find("thanksgiving"); ok {
		t.Fatal("removed event still findable")
	}
}

func TestFlatEventsSortedByDate(t *testing.T) {
	s := New(flatDoc())
	for _, date := range []string{"2025-12-20", "2025-12-01", "2025-12-10"} {
		if _, err := s.Add(&event.Event{Date: date, Title: date}); err != nil {
			t.Fatalf("add %s: %v", date, err)
		}
	}
	dec, _ := s.Document().Months.FlatByID("2025-12")
	for i := 1; i < len(dec.Events); i++ {
		if dec.Events[i-1].Date > dec.Events[i].Date {
			t.Fatalf("events out of order at %d: %s > %s", i, dec.Events[i-1].Date, dec.Events[i].Date)
		}
	}
}

func TestNestedAddPicksWeekByWindow(t *testing.T) {
	s := New(nestedDoc())

	p, err := s.Add(&event.Event{Date: "2025-12-09", Title: "Book fair"})
	if err != nil {
		t.Fatalf("add: %v", err)
	}
	if p.MonthID != "2025-12" || p.WeekOf != "2025-12-07" || p.Orphaned {
		t.Fatalf("unexpected placement: %+v", p)
	}
}

func TestNestedAddFallsBackToLastWeek(t *testing.T) {
	s := New(nestedDoc())

	// 2025-12-31 is past every declared week window but still in December.
	p, err := s.Add(&event.Event{Date: "2025-12-31", Title: "New Year's Eve"})
	if err != nil {
		t.Fatalf("add: %v", err)
	}
	if p.WeekOf != "2025-12-07" || p.Orphaned {
		t.Fatalf("unexpected placement: %+v", p)
	}
}

func TestNestedAddOrphanUsesHorizonTail(t *testing.T) {
	s := New(nestedDoc())

	p, err := s.Add(&event.Event{Date: "2026-03-10", Title: "Dentist"})
	if err != nil {
		t.Fatalf("add: %v", err)
	}
	if !p.Orphaned || p.WeekOf != "2025-12-07" {
		t.Fatalf("unexpected placement: %+v", p)
	}
	if got := s.EventsOn("2026-03-10"); len(got) != 1 {
		t.Fatalf("orphan not indexed: %v", got)
	}
}

func TestNestedUpdateMovesBetweenWeeks(t *testing.T) {
	s := New(nestedDoc())

	newDate := "2025-12-10"
	if _, ok := s.Update("recital", event.Patch{Date: &newDate}); !ok {
		t.Fatal("update reported missing event")
	}

	month := s.Document().Months.Nested[0]
	if n := len(month.Weeks[0].Events); n != 0 {
		t.Fatalf("event left behind in first week, %d events", n)
	}
	second := month.Weeks[1]
	if len(second.Events) != 1 || second.Events[0].ID != "recital" {
		t.Fatalf("event not moved: %v", second.Events)
	}
}

func TestNestedMutationsRefreshAnalysis(t *testing.T) {
	s := New(nestedDoc())

	month := s.Document().Months.Nested[0]
	first := month.Weeks[0]
	if first.Analysis == nil || first.Analysis.TotalEvents != 1 {
		t.Fatalf("analysis after load: %+v", first.Analysis)
	}
	if first.Analysis.EveningCommitments != 1 {
		t.Fatalf("6:00 PM recital should count as evening: %+v", first.Analysis)
	}

	if _, err := s.Add(&event.Event{Date: "2025-12-02", Title: "Soccer", Time: "4:00 PM"}); err != nil {
		t.Fatalf("add: %v", err)
	}
	if first.Analysis.TotalEvents != 2 {
		t.Fatalf("analysis not refreshed after add: %+v", first.Analysis)
	}

	if !s.Remove("recital") {
		t.Fatal("remove failed")
	}
	if first.Analysis.TotalEvents != 1 || first.Analysis.EveningCommitments != 0 {
		t.Fatalf("analysis not refreshed after remove: %+v", first.Analysis)
	}
}

func TestFindAcrossShapes(t *testing.T) {
	for name, doc := range map[string]*dataset.Document{"flat": flatDoc(), "nested": nestedDoc()} {
		s := New(doc)
		if _, ok := s.Find("nope"); ok {
			t.Fatalf("%s: found a phantom event", name)
		}
		all := s.Events()
		if len(all) == 0 {
			t.Fatalf("%s: no events in fixture", name)
		}
		if got, ok := s.Find(all[0].ID); !ok || got != all[0] {
			t.Fatalf("%s: find returned %v, %v", name, got, ok)
		}
	}
}

func TestAddAssignsDistinctIDsToIdenticalEvents(t *testing.T) {
	for name, doc := range map[string]*dataset.Document{"flat": flatDoc(), "nested": nestedDoc()} {
		s := New(doc)

		a := &event.Event{Date: "2025-12-05", Title: "Cook dinner", Category: "household"}
		b := &event.Event{Date: "2025-12-05", Title: "Cook dinner", Category: "household"}
		if _, err := s.Add(a); err != nil {
			t.Fatalf("%s: first add: %v", name, err)
		}
		if _, err := s.Add(b); err != nil {
			t.Fatalf("%s: second add: %v", name, err)
		}
		if a.ID == b.ID {
			t.Fatalf("%s: identical adds share id %q", name, a.ID)
		}

		if got, ok := s.Find(b.ID); !ok || got != b {
			t.Fatalf("%s: second event not addressable: %v, %v", name, got, ok)
		}
		if !s.Remove(b.ID) {
			t.Fatalf("%s: remove of second event failed", name)
		}
		if _, ok := s.Find(a.ID); !ok {
			t.Fatalf("%s: removing the second event took the first with it", name)
		}
		if s.Remove(b.ID) {
			t.Fatalf("%s: second removal of %q must report not-found", name, b.ID)
		}
		if got := s.EventsOn("2025-12-05"); len(got) != 1 {
			t.Fatalf("%s: day should keep exactly one event, got %d", name, len(got))
		}
	}
}

func TestNestedAddEmptyHorizonReportsBacklog(t *testing.T) {
	doc := &dataset.Document{
		Months: &dataset.MonthSet{
			Shape: dataset.ShapeNested,
			Nested: []*dataset.NestedMonth{
				{Slug: "december", MonthName: "December 2025"},
			},
		},
	}
	s := New(doc)

	p, err := s.Add(&event.Event{Date: "2026-03-10", Title: "Dentist"})
	if err != nil {
		t.Fatalf("add: %v", err)
	}
	if !p.Orphaned || p.MonthID != "backlog" {
		t.Fatalf("unexpected placement: %+v", p)
	}
	if got := s.EventsOn("2026-03-10"); len(got) != 1 {
		t.Fatalf("orphan not indexed: %v", got)
	}
}
