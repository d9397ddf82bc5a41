package store

import (
	"github.com/homec-dev/homec/pkg/datekey"
	"github.com/homec-dev/homec/pkg/dataset"
	"github.com/homec-dev/homec/pkg/event"
)

type nestedStore struct {
	base
}

func (s *nestedStore) Shape() dataset.Shape { return dataset.ShapeNested }

func (s *nestedStore) Add(e *event.Event) (Placement, error) {
	if e == nil || !datekey.Valid(e.Date) {
		return Placement{}, ErrNoDate
	}
	s.ensureUniqueID(e)
	placement := s.place(e)
	s.refreshAnalysis()
	s.rebuild()
	return placement, nil
}

// place finds the week whose [weekOf, weekOf+6] window contains the date.
// Unmatched dates fall back to the last week of the resolved month; dates
// with no resolvable month land in the last week of the horizon and are
// reported as orphaned.
func (s *nestedStore) place(e *event.Event) Placement {
	monthID := datekey.MonthID(e.Date)
	month, ok := s.doc.Months.NestedByID(monthID)
	if ok && len(month.Weeks) > 0 {
		for _, week := range month.Weeks {
			if weekContains(week, e.Date) {
				week.Events = append(week.Events, e)
				sortEvents(week.Events)
				return Placement{MonthID: monthID, WeekOf: week.WeekOf}
			}
		}
		last := month.Weeks[len(month.Weeks)-1]
		last.Events = append(last.Events, e)
		sortEvents(last.Events)
		return Placement{MonthID: monthID, WeekOf: last.WeekOf}
	}

	if week, owner := s.lastWeek(); week != nil {
		week.Events = append(week.Events, e)
		sortEvents(week.Events)
		return Placement{MonthID: owner.ID(), WeekOf: week.WeekOf, Orphaned: true}
	}

	// Degenerate horizon with no weeks at all: grow one so the event is
	// still retained.
	week := &dataset.Week{WeekOf: datekey.WeekStart(mustNoon(e.Date)), Events: []*event.Event{e}}
	if month == nil {
		month = &dataset.NestedMonth{Slug: backlogID, MonthName: "Backlog"}
		s.doc.Months.Nested = append(s.doc.Months.Nested, month)
		monthID = backlogID
	}
	month.Weeks = append(month.Weeks, week)
	return Placement{MonthID: monthID, WeekOf: week.WeekOf, Orphaned: true}
}

func (s *nestedStore) lastWeek() (*dataset.Week, *dataset.NestedMonth) {
	for i := len(s.doc.Months.Nested) - 1; i >= 0; i-- {
		month := s.doc.Months.Nested[i]
		if n := len(month.Weeks); n > 0 {
			return month.Weeks[n-1], month
		}
	}
	return nil, nil
}

func (s *nestedStore) Update(id string, patch event.Patch) (*event.Event, bool) {
	e, ok := s.Find(id)
	if !ok {
		return nil, false
	}
	dateChanged := patch.Apply(e)
	if dateChanged {
		// Move the event to the week matching its new date. Leaving it in
		// the old week keeps a stale bucket that the grid and agenda
		// views would disagree about.
		s.detach(id)
		s.place(e)
	} else {
		if week := s.weekOf(id); week != nil {
			sortEvents(week.Events)
		}
	}
	s.refreshAnalysis()
	s.rebuild()
	return e, true
}

func (s *nestedStore) Remove(id string) bool {
	if !s.detach(id) {
		return false
	}
	s.refreshAnalysis()
	s.rebuild()
	return true
}

func (s *nestedStore) detach(id string) bool {
	for _, week := range s.doc.AllWeeks() {
		if events, ok := removeByID(week.Events, id); ok {
			week.Events = events
			return true
		}
	}
	return false
}

func (s *nestedStore) weekOf(id string) *dataset.Week {
	for _, week := range s.doc.AllWeeks() {
		for _, e := range week.Events {
			if e.ID == id {
				return week
			}
		}
	}
	return nil
}

func (s *nestedStore) refreshAnalysis() {
	for _, week := range s.doc.AllWeeks() {
		week.Analysis = Analyze(week)
	}
}

func weekContains(week *dataset.Week, date string) bool {
	if !datekey.Valid(week.WeekOf) {
		return false
	}
	end, err := datekey.AddDays(week.WeekOf, 6)
	if err != nil {
		return false
	}
	return date >= week.WeekOf && date <= end
}
