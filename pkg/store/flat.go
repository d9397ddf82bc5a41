package store

import (
	"github.com/homec-dev/homec/pkg/datekey"
	"github.com/homec-dev/homec/pkg/dataset"
	"github.com/homec-dev/homec/pkg/event"
)

// backlogID names the catch-all month that retains events whose date falls
// outside the loaded horizon. Orphans are kept visible instead of dropped.
const backlogID = "backlog"

type flatStore struct {
	base
}

func (s *flatStore) Shape() dataset.Shape { return dataset.ShapeFlat }

func (s *flatStore) Add(e *event.Event) (Placement, error) {
	if e == nil || !datekey.Valid(e.Date) {
		return Placement{}, ErrNoDate
	}
	s.ensureUniqueID(e)
	placement := s.place(e)
	s.rebuild()
	return placement, nil
}

func (s *flatStore) place(e *event.Event) Placement {
	id := datekey.MonthID(e.Date)
	month, ok := s.doc.Months.FlatByID(id)
	if !ok {
		month = s.backlog()
		id = backlogID
	}
	month.Events = append(month.Events, e)
	sortEvents(month.Events)
	return Placement{MonthID: id, Orphaned: id == backlogID}
}

func (s *flatStore) backlog() *dataset.FlatMonth {
	if month, ok := s.doc.Months.FlatByID(backlogID); ok {
		return month
	}
	month := &dataset.FlatMonth{ID: backlogID, Name: "Backlog"}
	s.doc.Months.Flat = append(s.doc.Months.Flat, month)
	return month
}

func (s *flatStore) Update(id string, patch event.Patch) (*event.Event, bool) {
	e, ok := s.Find(id)
	if !ok {
		return nil, false
	}
	dateChanged := patch.Apply(e)
	if dateChanged {
		// Re-place so the event lives in the month matching its new date.
		s.detach(id)
		s.place(e)
	} else {
		if month, ok := s.monthOf(id); ok {
			sortEvents(month.Events)
		}
	}
	s.rebuild()
	return e, true
}

func (s *flatStore) Remove(id string) bool {
	if !s.detach(id) {
		return false
	}
	s.rebuild()
	return true
}

func (s *flatStore) detach(id string) bool {
	for _, month := range s.doc.Months.Flat {
		if events, ok := removeByID(month.Events, id); ok {
			month.Events = events
			return true
		}
	}
	return false
}

func (s *flatStore) monthOf(id string) (*dataset.FlatMonth, bool) {
	for _, month := range s.doc.Months.Flat {
		for _, e := range month.Events {
			if e.ID == id {
				return month, true
			}
		}
	}
	return nil, false
}
