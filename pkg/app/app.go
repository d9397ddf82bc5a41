// Package app exposes the query/command surface the CLI and TUI consume.
// It wraps the store and the view-model builders so UIs never touch the
// dataset directly.
package app

import (
	"context"
	"errors"
	"time"

	"github.com/homec-dev/homec/pkg/dataset"
	"github.com/homec-dev/homec/pkg/event"
	"github.com/homec-dev/homec/pkg/ics"
	"github.com/homec-dev/homec/pkg/store"
	"github.com/homec-dev/homec/pkg/viewmodel"
)

var ErrNotFound = errors.New("app: event not found")

// Service holds one loaded dataset plus the caller's active filters.
// Filters are session state here, never persisted onto the store.
type Service struct {
	store   store.Store
	filters viewmodel.Filters

	// Now is injectable for tests; nil means time.Now.
	Now func() time.Time
}

// NewService wraps an already-parsed document.
func NewService(doc *dataset.Document) *Service {
	return &Service{
		store:   store.New(doc),
		filters: viewmodel.DefaultFilters(),
	}
}

// Load reads the dataset from a file path or http(s) URL and wraps it.
func Load(ctx context.Context, source string) (*Service, error) {
	doc, err := dataset.Load(ctx, source)
	if err != nil {
		return nil, err
	}
	return NewService(doc), nil
}

// Document exposes the underlying dataset for export and list views.
func (s *Service) Document() *dataset.Document { return s.store.Document() }

// Store exposes the event store for collaborators that mutate directly.
func (s *Service) Store() store.Store { return s.store }

// SetFilters replaces the active filters for subsequent grid and agenda
// queries.
func (s *Service) SetFilters(f viewmodel.Filters) { s.filters = f }

// Filters returns the active filters.
func (s *Service) Filters() viewmodel.Filters { return s.filters }

// GridForMonth lays out the month identified by a `YYYY-MM` id under the
// active filters.
func (s *Service) GridForMonth(monthID string) (*viewmodel.MonthGrid, error) {
	b := &viewmodel.GridBuilder{
		Store:      s.store,
		Categories: s.Document().Categories,
		Now:        s.Now,
	}
	return b.Build(monthID, s.filters)
}

// AgendaForWeek assembles the agenda for the week containing the given
// date key; "" means the current week.
func (s *Service) AgendaForWeek(anchor string) (*viewmodel.Week, error) {
	doc := s.Document()
	b := &viewmodel.AgendaBuilder{
		Store:      s.store,
		Categories: doc.Categories,
		Routines:   doc.Routines,
		Meals:      doc.Meals,
		Now:        s.Now,
	}
	return b.Build(anchor, s.filters)
}

// AddEvent stores the event under its date and reports where it landed.
func (s *Service) AddEvent(e *event.Event) (store.Placement, error) {
	return s.store.Add(e)
}

// UpdateEvent merges the patch into the identified event. A date change
// moves the event to the container matching its new date.
func (s *Service) UpdateEvent(id string, patch event.Patch) (*event.Event, error) {
	e, ok := s.store.Update(id, patch)
	if !ok {
		return nil, ErrNotFound
	}
	return e, nil
}

// RemoveEvent deletes the identified event, reporting whether anything was
// removed.
func (s *Service) RemoveEvent(id string) bool {
	return s.store.Remove(id)
}

// FindEvent locates an event by id.
func (s *Service) FindEvent(id string) (*event.Event, bool) {
	return s.store.Find(id)
}

// EventsOn returns the stored events for a date key, unfiltered.
func (s *Service) EventsOn(key string) []*event.Event {
	return s.store.EventsOn(key)
}

// Events returns every stored event.
func (s *Service) Events() []*event.Event {
	return s.store.Events()
}

// MonthIDs lists the loaded months in calendar order.
func (s *Service) MonthIDs() []string {
	return s.Document().Months.IDs()
}

// UnresolvedConflictCount counts the conflicts still awaiting a decision.
func (s *Service) UnresolvedConflictCount() int {
	return viewmodel.UnresolvedCount(s.Document().Conflicts)
}

// UnresolvedConflicts lists the open conflicts.
func (s *Service) UnresolvedConflicts() []event.Conflict {
	return viewmodel.Unresolved(s.Document().Conflicts)
}

// ExportJSON serializes the current state back to the dataset wire format.
func (s *Service) ExportJSON() ([]byte, error) {
	return dataset.Export(s.Document())
}

// ExportICS serializes every stored event as an iCalendar feed.
func (s *Service) ExportICS() (string, error) {
	return ics.Export(s.Events(), s.now())
}

func (s *Service) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}
