// Package viewmodel derives display-ready structures (month grids, weekly
// agendas, conflict notices) from a store. Everything here is a pure read;
// nothing mutates the store or the loaded document.
package viewmodel

import (
	"github.com/homec-dev/homec/pkg/event"
)

// AllCategories is the category filter value that matches every event.
const AllCategories = "all"

// Filters narrows which events the builders render. The zero value matches
// everything. Filters live with the caller, never on the store.
type Filters struct {
	Category     string
	PriorityOnly bool
}

// DefaultFilters matches every event.
func DefaultFilters() Filters {
	return Filters{Category: AllCategories}
}

// Match reports whether the event passes the filter predicate.
func (f Filters) Match(e *event.Event) bool {
	if e == nil {
		return false
	}
	if f.Category != "" && f.Category != AllCategories && e.Category != f.Category {
		return false
	}
	if f.PriorityOnly && !e.HighPriority() {
		return false
	}
	return true
}

// Apply returns the events that pass the filter, preserving order. The
// input slice is never modified.
func (f Filters) Apply(events []*event.Event) []*event.Event {
	kept := make([]*event.Event, 0, len(events))
	for _, e := range events {
		if f.Match(e) {
			kept = append(kept, e)
		}
	}
	return kept
}
