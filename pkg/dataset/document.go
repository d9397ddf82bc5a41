// Package dataset models the calendar JSON document and its two historical
// month shapes: a flat array of months with per-month event lists, and an
// id-keyed map of months with nested week containers. The shape is detected
// once at parse time and carried as a tag so consumers never re-sniff it.
package dataset

import (
	"encoding/json"
	"time"

	"github.com/homec-dev/homec/pkg/event"
)

// Shape identifies which month layout a document uses.
type Shape string

const (
	// ShapeFlat is the months-as-array layout: id, name, flat events.
	ShapeFlat Shape = "flat"
	// ShapeNested is the months-as-map layout: monthName plus week
	// containers, each with its own event list.
	ShapeNested Shape = "nested"
)

// Document is the full calendar dataset. Sections the core does not
// interpret (anchors, recurring patterns) pass through as raw JSON so an
// export reproduces them untouched.
type Document struct {
	Meta       Meta                  `json:"meta"`
	Months     *MonthSet             `json:"months"`
	Categories event.Registry        `json:"categories,omitempty"`
	Routines   *event.Routines       `json:"routines,omitempty"`
	Meals      map[string]event.Meal `json:"meals,omitempty"`
	Conflicts  []event.Conflict      `json:"conflicts,omitempty"`
	Prep       *Prep                 `json:"prep,omitempty"`
	Anchors    json.RawMessage       `json:"anchors,omitempty"`
	Recurring  json.RawMessage       `json:"recurring,omitempty"`
}

// Meta carries dataset provenance. Family details stay opaque.
type Meta struct {
	Generated string          `json:"generated,omitempty"`
	Version   string          `json:"version,omitempty"`
	Quarter   string          `json:"quarter,omitempty"`
	Year      int             `json:"year,omitempty"`
	Span      string          `json:"span,omitempty"`
	Location  string          `json:"location,omitempty"`
	Family    json.RawMessage `json:"family,omitempty"`
}

// Prep groups preparation tasks by timeframe.
type Prep struct {
	Immediate   []event.PrepTask `json:"immediate,omitempty"`
	ThisMonth   []event.PrepTask `json:"thisMonth,omitempty"`
	ThisQuarter []event.PrepTask `json:"thisQuarter,omitempty"`
}

// All returns every prep task in timeframe order.
func (p *Prep) All() []event.PrepTask {
	if p == nil {
		return nil
	}
	out := make([]event.PrepTask, 0, len(p.Immediate)+len(p.ThisMonth)+len(p.ThisQuarter))
	out = append(out, p.Immediate...)
	out = append(out, p.ThisMonth...)
	out = append(out, p.ThisQuarter...)
	return out
}

// FlatMonth is a month in the flat shape: an append-anywhere event list.
type FlatMonth struct {
	ID     string         `json:"id"`
	Name   string         `json:"name"`
	Events []*event.Event `json:"events"`
}

// NestedMonth is a month in the nested shape. Slug preserves the original
// map key ("december") so exports reproduce the source keys.
type NestedMonth struct {
	Slug         string             `json:"-"`
	MonthName    string             `json:"monthName"`
	Status       string             `json:"status,omitempty"`
	Summary      string             `json:"summary,omitempty"`
	Weeks        []*Week            `json:"weeks"`
	Milestones   []event.Milestone  `json:"milestones,omitempty"`
	Aspirational []event.Aspiration `json:"aspirational,omitempty"`
}

const monthNameFormat = "January 2006"

// ID derives the canonical YYYY-MM month id from the human month name.
// Months whose name does not parse return an empty id and can never be a
// placement target.
func (m *NestedMonth) ID() string {
	t, err := time.Parse(monthNameFormat, m.MonthName)
	if err != nil {
		return ""
	}
	return t.Format("2006-01")
}

// Concluded reports a month already behind us with no week content left.
// Renderers omit these months entirely instead of showing an empty shell.
func (m *NestedMonth) Concluded() bool {
	return m.Status == "past" && len(m.Weeks) == 0
}

// AllEvents flattens the month's weeks into one event list in week order.
func (m *NestedMonth) AllEvents() []*event.Event {
	var out []*event.Event
	for _, week := range m.Weeks {
		out = append(out, week.Events...)
	}
	return out
}

// Week is an ordered event container anchored on its first day.
type Week struct {
	WeekOf     string         `json:"weekOf"`
	WeekNumber int            `json:"weekNumber,omitempty"`
	Theme      string         `json:"theme,omitempty"`
	Summary    string         `json:"summary,omitempty"`
	Events     []*event.Event `json:"events"`
	Analysis   *Analysis      `json:"analysis,omitempty"`
}

// Analysis is derived per-week metadata. It is recomputed whenever the
// week's events change; values loaded from a dataset are discarded on the
// first mutation and never treated as authoritative.
type Analysis struct {
	TotalEvents        int    `json:"totalEvents"`
	EveningCommitments int    `json:"eveningCommitments"`
	WeekendEvents      int    `json:"weekendEvents"`
	PrepTaskCount      int    `json:"prepTaskCount"`
	BusyScore          string `json:"busyScore"`
}

// Busy score labels, coarsest to busiest.
const (
	BusyLow     = "low"
	BusyMedium  = "medium"
	BusyHigh    = "high"
	BusyExtreme = "extreme"
)

// AllEvents returns every event across all months in container order,
// regardless of shape.
func (d *Document) AllEvents() []*event.Event {
	var out []*event.Event
	if d.Months == nil {
		return out
	}
	switch d.Months.Shape {
	case ShapeFlat:
		for _, month := range d.Months.Flat {
			out = append(out, month.Events...)
		}
	case ShapeNested:
		for _, month := range d.Months.Nested {
			for _, week := range month.Weeks {
				out = append(out, week.Events...)
			}
		}
	}
	return out
}

// AllWeeks returns every week container in month order. Empty for the flat
// shape.
func (d *Document) AllWeeks() []*Week {
	var out []*Week
	if d.Months == nil || d.Months.Shape != ShapeNested {
		return out
	}
	for _, month := range d.Months.Nested {
		out = append(out, month.Weeks...)
	}
	return out
}
