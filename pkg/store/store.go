// Package store is the authoritative owner of all events in a loaded
// dataset. The two historical month shapes get their own placement
// strategies behind one interface; consumers never branch on shape.
//
// Every mutation applies synchronously and rebuilds the calendar index
// before returning, so grid and agenda reads are never stale.
package store

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/homec-dev/homec/pkg/dataset"
	"github.com/homec-dev/homec/pkg/event"
)

// Placement reports where an added (or re-dated) event landed. Orphaned
// means the event's date fell outside the loaded horizon and it was
// retained in a best-effort container; callers should surface that to the
// user rather than treat it as success.
type Placement struct {
	MonthID  string
	WeekOf   string // nested shape only
	Orphaned bool
}

// Store is the mutation and lookup contract shared by both shapes.
type Store interface {
	Shape() dataset.Shape
	Document() *dataset.Document

	// Events returns every event across all months in container order.
	Events() []*event.Event
	// EventsOn returns the indexed events for a date key. A missing key
	// yields an empty slice, never an error.
	EventsOn(key string) []*event.Event
	// Find locates an event by id.
	Find(id string) (*event.Event, bool)

	// Add places the event by its date and returns where it landed.
	Add(e *event.Event) (Placement, error)
	// Update merges the patch into the event with the given id. A date
	// change re-places the event in the container matching its new date.
	Update(id string, patch event.Patch) (*event.Event, bool)
	// Remove deletes the event with the given id, reporting whether a
	// removal occurred. Removing an unknown id is a no-op, not an error.
	Remove(id string) bool
}

// ErrNoDate marks an add attempt without a valid date key.
var ErrNoDate = errors.New("store: event has no valid date")

// New builds a store for the document's detected shape.
func New(doc *dataset.Document) Store {
	base := base{doc: doc, idx: buildIndex(doc)}
	if doc.Months.Shape == dataset.ShapeNested {
		s := &nestedStore{base: base}
		s.refreshAnalysis()
		return s
	}
	return &flatStore{base: base}
}

type base struct {
	doc *dataset.Document
	idx index
}

func (b *base) Document() *dataset.Document { return b.doc }

func (b *base) Events() []*event.Event { return b.doc.AllEvents() }

func (b *base) EventsOn(key string) []*event.Event { return b.idx.on(key) }

func (b *base) Find(id string) (*event.Event, bool) {
	for _, e := range b.doc.AllEvents() {
		if e.ID == id {
			return e, true
		}
	}
	return nil, false
}

func (b *base) rebuild() { b.idx = buildIndex(b.doc) }

// ensureUniqueID assigns the event an id no stored event already carries.
// Generated ids hash the payload, so field-identical events collide; a
// numeric suffix keeps each one separately addressable.
func (b *base) ensureUniqueID(e *event.Event) {
	e.EnsureID()
	if _, taken := b.Find(e.ID); !taken {
		return
	}
	root := e.ID
	for i := 2; ; i++ {
		candidate := fmt.Sprintf("%s-%d", root, i)
		if _, taken := b.Find(candidate); !taken {
			e.ID = candidate
			return
		}
	}
}

// sortEvents orders a container by date key ascending. The fixed-width key
// format makes lexicographic order chronological; the stable sort keeps
// insertion order within a day.
func sortEvents(events []*event.Event) {
	sort.SliceStable(events, func(i, j int) bool {
		return strings.Compare(events[i].Date, events[j].Date) < 0
	})
}

func removeByID(events []*event.Event, id string) ([]*event.Event, bool) {
	for i, e := range events {
		if e.ID == id {
			return append(events[:i], events[i+1:]...), true
		}
	}
	return events, false
}
