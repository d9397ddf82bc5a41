package store

import (
	"github.com/homec-dev/homec/pkg/dataset"
	"github.com/homec-dev/homec/pkg/event"
)

// index is the derived date key → events mapping behind EventsOn. It holds
// back-references only; the document's containers stay the single source
// of truth and the index is rebuilt after every mutation.
type index map[string][]*event.Event

func buildIndex(doc *dataset.Document) index {
	idx := make(index)
	for _, e := range doc.AllEvents() {
		idx[e.Date] = append(idx[e.Date], e)
	}
	return idx
}

func (idx index) on(key string) []*event.Event {
	if events, ok := idx[key]; ok {
		return events
	}
	return []*event.Event{}
}
