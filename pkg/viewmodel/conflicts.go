package viewmodel

import (
	"github.com/homec-dev/homec/pkg/event"
)

// Unresolved returns the conflicts still awaiting a decision, preserving
// order. Dismissing the resulting notice is a display concern; nothing
// here ever flips a conflict to resolved.
func Unresolved(conflicts []event.Conflict) []event.Conflict {
	open := make([]event.Conflict, 0, len(conflicts))
	for _, c := range conflicts {
		if !c.Resolved {
			open = append(open, c)
		}
	}
	return open
}

// UnresolvedCount counts the conflicts with resolved == false.
func UnresolvedCount(conflicts []event.Conflict) int {
	n := 0
	for _, c := range conflicts {
		if !c.Resolved {
			n++
		}
	}
	return n
}
