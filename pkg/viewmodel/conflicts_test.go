package viewmodel

import (
	"testing"

	"github.com/homec-dev/homec/pkg/event"
)

func TestUnresolvedConflictCount(t *testing.T) {
	conflicts := []event.Conflict{
		{ID: "c1", Issue: "Recital overlaps team dinner", Severity: "high", Resolved: true},
		{ID: "c2", Issue: "Two pickups at the same time", Severity: "medium"},
	}
	if got := UnresolvedCount(conflicts); got != 1 {
		t.Fatalf("UnresolvedCount = %d, want 1", got)
	}

	open := Unresolved(conflicts)
	if len(open) != 1 || open[0].ID != "c2" {
		t.Fatalf("Unresolved = %+v", open)
	}

	// Surfacing the list must not flip anything.
	if conflicts[1].Resolved {
		t.Fatal("detector mutated conflict state")
	}
}

func TestUnresolvedEmptyList(t *testing.T) {
	if got := UnresolvedCount(nil); got != 0 {
		t.Fatalf("UnresolvedCount(nil) = %d", got)
	}
	if open := Unresolved(nil); len(open) != 0 {
		t.Fatalf("Unresolved(nil) = %+v", open)
	}
}
