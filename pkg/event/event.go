// Package event defines the calendar data model: events plus the static
// registries (categories, routines, meals, conflicts) that travel with a
// dataset.
package event

import (
	"crypto/md5"
	"encoding/json"
	"fmt"
)

// Priority values. Anything other than high renders without emphasis.
const (
	PriorityHigh   = "high"
	PriorityMedium = "medium"
)

// Event is one scheduled item. Date is a canonical YYYY-MM-DD key and Time
// is a free-form display label ("7:30 AM", "all-day", an hour range); it is
// bucketed heuristically but never parsed as a strict time type.
type Event struct {
	ID           string   `json:"id,omitempty"`
	Date         string   `json:"date"`
	Title        string   `json:"title"`
	Category     string   `json:"category,omitempty"`
	Time         string   `json:"time,omitempty"`
	Priority     string   `json:"priority,omitempty"`
	Notes        string   `json:"notes,omitempty"`
	Location     string   `json:"location,omitempty"`
	Duration     string   `json:"duration,omitempty"`
	PrepTasks    []string `json:"prepTasks,omitempty"`
	Recurring    bool     `json:"recurring,omitempty"`
	DayOfWeek    string   `json:"dayOfWeek,omitempty"`
	Type         string   `json:"type,omitempty"`
	Status       string   `json:"status,omitempty"`
	AllDay       bool     `json:"allDay,omitempty"`
	Conflict     bool     `json:"conflict,omitempty"`
	ConflictNote string   `json:"conflictNote,omitempty"`
}

// EnsureID assigns a stable identifier when the dataset did not carry one.
// Identity-by-reference does not survive a serialization round trip, so
// every event gets an id at the load boundary and all update/remove
// operations go through it.
func (e *Event) EnsureID() {
	if e.ID != "" {
		return
	}
	b, _ := json.Marshal(e)
	sum := md5.Sum(b)
	e.ID = fmt.Sprintf("%x", sum[:8])
}

// HighPriority reports whether the event carries visible emphasis.
func (e *Event) HighPriority() bool {
	return e.Priority == PriorityHigh
}

// Patch is an identity-preserving partial update. Nil fields are left
// untouched; ID is never patchable.
type Patch struct {
	Date      *string
	Title     *string
	Category  *string
	Time      *string
	Priority  *string
	Notes     *string
	Location  *string
	Duration  *string
	PrepTasks *[]string
	Recurring *bool
}

// Apply merges the patch into e in place and reports whether the date
// changed, since a date change may require re-bucketing the event.
func (p Patch) Apply(e *Event) (dateChanged bool) {
	if p.Date != nil && *p.Date != e.Date {
		e.Date = *p.Date
		dateChanged = true
	}
	if p.Title != nil {
		e.Title = *p.Title
	}
	if p.Category != nil {
		e.Category = *p.Category
	}
	if p.Time != nil {
		e.Time = *p.Time
	}
	if p.Priority != nil {
		e.Priority = *p.Priority
	}
	if p.Notes != nil {
		e.Notes = *p.Notes
	}
	if p.Location != nil {
		e.Location = *p.Location
	}
	if p.Duration != nil {
		e.Duration = *p.Duration
	}
	if p.PrepTasks != nil {
		e.PrepTasks = *p.PrepTasks
	}
	if p.Recurring != nil {
		e.Recurring = *p.Recurring
	}
	return dateChanged
}

// String is the single-line display form used by list output.
func (e *Event) String() string {
	if e.Time != "" {
		return fmt.Sprintf("%s %s %s", e.Date, e.Time, e.Title)
	}
	return fmt.Sprintf("%s %s", e.Date, e.Title)
}
