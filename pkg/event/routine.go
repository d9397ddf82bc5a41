package event

import "strconv"

// Routine is a standing task with an explicitly declared time-of-day slot.
// Routines are display-only companions to the agenda; they never live in
// the event store and are never edited through it.
type Routine struct {
	Title string `json:"title"`
	Time  string `json:"time"` // morning|afternoon|evening
}

// Routines groups daily routines and weekday-indexed weekly routines.
// Weekly keys are Sunday-first weekday indexes as strings ("0".."6"),
// matching the dataset wire format.
type Routines struct {
	Daily  []Routine            `json:"daily,omitempty"`
	Weekly map[string][]Routine `json:"weekly,omitempty"`
}

// ForWeekday returns the weekly routines declared for the given
// Sunday-first weekday index.
func (r *Routines) ForWeekday(idx int) []Routine {
	if r == nil || r.Weekly == nil {
		return nil
	}
	return r.Weekly[strconv.Itoa(idx)]
}

// Meal is a date-keyed single dinner entry.
type Meal struct {
	Dinner string `json:"dinner"`
	Link   string `json:"link,omitempty"`
}
