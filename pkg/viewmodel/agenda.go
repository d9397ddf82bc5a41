package viewmodel

import (
	"fmt"
	"net/url"
	"time"

	"github.com/homec-dev/homec/pkg/datekey"
	"github.com/homec-dev/homec/pkg/event"
	"github.com/homec-dev/homec/pkg/store"
)

// ItemKind distinguishes the sources mixed into an agenda slot.
type ItemKind string

const (
	KindEvent   ItemKind = "event"
	KindRoutine ItemKind = "routine"
)

// Item is one entry in a time-of-day slot. Routine items have no ID and
// carry their declared time label.
type Item struct {
	Kind     ItemKind
	ID       string
	Title    string
	Time     string
	Category string
	Color    string
	Priority string
}

// MealRef is the day's dinner entry. Href is populated only for linked
// meals and points at the meal-plan page for this day and week.
type MealRef struct {
	Text string
	Href string
}

// Day is one agenda column: a date plus three time-of-day slots and an
// optional meal.
type Day struct {
	Key       string
	Weekday   string
	IsToday   bool
	Morning   []Item
	Afternoon []Item
	Evening   []Item
	Meal      *MealRef
}

// Slot returns the items bucketed under the given time of day.
func (d *Day) Slot(s datekey.Slot) []Item {
	switch s {
	case datekey.Afternoon:
		return d.Afternoon
	case datekey.Evening:
		return d.Evening
	default:
		return d.Morning
	}
}

func (d *Day) add(s datekey.Slot, item Item) {
	switch s {
	case datekey.Afternoon:
		d.Afternoon = append(d.Afternoon, item)
	case datekey.Evening:
		d.Evening = append(d.Evening, item)
	default:
		d.Morning = append(d.Morning, item)
	}
}

// Week is seven agenda columns starting on a Sunday.
type Week struct {
	Start string
	Days  [7]Day
}

// AgendaBuilder derives weekly agendas from a store plus the routine and
// meal tables. Now is injectable; nil means time.Now.
type AgendaBuilder struct {
	Store      store.Store
	Categories event.Registry
	Routines   *event.Routines
	Meals      map[string]event.Meal
	Now        func() time.Time
}

// Build assembles the agenda for the week containing anchor (any date key;
// "" means today). The week is normalized to start on the Sunday on or
// before the anchor. Events come from the full cross-month index so a week
// spanning a month boundary still fills every column.
func (b *AgendaBuilder) Build(anchor string, f Filters) (*Week, error) {
	at := b.now()
	if anchor != "" {
		t, err := datekey.ParseLocalNoon(anchor)
		if err != nil {
			return nil, fmt.Errorf("viewmodel: bad agenda anchor %q: %w", anchor, err)
		}
		at = t
	}
	start := datekey.WeekStart(at)
	today := datekey.Key(b.now())

	week := &Week{Start: start}
	for i := range week.Days {
		key, err := datekey.AddDays(start, i)
		if err != nil {
			return nil, err
		}
		t, err := datekey.ParseLocalNoon(key)
		if err != nil {
			return nil, err
		}

		day := Day{Key: key, Weekday: t.Weekday().String(), IsToday: key == today}

		for _, e := range f.Apply(b.Store.EventsOn(key)) {
			cat := b.Categories.Lookup(e.Category)
			day.add(datekey.SlotFor(e.Time), Item{
				Kind:     KindEvent,
				ID:       e.ID,
				Title:    e.Title,
				Time:     e.Time,
				Category: e.Category,
				Color:    cat.Color,
				Priority: e.Priority,
			})
		}

		if b.Routines != nil {
			for _, r := range b.Routines.Daily {
				day.add(datekey.SlotNamed(r.Time), routineItem(r))
			}
			for _, r := range b.Routines.ForWeekday(datekey.WeekdayIndex(t)) {
				day.add(datekey.SlotNamed(r.Time), routineItem(r))
			}
		}

		if meal, ok := b.Meals[key]; ok && meal.Dinner != "" {
			day.Meal = mealRef(meal, day.Weekday, start)
		}

		week.Days[i] = day
	}
	return week, nil
}

func routineItem(r event.Routine) Item {
	return Item{Kind: KindRoutine, Title: r.Title, Time: r.Time}
}

// mealRef links a meal to the meal-plan page by weekday name and week
// start; unlinked meals stay plain text.
func mealRef(meal event.Meal, weekday, start string) *MealRef {
	ref := &MealRef{Text: meal.Dinner}
	if meal.Link != "" {
		q := url.Values{}
		q.Set("day", weekday)
		q.Set("weekOf", start)
		ref.Href = "meals.html?" + q.Encode()
	}
	return ref
}

func (b *AgendaBuilder) now() time.Time {
	if b.Now != nil {
		return b.Now()
	}
	return time.Now()
}
