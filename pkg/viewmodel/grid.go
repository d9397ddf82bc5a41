package viewmodel

import (
	"fmt"
	"time"

	"github.com/homec-dev/homec/pkg/datekey"
	"github.com/homec-dev/homec/pkg/event"
	"github.com/homec-dev/homec/pkg/store"
)

// MaxVisibleEvents caps how many event chips a day cell shows before the
// remainder collapses into a "+N more" count.
const MaxVisibleEvents = 3

// accentCategories are the only categories that tint a whole day cell.
// Everything else renders neutral regardless of its own color.
var accentCategories = map[string]bool{
	"holiday": true,
	"travel":  true,
}

// Chip is one event rendered inside a day cell.
type Chip struct {
	ID       string
	Title    string
	Time     string
	Category string
	Color    string
	Icon     string
	Priority string
}

// Cell is one slot in the month grid. Leading blanks before the first of
// the month have Day == 0 and no Key.
type Cell struct {
	Day       int
	Key       string
	IsToday   bool
	Events    []Chip
	MoreCount int
	Accent    string
}

// Blank reports whether the cell pads the grid rather than naming a day.
func (c Cell) Blank() bool { return c.Day == 0 }

// MonthGrid is the derived layout for one calendar month. Cells holds the
// leading blanks followed by every day of the month in order; callers wrap
// rows at seven.
type MonthGrid struct {
	MonthID string
	Name    string
	Cells   []Cell
}

// Rows counts the seven-wide rows the grid occupies.
func (g *MonthGrid) Rows() int { return (len(g.Cells) + 6) / 7 }

// GridBuilder derives MonthGrids from a store. Now is injectable so tests
// can pin "today"; nil means time.Now.
type GridBuilder struct {
	Store      store.Store
	Categories event.Registry
	Now        func() time.Time
}

// Build lays out the month identified by a `YYYY-MM` id. Day cells carry
// the filtered events for their date, capped at MaxVisibleEvents with the
// overflow reported as MoreCount. A day with no events is still a cell so
// the UI can target it for creation.
func (b *GridBuilder) Build(monthID string, f Filters) (*MonthGrid, error) {
	anchor, err := time.ParseInLocation("2006-01", monthID, time.Local)
	if err != nil {
		return nil, fmt.Errorf("viewmodel: bad month id %q: %w", monthID, err)
	}
	year, month := anchor.Year(), anchor.Month()
	first := time.Date(year, month, 1, 12, 0, 0, 0, time.Local)
	daysInMonth := time.Date(year, month+1, 0, 12, 0, 0, 0, time.Local).Day()
	leading := datekey.WeekdayIndex(first)

	today := datekey.Key(b.now())

	grid := &MonthGrid{
		MonthID: monthID,
		Name:    b.monthName(monthID, first),
		Cells:   make([]Cell, 0, leading+daysInMonth),
	}
	for i := 0; i < leading; i++ {
		grid.Cells = append(grid.Cells, Cell{})
	}
	for day := 1; day <= daysInMonth; day++ {
		key := datekey.Key(time.Date(year, month, day, 12, 0, 0, 0, time.Local))
		events := f.Apply(b.Store.EventsOn(key))

		cell := Cell{Day: day, Key: key, IsToday: key == today}
		visible := events
		if len(events) > MaxVisibleEvents {
			visible = events[:MaxVisibleEvents]
			cell.MoreCount = len(events) - MaxVisibleEvents
		}
		for _, e := range visible {
			cell.Events = append(cell.Events, b.chip(e))
		}
		if len(events) > 0 && accentCategories[events[0].Category] {
			cell.Accent = events[0].Category
		}
		grid.Cells = append(grid.Cells, cell)
	}
	return grid, nil
}

func (b *GridBuilder) chip(e *event.Event) Chip {
	cat := b.Categories.Lookup(e.Category)
	return Chip{
		ID:       e.ID,
		Title:    e.Title,
		Time:     e.Time,
		Category: e.Category,
		Color:    cat.Color,
		Icon:     cat.Icon,
		Priority: e.Priority,
	}
}

// monthName prefers the name the dataset ships for the month and falls
// back to formatting the anchor date.
func (b *GridBuilder) monthName(monthID string, first time.Time) string {
	months := b.Store.Document().Months
	if m, ok := months.FlatByID(monthID); ok && m.Name != "" {
		return m.Name
	}
	if m, ok := months.NestedByID(monthID); ok && m.MonthName != "" {
		return m.MonthName
	}
	return first.Format("January 2006")
}

func (b *GridBuilder) now() time.Time {
	if b.Now != nil {
		return b.Now()
	}
	return time.Now()
}
