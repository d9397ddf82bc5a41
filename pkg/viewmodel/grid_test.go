package viewmodel

import (
	"testing"
	"time"

	"github.com/homec-dev/homec/pkg/dataset"
	"github.com/homec-dev/homec/pkg/event"
	"github.com/homec-dev/homec/pkg/store"
)

var testCategories = event.Registry{
	"family":  {Color: "#4A90D9", Icon: "🏠", Label: "Family"},
	"kid":     {Color: "#E8A33D", Icon: "🎒", Label: "Kids"},
	"work":    {Color: "#7B6FA0", Icon: "💼", Label: "Work"},
	"holiday": {Color: "#C0392B", Icon: "🎄", Label: "Holiday"},
}

func janStore(t *testing.T) store.Store {
	t.Helper()
	doc := &dataset.Document{
		Categories: testCategories,
		Months: &dataset.MonthSet{
			Shape: dataset.ShapeFlat,
			Flat: []*dataset.FlatMonth{
				{ID: "2026-01", Name: "January 2026", Events: []*event.Event{
					{ID: "e1", Date: "2026-01-05", Title: "Swim lesson", Category: "kid", Time: "4:00 PM"},
					{ID: "e2", Date: "2026-01-05", Title: "Standup", Category: "work", Time: "9:00 AM"},
					{ID: "e3", Date: "2026-01-05", Title: "Grocery run", Category: "family"},
					{ID: "e4", Date: "2026-01-05", Title: "Homework club", Category: "kid", Priority: "high"},
					{ID: "e5", Date: "2026-01-19", Title: "MLK Day", Category: "holiday"},
					{ID: "e6", Date: "2026-01-19", Title: "Park trip", Category: "family"},
				}},
			},
		},
	}
	return store.New(doc)
}

func jan5() time.Time {
	return time.Date(2026, time.January, 5, 8, 0, 0, 0, time.Local)
}

func TestGridGeometryJanuary2026(t *testing.T) {
	b := &GridBuilder{Store: janStore(t), Categories: testCategories, Now: jan5}
	grid, err := b.Build("2026-01", DefaultFilters())
	if err != nil {
		t.Fatalf("build: %v", err)
	}

	// January 1, 2026 is a Thursday: four leading blanks plus 31 days.
	if len(grid.Cells) != 35 {
		t.Fatalf("cell count = %d, want 35", len(grid.Cells))
	}
	for i := 0; i < 4; i++ {
		if !grid.Cells[i].Blank() {
			t.Fatalf("cell %d should be a leading blank", i)
		}
	}
	first := grid.Cells[4]
	if first.Day != 1 || first.Key != "2026-01-01" {
		t.Fatalf("first day cell = %+v", first)
	}
	last := grid.Cells[34]
	if last.Day != 31 || last.Key != "2026-01-31" {
		t.Fatalf("last day cell = %+v", last)
	}
	if grid.Rows() != 5 {
		t.Fatalf("rows = %d, want 5", grid.Rows())
	}
	if grid.Name != "January 2026" {
		t.Fatalf("name = %q", grid.Name)
	}
}

func TestGridCapsVisibleEvents(t *testing.T) {
	b := &GridBuilder{Store: janStore(t), Categories: testCategories, Now: jan5}
	grid, err := b.Build("2026-01", DefaultFilters())
	if err != nil {
		t.Fatalf("build: %v", err)
	}

	// 2026-01-05 holds four events: three chips plus "+1 more".
	day5 := grid.Cells[4+4]
	if day5.Key != "2026-01-05" {
		t.Fatalf("wrong cell: %+v", day5)
	}
	if len(day5.Events) != 3 || day5.MoreCount != 1 {
		t.Fatalf("visible = %d, more = %d, want 3 and 1", len(day5.Events), day5.MoreCount)
	}
	if !day5.IsToday {
		t.Fatal("2026-01-05 should be today")
	}

	// Filtering down to three or fewer drops the marker.
	kids, err := b.Build("2026-01", Filters{Category: "kid"})
	if err != nil {
		t.Fatalf("build filtered: %v", err)
	}
	cell := kids.Cells[4+4]
	if len(cell.Events) != 2 || cell.MoreCount != 0 {
		t.Fatalf("kid filter: visible = %d, more = %d", len(cell.Events), cell.MoreCount)
	}
	for _, chip := range cell.Events {
		if chip.Category != "kid" {
			t.Fatalf("non-kid chip leaked through: %+v", chip)
		}
	}
}

func TestGridFilterByAbsentCategory(t *testing.T) {
	b := &GridBuilder{Store: janStore(t), Categories: testCategories, Now: jan5}
	grid, err := b.Build("2026-01", Filters{Category: "pets"})
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	for _, cell := range grid.Cells {
		if len(cell.Events) != 0 || cell.MoreCount != 0 {
			t.Fatalf("absent category matched events in cell %+v", cell)
		}
	}
}

func TestGridAccentOnlyForHolidayAndTravel(t *testing.T) {
	b := &GridBuilder{Store: janStore(t), Categories: testCategories, Now: jan5}
	grid, err := b.Build("2026-01", DefaultFilters())
	if err != nil {
		t.Fatalf("build: %v", err)
	}

	day19 := grid.Cells[4+18]
	if day19.Key != "2026-01-19" {
		t.Fatalf("wrong cell: %+v", day19)
	}
	if day19.Accent != "holiday" {
		t.Fatalf("accent = %q, want holiday", day19.Accent)
	}

	// A busy day whose first event is not holiday/travel stays neutral.
	day5 := grid.Cells[4+4]
	if day5.Accent != "" {
		t.Fatalf("accent = %q, want neutral", day5.Accent)
	}
}

func TestGridEmptyDayIsStillACell(t *testing.T) {
	b := &GridBuilder{Store: janStore(t), Categories: testCategories, Now: jan5}
	grid, err := b.Build("2026-01", DefaultFilters())
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	day2 := grid.Cells[4+1]
	if day2.Blank() || day2.Key != "2026-01-02" || len(day2.Events) != 0 {
		t.Fatalf("empty day cell = %+v", day2)
	}
}

func TestGridRejectsBadMonthID(t *testing.T) {
	b := &GridBuilder{Store: janStore(t), Categories: testCategories}
	if _, err := b.Build("January", DefaultFilters()); err == nil {
		t.Fatal("expected error for bad month id")
	}
}
