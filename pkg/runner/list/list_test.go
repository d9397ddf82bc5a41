package list

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/fatih/color"

	"github.com/homec-dev/homec/pkg/app"
	"github.com/homec-dev/homec/pkg/dataset"
	"github.com/homec-dev/homec/pkg/event"
	"github.com/homec-dev/homec/pkg/viewmodel"
)

func quarterService() *app.Service {
	return app.NewService(&dataset.Document{
		Months: &dataset.MonthSet{
			Shape: dataset.ShapeNested,
			Nested: []*dataset.NestedMonth{
				{Slug: "october", MonthName: "October 2025", Status: "past"},
				{
					Slug:      "november",
					MonthName: "November 2025",
					Status:    "active",
					Weeks: []*dataset.Week{
						{WeekOf: "2025-11-23", Events: []*event.Event{
							{ID: "thanksgiving", Date: "2025-11-27", Title: "Thanksgiving", Category: "family"},
						}},
					},
				},
			},
		},
	})
}

func captureOutput(t *testing.T, fn func() error) string {
	t.Helper()
	var buf bytes.Buffer
	old := color.Output
	color.Output = &buf
	defer func() { color.Output = old }()
	if err := fn(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return buf.String()
}

func TestListAllSkipsConcludedMonths(t *testing.T) {
	l := List{
		Service: quarterService(),
		Filters: viewmodel.DefaultFilters(),
		All:     true,
	}

	out := captureOutput(t, func() error { return l.Do(context.Background()) })

	if strings.Contains(out, "October 2025") {
		t.Fatalf("past month without weeks should not render:\n%s", out)
	}
	if !strings.Contains(out, "November 2025") {
		t.Fatalf("active month missing:\n%s", out)
	}
	if !strings.Contains(out, "Thanksgiving") {
		t.Fatalf("events missing:\n%s", out)
	}
}

func TestListWindowBoundsComingUp(t *testing.T) {
	svc := app.NewService(&dataset.Document{
		Months: &dataset.MonthSet{
			Shape: dataset.ShapeFlat,
			Flat: []*dataset.FlatMonth{
				{ID: "2025-11", Name: "November 2025", Events: []*event.Event{
					{ID: "soon", Date: "2025-11-05", Title: "Parent conference"},
					{ID: "later", Date: "2025-11-28", Title: "Thanksgiving travel"},
				}},
			},
		},
	})
	l := List{
		Service: svc,
		Filters: viewmodel.DefaultFilters(),
		Window:  "1w",
		Today:   "2025-11-01",
	}

	out := captureOutput(t, func() error { return l.Do(context.Background()) })

	if !strings.Contains(out, "Parent conference") {
		t.Fatalf("event inside the window missing:\n%s", out)
	}
	if !strings.Contains(out, "Later this month") || !strings.Contains(out, "Thanksgiving travel") {
		t.Fatalf("event past the window should fall to the month section:\n%s", out)
	}
}
