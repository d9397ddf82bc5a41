package list

import (
	"context"
	"fmt"

	"github.com/homec-dev/homec/pkg/app"
	"github.com/homec-dev/homec/pkg/datekey"
	"github.com/homec-dev/homec/pkg/event"
	"github.com/homec-dev/homec/pkg/printers"
	"github.com/homec-dev/homec/pkg/timeutil"
	"github.com/homec-dev/homec/pkg/viewmodel"
)

// List renders the planner overview: upcoming events, per-month milestones
// and aspirations, prep tasks, and open conflicts.
type List struct {
	Service *app.Service
	Filters viewmodel.Filters

	ShowID bool
	// All lists every month instead of the immediate horizon sections.
	All bool
	// Window bounds the "coming up" section, e.g. "2w" or "10d". Empty
	// means timeutil.DefaultWindow.
	Window string

	// Today is injectable for tests; empty means the current date key.
	Today string
}

func (l *List) Do(ctx context.Context) error {
	if l.Service == nil {
		return fmt.Errorf("list: no service configured")
	}
	l.Service.SetFilters(l.Filters)

	pp := printers.PrettyPrint{ShowID: l.ShowID}
	doc := l.Service.Document()

	pp.ConflictBanner(l.Service.UnresolvedConflictCount())

	if l.All {
		l.printAllMonths(&pp)
	} else if err := l.printHorizon(&pp); err != nil {
		return err
	}

	if doc.Prep != nil {
		pp.PrintPrep("Prep now", doc.Prep.Immediate)
		pp.PrintPrep("Prep this month", doc.Prep.ThisMonth)
		pp.PrintPrep("Prep this quarter", doc.Prep.ThisQuarter)
	}

	if open := l.Service.UnresolvedConflicts(); len(open) > 0 {
		pp.Title("Conflicts")
		pp.PrintConflicts(open)
	}
	return nil
}

// printHorizon shows the next two weeks and the rest of the current month.
func (l *List) printHorizon(pp *printers.PrettyPrint) error {
	today := l.Today
	if today == "" {
		today = datekey.Today()
	}
	days, _, err := timeutil.WindowDays(l.Window)
	if err != nil {
		return err
	}
	soonEnd, err := datekey.AddDays(today, days)
	if err != nil {
		return err
	}
	monthID := datekey.MonthID(today)

	filters := l.Service.Filters()
	var soon, rest []*event.Event
	for _, e := range l.Service.Events() {
		if !filters.Match(e) || e.Date < today {
			continue
		}
		switch {
		case e.Date <= soonEnd:
			soon = append(soon, e)
		case datekey.MonthID(e.Date) == monthID:
			rest = append(rest, e)
		}
	}

	doc := l.Service.Document()
	pp.TitleWithCount("Coming up", len(soon))
	pp.PrintEvents(soon, doc.Categories)
	if len(rest) > 0 {
		pp.TitleWithCount("Later this month", len(rest))
		pp.PrintEvents(rest, doc.Categories)
	}
	return nil
}

func (l *List) printAllMonths(pp *printers.PrettyPrint) {
	doc := l.Service.Document()
	filters := l.Service.Filters()

	for _, id := range l.Service.MonthIDs() {
		if flat, ok := doc.Months.FlatByID(id); ok {
			events := filters.Apply(flat.Events)
			pp.TitleWithCount(flat.Name, len(events))
			pp.PrintEvents(events, doc.Categories)
			continue
		}
		nested, ok := doc.Months.NestedByID(id)
		if !ok || nested.Concluded() {
			continue
		}
		events := filters.Apply(nested.AllEvents())
		pp.TitleWithCount(nested.MonthName, len(events))
		pp.PrintEvents(events, doc.Categories)
		pp.PrintMilestones(nested.Milestones)
		pp.PrintAspirations(nested.Aspirational)
	}
}
