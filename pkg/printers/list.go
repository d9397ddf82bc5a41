package printers

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"

	"github.com/homec-dev/homec/pkg/event"
)

// PrintEvents renders events as a table, one row per event, resolving
// category icons through the registry.
func (pp *PrettyPrint) PrintEvents(events []*event.Event, categories event.Registry) {
	if len(events) == 0 {
		f := color.New(color.Faint, color.Italic)
		_, _ = f.Print(" none\n\n")
		return
	}

	tbl := uitable.New()
	tbl.Separator = "  "
	if pp.ShowID {
		tbl.AddRow(bold("ID"), bold("Date"), bold("Event"), bold("Time"), bold("Category"))
	} else {
		tbl.AddRow(bold("Date"), bold("Event"), bold("Time"), bold("Category"))
	}
	for _, e := range events {
		cat := categories.Lookup(e.Category)
		title := truncate(e.Title, 48)
		if e.HighPriority() {
			title = color.New(color.FgHiRed).Sprintf("%s !", title)
		}
		label := cat.Label
		if cat.Icon != "" {
			label = fmt.Sprintf("%s %s", cat.Icon, cat.Label)
		}
		if pp.ShowID {
			tbl.AddRow(e.ID, e.Date, title, e.Time, label)
		} else {
			tbl.AddRow(e.Date, title, e.Time, label)
		}
	}
	_, _ = fmt.Fprintln(color.Output, tbl)
}

// PrintConflicts renders the open conflicts with their suggestions.
func (pp *PrettyPrint) PrintConflicts(conflicts []event.Conflict) {
	if len(conflicts) == 0 {
		f := color.New(color.Faint, color.Italic)
		_, _ = f.Print(" no unresolved conflicts\n\n")
		return
	}

	warn := color.New(color.FgHiYellow)
	faint := color.New(color.Faint)
	for _, c := range conflicts {
		_, _ = warn.Printf("⚠ %s", c.Issue)
		if c.Severity != "" {
			_, _ = faint.Printf(" [%s]", c.Severity)
		}
		fmt.Print("\n")
		for _, s := range c.Suggestions {
			_, _ = faint.Printf("    - %s\n", s)
		}
	}
	fmt.Print("\n")
}

// PrintPrep renders prep tasks grouped under a horizon heading.
func (pp *PrettyPrint) PrintPrep(heading string, tasks []event.PrepTask) {
	if len(tasks) == 0 {
		return
	}
	pp.Title(heading)
	tbl := uitable.New()
	tbl.Separator = "  "
	for _, t := range tasks {
		task := truncate(t.Task, 56)
		if t.Priority == event.PriorityHigh {
			task = color.New(color.FgHiRed).Sprintf("%s !", task)
		}
		tbl.AddRow(t.Deadline, task)
	}
	_, _ = fmt.Fprintln(color.Output, tbl)
}

// PrintMilestones renders month milestones as a dated list.
func (pp *PrettyPrint) PrintMilestones(milestones []event.Milestone) {
	if len(milestones) == 0 {
		return
	}
	tbl := uitable.New()
	tbl.Separator = "  "
	for _, m := range milestones {
		title := m.Title
		if m.Icon != "" {
			title = fmt.Sprintf("%s %s", m.Icon, m.Title)
		}
		tbl.AddRow(m.Date, title)
	}
	_, _ = fmt.Fprintln(color.Output, tbl)
}

// PrintAspirations renders the "want to do" items, flagging the ones still
// unscheduled.
func (pp *PrettyPrint) PrintAspirations(aspirations []event.Aspiration) {
	if len(aspirations) == 0 {
		return
	}
	faint := color.New(color.Faint)
	for _, a := range aspirations {
		fmt.Printf("◦ %s", truncate(a.Title, 56))
		if a.TimeNeeded != "" {
			_, _ = faint.Printf(" (%s)", a.TimeNeeded)
		}
		if a.Unscheduled() {
			_, _ = faint.Print(" unscheduled")
		}
		fmt.Print("\n")
	}
	fmt.Print("\n")
}

func bold(s string) string {
	return color.New(color.Bold).Sprint(s)
}
