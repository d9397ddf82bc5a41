package options

import (
	"github.com/spf13/cobra"

	"github.com/homec-dev/homec/pkg/event"
)

// EventOptions captures the event fields settable from flags on the add
// and update commands.
type EventOptions struct {
	Date     string
	Category string
	Time     string
	Priority string
	Notes    string
	Location string
}

// AddEventArgs wires event field flags on the provided command.
func AddEventArgs(cmd *cobra.Command, o *EventOptions) {
	cmd.Flags().StringVar(&o.Date, "date", "",
		"Event date as YYYY-MM-DD.")
	cmd.Flags().StringVarP(&o.Category, "category", "c", "",
		"Event category key.")
	cmd.Flags().StringVarP(&o.Time, "time", "t", "",
		"Time label, e.g. '6:00 PM' or 'all-day'.")
	cmd.Flags().StringVar(&o.Priority, "priority", "",
		"Event priority; 'high' surfaces the event in priority views.")
	cmd.Flags().StringVar(&o.Notes, "notes", "",
		"Free-form notes.")
	cmd.Flags().StringVar(&o.Location, "location", "",
		"Event location.")
}

// Patch converts only the flags the user actually set into an event patch.
func (o *EventOptions) Patch(cmd *cobra.Command, title string) event.Patch {
	var p event.Patch
	if cmd.Flags().Changed("date") {
		p.Date = &o.Date
	}
	if title != "" {
		p.Title = &title
	}
	if cmd.Flags().Changed("category") {
		p.Category = &o.Category
	}
	if cmd.Flags().Changed("time") {
		p.Time = &o.Time
	}
	if cmd.Flags().Changed("priority") {
		p.Priority = &o.Priority
	}
	if cmd.Flags().Changed("notes") {
		p.Notes = &o.Notes
	}
	if cmd.Flags().Changed("location") {
		p.Location = &o.Location
	}
	return p
}
