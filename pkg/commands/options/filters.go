package options

import (
	"github.com/spf13/cobra"

	"github.com/homec-dev/homec/pkg/viewmodel"
)

// FilterOptions captures the category and priority filters shared by the
// grid, agenda, and list commands.
type FilterOptions struct {
	Category     string
	PriorityOnly bool
}

// AddFilterArgs wires filter flags on the provided command.
func AddFilterArgs(cmd *cobra.Command, o *FilterOptions) {
	cmd.Flags().StringVarP(&o.Category, "category", "c", viewmodel.AllCategories,
		"Show only events in this category.")
	cmd.Flags().BoolVarP(&o.PriorityOnly, "priority-only", "p", false,
		"Show only high-priority events.")
}

// Filters converts the flags into a view-model filter.
func (o *FilterOptions) Filters() viewmodel.Filters {
	return viewmodel.Filters{Category: o.Category, PriorityOnly: o.PriorityOnly}
}
