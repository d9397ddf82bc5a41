// Package options defines shared flag helpers for CLI commands.
package options

import (
	"github.com/spf13/cobra"
)

// DatasetOptions selects which dataset file (or URL) a command operates on.
type DatasetOptions struct {
	Data string
}

// AddDatasetArgs wires the dataset selection flag on the provided command.
func AddDatasetArgs(cmd *cobra.Command, o *DatasetOptions) {
	cmd.Flags().StringVarP(&o.Data, "data", "d", "",
		"Path or URL of the calendar dataset. Defaults to the configured data file.")
}
