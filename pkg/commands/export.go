package commands

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/homec-dev/homec/pkg/commands/options"
	"github.com/homec-dev/homec/pkg/runner/export"
)

func addExport(topLevel *cobra.Command) {
	do := &options.DatasetOptions{}
	format := "json"
	output := ""

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export the calendar as JSON or an iCalendar feed.",
		Example: `
homec export > calendar.json
homec export --format ics --output calendar.ics
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, _, err := loadService(ctx, do)
			if err != nil {
				return err
			}

			e := export.Export{
				Service: svc,
				Output:  output,
			}
			switch format {
			case "json":
				e.Format = export.FormatJSON
			case "ics":
				e.Format = export.FormatICS
			default:
				return fmt.Errorf("unknown format %q, want json or ics", format)
			}
			return oo.HandleError(e.Do(ctx))
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", "json",
		"Export format. One of 'json' or 'ics'.")
	cmd.Flags().StringVarP(&output, "output", "o", "",
		"Write to this file instead of stdout.")
	options.AddDatasetArgs(cmd, do)

	topLevel.AddCommand(cmd)
}
