package commands

import (
	"context"
	"strings"

	"github.com/spf13/cobra"

	"github.com/homec-dev/homec/pkg/commands/options"
	"github.com/homec-dev/homec/pkg/event"
	"github.com/homec-dev/homec/pkg/runner/add"
)

func addAdd(topLevel *cobra.Command) {
	do := &options.DatasetOptions{}
	eo := &options.EventOptions{}
	io := &options.IDOptions{}

	cmd := &cobra.Command{
		Use:   "add <title>",
		Short: "Add an event to the calendar.",
		Example: `
homec add "Piano recital" --date 2025-12-04 --time "6:00 PM" --category kid
homec add "Flight home" --date 2025-12-23 --category travel --priority high
`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, source, err := loadService(ctx, do)
			if err != nil {
				return err
			}

			a := add.Add{
				Service: svc,
				Event: event.Event{
					Title:    strings.Join(args, " "),
					Date:     eo.Date,
					Category: eo.Category,
					Time:     eo.Time,
					Priority: eo.Priority,
					Notes:    eo.Notes,
					Location: eo.Location,
				},
				ShowID: io.ShowID,
			}
			if err := a.Do(ctx); err != nil {
				return oo.HandleError(err)
			}
			return oo.HandleError(saveDataset(svc, source))
		},
	}

	options.AddDatasetArgs(cmd, do)
	options.AddEventArgs(cmd, eo)
	options.AddShowIDArgs(cmd, io)
	options.AddOutputArg(cmd, oo)

	topLevel.AddCommand(cmd)
}
