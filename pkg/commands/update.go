package commands

import (
	"context"
	"strings"

	"github.com/spf13/cobra"

	"github.com/homec-dev/homec/pkg/commands/options"
	"github.com/homec-dev/homec/pkg/runner/update"
)

func addUpdate(topLevel *cobra.Command) {
	do := &options.DatasetOptions{}
	eo := &options.EventOptions{}
	io := &options.IDOptions{}

	cmd := &cobra.Command{
		Use:   "update <id> [title]",
		Short: "Update fields on an existing event; a new date moves it.",
		Example: `
homec update recital --time "7:00 PM"
homec update recital "Winter recital" --date 2025-12-11
`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, source, err := loadService(ctx, do)
			if err != nil {
				return err
			}

			title := strings.Join(args[1:], " ")
			u := update.Update{
				Service: svc,
				ID:      args[0],
				Patch:   eo.Patch(cmd, title),
				ShowID:  io.ShowID,
			}
			if err := u.Do(ctx); err != nil {
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
