package commands

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/homec-dev/homec/pkg/commands/options"
	"github.com/homec-dev/homec/pkg/runner/remove"
)

func addRemove(topLevel *cobra.Command) {
	do := &options.DatasetOptions{}

	cmd := &cobra.Command{
		Use:     "remove <id>",
		Short:   "Remove an event by id.",
		Aliases: []string{"rm", "delete"},
		Example: `
homec remove recital
`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, source, err := loadService(ctx, do)
			if err != nil {
				return err
			}

			r := remove.Remove{Service: svc, ID: args[0]}
			if err := r.Do(ctx); err != nil {
				return oo.HandleError(err)
			}
			return oo.HandleError(saveDataset(svc, source))
		},
	}

	options.AddDatasetArgs(cmd, do)
	options.AddOutputArg(cmd, oo)

	topLevel.AddCommand(cmd)
}
