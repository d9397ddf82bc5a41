package commands

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/homec-dev/homec/pkg/commands/options"
	"github.com/homec-dev/homec/pkg/runner/conflicts"
)

func addConflicts(topLevel *cobra.Command) {
	do := &options.DatasetOptions{}

	cmd := &cobra.Command{
		Use:   "conflicts",
		Short: "List unresolved scheduling conflicts.",
		Example: `
homec conflicts
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, _, err := loadService(ctx, do)
			if err != nil {
				return err
			}
			c := conflicts.Conflicts{Service: svc}
			return oo.HandleError(c.Do(ctx))
		},
	}

	options.AddDatasetArgs(cmd, do)
	options.AddOutputArg(cmd, oo)

	topLevel.AddCommand(cmd)
}
