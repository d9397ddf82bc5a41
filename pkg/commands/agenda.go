package commands

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/homec-dev/homec/pkg/commands/options"
	"github.com/homec-dev/homec/pkg/runner/agenda"
)

func addAgenda(topLevel *cobra.Command) {
	do := &options.DatasetOptions{}
	fo := &options.FilterOptions{}

	cmd := &cobra.Command{
		Use:     "agenda [date]",
		Short:   "Show the weekly agenda for the week containing a date.",
		Aliases: []string{"week"},
		Example: `
homec agenda
homec agenda 2025-12-04
homec agenda --priority-only
`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, _, err := loadService(ctx, do)
			if err != nil {
				return err
			}
			svc.SetFilters(fo.Filters())

			a := agenda.Agenda{Service: svc}
			if len(args) == 1 {
				a.Anchor = args[0]
			}
			return oo.HandleError(a.Do(ctx))
		},
	}

	options.AddDatasetArgs(cmd, do)
	options.AddFilterArgs(cmd, fo)
	options.AddOutputArg(cmd, oo)

	topLevel.AddCommand(cmd)
}
