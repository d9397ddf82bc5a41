package commands

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/homec-dev/homec/pkg/commands/options"
	"github.com/homec-dev/homec/pkg/runner/grid"
)

func addGrid(topLevel *cobra.Command) {
	do := &options.DatasetOptions{}
	fo := &options.FilterOptions{}
	io := &options.IDOptions{}
	long := false

	cmd := &cobra.Command{
		Use:     "grid [month]",
		Short:   "Show one month as a calendar grid.",
		Aliases: []string{"month", "cal"},
		Example: `
homec grid
homec grid 2025-12 --category kid
homec grid --long --priority-only
`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, _, err := loadService(ctx, do)
			if err != nil {
				return err
			}
			svc.SetFilters(fo.Filters())

			g := grid.Grid{
				Service: svc,
				Long:    long,
				ShowID:  io.ShowID,
			}
			if len(args) == 1 {
				g.MonthID = args[0]
			}
			return oo.HandleError(g.Do(ctx))
		},
	}

	cmd.Flags().BoolVarP(&long, "long", "l", false,
		"Print one line per day with event details.")
	options.AddDatasetArgs(cmd, do)
	options.AddFilterArgs(cmd, fo)
	options.AddShowIDArgs(cmd, io)
	options.AddOutputArg(cmd, oo)

	topLevel.AddCommand(cmd)
}
