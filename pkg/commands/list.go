package commands

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/homec-dev/homec/pkg/commands/options"
	"github.com/homec-dev/homec/pkg/runner/list"
)

func addList(topLevel *cobra.Command) {
	do := &options.DatasetOptions{}
	fo := &options.FilterOptions{}
	io := &options.IDOptions{}
	all := false
	window := ""

	cmd := &cobra.Command{
		Use:     "list",
		Short:   "List upcoming events, prep tasks, and open conflicts.",
		Aliases: []string{"ls"},
		Example: `
homec list
homec list --all
homec list --category family --show-id
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, _, err := loadService(ctx, do)
			if err != nil {
				return err
			}

			l := list.List{
				Service: svc,
				Filters: fo.Filters(),
				ShowID:  io.ShowID,
				All:     all,
				Window:  window,
			}
			return oo.HandleError(l.Do(ctx))
		},
	}

	cmd.Flags().BoolVarP(&all, "all", "a", false,
		"List every loaded month instead of the next two weeks.")
	cmd.Flags().StringVarP(&window, "window", "w", "",
		"Horizon for the coming-up section, e.g. 2w or 10d.")
	options.AddDatasetArgs(cmd, do)
	options.AddFilterArgs(cmd, fo)
	options.AddShowIDArgs(cmd, io)
	options.AddOutputArg(cmd, oo)

	topLevel.AddCommand(cmd)
}
