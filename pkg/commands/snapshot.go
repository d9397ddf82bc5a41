package commands

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/homec-dev/homec/pkg/commands/options"
	"github.com/homec-dev/homec/pkg/runner/snapshot"
	"github.com/homec-dev/homec/pkg/store"
)

func addSnapshot(topLevel *cobra.Command) {
	do := &options.DatasetOptions{}

	cmd := &cobra.Command{
		Use:       "snapshot [save|list]",
		Short:     "Archive the current dataset, or list prior archives.",
		ValidArgs: []string{"save", "list"},
		Example: `
homec snapshot save
homec snapshot list
`,
		Args: cobra.MatchAll(cobra.MaximumNArgs(1), cobra.OnlyValidArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			cfg, err := store.LoadConfig()
			if err != nil {
				return err
			}

			s := snapshot.Snapshot{Config: cfg, Action: snapshot.ActionSave}
			if len(args) == 1 {
				s.Action = snapshot.Action(args[0])
			}
			if s.Action == snapshot.ActionSave {
				svc, _, err := loadService(ctx, do)
				if err != nil {
					return err
				}
				s.Service = svc
			}
			return oo.HandleError(s.Do(ctx))
		},
	}

	options.AddDatasetArgs(cmd, do)
	options.AddOutputArg(cmd, oo)

	topLevel.AddCommand(cmd)
}
