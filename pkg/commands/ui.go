package commands

import (
	"context"
	"strings"

	"github.com/spf13/cobra"

	"github.com/homec-dev/homec/pkg/commands/options"
	"github.com/homec-dev/homec/pkg/runner/tui"
)

func addUI(topLevel *cobra.Command) {
	do := &options.DatasetOptions{}

	cmd := &cobra.Command{
		Use:     "ui",
		Short:   "Browse the calendar interactively.",
		Aliases: []string{"tui"},
		Example: `
homec ui
homec ui --data ./family.json
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, source, err := loadService(ctx, do)
			if err != nil {
				return err
			}
			// Only local files get the edit-and-watch loop.
			if strings.HasPrefix(source, "http://") || strings.HasPrefix(source, "https://") {
				source = ""
			}
			return tui.Run(ctx, svc, source)
		},
	}

	options.AddDatasetArgs(cmd, do)

	topLevel.AddCommand(cmd)
}
