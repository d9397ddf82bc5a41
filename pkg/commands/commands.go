package commands

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/homec-dev/homec/pkg/app"
	"github.com/homec-dev/homec/pkg/commands/options"
	"github.com/homec-dev/homec/pkg/store"
)

var (
	oo = &options.OutputOptions{}
)

func New() *cobra.Command {

	cmd := &cobra.Command{
		Use:   "homec",
		Short: "Family calendar on the command line.",
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	AddCommands(cmd)
	return cmd
}

func AddCommands(topLevel *cobra.Command) {
	addUI(topLevel)
	addGrid(topLevel)
	addAgenda(topLevel)
	addList(topLevel)
	addAdd(topLevel)
	addUpdate(topLevel)
	addRemove(topLevel)
	addConflicts(topLevel)
	addExport(topLevel)
	addSnapshot(topLevel)
	addVersion(topLevel)
}

// loadService resolves the dataset source (flag, then config) and loads it.
func loadService(ctx context.Context, do *options.DatasetOptions) (*app.Service, string, error) {
	source := do.Data
	if source == "" {
		cfg, err := store.LoadConfig()
		if err != nil {
			return nil, "", err
		}
		source = cfg.DataPath()
	}
	svc, err := app.Load(ctx, source)
	if err != nil {
		return nil, "", err
	}
	return svc, source, nil
}

// saveDataset writes the mutated dataset back to its source file. Datasets
// loaded from a URL stay in memory; use export to capture the change.
func saveDataset(svc *app.Service, source string) error {
	if strings.HasPrefix(source, "http://") || strings.HasPrefix(source, "https://") {
		fmt.Fprintln(os.Stderr, "dataset was loaded from a URL; change not saved, use 'homec export'")
		return nil
	}
	svc.Document().Stamp(time.Now())
	data, err := svc.ExportJSON()
	if err != nil {
		return err
	}
	return os.WriteFile(source, data, 0o644)
}
