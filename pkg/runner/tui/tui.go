package tui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea/v2"

	"github.com/homec-dev/homec/pkg/app"
	"github.com/homec-dev/homec/pkg/store"
)

// Run starts the interactive calendar. When dataPath names a local file it
// is watched for outside edits and the UI reloads on change.
func Run(ctx context.Context, svc *app.Service, dataPath string) error {
	m := New(svc)
	m.dataPath = dataPath

	if dataPath != "" {
		watchCtx, cancel := context.WithCancel(ctx)
		defer cancel()
		if changes, err := store.Watch(watchCtx, dataPath); err == nil {
			m.changes = changes
		}
	}

	p := tea.NewProgram(m, tea.WithAltScreen())
	_, err := p.Run()
	return err
}
