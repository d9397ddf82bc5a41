package snapshot

import (
	"context"
	"fmt"
	"time"

	"github.com/homec-dev/homec/pkg/app"
	"github.com/homec-dev/homec/pkg/store"
)

// Action selects the snapshot operation.
type Action string

const (
	ActionSave Action = "save"
	ActionList Action = "list"
)

// Snapshot archives the current dataset state or lists prior archives.
type Snapshot struct {
	Service *app.Service
	Config  store.Config
	Action  Action
}

func (s *Snapshot) Do(ctx context.Context) error {
	snaps, err := store.OpenSnapshots(s.Config)
	if err != nil {
		return err
	}

	switch s.Action {
	case ActionList:
		keys := snaps.List(ctx)
		if len(keys) == 0 {
			fmt.Println("no snapshots")
			return nil
		}
		for _, key := range keys {
			fmt.Println(key)
		}
		return nil
	case ActionSave, "":
		if s.Service == nil {
			return fmt.Errorf("snapshot: no service configured")
		}
		key, err := snaps.Save(s.Service.Document(), time.Now())
		if err != nil {
			return err
		}
		fmt.Printf("saved %s\n", key)
		return nil
	default:
		return fmt.Errorf("snapshot: unknown action %q", s.Action)
	}
}
