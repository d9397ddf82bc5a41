package conflicts

import (
	"context"
	"fmt"

	"github.com/homec-dev/homec/pkg/app"
	"github.com/homec-dev/homec/pkg/printers"
)

// Conflicts lists the unresolved conflicts in the loaded dataset.
type Conflicts struct {
	Service *app.Service
}

func (c *Conflicts) Do(ctx context.Context) error {
	if c.Service == nil {
		return fmt.Errorf("conflicts: no service configured")
	}

	open := c.Service.UnresolvedConflicts()
	pp := printers.PrettyPrint{}
	pp.TitleWithCount("Unresolved conflicts", len(open))
	pp.PrintConflicts(open)
	return nil
}
