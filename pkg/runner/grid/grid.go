package grid

import (
	"context"
	"fmt"
	"time"

	"github.com/homec-dev/homec/pkg/app"
	"github.com/homec-dev/homec/pkg/printers"
)

// Grid renders one month of the calendar to the terminal.
type Grid struct {
	Service *app.Service

	// MonthID selects the month as YYYY-MM; empty means the current month.
	MonthID string
	// Long prints one line per day with event details instead of the
	// compact day matrix.
	Long   bool
	ShowID bool
}

func (g *Grid) Do(ctx context.Context) error {
	if g.Service == nil {
		return fmt.Errorf("grid: no service configured")
	}
	monthID := g.MonthID
	if monthID == "" {
		monthID = time.Now().Format("2006-01")
	}

	grid, err := g.Service.GridForMonth(monthID)
	if err != nil {
		return err
	}

	pp := printers.PrettyPrint{ShowID: g.ShowID}
	pp.ConflictBanner(g.Service.UnresolvedConflictCount())
	if g.Long {
		pp.PrintGridLong(grid)
	} else {
		pp.PrintGridCompact(grid)
	}
	return nil
}
