package agenda

import (
	"context"
	"fmt"

	"github.com/homec-dev/homec/pkg/app"
	"github.com/homec-dev/homec/pkg/printers"
)

// Agenda renders the weekly agenda: seven day columns of events, routines,
// and dinners.
type Agenda struct {
	Service *app.Service

	// Anchor is any date key inside the wanted week; empty means the week
	// containing today. The week always starts on Sunday.
	Anchor string
}

func (a *Agenda) Do(ctx context.Context) error {
	if a.Service == nil {
		return fmt.Errorf("agenda: no service configured")
	}

	week, err := a.Service.AgendaForWeek(a.Anchor)
	if err != nil {
		return err
	}

	pp := printers.PrettyPrint{}
	pp.ConflictBanner(a.Service.UnresolvedConflictCount())
	pp.Title("Week of " + week.Start)
	pp.NewLine()
	pp.PrintAgenda(week)
	return nil
}
