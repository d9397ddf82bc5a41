package add

import (
	"context"
	"fmt"
	"os"

	"github.com/homec-dev/homec/pkg/app"
	"github.com/homec-dev/homec/pkg/event"
	"github.com/homec-dev/homec/pkg/printers"
)

// Add stores a new event and shows the day it landed on.
type Add struct {
	Service *app.Service
	Event   event.Event

	ShowID bool
}

func (a *Add) Do(ctx context.Context) error {
	if a.Service == nil {
		return fmt.Errorf("add: no service configured")
	}

	e := a.Event
	placement, err := a.Service.AddEvent(&e)
	if err != nil {
		return err
	}
	if placement.Orphaned {
		fmt.Fprintf(os.Stderr, "add: %s is outside the loaded months, kept in %s\n",
			e.Date, placement.MonthID)
	}

	pp := printers.PrettyPrint{ShowID: a.ShowID}
	pp.Title(e.Date)
	pp.PrintEvents(a.Service.EventsOn(e.Date), a.Service.Document().Categories)
	return nil
}
