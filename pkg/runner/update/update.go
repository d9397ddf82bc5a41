package update

import (
	"context"
	"fmt"

	"github.com/homec-dev/homec/pkg/app"
	"github.com/homec-dev/homec/pkg/event"
	"github.com/homec-dev/homec/pkg/printers"
)

// Update patches an existing event by id. A date change moves the event to
// its new day.
type Update struct {
	Service *app.Service
	ID      string
	Patch   event.Patch

	ShowID bool
}

func (u *Update) Do(ctx context.Context) error {
	if u.Service == nil {
		return fmt.Errorf("update: no service configured")
	}

	e, err := u.Service.UpdateEvent(u.ID, u.Patch)
	if err != nil {
		return err
	}

	pp := printers.PrettyPrint{ShowID: u.ShowID}
	pp.Title(e.Date)
	pp.PrintEvents(u.Service.EventsOn(e.Date), u.Service.Document().Categories)
	return nil
}
