package remove

import (
	"context"
	"fmt"

	"github.com/homec-dev/homec/pkg/app"
)

// Remove deletes an event by id.
type Remove struct {
	Service *app.Service
	ID      string
}

func (r *Remove) Do(ctx context.Context) error {
	if r.Service == nil {
		return fmt.Errorf("remove: no service configured")
	}
	if !r.Service.RemoveEvent(r.ID) {
		return fmt.Errorf("remove: no event with id %q", r.ID)
	}
	fmt.Printf("removed %s\n", r.ID)
	return nil
}
