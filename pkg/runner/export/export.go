package export

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/homec-dev/homec/pkg/app"
)

// Format selects the export serialization.
type Format string

const (
	FormatJSON Format = "json"
	FormatICS  Format = "ics"
)

// Export serializes the current dataset state to stdout or a file. This is
// the only persistence path for edits made in a session.
type Export struct {
	Service *app.Service
	Format  Format
	// Output is a file path; empty writes to stdout.
	Output string
}

func (e *Export) Do(ctx context.Context) error {
	if e.Service == nil {
		return fmt.Errorf("export: no service configured")
	}

	var data []byte
	switch e.Format {
	case FormatICS:
		out, err := e.Service.ExportICS()
		if err != nil {
			return err
		}
		data = []byte(out)
	case FormatJSON, "":
		doc := e.Service.Document()
		doc.Stamp(time.Now())
		out, err := e.Service.ExportJSON()
		if err != nil {
			return err
		}
		data = out
	default:
		return fmt.Errorf("export: unknown format %q", e.Format)
	}

	if e.Output == "" {
		_, err := os.Stdout.Write(data)
		return err
	}
	return os.WriteFile(e.Output, data, 0o644)
}
