package dataset

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/homec-dev/homec/pkg/datekey"
)

// Load reads and parses a dataset from a local file path or an http(s)
// URL. A failure here leaves no partial state behind; callers get either a
// fully validated document or an error.
func Load(ctx context.Context, source string) (*Document, error) {
	data, err := read(ctx, source)
	if err != nil {
		return nil, err
	}
	return Parse(data)
}

func read(ctx context.Context, source string) ([]byte, error) {
	if strings.HasPrefix(source, "http://") || strings.HasPrefix(source, "https://") {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, source, nil)
		if err != nil {
			return nil, fmt.Errorf("dataset: build request: %w", err)
		}
		resp, err := http.DefaultClient.Do(req)
		if err != nil {
			return nil, fmt.Errorf("dataset: fetch %s: %w", source, err)
		}
		defer func() { _ = resp.Body.Close() }()
		if resp.StatusCode != http.StatusOK {
			return nil, fmt.Errorf("dataset: fetch %s: unexpected status %s", source, resp.Status)
		}
		return io.ReadAll(resp.Body)
	}
	data, err := os.ReadFile(source)
	if err != nil {
		return nil, fmt.Errorf("dataset: read %s: %w", source, err)
	}
	return data, nil
}

// Parse decodes and normalizes a dataset document. Normalization assigns
// ids to events that lack one and validates every event date key; both are
// required before the store will accept the document.
func Parse(data []byte) (*Document, error) {
	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("dataset: parse: %w", err)
	}
	if doc.Months == nil {
		return nil, fmt.Errorf("dataset: document has no months section")
	}
	if err := normalize(&doc); err != nil {
		return nil, err
	}
	return &doc, nil
}

func normalize(doc *Document) error {
	for _, e := range doc.AllEvents() {
		if e.Date == "" || !datekey.Valid(e.Date) {
			return fmt.Errorf("dataset: event %q has invalid date %q", e.Title, e.Date)
		}
		e.EnsureID()
	}
	for _, week := range doc.AllWeeks() {
		if week.WeekOf != "" && !datekey.Valid(week.WeekOf) {
			return fmt.Errorf("dataset: week anchor %q is not a date key", week.WeekOf)
		}
	}
	return nil
}

// Export serializes the document back to JSON. A load followed by an
// immediate export reproduces the same logical content, modulo generated
// event ids and recomputed week analysis.
func Export(doc *Document) ([]byte, error) {
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("dataset: export: %w", err)
	}
	return data, nil
}

// Stamp updates the generated marker before an export or snapshot.
func (d *Document) Stamp(now time.Time) {
	d.Meta.Generated = datekey.Key(now)
}
