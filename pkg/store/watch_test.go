package store

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestWatchEmitsOnDatasetWrite(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "data.json")
	if err := os.WriteFile(path, []byte(`{}`), 0o644); err != nil {
		t.Fatalf("seed dataset: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	ch, err := Watch(ctx, path)
	if err != nil {
		t.Fatalf("watch: %v", err)
	}

	// Allow the watcher goroutine to subscribe before writing.
	time.Sleep(50 * time.Millisecond)

	if err := os.WriteFile(path, []byte(`{"months":[]}`), 0o644); err != nil {
		t.Fatalf("rewrite dataset: %v", err)
	}

	select {
	case evt := <-ch:
		if filepath.Base(evt.Path) != "data.json" {
			t.Fatalf("unexpected event path %q", evt.Path)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for change event")
	}
}

func TestWatchIgnoresSiblingFiles(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "data.json")
	if err := os.WriteFile(path, []byte(`{}`), 0o644); err != nil {
		t.Fatalf("seed dataset: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	ch, err := Watch(ctx, path)
	if err != nil {
		t.Fatalf("watch: %v", err)
	}
	time.Sleep(50 * time.Millisecond)

	if err := os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x"), 0o644); err != nil {
		t.Fatalf("write sibling: %v", err)
	}

	select {
	case evt := <-ch:
		t.Fatalf("unexpected event for sibling write: %+v", evt)
	case <-time.After(300 * time.Millisecond):
	}
}

func TestWatchRequiresPath(t *testing.T) {
	if _, err := Watch(context.Background(), ""); err == nil {
		t.Fatal("expected error for empty path")
	}
}
