package scenes

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func writeWatchedFile(t *testing.T, dir, name, body string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}

func TestWatcherReportsOnlyWatchedExtensions(t *testing.T) {
	dir := t.TempDir()
	w, err := NewWatcherWith(time.Millisecond, []string{".yaml"}, dir)
	if err != nil {
		t.Fatalf("new watcher: %v", err)
	}
	defer w.Close()

	writeWatchedFile(t, dir, "notes.txt", "not a scene")
	want := writeWatchedFile(t, dir, "level.yaml", "name: level")

	select {
	case got := <-w.Events():
		if got != want {
			t.Fatalf("first event for %s, want %s", got, want)
		}
	case err := <-w.Errors():
		t.Fatalf("watcher error: %v", err)
	case <-time.After(2 * time.Second):
		t.Fatal("no event within 2s")
	}
}

func TestWatcherCloseEndsChannels(t *testing.T) {
	dir := t.TempDir()
	w, err := NewWatcher(dir)
	if err != nil {
		t.Fatalf("new watcher: %v", err)
	}

	writeWatchedFile(t, dir, "level.yaml", "name: level")
	if err := w.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}
	_ = w.Close() // idempotent

	deadline := time.After(2 * time.Second)
	for {
		select {
		case _, ok := <-w.Events():
			if !ok {
				return
			}
		case <-deadline:
			t.Fatal("events channel still open after Close")
		}
	}
}
