package watch

import (
	"context"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"
)

func TestDebouncerCoalesces(t *testing.T) {
	var mu sync.Mutex
	fired := 0

	d := NewDebouncer(50*time.Millisecond, func() {
		mu.Lock()
		fired++
		mu.Unlock()
	})
	defer d.Stop()

	for i := 0; i < 5; i++ {
		d.Trigger()
		time.Sleep(5 * time.Millisecond)
	}

	time.Sleep(150 * time.Millisecond)

	mu.Lock()
	defer mu.Unlock()
	if fired != 1 {
		t.Errorf("callback fired %d times, want 1", fired)
	}
}

func TestDebouncerStop(t *testing.T) {
	fired := make(chan struct{}, 1)

	d := NewDebouncer(30*time.Millisecond, func() { fired <- struct{}{} })
	d.Trigger()
	d.Stop()

	select {
	case <-fired:
		t.Error("stopped debouncer should not fire")
	case <-time.After(100 * time.Millisecond):
	}
}

func TestDocumentWatcherDetectsWrites(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "doc.md")
	if err := os.WriteFile(path, []byte("# v1"), 0600); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}

	changed := make(chan string, 4)
	w, err := NewDocumentWatcher(path, 20*time.Millisecond, func(p string) {
		changed <- p
	})
	if err != nil {
		t.Fatalf("NewDocumentWatcher() error = %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	done := make(chan error, 1)
	go func() { done <- w.Run(ctx) }()

	// Give the watcher a moment to register the directory.
	time.Sleep(50 * time.Millisecond)

	if err := os.WriteFile(path, []byte("# v2"), 0600); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}

	select {
	case p := <-changed:
		if filepath.Base(p) != "doc.md" {
			t.Errorf("changed path = %q, want doc.md", p)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for change callback")
	}

	cancel()
	if err := <-done; err != context.Canceled {
		t.Errorf("Run() error = %v, want context.Canceled", err)
	}
}

func TestDocumentWatcherIgnoresSiblingFiles(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "doc.md")
	if err := os.WriteFile(path, []byte("# doc"), 0600); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}

	changed := make(chan string, 4)
	w, err := NewDocumentWatcher(path, 10*time.Millisecond, func(p string) {
		changed <- p
	})
	if err != nil {
		t.Fatalf("NewDocumentWatcher() error = %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go func() { _ = w.Run(ctx) }()

	time.Sleep(50 * time.Millisecond)

	if err := os.WriteFile(filepath.Join(dir, "other.md"), []byte("# other"), 0600); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}

	select {
	case p := <-changed:
		t.Errorf("unexpected callback for %q", p)
	case <-time.After(200 * time.Millisecond):
	}
}
