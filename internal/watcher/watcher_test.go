package watcher

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestWatcherSignalsOnWrite(t *testing.T) {
	dir := t.TempDir()
	logPath := filepath.Join(dir, "test.log")
	if err := os.WriteFile(logPath, []byte("2024-01-01 10:00:00 [INFO] first\n"), 0644); err != nil {
		t.Fatal(err)
	}

	w, err := New([]string{logPath})
	if err != nil {
		t.Fatal(err)
	}
	if len(w.Paths()) != 1 {
		t.Fatalf("expected 1 watched path, got %d", len(w.Paths()))
	}

	ctx, cancel := context.WithCancel(context.Background())
	go w.Start(ctx)

	// Give the watcher a moment to initialize.
	time.Sleep(200 * time.Millisecond)

	f, err := os.OpenFile(logPath, os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		t.Fatal(err)
	}
	_, _ = f.WriteString("2024-01-01 10:00:01 [ERROR] second\n")
	f.Close()

	select {
	case changed := <-w.Changes:
		want, _ := filepath.Abs(logPath)
		if changed != want {
			t.Errorf("expected change for %s, got %s", want, changed)
		}
	case <-time.After(3 * time.Second):
		t.Fatal("timed out waiting for change signal")
	}

	// Cancel and allow the goroutine to stop before TempDir cleanup.
	cancel()
	time.Sleep(200 * time.Millisecond)
}

func TestWatcherGlobExpansion(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"a.log", "b.log", "notes.txt"} {
		if err := os.WriteFile(filepath.Join(dir, name), []byte("x\n"), 0644); err != nil {
			t.Fatal(err)
		}
	}

	w, err := New([]string{filepath.Join(dir, "*.log")})
	if err != nil {
		t.Fatal(err)
	}

	if len(w.Paths()) != 2 {
		t.Errorf("expected 2 matched files, got %d: %v", len(w.Paths()), w.Paths())
	}
}
