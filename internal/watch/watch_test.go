package watch

import (
	"context"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"
)

func TestDebouncer_Coalesces(t *testing.T) {
	d := newDebouncer(20 * time.Millisecond)
	var calls atomic.Int32
	done := make(chan struct{}, 10)
	for range 5 {
		d.trigger(func() {
			calls.Add(1)
			done <- struct{}{}
		})
	}

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("debounced callback never ran")
	}
	time.Sleep(60 * time.Millisecond)
	if n := calls.Load(); n != 1 {
		t.Errorf("callback ran %d times, want 1", n)
	}
}

func TestDebouncer_Cancel(t *testing.T) {
	d := newDebouncer(20 * time.Millisecond)
	var calls atomic.Int32
	d.trigger(func() { calls.Add(1) })
	d.cancel()

	time.Sleep(60 * time.Millisecond)
	if n := calls.Load(); n != 0 {
		t.Errorf("cancelled callback ran %d times", n)
	}
}

func TestDebouncer_DefaultDuration(t *testing.T) {
	if d := newDebouncer(0); d.duration != DefaultDebounce {
		t.Errorf("duration = %v, want %v", d.duration, DefaultDebounce)
	}
}

func TestWatcher_Run(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "tablet.yaml")
	if err := os.WriteFile(path, []byte("tablet: {}\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	w, err := New(path, 20*time.Millisecond)
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}
	if !filepath.IsAbs(w.Path()) {
		t.Errorf("Path() = %q, want absolute", w.Path())
	}

	ctx, cancel := context.WithCancel(context.Background())
	changes := make(chan struct{}, 10)
	result := make(chan error, 1)
	go func() {
		result <- w.Run(ctx, func() { changes <- struct{}{} })
	}()

	// Unrelated files in the same directory are ignored.
	if err := os.WriteFile(filepath.Join(dir, "other.yaml"), []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
	select {
	case <-changes:
		t.Fatal("change reported for an unrelated file")
	case <-time.After(100 * time.Millisecond):
	}

	if err := os.WriteFile(path, []byte("tablet: {shape: oval}\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	select {
	case <-changes:
	case <-time.After(2 * time.Second):
		t.Fatal("change to the watched file was not reported")
	}

	cancel()
	select {
	case err := <-result:
		if err != nil {
			t.Errorf("Run() = %v, want nil after cancel", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("Run() did not return after cancel")
	}
}

func TestNew_MissingDirectory(t *testing.T) {
	if _, err := New(filepath.Join(t.TempDir(), "missing", "tablet.yaml"), 0); err == nil {
		t.Error("New() succeeded for a missing directory")
	}
}
