package capture_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/awilder/go-lookout/pkg/capture"
)

func TestActionForKey(t *testing.T) {
	tests := []struct {
		name   string
		key    int
		action capture.Action
	}{
		{"commit on c", 'c', capture.ActionCommit},
		{"quit on q", 'q', capture.ActionQuit},
		{"quit on escape", 27, capture.ActionQuit},
		{"no key pressed", -1, capture.ActionNone},
		{"unbound key", 'x', capture.ActionNone},
		{"unbound uppercase", 'C', capture.ActionNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := capture.ActionForKey(tt.key); got != tt.action {
				t.Errorf("ActionForKey(%d) = %v, want %v", tt.key, got, tt.action)
			}
		})
	}
}

func TestSaveFrame(t *testing.T) {
	dir := t.TempDir()

	frame, err := capture.NewMock().Capture(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	path, err := capture.SaveFrame(frame, dir)
	if err != nil {
		t.Fatalf("SaveFrame failed: %v", err)
	}

	name := filepath.Base(path)
	if !strings.HasPrefix(name, "photo-") {
		t.Errorf("expected photo- prefix, got %s", name)
	}
	if !strings.HasSuffix(name, ".png") {
		t.Errorf("expected .png suffix, got %s", name)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read saved frame: %v", err)
	}
	if len(data) == 0 {
		t.Error("expected non-empty PNG file")
	}
}

func TestSaveFrameBadDir(t *testing.T) {
	frame, _ := capture.NewMock().Capture(context.Background())

	if _, err := capture.SaveFrame(frame, "/nonexistent/dir"); err == nil {
		t.Error("expected error for missing directory")
	}
}

func TestMockCapture(t *testing.T) {
	t.Run("default commits a frame", func(t *testing.T) {
		mock := capture.NewMock()

		frame, err := mock.Capture(context.Background())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if frame.Width != 2 || frame.Height != 2 {
			t.Errorf("unexpected dimensions: %dx%d", frame.Width, frame.Height)
		}
		if mock.Captures() != 1 {
			t.Errorf("expected 1 capture, got %d", mock.Captures())
		}
	})

	t.Run("cancelled returns ErrCancelled", func(t *testing.T) {
		mock := capture.Cancelled()

		_, err := mock.Capture(context.Background())
		if !errors.Is(err, capture.ErrCancelled) {
			t.Errorf("expected ErrCancelled, got %v", err)
		}
	})

	t.Run("close is a no-op by default", func(t *testing.T) {
		if err := capture.NewMock().Close(); err != nil {
			t.Errorf("unexpected error: %v", err)
		}
	})
}
