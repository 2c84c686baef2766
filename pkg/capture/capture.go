// Package capture acquires a single still frame from a camera.
//
// The webcam implementation opens a live preview window and polls the
// keyboard every display tick: 'c' commits the frame on screen, 'q',
// ESC or closing the window cancels without producing a frame. Nothing
// is buffered beyond the current tick.
//
// The Source interface fronts the webcam so the pipeline can run
// against a mock in tests.
package capture

import (
	"context"
	"errors"
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"

	"github.com/google/uuid"
)

// ErrCancelled is returned when the user quits the capture surface
// without committing a frame. It is a normal alternate termination,
// not a failure.
var ErrCancelled = errors.New("capture: cancelled by user")

// Source produces a single captured frame.
type Source interface {
	// Capture blocks until the user commits a frame or cancels.
	// Returns ErrCancelled when no frame was committed.
	Capture(ctx context.Context) (*Frame, error)

	// Close releases the underlying device.
	Close() error
}

// Frame is a committed still image.
type Frame struct {
	// Image is the decoded pixel buffer.
	Image image.Image

	// Width and Height in pixels.
	Width  int
	Height int
}

// Action is the capture loop's response to a key press.
type Action int

const (
	// ActionNone keeps the preview running.
	ActionNone Action = iota

	// ActionCommit freezes the current frame and ends the loop.
	ActionCommit

	// ActionQuit ends the loop without a frame.
	ActionQuit
)

// Key bindings for the preview window.
const (
	KeyCommit = 'c'
	KeyQuit   = 'q'
	keyEscape = 27
)

// ActionForKey maps a WaitKey result to a loop action.
// Negative values mean no key was pressed this tick.
func ActionForKey(key int) Action {
	switch key {
	case KeyCommit:
		return ActionCommit
	case KeyQuit, keyEscape:
		return ActionQuit
	default:
		return ActionNone
	}
}

// SaveFrame writes a frame to dir as photo-<uuid>.png and returns the
// path. Used when frame saving is enabled in config.
func SaveFrame(frame *Frame, dir string) (string, error) {
	path := filepath.Join(dir, fmt.Sprintf("photo-%s.png", uuid.NewString()))

	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("capture: save frame: %w", err)
	}
	defer f.Close()

	if err := png.Encode(f, frame.Image); err != nil {
		return "", fmt.Errorf("capture: encode frame: %w", err)
	}

	return path, nil
}
