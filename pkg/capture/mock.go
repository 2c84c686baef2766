package capture

import (
	"context"
	"image"
	"sync"
)

// Mock implements Source for testing.
type Mock struct {
	// CaptureFunc is called when Capture is invoked.
	// If nil, returns a small solid frame.
	CaptureFunc func(ctx context.Context) (*Frame, error)

	// CloseFunc is called when Close is invoked.
	CloseFunc func() error

	mu       sync.Mutex
	captures int
}

// NewMock creates a mock source that commits a 2x2 frame.
func NewMock() *Mock {
	return &Mock{
		CaptureFunc: func(ctx context.Context) (*Frame, error) {
			img := image.NewRGBA(image.Rect(0, 0, 2, 2))
			return &Frame{Image: img, Width: 2, Height: 2}, nil
		},
	}
}

// Cancelled returns a mock source that simulates the user closing the
// preview window without committing.
func Cancelled() *Mock {
	return &Mock{
		CaptureFunc: func(ctx context.Context) (*Frame, error) {
			return nil, ErrCancelled
		},
	}
}

// Capture calls CaptureFunc and counts the call.
func (m *Mock) Capture(ctx context.Context) (*Frame, error) {
	m.mu.Lock()
	m.captures++
	m.mu.Unlock()

	if m.CaptureFunc != nil {
		return m.CaptureFunc(ctx)
	}
	return nil, ErrCancelled
}

// Close calls CloseFunc.
func (m *Mock) Close() error {
	if m.CloseFunc != nil {
		return m.CloseFunc()
	}
	return nil
}

// Captures returns how many times Capture was called.
func (m *Mock) Captures() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.captures
}

// Verify Mock implements Source at compile time.
var _ Source = (*Mock)(nil)
