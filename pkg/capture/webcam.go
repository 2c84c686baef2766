package capture

import (
	"context"
	"fmt"
	"log/slog"

	"gocv.io/x/gocv"
)

const windowTitle = "Camera Preview"

// Webcam captures frames from a local camera device via OpenCV.
type Webcam struct {
	deviceID int
	logger   *slog.Logger

	cam *gocv.VideoCapture
}

// NewWebcam opens the camera device. The preview window is not created
// until Capture is called.
func NewWebcam(deviceID int, logger *slog.Logger) (*Webcam, error) {
	cam, err := gocv.OpenVideoCapture(deviceID)
	if err != nil {
		return nil, fmt.Errorf("capture: open camera %d: %w", deviceID, err)
	}

	return &Webcam{
		deviceID: deviceID,
		logger:   logger.With("component", "capture.webcam"),
		cam:      cam,
	}, nil
}

// Capture shows the live preview and blocks until the user commits a
// frame or cancels. The window is destroyed before returning on every
// path.
func (w *Webcam) Capture(ctx context.Context) (*Frame, error) {
	window := gocv.NewWindow(windowTitle)
	defer window.Close()

	img := gocv.NewMat()
	defer img.Close()

	w.logger.Info("preview open", "commit_key", "c", "quit_key", "q")

	for {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}

		if ok := w.cam.Read(&img); !ok {
			return nil, fmt.Errorf("capture: camera %d read failed", w.deviceID)
		}
		if img.Empty() {
			continue
		}

		window.IMShow(img)

		switch ActionForKey(window.WaitKey(1)) {
		case ActionCommit:
			w.logger.Debug("frame committed", "cols", img.Cols(), "rows", img.Rows())
			return frameFromMat(img)
		case ActionQuit:
			return nil, ErrCancelled
		}

		// Closing the preview window cancels the run.
		if window.GetWindowProperty(gocv.WindowPropertyVisible) < 1 {
			return nil, ErrCancelled
		}
	}
}

// Close releases the camera device.
func (w *Webcam) Close() error {
	if w.cam == nil {
		return nil
	}
	err := w.cam.Close()
	w.cam = nil
	return err
}

// frameFromMat copies the committed Mat into a Frame.
func frameFromMat(img gocv.Mat) (*Frame, error) {
	decoded, err := img.ToImage()
	if err != nil {
		return nil, fmt.Errorf("capture: convert frame: %w", err)
	}

	return &Frame{
		Image:  decoded,
		Width:  img.Cols(),
		Height: img.Rows(),
	}, nil
}

// Verify Webcam implements Source at compile time.
var _ Source = (*Webcam)(nil)
