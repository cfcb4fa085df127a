package image

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gocv.io/x/gocv"
)

// ErrWriteFailed is returned when OpenCV could not encode or save an image.
var ErrWriteFailed = errors.New("image write failed")

// Writer persists a masked cluster image.
type Writer interface {
	Write(path string, img gocv.Mat) error
}

// Plotter displays an intermediate image for inspection.
type Plotter interface {
	Plot(title string, img gocv.Mat) error
}

// FileWriter writes images with gocv.IMWrite; the format follows the extension.
type FileWriter struct {
	// MakeDirs creates missing parent directories before writing.
	MakeDirs bool
}

// Write saves img to path.
func (w FileWriter) Write(path string, img gocv.Mat) error {
	if w.MakeDirs {
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
	}
	if !gocv.IMWrite(path, img) {
		return fmt.Errorf("%w: %s", ErrWriteFailed, path)
	}
	return nil
}

// WindowPlotter shows images in an OpenCV window and waits for a key press.
type WindowPlotter struct {
	// Delay in milliseconds passed to WaitKey; 0 waits indefinitely.
	Delay int
}

// Plot opens a window titled title, shows img and closes it again.
func (p WindowPlotter) Plot(title string, img gocv.Mat) error {
	window := gocv.NewWindow(title)
	defer window.Close()

	window.IMShow(img)
	window.WaitKey(p.Delay)
	return nil
}
