// Package capture grabs the screen as a source image and reports its size.
package capture

import (
	"fmt"
	"image"

	"github.com/vova616/screenshot"
)

// SourceName is the display name given to images taken from the screen.
const SourceName = "screenshot"

// Grabber captures the screen. It lets presenters run without a display.
type Grabber interface {
	Grab() (*image.RGBA, error)
}

// Screen is the Grabber backed by the operating system.
type Screen struct{}

// Grab returns a capture of the primary screen.
func (Screen) Grab() (*image.RGBA, error) { return Grab() }

// Grab returns a screen capture of the current active monitor.
func Grab() (*image.RGBA, error) {
	img, err := screenshot.CaptureScreen()
	if err != nil {
		return nil, fmt.Errorf("capture screen: %w", err)
	}
	return img, nil
}

// ScreenSize returns the size of the primary screen in pixels.
func ScreenSize() (int, int, error) {
	r, err := screenshot.ScreenRect()
	if err != nil {
		return 0, 0, fmt.Errorf("screen rect: %w", err)
	}
	return r.Dx(), r.Dy(), nil
}

// DisplayArea returns fraction of the screen size, falling back to the given
// width and height when the screen cannot be queried.
func DisplayArea(fraction float64, fallbackW, fallbackH int) (int, int) {
	w, h, err := ScreenSize()
	return displayArea(w, h, err, fraction, fallbackW, fallbackH)
}

func displayArea(screenW, screenH int, err error, fraction float64, fallbackW, fallbackH int) (int, int) {
	if err != nil || screenW <= 0 || screenH <= 0 || fraction <= 0 || fraction > 1 {
		return fallbackW, fallbackH
	}
	w, h := int(float64(screenW)*fraction), int(float64(screenH)*fraction)
	if w < 1 || h < 1 {
		return fallbackW, fallbackH
	}
	return w, h
}
