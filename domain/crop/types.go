package crop

import (
	"errors"
	"fmt"
	"image"
)

var (
	// ErrInvalidImageDimensions is returned by Fit when a source dimension is not positive.
	ErrInvalidImageDimensions = errors.New("invalid image dimensions")
	// ErrInvalidDisplayDimensions is returned by Fit when a display dimension is not positive.
	ErrInvalidDisplayDimensions = errors.New("invalid display dimensions")
	// ErrNoActiveImage is returned when a crop is requested before an image is loaded.
	ErrNoActiveImage = errors.New("no active image")
	// ErrNoActiveSelection is returned when a crop is requested without a selection.
	ErrNoActiveSelection = errors.New("no active selection")
)

// DisplayFit describes how a source image is scaled and centered inside the display area.
// It is derived data; recompute it whenever the image or the display area changes.
type DisplayFit struct {
	ScaledWidth  int
	ScaledHeight int
	OffsetX      int
	OffsetY      int
	ScaleX       float64 // source width / scaled width
	ScaleY       float64 // source height / scaled height

	sourceWidth  int
	sourceHeight int
}

// Offset returns the top-left corner of the scaled image in display coordinates.
func (f DisplayFit) Offset() image.Point { return image.Pt(f.OffsetX, f.OffsetY) }

// ScaledBounds returns the rectangle covered by the scaled image in display coordinates.
func (f DisplayFit) ScaledBounds() image.Rectangle {
	return image.Rect(f.OffsetX, f.OffsetY, f.OffsetX+f.ScaledWidth, f.OffsetY+f.ScaledHeight)
}

// SourceSize returns the source dimensions the fit was computed for.
func (f DisplayFit) SourceSize() (int, int) { return f.sourceWidth, f.sourceHeight }

// SelectionRect is a user-drawn rectangle in display coordinates.
// (X0,Y0) is the anchor set on press; (X1,Y1) follows the pointer while dragging.
type SelectionRect struct {
	X0, Y0 int
	X1, Y1 int
}

// Canon returns the rectangle with min/max corners regardless of drag direction.
func (s SelectionRect) Canon() image.Rectangle {
	return image.Rect(s.X0, s.Y0, s.X1, s.Y1) // image.Rect swaps reversed corners
}

// CropBounds is a rectangle in source-image pixel coordinates.
type CropBounds struct {
	Left, Top, Right, Bottom int
}

// Rect converts the bounds to an image.Rectangle.
func (b CropBounds) Rect() image.Rectangle {
	return image.Rectangle{Min: image.Pt(b.Left, b.Top), Max: image.Pt(b.Right, b.Bottom)}
}

// Width of the bounds in pixels.
func (b CropBounds) Width() int { return b.Right - b.Left }

// Height of the bounds in pixels.
func (b CropBounds) Height() int { return b.Bottom - b.Top }

// Empty reports whether the bounds cover no pixels.
func (b CropBounds) Empty() bool { return b.Width() <= 0 || b.Height() <= 0 }

func (b CropBounds) String() string {
	return fmt.Sprintf("(%d,%d)-(%d,%d)", b.Left, b.Top, b.Right, b.Bottom)
}
