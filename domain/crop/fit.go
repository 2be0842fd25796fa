package crop

import "fmt"

// Fit scales a sourceWidth x sourceHeight image into the display area preserving the
// aspect ratio, and centers it. The dimension that is relatively larger is clamped to
// the display area and the other one shrinks proportionally (rounded down).
func Fit(sourceWidth, sourceHeight, displayWidth, displayHeight int) (DisplayFit, error) {
	if sourceWidth <= 0 || sourceHeight <= 0 {
		return DisplayFit{}, fmt.Errorf("%w: %dx%d", ErrInvalidImageDimensions, sourceWidth, sourceHeight)
	}
	if displayWidth <= 0 || displayHeight <= 0 {
		return DisplayFit{}, fmt.Errorf("%w: %dx%d", ErrInvalidDisplayDimensions, displayWidth, displayHeight)
	}
	imgRatio := float64(sourceWidth) / float64(sourceHeight)
	displayRatio := float64(displayWidth) / float64(displayHeight)

	var w, h int
	if imgRatio > displayRatio {
		w = displayWidth
		h = int(float64(displayWidth) / imgRatio)
	} else {
		h = displayHeight
		w = int(float64(displayHeight) * imgRatio)
	}
	// very thin images would otherwise collapse to zero
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}
	return DisplayFit{
		ScaledWidth:  w,
		ScaledHeight: h,
		OffsetX:      (displayWidth - w) / 2,
		OffsetY:      (displayHeight - h) / 2,
		ScaleX:       float64(sourceWidth) / float64(w),
		ScaleY:       float64(sourceHeight) / float64(h),
		sourceWidth:  sourceWidth,
		sourceHeight: sourceHeight,
	}, nil
}
