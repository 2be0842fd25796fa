package crop

// MapToSource converts a display-space selection into source-image crop bounds.
//
// The selection is normalized, shifted by the display offset, clamped to the scaled
// image and scaled up to source pixels (truncating). A selection that misses the image
// yields degenerate bounds, not an error.
func MapToSource(sel *SelectionRect, fit *DisplayFit, sourceWidth, sourceHeight int) (CropBounds, error) {
	if fit == nil || sourceWidth <= 0 || sourceHeight <= 0 {
		return CropBounds{}, ErrNoActiveImage
	}
	if sel == nil {
		return CropBounds{}, ErrNoActiveSelection
	}
	if fit.ScaledWidth <= 0 || fit.ScaledHeight <= 0 {
		return CropBounds{}, ErrNoActiveImage
	}
	r := sel.Canon()

	x0 := clamp(r.Min.X-fit.OffsetX, 0, fit.ScaledWidth)
	y0 := clamp(r.Min.Y-fit.OffsetY, 0, fit.ScaledHeight)
	x1 := clamp(r.Max.X-fit.OffsetX, 0, fit.ScaledWidth)
	y1 := clamp(r.Max.Y-fit.OffsetY, 0, fit.ScaledHeight)

	return CropBounds{
		Left:   toSource(x0, sourceWidth, fit.ScaledWidth),
		Top:    toSource(y0, sourceHeight, fit.ScaledHeight),
		Right:  toSource(x1, sourceWidth, fit.ScaledWidth),
		Bottom: toSource(y1, sourceHeight, fit.ScaledHeight),
	}, nil
}

// toSource scales v from [0,scaled] to [0,source]. Multiplying before dividing keeps
// v == scaled mapping to exactly source.
func toSource(v, source, scaled int) int {
	return int(int64(v) * int64(source) / int64(scaled))
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
