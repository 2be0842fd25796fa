package images

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"strings"

	"golang.org/x/image/colornames"
	"golang.org/x/image/draw"
)

// previewEncoder trades size for speed; previews are re-encoded on every drag event.
var previewEncoder = png.Encoder{CompressionLevel: png.BestSpeed}

// EncodePNG encodes an image to PNG bytes. Errors are ignored and may return an empty slice.
func EncodePNG(img image.Image) []byte {
	if img == nil {
		return nil
	}
	var buf bytes.Buffer
	_ = previewEncoder.Encode(&buf, img)
	return buf.Bytes()
}

// ParseColor accepts SVG color names ("red") and #rgb / #rrggbb hex values.
func ParseColor(s string) (color.RGBA, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if c, ok := colornames.Map[s]; ok {
		return c, nil
	}
	if !strings.HasPrefix(s, "#") {
		return color.RGBA{}, fmt.Errorf("unknown color %q", s)
	}
	hex := s[1:]
	if len(hex) == 3 {
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
	}
	var r, g, b uint8
	if len(hex) != 6 {
		return color.RGBA{}, fmt.Errorf("bad hex color %q", s)
	}
	if _, err := fmt.Sscanf(hex, "%02x%02x%02x", &r, &g, &b); err != nil {
		return color.RGBA{}, fmt.Errorf("bad hex color %q: %w", s, err)
	}
	return color.RGBA{R: r, G: g, B: b, A: 0xff}, nil
}

// Compose draws preview at offset on a w x h canvas filled with bg.
func Compose(preview image.Image, w, h int, offset image.Point, bg color.Color) *image.RGBA {
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}
	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.Draw(dst, dst.Bounds(), image.NewUniform(bg), image.Point{}, draw.Src)
	if preview != nil {
		pb := preview.Bounds()
		target := image.Rectangle{Min: offset, Max: offset.Add(pb.Size())}
		draw.Draw(dst, target, preview, pb.Min, draw.Over)
	}
	return dst
}

// WithOutline returns a copy of base with a width-pixel outline of r drawn on it.
// The outline grows inwards from r and is clipped to the canvas.
func WithOutline(base *image.RGBA, r image.Rectangle, c color.Color, width int) *image.RGBA {
	if base == nil {
		return nil
	}
	out := image.NewRGBA(base.Bounds())
	copy(out.Pix, base.Pix)
	DrawOutline(out, r, c, width)
	return out
}

// DrawOutline strokes the border of r on dst.
func DrawOutline(dst draw.Image, r image.Rectangle, c color.Color, width int) {
	if dst == nil {
		return
	}
	r = r.Canon()
	if width < 1 {
		width = 1
	}
	src := image.NewUniform(c)
	clip := dst.Bounds()
	edges := []image.Rectangle{
		image.Rect(r.Min.X, r.Min.Y, r.Max.X, r.Min.Y+width), // top
		image.Rect(r.Min.X, r.Max.Y-width, r.Max.X, r.Max.Y), // bottom
		image.Rect(r.Min.X, r.Min.Y, r.Min.X+width, r.Max.Y), // left
		image.Rect(r.Max.X-width, r.Min.Y, r.Max.X, r.Max.Y), // right
	}
	if r.Dx() == 0 || r.Dy() == 0 {
		// a press without drag still shows where the anchor is
		edges = []image.Rectangle{image.Rect(r.Min.X, r.Min.Y, r.Max.X+width, r.Max.Y+width)}
	}
	for _, e := range edges {
		e = e.Intersect(clip)
		if e.Empty() {
			continue
		}
		draw.Draw(dst, e, src, image.Point{}, draw.Src)
	}
}
