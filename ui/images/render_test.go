package images

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"testing"
)

var (
	red   = color.RGBA{R: 255, A: 255}
	white = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	blue  = color.RGBA{B: 255, A: 255}
)

func solid(w, h int, c color.Color) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for i := 0; i < len(img.Pix); i += 4 {
		r, g, b, a := c.RGBA()
		img.Pix[i], img.Pix[i+1], img.Pix[i+2], img.Pix[i+3] = uint8(r>>8), uint8(g>>8), uint8(b>>8), uint8(a>>8)
	}
	return img
}

func TestEncodePNG_Decodes(t *testing.T) {
	data := EncodePNG(solid(3, 2, red))
	img, err := png.Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if img.Bounds().Dx() != 3 || img.Bounds().Dy() != 2 {
		t.Fatalf("unexpected bounds %v", img.Bounds())
	}
	if EncodePNG(nil) != nil {
		t.Fatalf("nil image should encode to nil")
	}
}

func TestParseColor(t *testing.T) {
	cases := []struct {
		in   string
		want color.RGBA
		ok   bool
	}{
		{"red", red, true},
		{"  Blue ", blue, true},
		{"#fff", white, true},
		{"#0000ff", blue, true},
		{"#12", color.RGBA{}, false},
		{"#zzzzzz", color.RGBA{}, false},
		{"not-a-color", color.RGBA{}, false},
	}
	for _, tc := range cases {
		got, err := ParseColor(tc.in)
		if (err == nil) != tc.ok {
			t.Fatalf("ParseColor(%q) err=%v, want ok=%v", tc.in, err, tc.ok)
		}
		if tc.ok && got != tc.want {
			t.Fatalf("ParseColor(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}
}

func TestCompose_PlacesPreviewAtOffset(t *testing.T) {
	out := Compose(solid(4, 2, red), 10, 6, image.Pt(3, 2), white)
	if out.Bounds() != image.Rect(0, 0, 10, 6) {
		t.Fatalf("unexpected canvas %v", out.Bounds())
	}
	if out.RGBAAt(3, 2) != red || out.RGBAAt(6, 3) != red {
		t.Fatalf("preview not drawn at offset")
	}
	if out.RGBAAt(2, 2) != white || out.RGBAAt(7, 2) != white || out.RGBAAt(3, 4) != white {
		t.Fatalf("background not preserved around preview")
	}
}

func TestWithOutline_DrawsBorderOnCopy(t *testing.T) {
	base := solid(20, 20, white)
	out := WithOutline(base, image.Rect(15, 15, 5, 5), red, 2)
	if base.RGBAAt(5, 5) != white {
		t.Fatalf("base must not be modified")
	}
	for _, p := range []image.Point{{5, 5}, {6, 6}, {14, 14}, {10, 5}, {5, 10}, {14, 10}} {
		if out.RGBAAt(p.X, p.Y) != red {
			t.Fatalf("expected outline at %v", p)
		}
	}
	if out.RGBAAt(10, 10) != white || out.RGBAAt(4, 4) != white || out.RGBAAt(15, 15) != white {
		t.Fatalf("outline leaked outside the border")
	}
}

func TestDrawOutline_ClipsAndMarksDegenerate(t *testing.T) {
	img := solid(10, 10, white)
	DrawOutline(img, image.Rect(-5, -5, 50, 50), red, 1)
	if img.RGBAAt(0, 5) != white {
		t.Fatalf("off-canvas edges must be clipped, not drawn at the border")
	}
	img = solid(10, 10, white)
	DrawOutline(img, image.Rect(4, 4, 4, 4), red, 2)
	if img.RGBAAt(4, 4) != red || img.RGBAAt(5, 5) != red {
		t.Fatalf("degenerate selection should be marked")
	}
}
