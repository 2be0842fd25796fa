package view

import (
	"image"
	"image/color"

	"github.com/soocke/imagecrop-go/ui/images"

	//lint:ignore ST1001 Dot import is intentional for concise Tk widget DSL builders.
	. "modernc.org/tk9.0"
)

// ImageCanvas shows the display-area bitmap and reports left-button presses and drags
// in display coordinates.
type ImageCanvas interface {
	ShowImage(img image.Image)
	OnPointer(press, drag func(x, y int))
}

type imageCanvas struct {
	label     *LabelWidget
	prevPhoto *Img // last Tk photo, deleted before it is replaced
	press     func(x, y int)
	drag      func(x, y int)
}

// NewImageCanvas creates a w x h canvas at the given grid row, filled with bg.
// The label has no border or padding so event coordinates equal bitmap coordinates.
func NewImageCanvas(row, w, h int, bg color.Color) ImageCanvas {
	placeholder := images.Compose(nil, w, h, image.Point{}, bg)
	photo := NewPhoto(Data(images.EncodePNG(placeholder)))
	lbl := Label(Image(photo), Borderwidth(0), Highlightthickness(0), Padx(0), Pady(0), Anchor("nw"), Cursor("crosshair"))
	Grid(lbl, Row(row), Column(0), Columnspan(4), Sticky("nw"), Padx("0.4m"), Pady("0.4m"))
	v := &imageCanvas{label: lbl, prevPhoto: photo}
	Bind(lbl, "<ButtonPress-1>", Command(func(e *Event) {
		if v.press != nil {
			v.press(e.X, e.Y)
		}
	}))
	Bind(lbl, "<B1-Motion>", Command(func(e *Event) {
		if v.drag != nil {
			v.drag(e.X, e.Y)
		}
	}))
	return v
}

func (v *imageCanvas) OnPointer(press, drag func(x, y int)) {
	v.press, v.drag = press, drag
}

func (v *imageCanvas) ShowImage(img image.Image) {
	if v == nil || v.label == nil || img == nil {
		return
	}
	pngBytes := images.EncodePNG(img)
	// Replace previous photo to avoid retaining obsolete pixel buffers.
	if v.prevPhoto != nil {
		v.prevPhoto.Delete()
	}
	photo := NewPhoto(Data(pngBytes))
	v.prevPhoto = photo
	v.label.Configure(Image(photo))
}
