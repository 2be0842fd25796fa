package presenter

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"log/slog"

	"github.com/soocke/imagecrop-go/domain/capture"
	"github.com/soocke/imagecrop-go/domain/crop"
	"github.com/soocke/imagecrop-go/domain/imageio"
	"github.com/soocke/imagecrop-go/ui/images"
	"github.com/soocke/imagecrop-go/ui/model"
)

// User-facing messages.
const (
	MsgNoImageSelected = "No image selected!"
	MsgLoadFirst       = "Please load an image first!"
	MsgSelectFirst     = "Please select an area to crop first!"
	MsgEmptySelection  = "The selected area is empty!"
)

// Dialogs are the modal interactions the presenter needs. Each call blocks until the
// user answers.
type Dialogs interface {
	OpenImage() (path string, ok bool)
	SaveImage(suggested string) (path string, ok bool)
	Warn(msg string)
	Error(msg string)
	Info(msg string)
}

// Surface displays the display-area bitmap and a status line.
type Surface interface {
	ShowImage(img image.Image)
	SetStatus(text string)
}

// Codec decodes, previews, crops and encodes images.
type Codec interface {
	Open(path string) (image.Image, error)
	Preview(img image.Image, fit crop.DisplayFit) image.Image
	Crop(img image.Image, bounds crop.CropBounds) image.Image
	Save(img image.Image, path string) error
}

// SaveNotifier is told about every successful export.
type SaveNotifier interface{ Saved(path string) }

// Style controls how the display area is painted.
type Style struct {
	Background   color.Color
	Outline      color.Color
	OutlineWidth int
}

// DefaultStyle mirrors the default configuration colors.
func DefaultStyle() Style {
	return Style{
		Background:   color.RGBA{R: 0xf7, G: 0xf9, B: 0xfb, A: 0xff},
		Outline:      color.RGBA{R: 0xff, A: 0xff},
		OutlineWidth: 2,
	}
}

// CropPresenter owns the load / select / crop / save workflow. It runs on the UI
// thread only.
type CropPresenter struct {
	session  *model.SessionModel
	dialogs  Dialogs
	surface  Surface
	codec    Codec
	grabber  capture.Grabber
	notifier SaveNotifier
	style    Style
	logger   *slog.Logger

	base *image.RGBA // display-area bitmap without the selection outline

	// OnLoaded is called after a new image is shown. Optional.
	OnLoaded func(name string, width, height int)
}

// NewCropPresenter wires the presenter. grabber and notifier may be nil.
func NewCropPresenter(session *model.SessionModel, dialogs Dialogs, surface Surface, codec Codec, grabber capture.Grabber, notifier SaveNotifier, style Style, logger *slog.Logger) *CropPresenter {
	if style.OutlineWidth < 1 {
		style.OutlineWidth = 1
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	p := &CropPresenter{session: session, dialogs: dialogs, surface: surface, codec: codec, grabber: grabber, notifier: notifier, style: style, logger: logger}
	session.OnSelectionChange(func(prev, next crop.SelectionState) {
		p.logger.Debug("selection state transition", "from", prev.String(), "to", next.String())
	})
	return p
}

// LoadImage asks for a file and makes it the active image.
func (p *CropPresenter) LoadImage() {
	path, ok := p.dialogs.OpenImage()
	if !ok || path == "" {
		p.dialogs.Warn(MsgNoImageSelected)
		return
	}
	img, err := p.codec.Open(path)
	if err != nil {
		p.logger.Error("open image failed", "path", path, "error", err)
		p.dialogs.Error("Failed to open image: " + reason(err))
		return
	}
	p.show(img, path)
}

// CaptureScreen grabs the screen and makes the capture the active image.
func (p *CropPresenter) CaptureScreen() {
	if p.grabber == nil {
		p.dialogs.Error("Screen capture is not available")
		return
	}
	img, err := p.grabber.Grab()
	if err != nil {
		p.logger.Error("screen capture failed", "error", err)
		p.dialogs.Error("Failed to capture screen: " + reason(err))
		return
	}
	p.show(img, capture.SourceName)
}

func (p *CropPresenter) show(img image.Image, name string) {
	if err := p.session.Load(img, name); err != nil {
		p.logger.Error("image rejected", "name", name, "error", err)
		p.dialogs.Error("Failed to open image: " + reason(err))
		return
	}
	p.render()
	b := img.Bounds()
	p.logger.Info("image loaded", "name", name, "width", b.Dx(), "height", b.Dy())
	p.surface.SetStatus(fmt.Sprintf("%s (%dx%d)", name, b.Dx(), b.Dy()))
	if p.OnLoaded != nil {
		p.OnLoaded(name, b.Dx(), b.Dy())
	}
}

// Resize changes the display area and repaints the active image.
func (p *CropPresenter) Resize(w, h int) {
	if dw, dh := p.session.DisplaySize(); dw == w && dh == h {
		return
	}
	if err := p.session.SetDisplaySize(w, h); err != nil {
		p.logger.Warn("display resize ignored", "width", w, "height", h, "error", err)
		return
	}
	if p.session.HasImage() {
		p.render()
	}
}

// Press starts a new selection at display coordinates (x, y).
func (p *CropPresenter) Press(x, y int) { p.pointer(crop.Press(x, y)) }

// Drag moves the live corner of the selection to (x, y).
func (p *CropPresenter) Drag(x, y int) { p.pointer(crop.Drag(x, y)) }

func (p *CropPresenter) pointer(ev crop.SelectionEvent) {
	if !p.session.HandlePointer(ev) || p.base == nil {
		return
	}
	sel, ok := p.session.Selection()
	if !ok {
		p.surface.ShowImage(p.base)
		return
	}
	p.surface.ShowImage(images.WithOutline(p.base, sel.Canon(), p.style.Outline, p.style.OutlineWidth))
}

// CropAndSave maps the selection to the source image, asks for a destination and
// writes the crop. Every failure leaves the session as it was.
func (p *CropPresenter) CropAndSave() {
	bounds, err := p.session.CropBounds()
	switch {
	case errors.Is(err, crop.ErrNoActiveImage):
		p.dialogs.Warn(MsgLoadFirst)
		return
	case errors.Is(err, crop.ErrNoActiveSelection):
		p.dialogs.Warn(MsgSelectFirst)
		return
	case err != nil:
		p.logger.Error("crop mapping failed", "error", err)
		p.dialogs.Error("Failed to crop image: " + reason(err))
		return
	}
	if bounds.Empty() {
		p.dialogs.Warn(MsgEmptySelection)
		return
	}
	src, name := p.session.Image()
	path, ok := p.dialogs.SaveImage(imageio.SuggestName(name))
	if !ok || path == "" {
		p.surface.SetStatus("Save cancelled")
		return
	}
	out := p.codec.Crop(src, bounds)
	if err := p.codec.Save(out, path); err != nil {
		p.logger.Error("save failed", "path", path, "bounds", bounds.String(), "error", err)
		p.dialogs.Error(fmt.Sprintf("Failed to save %s: %s", path, reason(err)))
		return
	}
	p.logger.Info("crop saved", "path", path, "bounds", bounds.String())
	p.surface.SetStatus(fmt.Sprintf("Saved %dx%d crop to %s", bounds.Width(), bounds.Height(), path))
	p.dialogs.Info("Image saved as " + path)
	if p.notifier != nil {
		p.notifier.Saved(path)
	}
}

func (p *CropPresenter) render() {
	src, _ := p.session.Image()
	fit, ok := p.session.Fit()
	if !ok {
		return
	}
	w, h := p.session.DisplaySize()
	p.base = images.Compose(p.codec.Preview(src, fit), w, h, fit.Offset(), p.style.Background)
	p.surface.ShowImage(p.base)
}

// reason strips the path wrapper from codec errors; the dialogs already name the file.
func reason(err error) string {
	var decErr *imageio.DecodeError
	if errors.As(err, &decErr) && decErr.Err != nil {
		return decErr.Err.Error()
	}
	var encErr *imageio.EncodeError
	if errors.As(err, &encErr) && encErr.Err != nil {
		return encErr.Err.Error()
	}
	return err.Error()
}
