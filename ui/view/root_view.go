package view

import (
	"image"
	"image/color"
	"log/slog"

	"github.com/soocke/imagecrop-go/ui/theme"

	//lint:ignore ST1001 Dot import is intentional for concise Tk widget DSL builders.
	. "modernc.org/tk9.0"
)

// Actions are the button and pointer handlers the root view forwards to.
type Actions struct {
	Load    func()
	Capture func()
	Crop    func()
	Exit    func()
	Press   func(x, y int)
	Drag    func(x, y int)
}

// RootView composes the top-level layout: the image canvas, the button row and a
// status line. It satisfies the presenter's Surface contract.
type RootView struct {
	logger *slog.Logger

	Canvas      ImageCanvas
	StatusLabel *TLabelWidget
}

func NewRootView(logger *slog.Logger) *RootView {
	return &RootView{logger: logger}
}

// Build constructs the layout for a displayW x displayH canvas.
func (rv *RootView) Build(displayW, displayH int, bg color.Color, actions Actions) {
	if rv == nil {
		return
	}
	GridRowConfigure(App, 0, Weight(1))
	GridColumnConfigure(App, 0, Weight(1))

	// Row 0: canvas
	rv.Canvas = NewImageCanvas(0, displayW, displayH, bg)
	rv.Canvas.OnPointer(actions.Press, actions.Drag)

	// Row 1: buttons
	btnFrame := Frame()
	Grid(btnFrame, Row(1), Column(0), Columnspan(4), Pady("2m"))
	load := TButton(Txt("Load Image"), Width(20), Style(theme.StylePrimaryButton), Command(actions.Load))
	Grid(load, In(btnFrame), Row(0), Column(0), Sticky("we"), Padx("1m"))
	capture := TButton(Txt("Capture Screen"), Width(20), Command(actions.Capture))
	Grid(capture, In(btnFrame), Row(0), Column(1), Sticky("we"), Padx("1m"))
	crop := TButton(Txt("Crop and Save Image"), Width(20), Style(theme.StylePrimaryButton), Command(actions.Crop))
	Grid(crop, In(btnFrame), Row(0), Column(2), Sticky("we"), Padx("1m"))
	exit := TButton(Txt("Exit"), Style(theme.StyleDangerButton), Command(actions.Exit))
	Grid(exit, In(btnFrame), Row(0), Column(3), Sticky("we"), Padx("1m"))

	// Row 2: status
	rv.StatusLabel = TLabel(Txt("Load an image or capture the screen, then drag to select."), Style(theme.StyleStatusLabel), Anchor("w"))
	Grid(rv.StatusLabel, Row(2), Column(0), Columnspan(4), Sticky("we"), Padx("0.4m"), Pady("0.3m"))
}

// ShowImage proxies to the canvas.
func (rv *RootView) ShowImage(img image.Image) {
	if rv != nil && rv.Canvas != nil {
		rv.Canvas.ShowImage(img)
	}
}

// SetStatus updates the status line.
func (rv *RootView) SetStatus(text string) {
	if rv != nil && rv.StatusLabel != nil {
		rv.StatusLabel.Configure(Txt(text))
	}
}
