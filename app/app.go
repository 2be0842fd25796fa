package app

import (
	"fmt"
	"log/slog"

	//lint:ignore ST1001 Dot import is intentional for concise Tk widget DSL builders.
	. "modernc.org/tk9.0"

	"github.com/soocke/imagecrop-go/config"
	"github.com/soocke/imagecrop-go/domain/capture"
	"github.com/soocke/imagecrop-go/ui/theme"
	"github.com/soocke/imagecrop-go/ui/view"
)

type app struct {
	title     string
	config    *config.Config
	logger    *slog.Logger
	displayW  int
	displayH  int
	container *AppContainer
}

// NewApp sizes the display area to the configured share of the screen.
func NewApp(title string, cfg *config.Config, logger *slog.Logger) *app {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	w, h := capture.DisplayArea(cfg.ScreenFraction, cfg.DisplayWidth, cfg.DisplayHeight)
	a := &app{title: title, config: cfg, logger: logger, displayW: w, displayH: h}
	a.container = BuildContainer(cfg, logger, w, h)
	return a
}

func (a *app) Start() {
	App.WmTitle(a.title)
	WmProtocol(App, "WM_DELETE_WINDOW", a.exitHandler)
	a.centerWindow()
	theme.SetDark(a.config.Dark)

	c := a.container
	// the presenter only touches the view after user input, so it can be wired first
	p := c.WirePresenter()
	c.RootView.Build(a.displayW, a.displayH, c.Style.Background, view.Actions{
		Load:    p.LoadImage,
		Capture: p.CaptureScreen,
		Crop:    p.CropAndSave,
		Exit:    a.exitHandler,
		Press:   p.Press,
		Drag:    p.Drag,
	})

	a.logger.Info("ready", "display_width", a.displayW, "display_height", a.displayH)
	App.Wait()
}

// centerWindow places the window in the middle of the screen when its size is known.
func (a *app) centerWindow() {
	sw, sh, err := capture.ScreenSize()
	if err != nil {
		a.logger.Warn("screen size unavailable", "error", err)
		return
	}
	x, y := (sw-a.displayW)/2, (sh-a.displayH)/2
	if x < 0 {
		x = 0
	}
	if y < 0 {
		y = 0
	}
	WmGeometry(App, fmt.Sprintf("+%d+%d", x, y))
}

func (a *app) exitHandler() {
	Destroy(App)
}
