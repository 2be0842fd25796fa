package app

import (
	"log/slog"

	"github.com/soocke/imagecrop-go/config"
	"github.com/soocke/imagecrop-go/debug"
	"github.com/soocke/imagecrop-go/domain/capture"
	"github.com/soocke/imagecrop-go/domain/imageio"
	"github.com/soocke/imagecrop-go/domain/notify"
	"github.com/soocke/imagecrop-go/ui/images"
	"github.com/soocke/imagecrop-go/ui/model"
	"github.com/soocke/imagecrop-go/ui/presenter"
	"github.com/soocke/imagecrop-go/ui/view"
)

// AppContainer assembles models, services, presenters and the root view.
type AppContainer struct {
	Config   *config.Config
	Logger   *slog.Logger
	Session  *model.SessionModel
	Codec    imageio.Codec
	Grabber  capture.Grabber
	Notifier *notify.Notifier
	Style    presenter.Style
	RootView *view.RootView
	Dialogs  *view.Dialogs

	CropPresenter *presenter.CropPresenter
}

// BuildContainer constructs all components for a displayW x displayH display area.
// No Tk widgets are created here; the presenter is wired by WirePresenter once the
// root view is built.
func BuildContainer(cfg *config.Config, logger *slog.Logger, displayW, displayH int) *AppContainer {
	c := &AppContainer{Config: cfg, Logger: logger}
	c.Session = model.NewSessionModel(displayW, displayH)
	c.Codec = imageio.Codec{AutoOrient: cfg.AutoOrient, JPEGQuality: cfg.JPEGQuality}
	c.Grabber = capture.Screen{}
	c.Notifier = notify.New(cfg.Notify, logger)
	c.Style = StyleFromConfig(cfg, logger)
	c.RootView = view.NewRootView(logger)
	c.Dialogs = view.NewDialogs(logger)
	return c
}

// WirePresenter creates the crop presenter over the built root view.
func (c *AppContainer) WirePresenter() *presenter.CropPresenter {
	c.CropPresenter = presenter.NewCropPresenter(c.Session, c.Dialogs, c.RootView, c.Codec, c.Grabber, c.Notifier, c.Style, c.Logger)
	if c.Config.Debug {
		c.CropPresenter.OnLoaded = func(name string, w, h int) {
			_ = debug.LogMemStats(c.Logger, "memstats after load")
		}
	}
	return c.CropPresenter
}

// StyleFromConfig resolves configured colors, falling back to defaults on bad values.
func StyleFromConfig(cfg *config.Config, logger *slog.Logger) presenter.Style {
	style := presenter.DefaultStyle()
	if cfg == nil {
		return style
	}
	if c, err := images.ParseColor(cfg.OutlineColor); err == nil {
		style.Outline = c
	} else if logger != nil {
		logger.Warn("invalid outline color", "value", cfg.OutlineColor, "error", err)
	}
	if c, err := images.ParseColor(cfg.BackgroundColor); err == nil {
		style.Background = c
	} else if logger != nil {
		logger.Warn("invalid background color", "value", cfg.BackgroundColor, "error", err)
	}
	if cfg.OutlineWidth > 0 {
		style.OutlineWidth = cfg.OutlineWidth
	}
	return style
}
