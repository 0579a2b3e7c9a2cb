package app

import (
	"image"
	"log/slog"
	"time"

	"github.com/soocke/pixel-crop-go/config"
	"github.com/soocke/pixel-crop-go/domain/imagesource"
	"github.com/soocke/pixel-crop-go/domain/interaction"
	"github.com/soocke/pixel-crop-go/storage"
	"github.com/soocke/pixel-crop-go/ui/model"
	"github.com/soocke/pixel-crop-go/ui/paint"
	"github.com/soocke/pixel-crop-go/ui/presenter"
	"github.com/soocke/pixel-crop-go/ui/view"
)

const loadTimeout = 30 * time.Second

// AppContainer assembles models, services, presenters and the root view.
type AppContainer struct {
	Config     *config.Config
	ConfigPath string
	Logger     *slog.Logger

	Images     *model.ImageModel
	Status     *model.StatusModel
	Painter    *paint.Painter
	Controller *interaction.Controller
	Loader     *imagesource.Loader
	Storage    *storage.Storage
	RootView   *view.RootView
	UI         view.UI

	// Presenters
	CropPresenter     *presenter.CropPresenter
	ImagePresenter    *presenter.ImagePresenter
	ExportPresenter   *presenter.ExportPresenter
	StatePresenter    *presenter.StatePresenter
	StatusPresenter   *presenter.StatusPresenter
	SettingsPresenter *presenter.SettingsPresenter
}

// BuildContainer constructs all components. No widgets are created; the
// root view is built by the app once Tk is running.
func BuildContainer(cfg *config.Config, cfgPath string, logger *slog.Logger) *AppContainer {
	c := &AppContainer{Config: cfg, ConfigPath: cfgPath, Logger: logger}
	c.Images = model.NewImageModel()
	c.Status = model.NewStatusModel()
	c.Painter = paint.NewPainter(logger)
	c.Loader = imagesource.NewLoader(loadTimeout, logger)
	c.Storage = storage.NewStorage(cfg.ExportDir, cfg.ExportPrefix, cfg.Format(), cfg.ExportQuality)

	// View
	c.RootView = view.NewRootView(cfg, cfgPath, logger)
	c.UI = c.RootView

	// The controller renders through the crop presenter into the canvas.
	c.CropPresenter = presenter.NewCropPresenter(c.Painter, c.UI, logger)
	c.Controller = interaction.NewController(cfg.ControllerOptions(), c.CropPresenter, logger)

	c.StatePresenter = presenter.NewStatePresenter(c.Controller, c.UI)
	c.Controller.AddListener(c.StatePresenter.OnState)
	c.StatusPresenter = presenter.NewStatusPresenter(c.Status, c.UI)
	c.ImagePresenter = presenter.NewImagePresenter(c.Loader, c.Controller, c.Painter, c.UI, c.Images, c.Status, cfg, logger)
	c.ExportPresenter = presenter.NewExportPresenter(c.Images, c.Controller, c.Storage, c.UI, c.Status, c.persistSelection, logger)
	c.SettingsPresenter = presenter.NewSettingsPresenter(c.Controller, c.Storage, c.Status, logger)
	return c
}

// persistSelection stores the last exported rectangle in the config file.
func (c *AppContainer) persistSelection(r image.Rectangle) {
	c.Config.SetSelection(r)
	if err := c.Config.Save(c.ConfigPath); err != nil && c.Logger != nil {
		c.Logger.Warn("persist selection failed", "error", err)
	}
}

// Handlers returns the view callbacks. exit is invoked by the Exit button.
func (c *AppContainer) Handlers(exit func()) view.Handlers {
	return view.Handlers{
		Open:       func(path string) { c.ImagePresenter.Open(imagesource.File{Path: path}) },
		Screenshot: func() { c.ImagePresenter.Open(imagesource.Screen{}) },
		Crop:       c.ExportPresenter.Crop,
		Clear:      c.ImagePresenter.Clear,
		Exit:       exit,
		Pointer:    c.Controller,
		ConfigSet:  c.SettingsPresenter.Apply,
	}
}
