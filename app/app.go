package app

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	tk "modernc.org/tk9.0"

	"github.com/soocke/pixel-crop-go/assets"
	"github.com/soocke/pixel-crop-go/config"
	"github.com/soocke/pixel-crop-go/debug"
	"github.com/soocke/pixel-crop-go/domain/imagesource"
	"github.com/soocke/pixel-crop-go/ui/presenter"
)

const (
	tick          = 50 * time.Millisecond
	debugInterval = 2 * time.Second
)

type App struct {
	title     string
	container *AppContainer
	loop      *presenter.Loop
	afterID   string
	initial   imagesource.Source
	logger    *slog.Logger
	stopDebug context.CancelFunc
}

// NewApp builds the container. imagePath selects the first image; the
// embedded sample is used when it is empty.
func NewApp(title string, cfg *config.Config, cfgPath, imagePath string, logger *slog.Logger) *App {
	a := &App{title: title, logger: logger}
	a.container = BuildContainer(cfg, cfgPath, logger)
	a.initial = assets.Sample()
	if imagePath != "" {
		a.initial = imagesource.File{Path: imagePath}
	}
	return a
}

func (a *App) Start() {
	c := a.container
	tk.App.WmTitle(a.title)
	tk.WmProtocol(tk.App, "WM_DELETE_WINDOW", a.exitHandler)
	tk.WmGeometry(tk.App, fmt.Sprintf("%dx%d+100+100", c.Config.WindowWidth, c.Config.WindowHeight))

	c.RootView.Build(c.Handlers(a.exitHandler))

	if c.Config.Debug {
		var ctx context.Context
		ctx, a.stopDebug = context.WithCancel(context.Background())
		debug.Start(ctx, debugInterval, a.logger, a.loaderProbe)
	}

	a.loop = presenter.NewLoop(c.ImagePresenter, c.StatePresenter, c.StatusPresenter, a.scheduleUpdate)
	c.ImagePresenter.Open(a.initial)
	a.scheduleUpdate()

	tk.App.Wait()
}

func (a *App) exitHandler() {
	if a.afterID != "" {
		tk.TclAfterCancel(a.afterID)
	}
	if a.stopDebug != nil {
		a.stopDebug()
	}
	a.container.Loader.Close()
	if a.logger != nil {
		st := a.container.Loader.Stats()
		rendered, skipped := a.container.Controller.Stats()
		a.logger.Info("shutdown", "loads", st.Loads, "load_failures", st.Failures, "frames", rendered, "frames_skipped", skipped)
	}
	tk.Destroy(tk.App)
}

// scheduleUpdate queues the next loop tick on Tk's event loop thread.
func (a *App) scheduleUpdate() {
	a.afterID = tk.TclAfter(tick, func() { a.loop.Tick() })
}

// loaderProbe reports image loader counters; they are atomics and safe to
// read off the UI thread.
func (a *App) loaderProbe() []slog.Attr {
	st := a.container.Loader.Stats()
	return []slog.Attr{
		slog.Uint64("load_requests", st.Requests),
		slog.Uint64("loads", st.Loads),
		slog.Uint64("load_failures", st.Failures),
		slog.Uint64("loads_stale", st.Stale),
		slog.Duration("load_avg", st.AvgLoad),
	}
}
