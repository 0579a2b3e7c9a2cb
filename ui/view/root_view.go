package view

import (
	"image"
	"log/slog"

	"github.com/soocke/pixel-crop-go/config"
	"github.com/soocke/pixel-crop-go/domain/interaction"
	"github.com/soocke/pixel-crop-go/ui/theme"

	//lint:ignore ST1001 Dot import is intentional for concise Tk widget DSL builders.
	. "modernc.org/tk9.0"
)

// sidePanelW is the width reserved for the preview and config column when
// sizing the canvas.
const (
	sidePanelW = 360
	chromeH    = 120
)

// Handlers are invoked on user actions.
type Handlers struct {
	Open       func(path string)
	Screenshot func()
	Crop       func()
	Clear      func()
	Exit       func()
	Pointer    PointerHandler
	ConfigSet  func(*config.Config)
}

// RootView composes the top-level application layout and wires UI callbacks.
// It owns high-level subviews but exposes minimal exported fields for presenters.
type RootView struct {
	cfg     *config.Config
	cfgPath string
	logger  *slog.Logger

	// Subviews
	Canvas      *CropCanvas
	Preview     *ExportPreview
	ConfigPanel ConfigPanel

	// Widgets
	StateLabel  *TLabelWidget
	StatusLabel *LabelWidget
}

// UI abstracts the subset of view operations needed by presenters, enabling decoupling
// from the concrete RootView implementation.
type UI interface {
	SetStateLabel(text string)
	SetStatus(text string, isError bool)
	ShowExport(img image.Image)
	ResizeCanvas(w, h int)
	ClearCanvas()
	Surface() interaction.Surface
	CanvasReady() bool
	ShowCanvas(img image.Image)
}

var _ UI = (*RootView)(nil)

func NewRootView(cfg *config.Config, cfgPath string, logger *slog.Logger) *RootView {
	return &RootView{cfg: cfg, cfgPath: cfgPath, logger: logger}
}

// Build constructs the layout.
func (rv *RootView) Build(h Handlers) {
	if rv == nil {
		return
	}
	theme.InitStyles()

	// Row 0: toolbar and state label
	bar := Frame()
	Grid(bar, Row(0), Column(0), Columnspan(2), Sticky("we"), Padx("0.3m"), Pady("0.3m"))
	col := 0
	addButton := func(text, style string, fn func()) {
		if fn == nil {
			return
		}
		b := TButton(Txt(text), Style(style), Command(fn))
		Grid(b, In(bar), Row(0), Column(col), Sticky("w"), Padx("0.2m"), Pady("0.2m"))
		col++
	}
	addButton("Open...", theme.StylePrimaryButton, func() { rv.openFile(h.Open) })
	addButton("Screenshot", theme.StylePrimaryButton, h.Screenshot)
	addButton("Crop", theme.StyleAccentButton, h.Crop)
	addButton("Clear", theme.StyleDangerButton, h.Clear)
	addButton("Dark Mode", theme.StylePrimaryButton, func() { theme.ToggleDark() })
	addButton("Exit", theme.StyleDangerButton, h.Exit)
	rv.StateLabel = TLabel(Txt("State: <no image>"), Style(theme.StyleStateLabel))
	Grid(rv.StateLabel, In(bar), Row(0), Column(col), Sticky("we"), Padx("0.6m"), Pady("0.2m"))

	// Row 1: canvas on the left, preview and config on the right
	maxW, maxH := 640, 480
	if rv.cfg != nil {
		maxW = max(160, rv.cfg.WindowWidth-sidePanelW)
		maxH = max(120, rv.cfg.WindowHeight-chromeH)
	}
	rv.Canvas = NewCropCanvas(1, 0, maxW, maxH)
	rv.Canvas.BindPointer(h.Pointer)

	side := Frame()
	Grid(side, Row(1), Column(1), Sticky("nw"), Padx("0.3m"), Pady("0.3m"))
	rv.Preview = NewExportPreview(side, 0)
	rv.ConfigPanel = NewConfigPanel(rv.cfg, rv.cfgPath, rv.logger, h.ConfigSet)
	rv.ConfigPanel.Build(side, 2)

	// Row 2: status line
	rv.StatusLabel = Label(Txt(""), Anchor("w"))
	Grid(rv.StatusLabel, Row(2), Column(0), Columnspan(2), Sticky("we"), Padx("0.4m"), Pady("0.3m"))

	if h.Crop != nil {
		Bind(App, "<Return>", Command(h.Crop))
	}
	if h.Open != nil {
		Bind(App, "<Control-o>", Command(func() { rv.openFile(h.Open) }))
	}
}

// openFile asks for an image path and forwards it.
func (rv *RootView) openFile(open func(string)) {
	if open == nil {
		return
	}
	files := GetOpenFile(Title("Open image"))
	if len(files) == 0 || files[0] == "" {
		return
	}
	open(files[0])
}

// SetStateLabel updates the state label text.
func (rv *RootView) SetStateLabel(text string) {
	if rv != nil && rv.StateLabel != nil {
		rv.StateLabel.Configure(Txt(text))
	}
}

// SetStatus updates the status line; errors are shown in the danger color.
func (rv *RootView) SetStatus(text string, isError bool) {
	if rv == nil || rv.StatusLabel == nil {
		return
	}
	p := theme.CurrentPalette()
	fg := p.Text
	if isError {
		fg = p.Danger
	}
	rv.StatusLabel.Configure(Txt(text), Foreground(fg))
}

// SetConfigEditable toggles config panel editability.
func (rv *RootView) SetConfigEditable(enabled bool) {
	if rv != nil && rv.ConfigPanel != nil {
		rv.ConfigPanel.SetEditable(enabled)
	}
}

// ShowExport proxies to the export preview.
func (rv *RootView) ShowExport(img image.Image) {
	if rv != nil && rv.Preview != nil {
		rv.Preview.ShowExport(img)
	}
}

// --- canvas contract, proxied to the crop canvas ---

func (rv *RootView) ResizeCanvas(w, h int) {
	if rv != nil {
		rv.Canvas.ResizeCanvas(w, h)
	}
}

func (rv *RootView) ClearCanvas() {
	if rv != nil {
		rv.Canvas.ClearCanvas()
		rv.Preview.Reset()
	}
}

func (rv *RootView) Surface() interaction.Surface {
	if rv == nil || rv.Canvas == nil {
		return nil
	}
	return rv.Canvas
}

func (rv *RootView) CanvasReady() bool { return rv != nil && rv.Canvas.CanvasReady() }

func (rv *RootView) ShowCanvas(img image.Image) {
	if rv != nil {
		rv.Canvas.ShowCanvas(img)
	}
}
