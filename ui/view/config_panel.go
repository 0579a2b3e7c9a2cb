package view

import (
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/soocke/pixel-crop-go/config"

	//lint:ignore ST1001 Dot import is intentional for concise Tk widget DSL builders.
	. "modernc.org/tk9.0"
)

// ConfigPanel encapsulates the configuration form widgets and apply logic.
// It owns its widgets and writes back into *config.Config on ApplyChanges.
type ConfigPanel interface {
	Build(parent *FrameWidget, startRow int) (endRow int) // constructs widgets starting at startRow, returns next free row
	SetEditable(enabled bool)
	ApplyChanges() // parses widget text into underlying config and persists
}

type configPanel struct {
	cfg      *config.Config
	cfgPath  string
	logger   *slog.Logger
	onApply  func(*config.Config)
	applyBtn *ButtonWidget
	widgets  map[string]*TextWidget // keyed by internal field id
}

// NewConfigPanel creates the view bound to cfg. onApply runs after a
// successful ApplyChanges.
func NewConfigPanel(cfg *config.Config, cfgPath string, logger *slog.Logger, onApply func(*config.Config)) ConfigPanel {
	return &configPanel{cfg: cfg, cfgPath: cfgPath, logger: logger, onApply: onApply, widgets: make(map[string]*TextWidget)}
}

func (v *configPanel) Build(parent *FrameWidget, startRow int) (row int) {
	c := v.cfg
	row = startRow
	makeRow := func(id, label, value string) {
		lbl := Label(Txt(label), Anchor("w"))
		Grid(lbl, In(parent), Row(row), Column(0), Sticky("w"), Padx("0.4m"), Pady("0.15m"))
		w := Text(Height(1), Width(14))
		Grid(w, In(parent), Row(row), Column(1), Sticky("we"), Padx("0.4m"), Pady("0.15m"))
		w.Delete("1.0", END)
		w.Insert("1.0", value)
		v.widgets[id] = w
		row++
	}
	makeRow("layout", "Layout (two-corner/four-corner)", c.Layout)
	makeRow("moveHandle", "Move Handle (true/false)", fmt.Sprintf("%t", c.MoveHandle))
	makeRow("minSize", "Min Size Px", fmt.Sprintf("%d", c.MinSize))
	makeRow("margin", "Initial Margin Px", fmt.Sprintf("%d", c.Margin))
	makeRow("handleRadius", "Handle Radius", fmt.Sprintf("%d", c.HandleRadius))
	makeRow("activeRadius", "Active Radius", fmt.Sprintf("%d", c.ActiveRadius))
	makeRow("hitRadius", "Hit Radius", fmt.Sprintf("%d", c.HitRadius))
	makeRow("overlayAlpha", "Overlay Alpha (0-1)", fmt.Sprintf("%.2f", c.OverlayAlpha))
	makeRow("overlayColor", "Overlay Color", c.OverlayColor)
	makeRow("handleColor", "Handle Color", c.HandleColor)
	makeRow("exportFormat", "Export Format", c.ExportFormat)
	makeRow("exportQuality", "Export Quality (1-100)", fmt.Sprintf("%d", c.ExportQuality))
	makeRow("exportDir", "Export Directory", c.ExportDir)
	makeRow("exportPrefix", "Export Prefix", c.ExportPrefix)
	v.applyBtn = Button(Txt("Apply Changes"), Command(func() { v.ApplyChanges() }))
	Grid(v.applyBtn, In(parent), Row(row), Column(0), Columnspan(2), Sticky("we"), Padx("0.4m"), Pady("0.3m"))
	row++
	return row
}

func (v *configPanel) SetEditable(enabled bool) {
	state := "disabled"
	if enabled {
		state = "normal"
	}
	for _, w := range v.widgets {
		if w != nil {
			w.Configure(State(state))
		}
	}
	if v.applyBtn != nil {
		v.applyBtn.Configure(State(state))
	}
}

func (v *configPanel) text(id string) (string, bool) {
	w := v.widgets[id]
	if w == nil {
		return "", false
	}
	return strings.TrimSpace(strings.Join(w.Get("1.0", END), "")), true
}

func (v *configPanel) ApplyChanges() {
	if v.cfg == nil {
		return
	}
	cfg := *v.cfg // copy
	applyFields(&cfg, v.text)
	if verr := cfg.Validate(); verr != nil {
		return
	}
	*v.cfg = cfg
	if err := v.cfg.Save(v.cfgPath); err != nil {
		if v.logger != nil {
			v.logger.Error("config save failed", "error", err)
		}
	} else if v.logger != nil {
		v.logger.Info("config saved", "path", v.cfgPath)
	}
	if v.onApply != nil {
		v.onApply(v.cfg)
	}
}

// applyFields parses the form values returned by text into cfg. Fields that
// are missing or fail to parse keep their current value.
func applyFields(cfg *config.Config, text func(id string) (string, bool)) {
	assignFloat := func(id string, dst *float64) {
		if s, ok := text(id); ok {
			if f, ok := parseFloatField(s); ok {
				*dst = f
			}
		}
	}
	assignInt := func(id string, dst *int) {
		if s, ok := text(id); ok {
			if i, ok := parseIntField(s); ok {
				*dst = i
			}
		}
	}
	assignBool := func(id string, dst *bool) {
		if s, ok := text(id); ok {
			if b, ok := parseBoolLoose(s); ok {
				*dst = b
			}
		}
	}
	assignString := func(id string, dst *string) {
		if s, ok := text(id); ok && s != "" {
			*dst = s
		}
	}
	assignString("layout", &cfg.Layout)
	assignBool("moveHandle", &cfg.MoveHandle)
	assignInt("minSize", &cfg.MinSize)
	assignInt("margin", &cfg.Margin)
	assignInt("handleRadius", &cfg.HandleRadius)
	assignInt("activeRadius", &cfg.ActiveRadius)
	assignInt("hitRadius", &cfg.HitRadius)
	assignFloat("overlayAlpha", &cfg.OverlayAlpha)
	assignString("overlayColor", &cfg.OverlayColor)
	assignString("handleColor", &cfg.HandleColor)
	assignString("exportFormat", &cfg.ExportFormat)
	assignInt("exportQuality", &cfg.ExportQuality)
	assignString("exportDir", &cfg.ExportDir)
	assignString("exportPrefix", &cfg.ExportPrefix)
}

// parsing helpers (unexported)
func parseFloatField(s string) (float64, bool) {
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, false
	}
	return f, true
}
func parseIntField(s string) (int, bool) {
	i, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, false
	}
	return i, true
}
func parseBoolLoose(s string) (bool, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "true", "1", "yes", "y", "on", "t":
		return true, true
	case "false", "0", "no", "n", "off", "f":
		return false, true
	default:
		return false, false
	}
}
