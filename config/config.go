package config

import (
	"encoding/json"
	"fmt"
	"image"
	"image/color"
	"os"
	"strconv"
	"strings"

	"github.com/soocke/pixel-crop-go/domain/crop"
	"github.com/soocke/pixel-crop-go/domain/export"
	"github.com/soocke/pixel-crop-go/domain/interaction"
	"github.com/soocke/pixel-crop-go/domain/overlay"
)

// Config holds runtime configuration for the crop editor.
// Fields may be loaded from a JSON file and overridden by command-line flags.
type Config struct {
	Debug        bool `json:"debug"`
	WindowWidth  int  `json:"window_width"`
	WindowHeight int  `json:"window_height"`

	// Crop interaction
	MinSize      int     `json:"min_size"`
	Margin       int     `json:"margin"`
	HandleRadius int     `json:"handle_radius"`
	ActiveRadius int     `json:"active_radius"`
	HitRadius    int     `json:"hit_radius"`
	Layout       string  `json:"layout"`
	MoveHandle   bool    `json:"move_handle"`
	OverlayAlpha float64 `json:"overlay_alpha"`
	OverlayColor string  `json:"overlay_color"`
	HandleColor  string  `json:"handle_color"`

	// Export
	ExportFormat  string `json:"export_format"`
	ExportQuality int    `json:"export_quality"`
	ExportDir     string `json:"export_dir"`
	ExportPrefix  string `json:"export_prefix"`

	// Last crop selection, restored for an image of at least this extent.
	SelectionX int `json:"selection_x"`
	SelectionY int `json:"selection_y"`
	SelectionW int `json:"selection_w"`
	SelectionH int `json:"selection_h"`
}

// DefaultConfig returns a Config populated with standard defaults.
func DefaultConfig() *Config {
	return &Config{
		Debug:         false,
		WindowWidth:   960,
		WindowHeight:  720,
		MinSize:       crop.DefaultMinSize,
		Margin:        crop.DefaultMargin,
		HandleRadius:  6,
		ActiveRadius:  10,
		HitRadius:     10,
		Layout:        crop.LayoutTwoCorner,
		MoveHandle:    true,
		OverlayAlpha:  0.4,
		OverlayColor:  "#000000",
		HandleColor:   "#ffffff",
		ExportFormat:  string(export.PNG),
		ExportQuality: 90,
		ExportDir:     "./crops",
		ExportPrefix:  "crop",
	}
}

// Validate clamps/normalizes values to safe ranges.
func (c *Config) Validate() error {
	d := DefaultConfig()
	if c.WindowWidth <= 0 {
		c.WindowWidth = d.WindowWidth
	}
	if c.WindowHeight <= 0 {
		c.WindowHeight = d.WindowHeight
	}
	if c.MinSize < 1 {
		c.MinSize = d.MinSize
	}
	if c.Margin < 0 {
		c.Margin = d.Margin
	}
	if c.HandleRadius < 1 {
		c.HandleRadius = d.HandleRadius
	}
	if c.ActiveRadius < c.HandleRadius {
		c.ActiveRadius = c.HandleRadius
	}
	if c.HitRadius < 1 {
		c.HitRadius = d.HitRadius
	}
	if _, err := crop.ParseLayout(c.Layout, c.MoveHandle); err != nil {
		c.Layout = d.Layout
	}
	if c.OverlayAlpha < 0 || c.OverlayAlpha > 1 {
		c.OverlayAlpha = d.OverlayAlpha
	}
	if _, err := parseHexColor(c.OverlayColor); err != nil {
		c.OverlayColor = d.OverlayColor
	}
	if _, err := parseHexColor(c.HandleColor); err != nil {
		c.HandleColor = d.HandleColor
	}
	if f, err := export.ParseFormat(c.ExportFormat); err != nil {
		c.ExportFormat = d.ExportFormat
	} else {
		c.ExportFormat = string(f)
	}
	if c.ExportQuality < 1 || c.ExportQuality > 100 {
		c.ExportQuality = d.ExportQuality
	}
	if strings.TrimSpace(c.ExportDir) == "" {
		c.ExportDir = d.ExportDir
	}
	if strings.TrimSpace(c.ExportPrefix) == "" {
		c.ExportPrefix = d.ExportPrefix
	}
	if c.SelectionW < 0 || c.SelectionH < 0 || c.SelectionX < 0 || c.SelectionY < 0 {
		c.ClearSelection()
	}
	return nil
}

// CropLayout resolves the configured handle layout.
func (c *Config) CropLayout() crop.Layout {
	l, err := crop.ParseLayout(c.Layout, c.MoveHandle)
	if err != nil {
		return crop.TwoCorner(c.MoveHandle)
	}
	return l
}

// OverlayStyle resolves the configured overlay colors.
func (c *Config) OverlayStyle() overlay.Style {
	s := overlay.DefaultStyle()
	if dim, err := parseHexColor(c.OverlayColor); err == nil {
		dim.A = uint8(c.OverlayAlpha*255 + 0.5)
		s.Dim = dim
	}
	if h, err := parseHexColor(c.HandleColor); err == nil {
		s.Handle = h
	}
	return s
}

// ControllerOptions maps the crop settings onto interaction options.
func (c *Config) ControllerOptions() interaction.Options {
	return interaction.Options{
		Layout:       c.CropLayout(),
		MinSize:      c.MinSize,
		Margin:       c.Margin,
		HandleRadius: c.HandleRadius,
		ActiveRadius: c.ActiveRadius,
		HitRadius:    c.HitRadius,
		Style:        c.OverlayStyle(),
	}
}

func (c *Config) Format() export.Format {
	f, err := export.ParseFormat(c.ExportFormat)
	if err != nil {
		return export.PNG
	}
	return f
}

// Selection returns the persisted selection, if any.
func (c *Config) Selection() (image.Rectangle, bool) {
	if c.SelectionW <= 0 || c.SelectionH <= 0 {
		return image.Rectangle{}, false
	}
	return image.Rect(c.SelectionX, c.SelectionY, c.SelectionX+c.SelectionW, c.SelectionY+c.SelectionH), true
}

func (c *Config) SetSelection(r image.Rectangle) {
	if r.Empty() {
		c.ClearSelection()
		return
	}
	c.SelectionX, c.SelectionY = r.Min.X, r.Min.Y
	c.SelectionW, c.SelectionH = r.Dx(), r.Dy()
}

func (c *Config) ClearSelection() {
	c.SelectionX, c.SelectionY, c.SelectionW, c.SelectionH = 0, 0, 0, 0
}

// parseHexColor accepts #rgb and #rrggbb.
func parseHexColor(s string) (color.NRGBA, error) {
	s = strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(s) == 3 {
		s = string([]byte{s[0], s[0], s[1], s[1], s[2], s[2]})
	}
	if len(s) != 6 {
		return color.NRGBA{}, fmt.Errorf("config: invalid color %q", s)
	}
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return color.NRGBA{}, fmt.Errorf("config: invalid color %q: %w", s, err)
	}
	return color.NRGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 255}, nil
}

// Load attempts to read configuration from the given JSON file path. If the file does not
// exist it returns DefaultConfig(). On JSON error it returns defaults with the error.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, err
	}
	defer f.Close()
	dec := json.NewDecoder(f)
	if err := dec.Decode(cfg); err != nil {
		return DefaultConfig(), err
	}
	_ = cfg.Validate()
	return cfg, nil
}

// Save writes the configuration to the given path in JSON format.
func (c *Config) Save(path string) error {
	_ = c.Validate()
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	return enc.Encode(c)
}
