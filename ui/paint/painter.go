// Package paint rasterises interaction frames over the bound image.
package paint

import (
	"fmt"
	"image"
	"log/slog"

	"github.com/gogpu/gg"

	"github.com/soocke/pixel-crop-go/domain/interaction"
	"github.com/soocke/pixel-crop-go/domain/overlay"
)

// Painter draws the background image followed by a frame's draw list.
// The background is converted to a pixmap once per SetBackground and copied
// for every frame.
type Painter struct {
	logger *slog.Logger
	bg     image.Image
	base   *gg.Pixmap
	frames uint64
}

func NewPainter(logger *slog.Logger) *Painter {
	return &Painter{logger: logger}
}

// SetBackground replaces the image painted under the overlay. nil clears it.
func (p *Painter) SetBackground(img image.Image) {
	if p == nil {
		return
	}
	p.bg = img
	p.base = nil
	if img != nil && !img.Bounds().Empty() {
		p.base = gg.FromImage(img)
	}
}

// Paint renders f. A frame without a surface size yields ErrNoContext.
func (p *Painter) Paint(f interaction.Frame) (*image.RGBA, error) {
	if p == nil || f.Width <= 0 || f.Height <= 0 {
		return nil, interaction.ErrNoContext
	}
	dc := p.newContext(f.Width, f.Height)
	defer dc.Close()

	for _, prim := range f.DrawList {
		dc.SetColor(prim.Color)
		switch prim.Kind {
		case overlay.FillRect:
			r := prim.Rect
			dc.DrawRectangle(float64(r.Min.X), float64(r.Min.Y), float64(r.Dx()), float64(r.Dy()))
		case overlay.FillCircle:
			dc.DrawCircle(float64(prim.Center.X), float64(prim.Center.Y), float64(prim.Radius))
		default:
			continue
		}
		if err := dc.Fill(); err != nil {
			return nil, fmt.Errorf("paint: fill %s: %w", prim.Kind, err)
		}
	}
	if err := dc.FlushGPU(); err != nil {
		return nil, fmt.Errorf("paint: flush: %w", err)
	}
	p.frames++
	img, ok := dc.Image().(*image.RGBA)
	if !ok {
		return nil, fmt.Errorf("paint: unexpected image type %T", dc.Image())
	}
	return img, nil
}

func (p *Painter) newContext(w, h int) *gg.Context {
	if p.base != nil && p.base.Width() == w && p.base.Height() == h {
		pm := gg.NewPixmap(w, h)
		copy(pm.Data(), p.base.Data())
		return gg.NewContext(w, h, gg.WithPixmap(pm))
	}
	dc := gg.NewContext(w, h)
	if p.bg != nil {
		if p.logger != nil {
			p.logger.Debug("background size differs from surface, scaling",
				"image", p.bg.Bounds().Size(), "surface", image.Pt(w, h))
		}
		dc.DrawImageEx(gg.ImageBufFromImage(p.bg), gg.DrawImageOptions{
			DstWidth:  float64(w),
			DstHeight: float64(h),
			Opacity:   1,
		})
	}
	return dc
}

// Frames reports how many frames were painted.
func (p *Painter) Frames() uint64 {
	if p == nil {
		return 0
	}
	return p.frames
}
