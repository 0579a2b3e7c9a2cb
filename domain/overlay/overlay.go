// Package overlay turns crop geometry into an ordered list of draw
// primitives. It does no painting itself.
package overlay

import (
	"image"
	"image/color"

	"github.com/soocke/pixel-crop-go/domain/crop"
)

// Kind is the primitive type.
type Kind int

const (
	FillRect Kind = iota
	FillCircle
)

func (k Kind) String() string {
	switch k {
	case FillRect:
		return "fill-rect"
	case FillCircle:
		return "fill-circle"
	default:
		return "unknown"
	}
}

// Primitive is one paint instruction in surface coordinates.
type Primitive struct {
	Kind   Kind
	Rect   image.Rectangle // FillRect
	Center image.Point     // FillCircle
	Radius int             // FillCircle
	Handle crop.Handle     // FillCircle
	Color  color.NRGBA
}

// DrawList is ordered back to front.
type DrawList []Primitive

// HandleState is the visual state of one rendered handle.
type HandleState struct {
	Handle crop.Handle
	Radius int
}

// Style holds overlay colors.
type Style struct {
	Dim    color.NRGBA
	Handle color.NRGBA
}

// DefaultStyle dims with 40% black and draws white handles.
func DefaultStyle() Style {
	return Style{
		Dim:    color.NRGBA{A: 102},
		Handle: color.NRGBA{R: 255, G: 255, B: 255, A: 255},
	}
}

// Build returns the dim strips outside the crop rectangle followed by one
// circle per handle. The strips tile the outside region exactly: top and
// bottom span the full width, left and right only the rectangle's rows.
// Empty strips are left out.
func Build(width, height int, c crop.Corners, handles []HandleState, s Style) DrawList {
	tl, br := c.TopLeft, c.BottomRight
	strips := [4]image.Rectangle{
		image.Rect(0, 0, width, tl.Y),       // top
		image.Rect(0, br.Y, width, height),  // bottom
		image.Rect(0, tl.Y, tl.X, br.Y),     // left
		image.Rect(br.X, tl.Y, width, br.Y), // right
	}
	out := make(DrawList, 0, len(strips)+len(handles))
	for _, r := range strips {
		if r.Empty() {
			continue
		}
		out = append(out, Primitive{Kind: FillRect, Rect: r, Color: s.Dim})
	}
	for _, h := range handles {
		if h.Handle == crop.None || h.Radius <= 0 {
			continue
		}
		out = append(out, Primitive{
			Kind:   FillCircle,
			Center: c.Position(h.Handle),
			Radius: h.Radius,
			Handle: h.Handle,
			Color:  s.Handle,
		})
	}
	return out
}

// DimArea sums the area of all FillRect primitives.
func (d DrawList) DimArea() int {
	area := 0
	for _, p := range d {
		if p.Kind == FillRect {
			area += p.Rect.Dx() * p.Rect.Dy()
		}
	}
	return area
}

// Circles returns the FillCircle primitives in order.
func (d DrawList) Circles() []Primitive {
	var out []Primitive
	for _, p := range d {
		if p.Kind == FillCircle {
			out = append(out, p)
		}
	}
	return out
}
