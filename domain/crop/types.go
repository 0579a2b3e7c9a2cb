package crop

import (
	"errors"
	"fmt"
	"image"
	"strings"

	"github.com/soocke/pixel-crop-go/domain/geometry"
)

// ErrSurfaceTooSmall is returned when a surface cannot hold a rectangle of
// the configured minimum size.
var ErrSurfaceTooSmall = errors.New("crop: surface smaller than minimum crop size")

// Handle identifies a draggable control point of the crop rectangle.
type Handle int

const (
	None Handle = iota
	TopLeft
	TopRight
	BottomLeft
	BottomRight
	Move // center move zone
)

func (h Handle) String() string {
	switch h {
	case None:
		return "none"
	case TopLeft:
		return "top-left"
	case TopRight:
		return "top-right"
	case BottomLeft:
		return "bottom-left"
	case BottomRight:
		return "bottom-right"
	case Move:
		return "move"
	default:
		return "unknown"
	}
}

// IsCorner reports whether h is one of the four corner handles.
func (h Handle) IsCorner() bool { return h >= TopLeft && h <= BottomRight }

func (h Handle) movesLeft() bool { return h == TopLeft || h == BottomLeft }
func (h Handle) movesTop() bool  { return h == TopLeft || h == TopRight }

// Corners stores the two opposite corners that define the crop rectangle.
// The other two corners and the rectangle itself are derived.
type Corners struct {
	TopLeft     image.Point
	BottomRight image.Point
}

// Rect returns the crop rectangle; Min is TopLeft and Max is BottomRight.
func (c Corners) Rect() image.Rectangle {
	return image.Rectangle{Min: c.TopLeft, Max: c.BottomRight}
}

// Center is the position of the move handle.
func (c Corners) Center() image.Point { return geometry.Midpoint(c.TopLeft, c.BottomRight) }

// Position returns where handle h is drawn. None yields the zero point.
func (c Corners) Position(h Handle) image.Point {
	switch h {
	case TopLeft:
		return c.TopLeft
	case TopRight:
		return image.Pt(c.BottomRight.X, c.TopLeft.Y)
	case BottomLeft:
		return image.Pt(c.TopLeft.X, c.BottomRight.Y)
	case BottomRight:
		return c.BottomRight
	case Move:
		return c.Center()
	}
	return image.Point{}
}

// Layout describes which handles exist. Corner order is hit-test priority:
// when hit regions overlap the first listed corner wins.
type Layout struct {
	Corners  []Handle
	MoveZone bool
}

const (
	LayoutTwoCorner  = "two-corner"
	LayoutFourCorner = "four-corner"
)

// TwoCorner is the top-left / bottom-right layout.
func TwoCorner(moveZone bool) Layout {
	return Layout{Corners: []Handle{TopLeft, BottomRight}, MoveZone: moveZone}
}

// FourCorner exposes all four corners.
func FourCorner(moveZone bool) Layout {
	return Layout{Corners: []Handle{TopLeft, TopRight, BottomLeft, BottomRight}, MoveZone: moveZone}
}

// ParseLayout maps a configuration name to a Layout.
func ParseLayout(name string, moveZone bool) (Layout, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case LayoutTwoCorner, "two", "2":
		return TwoCorner(moveZone), nil
	case LayoutFourCorner, "four", "4":
		return FourCorner(moveZone), nil
	}
	return Layout{}, fmt.Errorf("crop: unknown handle layout %q", name)
}

// Handles lists every rendered handle in draw order: corners, then the move
// handle when enabled.
func (l Layout) Handles() []Handle {
	out := make([]Handle, 0, len(l.Corners)+1)
	out = append(out, l.Corners...)
	if l.MoveZone {
		out = append(out, Move)
	}
	return out
}
