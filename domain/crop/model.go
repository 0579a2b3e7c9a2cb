package crop

import (
	"image"

	"github.com/soocke/pixel-crop-go/domain/geometry"
)

const (
	DefaultMinSize = 20
	DefaultMargin  = 10
)

// Options configures a Model. Non-positive values fall back to the defaults.
type Options struct {
	MinSize int
	Margin  int
}

// Model owns the crop rectangle of one bound surface. Every mutation keeps
// width and height >= MinSize and both corners inside [0,W]x[0,H]; requests
// that would break this are clamped, never rejected.
//
// Model is not safe for concurrent use; it is driven from the UI thread.
type Model struct {
	minSize int
	margin  int
	width   int
	height  int
	bound   bool
	c       Corners
}

// NewModel returns an unbound model.
func NewModel(opts Options) *Model {
	if opts.MinSize <= 0 {
		opts.MinSize = DefaultMinSize
	}
	if opts.Margin < 0 {
		opts.Margin = DefaultMargin
	}
	return &Model{minSize: opts.MinSize, margin: opts.Margin}
}

// MinSize returns the minimum crop width and height.
func (m *Model) MinSize() int { return m.minSize }

// Bound reports whether a surface has been bound via Initialize.
func (m *Model) Bound() bool { return m != nil && m.bound }

// Bounds returns the surface rectangle the corners are confined to.
func (m *Model) Bounds() image.Rectangle { return image.Rect(0, 0, m.width, m.height) }

// Corners returns a copy of the current corners.
func (m *Model) Corners() Corners { return m.c }

// Rect returns the current crop rectangle.
func (m *Model) Rect() image.Rectangle { return m.c.Rect() }

// HandlePosition returns where handle h is drawn.
func (m *Model) HandlePosition(h Handle) image.Point { return m.c.Position(h) }

// Initialize binds the model to a w x h surface and resets the corners to the
// default inset. The margin shrinks on small surfaces so the rectangle still
// spans MinSize.
func (m *Model) Initialize(w, h int) (image.Rectangle, error) {
	if w < m.minSize || h < m.minSize {
		return m.c.Rect(), ErrSurfaceTooSmall
	}
	mx := min(m.margin, (w-m.minSize)/2)
	my := min(m.margin, (h-m.minSize)/2)
	m.width, m.height = w, h
	m.c = Corners{TopLeft: image.Pt(mx, my), BottomRight: image.Pt(w-mx, h-my)}
	m.bound = true
	return m.c.Rect(), nil
}

// Reset unbinds the model. Mutations become no-ops until Initialize.
func (m *Model) Reset() {
	m.bound = false
	m.width, m.height = 0, 0
	m.c = Corners{}
}

// Restore replaces the corners with r, clamped to the invariants. It is used
// to bring back a persisted selection.
func (m *Model) Restore(r image.Rectangle) image.Rectangle {
	if !m.bound {
		return m.c.Rect()
	}
	r = r.Canon()
	br := image.Pt(
		geometry.Clamp(r.Max.X, m.minSize, m.width),
		geometry.Clamp(r.Max.Y, m.minSize, m.height),
	)
	tl := image.Pt(
		geometry.Clamp(r.Min.X, 0, br.X-m.minSize),
		geometry.Clamp(r.Min.Y, 0, br.Y-m.minSize),
	)
	m.c = Corners{TopLeft: tl, BottomRight: br}
	return m.c.Rect()
}

// SetCorner moves handle h to p. Each corner drives one vertical and one
// horizontal edge; an edge is clamped so it stays MinSize away from the
// opposite edge and inside the surface. Non-corner handles are ignored.
func (m *Model) SetCorner(h Handle, p image.Point) image.Rectangle {
	if !m.bound || !h.IsCorner() {
		return m.c.Rect()
	}
	tl, br := m.c.TopLeft, m.c.BottomRight
	if h.movesLeft() {
		tl.X = geometry.Clamp(p.X, 0, br.X-m.minSize)
	} else {
		br.X = geometry.Clamp(p.X, tl.X+m.minSize, m.width)
	}
	if h.movesTop() {
		tl.Y = geometry.Clamp(p.Y, 0, br.Y-m.minSize)
	} else {
		br.Y = geometry.Clamp(p.Y, tl.Y+m.minSize, m.height)
	}
	m.c = Corners{TopLeft: tl, BottomRight: br}
	return m.c.Rect()
}

// Translate shifts both corners by delta from their current position.
func (m *Model) Translate(delta image.Point) image.Rectangle {
	return m.TranslateFrom(m.c, delta)
}

// TranslateFrom places the rectangle at origin shifted by delta. Each axis is
// clamped independently so neither corner leaves the surface; the size of
// origin is preserved.
func (m *Model) TranslateFrom(origin Corners, delta image.Point) image.Rectangle {
	if !m.bound {
		return m.c.Rect()
	}
	dx := geometry.Clamp(delta.X, -origin.TopLeft.X, m.width-origin.BottomRight.X)
	dy := geometry.Clamp(delta.Y, -origin.TopLeft.Y, m.height-origin.BottomRight.Y)
	d := image.Pt(dx, dy)
	m.c = Corners{TopLeft: origin.TopLeft.Add(d), BottomRight: origin.BottomRight.Add(d)}
	return m.c.Rect()
}

// Resize re-anchors the rectangle after the surface changed size. The
// bottom/right corner is clamped to the new extent and the top/left corner
// is pushed back when needed to keep MinSize.
func (m *Model) Resize(w, h int) (image.Rectangle, error) {
	if !m.bound {
		return m.c.Rect(), nil
	}
	if w < m.minSize || h < m.minSize {
		return m.c.Rect(), ErrSurfaceTooSmall
	}
	m.width, m.height = w, h
	tl, br := m.c.TopLeft, m.c.BottomRight
	br.X = geometry.Clamp(br.X, m.minSize, w)
	br.Y = geometry.Clamp(br.Y, m.minSize, h)
	tl.X = geometry.Clamp(tl.X, 0, br.X-m.minSize)
	tl.Y = geometry.Clamp(tl.Y, 0, br.Y-m.minSize)
	m.c = Corners{TopLeft: tl, BottomRight: br}
	return m.c.Rect(), nil
}
