// Package interaction implements the pointer state machine of the crop
// editor: hit-testing, drag handling and render requests.
package interaction

import (
	"errors"
	"image"
	"log/slog"

	"github.com/soocke/pixel-crop-go/domain/crop"
	"github.com/soocke/pixel-crop-go/domain/overlay"
)

// Options configures a Controller.
type Options struct {
	Layout       crop.Layout
	MinSize      int
	Margin       int
	HandleRadius int // resting radius
	ActiveRadius int // radius while hovered or dragged
	HitRadius    int
	Style        overlay.Style
}

// DefaultOptions mirrors the configuration defaults.
func DefaultOptions() Options {
	return Options{
		Layout:       crop.TwoCorner(true),
		MinSize:      crop.DefaultMinSize,
		Margin:       crop.DefaultMargin,
		HandleRadius: 6,
		ActiveRadius: 10,
		HitRadius:    10,
		Style:        overlay.DefaultStyle(),
	}
}

// Controller turns pointer and touch events into crop model mutations and
// issues one render request at the end of every handled event. Events that
// arrive before a surface is bound are ignored.
//
// Controller is single threaded: call it from the UI event loop only.
type Controller struct {
	opts      Options
	logger    *slog.Logger
	model     *crop.Model
	hit       *crop.HitTester
	sink      RenderSink
	surface   Surface
	state     State
	hovered   crop.Handle
	selected  crop.Handle
	anchor    *DragAnchor
	touchID   int
	touching  bool
	listeners []StateListener
	rendered  uint64
	skipped   uint64
}

// NewController builds an unbound controller. sink may be nil.
func NewController(opts Options, sink RenderSink, logger *slog.Logger) *Controller {
	c := &Controller{logger: logger, sink: sink}
	c.apply(opts)
	return c
}

func (c *Controller) apply(opts Options) {
	if opts.HitRadius <= 0 {
		opts.HitRadius = opts.ActiveRadius
	}
	if opts.ActiveRadius < opts.HandleRadius {
		opts.ActiveRadius = opts.HandleRadius
	}
	if len(opts.Layout.Corners) == 0 {
		opts.Layout = crop.TwoCorner(opts.Layout.MoveZone)
	}
	c.opts = opts
	c.model = crop.NewModel(crop.Options{MinSize: opts.MinSize, Margin: opts.Margin})
	c.hit = crop.NewHitTester(opts.Layout, opts.HitRadius)
}

// Configure replaces the options. A bound surface is bound again, which
// resets the rectangle to the default inset under the new options.
func (c *Controller) Configure(opts Options) (image.Rectangle, error) {
	s := c.surface
	c.Unbind()
	c.apply(opts)
	if s == nil {
		return image.Rectangle{}, nil
	}
	return c.Bind(s)
}

// Options returns the effective options.
func (c *Controller) Options() Options { return c.opts }

// AddListener registers a state change listener.
func (c *Controller) AddListener(l StateListener) {
	if l != nil {
		c.listeners = append(c.listeners, l)
	}
}

// Bind attaches the controller to s and resets the crop rectangle to the
// default inset for the surface size. Any previous binding is dropped first,
// so a failed Bind leaves the controller unbound.
func (c *Controller) Bind(s Surface) (image.Rectangle, error) {
	c.Unbind()
	if s == nil {
		return image.Rectangle{}, errors.New("interaction: nil surface")
	}
	w, h := s.Size()
	r, err := c.model.Initialize(w, h)
	if err != nil {
		return r, err
	}
	c.surface = s
	c.reset()
	if c.logger != nil {
		c.logger.Debug("crop surface bound", "width", w, "height", h, "rect", r.String())
	}
	c.render()
	return r, nil
}

// Unbind detaches the surface. Subsequent events are no-ops.
func (c *Controller) Unbind() {
	c.reset()
	c.surface = nil
	c.model.Reset()
}

// Bound reports whether a surface is attached.
func (c *Controller) Bound() bool { return c.surface != nil && c.model.Bound() }

// Resized re-anchors the rectangle after the bound surface changed size.
func (c *Controller) Resized() error {
	if !c.Bound() {
		return nil
	}
	w, h := c.surface.Size()
	if _, err := c.model.Resize(w, h); err != nil {
		return err
	}
	c.render()
	return nil
}

// Restore applies a previously saved rectangle, clamped to the invariants.
func (c *Controller) Restore(r image.Rectangle) image.Rectangle {
	if !c.Bound() {
		return image.Rectangle{}
	}
	out := c.model.Restore(r)
	c.render()
	return out
}

// PointerDown starts a drag when a handle is under the pointer.
func (c *Controller) PointerDown(screen image.Point) {
	if !c.Bound() {
		return
	}
	p := c.toLocal(screen)
	h := c.hit.Classify(p, c.model.Corners())
	switch {
	case h.IsCorner():
		c.selected, c.hovered = h, h
		c.anchor = nil
		c.setState(StateDragging)
	case h == crop.Move:
		c.selected, c.hovered = h, h
		c.anchor = &DragAnchor{Grab: p, Corners: c.model.Corners()}
		c.setState(StateDragging)
	default:
		c.selected, c.hovered = crop.None, crop.None
		c.anchor = nil
		c.setState(StateIdle)
	}
	c.render()
}

// PointerMove updates hover visuals or applies the active drag.
func (c *Controller) PointerMove(screen image.Point) {
	if !c.Bound() {
		return
	}
	p := c.toLocal(screen)
	if c.state == StateDragging {
		switch {
		case c.selected.IsCorner():
			c.model.SetCorner(c.selected, p)
		case c.selected == crop.Move && c.anchor != nil:
			c.model.TranslateFrom(c.anchor.Corners, p.Sub(c.anchor.Grab))
		}
		c.render()
		return
	}
	c.hovered = c.hit.Classify(p, c.model.Corners())
	if c.hovered == crop.None {
		c.setState(StateIdle)
	} else {
		c.setState(StateHovering)
	}
	c.render()
}

// PointerUp ends any drag and resets handle visuals.
func (c *Controller) PointerUp(screen image.Point) {
	if !c.Bound() {
		return
	}
	c.release()
}

// PointerLeave behaves like PointerUp.
func (c *Controller) PointerLeave() {
	if !c.Bound() {
		return
	}
	c.release()
}

// Redraw issues a render request without changing state.
func (c *Controller) Redraw() {
	if !c.Bound() {
		return
	}
	c.render()
}

func (c *Controller) release() {
	c.reset()
	c.render()
}

func (c *Controller) reset() {
	c.selected, c.hovered = crop.None, crop.None
	c.anchor = nil
	c.touching = false
	c.setState(StateIdle)
}

func (c *Controller) setState(next State) {
	prev := c.state
	if prev == next {
		return
	}
	c.state = next
	if c.logger != nil {
		c.logger.Debug("crop state transition", "from", prev.String(), "to", next.String())
	}
	for _, l := range c.listeners {
		l(prev, next)
	}
}

// toLocal maps a pointer position from screen space into surface space
// using the surface bounding box. When the box is displayed at a different
// size than the surface, the offset is scaled. The last displayed pixel
// column and row map to the surface extent so a corner drag can reach it.
func (c *Controller) toLocal(p image.Point) image.Point {
	b := c.surface.Bounds()
	w, h := c.surface.Size()
	local := p.Sub(b.Min)
	return image.Pt(toSurface(local.X, b.Dx(), w), toSurface(local.Y, b.Dy(), h))
}

// toSurface maps offset v along a displayed span of shown pixels onto a
// surface span of n pixels.
func toSurface(v, shown, n int) int {
	if shown <= 0 {
		return v
	}
	if v >= shown-1 {
		return n + v - (shown - 1)
	}
	if shown != n {
		v = v * n / shown
	}
	return v
}

// Frame computes the current render request.
func (c *Controller) Frame() Frame {
	if !c.Bound() {
		return Frame{}
	}
	w, h := c.surface.Size()
	corners := c.model.Corners()
	handles := c.opts.Layout.Handles()
	states := make([]overlay.HandleState, 0, len(handles))
	for _, hd := range handles {
		r := c.opts.HandleRadius
		if c.state != StateIdle && (hd == c.hovered || hd == c.selected) {
			r = c.opts.ActiveRadius
		}
		states = append(states, overlay.HandleState{Handle: hd, Radius: r})
	}
	return Frame{
		Width:    w,
		Height:   h,
		Rect:     corners.Rect(),
		State:    c.state,
		Hovered:  c.hovered,
		Selected: c.selected,
		DrawList: overlay.Build(w, h, corners, states, c.opts.Style),
	}
}

func (c *Controller) render() {
	if c.sink == nil {
		return
	}
	err := c.sink.Render(c.Frame())
	switch {
	case err == nil:
		c.rendered++
	case errors.Is(err, ErrNoContext):
		c.skipped++
		if c.logger != nil {
			c.logger.Debug("frame skipped", "reason", err.Error())
		}
	default:
		c.skipped++
		if c.logger != nil {
			c.logger.Error("render failed", "error", err)
		}
	}
}

// State returns the current interaction state.
func (c *Controller) State() State { return c.state }

// Hovered returns the handle under the pointer, if any.
func (c *Controller) Hovered() crop.Handle { return c.hovered }

// Selected returns the handle being dragged, if any.
func (c *Controller) Selected() crop.Handle { return c.selected }

// Anchor returns the move-drag anchor or nil.
func (c *Controller) Anchor() *DragAnchor { return c.anchor }

// Rect returns the current crop rectangle in surface space.
func (c *Controller) Rect() image.Rectangle { return c.model.Rect() }

// Corners returns the current corners.
func (c *Controller) Corners() crop.Corners { return c.model.Corners() }

// Stats reports rendered and skipped frame counts.
func (c *Controller) Stats() (rendered, skipped uint64) { return c.rendered, c.skipped }
