package interaction

import (
	"errors"
	"image"

	"github.com/soocke/pixel-crop-go/domain/crop"
	"github.com/soocke/pixel-crop-go/domain/overlay"
)

// ErrNoContext is returned by a RenderSink that could not obtain a paint
// context. The frame is dropped; the next event renders again.
var ErrNoContext = errors.New("interaction: drawing surface has no paint context")

// State enumerates the interaction states.
type State int

const (
	StateIdle State = iota
	StateHovering
	StateDragging
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateHovering:
		return "hovering"
	case StateDragging:
		return "dragging"
	default:
		return "unknown"
	}
}

// Surface is the drawing surface the crop editor is bound to.
type Surface interface {
	// Size is the surface's pixel size, equal to the bound image's native size.
	Size() (width, height int)
	// Bounds is the surface's bounding box in the coordinate space pointer
	// events are reported in.
	Bounds() image.Rectangle
}

// Frame is one render request.
type Frame struct {
	Width    int
	Height   int
	Rect     image.Rectangle
	State    State
	Hovered  crop.Handle
	Selected crop.Handle
	DrawList overlay.DrawList
}

// RenderSink paints frames. Returning ErrNoContext skips the frame.
type RenderSink interface {
	Render(Frame) error
}

// RenderFunc adapts a function to RenderSink.
type RenderFunc func(Frame) error

func (f RenderFunc) Render(fr Frame) error { return f(fr) }

// StateListener is called on every state change.
type StateListener func(prev, next State)

// DragAnchor is the geometry captured when a move drag starts.
type DragAnchor struct {
	Grab    image.Point // surface-local pointer position at grab
	Corners crop.Corners
}

// Touch is one contact point of a touch event.
type Touch struct {
	ID    int
	Point image.Point
}
