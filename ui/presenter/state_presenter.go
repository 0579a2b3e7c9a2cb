package presenter

import (
	"fmt"
	"image"
	"time"

	"github.com/soocke/pixel-crop-go/domain/crop"
	"github.com/soocke/pixel-crop-go/domain/interaction"
)

// StateSource provides the controller state the presenter reflects.
type StateSource interface {
	Bound() bool
	State() interaction.State
	Hovered() crop.Handle
	Selected() crop.Handle
	Rect() image.Rectangle
}

// StateView sets the state label in the view.
type StateView interface{ SetStateLabel(string) }

// StatePresenter receives controller transitions and mirrors the interaction
// state and crop rectangle into the view on each tick.
type StatePresenter struct {
	src     StateSource
	view    StateView
	latest  string
	pending bool
}

func NewStatePresenter(src StateSource, view StateView) *StatePresenter {
	return &StatePresenter{src: src, view: view, pending: true}
}

// OnState is registered as a controller listener.
//
// The label is refreshed on the next Tick.
func (p *StatePresenter) OnState(prev, next interaction.State) {
	if p == nil {
		return
	}
	p.pending = true
}

// Tick updates the view when the label text changed. The rectangle changes
// while dragging without a state transition, so the text is recomputed on
// every tick.
func (p *StatePresenter) Tick(now time.Time) {
	if p == nil || p.src == nil || p.view == nil {
		return
	}
	text := p.label()
	if !p.pending && text == p.latest {
		return
	}
	p.pending = false
	p.latest = text
	p.view.SetStateLabel(text)
}

func (p *StatePresenter) label() string {
	if !p.src.Bound() {
		return "State: <no image>"
	}
	state := p.src.State()
	detail := ""
	switch state {
	case interaction.StateHovering:
		detail = " " + p.src.Hovered().String()
	case interaction.StateDragging:
		detail = " " + p.src.Selected().String()
	}
	r := p.src.Rect()
	return fmt.Sprintf("State: %s%s | x=%d y=%d %dx%d", state, detail, r.Min.X, r.Min.Y, r.Dx(), r.Dy())
}
