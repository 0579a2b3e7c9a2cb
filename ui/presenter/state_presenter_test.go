package presenter

import (
	"image"
	"testing"
	"time"

	"github.com/soocke/pixel-crop-go/domain/crop"
	"github.com/soocke/pixel-crop-go/domain/interaction"
	"github.com/soocke/pixel-crop-go/ui/model"
)

func TestStatePresenter_ReflectsStateAndRect(t *testing.T) {
	src := &mockState{}
	view := &mockView{}
	p := NewStatePresenter(src, view)

	p.Tick(time.Now())
	if len(view.stateText) != 1 || view.stateText[0] != "State: <no image>" {
		t.Fatalf("unexpected initial label %v", view.stateText)
	}
	p.Tick(time.Now())
	if len(view.stateText) != 1 {
		t.Fatalf("unchanged label should not be pushed again")
	}

	src.bound = true
	src.state = interaction.StateDragging
	src.selected = crop.BottomRight
	src.rect = image.Rect(10, 10, 120, 60)
	p.OnState(interaction.StateHovering, interaction.StateDragging)
	p.Tick(time.Now())
	want := "State: dragging bottom-right | x=10 y=10 110x50"
	if got := view.stateText[len(view.stateText)-1]; got != want {
		t.Fatalf("expected %q got %q", want, got)
	}

	// Dragging changes the rect without a transition.
	src.rect = image.Rect(10, 10, 130, 60)
	p.Tick(time.Now())
	if got := view.stateText[len(view.stateText)-1]; got != "State: dragging bottom-right | x=10 y=10 120x50" {
		t.Fatalf("rect change not reflected: %q", got)
	}
}

func TestStatusPresenter_PushesChangesOnly(t *testing.T) {
	status := model.NewStatusModel()
	view := &mockView{}
	p := NewStatusPresenter(status, view)
	base := time.Unix(0, 0)

	status.Set("saved", false, base, time.Second)
	p.Tick(base)
	p.Tick(base.Add(500 * time.Millisecond))
	if len(view.status) != 1 || view.status[0] != "saved" {
		t.Fatalf("expected single push, got %v", view.status)
	}
	p.Tick(base.Add(time.Second))
	if len(view.status) != 2 || view.status[1] != "" {
		t.Fatalf("expected cleared status, got %v", view.status)
	}
}

func TestLoop_TickSchedulesAndDrives(t *testing.T) {
	f := newImageFixture(nil)
	f.loader.queue = append(f.loader.queue, loaded("a.png", 100, 80))
	view := &mockView{}
	scheduled := 0
	l := NewLoop(f.p, NewStatePresenter(&mockState{}, view), NewStatusPresenter(f.status, view), func() { scheduled++ })
	l.Tick()
	if scheduled != 1 || !f.binder.bound {
		t.Fatalf("loop tick incomplete: scheduled=%d bound=%v", scheduled, f.binder.bound)
	}
	if len(view.status) != 1 || view.status[0] != "Loaded a.png (100x80)" {
		t.Fatalf("status not pushed after load: %v", view.status)
	}
	var nilLoop *Loop
	nilLoop.Tick()
}
