package interaction

import (
	"image"
	"testing"

	"github.com/soocke/pixel-crop-go/domain/crop"
)

func TestTouch_FirstContactDrives(t *testing.T) {
	c, _, s := newTestController(t, crop.TwoCorner(false))
	c.TouchStart([]Touch{{ID: 7, Point: screen(s, 290, 290)}, {ID: 8, Point: screen(s, 10, 10)}})
	if c.Selected() != crop.BottomRight {
		t.Fatalf("expected first contact to grab bottom-right, got %v", c.Selected())
	}
	// A second finger landing later is ignored.
	c.TouchStart([]Touch{{ID: 9, Point: screen(s, 10, 10)}})
	if c.Selected() != crop.BottomRight {
		t.Fatalf("second contact must be ignored")
	}
	c.TouchMove([]Touch{{ID: 9, Point: screen(s, 5, 5)}, {ID: 7, Point: screen(s, 200, 150)}})
	if c.Rect().Max != image.Pt(200, 150) {
		t.Fatalf("expected tracked contact to move corner, got %v", c.Rect())
	}
	c.TouchEnd([]Touch{{ID: 9}})
	if c.State() != StateDragging {
		t.Fatalf("ending an untracked contact must not release")
	}
	c.TouchEnd([]Touch{{ID: 7, Point: screen(s, 200, 150)}})
	if c.State() != StateIdle {
		t.Fatalf("expected idle after tracked contact ends")
	}
}

func TestTouch_EmptyAndCancel(t *testing.T) {
	c, sink, s := newTestController(t, crop.TwoCorner(false))
	n := len(sink.frames)
	c.TouchStart(nil)
	if len(sink.frames) != n {
		t.Fatalf("empty touch list must be ignored")
	}
	c.TouchStart([]Touch{{ID: 1, Point: screen(s, 10, 10)}})
	c.TouchCancel()
	if c.State() != StateIdle || c.Selected() != crop.None {
		t.Fatalf("cancel must release")
	}
}
