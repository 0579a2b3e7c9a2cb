package crop

import (
	"image"

	"github.com/soocke/pixel-crop-go/domain/geometry"
)

// HitTester maps pointer positions to handles using square hit regions of
// the configured radius.
type HitTester struct {
	layout Layout
	radius int
}

func NewHitTester(layout Layout, radius int) *HitTester {
	return &HitTester{layout: layout, radius: radius}
}

// Layout returns the handle layout the tester was built with.
func (t *HitTester) Layout() Layout { return t.layout }

// Classify returns the handle under p. Corners are tested in layout order
// and win over the move zone; the move zone is only tested when the layout
// enables it. None means nothing was hit.
func (t *HitTester) Classify(p image.Point, c Corners) Handle {
	for _, h := range t.layout.Corners {
		if geometry.Contains(c.Position(h), p, t.radius) {
			return h
		}
	}
	if t.layout.MoveZone && geometry.Contains(c.Center(), p, t.radius) {
		return Move
	}
	return None
}
