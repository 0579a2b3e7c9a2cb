package paint

import (
	"image"
	"image/color"
	"image/draw"
	"testing"

	"github.com/soocke/pixel-crop-go/domain/crop"
	"github.com/soocke/pixel-crop-go/domain/interaction"
	"github.com/soocke/pixel-crop-go/domain/overlay"
)

func whiteImage(w, h int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.Draw(img, img.Bounds(), image.NewUniform(color.White), image.Point{}, draw.Src)
	return img
}

func testFrame(w, h int) interaction.Frame {
	c := crop.Corners{TopLeft: image.Pt(20, 20), BottomRight: image.Pt(80, 80)}
	handles := []overlay.HandleState{
		{Handle: crop.TopLeft, Radius: 6},
		{Handle: crop.BottomRight, Radius: 6},
		{Handle: crop.Move, Radius: 6},
	}
	return interaction.Frame{
		Width:    w,
		Height:   h,
		Rect:     c.Rect(),
		DrawList: overlay.Build(w, h, c, handles, overlay.DefaultStyle()),
	}
}

func near(a, b uint8) bool {
	d := int(a) - int(b)
	return d >= -3 && d <= 3
}

func TestPaint_DimsOutsideOnly(t *testing.T) {
	p := NewPainter(nil)
	p.SetBackground(whiteImage(100, 100))
	img, err := p.Paint(testFrame(100, 100))
	if err != nil {
		t.Fatalf("paint: %v", err)
	}
	if img.Bounds() != image.Rect(0, 0, 100, 100) {
		t.Fatalf("unexpected bounds %v", img.Bounds())
	}
	// 40% black over white.
	if c := img.RGBAAt(2, 50); !near(c.R, 153) || c.A != 255 {
		t.Fatalf("outside pixel not dimmed: %+v", c)
	}
	if c := img.RGBAAt(40, 60); c.R != 255 || c.G != 255 {
		t.Fatalf("inside pixel changed: %+v", c)
	}
	if c := img.RGBAAt(20, 20); !near(c.R, 255) {
		t.Fatalf("handle not painted over strip: %+v", c)
	}
	if p.Frames() != 1 {
		t.Fatalf("expected 1 frame, got %d", p.Frames())
	}
}

func TestPaint_BackgroundNotMutated(t *testing.T) {
	bg := whiteImage(100, 100)
	p := NewPainter(nil)
	p.SetBackground(bg)
	for i := 0; i < 2; i++ {
		img, err := p.Paint(testFrame(100, 100))
		if err != nil {
			t.Fatalf("paint %d: %v", i, err)
		}
		// Dimming must not accumulate across frames.
		if c := img.RGBAAt(2, 50); !near(c.R, 153) {
			t.Fatalf("frame %d: outside pixel %+v", i, c)
		}
	}
	if c := bg.RGBAAt(2, 50); c.R != 255 {
		t.Fatalf("background mutated: %+v", c)
	}
}

func TestPaint_NoSurface(t *testing.T) {
	p := NewPainter(nil)
	if _, err := p.Paint(interaction.Frame{}); err != interaction.ErrNoContext {
		t.Fatalf("expected ErrNoContext, got %v", err)
	}
	var nilPainter *Painter
	if _, err := nilPainter.Paint(testFrame(10, 10)); err != interaction.ErrNoContext {
		t.Fatalf("nil painter: expected ErrNoContext, got %v", err)
	}
}

func TestPaint_WithoutBackground(t *testing.T) {
	p := NewPainter(nil)
	p.SetBackground(nil)
	img, err := p.Paint(testFrame(100, 100))
	if err != nil {
		t.Fatalf("paint: %v", err)
	}
	if c := img.RGBAAt(40, 60); c.A != 0 {
		t.Fatalf("expected transparent inside, got %+v", c)
	}
}
