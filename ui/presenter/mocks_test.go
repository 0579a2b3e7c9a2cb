package presenter

import (
	"errors"
	"image"
	"io"
	"log/slog"

	"github.com/soocke/pixel-crop-go/domain/crop"
	"github.com/soocke/pixel-crop-go/domain/imagesource"
	"github.com/soocke/pixel-crop-go/domain/interaction"
)

func discardLogger() *slog.Logger { return slog.New(slog.NewTextHandler(io.Discard, nil)) }

type mockLoader struct {
	requested []string
	closed    int
	queue     []imagesource.Result
}

func (l *mockLoader) Request(src imagesource.Source) uint64 {
	l.requested = append(l.requested, src.Name())
	return uint64(len(l.requested))
}

func (l *mockLoader) Poll() (imagesource.Result, bool) {
	if len(l.queue) == 0 {
		return imagesource.Result{}, false
	}
	res := l.queue[0]
	l.queue = l.queue[1:]
	return res, true
}

func (l *mockLoader) Close() { l.closed++ }

type mockSurface struct{ w, h int }

func (s mockSurface) Size() (int, int)        { return s.w, s.h }
func (s mockSurface) Bounds() image.Rectangle { return image.Rect(0, 0, s.w, s.h) }

type mockBinder struct {
	bound    bool
	bindErr  error
	binds    int
	unbinds  int
	restored []image.Rectangle
	rect     image.Rectangle
}

func (b *mockBinder) Bind(s interaction.Surface) (image.Rectangle, error) {
	b.binds++
	if b.bindErr != nil {
		return image.Rectangle{}, b.bindErr
	}
	w, h := s.Size()
	b.bound = true
	b.rect = image.Rect(10, 10, w-10, h-10)
	return b.rect, nil
}

func (b *mockBinder) Unbind() { b.unbinds++; b.bound = false }

func (b *mockBinder) Restore(r image.Rectangle) image.Rectangle {
	b.restored = append(b.restored, r)
	b.rect = r
	return r
}

func (b *mockBinder) Bound() bool           { return b.bound }
func (b *mockBinder) Rect() image.Rectangle { return b.rect }

type mockBackground struct {
	img  image.Image
	sets int
}

func (m *mockBackground) SetBackground(img image.Image) { m.sets++; m.img = img }

type mockView struct {
	ready     bool
	w, h      int
	cleared   int
	shown     []image.Image
	exported  []image.Image
	stateText []string
	status    []string
	statusErr bool
}

func (v *mockView) ResizeCanvas(w, h int)         { v.w, v.h, v.ready = w, h, true }
func (v *mockView) ClearCanvas()                  { v.cleared++; v.ready = false }
func (v *mockView) Surface() interaction.Surface  { return mockSurface{v.w, v.h} }
func (v *mockView) CanvasReady() bool             { return v.ready }
func (v *mockView) ShowCanvas(img image.Image)    { v.shown = append(v.shown, img) }
func (v *mockView) ShowExport(img image.Image)    { v.exported = append(v.exported, img) }
func (v *mockView) SetStateLabel(text string)     { v.stateText = append(v.stateText, text) }
func (v *mockView) SetStatus(text string, e bool) { v.status = append(v.status, text); v.statusErr = e }

type mockSelection struct {
	r  image.Rectangle
	ok bool
}

func (s mockSelection) Selection() (image.Rectangle, bool) { return s.r, s.ok }

type mockStore struct {
	saved []image.Image
	err   error
}

func (s *mockStore) Save(img image.Image) (string, error) {
	if s.err != nil {
		return "", s.err
	}
	s.saved = append(s.saved, img)
	return "/tmp/crop_1.png", nil
}

type mockPainter struct {
	err    error
	frames []interaction.Frame
}

func (p *mockPainter) Paint(f interaction.Frame) (*image.RGBA, error) {
	if p.err != nil {
		return nil, p.err
	}
	p.frames = append(p.frames, f)
	return image.NewRGBA(image.Rect(0, 0, f.Width, f.Height)), nil
}

type mockState struct {
	bound    bool
	state    interaction.State
	hovered  crop.Handle
	selected crop.Handle
	rect     image.Rectangle
}

func (s *mockState) Bound() bool              { return s.bound }
func (s *mockState) State() interaction.State { return s.state }
func (s *mockState) Hovered() crop.Handle     { return s.hovered }
func (s *mockState) Selected() crop.Handle    { return s.selected }
func (s *mockState) Rect() image.Rectangle    { return s.rect }

var errBoom = errors.New("boom")
