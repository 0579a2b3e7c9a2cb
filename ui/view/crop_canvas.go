package view

import (
	"image"

	"github.com/soocke/pixel-crop-go/domain/interaction"
	"github.com/soocke/pixel-crop-go/ui/images"
	"github.com/soocke/pixel-crop-go/ui/theme"

	//lint:ignore ST1001 Dot import is intentional for concise Tk widget DSL builders.
	. "modernc.org/tk9.0"
)

// PointerHandler receives canvas pointer events in canvas coordinates.
type PointerHandler interface {
	PointerDown(p image.Point)
	PointerMove(p image.Point)
	PointerUp(p image.Point)
	PointerLeave()
}

// CropCanvas is the label that shows painted crop frames. It implements
// interaction.Surface: Size is the bound image's native size and Bounds the
// displayed box in label coordinates, which is smaller when the image is
// scaled down to fit the window.
type CropCanvas struct {
	label  *LabelWidget
	photo  *Img
	w, h   int
	shown  image.Point
	maxW   int
	maxH   int
	active bool
}

var _ interaction.Surface = (*CropCanvas)(nil)

const placeholderW, placeholderH = 480, 320

// NewCropCanvas creates the canvas label and grids it at row/column.
// Images larger than maxW x maxH are displayed scaled down.
func NewCropCanvas(row, column, maxW, maxH int) *CropCanvas {
	photo := NewPhoto(Data(images.EncodePNG(images.Placeholder(placeholderW, placeholderH))))
	label := Label(Image(photo), Background(theme.CurrentPalette().Canvas), Borderwidth(0), Highlightthickness(0), Padx(0), Pady(0), Cursor("crosshair"))
	Grid(label, Row(row), Column(column), Sticky("nw"), Padx("0.4m"), Pady("0.4m"))
	return &CropCanvas{label: label, photo: photo, maxW: maxW, maxH: maxH}
}

// BindPointer routes mouse events on the label to h. Motion with the button
// held arrives as <Motion> as well.
func (c *CropCanvas) BindPointer(h PointerHandler) {
	if c == nil || c.label == nil || h == nil {
		return
	}
	Bind(c.label, "<ButtonPress-1>", Command(func(e *Event) { h.PointerDown(image.Pt(e.X, e.Y)) }))
	Bind(c.label, "<Motion>", Command(func(e *Event) { h.PointerMove(image.Pt(e.X, e.Y)) }))
	Bind(c.label, "<ButtonRelease-1>", Command(func(e *Event) { h.PointerUp(image.Pt(e.X, e.Y)) }))
	Bind(c.label, "<Leave>", Command(func() { h.PointerLeave() }))
}

func (c *CropCanvas) Size() (int, int) { return c.w, c.h }

func (c *CropCanvas) Bounds() image.Rectangle {
	return image.Rectangle{Max: c.shown}
}

// ResizeCanvas prepares the canvas for a w x h image.
func (c *CropCanvas) ResizeCanvas(w, h int) {
	if c == nil {
		return
	}
	c.w, c.h = w, h
	sw, sh := images.FitSize(w, h, c.maxW, c.maxH)
	c.shown = image.Pt(sw, sh)
	c.active = w > 0 && h > 0
}

func (c *CropCanvas) CanvasReady() bool { return c != nil && c.label != nil && c.active }

// ShowCanvas displays a painted frame, scaled to the displayed box.
func (c *CropCanvas) ShowCanvas(img image.Image) {
	if c == nil || c.label == nil || img == nil {
		return
	}
	c.setPhoto(images.ScaleToFit(img, c.shown.X, c.shown.Y))
}

// ClearCanvas blanks the canvas and detaches it from the image.
func (c *CropCanvas) ClearCanvas() {
	if c == nil {
		return
	}
	c.w, c.h, c.shown, c.active = 0, 0, image.Point{}, false
	c.setPhoto(images.Placeholder(placeholderW, placeholderH))
}

// setPhoto replaces the label photo, deleting the previous one so obsolete
// pixel data is not retained by Tk.
func (c *CropCanvas) setPhoto(img image.Image) {
	if c.photo != nil {
		c.photo.Delete()
	}
	c.photo = NewPhoto(Data(images.EncodePNG(img)))
	c.label.Configure(Image(c.photo))
}
