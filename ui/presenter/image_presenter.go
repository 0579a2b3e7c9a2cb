package presenter

import (
	"errors"
	"fmt"
	"image"
	"log/slog"
	"time"

	"github.com/soocke/pixel-crop-go/domain/crop"
	"github.com/soocke/pixel-crop-go/domain/imagesource"
	"github.com/soocke/pixel-crop-go/domain/interaction"
	"github.com/soocke/pixel-crop-go/ui/model"
)

// ImageLoader decodes sources off the UI thread.
type ImageLoader interface {
	Request(src imagesource.Source) uint64
	Poll() (imagesource.Result, bool)
	Close()
}

// CropBinder is the part of the interaction controller that follows the
// bound image.
type CropBinder interface {
	Bind(s interaction.Surface) (image.Rectangle, error)
	Unbind()
	Restore(r image.Rectangle) image.Rectangle
}

// BackgroundSetter receives the image painted under the overlay.
type BackgroundSetter interface {
	SetBackground(img image.Image)
}

// ImageView owns the crop canvas widget.
type ImageView interface {
	ResizeCanvas(w, h int)
	ClearCanvas()
	Surface() interaction.Surface
}

// SelectionProvider returns a persisted crop rectangle, if any.
type SelectionProvider interface {
	Selection() (image.Rectangle, bool)
}

// ImagePresenter loads images and binds them to the crop canvas. Loading
// runs in the loader's goroutine; results are applied on Tick from the UI
// thread.
type ImagePresenter struct {
	loader    ImageLoader
	binder    CropBinder
	bg        BackgroundSetter
	view      ImageView
	images    *model.ImageModel
	status    *model.StatusModel
	selection SelectionProvider
	logger    *slog.Logger
	now       func() time.Time
}

func NewImagePresenter(loader ImageLoader, binder CropBinder, bg BackgroundSetter, view ImageView, images *model.ImageModel, status *model.StatusModel, selection SelectionProvider, logger *slog.Logger) *ImagePresenter {
	return &ImagePresenter{
		loader:    loader,
		binder:    binder,
		bg:        bg,
		view:      view,
		images:    images,
		status:    status,
		selection: selection,
		logger:    logger,
		now:       time.Now,
	}
}

func (p *ImagePresenter) ready() bool {
	return p != nil && p.loader != nil && p.binder != nil && p.bg != nil && p.view != nil && p.images != nil
}

// Open starts loading src. A load still in flight is superseded.
func (p *ImagePresenter) Open(src imagesource.Source) {
	if !p.ready() || src == nil {
		return
	}
	p.images.SetLoading(true)
	p.loader.Request(src)
	p.status.Set(fmt.Sprintf("Loading %s...", src.Name()), false, p.now(), 0)
}

// Clear unbinds the image and blanks the canvas.
func (p *ImagePresenter) Clear() {
	if !p.ready() {
		return
	}
	p.loader.Close()
	p.binder.Unbind()
	p.bg.SetBackground(nil)
	p.images.Clear()
	p.view.ClearCanvas()
	p.status.Set("Cleared", false, p.now(), statusTTL)
	if p.logger != nil {
		p.logger.Debug("image cleared")
	}
}

// Tick applies a finished load, if any.
func (p *ImagePresenter) Tick(now time.Time) {
	if !p.ready() {
		return
	}
	res, ok := p.loader.Poll()
	if !ok {
		return
	}
	p.apply(res, now)
}

func (p *ImagePresenter) apply(res imagesource.Result, now time.Time) {
	if res.Err != nil {
		p.images.SetLoading(false)
		p.status.Set(fmt.Sprintf("Load failed: %v", res.Err), true, now, statusErrorTTL)
		if p.logger != nil {
			p.logger.Error("image load", "source", res.Name, "error", res.Err)
		}
		return
	}
	size := res.Image.Bounds().Size()
	p.bg.SetBackground(res.Image)
	p.view.ResizeCanvas(size.X, size.Y)
	rect, err := p.binder.Bind(p.view.Surface())
	if err != nil {
		p.bg.SetBackground(nil)
		p.images.Clear()
		p.view.ClearCanvas()
		msg := fmt.Sprintf("Cannot crop %s: %v", res.Name, err)
		if errors.Is(err, crop.ErrSurfaceTooSmall) {
			msg = fmt.Sprintf("%s is too small to crop (%dx%d)", res.Name, size.X, size.Y)
		}
		p.status.Set(msg, true, now, statusErrorTTL)
		if p.logger != nil {
			p.logger.Error("bind image", "source", res.Name, "error", err)
		}
		return
	}
	p.images.SetImage(res.Name, res.Image)
	if p.selection != nil {
		if sel, ok := p.selection.Selection(); ok && sel.In(image.Rect(0, 0, size.X, size.Y)) {
			rect = p.binder.Restore(sel)
		}
	}
	p.status.Set(fmt.Sprintf("Loaded %s (%dx%d)", res.Name, size.X, size.Y), false, now, statusTTL)
	if p.logger != nil {
		p.logger.Info("image loaded",
			"source", res.Name,
			"width", size.X,
			"height", size.Y,
			"rect", rect.String(),
			"duration", res.Duration,
		)
	}
}
