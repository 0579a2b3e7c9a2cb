package presenter

import (
	"fmt"
	"image"
	"log/slog"
	"time"

	"github.com/soocke/pixel-crop-go/domain/export"
	"github.com/soocke/pixel-crop-go/ui/model"
)

// RegionSource exposes the current crop rectangle.
type RegionSource interface {
	Bound() bool
	Rect() image.Rectangle
}

// CropStore persists exported pixels and returns where they went.
type CropStore interface {
	Save(img image.Image) (string, error)
}

// PreviewView shows the most recent export.
type PreviewView interface {
	ShowExport(img image.Image)
}

// ExportPresenter runs the explicit crop command.
type ExportPresenter struct {
	images  *model.ImageModel
	region  RegionSource
	store   CropStore
	view    PreviewView
	status  *model.StatusModel
	persist func(image.Rectangle)
	logger  *slog.Logger
	now     func() time.Time
}

// NewExportPresenter constructs the presenter. persist may be nil; when set
// it receives the exported rectangle.
func NewExportPresenter(images *model.ImageModel, region RegionSource, store CropStore, view PreviewView, status *model.StatusModel, persist func(image.Rectangle), logger *slog.Logger) *ExportPresenter {
	return &ExportPresenter{
		images:  images,
		region:  region,
		store:   store,
		view:    view,
		status:  status,
		persist: persist,
		logger:  logger,
		now:     time.Now,
	}
}

// Crop extracts the selected region, saves it and previews it.
func (p *ExportPresenter) Crop() {
	if p == nil || p.images == nil || p.region == nil || p.store == nil {
		return
	}
	now := p.now()
	if !p.images.HasImage() || !p.region.Bound() {
		p.status.Set("No image to crop", true, now, statusTTL)
		return
	}
	r := p.region.Rect()
	out, err := export.Extract(p.images.Image(), r)
	if err != nil {
		p.fail("extract", r, err, now)
		return
	}
	path, err := p.store.Save(out)
	if err != nil {
		p.fail("save", r, err, now)
		return
	}
	if p.view != nil {
		p.view.ShowExport(out)
	}
	if p.persist != nil {
		p.persist(r)
	}
	p.status.Set(fmt.Sprintf("Saved %dx%d crop to %s", r.Dx(), r.Dy(), path), false, now, statusTTL)
	if p.logger != nil {
		p.logger.Info("crop exported", "source", p.images.Name(), "rect", r.String(), "path", path)
	}
}

func (p *ExportPresenter) fail(step string, r image.Rectangle, err error, now time.Time) {
	p.status.Set(fmt.Sprintf("Crop failed: %v", err), true, now, statusErrorTTL)
	if p.logger != nil {
		p.logger.Error("crop "+step, "rect", r.String(), "error", err)
	}
}
