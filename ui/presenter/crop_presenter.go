package presenter

import (
	"image"
	"log/slog"

	"github.com/soocke/pixel-crop-go/domain/interaction"
)

// FramePainter rasterises a frame over the current background.
type FramePainter interface {
	Paint(f interaction.Frame) (*image.RGBA, error)
}

// CanvasView shows painted frames. CanvasReady is false until the canvas
// widget exists and has been sized for an image.
type CanvasView interface {
	CanvasReady() bool
	ShowCanvas(img image.Image)
}

// CropPresenter is the controller's render sink: it paints each frame and
// hands the result to the canvas.
type CropPresenter struct {
	painter FramePainter
	view    CanvasView
	logger  *slog.Logger
}

var _ interaction.RenderSink = (*CropPresenter)(nil)

func NewCropPresenter(painter FramePainter, view CanvasView, logger *slog.Logger) *CropPresenter {
	return &CropPresenter{painter: painter, view: view, logger: logger}
}

// Render implements interaction.RenderSink.
func (p *CropPresenter) Render(f interaction.Frame) error {
	if p == nil || p.painter == nil || p.view == nil || !p.view.CanvasReady() {
		return interaction.ErrNoContext
	}
	img, err := p.painter.Paint(f)
	if err != nil {
		return err
	}
	p.view.ShowCanvas(img)
	return nil
}
