package view

import (
	"fmt"
	"image"

	"github.com/soocke/pixel-crop-go/ui/images"
	"github.com/soocke/pixel-crop-go/ui/theme"

	//lint:ignore ST1001 Dot import is intentional for concise Tk widget DSL builders.
	. "modernc.org/tk9.0"
)

const (
	maxPreviewW = 240
	maxPreviewH = 180
)

// ExportPreview shows a thumbnail of the last exported crop and its size.
type ExportPreview struct {
	label   *LabelWidget
	caption *TLabelWidget
	photo   *Img
}

// NewExportPreview creates the preview widgets inside parent at row.
func NewExportPreview(parent *FrameWidget, row int) *ExportPreview {
	photo := NewPhoto(Data(images.EncodePNG(images.Placeholder(maxPreviewW, maxPreviewH/2))))
	caption := TLabel(Txt("Last crop: <none>"), Style(theme.StyleCaptionLabel))
	Grid(caption, In(parent), Row(row), Column(0), Columnspan(2), Sticky("w"), Padx("0.4m"), Pady("0.2m"))
	label := Label(Image(photo), Borderwidth(1), Relief("sunken"))
	Grid(label, In(parent), Row(row+1), Column(0), Columnspan(2), Sticky("nw"), Padx("0.4m"), Pady("0.2m"))
	return &ExportPreview{label: label, caption: caption, photo: photo}
}

func (v *ExportPreview) ShowExport(img image.Image) {
	if v == nil || v.label == nil || img == nil {
		return
	}
	b := img.Bounds()
	v.setPhoto(images.Thumbnail(img, maxPreviewW, maxPreviewH))
	v.caption.Configure(Txt(fmt.Sprintf("Last crop: %dx%d", b.Dx(), b.Dy())))
}

func (v *ExportPreview) Reset() {
	if v == nil || v.label == nil {
		return
	}
	v.setPhoto(images.Placeholder(maxPreviewW, maxPreviewH/2))
	v.caption.Configure(Txt("Last crop: <none>"))
}

func (v *ExportPreview) setPhoto(img image.Image) {
	if v.photo != nil {
		v.photo.Delete()
	}
	v.photo = NewPhoto(Data(images.EncodePNG(img)))
	v.label.Configure(Image(v.photo))
}
