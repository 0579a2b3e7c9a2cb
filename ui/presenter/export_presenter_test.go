package presenter

import (
	"image"
	"image/color"
	"strings"
	"testing"
	"time"

	"github.com/soocke/pixel-crop-go/ui/model"
)

func exportFixture(t *testing.T) (*model.ImageModel, *mockBinder, *mockStore, *mockView, *model.StatusModel) {
	t.Helper()
	img := image.NewNRGBA(image.Rect(0, 0, 4, 4))
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			img.SetNRGBA(x, y, color.NRGBA{R: uint8(x * 60), G: uint8(y * 60), A: 255})
		}
	}
	images := model.NewImageModel()
	images.SetImage("grid.png", img)
	return images, &mockBinder{bound: true, rect: image.Rect(1, 1, 3, 3)}, &mockStore{}, &mockView{}, model.NewStatusModel()
}

func TestExportPresenter_CropSavesAndPreviews(t *testing.T) {
	images, region, store, view, status := exportFixture(t)
	var persisted []image.Rectangle
	p := NewExportPresenter(images, region, store, view, status, func(r image.Rectangle) { persisted = append(persisted, r) }, discardLogger())
	p.Crop()

	if len(store.saved) != 1 || len(view.exported) != 1 {
		t.Fatalf("expected one save and preview, got saved=%d exported=%d", len(store.saved), len(view.exported))
	}
	out := store.saved[0]
	if out.Bounds() != image.Rect(0, 0, 2, 2) {
		t.Fatalf("unexpected export bounds %v", out.Bounds())
	}
	if got, want := out.At(0, 0), images.Image().At(1, 1); got != want {
		t.Fatalf("export pixel mismatch: %v vs %v", got, want)
	}
	if len(persisted) != 1 || persisted[0] != image.Rect(1, 1, 3, 3) {
		t.Fatalf("selection not persisted: %v", persisted)
	}
	if text, isErr := status.Values(); isErr || !strings.Contains(text, "/tmp/crop_1.png") {
		t.Fatalf("unexpected status %q", text)
	}
}

func TestExportPresenter_NoImage(t *testing.T) {
	_, region, store, view, status := exportFixture(t)
	p := NewExportPresenter(model.NewImageModel(), region, store, view, status, nil, nil)
	p.Crop()
	if len(store.saved) != 0 {
		t.Fatalf("nothing should be saved without an image")
	}
	if text, isErr := status.Values(); !isErr || text != "No image to crop" {
		t.Fatalf("unexpected status %q err=%v", text, isErr)
	}
}

func TestExportPresenter_SaveFailure(t *testing.T) {
	images, region, store, view, status := exportFixture(t)
	store.err = errBoom
	p := NewExportPresenter(images, region, store, view, status, nil, discardLogger())
	p.now = func() time.Time { return time.Unix(0, 0) }
	p.Crop()
	if len(view.exported) != 0 {
		t.Fatalf("failed save must not preview")
	}
	if text, isErr := status.Values(); !isErr || !strings.Contains(text, "boom") {
		t.Fatalf("expected failure status, got %q", text)
	}
}

func TestExportPresenter_OutOfBoundsRegion(t *testing.T) {
	images, region, store, view, status := exportFixture(t)
	region.rect = image.Rect(2, 2, 6, 6)
	p := NewExportPresenter(images, region, store, view, status, nil, nil)
	p.Crop()
	if len(store.saved) != 0 {
		t.Fatalf("out of bounds region must not be saved")
	}
	if _, isErr := status.Values(); !isErr {
		t.Fatalf("expected error status")
	}
}
