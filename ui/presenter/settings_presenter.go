package presenter

import (
	"fmt"
	"image"
	"log/slog"
	"time"

	"github.com/soocke/pixel-crop-go/config"
	"github.com/soocke/pixel-crop-go/domain/export"
	"github.com/soocke/pixel-crop-go/domain/interaction"
	"github.com/soocke/pixel-crop-go/ui/model"
)

// CropConfigurer accepts new interaction options.
type CropConfigurer interface {
	Configure(opts interaction.Options) (image.Rectangle, error)
}

// ExportSettings is the writable part of the crop store.
type ExportSettings interface {
	SetDirectory(dir string) error
	SetFormat(f export.Format, quality int)
}

// SettingsPresenter pushes an applied configuration into the running
// controller and crop store.
type SettingsPresenter struct {
	crop   CropConfigurer
	store  ExportSettings
	status *model.StatusModel
	logger *slog.Logger
	now    func() time.Time
}

func NewSettingsPresenter(crop CropConfigurer, store ExportSettings, status *model.StatusModel, logger *slog.Logger) *SettingsPresenter {
	return &SettingsPresenter{crop: crop, store: store, status: status, logger: logger, now: time.Now}
}

// Apply is the config panel's callback. A bound image is rebound, which
// resets the selection to the default inset.
func (p *SettingsPresenter) Apply(cfg *config.Config) {
	if p == nil || cfg == nil {
		return
	}
	if p.store != nil {
		p.store.SetFormat(cfg.Format(), cfg.ExportQuality)
		if err := p.store.SetDirectory(cfg.ExportDir); err != nil {
			p.fail(fmt.Errorf("export directory: %w", err))
			return
		}
	}
	if p.crop != nil {
		if _, err := p.crop.Configure(cfg.ControllerOptions()); err != nil {
			p.fail(fmt.Errorf("crop settings: %w", err))
			return
		}
	}
	if p.logger != nil {
		p.logger.Info("settings applied", "layout", cfg.Layout, "format", cfg.ExportFormat, "dir", cfg.ExportDir)
	}
	if p.status != nil {
		p.status.Set("Settings applied", false, p.now(), statusTTL)
	}
}

func (p *SettingsPresenter) fail(err error) {
	if p.logger != nil {
		p.logger.Error("apply settings failed", "error", err)
	}
	if p.status != nil {
		p.status.Set(fmt.Sprintf("Settings not applied: %v", err), true, p.now(), statusErrorTTL)
	}
}
