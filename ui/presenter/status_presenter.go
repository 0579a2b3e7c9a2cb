package presenter

import (
	"time"

	"github.com/soocke/pixel-crop-go/ui/model"
)

const (
	statusTTL      = 4 * time.Second
	statusErrorTTL = 10 * time.Second
)

// StatusView displays the transient status line.
type StatusView interface {
	SetStatus(text string, isError bool)
}

// StatusPresenter pushes status model changes to the view.
type StatusPresenter struct {
	status *model.StatusModel
	view   StatusView
}

func NewStatusPresenter(status *model.StatusModel, view StatusView) *StatusPresenter {
	return &StatusPresenter{status: status, view: view}
}

// Tick expires the message and refreshes the view when it changed.
func (p *StatusPresenter) Tick(now time.Time) {
	if p == nil || p.status == nil || p.view == nil {
		return
	}
	if !p.status.OnTick(now) {
		return
	}
	p.view.SetStatus(p.status.Values())
}
