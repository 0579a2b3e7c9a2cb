package presenter

import "time"

// Loop aggregates feature presenters and drives periodic updates.
//
// It calls Tick on the sub-presenters and invokes a scheduler callback.
// The zero value is usable (methods are nil-safe).
type Loop struct {
	Image    *ImagePresenter
	State    *StatePresenter
	Status   *StatusPresenter
	Schedule func()
}

func NewLoop(image *ImagePresenter, state *StatePresenter, status *StatusPresenter, schedule func()) *Loop {
	return &Loop{Image: image, State: state, Status: status, Schedule: schedule}
}

func (l *Loop) Tick() {
	if l == nil {
		return
	}
	now := time.Now()
	// Apply finished loads first so the state and status reflect them.
	if l.Image != nil {
		l.Image.Tick(now)
	}
	if l.State != nil {
		l.State.Tick(now)
	}
	if l.Status != nil {
		l.Status.Tick(now)
	}
	if l.Schedule != nil {
		l.Schedule()
	}
}
