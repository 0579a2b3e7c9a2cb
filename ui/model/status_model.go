package model

import (
	"time"
)

// StatusModel holds a transient status message that clears itself once its
// time to live has passed. A zero ttl keeps the message until replaced.
// The zero value is ready to use.
type StatusModel struct {
	text    string
	isError bool
	expires time.Time
	dirty   bool
}

func NewStatusModel() *StatusModel { return &StatusModel{} }

// Set replaces the message.
func (m *StatusModel) Set(text string, isError bool, now time.Time, ttl time.Duration) {
	if m == nil {
		return
	}
	m.text = text
	m.isError = isError
	m.expires = time.Time{}
	if ttl > 0 {
		m.expires = now.Add(ttl)
	}
	m.dirty = true
}

// OnTick expires the message and reports whether the visible text changed
// since the previous call.
func (m *StatusModel) OnTick(now time.Time) bool {
	if m == nil {
		return false
	}
	if m.text != "" && !m.expires.IsZero() && !now.Before(m.expires) {
		m.text = ""
		m.isError = false
		m.expires = time.Time{}
		m.dirty = true
	}
	changed := m.dirty
	m.dirty = false
	return changed
}

// Values returns the current message and whether it reports an error.
func (m *StatusModel) Values() (text string, isError bool) {
	if m == nil {
		return "", false
	}
	return m.text, m.isError
}
