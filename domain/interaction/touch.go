package interaction

// Touch input follows a single contact: the first touch of a gesture drives
// the pointer transitions and every other contact is ignored.

// TouchStart begins tracking the first contact when no contact is tracked.
func (c *Controller) TouchStart(touches []Touch) {
	if !c.Bound() || len(touches) == 0 || c.touching {
		return
	}
	c.PointerDown(touches[0].Point)
	c.touching = true
	c.touchID = touches[0].ID
}

// TouchMove forwards the tracked contact's position.
func (c *Controller) TouchMove(touches []Touch) {
	if !c.Bound() || !c.touching {
		return
	}
	for _, t := range touches {
		if t.ID == c.touchID {
			c.PointerMove(t.Point)
			return
		}
	}
}

// TouchEnd releases when the tracked contact is among the ended ones.
func (c *Controller) TouchEnd(changed []Touch) {
	if !c.Bound() || !c.touching {
		return
	}
	for _, t := range changed {
		if t.ID == c.touchID {
			c.PointerUp(t.Point)
			return
		}
	}
}

// TouchCancel always releases.
func (c *Controller) TouchCancel() {
	if !c.Bound() {
		return
	}
	c.PointerLeave()
}
