package engine

import "github.com/vovakirdan/dropcatch/internal/core"

// poll checks every uncaught live drop against the slider.
// It runs on a fixed interval for the controller's whole lifetime.
func (c *Controller) poll() {
	if c.session.State != StateRunning || len(c.live) == 0 {
		return
	}

	now := c.sched.Now()
	catcher := c.slider.Box(c.field.Height)

	// Captures can end the round and clear the live set, so walk a snapshot.
	snapshot := append([]*Drop(nil), c.live...)
	for _, d := range snapshot {
		if c.session.State != StateRunning {
			break
		}
		if d.Caught {
			continue
		}
		if d.sweep(now, c.field.Height).Catches(catcher) {
			c.capture(d, catcher)
		}
	}
}

// capture marks a drop caught, scores it and schedules its removal.
// A drop that swept past the catcher's top is parked resting on it.
func (c *Controller) capture(d *Drop, catcher core.Box) {
	now := c.sched.Now()
	d.CaughtY = min(d.Box(now, c.field.Height).Y, catcher.Top()-d.H)
	d.Caught = true
	d.CaughtAt = now

	id := d.ID
	if splash := c.rules.SplashDuration(); splash > 0 {
		d.splashTimer = c.sched.After(splash, func() { c.remove(id) })
	}
	d.fallbackTimer = c.sched.After(c.rules.RemovalFallback(), func() { c.remove(id) })

	c.session.Score++
	c.emit(CaughtEvent{Drop: *d, Score: c.session.Score})

	if c.rules.WinTarget > 0 && c.session.Score >= c.rules.WinTarget {
		c.End("")
	}
}
