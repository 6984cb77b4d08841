package engine

import (
	"time"

	"github.com/vovakirdan/dropcatch/internal/core"
)

// DropID identifies a drop within a controller.
type DropID uint64

// Drop is the data record of one falling drop, independent of how it is drawn.
type Drop struct {
	ID           DropID
	X            float64 // Left edge in field units
	W, H         float64
	SpawnedAt    time.Duration
	FallDuration time.Duration // Copied from the session at spawn time
	Caught       bool
	CaughtAt     time.Duration
	CaughtY      float64 // Top edge when caught; caught drops stop falling

	sweptY        float64 // Top edge at the last collision check
	fallTimer     core.TimerID
	splashTimer   core.TimerID
	fallbackTimer core.TimerID
}

// Progress returns how far through its fall the drop is at time now, in [0, 1].
func (d *Drop) Progress(now time.Duration) float64 {
	if d.FallDuration <= 0 {
		return 1
	}
	p := float64(now-d.SpawnedAt) / float64(d.FallDuration)
	return core.ClampF(p, 0, 1)
}

// Box returns the drop's bounding box at time now.
// A drop enters fully above the field and finishes fully below it, so it
// travels fieldHeight + H over its fall duration.
func (d *Drop) Box(now time.Duration, fieldHeight float64) core.Box {
	y := d.CaughtY
	if !d.Caught {
		y = -d.H + d.Progress(now)*(fieldHeight+d.H)
	}
	return core.Box{X: d.X, Y: y, W: d.W, H: d.H}
}

// sweep returns the box covering everything the drop passed through since
// the previous sweep. Tall fields move a drop further than its own height
// between checks, so testing only the current box can step over the slider.
func (d *Drop) sweep(now time.Duration, fieldHeight float64) core.Box {
	cur := d.Box(now, fieldHeight)
	from := min(d.sweptY, cur.Y)
	d.sweptY = cur.Y
	return core.Box{X: d.X, Y: from, W: d.W, H: cur.Y - from + d.H}
}

// spawn creates one drop and arms its fall timer.
func (c *Controller) spawn() {
	if c.session.State != StateRunning {
		return
	}

	scale := c.rules.Drop.MinScale
	if c.rules.Drop.MaxScale > c.rules.Drop.MinScale {
		scale += c.rng.Float64() * (c.rules.Drop.MaxScale - c.rules.Drop.MinScale)
	}
	w := c.rules.Drop.Width * scale
	h := c.rules.Drop.Height * scale

	span := max(c.field.Width-w, 0)

	c.nextID++
	d := &Drop{
		ID:           c.nextID,
		X:            c.rng.Float64() * span,
		W:            w,
		H:            h,
		SpawnedAt:    c.sched.Now(),
		FallDuration: c.session.Timing.FallDuration(),
		sweptY:       -h,
	}
	d.fallTimer = c.sched.After(d.FallDuration, func() { c.fallComplete(d) })

	c.live = append(c.live, d)
	c.emit(SpawnedEvent{Drop: *d})
}

// fallComplete handles a drop reaching the bottom of the field. The stretch
// since the last poll is checked once more before the drop counts as missed.
func (c *Controller) fallComplete(d *Drop) {
	if d.Caught {
		return
	}

	if c.session.State == StateRunning {
		catcher := c.slider.Box(c.field.Height)
		if d.sweep(c.sched.Now(), c.field.Height).Catches(catcher) {
			c.capture(d, catcher)
			return
		}

		if c.rules.MaxStrikes > 0 {
			c.session.Strikes++
			c.emit(MissedEvent{
				Drop:      *d,
				Strikes:   c.session.Strikes,
				Indicator: c.session.Strikes <= c.rules.MaxStrikes,
			})
			if c.session.Strikes > c.rules.MaxStrikes {
				c.End(c.rules.Messages.StrikeOut)
			}
		} else {
			c.emit(MissedEvent{Drop: *d})
		}
	}

	c.remove(d.ID)
}

// remove deletes a drop from the live set and cancels its timers.
// Returns false if the drop was already gone.
func (c *Controller) remove(id DropID) bool {
	for i, d := range c.live {
		if d.ID != id {
			continue
		}
		c.sched.Cancel(d.fallTimer)
		c.sched.Cancel(d.splashTimer)
		c.sched.Cancel(d.fallbackTimer)
		c.live = append(c.live[:i], c.live[i+1:]...)
		c.emit(RemovedEvent{ID: id, Caught: d.Caught})
		return true
	}
	return false
}
