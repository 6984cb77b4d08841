package engine

import (
	"time"

	"github.com/vovakirdan/dropcatch/internal/config"
	"github.com/vovakirdan/dropcatch/internal/core"
)

// Rand is the randomness the controller needs. *math/rand.Rand satisfies it.
type Rand interface {
	Float64() float64
	Intn(n int) int
}

// Field is the size of the play area in field units.
type Field struct {
	Width  float64
	Height float64
}

// Controller runs rounds of one rule set against a scheduler.
type Controller struct {
	rules config.RuleSet
	sched *core.Scheduler
	rng   Rand
	field Field

	session Session
	slider  *Slider
	live    []*Drop
	nextID  DropID
	events  []Event

	pollTimer      core.TimerID
	spawnTimer     core.TimerID
	countdownTimer core.TimerID
}

// NewController creates an idle controller. The collision poll is registered
// immediately and stays active across rounds.
func NewController(rules config.RuleSet, sched *core.Scheduler, rng Rand, field Field) *Controller {
	c := &Controller{
		rules:  rules,
		sched:  sched,
		rng:    rng,
		field:  field,
		slider: NewSlider(0, field.Width, rules.Slider.Width, rules.Slider.Height),
	}
	c.session.Timing, c.session.Difficulty = rules.ResolveTiming("")
	c.pollTimer = sched.Every(rules.PollInterval(), c.poll)
	return c
}

// Start begins a round with the given difficulty choice. Unknown or empty
// choices fall back to the rule set's default. Returns false and does
// nothing if a round is already running.
func (c *Controller) Start(difficulty string) bool {
	if c.session.State == StateRunning {
		return false
	}

	c.clearDrops()

	timing, name := c.rules.ResolveTiming(difficulty)
	c.session = Session{
		State:         StateRunning,
		Timing:        timing,
		Difficulty:    name,
		TimeRemaining: c.rules.CountdownSeconds,
		StartedAt:     c.sched.Now(),
	}

	c.spawnTimer = c.sched.Every(timing.SpawnInterval(), c.spawn)
	if c.rules.CountdownSeconds > 0 {
		c.countdownTimer = c.sched.Every(time.Second, c.countdownTick)
	}

	c.emit(StartedEvent{Difficulty: name})
	return true
}

// End stops the running round. A non-empty reason is shown verbatim;
// otherwise a message is drawn from the win or lose pool by score.
// Calling End outside a running round does nothing.
func (c *Controller) End(reason string) {
	if c.session.State != StateRunning {
		return
	}

	c.sched.Cancel(c.spawnTimer)
	c.sched.Cancel(c.countdownTimer)
	c.spawnTimer, c.countdownTimer = 0, 0

	c.clearDrops()
	c.session.State = StateEnded

	if reason != "" {
		c.session.Message = reason
		c.session.Forced = true
	} else {
		c.session.Won = c.session.Score >= c.rules.WinThreshold
		pool := c.rules.Messages.Lose
		if c.session.Won {
			pool = c.rules.Messages.Win
		}
		c.session.Message = c.pick(pool)
	}

	c.emit(EndedEvent{
		Message: c.session.Message,
		Score:   c.session.Score,
		Won:     c.session.Won,
		Forced:  c.session.Forced,
	})
}

// PlayAgain leaves the end screen. Under the prompt policy the controller
// returns to Idle so a difficulty can be chosen; under the restart policy a
// new round starts immediately with the same difficulty.
// Returns false if no round has ended.
func (c *Controller) PlayAgain() bool {
	if c.session.State != StateEnded {
		return false
	}

	if c.rules.PlayAgain == config.PlayAgainRestart {
		c.session.State = StateIdle
		return c.Start(c.session.Difficulty)
	}

	c.session.State = StateIdle
	return true
}

// countdownTick decrements the remaining time and ends the round at zero.
func (c *Controller) countdownTick() {
	if c.session.State != StateRunning {
		return
	}
	c.session.TimeRemaining--
	c.emit(CountdownEvent{Remaining: c.session.TimeRemaining})
	if c.session.TimeRemaining <= 0 {
		c.End("")
	}
}

// Resize updates the play area. Drops keep their horizontal position and
// follow the new height; the slider is clamped to the new width.
func (c *Controller) Resize(field Field) {
	c.field = field
	c.slider.Resize(0, field.Width, c.rules.Slider.Width)
}

// Events drains and returns the queued events.
func (c *Controller) Events() []Event {
	out := c.events
	c.events = nil
	return out
}

// Session returns a copy of the current round's bookkeeping.
func (c *Controller) Session() Session {
	return c.session
}

// Drops returns copies of the live drops in spawn order.
func (c *Controller) Drops() []Drop {
	out := make([]Drop, len(c.live))
	for i, d := range c.live {
		out[i] = *d
	}
	return out
}

// Slider returns the controller's slider for input routing.
func (c *Controller) Slider() *Slider {
	return c.slider
}

// Rules returns the rule set in use.
func (c *Controller) Rules() config.RuleSet {
	return c.rules
}

// Field returns the current play area.
func (c *Controller) Field() Field {
	return c.field
}

// Now returns the scheduler time.
func (c *Controller) Now() time.Duration {
	return c.sched.Now()
}

// Close cancels every timer owned by the controller.
func (c *Controller) Close() {
	c.sched.Cancel(c.pollTimer)
	c.sched.Cancel(c.spawnTimer)
	c.sched.Cancel(c.countdownTimer)
	for _, d := range c.live {
		c.sched.Cancel(d.fallTimer)
		c.sched.Cancel(d.splashTimer)
		c.sched.Cancel(d.fallbackTimer)
	}
	c.live = nil
}

func (c *Controller) clearDrops() {
	for len(c.live) > 0 {
		c.remove(c.live[0].ID)
	}
}

func (c *Controller) pick(pool []string) string {
	if len(pool) == 0 {
		return ""
	}
	return pool[c.rng.Intn(len(pool))]
}

func (c *Controller) emit(e Event) {
	c.events = append(c.events, e)
}
