// Package drops adapts the drop catcher engine to the terminal platform.
// It registers one game per rule variant, maps input frames onto the
// engine's controller and slider, and advances the engine's clock by one
// tick per Step.
package drops

import (
	"math/rand"

	"github.com/vovakirdan/dropcatch/internal/audio"
	"github.com/vovakirdan/dropcatch/internal/config"
	"github.com/vovakirdan/dropcatch/internal/core"
	"github.com/vovakirdan/dropcatch/internal/games/drops/engine"
	"github.com/vovakirdan/dropcatch/internal/registry"
)

// HUD takes the top two rows; the rest is the play field.
const hudRows = 2

// Minimum playable terminal size.
const (
	minScreenW = 30
	minScreenH = 12
)

// nudgeStep is how far one arrow key press moves the slider.
const nudgeStep = 2.0

// Settings shared by every game created in this process, set via CLI flags.
var (
	configPath string
	difficulty string
	newPlayer  = func() audio.Player { return &audio.Silent{} }
)

// SetConfigPath sets a custom rules file for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficulty preselects a difficulty in the start prompt.
func SetDifficulty(name string) {
	difficulty = name
}

// SetPlayerFactory sets how new games obtain their sound player.
func SetPlayerFactory(f func() audio.Player) {
	if f == nil {
		f = func() audio.Player { return &audio.Silent{} }
	}
	newPlayer = f
}

// Game implements registry.Game for one rule variant.
type Game struct {
	variant string
	rules   config.RuleSet

	runtime core.RuntimeConfig
	sched   *core.Scheduler
	ctrl    *engine.Controller
	sound   audio.Player

	paused bool
	cursor int // Selected difficulty in the start prompt
	tick   uint64

	tooSmall bool
}

// New creates a game for a variant ("classic" or "timed").
func New(variant string) *Game {
	rules, _ := config.DefaultRules().Variant(variant)
	return &Game{
		variant: variant,
		rules:   rules,
		sound:   newPlayer(),
	}
}

// ID returns the variant ID.
func (g *Game) ID() string {
	return g.variant
}

// Title returns the display name.
func (g *Game) Title() string {
	if g.variant == config.VariantTimed {
		return g.rules.Title + " (Timed)"
	}
	return g.rules.Title
}

// Reset loads the rules and creates a fresh controller in the Idle state.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime
	g.runtime.TickRate = runtime.Rate()

	if file, err := config.LoadRules(configPath); err == nil {
		if r, ok := file.Variant(g.variant); ok {
			g.rules = r
		}
	}

	if g.ctrl != nil {
		g.ctrl.Close()
	}
	g.sched = core.NewScheduler()
	g.ctrl = engine.NewController(g.rules, g.sched, rand.New(rand.NewSource(runtime.Seed)), g.field())

	g.paused = false
	g.tick = 0
	g.cursor = g.difficultyIndex(difficulty)
	g.checkSize()
}

// Resize adapts the play field to a new terminal size without losing the round.
func (g *Game) Resize(w, h int) {
	g.runtime.ScreenW = w
	g.runtime.ScreenH = h
	g.checkSize()
	if g.ctrl != nil {
		g.ctrl.Resize(g.field())
	}
}

func (g *Game) field() engine.Field {
	return engine.Field{
		Width:  float64(g.runtime.ScreenW),
		Height: float64(max(g.runtime.ScreenH-hudRows, 0)),
	}
}

func (g *Game) checkSize() {
	g.tooSmall = g.runtime.ScreenW < minScreenW || g.runtime.ScreenH < minScreenH
}

// difficultyIndex returns the prompt position of a difficulty name,
// falling back to the rule set's default.
func (g *Game) difficultyIndex(name string) int {
	names := g.rules.DifficultyNames()
	for _, want := range []string{name, g.rules.DefaultDifficulty} {
		for i, n := range names {
			if n == want {
				return i
			}
		}
	}
	return 0
}

// Step applies one frame of input and advances the clock by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.tooSmall {
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionMute) {
		g.sound.SetMuted(!g.sound.Muted())
	}

	// The slider stays put while paused
	if !g.paused {
		g.applyPointer(in.Pointer)
		if in.Has(core.ActionLeft) {
			g.ctrl.Slider().Nudge(-nudgeStep)
		}
		if in.Has(core.ActionRight) {
			g.ctrl.Slider().Nudge(nudgeStep)
		}
	}

	switch g.ctrl.Session().State {
	case engine.StateIdle:
		g.handlePrompt(in)
	case engine.StateRunning:
		if in.Has(core.ActionPause) {
			g.paused = !g.paused
		}
	case engine.StateEnded:
		if in.Has(core.ActionConfirm) || in.Has(core.ActionRestart) {
			g.ctrl.PlayAgain()
		}
	}

	if !g.paused {
		g.tick++
		g.sched.Advance(g.runtime.TickInterval())
	}
	g.handleEvents()

	return core.StepResult{State: g.State()}
}

// handlePrompt moves the difficulty cursor and starts a round on confirm.
func (g *Game) handlePrompt(in core.InputFrame) {
	n := len(g.rules.DifficultyNames())
	if in.Has(core.ActionUp) && g.cursor > 0 {
		g.cursor--
	}
	if in.Has(core.ActionDown) && g.cursor < n-1 {
		g.cursor++
	}
	if in.Has(core.ActionConfirm) {
		choice := ""
		if n > 0 {
			choice = g.rules.DifficultyNames()[g.cursor]
		}
		g.ctrl.Start(choice)
		g.paused = false
	}
}

// applyPointer routes pointer events to the slider. Columns are converted
// to the cell center so a click on a cell centers the slider on it.
func (g *Game) applyPointer(events []core.PointerEvent) {
	s := g.ctrl.Slider()
	for _, ev := range events {
		x := float64(ev.X) + 0.5
		switch ev.Kind {
		case core.PointerMove:
			s.MouseMove(x)
		case core.PointerTouchStart:
			s.TouchStart(x)
		case core.PointerTouchMove:
			s.TouchMove(x)
		case core.PointerTouchEnd:
			s.TouchEnd()
		}
	}
}

// handleEvents plays sounds for engine events. Caught drops stay in the
// live set until their splash ends, so the renderer draws splashes directly.
func (g *Game) handleEvents() {
	for _, e := range g.ctrl.Events() {
		if _, ok := e.(engine.CaughtEvent); ok {
			g.sound.Play(audio.CueCatch)
		}
	}
}

// State returns the platform-facing state.
func (g *Game) State() core.GameState {
	if g.ctrl == nil {
		return core.GameState{}
	}
	s := g.ctrl.Session()
	return core.GameState{
		Score:    s.Score,
		GameOver: s.State == engine.StateEnded,
		Paused:   g.paused,
		Mode:     s.Difficulty,
		Won:      s.State == engine.StateEnded && s.Won,
	}
}

// Session exposes the engine's round state.
func (g *Game) Session() engine.Session {
	return g.ctrl.Session()
}

// Muted reports whether sound is off.
func (g *Game) Muted() bool {
	return g.sound.Muted()
}

func init() {
	registry.Register(config.VariantClassic, func() registry.Game {
		return New(config.VariantClassic)
	})
	registry.Register(config.VariantTimed, func() registry.Game {
		return New(config.VariantTimed)
	})
}
