// Package config provides YAML-based rule loading for the drop catcher
// variants. Each variant is a RuleSet; the engine never hardcodes thresholds.
package config

import (
	"errors"
	"fmt"
	"time"
)

// Variant identifiers used by the registry, storage and CLI.
const (
	VariantClassic = "classic"
	VariantTimed   = "timed"
)

// PlayAgainMode selects what the play-again action does after a round ends.
type PlayAgainMode string

const (
	PlayAgainPrompt  PlayAgainMode = "prompt"  // Back to difficulty selection (Idle)
	PlayAgainRestart PlayAgainMode = "restart" // Start a new round immediately
)

// RulesFile is the top-level YAML document holding both variants.
type RulesFile struct {
	Classic RuleSet `yaml:"classic"`
	Timed   RuleSet `yaml:"timed"`
}

// Variant returns the rule set for a variant ID.
func (f RulesFile) Variant(id string) (RuleSet, bool) {
	switch id {
	case VariantClassic:
		return f.Classic, true
	case VariantTimed:
		return f.Timed, true
	default:
		return RuleSet{}, false
	}
}

// Timing is the pair of rates that define how hard a round is.
type Timing struct {
	FallSeconds float64 `yaml:"fall_seconds"` // How long one drop takes to cross the field
	SpawnMS     int     `yaml:"spawn_ms"`     // Interval between spawns
}

// FallDuration returns the fall time as a duration.
func (t Timing) FallDuration() time.Duration {
	return time.Duration(t.FallSeconds * float64(time.Second))
}

// SpawnInterval returns the spawn interval as a duration.
func (t Timing) SpawnInterval() time.Duration {
	return time.Duration(t.SpawnMS) * time.Millisecond
}

// Difficulty is a named timing preset.
type Difficulty struct {
	Name   string `yaml:"name"`
	Timing `yaml:",inline"`
}

// DropConfig defines drop dimensions in field units (terminal cells).
type DropConfig struct {
	Width    float64 `yaml:"width"`
	Height   float64 `yaml:"height"`
	MinScale float64 `yaml:"min_scale"` // Lower bound of the random size factor
	MaxScale float64 `yaml:"max_scale"` // Upper bound; equal bounds mean fixed size
}

// SliderConfig defines the catcher dimensions in field units.
type SliderConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// EffectsConfig holds the timing of the collision poll and capture effects.
type EffectsConfig struct {
	PollMS            int `yaml:"poll_ms"`
	SplashMS          int `yaml:"splash_ms"`
	RemovalFallbackMS int `yaml:"removal_fallback_ms"`
}

// MessagesConfig holds the end-of-round message pools.
type MessagesConfig struct {
	Win       []string `yaml:"win"`
	Lose      []string `yaml:"lose"`
	StrikeOut string   `yaml:"strike_out"` // Forced message when strikes exceed the cap
}

// RuleSet is one complete variant of the game.
type RuleSet struct {
	Title             string         `yaml:"title"`
	Difficulties      []Difficulty   `yaml:"difficulties"`       // Empty means Timing is fixed
	DefaultDifficulty string         `yaml:"default_difficulty"` // Fallback for unknown choices
	Timing            Timing         `yaml:"timing"`             // Used when Difficulties is empty
	WinTarget         int            `yaml:"win_target"`         // Score that ends the round at once, 0 = none
	WinThreshold      int            `yaml:"win_threshold"`      // Score needed for a win message
	MaxStrikes        int            `yaml:"max_strikes"`        // Misses allowed, 0 = misses ignored
	CountdownSeconds  int            `yaml:"countdown_seconds"`  // Round length, 0 = untimed
	PlayAgain         PlayAgainMode  `yaml:"play_again"`
	Drop              DropConfig     `yaml:"drop"`
	Slider            SliderConfig   `yaml:"slider"`
	Effects           EffectsConfig  `yaml:"effects"`
	Messages          MessagesConfig `yaml:"messages"`
}

// HasDifficulties reports whether the player chooses a difficulty before a round.
func (r RuleSet) HasDifficulties() bool {
	return len(r.Difficulties) > 0
}

// DifficultyNames returns difficulty names in declaration order.
func (r RuleSet) DifficultyNames() []string {
	names := make([]string, len(r.Difficulties))
	for i, d := range r.Difficulties {
		names[i] = d.Name
	}
	return names
}

// ResolveTiming maps a difficulty choice to its timing.
// Unknown or empty choices fall back to the default difficulty, then to the
// first declared one. Rule sets without difficulties always return Timing
// and an empty name.
func (r RuleSet) ResolveTiming(choice string) (Timing, string) {
	if !r.HasDifficulties() {
		return r.Timing, ""
	}
	if d, ok := r.difficulty(choice); ok {
		return d.Timing, d.Name
	}
	if d, ok := r.difficulty(r.DefaultDifficulty); ok {
		return d.Timing, d.Name
	}
	return r.Difficulties[0].Timing, r.Difficulties[0].Name
}

func (r RuleSet) difficulty(name string) (Difficulty, bool) {
	for _, d := range r.Difficulties {
		if d.Name == name {
			return d, true
		}
	}
	return Difficulty{}, false
}

// PollInterval returns the collision poll interval.
func (r RuleSet) PollInterval() time.Duration {
	return time.Duration(r.Effects.PollMS) * time.Millisecond
}

// SplashDuration returns how long the capture effect plays.
func (r RuleSet) SplashDuration() time.Duration {
	return time.Duration(r.Effects.SplashMS) * time.Millisecond
}

// RemovalFallback returns the delay after which a caught drop is removed
// even if its capture effect has not completed.
func (r RuleSet) RemovalFallback() time.Duration {
	return time.Duration(r.Effects.RemovalFallbackMS) * time.Millisecond
}

// Countdown returns the round length, or 0 for untimed rounds.
func (r RuleSet) Countdown() time.Duration {
	return time.Duration(r.CountdownSeconds) * time.Second
}

// Validate checks that a rule set can drive the engine.
func (r RuleSet) Validate() error {
	var errs []error

	check := func(name string, t Timing) {
		if t.FallSeconds <= 0 {
			errs = append(errs, fmt.Errorf("%s: fall_seconds must be positive", name))
		}
		if t.SpawnMS <= 0 {
			errs = append(errs, fmt.Errorf("%s: spawn_ms must be positive", name))
		}
	}

	if r.HasDifficulties() {
		seen := make(map[string]bool, len(r.Difficulties))
		for _, d := range r.Difficulties {
			if d.Name == "" {
				errs = append(errs, errors.New("difficulty with empty name"))
				continue
			}
			if seen[d.Name] {
				errs = append(errs, fmt.Errorf("duplicate difficulty %q", d.Name))
			}
			seen[d.Name] = true
			check("difficulty "+d.Name, d.Timing)
		}
	} else {
		check("timing", r.Timing)
	}

	if r.Drop.Width <= 0 || r.Drop.Height <= 0 {
		errs = append(errs, errors.New("drop size must be positive"))
	}
	if r.Drop.MinScale <= 0 || r.Drop.MaxScale < r.Drop.MinScale {
		errs = append(errs, errors.New("drop scale range must be positive and ordered"))
	}
	if r.Slider.Width <= 0 || r.Slider.Height <= 0 {
		errs = append(errs, errors.New("slider size must be positive"))
	}
	if r.Effects.PollMS <= 0 {
		errs = append(errs, errors.New("poll_ms must be positive"))
	}
	if r.Effects.RemovalFallbackMS <= 0 {
		errs = append(errs, errors.New("removal_fallback_ms must be positive"))
	}
	if r.WinTarget < 0 || r.WinThreshold < 0 || r.MaxStrikes < 0 || r.CountdownSeconds < 0 {
		errs = append(errs, errors.New("thresholds must not be negative"))
	}
	if len(r.Messages.Win) == 0 || len(r.Messages.Lose) == 0 {
		errs = append(errs, errors.New("win and lose message sets must not be empty"))
	}
	if r.MaxStrikes > 0 && r.Messages.StrikeOut == "" {
		errs = append(errs, errors.New("strike_out message required when max_strikes is set"))
	}
	switch r.PlayAgain {
	case PlayAgainPrompt, PlayAgainRestart:
	default:
		errs = append(errs, fmt.Errorf("unknown play_again mode %q", r.PlayAgain))
	}

	if len(errs) > 0 {
		return fmt.Errorf("config: invalid rules %q: %w", r.Title, errors.Join(errs...))
	}
	return nil
}
