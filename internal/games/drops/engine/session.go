// Package engine implements the drop catcher rules: lifecycle, spawning,
// fall tracking, slider input, collision and scoring.
// This package is UI-agnostic and deterministic; all timing comes from a
// core.Scheduler that the caller advances.
package engine

import (
	"time"

	"github.com/vovakirdan/dropcatch/internal/config"
)

// State is the lifecycle state of a round.
type State int

const (
	StateIdle State = iota
	StateRunning
	StateEnded
)

// String returns a human-readable name for the state.
func (s State) String() string {
	switch s {
	case StateIdle:
		return "Idle"
	case StateRunning:
		return "Running"
	case StateEnded:
		return "Ended"
	default:
		return "Unknown"
	}
}

// Session is the bookkeeping for one round: counters, timing and outcome.
// It is replaced wholesale on every Start.
type Session struct {
	State         State
	Score         int
	Strikes       int
	TimeRemaining int           // Whole seconds left, 0 for untimed rule sets
	Timing        config.Timing // Fixed for the round
	Difficulty    string        // Resolved difficulty name, empty for fixed timing
	StartedAt     time.Duration // Scheduler time at Start
	Message       string        // End-of-round message, set on End
	Won           bool          // Whether the win message pool was used
	Forced        bool          // Whether the message was supplied by the caller
}

// Progress returns score/target clamped to [0, 1], or 0 when there is no target.
func (s Session) Progress(target int) float64 {
	if target <= 0 {
		return 0
	}
	return float64(min(s.Score, target)) / float64(target)
}

// StrikesLeft returns how many more misses the round tolerates.
func (s Session) StrikesLeft(maxStrikes int) int {
	return max(maxStrikes-s.Strikes, 0)
}
