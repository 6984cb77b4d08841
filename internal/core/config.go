package core

import "time"

// DefaultTickRate is the simulation rate used when none is configured.
const DefaultTickRate = 60

// RuntimeConfig is what the platform hands a game on Reset: the terminal
// size, the simulation rate and the seed for drop placement.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Simulation ticks per second; <= 0 means DefaultTickRate
	Seed     int64 // 0 lets the platform pick a time-based seed
}

// DefaultConfig returns an 80x24 config at the default tick rate.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: DefaultTickRate,
	}
}

// Rate returns the effective tick rate.
func (c RuntimeConfig) Rate() int {
	if c.TickRate <= 0 {
		return DefaultTickRate
	}
	return c.TickRate
}

// TickInterval is the virtual time one simulation step covers.
func (c RuntimeConfig) TickInterval() time.Duration {
	return time.Second / time.Duration(c.Rate())
}

// GameState is the status a game reports to the platform after each step.
type GameState struct {
	Score    int    // Drops caught this round
	GameOver bool   // The round has ended
	Paused   bool   // The clock is frozen
	Mode     string // Difficulty recorded alongside the score
	Won      bool   // The finished round counts as a win
}

// StepResult is returned by Game.Step() after each simulation tick.
type StepResult struct {
	State GameState
}
