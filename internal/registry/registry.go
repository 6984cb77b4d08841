// Package registry maps variant IDs to game factories. Variants register
// from init(), so the CLI and SSH front ends never import a game directly.
package registry

import (
	"fmt"
	"slices"
	"sync"

	"github.com/vovakirdan/dropcatch/internal/core"
)

// Game is the interface every playable variant implements.
// Games contain pure logic with no external dependencies (especially no Bubble Tea).
// The platform handles input mapping, timing, and rendering.
type Game interface {
	// ID returns a unique identifier (e.g., "classic", "timed").
	// Used for CLI commands and score storage.
	ID() string

	// Title returns a human-readable name for display.
	Title() string

	// Reset initializes or resets the game state.
	// The RuntimeConfig provides screen dimensions and RNG seed.
	Reset(cfg core.RuntimeConfig)

	// Step advances the simulation by one fixed tick.
	Step(in core.InputFrame) core.StepResult

	// Render draws the current game state into the provided screen buffer.
	Render(dst *core.Screen)

	// State returns the current game state (score, game over, paused).
	State() core.GameState
}

// Resizer is implemented by games that can adapt to a new terminal size
// without a Reset.
type Resizer interface {
	Resize(w, h int)
}

// GameInfo describes a registered variant.
type GameInfo struct {
	ID    string
	Title string
}

// Factory creates a fresh game instance.
type Factory func() Game

type entry struct {
	info    GameInfo
	factory Factory
}

var (
	mu      sync.RWMutex
	entries []entry // registration order
)

func find(id string) int {
	return slices.IndexFunc(entries, func(e entry) bool { return e.info.ID == id })
}

// Register adds a variant. The factory is called once to read the title.
// Panics on a duplicate ID.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if find(id) >= 0 {
		panic(fmt.Sprintf("registry: game %q already registered", id))
	}
	entries = append(entries, entry{
		info:    GameInfo{ID: id, Title: f().Title()},
		factory: f,
	})
}

// List returns all registered variants in registration order.
func List() []GameInfo {
	mu.RLock()
	defer mu.RUnlock()

	out := make([]GameInfo, len(entries))
	for i, e := range entries {
		out[i] = e.info
	}
	return out
}

// Create instantiates the variant with the given ID.
func Create(id string) (Game, error) {
	mu.RLock()
	defer mu.RUnlock()

	i := find(id)
	if i < 0 {
		return nil, fmt.Errorf("registry: unknown game %q", id)
	}
	return entries[i].factory(), nil
}

// Exists reports whether a variant is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()
	return find(id) >= 0
}
