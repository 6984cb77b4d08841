// Package tui provides the Bubble Tea front end: the fixed-rate tick loop,
// key and mouse mapping, menus, the scoreboard and SSH serving.
package tui

import (
	"sync/atomic"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent to trigger a game simulation tick. Gen names the game
// model whose chain produced it.
type TickMsg struct {
	Time time.Time
	Gen  uint64
}

// tickGen hands out a generation to every game model.
var tickGen atomic.Uint64

// tickCmd schedules the next simulation tick one interval from now. Each
// handled tick schedules the next, and ticks from another generation are
// dropped, so a game runs exactly one tick chain.
func tickCmd(interval time.Duration, gen uint64) tea.Cmd {
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg{Time: t, Gen: gen}
	})
}
