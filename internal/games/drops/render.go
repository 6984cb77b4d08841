package drops

import (
	"fmt"
	"math"
	"strings"
	"unicode/utf8"

	"github.com/vovakirdan/dropcatch/internal/config"
	"github.com/vovakirdan/dropcatch/internal/core"
	"github.com/vovakirdan/dropcatch/internal/games/drops/engine"
)

// Visual characters for rendering
const (
	DropChar      = '●'
	SmallDropChar = '•'
	SplashChar    = '✶'
	SliderChar    = '█'
	MissChar      = '✗'
	SlotChar      = '·'
	BarFullChar   = '█'
	BarEmptyChar  = '░'
)

// Render draws the HUD, field and any overlay.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.tooSmall {
		dst.DrawTextCentered(dst.Height()/2-1, "Window too small")
		dst.DrawTextCentered(dst.Height()/2+1, fmt.Sprintf("Need %dx%d", minScreenW, minScreenH))
		return
	}

	s := g.ctrl.Session()
	g.renderHUD(dst, s)
	g.renderDrops(dst)
	g.renderSlider(dst)
	g.renderOverlay(dst, s)
}

// renderHUD draws score, misses or time left, and the progress bar.
func (g *Game) renderHUD(dst *core.Screen, s engine.Session) {
	dst.DrawText(1, 0, fmt.Sprintf("Score: %d", s.Score))

	title := g.Title()
	if g.sound.Muted() {
		title += " [muted]"
	}
	dst.DrawTextCenteredColored(0, title, core.ColorBrightCyan)

	switch {
	case g.rules.CountdownSeconds > 0:
		text := fmt.Sprintf("Time: %ds", s.TimeRemaining)
		c := core.ColorDefault
		if s.State == engine.StateRunning && s.TimeRemaining <= 5 {
			c = core.ColorBrightRed
		}
		dst.DrawTextColored(dst.Width()-utf8.RuneCountInString(text)-1, 0, text, c)
	case g.rules.MaxStrikes > 0:
		x := dst.Width() - g.rules.MaxStrikes - 1
		missed := g.rules.MaxStrikes - s.StrikesLeft(g.rules.MaxStrikes)
		for i := range g.rules.MaxStrikes {
			if i < missed {
				dst.SetColored(x+i, 0, MissChar, core.ColorBrightRed)
			} else {
				dst.SetColored(x+i, 0, SlotChar, core.ColorGray)
			}
		}
		dst.DrawText(x-8, 0, "Misses:")
	}

	g.renderProgress(dst, s)
}

// renderProgress draws score against the target on row 1.
func (g *Game) renderProgress(dst *core.Screen, s engine.Session) {
	target := g.rules.WinTarget
	if target <= 0 {
		target = g.rules.WinThreshold
	}
	label := fmt.Sprintf(" %d/%d", s.Score, target)
	width := dst.Width() - 2 - utf8.RuneCountInString(label)
	if width <= 0 {
		return
	}

	filled := int(math.Round(s.Progress(target) * float64(width)))
	for i := range width {
		if i < filled {
			dst.SetColored(1+i, 1, BarFullChar, core.ColorGreen)
		} else {
			dst.SetColored(1+i, 1, BarEmptyChar, core.ColorGray)
		}
	}
	dst.DrawText(1+width, 1, label)
}

// renderDrops draws falling drops and splashes for caught ones.
func (g *Game) renderDrops(dst *core.Screen) {
	f := g.ctrl.Field()
	now := g.ctrl.Now()
	for _, d := range g.ctrl.Drops() {
		box := d.Box(now, f.Height)

		glyph, color := DropChar, core.ColorBrightCyan
		switch {
		case d.Caught:
			glyph, color = SplashChar, core.ColorBrightWhite
		case d.H < 1:
			glyph = SmallDropChar
		}
		fillBox(dst, box, f.Height, glyph, color)
	}
}

// renderSlider draws the catcher resting on the bottom of the field.
func (g *Game) renderSlider(dst *core.Screen) {
	f := g.ctrl.Field()
	fillBox(dst, g.ctrl.Slider().Box(f.Height), f.Height, SliderChar, core.ColorBrightBlue)
}

// fillBox paints every cell a box overlaps, clipped to the field.
func fillBox(dst *core.Screen, b core.Box, fieldH float64, r rune, c core.Color) {
	x0, x1 := int(math.Floor(b.Left())), int(math.Ceil(b.Right()))
	y0, y1 := int(math.Floor(b.Top())), int(math.Ceil(b.Bottom()))
	if x1 <= x0 {
		x1 = x0 + 1
	}
	if y1 <= y0 {
		y1 = y0 + 1
	}
	y0 = max(y0, 0)
	y1 = min(y1, int(fieldH))
	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			dst.SetColored(x, y+hudRows, r, c)
		}
	}
}

// renderOverlay draws the start prompt, pause box or end message.
func (g *Game) renderOverlay(dst *core.Screen, s engine.Session) {
	switch {
	case s.State == engine.StateIdle:
		g.drawCenteredBox(dst, g.promptLines(s))

	case s.State == engine.StateRunning && g.paused:
		g.drawCenteredBox(dst, []string{"PAUSED", "", "Press P to resume"})

	case s.State == engine.StateEnded:
		hint := "ENTER to choose difficulty  |  B for menu"
		if g.rules.PlayAgain == config.PlayAgainRestart {
			hint = "ENTER to play again  |  B for menu"
		}
		g.drawCenteredBox(dst, []string{
			s.Message,
			"",
			fmt.Sprintf("Score: %d", s.Score),
			"",
			hint,
		})
	}
}

// promptLines builds the start prompt, with a difficulty picker when the
// rules offer a choice.
func (g *Game) promptLines(s engine.Session) []string {
	lines := []string{g.Title(), ""}

	names := g.rules.DifficultyNames()
	if len(names) > 0 {
		lines = append(lines, "Choose difficulty:")
		for i, n := range names {
			prefix := "  "
			if i == g.cursor {
				prefix = "> "
			}
			lines = append(lines, prefix+n)
		}
	} else {
		lines = append(lines, fmt.Sprintf("Catch %d drops in %d seconds", g.rules.WinThreshold, g.rules.CountdownSeconds))
	}

	if s.Message != "" {
		lines = append(lines, "", fmt.Sprintf("Last score: %d", s.Score))
	}
	return append(lines, "", "ENTER to start  |  mouse or ←/→ to move")
}

// drawCenteredBox draws a bordered box with centered lines.
func (g *Game) drawCenteredBox(dst *core.Screen, lines []string) {
	inner := 0
	for _, l := range lines {
		inner = max(inner, utf8.RuneCountInString(l))
	}

	boxW := min(inner+4, dst.Width())
	boxH := min(len(lines)+2, dst.Height())
	boxX := (dst.Width() - boxW) / 2
	boxY := (dst.Height() - boxH) / 2

	dst.DrawRect(core.NewRect(boxX, boxY, boxW, boxH), ' ')
	dst.DrawBox(core.NewRect(boxX, boxY, boxW, boxH))

	for i, l := range lines {
		l = strings.TrimRight(l, " ")
		x := boxX + (boxW-utf8.RuneCountInString(l))/2
		dst.DrawText(x, boxY+1+i, l)
	}
}
