package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/dropcatch/internal/audio"
	"github.com/vovakirdan/dropcatch/internal/core"
	"github.com/vovakirdan/dropcatch/internal/games/drops"
	"github.com/vovakirdan/dropcatch/internal/platform/tui"
	"github.com/vovakirdan/dropcatch/internal/registry"
	"github.com/vovakirdan/dropcatch/internal/storage"
)

var (
	flagConfig     string
	flagDifficulty string
	flagMute       bool
)

var playCmd = &cobra.Command{
	Use:   "play <variant>",
	Short: "Play a game variant",
	Long: `Start playing the specified variant.

Controls:
  Mouse           - Move the slider (hover, or hold the button and drag)
  Left/Right/A/D  - Nudge the slider
  Up/Down         - Choose a difficulty (classic)
  Enter/Space     - Start, or play again after a round
  P               - Pause
  M               - Mute sound
  Esc             - Back (after a round)
  Q/Ctrl+C        - Quit

Difficulty options (classic):
  easy      - Slow drops, relaxed spawning
  moderate  - The default
  hard      - Fast drops, frequent spawning

Examples:
  dropcatch play classic
  dropcatch play classic --difficulty hard
  dropcatch play timed --mute
  dropcatch play classic --config ./my-drops.yaml`,
	Args: cobra.ExactArgs(1),
	Run:  runPlay,
}

func init() {
	for _, cmd := range []*cobra.Command{playCmd, menuCmd} {
		cmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom rules YAML")
		cmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Preselected difficulty: easy, moderate, hard")
		cmd.Flags().BoolVar(&flagMute, "mute", false, "Start with sound muted")
	}
}

func runPlay(_ *cobra.Command, args []string) {
	gameID := args[0]

	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown variant %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'dropcatch list' to see available variants.")
		os.Exit(1)
	}

	closeAudio := setupGames()
	defer closeAudio()

	game, err := registry.Create(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	store := openStore()

	_, runErr := tui.Run(game, store, runtimeConfig())

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}

// setupGames applies the play flags to every game created afterwards and
// opens the audio device. The returned func releases it.
func setupGames() func() {
	drops.SetConfigPath(flagConfig)
	drops.SetDifficulty(flagDifficulty)

	spk, err := audio.NewSpeaker()
	if err != nil {
		log.Warn("Sound disabled", "err", err)
		drops.SetPlayerFactory(func() audio.Player {
			p := &audio.Silent{}
			p.SetMuted(flagMute)
			return p
		})
		return func() {}
	}

	spk.SetMuted(flagMute)
	drops.SetPlayerFactory(func() audio.Player { return spk })
	return spk.Close
}

// openStore opens the scores database. Play continues without it on failure.
func openStore() *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		log.Warn("Could not open scores database", "path", flagDBPath, "err", err)
		return nil
	}
	return store
}

// runtimeConfig builds the runtime config from global flags and the
// current terminal size.
func runtimeConfig() core.RuntimeConfig {
	width, height := 80, 24
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}

	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}
}
