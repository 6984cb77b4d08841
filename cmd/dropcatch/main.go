// dropcatch is a terminal water-drop catching game.
//
// Usage:
//
//	dropcatch list               - List game variants
//	dropcatch play <variant>     - Play a variant (classic or timed)
//	dropcatch menu               - Pick a variant interactively
//	dropcatch serve              - Start SSH server for remote play
//	dropcatch scores [variant]   - Show high scores (all variants if omitted)
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 60)
//	--seed <value>  - Set RNG seed for reproducible drop patterns
//	--db <path>     - Set database path (default: ~/.dropcatch/scores.db)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Register game variants
	_ "github.com/vovakirdan/dropcatch/internal/games/drops"
)

var (
	// Global flags
	flagFPS    int
	flagSeed   int64
	flagDBPath string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "dropcatch",
	Short: "Drop Catch - catch falling water drops in your terminal",
	Long: `Drop Catch is a terminal game: move the slider under falling water
drops to catch them before they hit the ground.

Variants:
  classic  - Pick a difficulty, catch 50 drops, miss more than 3 and it's over
  timed    - Catch at least 20 drops before the 30 second countdown ends

Available commands:
  list     - Show all game variants
  play     - Play a variant directly
  menu     - Interactive variant picker
  serve    - Start SSH server for remote play
  scores   - View high scores

Examples:
  dropcatch list
  dropcatch play classic --difficulty hard
  dropcatch play timed
  dropcatch menu
  dropcatch serve --ssh :2222
  dropcatch scores classic`,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.dropcatch/scores.db", "Path to scores database")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
}
