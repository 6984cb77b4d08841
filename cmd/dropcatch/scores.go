package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/dropcatch/internal/registry"
	"github.com/vovakirdan/dropcatch/internal/storage"
)

var (
	flagScoresDifficulty string
	flagScoresAll        bool
	flagScoresClear      bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores [variant]",
	Short: "Show high scores",
	Long: `Display the top 10 scores for the specified variant, or a summary of
every variant when none is given.

Examples:
  dropcatch scores
  dropcatch scores classic
  dropcatch scores classic --difficulty hard
  dropcatch scores timed --all
  dropcatch scores timed --clear`,
	Args: cobra.MaximumNArgs(1),
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().StringVar(&flagScoresDifficulty, "difficulty", "", "Only show rounds played at this difficulty")
	scoresCmd.Flags().BoolVar(&flagScoresAll, "all", false, "Show every recorded round instead of the top 10")
	scoresCmd.Flags().BoolVar(&flagScoresClear, "clear", false, "Delete all recorded rounds for the variant")
}

func runScores(_ *cobra.Command, args []string) {
	var gameID string
	if len(args) == 1 {
		gameID = args[0]
		if !registry.Exists(gameID) {
			fmt.Fprintf(os.Stderr, "Error: unknown variant %q\n", gameID)
			fmt.Fprintln(os.Stderr, "Run 'dropcatch list' to see available variants.")
			os.Exit(1)
		}
	} else if flagScoresClear {
		fmt.Fprintln(os.Stderr, "Error: --clear needs a variant")
		os.Exit(1)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	switch {
	case gameID == "":
		err = printSummary(os.Stdout, store)
	case flagScoresClear:
		if err = store.ClearScores(gameID); err == nil {
			fmt.Printf("Cleared all scores for %s.\n", gameID)
		}
	default:
		err = printScores(os.Stdout, store, gameID, flagScoresDifficulty, flagScoresAll)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// variantTitle returns the registered title for a variant, or its ID.
func variantTitle(gameID string) string {
	for _, g := range registry.List() {
		if g.ID == gameID {
			return g.Title
		}
	}
	return gameID
}

// printSummary writes one line per registered variant with its history.
func printSummary(w io.Writer, store *storage.Store) error {
	all, err := store.GetAllGamesStats()
	if err != nil {
		return err
	}

	fmt.Fprintln(w, "High Scores")
	fmt.Fprintln(w)
	fmt.Fprintf(w, "  %-8s  %-6s  %-6s  %-8s  %s\n", "Variant", "Best", "Rounds", "Win rate", "Last played")
	fmt.Fprintf(w, "  %-8s  %-6s  %-6s  %-8s  %s\n", "-------", "----", "------", "--------", "-----------")
	for _, g := range registry.List() {
		stats, ok := all[g.ID]
		if !ok {
			fmt.Fprintf(w, "  %-8s  %-6s  %-6d  %-8s  %s\n", g.ID, "-", 0, "-", "never")
			continue
		}
		fmt.Fprintf(w, "  %-8s  %-6d  %-6d  %-8s  %s\n", g.ID, stats.HighScore, stats.GamesCount,
			fmt.Sprintf("%.0f%%", stats.WinRate()*100), stats.LastPlayed.Format("2006-01-02 15:04"))
	}
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Run 'dropcatch scores <variant>' for the top rounds.")
	return nil
}

// printScores writes the top 10 rounds for a variant, or every round with all.
func printScores(w io.Writer, store *storage.Store, gameID, difficulty string, all bool) error {
	var (
		scores []storage.ScoreEntry
		err    error
	)
	if all {
		scores, err = store.AllScores(gameID)
	} else {
		scores, err = store.TopScores(gameID, difficulty, 10)
	}
	if err != nil {
		return err
	}

	title := variantTitle(gameID)
	if difficulty != "" {
		title += " - " + difficulty
	}
	fmt.Fprintf(w, "High Scores - %s\n", title)
	fmt.Fprintln(w)

	rank := 0
	for _, entry := range scores {
		if difficulty != "" && entry.Mode != difficulty {
			continue
		}
		if rank == 0 {
			fmt.Fprintf(w, "  %-4s  %-6s  %-10s  %-6s  %s\n", "Rank", "Score", "Difficulty", "Result", "Date")
			fmt.Fprintf(w, "  %-4s  %-6s  %-10s  %-6s  %s\n", "----", "-----", "----------", "------", "----")
		}
		rank++

		mode := entry.Mode
		if mode == "" {
			mode = "-"
		}
		result := "lost"
		if entry.Won {
			result = "won"
		}
		fmt.Fprintf(w, "  %-4d  %-6d  %-10s  %-6s  %s\n",
			rank, entry.Score, mode, result, entry.CreatedAt.Format("2006-01-02 15:04"))
	}

	if rank == 0 {
		fmt.Fprintln(w, "No scores recorded yet.")
		fmt.Fprintln(w)
		fmt.Fprintf(w, "Play 'dropcatch play %s' to set the first high score!\n", gameID)
		return nil
	}

	fmt.Fprintln(w)
	if stats, err := store.GetGameStats(gameID); err == nil && stats.GamesCount > 0 {
		fmt.Fprintf(w, "Best: %d  Rounds: %d  Win rate: %.0f%%\n", stats.HighScore, stats.GamesCount, stats.WinRate()*100)
	}
	return nil
}
