package main

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/vovakirdan/dropcatch/internal/storage"
)

func openTestStore(t *testing.T) *storage.Store {
	t.Helper()
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func save(t *testing.T, store *storage.Store, gameID, mode string, score int, won bool) {
	t.Helper()
	if _, err := store.SaveScore(storage.ScoreEntry{GameID: gameID, Mode: mode, Score: score, Won: won}); err != nil {
		t.Fatalf("SaveScore() failed: %v", err)
	}
}

func TestPrintSummary(t *testing.T) {
	store := openTestStore(t)
	save(t, store, "classic", "hard", 12, false)
	save(t, store, "classic", "easy", 50, true)

	var out bytes.Buffer
	if err := printSummary(&out, store); err != nil {
		t.Fatalf("printSummary() failed: %v", err)
	}

	lines := strings.Split(out.String(), "\n")
	var classic, timed string
	for _, l := range lines {
		switch f := strings.Fields(l); {
		case len(f) > 0 && f[0] == "classic":
			classic = l
		case len(f) > 0 && f[0] == "timed":
			timed = l
		}
	}
	if f := strings.Fields(classic); len(f) < 4 || f[1] != "50" || f[2] != "2" || f[3] != "50%" {
		t.Errorf("classic row = %q, expected best 50, 2 rounds, 50%% won", classic)
	}
	if !strings.Contains(timed, "never") {
		t.Errorf("timed row = %q, expected an unplayed variant", timed)
	}
}

func TestPrintScores(t *testing.T) {
	store := openTestStore(t)
	for i := range 12 {
		save(t, store, "timed", "", 10+i, i >= 10)
	}
	save(t, store, "classic", "hard", 7, false)
	save(t, store, "classic", "easy", 9, false)

	tests := []struct {
		name       string
		gameID     string
		difficulty string
		all        bool
		rows       int
		contains   string
	}{
		{name: "top ten", gameID: "timed", rows: 10, contains: "Rounds: 12"},
		{name: "every round", gameID: "timed", all: true, rows: 12, contains: "Win rate: 17%"},
		{name: "difficulty filter", gameID: "classic", difficulty: "hard", rows: 1, contains: "- hard"},
		{name: "difficulty filter with all", gameID: "classic", difficulty: "easy", all: true, rows: 1, contains: "easy"},
		{name: "no rounds", gameID: "classic", difficulty: "medium", rows: 0, contains: "No scores recorded yet."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			if err := printScores(&out, store, tt.gameID, tt.difficulty, tt.all); err != nil {
				t.Fatalf("printScores() failed: %v", err)
			}
			rows := 0
			for _, l := range strings.Split(out.String(), "\n") {
				if f := strings.Fields(l); len(f) >= 4 && (f[3] == "won" || f[3] == "lost") {
					rows++
				}
			}
			if rows != tt.rows {
				t.Errorf("printed %d rounds, expected %d:\n%s", rows, tt.rows, out.String())
			}
			if !strings.Contains(out.String(), tt.contains) {
				t.Errorf("output missing %q:\n%s", tt.contains, out.String())
			}
		})
	}
}

func TestClearScoresLeavesOtherVariants(t *testing.T) {
	store := openTestStore(t)
	save(t, store, "classic", "hard", 7, false)
	save(t, store, "timed", "", 21, true)

	if err := store.ClearScores("classic"); err != nil {
		t.Fatalf("ClearScores() failed: %v", err)
	}

	var out bytes.Buffer
	if err := printScores(&out, store, "classic", "", false); err != nil {
		t.Fatalf("printScores() failed: %v", err)
	}
	if !strings.Contains(out.String(), "No scores recorded yet.") {
		t.Errorf("classic scores survived a clear:\n%s", out.String())
	}

	out.Reset()
	if err := printSummary(&out, store); err != nil {
		t.Fatalf("printSummary() failed: %v", err)
	}
	for _, l := range strings.Split(out.String(), "\n") {
		f := strings.Fields(l)
		if len(f) > 1 && f[0] == "timed" && f[1] != "21" {
			t.Errorf("timed row = %q, expected best 21 after clearing classic", l)
		}
		if len(f) > 1 && f[0] == "classic" && f[1] != "-" {
			t.Errorf("classic row = %q, expected no rounds after a clear", l)
		}
	}
}
