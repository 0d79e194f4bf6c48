package storage

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/vovakirdan/tui-knight/internal/core"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestStoreOpenCreatesNestedPath(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "subdir", "deep", "knight.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() with nested path failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created in nested directory")
	}
}

func TestStoreExpandsHome(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	store, err := Open("~/.knight/scores.db")
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(filepath.Join(home, ".knight", "scores.db")); err != nil {
		t.Errorf("database not created under HOME: %v", err)
	}
}

func TestStoreReopenKeepsData(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "knight.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	if _, err := store.SaveScore("knight", 640); err != nil {
		t.Fatalf("SaveScore() failed: %v", err)
	}
	store.Close()

	store, err = Open(dbPath)
	if err != nil {
		t.Fatalf("second Open() failed: %v", err)
	}
	defer store.Close()

	high, err := store.HighScore("knight")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 640 {
		t.Errorf("HighScore() = %d, expected 640", high)
	}
}

func TestStoreTopScores(t *testing.T) {
	store := openTestStore(t)

	for _, s := range []int{100, 50, 500, 200, 400} {
		if _, err := store.SaveScore("knight", s); err != nil {
			t.Fatalf("SaveScore() failed: %v", err)
		}
	}
	store.SaveScore("other", 9999)

	scores, err := store.TopScores("knight", 3)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 3 {
		t.Fatalf("TopScores() returned %d entries, expected 3", len(scores))
	}

	expected := []int{500, 400, 200}
	for i, e := range scores {
		if e.Score != expected[i] {
			t.Errorf("scores[%d] = %d, expected %d", i, e.Score, expected[i])
		}
		if e.GameID != "knight" {
			t.Errorf("scores[%d].GameID = %q, expected knight", i, e.GameID)
		}
		if e.CreatedAt.IsZero() {
			t.Errorf("scores[%d].CreatedAt not parsed", i)
		}
	}

	all, err := store.AllScores("knight")
	if err != nil {
		t.Fatalf("AllScores() failed: %v", err)
	}
	if len(all) != 5 {
		t.Errorf("AllScores() returned %d entries, expected 5", len(all))
	}
}

func TestStoreHighScoreEmpty(t *testing.T) {
	store := openTestStore(t)

	high, err := store.HighScore("knight")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 0 {
		t.Errorf("HighScore() = %d, expected 0 for empty game", high)
	}
}

func TestStoreSaveRun(t *testing.T) {
	store := openTestStore(t)

	runs := []core.RunSummary{
		{Seed: 1, Distance: 1200, EnemiesDefeated: 3, HeartsCollected: 1, Frames: 900},
		{Seed: 0x7fffffff, Distance: 4800, EnemiesDefeated: 11, HeartsCollected: 2, Frames: 3600},
	}
	for _, r := range runs {
		if _, err := store.SaveRun("knight", r); err != nil {
			t.Fatalf("SaveRun() failed: %v", err)
		}
	}

	recent, err := store.RecentRuns("knight", 10)
	if err != nil {
		t.Fatalf("RecentRuns() failed: %v", err)
	}
	if len(recent) != 2 {
		t.Fatalf("RecentRuns() returned %d entries, expected 2", len(recent))
	}

	// Newest first.
	got := recent[0]
	if got.Seed != 0x7fffffff || got.Distance != 4800 || got.EnemiesDefeated != 11 ||
		got.HeartsCollected != 2 || got.DurationFrames != 3600 {
		t.Errorf("RecentRuns()[0] = %+v, expected the second run", got)
	}
	if recent[1].Distance != 1200 {
		t.Errorf("RecentRuns()[1].Distance = %d, expected 1200", recent[1].Distance)
	}

	// Every run also lands on the score table.
	high, _ := store.HighScore("knight")
	if high != 4800 {
		t.Errorf("HighScore() = %d, expected 4800", high)
	}
}

func TestStoreRecentRunsLimit(t *testing.T) {
	store := openTestStore(t)

	for i := range 5 {
		store.SaveRun("knight", core.RunSummary{Seed: uint32(i), Distance: i * 100})
	}

	recent, err := store.RecentRuns("knight", 2)
	if err != nil {
		t.Fatalf("RecentRuns() failed: %v", err)
	}
	if len(recent) != 2 || recent[0].Seed != 4 || recent[1].Seed != 3 {
		t.Errorf("RecentRuns(2) = %+v, expected seeds 4, 3", recent)
	}
}

func TestStoreClearScores(t *testing.T) {
	store := openTestStore(t)

	store.SaveRun("knight", core.RunSummary{Distance: 100})
	store.SaveScore("knight", 200)
	store.SaveScore("other", 300)

	if err := store.ClearScores("knight"); err != nil {
		t.Fatalf("ClearScores() failed: %v", err)
	}

	if scores, _ := store.TopScores("knight", 10); len(scores) != 0 {
		t.Errorf("expected 0 knight scores after clear, got %d", len(scores))
	}
	if runs, _ := store.RecentRuns("knight", 10); len(runs) != 0 {
		t.Errorf("expected 0 knight runs after clear, got %d", len(runs))
	}
	if scores, _ := store.TopScores("other", 10); len(scores) != 1 {
		t.Error("other scores should not be affected by clearing knight")
	}
}

func TestStoreGameStats(t *testing.T) {
	store := openTestStore(t)

	stats, err := store.GetGameStats("knight")
	if err != nil {
		t.Fatalf("GetGameStats() failed: %v", err)
	}
	if stats.GamesCount != 0 || !stats.LastPlayed.IsZero() {
		t.Errorf("empty stats = %+v", stats)
	}

	store.SaveRun("knight", core.RunSummary{Distance: 300, EnemiesDefeated: 2, HeartsCollected: 1})
	store.SaveRun("knight", core.RunSummary{Distance: 900, EnemiesDefeated: 5})

	stats, err = store.GetGameStats("knight")
	if err != nil {
		t.Fatalf("GetGameStats() failed: %v", err)
	}
	if stats.GamesCount != 2 {
		t.Errorf("GamesCount = %d, expected 2", stats.GamesCount)
	}
	if stats.HighScore != 900 {
		t.Errorf("HighScore = %d, expected 900", stats.HighScore)
	}
	if stats.AvgScore != 600 {
		t.Errorf("AvgScore = %v, expected 600", stats.AvgScore)
	}
	if stats.TotalScore != 1200 {
		t.Errorf("TotalScore = %d, expected 1200", stats.TotalScore)
	}
	if stats.EnemiesDefeated != 7 || stats.HeartsCollected != 1 {
		t.Errorf("totals = %d defeated, %d hearts, expected 7, 1",
			stats.EnemiesDefeated, stats.HeartsCollected)
	}
	if stats.LastPlayed.IsZero() {
		t.Error("LastPlayed not set")
	}
}
