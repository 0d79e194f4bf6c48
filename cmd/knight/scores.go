package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-knight/internal/games/knight"
	"github.com/vovakirdan/tui-knight/internal/storage"
)

var (
	flagScoresLimit int
	flagScoresClear bool
	flagScoresAll   bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show best distances and recent runs",
	Long: `Display the best distances, the most recent runs and lifetime totals.

Examples:
  knight scores
  knight scores --limit 20
  knight scores --all
  knight scores --clear`,
	Args: cobra.NoArgs,
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagScoresLimit, "limit", 10, "Number of entries per table")
	scoresCmd.Flags().BoolVar(&flagScoresClear, "clear", false, "Delete all recorded runs")
	scoresCmd.Flags().BoolVar(&flagScoresAll, "all", false, "List every recorded distance")
}

func runScores(_ *cobra.Command, _ []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		exitf("Error opening scores database: %v", err)
	}
	onExit(func() { store.Close() })
	defer runCleanups()

	if flagScoresClear {
		if err := store.ClearScores(knight.ID); err != nil {
			exitf("Error clearing scores: %v", err)
		}
		fmt.Println("All runs deleted.")
		return
	}

	var scores []storage.ScoreEntry
	if flagScoresAll {
		scores, err = store.AllScores(knight.ID)
	} else {
		scores, err = store.TopScores(knight.ID, flagScoresLimit)
	}
	if err != nil {
		exitf("Error retrieving scores: %v", err)
	}

	fmt.Println("Best Distances - Knight Run")
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Println("Play 'knight play' to set the first record!")
		return
	}

	fmt.Printf("  %-4s  %-10s  %s\n", "Rank", "Distance", "Date")
	fmt.Printf("  %-4s  %-10s  %s\n", "----", "--------", "----")
	for i, entry := range scores {
		fmt.Printf("  %-4d  %-10d  %s\n", i+1, entry.Score, entry.CreatedAt.Format("2006-01-02 15:04"))
	}

	runs, err := store.RecentRuns(knight.ID, flagScoresLimit)
	if err == nil && len(runs) > 0 {
		fmt.Println()
		fmt.Println("Recent Runs")
		fmt.Println()
		fmt.Printf("  %-10s  %-8s  %-7s  %-6s  %-11s  %s\n", "Distance", "Goblins", "Hearts", "Time", "Seed", "Date")
		fmt.Printf("  %-10s  %-8s  %-7s  %-6s  %-11s  %s\n", "--------", "-------", "------", "----", "----", "----")
		for _, r := range runs {
			fmt.Printf("  %-10d  %-8d  %-7d  %-6s  %-11d  %s\n",
				r.Distance, r.EnemiesDefeated, r.HeartsCollected,
				formatDuration(r.DurationFrames), r.Seed, r.CreatedAt.Format("2006-01-02 15:04"))
		}
	}

	stats, err := store.GetGameStats(knight.ID)
	if err == nil {
		fmt.Println()
		fmt.Printf("Best: %d  Runs: %d  Average: %.0f\n", stats.HighScore, stats.GamesCount, stats.AvgScore)
		fmt.Printf("Goblins defeated: %d  Hearts collected: %d\n", stats.EnemiesDefeated, stats.HeartsCollected)
	}
}

// formatDuration renders a frame count at 60 FPS as m:ss.
func formatDuration(frames int) string {
	secs := frames / 60
	return fmt.Sprintf("%d:%02d", secs/60, secs%60)
}
