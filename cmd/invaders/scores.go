package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-invaders/internal/storage"
)

var (
	flagLimit int
	flagClear bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show high scores",
	Long: `Display the best scores recorded on this machine.

Examples:
  invaders scores
  invaders scores --limit 25
  invaders scores --clear`,
	Args: cobra.NoArgs,
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagLimit, "limit", 10, "Number of scores to show")
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete all recorded scores")
}

func runScores(_ *cobra.Command, _ []string) error {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("opening scores database: %w", err)
	}
	defer store.Close()

	if flagClear {
		if err := store.ClearScores(gameID); err != nil {
			return fmt.Errorf("clearing scores: %w", err)
		}
		fmt.Println("Scores cleared.")
		return nil
	}

	scores, err := store.TopScores(gameID, flagLimit)
	if err != nil {
		return fmt.Errorf("retrieving scores: %w", err)
	}

	fmt.Println("High Scores - Alien Invasion")
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Println("Play 'invaders play' to set the first high score!")
		return nil
	}

	// Print header
	fmt.Printf("  %-4s  %-12s  %-8s  %-5s  %s\n", "Rank", "Player", "Score", "Waves", "Date")
	fmt.Printf("  %-4s  %-12s  %-8s  %-5s  %s\n", "----", "------", "-----", "-----", "----")

	for i, entry := range scores {
		dateStr := entry.CreatedAt.Format("2006-01-02 15:04")
		fmt.Printf("  %-4d  %-12s  %-8d  %-5d  %s\n", i+1, entry.Player, entry.Score, entry.Waves, dateStr)
	}

	if stats, err := store.GetGameStats(gameID); err == nil {
		fmt.Println()
		fmt.Printf("Games: %d   Best: %d   Average: %.1f\n", stats.GamesCount, stats.HighScore, stats.AvgScore)
	}
	return nil
}
