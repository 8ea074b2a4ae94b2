package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-slither/internal/config"
	"github.com/vovakirdan/tui-slither/internal/games/slither"
	"github.com/vovakirdan/tui-slither/internal/platform/tui"
	"github.com/vovakirdan/tui-slither/internal/storage"
)

var (
	flagScoresDifficulty  string
	flagScoresLimit       int
	flagScoresInteractive bool
	flagScoresClear       bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show the run history",
	Long: `Display the best recorded runs and overall statistics.

Examples:
  slither scores
  slither scores --difficulty hard
  slither scores --limit 25
  slither scores -i          # Interactive scoreboard
  slither scores --clear     # Delete all runs and the high score`,
	Args: cobra.NoArgs,
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().StringVar(&flagScoresDifficulty, "difficulty", "", "Only show runs at this difficulty")
	scoresCmd.Flags().IntVar(&flagScoresLimit, "limit", 10, "Number of runs to show")
	scoresCmd.Flags().BoolVarP(&flagScoresInteractive, "interactive", "i", false, "Open the interactive scoreboard")
	scoresCmd.Flags().BoolVar(&flagScoresClear, "clear", false, "Delete all recorded runs and the high score")
}

func runScores(_ *cobra.Command, _ []string) {
	if flagScoresDifficulty != "" {
		if _, ok := config.ParsePreset(flagScoresDifficulty); !ok {
			fmt.Fprintf(os.Stderr, "Error: unknown difficulty %q\n", flagScoresDifficulty)
			os.Exit(1)
		}
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagScoresClear {
		if err := store.ClearScores(slither.GameID); err != nil {
			fmt.Fprintf(os.Stderr, "Error clearing scores: %v\n", err)
			return
		}
		fmt.Println("Scores cleared.")
		return
	}

	if flagScoresInteractive {
		cfg := runtimeConfig()
		if _, err := tui.RunScoreboard(store, slither.GameID, cfg.ScreenW, cfg.ScreenH); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		return
	}

	runs, err := store.TopRuns(slither.GameID, flagScoresDifficulty, flagScoresLimit)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving runs: %v\n", err)
		return
	}

	title := "High Scores - Slither"
	if flagScoresDifficulty != "" {
		title += " (" + flagScoresDifficulty + ")"
	}
	fmt.Println(title)
	fmt.Println()

	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Println("Play 'slither play' to set the first high score!")
		return
	}

	fmt.Printf("  %-4s  %-7s  %-5s  %-6s  %-4s  %-7s  %s\n", "Rank", "Score", "Level", "Length", "Food", "Mode", "Date")
	fmt.Printf("  %-4s  %-7s  %-5s  %-6s  %-4s  %-7s  %s\n", "----", "-----", "-----", "------", "----", "----", "----")

	for i, r := range runs {
		fmt.Printf("  %-4d  %-7d  %-5d  %-6d  %-4d  %-7s  %s\n",
			i+1, r.Score, r.Level, r.Length, r.FoodEaten, r.Difficulty, r.CreatedAt.Format("2006-01-02 15:04"))
	}

	fmt.Println()
	if best, err := store.HighScore(slither.GameID); err == nil {
		fmt.Printf("Best: %d\n", best)
	}
	if stats, err := store.GetGameStats(slither.GameID); err == nil && stats.GamesCount > 0 {
		fmt.Printf("Games: %d  Average: %.1f  Best level: %d  Longest: %d  Food eaten: %d\n",
			stats.GamesCount, stats.AvgScore, stats.BestLevel, stats.LongestSnake, stats.TotalFood)
	}
}
