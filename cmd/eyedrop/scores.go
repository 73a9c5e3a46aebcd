package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/eyedrop-invaders/internal/config"
	"github.com/vovakirdan/eyedrop-invaders/internal/storage"
)

var (
	flagScoresDifficulty string
	flagScoresPlayer     string
	flagScoresLimit      int
	flagScoresClear      bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show the round history",
	Long: `Display the best rounds, optionally for one difficulty, followed by
aggregate statistics. With --player, show that player's recent rounds and
badge counts instead.

Examples:
  eyedrop scores
  eyedrop scores --difficulty hard
  eyedrop scores --player ann
  eyedrop scores --difficulty easy --clear`,
	Args: cobra.NoArgs,
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().StringVar(&flagScoresDifficulty, "difficulty", "", "Only show this difficulty: easy, medium, hard")
	scoresCmd.Flags().StringVar(&flagScoresPlayer, "player", "", "Show one player's recent rounds")
	scoresCmd.Flags().IntVar(&flagScoresLimit, "limit", 10, "Number of rounds to show")
	scoresCmd.Flags().BoolVar(&flagScoresClear, "clear", false, "Delete the selected rounds")
}

func runScores(_ *cobra.Command, _ []string) {
	title := "All difficulties"
	if flagScoresDifficulty != "" {
		d, err := config.ParseDifficulty(flagScoresDifficulty)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		title = d.Title()
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening rounds database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagScoresClear {
		if err := store.ClearRounds(flagScoresDifficulty); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Cleared rounds: %s\n", title)
		return
	}

	if flagScoresPlayer != "" {
		printPlayer(store, flagScoresPlayer)
		return
	}

	rounds, err := store.TopRounds(flagScoresDifficulty, flagScoresLimit)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving rounds: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("High Scores - %s\n", title)
	fmt.Println()

	if len(rounds) == 0 {
		fmt.Println("No rounds recorded yet.")
		fmt.Println()
		fmt.Println("Play 'eyedrop play' to set the first high score!")
		return
	}

	printRounds(rounds)

	stats, err := store.GetStats(flagScoresDifficulty)
	if err == nil {
		fmt.Println()
		fmt.Printf("Rounds: %d  Best: %d  Average: %.0f  Avg accuracy: %.0f%%\n",
			stats.Rounds, stats.HighScore, stats.AvgScore, stats.AvgAccuracy*100)
		fmt.Printf("Last played: %s\n", stats.LastPlayed.Format("2006-01-02 15:04"))
	}
}

func printPlayer(store *storage.Store, player string) {
	rounds, err := store.RecentRounds(player, flagScoresLimit)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving rounds: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Recent rounds - %s\n", player)
	fmt.Println()
	if len(rounds) == 0 {
		fmt.Println("No rounds recorded yet.")
		return
	}
	printRounds(rounds)

	counts, err := store.BadgeCounts(player)
	if err == nil {
		fmt.Println()
		fmt.Printf("Badges: Legend %d  Hero %d  Novice %d\n", counts["Legend"], counts["Hero"], counts["Novice"])
	}
}

func printRounds(rounds []storage.RoundRecord) {
	fmt.Printf("  %-4s  %-12s  %-6s  %-7s  %-5s  %-6s  %s\n", "Rank", "Player", "Level", "Score", "Acc", "Badge", "Date")
	fmt.Printf("  %-4s  %-12s  %-6s  %-7s  %-5s  %-6s  %s\n", "----", "------", "-----", "-----", "---", "-----", "----")

	for i, r := range rounds {
		fmt.Printf("  %-4d  %-12s  %-6s  %-7d  %-5s  %-6s  %s\n",
			i+1, r.Player, r.Difficulty, r.Score,
			fmt.Sprintf("%.0f%%", r.Accuracy*100), r.Badge,
			r.CreatedAt.Format("2006-01-02 15:04"))
	}
}
