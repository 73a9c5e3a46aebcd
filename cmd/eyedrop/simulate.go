package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/eyedrop-invaders/internal/config"
	"github.com/vovakirdan/eyedrop-invaders/internal/games/eyedrop"
	"github.com/vovakirdan/eyedrop-invaders/internal/storage"
)

var (
	flagSimDifficulty string
	flagSimSkill      float64
	flagSimRounds     int
	flagSimSave       bool
	flagSimPlayer     string
)

var simulateCmd = &cobra.Command{
	Use:   "simulate",
	Short: "Run headless rounds with the autopilot",
	Long: `Play rounds without a terminal. The autopilot tracks the lowest target and
loads the right treatment with probability --skill.

Each round uses --seed plus its index, so a fixed seed reproduces the run.

Examples:
  eyedrop simulate
  eyedrop simulate --difficulty hard --skill 0.7 --rounds 10
  eyedrop simulate --seed 42 --save --player bot`,
	Args: cobra.NoArgs,
	Run:  runSimulate,
}

func init() {
	simulateCmd.Flags().StringVar(&flagSimDifficulty, "difficulty", "medium", "Difficulty: easy, medium, hard")
	simulateCmd.Flags().Float64Var(&flagSimSkill, "skill", 0.9, "Chance the autopilot loads the right treatment (0-1)")
	simulateCmd.Flags().IntVar(&flagSimRounds, "rounds", 1, "Number of rounds to play")
	simulateCmd.Flags().BoolVar(&flagSimSave, "save", false, "Save results to the rounds database")
	simulateCmd.Flags().StringVar(&flagSimPlayer, "player", "autopilot", "Name to save rounds under")
}

func runSimulate(_ *cobra.Command, _ []string) {
	difficulty, err := config.ParseDifficulty(flagSimDifficulty)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if flagSimRounds <= 0 {
		fmt.Fprintln(os.Stderr, "Error: --rounds must be positive")
		os.Exit(1)
	}

	logger, closeLog, gameCfg := mustSetup(os.Stderr)
	defer closeLog()

	var store *storage.Store
	if flagSimSave {
		store = openStore(logger)
		if store != nil {
			defer store.Close()
		}
	}

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	fmt.Printf("Simulating %d %s round(s), skill %.2f, seed %d\n\n", flagSimRounds, difficulty, flagSimSkill, seed)
	fmt.Printf("  %-5s  %-7s  %-7s  %-5s  %-5s  %s\n", "Round", "Score", "Correct", "Wrong", "Acc", "Badge")
	fmt.Printf("  %-5s  %-7s  %-7s  %-5s  %-5s  %s\n", "-----", "-----", "-------", "-----", "---", "-----")

	total := 0
	for i := 0; i < flagSimRounds; i++ {
		res, err := eyedrop.Simulate(gameCfg, eyedrop.SimOptions{
			Difficulty: difficulty,
			Seed:       seed + int64(i),
			Skill:      flagSimSkill,
			FrameRate:  flagFPS,
			Logger:     logger,
		})
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		total += res.Score

		fmt.Printf("  %-5d  %-7d  %-7d  %-5d  %-5s  %s\n",
			i+1, res.Score, res.Correct, res.Wrong, fmt.Sprintf("%.0f%%", res.Accuracy*100), res.Badge)

		if store != nil {
			if _, err := store.SaveRound(storage.RoundRecord{
				Player:     flagSimPlayer,
				Difficulty: string(res.Difficulty),
				Score:      res.Score,
				Correct:    res.Correct,
				Wrong:      res.Wrong,
				Accuracy:   res.Accuracy,
				Badge:      res.Badge.String(),
			}); err != nil {
				logger.Warn("round not saved", "err", err)
			}
		}
	}

	fmt.Println()
	fmt.Printf("Average score: %.1f\n", float64(total)/float64(flagSimRounds))
}
