package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/eyedrop-invaders/internal/games/eyedrop"
	"github.com/vovakirdan/eyedrop-invaders/internal/platform/tui"
)

func runMenu(_ *cobra.Command, _ []string) {
	logger, closeLog, gameCfg := mustSetup(io.Discard)
	defer closeLog()

	store := openStore(logger)
	if store != nil {
		defer store.Close()
	}

	cfg := runtimeConfig(defaultPlayer())

	// Menu loop
	for {
		best := 0
		if store != nil {
			if high, err := store.HighScore(""); err == nil {
				best = high
			}
		}

		menuResult, err := tui.RunMenu(cfg, best)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			break
		}

		// Update config with any size changes
		cfg = menuResult.Config

		switch menuResult.Choice {
		case tui.ChoicePlay:
			game := eyedrop.New(gameCfg, logger)
			game.SetDifficulty(menuResult.Difficulty)

			back, err := tui.Run(game, store, cfg, logger)
			if err != nil {
				fmt.Fprintf(os.Stderr, "Error running game: %v\n", err)
				return
			}
			if !back {
				return
			}

		case tui.ChoiceScores:
			back, err := tui.RunScoreboard(store, cfg.Player, cfg.ScreenW, cfg.ScreenH)
			if err != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
				return
			}
			if !back {
				return
			}

		default:
			return
		}
	}
}
