package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/eyedrop-invaders/internal/config"
	"github.com/vovakirdan/eyedrop-invaders/internal/games/eyedrop"
	"github.com/vovakirdan/eyedrop-invaders/internal/platform/tui"
	"github.com/vovakirdan/eyedrop-invaders/internal/spectate"
)

var (
	flagDifficulty string
	flagPlayer     string
	flagSpectate   string
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a round",
	Long: `Start Eye Drop Invaders directly on the start screen.

Controls:
  A/D, Left/Right   - Move the shooter
  Mouse drag/click  - Move the shooter under the pointer
  1-5               - Load a treatment
  Space             - Fire
  Enter             - Start round / play again
  P                 - Pause
  B/Esc             - Abandon round, leave after it ends
  R                 - Back to the start screen after a round
  Q/Ctrl+C          - Quit

Treatments:
  1 Lubricant       -> Dry eye
  2 Antihistaminic  -> Allergic conjunctivitis
  3 Decongestant    -> Sore eye
  4 CS              -> Red eyes (rhinitis)
  5 TS              -> Glaucoma

Examples:
  eyedrop play
  eyedrop play --difficulty hard
  eyedrop play --player ann --spectate :8080
  eyedrop play --config ./my-eyedrop.yaml`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "medium", "Difficulty: easy, medium, hard")
	playCmd.Flags().StringVar(&flagPlayer, "player", "", "Name to save rounds under (default: $USER)")
	playCmd.Flags().StringVar(&flagSpectate, "spectate", "", "Serve a websocket spectator feed on this address")
}

func runPlay(_ *cobra.Command, _ []string) {
	difficulty, err := config.ParseDifficulty(flagDifficulty)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	logger, closeLog, gameCfg := mustSetup(io.Discard)
	defer closeLog()

	player := flagPlayer
	if player == "" {
		player = defaultPlayer()
	}

	var sinks []eyedrop.Presenter
	if flagSpectate != "" {
		hub := spectate.NewHub(logger)
		stop, err := serveSpectators(flagSpectate, hub, logger)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		defer stop()
		sinks = append(sinks, hub.Sink(player))
	}

	game := eyedrop.New(gameCfg, logger, sinks...)
	game.SetDifficulty(difficulty)

	store := openStore(logger)

	_, runErr := tui.Run(game, store, runtimeConfig(player), logger)

	// Close store before potential exit
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}

// serveSpectators starts an HTTP server exposing the hub at /ws. The
// returned func shuts the server down and disconnects spectators.
func serveSpectators(addr string, hub *spectate.Hub, logger *log.Logger) (func(), error) {
	mux := http.NewServeMux()
	mux.Handle("/ws", hub)
	mux.HandleFunc("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	srv := &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errc := make(chan error, 1)
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errc <- err
		}
	}()

	// Surface immediate bind failures
	select {
	case err := <-errc:
		return nil, fmt.Errorf("spectator server: %w", err)
	case <-time.After(100 * time.Millisecond):
	}
	logger.Info("spectator feed listening", "address", addr, "path", "/ws")

	return func() {
		hub.Close()
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		_ = srv.Shutdown(ctx)
	}, nil
}
