package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/eyedrop-invaders/internal/config"
	"github.com/vovakirdan/eyedrop-invaders/internal/games/eyedrop"
	"github.com/vovakirdan/eyedrop-invaders/internal/platform/tui"
	"github.com/vovakirdan/eyedrop-invaders/internal/spectate"
)

var (
	flagSSHAddr       string
	flagHostKey       string
	flagIdleTimeout   int
	flagServeSpectate string
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the Eye Drop Invaders SSH server",
	Long: `Start an SSH server that allows users to connect and play.

Each SSH connection gets its own session with the launcher menu. Rounds are
saved under the SSH user name and all users share the same scoreboard.

Host key handling:
  - If --host-key is provided, uses that key file
  - Otherwise, auto-generates a key at ~/.eyedrop/host_key

Examples:
  eyedrop serve                           # Listen on :23234 with auto-generated key
  eyedrop serve --ssh :2222               # Listen on port 2222
  eyedrop serve --host-key ./my_host_key  # Use specific host key
  eyedrop serve --spectate :8080          # Also stream every session over websocket

Users can connect with:
  ssh localhost -p 23234`,
	Args: cobra.NoArgs,
	Run:  runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", ":23234", "SSH server address (host:port)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (auto-generated if not specified)")
	serveCmd.Flags().IntVar(&flagIdleTimeout, "idle-timeout", 30, "Idle timeout in minutes before disconnecting")
	serveCmd.Flags().StringVar(&flagServeSpectate, "spectate", "", "Serve a websocket spectator feed on this address")
}

func runServe(_ *cobra.Command, _ []string) {
	logger, closeLog, gameCfg := mustSetup(os.Stderr)
	defer closeLog()

	var hub *spectate.Hub
	if flagServeSpectate != "" {
		hub = spectate.NewHub(logger.WithPrefix("spectate"))
		stop, err := serveSpectators(flagServeSpectate, hub, logger)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		defer stop()
	}

	newGame := func(player string, d config.Difficulty) tui.Game {
		var sinks []eyedrop.Presenter
		if hub != nil {
			sinks = append(sinks, hub.Sink(player))
		}
		g := eyedrop.New(gameCfg, logger.With("user", player), sinks...)
		g.SetDifficulty(d)
		return g
	}

	cfg := tui.SSHServerConfig{
		Address:     flagSSHAddr,
		HostKeyPath: flagHostKey,
		DBPath:      flagDBPath,
		IdleTimeout: time.Duration(flagIdleTimeout) * time.Minute,
		TickRate:    flagFPS,
		NewGame:     newGame,
		Logger:      logger.WithPrefix("eyedrop-ssh"),
	}

	server, err := tui.NewSSHServer(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating server: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Starting Eye Drop Invaders SSH server on %s\n", cfg.Address)
	fmt.Println("Connect with: ssh localhost -p 23234")
	fmt.Println("Press Ctrl+C to stop")

	if err := server.ListenAndServe(); err != nil {
		fmt.Fprintf(os.Stderr, "Server error: %v\n", err)
		os.Exit(1)
	}
}
