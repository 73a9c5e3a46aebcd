// eyedrop is a terminal arcade game: shoot the right eye drop at each
// falling eye condition before the countdown runs out.
//
// Usage:
//
//	eyedrop                  - Start the launcher menu
//	eyedrop play             - Play a round directly
//	eyedrop simulate         - Run headless rounds with the autopilot
//	eyedrop scores           - Show the round history
//	eyedrop serve            - Start SSH server for remote play
//
// Global flags:
//
//	--fps <rate>        - Set host frame rate (default: 60)
//	--seed <value>      - Set RNG seed for reproducible rounds
//	--db <path>         - Set database path (default: ~/.eyedrop/rounds.db)
//	--config <path>     - Use a custom game config YAML
//	--log-level <lvl>   - debug, info, warn, error (default: info)
//	--log-file <path>   - Write logs to a file
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/eyedrop-invaders/internal/config"
	"github.com/vovakirdan/eyedrop-invaders/internal/core"
	"github.com/vovakirdan/eyedrop-invaders/internal/storage"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagDBPath   string
	flagConfig   string
	flagLogLevel string
	flagLogFile  string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "eyedrop",
	Short: "Eye Drop Invaders - treat falling eye conditions in your terminal",
	Long: `Eye Drop Invaders is a terminal arcade game. Eye conditions fall from the
top of the field; load the matching treatment and shoot it before the
countdown runs out.

Available commands:
  play      - Play a round directly
  simulate  - Run headless rounds with the autopilot
  scores    - View the round history
  serve     - Start SSH server for remote play

Running eyedrop without a command opens the launcher menu.

Examples:
  eyedrop
  eyedrop play --difficulty hard
  eyedrop simulate --rounds 5 --skill 0.8
  eyedrop serve --ssh :2222
  eyedrop scores --difficulty easy`,
	Run: runMenu,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Host frame rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.eyedrop/rounds.db", "Path to rounds database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(simulateCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
}

// newLogger builds the shared logger. Logs go to --log-file when set and to
// fallback otherwise. The returned func closes the log file.
func newLogger(fallback io.Writer) (*log.Logger, func(), error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid --log-level: %w", err)
	}

	out, closer := fallback, func() {}
	if flagLogFile != "" {
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("cannot open log file: %w", err)
		}
		out, closer = f, func() { f.Close() }
	}

	logger := log.NewWithOptions(out, log.Options{
		ReportTimestamp: true,
		Prefix:          "eyedrop",
		Level:           level,
	})
	return logger, closer, nil
}

// mustSetup loads the logger and game config, exiting on failure.
func mustSetup(fallback io.Writer) (*log.Logger, func(), config.Config) {
	logger, closeLog, err := newLogger(fallback)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	cfg, err := config.Load(flagConfig)
	if err != nil {
		closeLog()
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}
	return logger, closeLog, cfg
}

// openStore opens the rounds database. Failure is not fatal: the game runs
// without saving.
func openStore(logger *log.Logger) *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open rounds database: %v\n", err)
		logger.Warn("playing without saving", "err", err)
		return nil
	}
	return store
}

// runtimeConfig builds the host config from the terminal size and flags.
func runtimeConfig(player string) core.RuntimeConfig {
	width, height := 80, 24 // Defaults
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}

	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
		Player:   player,
	}
}

// defaultPlayer is the name rounds are saved under when --player is unset.
func defaultPlayer() string {
	if u := os.Getenv("USER"); u != "" {
		return u
	}
	return "player"
}
