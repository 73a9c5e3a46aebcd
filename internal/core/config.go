package core

// RuntimeConfig contains host settings passed to a game at initialization.
type RuntimeConfig struct {
	ScreenW  int    // Screen width in characters
	ScreenH  int    // Screen height in characters
	TickRate int    // Host frames per second (default 60)
	Seed     int64  // RNG seed for deterministic gameplay
	Player   string // Name recorded with saved rounds
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// Outcome describes a finished round for persistence.
type Outcome struct {
	Difficulty string
	Correct    int
	Wrong      int
	Accuracy   float64
	Badge      string
}

// GameState represents the current state of a game as seen by the host.
type GameState struct {
	Score    int      // Current score
	GameOver bool     // Whether the round has ended
	Paused   bool     // Whether the host clock is frozen
	Outcome  *Outcome // Set once the round has ended
}

// StepResult is returned by Game.Step() after each host frame.
type StepResult struct {
	State GameState
}
