package eyedrop

import (
	"fmt"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/eyedrop-invaders/internal/config"
	"github.com/vovakirdan/eyedrop-invaders/internal/core"
)

// SimOptions configures a headless round.
type SimOptions struct {
	Difficulty config.Difficulty
	Seed       int64
	Skill      float64 // Autopilot accuracy (0-1)
	ScreenW    int     // Virtual terminal size, defaults to 80x30
	ScreenH    int
	FrameRate  int // Defaults to 60
	Logger     *log.Logger
	Sinks      []Presenter
}

// Simulate plays one full round with the autopilot and returns its result.
// The same options and config always give the same result.
func Simulate(cfg config.Config, opts SimOptions) (Result, error) {
	if !opts.Difficulty.Valid() {
		return Result{}, fmt.Errorf("simulate: %w %q", config.ErrUnknownDifficulty, opts.Difficulty)
	}
	if opts.ScreenW <= 0 || opts.ScreenH <= 0 {
		opts.ScreenW, opts.ScreenH = 80, 30
	}
	if opts.FrameRate <= 0 {
		opts.FrameRate = 60
	}

	g := New(cfg, opts.Logger, opts.Sinks...)
	g.Reset(core.RuntimeConfig{
		ScreenW:  opts.ScreenW,
		ScreenH:  opts.ScreenH,
		TickRate: opts.FrameRate,
		Seed:     opts.Seed,
	})
	g.SetDifficulty(opts.Difficulty)

	start := core.NewInputFrame()
	start.Set(core.ActionConfirm)
	g.Step(start)
	if g.Engine().Phase() != PhaseRunning {
		return Result{}, fmt.Errorf("simulate: round did not start")
	}

	pilot := NewAutopilot(opts.Seed, opts.Skill)
	limit := (cfg.Round.DurationSeconds + 5) * opts.FrameRate
	for i := 0; i < limit && g.Engine().Phase() == PhaseRunning; i++ {
		g.Step(pilot.Next(g.Engine()))
	}

	if g.Engine().Phase() != PhaseEnded {
		return Result{}, fmt.Errorf("simulate: round still running after %d frames", limit)
	}
	return g.Engine().Result(), nil
}
