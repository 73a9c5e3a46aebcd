// Package eyedrop implements Eye Drop Invaders: a shooter at the bottom of the
// field fires eye drop treatments at descending eye conditions. Matching the
// treatment to the condition scores points, a mismatch costs points, and the
// round ends when the countdown runs out.
package eyedrop

import (
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/eyedrop-invaders/internal/config"
	"github.com/vovakirdan/eyedrop-invaders/internal/core"
)

// Layout rows reserved around the field on screen.
const (
	hudRows    = 2 // Status line and separator
	footerRows = 2 // Separator and treatment bar
)

// Game adapts an Engine to a frame-driven terminal host. It maps input
// frames to engine commands and advances the frame clock.
type Game struct {
	cfg     config.Config
	runtime core.RuntimeConfig
	logger  *log.Logger
	sinks   []Presenter

	engine  *Engine
	clock   *FrameClock
	effects *Effects

	menuIndex int // Difficulty cursor on the start screen
	paused    bool
}

// New creates a game using cfg. Extra sinks receive every reflection in
// addition to the on-screen effects.
func New(cfg config.Config, logger *log.Logger, sinks ...Presenter) *Game {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	g := &Game{
		cfg:       cfg,
		logger:    logger,
		sinks:     sinks,
		menuIndex: 1,
	}
	g.Reset(core.DefaultConfig())
	return g
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "eyedrop"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Eye Drop Invaders"
}

// Reset rebuilds the engine for runtime and shows the start screen.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	if runtime.TickRate <= 0 {
		runtime.TickRate = 60
	}
	g.runtime = runtime
	g.paused = false

	g.clock = NewFrameClock(runtime.TickRate)
	g.effects = NewEffects(g.cfg.Round.EffectFrames(runtime.TickRate))

	pres := append(Presenters{g.effects}, g.sinks...)
	g.engine = NewEngine(g.cfg,
		WithScheduler(g.clock),
		WithPresenter(pres),
		WithLogger(g.logger),
		WithSeed(runtime.Seed),
	)
	g.Resize(runtime.ScreenW, runtime.ScreenH)
}

// Resize maps a screen of w x h cells to the field without resetting the round.
func (g *Game) Resize(w, h int) {
	g.runtime.ScreenW = w
	g.runtime.ScreenH = h
	rows := max(0, h-hudRows-footerRows)
	g.engine.SetField(
		float64(w*g.cfg.Field.CellWidth),
		float64(rows*g.cfg.Field.CellHeight),
	)
}

// SetDifficulty moves the start screen cursor to d.
func (g *Game) SetDifficulty(d config.Difficulty) {
	for i, known := range config.Difficulties {
		if known == d {
			g.menuIndex = i
		}
	}
}

// Step applies one frame of input and advances the clock.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	for i, a := range core.SlotActions {
		if in.Has(a) {
			g.engine.SetSelectedTreatment(Treatment(i))
		}
	}

	switch g.engine.Phase() {
	case PhaseIdle:
		g.stepIdle(in)
	case PhaseRunning:
		g.stepRunning(in)
	case PhaseEnded:
		if in.Has(core.ActionConfirm) || in.Has(core.ActionRestart) {
			g.engine.Reset()
		}
	}

	if !g.paused {
		g.effects.Advance()
	}
	return core.StepResult{State: g.State()}
}

func (g *Game) stepIdle(in core.InputFrame) {
	if in.Has(core.ActionUp) {
		g.menuIndex = core.Clamp(g.menuIndex-1, 0, len(config.Difficulties)-1)
	}
	if in.Has(core.ActionDown) {
		g.menuIndex = core.Clamp(g.menuIndex+1, 0, len(config.Difficulties)-1)
	}
	if in.Has(core.ActionConfirm) || in.Has(core.ActionFire) {
		g.paused = false
		g.engine.Start(config.Difficulties[g.menuIndex])
	}
}

func (g *Game) stepRunning(in core.InputFrame) {
	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	if in.Has(core.ActionBack) {
		g.paused = false
		g.engine.End()
		return
	}
	if g.paused {
		return
	}

	if in.Has(core.ActionLeft) {
		g.engine.Move(DirLeft)
	}
	if in.Has(core.ActionRight) {
		g.engine.Move(DirRight)
	}
	if in.HasPointer {
		cw := float64(g.cfg.Field.CellWidth)
		g.engine.MoveTo(float64(in.PointerX)*cw + cw/2)
	}
	if in.Has(core.ActionFire) {
		g.engine.Fire()
	}

	g.clock.Advance()
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	st := core.GameState{
		Score:    g.engine.Score(),
		GameOver: g.engine.Phase() == PhaseEnded,
		Paused:   g.paused,
	}
	if st.GameOver {
		res := g.engine.Result()
		st.Outcome = &core.Outcome{
			Difficulty: string(res.Difficulty),
			Correct:    res.Correct,
			Wrong:      res.Wrong,
			Accuracy:   res.Accuracy,
			Badge:      res.Badge.String(),
		}
	}
	return st
}

// Engine exposes the underlying engine.
func (g *Game) Engine() *Engine {
	return g.engine
}

// Effects exposes the live hit effects.
func (g *Game) Effects() *Effects {
	return g.effects
}
