package eyedrop

import (
	"errors"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/eyedrop-invaders/internal/config"
	"github.com/vovakirdan/eyedrop-invaders/internal/core"
)

// Direction is a horizontal move command.
type Direction int

const (
	DirLeft  Direction = -1
	DirRight Direction = 1
)

// Option configures an Engine.
type Option func(*Engine)

// WithPresenter sets the presentation sink.
func WithPresenter(p Presenter) Option {
	return func(e *Engine) {
		if p != nil {
			e.pres = p
		}
	}
}

// WithScheduler sets the tick source. The default is a FrameClock at the
// configured simulation rate.
func WithScheduler(s Scheduler) Option {
	return func(e *Engine) {
		if s != nil {
			e.sched = s
		}
	}
}

// WithLogger sets the logger. The default discards output.
func WithLogger(l *log.Logger) Option {
	return func(e *Engine) {
		if l != nil {
			e.log = l
		}
	}
}

// WithSeed seeds target placement.
func WithSeed(seed int64) Option {
	return func(e *Engine) {
		e.spawner.Reseed(seed)
	}
}

// Engine runs one player's rounds. It owns the registry and round state and
// is driven from a single goroutine by commands and scheduler ticks.
type Engine struct {
	cfg      config.Config
	reg      *Registry
	round    *Round
	spawner  *Spawner
	motion   Integrator
	resolver Resolver

	sched Scheduler
	pres  Presenter
	log   *log.Logger

	field   Field
	playerX float64
	placed  bool // Player has been positioned on a measurable field

	deferred int
	escaped  int
}

// NewEngine creates an idle engine.
func NewEngine(cfg config.Config, opts ...Option) *Engine {
	e := &Engine{
		cfg:      cfg,
		reg:      NewRegistry(),
		round:    NewRound(cfg),
		spawner:  NewSpawner(time.Now().UnixNano(), cfg.Target),
		motion:   NewIntegrator(cfg.Shot, cfg.Target),
		resolver: NewResolver(cfg.Shot, cfg.Target, cfg.Collision),
		sched:    NewFrameClock(cfg.Round.SimRate),
		pres:     NopPresenter{},
		log:      log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Start begins a round at difficulty d from Idle or Ended. Unknown
// difficulties are ignored. It reports whether a round started.
func (e *Engine) Start(d config.Difficulty) bool {
	if !d.Valid() {
		e.log.Warn("ignoring start", "difficulty", d, "err", config.ErrUnknownDifficulty)
		return false
	}
	if !e.round.Start(d) {
		return false
	}

	e.clearEntities()
	e.centerPlayer()
	e.deferred = 0
	e.escaped = 0
	e.pres.ReflectReset()

	settings := e.cfg.Settings(d)
	e.sched.Start(TickSources{
		SimRate:   e.cfg.Round.SimRate,
		Countdown: time.Second,
		Spawn:     settings.SpawnEvery(),
	}, e)

	e.pres.ReflectScore(e.round.Score())
	e.pres.ReflectCountdown(e.round.TimeRemaining())
	e.log.Info("round started", "difficulty", d, "seconds", e.round.TimeRemaining())
	return true
}

// End stops the tick sources and finishes the round. Calling it again, or
// outside Running, returns the stored result and does nothing else.
func (e *Engine) End() (Result, bool) {
	if e.round.Phase() != PhaseRunning {
		return e.round.Result(), false
	}
	e.sched.Stop()

	res, ok := e.round.End()
	if !ok {
		return res, false
	}
	e.pres.ReflectRoundEnd(res)
	e.log.Info("round ended",
		"difficulty", res.Difficulty,
		"score", res.Score,
		"correct", res.Correct,
		"wrong", res.Wrong,
		"badge", res.Badge,
		"deferred_spawns", e.deferred,
		"escaped", e.escaped,
	)
	return res, true
}

// Reset stops the tick sources and returns to Idle from any phase.
func (e *Engine) Reset() {
	e.sched.Stop()
	e.clearEntities()
	e.round.Reset()
	e.centerPlayer()
	e.deferred = 0
	e.escaped = 0

	e.pres.ReflectReset()
	e.pres.ReflectScore(e.round.Score())
	e.pres.ReflectCountdown(e.round.TimeRemaining())
}

// SetField updates the play area size. The player is centred the first
// time the field becomes measurable and kept inside it afterwards.
func (e *Engine) SetField(w, h float64) {
	e.field = Field{W: w, H: h}
	if !e.field.Measurable() {
		return
	}
	if !e.placed {
		e.centerPlayer()
		return
	}
	e.playerX = e.clampPlayerX(e.playerX)
}

// Move shifts the player one step. Running only.
func (e *Engine) Move(dir Direction) {
	if e.round.Phase() != PhaseRunning {
		return
	}
	if !e.field.Measurable() {
		e.log.Debug("move skipped", "err", ErrFieldNotReady)
		return
	}
	step := e.cfg.Player.MoveStepPercent * e.field.W / 100
	e.playerX = e.clampPlayerX(e.playerX + float64(dir)*step)
}

// MoveTo centres the player on x. Running only.
func (e *Engine) MoveTo(x float64) {
	if e.round.Phase() != PhaseRunning {
		return
	}
	if !e.field.Measurable() {
		e.log.Debug("move skipped", "err", ErrFieldNotReady)
		return
	}
	e.playerX = e.clampPlayerX(x - e.cfg.Player.Width/2)
}

// Fire launches a projectile of the selected treatment from the player's
// top centre. Running only.
func (e *Engine) Fire() (EntityID, bool) {
	if e.round.Phase() != PhaseRunning {
		return 0, false
	}
	if !e.field.Measurable() {
		e.log.Debug("fire skipped", "err", ErrFieldNotReady)
		return 0, false
	}
	pos := core.Vec{
		X: e.playerX + e.cfg.Player.Width/2 - e.cfg.Shot.Width/2,
		Y: e.playerY() - e.cfg.Shot.Height,
	}
	id := e.reg.AddProjectile(e.round.Selected(), pos)
	e.pres.Reflect(id, pos)
	return id, true
}

// SetSelectedTreatment changes the loaded treatment in any phase.
func (e *Engine) SetSelectedTreatment(t Treatment) bool {
	return e.round.Select(t)
}

// SimTick integrates motion, evicts out-of-bounds entities, resolves
// collisions and reflects the surviving positions.
func (e *Engine) SimTick() {
	if e.round.Phase() != PhaseRunning {
		return
	}

	settings := e.cfg.Settings(e.round.Difficulty())
	rep := e.motion.Step(e.reg, e.field, settings.TargetSpeed)
	for _, ev := range rep.Evicted {
		e.pres.ReflectRemoval(ev.ID)
	}

	scoreChanged := false
	if rep.Escaped > 0 {
		e.escaped += rep.Escaped
		if p := e.cfg.Scoring.EscapedPenalty; p != 0 {
			e.round.Penalize(p * rep.Escaped)
			scoreChanged = true
		}
	}

	for _, hit := range e.resolver.Resolve(e.reg) {
		correct := e.round.ResolveHit(hit.Projectile.Kind, hit.Target.Requires)
		scoreChanged = true

		e.pres.ReflectRemoval(hit.Projectile.ID)
		e.pres.ReflectRemoval(hit.Target.ID)
		c := e.resolver.TargetBox(hit.Target.Pos).Center()
		e.pres.PlayEffect(c.X, c.Y, hit.Target.Condition.Color())

		e.log.Debug("hit",
			"fired", hit.Projectile.Kind,
			"condition", hit.Target.Condition,
			"correct", correct,
			"score", e.round.Score(),
		)
	}
	if scoreChanged {
		e.pres.ReflectScore(e.round.Score())
	}

	e.reg.ForEach(SetProjectiles, e.pres.Reflect)
	e.reg.ForEach(SetTargets, e.pres.Reflect)
}

// CountdownTick consumes one second and ends the round when time runs out.
func (e *Engine) CountdownTick() {
	if e.round.Phase() != PhaseRunning {
		return
	}
	expired := e.round.Tick()
	e.pres.ReflectCountdown(e.round.TimeRemaining())
	if expired {
		e.End()
	}
}

// SpawnTick adds one target, or defers when the field is not measurable.
func (e *Engine) SpawnTick() {
	if e.round.Phase() != PhaseRunning {
		return
	}
	id, err := e.spawner.Spawn(e.reg, e.field.W)
	if errors.Is(err, ErrFieldNotReady) {
		e.deferred++
		e.log.Debug("spawn deferred", "err", err, "deferred", e.deferred)
		return
	}
	if pos, ok := e.reg.PositionOf(SetTargets, id); ok {
		e.pres.Reflect(id, pos)
	}
}

func (e *Engine) clearEntities() {
	for _, set := range []SetTag{SetProjectiles, SetTargets} {
		for _, id := range e.reg.IDs(set) {
			e.pres.ReflectRemoval(id)
		}
	}
	e.reg.Clear()
}

func (e *Engine) centerPlayer() {
	if !e.field.Measurable() {
		e.placed = false
		return
	}
	e.playerX = e.clampPlayerX((e.field.W - e.cfg.Player.Width) / 2)
	e.placed = true
}

func (e *Engine) clampPlayerX(x float64) float64 {
	return core.ClampF(x, 0, max(0, e.field.W-e.cfg.Player.Width))
}

func (e *Engine) playerY() float64 {
	return e.field.H - e.cfg.Player.Height - e.cfg.Player.BottomMargin
}

// Player returns the player's top-left corner.
func (e *Engine) Player() core.Vec {
	return core.Vec{X: e.playerX, Y: e.playerY()}
}

// PlayerBox returns the player's footprint.
func (e *Engine) PlayerBox() core.Box {
	return core.NewBox(e.playerX, e.playerY(), e.cfg.Player.Width, e.cfg.Player.Height)
}

func (e *Engine) Phase() Phase                  { return e.round.Phase() }
func (e *Engine) Difficulty() config.Difficulty { return e.round.Difficulty() }
func (e *Engine) Selected() Treatment           { return e.round.Selected() }
func (e *Engine) Score() int                    { return e.round.Score() }
func (e *Engine) Correct() int                  { return e.round.Correct() }
func (e *Engine) Wrong() int                    { return e.round.Wrong() }
func (e *Engine) TimeRemaining() int            { return e.round.TimeRemaining() }
func (e *Engine) Result() Result                { return e.round.Result() }
func (e *Engine) Field() Field                  { return e.field }
func (e *Engine) Config() config.Config         { return e.cfg }
func (e *Engine) Registry() *Registry           { return e.reg }
func (e *Engine) Scheduler() Scheduler          { return e.sched }

// Resolver returns the collision geometry in use.
func (e *Engine) Resolver() Resolver { return e.resolver }

// DeferredSpawns counts spawn ticks skipped this round for lack of a field.
func (e *Engine) DeferredSpawns() int { return e.deferred }

// Escaped counts targets that left through the bottom edge this round.
func (e *Engine) Escaped() int { return e.escaped }

var _ Handlers = (*Engine)(nil)
