package eyedrop

import (
	"github.com/vovakirdan/eyedrop-invaders/internal/config"
	"github.com/vovakirdan/eyedrop-invaders/internal/core"
)

// Snapshot is a read-only copy of the engine state for hosts and tests.
type Snapshot struct {
	Phase         Phase
	Difficulty    config.Difficulty
	Selected      Treatment
	Score         int
	Correct       int
	Wrong         int
	TimeRemaining int
	Field         Field
	Player        core.Box
	Projectiles   []Projectile
	Targets       []Target
	Deferred      int
	Escaped       int
	Result        Result
}

// Snapshot copies the current state.
func (e *Engine) Snapshot() Snapshot {
	return Snapshot{
		Phase:         e.round.Phase(),
		Difficulty:    e.round.Difficulty(),
		Selected:      e.round.Selected(),
		Score:         e.round.Score(),
		Correct:       e.round.Correct(),
		Wrong:         e.round.Wrong(),
		TimeRemaining: e.round.TimeRemaining(),
		Field:         e.field,
		Player:        e.PlayerBox(),
		Projectiles:   e.reg.Projectiles(),
		Targets:       e.reg.Targets(),
		Deferred:      e.deferred,
		Escaped:       e.escaped,
		Result:        e.round.Result(),
	}
}
