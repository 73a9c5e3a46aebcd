package eyedrop

import (
	"github.com/vovakirdan/eyedrop-invaders/internal/config"
	"github.com/vovakirdan/eyedrop-invaders/internal/core"
)

// Moved records an entity's position after integration.
type Moved struct {
	Set SetTag
	ID  EntityID
	Pos core.Vec
}

// Evicted records an entity removed for leaving the field.
type Evicted struct {
	Set SetTag
	ID  EntityID
}

// MotionReport lists what one integration step did.
type MotionReport struct {
	Moved   []Moved
	Evicted []Evicted
	Escaped int // Targets that left through the bottom edge
}

// Integrator advances entities by one simulation tick.
type Integrator struct {
	shot   config.ShotConfig
	target config.TargetConfig
}

// NewIntegrator creates an integrator for the given entity sizes and shot speed.
func NewIntegrator(shot config.ShotConfig, target config.TargetConfig) Integrator {
	return Integrator{shot: shot, target: target}
}

// Step moves projectiles up by the shot speed and targets down by targetSpeed,
// then evicts projectiles above the top edge and targets past the bottom edge.
// Evicted entities are gone from the registry when Step returns.
func (m Integrator) Step(reg *Registry, field Field, targetSpeed float64) MotionReport {
	var rep MotionReport

	for _, id := range reg.IDs(SetProjectiles) {
		pos, ok := reg.Translate(SetProjectiles, id, 0, -m.shot.Speed)
		if !ok {
			continue
		}
		if pos.Y < -m.shot.Height {
			reg.Remove(SetProjectiles, id)
			rep.Evicted = append(rep.Evicted, Evicted{Set: SetProjectiles, ID: id})
			continue
		}
		rep.Moved = append(rep.Moved, Moved{Set: SetProjectiles, ID: id, Pos: pos})
	}

	for _, id := range reg.IDs(SetTargets) {
		pos, ok := reg.Translate(SetTargets, id, 0, targetSpeed)
		if !ok {
			continue
		}
		// An unmeasured field has no bottom edge yet.
		if field.H > 0 && pos.Y+m.target.Height > field.H {
			reg.Remove(SetTargets, id)
			rep.Evicted = append(rep.Evicted, Evicted{Set: SetTargets, ID: id})
			rep.Escaped++
			continue
		}
		rep.Moved = append(rep.Moved, Moved{Set: SetTargets, ID: id, Pos: pos})
	}

	return rep
}
