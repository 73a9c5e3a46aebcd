package eyedrop

import (
	"math"
	"math/rand"

	"github.com/vovakirdan/eyedrop-invaders/internal/core"
)

// Autopilot plays a round from the input side. It tracks the lowest target,
// loads the treatment it needs with probability Skill, and fires once lined up.
type Autopilot struct {
	Skill    float64 // Chance of loading the right treatment (0-1)
	Cooldown int     // Frames between shots

	rng     *rand.Rand
	wait    int
	aimedAt EntityID
	firedAt EntityID
	choice  Treatment
}

// NewAutopilot creates an autopilot with its own seeded RNG.
func NewAutopilot(seed int64, skill float64) *Autopilot {
	return &Autopilot{
		Skill:    core.ClampF(skill, 0, 1),
		Cooldown: 12,
		rng:      rand.New(rand.NewSource(seed)),
	}
}

// Next returns the input for the coming frame.
func (a *Autopilot) Next(e *Engine) core.InputFrame {
	in := core.NewInputFrame()
	if e.Phase() != PhaseRunning {
		return in
	}
	if a.wait > 0 {
		a.wait--
	}

	t, ok := a.pickTarget(e)
	if !ok {
		return in
	}
	if t.ID != a.aimedAt {
		a.aimedAt = t.ID
		a.choice = t.Requires
		if a.rng.Float64() >= a.Skill {
			a.choice = Treatment((int(t.Requires) + 1 + a.rng.Intn(int(treatmentCount)-1)) % int(treatmentCount))
		}
	}
	if e.Selected() != a.choice {
		in.Set(core.SlotActions[a.choice])
	}

	// Track the target centre with the shot centre.
	cfg := e.Config()
	targetX := t.Pos.X + cfg.Target.Width/2
	shotX := e.Player().X + cfg.Player.Width/2
	diff := targetX - shotX
	step := cfg.Player.MoveStepPercent * e.Field().W / 100

	if math.Abs(diff) > step/2 {
		if diff > 0 {
			in.Set(core.ActionRight)
		} else {
			in.Set(core.ActionLeft)
		}
	}
	// Fire once per target, and only while it is still above the muzzle so
	// the shot meets it before it leaves the field.
	above := t.Pos.Y+cfg.Target.Height < e.Player().Y-cfg.Shot.Height
	if math.Abs(diff) <= cfg.Target.Width/2 && a.wait == 0 && above && a.firedAt != t.ID {
		in.Set(core.ActionFire)
		a.firedAt = t.ID
		a.wait = a.Cooldown
	}
	return in
}

// pickTarget returns the visible target lowest in the field.
func (a *Autopilot) pickTarget(e *Engine) (Target, bool) {
	var (
		best  Target
		found bool
	)
	for _, t := range e.Registry().Targets() {
		if !found || t.Pos.Y > best.Pos.Y {
			best = t
			found = true
		}
	}
	return best, found
}
