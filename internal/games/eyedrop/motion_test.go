package eyedrop

import (
	"testing"

	"github.com/vovakirdan/eyedrop-invaders/internal/config"
	"github.com/vovakirdan/eyedrop-invaders/internal/core"
)

func TestIntegratorMovesEntities(t *testing.T) {
	cfg := config.DefaultConfig()
	m := NewIntegrator(cfg.Shot, cfg.Target)
	reg := NewRegistry()
	pid := reg.AddProjectile(TreatmentLubricant, core.Vec{X: 10, Y: 200})
	tid := reg.AddTarget(ConditionDryEye, core.Vec{X: 10, Y: 0})

	rep := m.Step(reg, Field{W: 640, H: 480}, 1.5)

	if pos, _ := reg.PositionOf(SetProjectiles, pid); pos.Y != 200-cfg.Shot.Speed {
		t.Errorf("projectile y = %v, want %v", pos.Y, 200-cfg.Shot.Speed)
	}
	if pos, _ := reg.PositionOf(SetTargets, tid); pos.Y != 1.5 {
		t.Errorf("target y = %v, want 1.5", pos.Y)
	}
	if len(rep.Moved) != 2 || len(rep.Evicted) != 0 {
		t.Errorf("report = %+v", rep)
	}
}

func TestIntegratorEvictsProjectileAboveTop(t *testing.T) {
	cfg := config.DefaultConfig()
	m := NewIntegrator(cfg.Shot, cfg.Target)
	reg := NewRegistry()

	// After one step y = -cfg.Shot.Height exactly: still live.
	edge := reg.AddProjectile(TreatmentCS, core.Vec{Y: -cfg.Shot.Height + cfg.Shot.Speed})
	// After one step y < -height: evicted.
	gone := reg.AddProjectile(TreatmentCS, core.Vec{Y: -cfg.Shot.Height + cfg.Shot.Speed - 1})

	rep := m.Step(reg, Field{W: 640, H: 480}, 1)

	if _, ok := reg.Projectile(edge); !ok {
		t.Error("projectile at the boundary was evicted")
	}
	if _, ok := reg.Projectile(gone); ok {
		t.Error("projectile above the top edge is still live")
	}
	if len(rep.Evicted) != 1 || rep.Evicted[0].ID != gone {
		t.Errorf("Evicted = %+v", rep.Evicted)
	}
}

func TestIntegratorEvictsTargetPastBottom(t *testing.T) {
	cfg := config.DefaultConfig()
	m := NewIntegrator(cfg.Shot, cfg.Target)
	reg := NewRegistry()
	const h = 300.0

	stay := reg.AddTarget(ConditionGlaucoma, core.Vec{Y: h - cfg.Target.Height - 1})
	gone := reg.AddTarget(ConditionGlaucoma, core.Vec{Y: h - cfg.Target.Height})

	rep := m.Step(reg, Field{W: 640, H: h}, 1)

	if _, ok := reg.Target(stay); !ok {
		t.Error("target touching the bottom edge was evicted")
	}
	if _, ok := reg.Target(gone); ok {
		t.Error("target past the bottom edge is still live")
	}
	if rep.Escaped != 1 {
		t.Errorf("Escaped = %d, want 1", rep.Escaped)
	}
}

func TestIntegratorUnmeasuredFieldKeepsTargets(t *testing.T) {
	cfg := config.DefaultConfig()
	m := NewIntegrator(cfg.Shot, cfg.Target)
	reg := NewRegistry()
	reg.AddTarget(ConditionRedEyes, core.Vec{Y: 10000})

	rep := m.Step(reg, Field{}, 1)

	if reg.Len(SetTargets) != 1 || rep.Escaped != 0 {
		t.Errorf("target evicted on an unmeasured field: %+v", rep)
	}
}
