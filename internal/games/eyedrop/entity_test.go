package eyedrop

import (
	"testing"

	"github.com/vovakirdan/eyedrop-invaders/internal/core"
)

func TestRegistryUniqueIDs(t *testing.T) {
	reg := NewRegistry()
	seen := make(map[EntityID]bool)
	for i := 0; i < 10; i++ {
		ids := []EntityID{
			reg.AddProjectile(TreatmentLubricant, core.Vec{}),
			reg.AddTarget(ConditionDryEye, core.Vec{}),
		}
		for _, id := range ids {
			if seen[id] {
				t.Fatalf("id %d issued twice", id)
			}
			seen[id] = true
		}
	}
}

func TestRegistryIDsNotReusedAfterClear(t *testing.T) {
	reg := NewRegistry()
	first := reg.AddTarget(ConditionGlaucoma, core.Vec{})
	reg.Clear()
	second := reg.AddTarget(ConditionGlaucoma, core.Vec{})
	if second == first {
		t.Errorf("id %d reused after Clear", first)
	}
	if reg.Len(SetTargets) != 1 {
		t.Errorf("Len = %d, want 1", reg.Len(SetTargets))
	}
}

func TestRegistryTargetRequiresFromCondition(t *testing.T) {
	reg := NewRegistry()
	id := reg.AddTarget(ConditionSoreEye, core.Vec{X: 1, Y: 2})
	tg, ok := reg.Target(id)
	if !ok {
		t.Fatal("target not found")
	}
	if tg.Requires != TreatmentDecongestant {
		t.Errorf("Requires = %s, want decongestant", tg.Requires)
	}
	if pos, _ := reg.PositionOf(SetTargets, id); pos != (core.Vec{X: 1, Y: 2}) {
		t.Errorf("PositionOf = %v", pos)
	}
}

func TestRegistryRemove(t *testing.T) {
	reg := NewRegistry()
	id := reg.AddProjectile(TreatmentCS, core.Vec{})

	if reg.Remove(SetTargets, id) {
		t.Error("removed a projectile id from the target set")
	}
	if !reg.Remove(SetProjectiles, id) {
		t.Error("Remove of live projectile returned false")
	}
	if reg.Remove(SetProjectiles, id) {
		t.Error("second Remove returned true")
	}
	if _, ok := reg.PositionOf(SetProjectiles, id); ok {
		t.Error("removed projectile still has a position")
	}
}

func TestRegistryForEachRemovalSafe(t *testing.T) {
	reg := NewRegistry()
	var ids []EntityID
	for i := 0; i < 6; i++ {
		ids = append(ids, reg.AddTarget(ConditionDryEye, core.Vec{X: float64(i)}))
	}

	visited := make(map[EntityID]int)
	reg.ForEach(SetTargets, func(id EntityID, _ core.Vec) {
		visited[id]++
		// Remove the visited entity and the oldest remaining one.
		reg.Remove(SetTargets, id)
		reg.Remove(SetTargets, ids[0])
	})

	for id, n := range visited {
		if n != 1 {
			t.Errorf("id %d visited %d times", id, n)
		}
	}
	if visited[ids[0]] != 0 {
		t.Error("entity removed before its turn was still visited")
	}
	if len(visited) != 5 {
		t.Errorf("visited %d entities, want 5", len(visited))
	}
	if reg.Len(SetTargets) != 0 {
		t.Errorf("Len = %d, want 0", reg.Len(SetTargets))
	}
}

func TestRegistryIDsNewestFirst(t *testing.T) {
	reg := NewRegistry()
	a := reg.AddProjectile(TreatmentTS, core.Vec{})
	b := reg.AddProjectile(TreatmentTS, core.Vec{})
	got := reg.IDs(SetProjectiles)
	if len(got) != 2 || got[0] != b || got[1] != a {
		t.Errorf("IDs = %v, want [%d %d]", got, b, a)
	}
}

func TestRegistryTranslate(t *testing.T) {
	reg := NewRegistry()
	id := reg.AddProjectile(TreatmentLubricant, core.Vec{X: 10, Y: 100})
	pos, ok := reg.Translate(SetProjectiles, id, 0, -8)
	if !ok || pos != (core.Vec{X: 10, Y: 92}) {
		t.Errorf("Translate = %v, %v", pos, ok)
	}
	if _, ok := reg.Translate(SetTargets, id, 0, 1); ok {
		t.Error("Translate succeeded on the wrong set")
	}
}
