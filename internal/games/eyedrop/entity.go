package eyedrop

import "github.com/vovakirdan/eyedrop-invaders/internal/core"

// EntityID identifies a live projectile or target. IDs come from a single
// counter and are never reused.
type EntityID uint64

// SetTag selects one of the registry's two entity sets.
type SetTag int

const (
	SetProjectiles SetTag = iota
	SetTargets
)

// String returns the set name.
func (s SetTag) String() string {
	if s == SetTargets {
		return "targets"
	}
	return "projectiles"
}

// Projectile is a treatment fired by the player, moving up.
type Projectile struct {
	ID   EntityID
	Kind Treatment
	Pos  core.Vec
}

// Target is a descending condition.
type Target struct {
	ID        EntityID
	Condition Condition
	Requires  Treatment
	Pos       core.Vec
}

// Registry owns the live projectiles and targets in insertion order.
type Registry struct {
	projectiles []Projectile
	targets     []Target
	nextID      EntityID
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		projectiles: make([]Projectile, 0, 16),
		targets:     make([]Target, 0, 16),
	}
}

func (r *Registry) allocID() EntityID {
	r.nextID++
	return r.nextID
}

// AddProjectile registers a projectile and returns its id.
func (r *Registry) AddProjectile(kind Treatment, pos core.Vec) EntityID {
	id := r.allocID()
	r.projectiles = append(r.projectiles, Projectile{ID: id, Kind: kind, Pos: pos})
	return id
}

// AddTarget registers a target for the condition and returns its id.
func (r *Registry) AddTarget(cond Condition, pos core.Vec) EntityID {
	id := r.allocID()
	r.targets = append(r.targets, Target{
		ID:        id,
		Condition: cond,
		Requires:  cond.Requires(),
		Pos:       pos,
	})
	return id
}

// Remove deletes an entity from a set. It reports whether the entity was live.
func (r *Registry) Remove(set SetTag, id EntityID) bool {
	i := r.indexOf(set, id)
	if i < 0 {
		return false
	}
	switch set {
	case SetProjectiles:
		r.projectiles = append(r.projectiles[:i], r.projectiles[i+1:]...)
	case SetTargets:
		r.targets = append(r.targets[:i], r.targets[i+1:]...)
	}
	return true
}

// ForEach calls fn for every entity live at the start of the call, newest
// first. fn may remove any entity; entities removed before their turn are
// skipped.
func (r *Registry) ForEach(set SetTag, fn func(id EntityID, pos core.Vec)) {
	for _, id := range r.IDs(set) {
		pos, ok := r.PositionOf(set, id)
		if !ok {
			continue
		}
		fn(id, pos)
	}
}

// IDs returns a snapshot of the set's ids, newest first.
func (r *Registry) IDs(set SetTag) []EntityID {
	n := r.Len(set)
	ids := make([]EntityID, 0, n)
	for i := n - 1; i >= 0; i-- {
		switch set {
		case SetProjectiles:
			ids = append(ids, r.projectiles[i].ID)
		case SetTargets:
			ids = append(ids, r.targets[i].ID)
		}
	}
	return ids
}

// PositionOf returns an entity's position.
func (r *Registry) PositionOf(set SetTag, id EntityID) (core.Vec, bool) {
	i := r.indexOf(set, id)
	if i < 0 {
		return core.Vec{}, false
	}
	if set == SetProjectiles {
		return r.projectiles[i].Pos, true
	}
	return r.targets[i].Pos, true
}

// Projectile returns a copy of a live projectile.
func (r *Registry) Projectile(id EntityID) (Projectile, bool) {
	if i := r.indexOf(SetProjectiles, id); i >= 0 {
		return r.projectiles[i], true
	}
	return Projectile{}, false
}

// Target returns a copy of a live target.
func (r *Registry) Target(id EntityID) (Target, bool) {
	if i := r.indexOf(SetTargets, id); i >= 0 {
		return r.targets[i], true
	}
	return Target{}, false
}

// Translate moves a live entity by (dx, dy) and returns its new position.
func (r *Registry) Translate(set SetTag, id EntityID, dx, dy float64) (core.Vec, bool) {
	i := r.indexOf(set, id)
	if i < 0 {
		return core.Vec{}, false
	}
	var p *core.Vec
	if set == SetProjectiles {
		p = &r.projectiles[i].Pos
	} else {
		p = &r.targets[i].Pos
	}
	p.X += dx
	p.Y += dy
	return *p, true
}

// Len returns the number of live entities in a set.
func (r *Registry) Len(set SetTag) int {
	if set == SetProjectiles {
		return len(r.projectiles)
	}
	return len(r.targets)
}

// Projectiles returns a copy of the live projectiles in insertion order.
func (r *Registry) Projectiles() []Projectile {
	return append([]Projectile(nil), r.projectiles...)
}

// Targets returns a copy of the live targets in insertion order.
func (r *Registry) Targets() []Target {
	return append([]Target(nil), r.targets...)
}

// Clear removes every entity. The id counter keeps running.
func (r *Registry) Clear() {
	r.projectiles = r.projectiles[:0]
	r.targets = r.targets[:0]
}

func (r *Registry) indexOf(set SetTag, id EntityID) int {
	switch set {
	case SetProjectiles:
		for i := range r.projectiles {
			if r.projectiles[i].ID == id {
				return i
			}
		}
	case SetTargets:
		for i := range r.targets {
			if r.targets[i].ID == id {
				return i
			}
		}
	}
	return -1
}
