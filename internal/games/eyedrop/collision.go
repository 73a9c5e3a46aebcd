package eyedrop

import (
	"github.com/vovakirdan/eyedrop-invaders/internal/config"
	"github.com/vovakirdan/eyedrop-invaders/internal/core"
)

// Hit is a resolved projectile/target collision. Both entities have already
// been removed from the registry.
type Hit struct {
	Projectile Projectile
	Target     Target
}

// Correct reports whether the projectile was the right treatment.
func (h Hit) Correct() bool {
	return h.Projectile.Kind == h.Target.Requires
}

// Resolver finds and consumes overlapping projectile/target pairs.
type Resolver struct {
	shot          config.ShotConfig
	target        config.TargetConfig
	preferNearest bool
}

// NewResolver creates a resolver for the given entity sizes.
func NewResolver(shot config.ShotConfig, target config.TargetConfig, c config.CollisionConfig) Resolver {
	return Resolver{shot: shot, target: target, preferNearest: c.PreferNearest}
}

// ProjectileBox returns the bounding box of a projectile at pos.
func (r Resolver) ProjectileBox(pos core.Vec) core.Box {
	return core.NewBox(pos.X, pos.Y, r.shot.Width, r.shot.Height)
}

// TargetBox returns the bounding box of a target at pos.
func (r Resolver) TargetBox(pos core.Vec) core.Box {
	return core.NewBox(pos.X, pos.Y, r.target.Width, r.target.Height)
}

// Resolve pairs each projectile with at most one overlapping target, newest
// projectile first. A matched target is removed immediately so no later
// projectile can claim it this tick. Other targets the projectile overlapped
// stay live.
func (r Resolver) Resolve(reg *Registry) []Hit {
	var hits []Hit

	for _, pid := range reg.IDs(SetProjectiles) {
		p, ok := reg.Projectile(pid)
		if !ok {
			continue
		}
		t, ok := r.match(reg, r.ProjectileBox(p.Pos))
		if !ok {
			continue
		}

		reg.Remove(SetTargets, t.ID)
		reg.Remove(SetProjectiles, p.ID)
		hits = append(hits, Hit{Projectile: p, Target: t})
	}

	return hits
}

// match returns the target a projectile box resolves against: the first
// overlapping target in traversal order, or with preferNearest the one whose
// bottom edge is lowest.
func (r Resolver) match(reg *Registry, pb core.Box) (Target, bool) {
	var (
		best  Target
		found bool
	)
	for _, tid := range reg.IDs(SetTargets) {
		t, ok := reg.Target(tid)
		if !ok {
			continue
		}
		tb := r.TargetBox(t.Pos)
		if !pb.Overlaps(tb) {
			continue
		}
		if !r.preferNearest {
			return t, true
		}
		if !found || tb.Bottom() > r.TargetBox(best.Pos).Bottom() {
			best = t
			found = true
		}
	}
	return best, found
}
