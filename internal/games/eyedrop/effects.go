package eyedrop

import "github.com/vovakirdan/eyedrop-invaders/internal/core"

// ExplosionRadius is the hit effect radius in field pixels.
const ExplosionRadius = 30

// Effect is a short-lived hit explosion.
type Effect struct {
	X, Y  float64
	Color core.Color
	Age   int // Frames since the effect started
}

// Effects collects hit effects and ages them per host frame.
type Effects struct {
	NopPresenter

	ttl  int
	list []Effect
}

// NewEffects creates an effect list whose entries live for ttl frames.
func NewEffects(ttl int) *Effects {
	if ttl < 1 {
		ttl = 1
	}
	return &Effects{ttl: ttl}
}

// PlayEffect starts a new explosion.
func (fx *Effects) PlayEffect(x, y float64, color core.Color) {
	fx.list = append(fx.list, Effect{X: x, Y: y, Color: color})
}

// ReflectReset drops every effect.
func (fx *Effects) ReflectReset() {
	fx.list = fx.list[:0]
}

// Advance ages every effect by one frame and drops the expired ones.
func (fx *Effects) Advance() {
	live := fx.list[:0]
	for _, e := range fx.list {
		e.Age++
		if e.Age < fx.ttl {
			live = append(live, e)
		}
	}
	fx.list = live
}

// Progress returns how far through its lifetime e is, in [0, 1).
func (fx *Effects) Progress(e Effect) float64 {
	return float64(e.Age) / float64(fx.ttl)
}

// Active returns the live effects, oldest first.
func (fx *Effects) Active() []Effect {
	return fx.list
}

// Len returns the number of live effects.
func (fx *Effects) Len() int {
	return len(fx.list)
}
