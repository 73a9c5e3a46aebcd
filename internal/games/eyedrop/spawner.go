package eyedrop

import (
	"errors"
	"math/rand"

	"github.com/vovakirdan/eyedrop-invaders/internal/config"
	"github.com/vovakirdan/eyedrop-invaders/internal/core"
)

// ErrFieldNotReady is returned when the field has no measurable size yet.
// It is not fatal: the operation is skipped and retried on the next tick.
var ErrFieldNotReady = errors.New("eyedrop: field not measurable")

// Field is the play area size in pixels.
type Field struct {
	W, H float64
}

// Measurable reports whether both dimensions are positive.
func (f Field) Measurable() bool {
	return f.W > 0 && f.H > 0
}

// Spawner creates targets at random conditions and columns.
type Spawner struct {
	rng *rand.Rand
	cfg config.TargetConfig
}

// NewSpawner creates a spawner with the given RNG seed.
func NewSpawner(seed int64, cfg config.TargetConfig) *Spawner {
	return &Spawner{
		rng: rand.New(rand.NewSource(seed)),
		cfg: cfg,
	}
}

// Reseed restarts the random sequence.
func (s *Spawner) Reseed(seed int64) {
	s.rng = rand.New(rand.NewSource(seed))
}

// Spawn adds one target above the top edge of the field.
// The condition is uniform over the five conditions and x is uniform over
// [0, fieldW - targetW].
func (s *Spawner) Spawn(reg *Registry, fieldW float64) (EntityID, error) {
	if fieldW <= 0 {
		return 0, ErrFieldNotReady
	}

	cond := Condition(s.rng.Intn(int(conditionCount)))
	span := fieldW - s.cfg.Width
	if span < 0 {
		span = 0
	}
	x := s.rng.Float64() * span

	return reg.AddTarget(cond, core.Vec{X: x, Y: s.cfg.SpawnY}), nil
}
