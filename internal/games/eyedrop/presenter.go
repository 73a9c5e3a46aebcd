package eyedrop

import "github.com/vovakirdan/eyedrop-invaders/internal/core"

// Presenter receives one-way state reflections from the engine.
// Implementations must not call back into the engine.
type Presenter interface {
	Reflect(id EntityID, pos core.Vec)
	ReflectRemoval(id EntityID)
	ReflectScore(score int)
	ReflectCountdown(secondsRemaining int)
	ReflectRoundEnd(res Result)
	PlayEffect(x, y float64, color core.Color)
	ReflectReset()
}

// NopPresenter ignores every reflection. Embed it to implement only the
// calls a sink cares about.
type NopPresenter struct{}

func (NopPresenter) Reflect(EntityID, core.Vec)              {}
func (NopPresenter) ReflectRemoval(EntityID)                 {}
func (NopPresenter) ReflectScore(int)                        {}
func (NopPresenter) ReflectCountdown(int)                    {}
func (NopPresenter) ReflectRoundEnd(Result)                  {}
func (NopPresenter) PlayEffect(float64, float64, core.Color) {}
func (NopPresenter) ReflectReset()                           {}

// Presenters fans every reflection out to each sink in order.
type Presenters []Presenter

func (ps Presenters) Reflect(id EntityID, pos core.Vec) {
	for _, p := range ps {
		p.Reflect(id, pos)
	}
}

func (ps Presenters) ReflectRemoval(id EntityID) {
	for _, p := range ps {
		p.ReflectRemoval(id)
	}
}

func (ps Presenters) ReflectScore(score int) {
	for _, p := range ps {
		p.ReflectScore(score)
	}
}

func (ps Presenters) ReflectCountdown(secondsRemaining int) {
	for _, p := range ps {
		p.ReflectCountdown(secondsRemaining)
	}
}

func (ps Presenters) ReflectRoundEnd(res Result) {
	for _, p := range ps {
		p.ReflectRoundEnd(res)
	}
}

func (ps Presenters) PlayEffect(x, y float64, color core.Color) {
	for _, p := range ps {
		p.PlayEffect(x, y, color)
	}
}

func (ps Presenters) ReflectReset() {
	for _, p := range ps {
		p.ReflectReset()
	}
}

var (
	_ Presenter = NopPresenter{}
	_ Presenter = Presenters(nil)
)
