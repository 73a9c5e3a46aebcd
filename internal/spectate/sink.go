package spectate

import (
	"github.com/vovakirdan/eyedrop-invaders/internal/core"
	"github.com/vovakirdan/eyedrop-invaders/internal/games/eyedrop"
)

// Sink is a presenter that forwards one session's reflections to a hub.
type Sink struct {
	hub     *Hub
	session string
}

// Sink returns a presenter tagging every event with the session name.
func (h *Hub) Sink(session string) *Sink {
	return &Sink{hub: h, session: session}
}

var _ eyedrop.Presenter = (*Sink)(nil)

func (s *Sink) send(ev Event) {
	ev.Session = s.session
	s.hub.Broadcast(ev)
}

func (s *Sink) Reflect(id eyedrop.EntityID, pos core.Vec) {
	s.send(Event{Type: EventPosition, ID: uint64(id), X: pos.X, Y: pos.Y})
}

func (s *Sink) ReflectRemoval(id eyedrop.EntityID) {
	s.send(Event{Type: EventRemoval, ID: uint64(id)})
}

func (s *Sink) ReflectScore(score int) {
	s.send(Event{Type: EventScore, Value: score})
}

func (s *Sink) ReflectCountdown(secondsRemaining int) {
	s.send(Event{Type: EventCountdown, Value: secondsRemaining})
}

func (s *Sink) ReflectRoundEnd(res eyedrop.Result) {
	s.send(Event{Type: EventRoundEnd, Value: res.Score, Result: &RoundSummary{
		Difficulty: string(res.Difficulty),
		Score:      res.Score,
		Correct:    res.Correct,
		Wrong:      res.Wrong,
		Accuracy:   res.Accuracy,
		Badge:      res.Badge.String(),
	}})
}

func (s *Sink) PlayEffect(x, y float64, color core.Color) {
	s.send(Event{Type: EventEffect, X: x, Y: y, Color: color.Hex()})
}

func (s *Sink) ReflectReset() {
	s.send(Event{Type: EventReset})
}
