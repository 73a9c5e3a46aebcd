package eyedrop

import (
	"github.com/vovakirdan/eyedrop-invaders/internal/config"
)

// Phase is the round lifecycle state.
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseRunning
	PhaseEnded
)

// String returns the phase name.
func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseRunning:
		return "running"
	case PhaseEnded:
		return "ended"
	default:
		return "unknown"
	}
}

// Badge is the award tier for a finished round.
type Badge int

const (
	BadgeNovice Badge = iota
	BadgeHero
	BadgeLegend
)

// String returns the badge name.
func (b Badge) String() string {
	switch b {
	case BadgeHero:
		return "Hero"
	case BadgeLegend:
		return "Legend"
	default:
		return "Novice"
	}
}

// AwardBadge picks the highest tier whose score and accuracy thresholds are
// both met. accuracy is a fraction in [0, 1].
func AwardBadge(score int, accuracy float64, th config.BadgeThresholds) Badge {
	switch {
	case score >= th.LegendScore && accuracy >= th.LegendAccuracy:
		return BadgeLegend
	case score >= th.HeroScore && accuracy >= th.HeroAccuracy:
		return BadgeHero
	default:
		return BadgeNovice
	}
}

// Accuracy returns correct/(correct+wrong), or 0 with no answers.
func Accuracy(correct, wrong int) float64 {
	total := correct + wrong
	if total == 0 {
		return 0
	}
	return float64(correct) / float64(total)
}

// Result is the final tally of a round.
type Result struct {
	Difficulty config.Difficulty
	Score      int
	Correct    int
	Wrong      int
	Accuracy   float64
	Badge      Badge
}

// Round holds score, countdown and phase for one player.
// Mutating methods are no-ops outside the phases they are valid in.
type Round struct {
	scoring  config.ScoringConfig
	badges   config.BadgeThresholds
	duration int

	phase         Phase
	difficulty    config.Difficulty
	selected      Treatment
	score         int
	correct       int
	wrong         int
	timeRemaining int
	result        Result
}

// NewRound creates an idle round.
func NewRound(cfg config.Config) *Round {
	return &Round{
		scoring:       cfg.Scoring,
		badges:        cfg.Badges,
		duration:      cfg.Round.DurationSeconds,
		difficulty:    config.DifficultyMedium,
		selected:      DefaultTreatment,
		timeRemaining: cfg.Round.DurationSeconds,
	}
}

// Start begins a round. Valid from Idle or Ended; it reports whether the
// round started.
func (r *Round) Start(d config.Difficulty) bool {
	if r.phase == PhaseRunning {
		return false
	}
	r.difficulty = d
	r.score = 0
	r.correct = 0
	r.wrong = 0
	r.timeRemaining = r.duration
	r.result = Result{}
	r.phase = PhaseRunning
	return true
}

// Tick consumes one second of the countdown. It reports whether the countdown
// reached zero; the caller then ends the round.
func (r *Round) Tick() (expired bool) {
	if r.phase != PhaseRunning {
		return false
	}
	if r.timeRemaining > 0 {
		r.timeRemaining--
	}
	return r.timeRemaining <= 0
}

// ResolveHit scores one hit. It reports whether the fired kind was correct.
func (r *Round) ResolveHit(fired, required Treatment) bool {
	if r.phase != PhaseRunning {
		return false
	}
	correct := fired == required
	if correct {
		r.score += r.scoring.Correct
		r.correct++
	} else {
		r.score += r.scoring.Wrong
		r.wrong++
	}
	r.clampScore()
	return correct
}

// Penalize applies a score change that does not count as an answer.
func (r *Round) Penalize(points int) {
	if r.phase != PhaseRunning || points == 0 {
		return
	}
	r.score += points
	r.clampScore()
}

func (r *Round) clampScore() {
	if r.score < 0 {
		r.score = 0
	}
}

// End finishes the round and computes the result. Only the first call while
// Running has an effect; it reports whether this call ended the round.
func (r *Round) End() (Result, bool) {
	if r.phase != PhaseRunning {
		return r.result, false
	}
	r.phase = PhaseEnded
	acc := Accuracy(r.correct, r.wrong)
	r.result = Result{
		Difficulty: r.difficulty,
		Score:      r.score,
		Correct:    r.correct,
		Wrong:      r.wrong,
		Accuracy:   acc,
		Badge:      AwardBadge(r.score, acc, r.badges),
	}
	return r.result, true
}

// Reset returns to Idle from any phase with zeroed counters and the default
// treatment selected.
func (r *Round) Reset() {
	r.phase = PhaseIdle
	r.score = 0
	r.correct = 0
	r.wrong = 0
	r.timeRemaining = r.duration
	r.result = Result{}
	r.selected = DefaultTreatment
}

// Select changes the selected treatment. Invalid kinds are ignored.
func (r *Round) Select(t Treatment) bool {
	if !t.Valid() {
		return false
	}
	r.selected = t
	return true
}

func (r *Round) Phase() Phase                  { return r.phase }
func (r *Round) Difficulty() config.Difficulty { return r.difficulty }
func (r *Round) Selected() Treatment           { return r.selected }
func (r *Round) Score() int                    { return r.score }
func (r *Round) Correct() int                  { return r.correct }
func (r *Round) Wrong() int                    { return r.wrong }
func (r *Round) TimeRemaining() int            { return r.timeRemaining }

// Result returns the final tally; zero until the round has ended.
func (r *Round) Result() Result { return r.result }
