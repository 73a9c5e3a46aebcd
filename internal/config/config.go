// Package config provides YAML-based configuration loading and the difficulty
// table for Eye Drop Invaders.
package config

import "time"

// Config contains all tunables for a round.
type Config struct {
	Field        FieldConfig                       `yaml:"field"`
	Player       PlayerConfig                      `yaml:"player"`
	Shot         ShotConfig                        `yaml:"shot"`
	Target       TargetConfig                      `yaml:"target"`
	Round        RoundConfig                       `yaml:"round"`
	Scoring      ScoringConfig                     `yaml:"scoring"`
	Badges       BadgeThresholds                   `yaml:"badges"`
	Difficulties map[Difficulty]DifficultySettings `yaml:"difficulties"`
	Collision    CollisionConfig                   `yaml:"collision"`
}

// FieldConfig maps terminal cells to field pixels.
type FieldConfig struct {
	CellWidth  int `yaml:"cell_width"`
	CellHeight int `yaml:"cell_height"`
}

// PlayerConfig defines the shooter footprint and movement.
type PlayerConfig struct {
	Width           float64 `yaml:"width"`
	Height          float64 `yaml:"height"`
	BottomMargin    float64 `yaml:"bottom_margin"`
	MoveStepPercent float64 `yaml:"move_step_percent"` // Percent of field width per move command
}

// ShotConfig defines projectile size and speed.
type ShotConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
	Speed  float64 `yaml:"speed"` // Pixels per simulation tick, upward
}

// TargetConfig defines target size and spawn height.
type TargetConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
	SpawnY float64 `yaml:"spawn_y"` // Negative: above the visible field
}

// RoundConfig defines round timing.
type RoundConfig struct {
	DurationSeconds int `yaml:"duration_seconds"`
	SimRate         int `yaml:"sim_rate"`  // Simulation ticks per second
	EffectMS        int `yaml:"effect_ms"` // Lifetime of hit effects
}

// ScoringConfig defines points per outcome.
type ScoringConfig struct {
	Correct        int `yaml:"correct"`
	Wrong          int `yaml:"wrong"`
	EscapedPenalty int `yaml:"escaped_penalty"` // Applied when a target leaves the bottom edge
}

// BadgeThresholds defines the minimum score and accuracy (0..1) per badge.
type BadgeThresholds struct {
	LegendScore    int     `yaml:"legend_score"`
	LegendAccuracy float64 `yaml:"legend_accuracy"`
	HeroScore      int     `yaml:"hero_score"`
	HeroAccuracy   float64 `yaml:"hero_accuracy"`
}

// CollisionConfig selects how multi-overlap is resolved.
type CollisionConfig struct {
	PreferNearest bool `yaml:"prefer_nearest"`
}

// DifficultySettings holds the per-difficulty spawn period and target speed.
type DifficultySettings struct {
	SpawnEveryMS int     `yaml:"spawn_every_ms"`
	TargetSpeed  float64 `yaml:"target_speed"`
}

// SpawnEvery returns the spawn period as a duration.
func (d DifficultySettings) SpawnEvery() time.Duration {
	return time.Duration(d.SpawnEveryMS) * time.Millisecond
}

// EffectFrames converts the effect lifetime to frames at the given rate.
func (r RoundConfig) EffectFrames(frameRate int) int {
	frames := r.EffectMS * frameRate / 1000
	if frames < 1 {
		frames = 1
	}
	return frames
}
