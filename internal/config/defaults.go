package config

import (
	_ "embed"
)

//go:embed defaults/eyedrop.yaml
var defaultYAML []byte

// DefaultConfig returns the built-in configuration.
// It mirrors defaults/eyedrop.yaml and is used when the embedded file cannot be parsed.
func DefaultConfig() Config {
	return Config{
		Field: FieldConfig{
			CellWidth:  8,
			CellHeight: 16,
		},
		Player: PlayerConfig{
			Width:           48,
			Height:          32,
			BottomMargin:    0,
			MoveStepPercent: 2,
		},
		Shot: ShotConfig{
			Width:  8,
			Height: 15,
			Speed:  8,
		},
		Target: TargetConfig{
			Width:  45,
			Height: 32,
			SpawnY: -60,
		},
		Round: RoundConfig{
			DurationSeconds: 180,
			SimRate:         60,
			EffectMS:        300,
		},
		Scoring: ScoringConfig{
			Correct:        100,
			Wrong:          -20,
			EscapedPenalty: 0,
		},
		Badges: BadgeThresholds{
			LegendScore:    5000,
			LegendAccuracy: 0.8,
			HeroScore:      2000,
			HeroAccuracy:   0.6,
		},
		Difficulties: map[Difficulty]DifficultySettings{
			DifficultyEasy:   {SpawnEveryMS: 7000, TargetSpeed: 0.5},
			DifficultyMedium: {SpawnEveryMS: 5000, TargetSpeed: 1.0},
			DifficultyHard:   {SpawnEveryMS: 3000, TargetSpeed: 1.5},
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultYAML
}
