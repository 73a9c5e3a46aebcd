package config

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"
	"time"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	cfg, err := Parse(DefaultYAML())
	if err != nil {
		t.Fatalf("embedded defaults do not parse: %v", err)
	}
	if !reflect.DeepEqual(cfg, DefaultConfig()) {
		t.Errorf("embedded YAML and DefaultConfig() differ:\nyaml: %+v\ncode: %+v", cfg, DefaultConfig())
	}
}

func TestParseOverridesOnlyGivenKeys(t *testing.T) {
	data := []byte(`
round:
  duration_seconds: 60
  sim_rate: 60
  effect_ms: 300
collision:
  prefer_nearest: true
`)
	cfg, err := Parse(data)
	if err != nil {
		t.Fatalf("Parse() failed: %v", err)
	}
	if cfg.Round.DurationSeconds != 60 {
		t.Errorf("DurationSeconds = %d, expected 60", cfg.Round.DurationSeconds)
	}
	if !cfg.Collision.PreferNearest {
		t.Error("PreferNearest should be true")
	}
	if cfg.Shot.Speed != 8 {
		t.Errorf("untouched Shot.Speed = %f, expected default 8", cfg.Shot.Speed)
	}
	if cfg.Settings(DifficultyHard).SpawnEveryMS != 3000 {
		t.Error("untouched difficulty table should keep defaults")
	}
}

func TestParseMergesDifficultyEntries(t *testing.T) {
	tests := []struct {
		name  string
		yaml  string
		d     Difficulty
		want  DifficultySettings
		other DifficultySettings
	}{
		{
			name:  "speed only",
			yaml:  "difficulties: {easy: {target_speed: 2}}",
			d:     DifficultyEasy,
			want:  DifficultySettings{SpawnEveryMS: 7000, TargetSpeed: 2},
			other: DifficultySettings{SpawnEveryMS: 5000, TargetSpeed: 1.0},
		},
		{
			name:  "spawn only",
			yaml:  "difficulties: {hard: {spawn_every_ms: 1500}}",
			d:     DifficultyHard,
			want:  DifficultySettings{SpawnEveryMS: 1500, TargetSpeed: 1.5},
			other: DifficultySettings{SpawnEveryMS: 7000, TargetSpeed: 0.5},
		},
		{
			name:  "both keys",
			yaml:  "difficulties: {medium: {spawn_every_ms: 4000, target_speed: 1.2}}",
			d:     DifficultyMedium,
			want:  DifficultySettings{SpawnEveryMS: 4000, TargetSpeed: 1.2},
			other: DifficultySettings{SpawnEveryMS: 3000, TargetSpeed: 1.5},
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg, err := Parse([]byte(tc.yaml))
			if err != nil {
				t.Fatalf("Parse(%q) failed: %v", tc.yaml, err)
			}
			if got := cfg.Difficulties[tc.d]; got != tc.want {
				t.Errorf("%s = %+v, expected %+v", tc.d, got, tc.want)
			}
			var untouched bool
			for _, d := range Difficulties {
				if d != tc.d && cfg.Difficulties[d] == tc.other {
					untouched = true
				}
			}
			if !untouched {
				t.Errorf("other difficulties lost their defaults: %+v", cfg.Difficulties)
			}
		})
	}
}

func TestParseRejectsInvalid(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{"zero shot speed", "shot: {width: 8, height: 15, speed: 0}"},
		{"unknown difficulty", "difficulties: {insane: {spawn_every_ms: 100, target_speed: 3}}"},
		{"zero spawn period", "difficulties: {easy: {spawn_every_ms: 0, target_speed: 1}}"},
		{"negative duration", "round: {duration_seconds: -1, sim_rate: 60}"},
		{"broken yaml", "shot: [1, 2"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := Parse([]byte(tc.yaml)); err == nil {
				t.Errorf("Parse(%q) should fail", tc.yaml)
			}
		})
	}
}

func TestLoadCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	if err := os.WriteFile(path, []byte("scoring: {correct: 50, wrong: -10}\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.Scoring.Correct != 50 || cfg.Scoring.Wrong != -10 {
		t.Errorf("Scoring = %+v, expected custom values", cfg.Scoring)
	}
}

func TestLoadMissingCustomPath(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("Load() with a missing custom path should fail")
	}
}

func TestParseDifficulty(t *testing.T) {
	tests := []struct {
		in   string
		want Difficulty
	}{
		{"easy", DifficultyEasy},
		{"MEDIUM", DifficultyMedium},
		{"normal", DifficultyMedium},
		{"", DifficultyMedium},
		{" hard ", DifficultyHard},
	}
	for _, tc := range tests {
		got, err := ParseDifficulty(tc.in)
		if err != nil {
			t.Errorf("ParseDifficulty(%q) error: %v", tc.in, err)
			continue
		}
		if got != tc.want {
			t.Errorf("ParseDifficulty(%q) = %q, expected %q", tc.in, got, tc.want)
		}
	}

	if _, err := ParseDifficulty("fixed"); !errors.Is(err, ErrUnknownDifficulty) {
		t.Errorf("ParseDifficulty(fixed) error = %v, expected ErrUnknownDifficulty", err)
	}
}

func TestSettings(t *testing.T) {
	cfg := DefaultConfig()

	tests := []struct {
		d     Difficulty
		every time.Duration
		speed float64
	}{
		{DifficultyEasy, 7 * time.Second, 0.5},
		{DifficultyMedium, 5 * time.Second, 1.0},
		{DifficultyHard, 3 * time.Second, 1.5},
		{Difficulty("bogus"), 5 * time.Second, 1.0},
	}
	for _, tc := range tests {
		s := cfg.Settings(tc.d)
		if s.SpawnEvery() != tc.every || s.TargetSpeed != tc.speed {
			t.Errorf("Settings(%q) = %v/%f, expected %v/%f", tc.d, s.SpawnEvery(), s.TargetSpeed, tc.every, tc.speed)
		}
	}
}

func TestEffectFrames(t *testing.T) {
	r := RoundConfig{EffectMS: 300}
	if got := r.EffectFrames(60); got != 18 {
		t.Errorf("EffectFrames(60) = %d, expected 18", got)
	}
	r.EffectMS = 0
	if got := r.EffectFrames(60); got != 1 {
		t.Errorf("EffectFrames with 0ms = %d, expected at least 1", got)
	}
}
