package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const configFile = "eyedrop.yaml"

// Load loads the game configuration.
// Search order: customPath -> ~/.eyedrop/configs/eyedrop.yaml -> ./configs/eyedrop.yaml -> embedded default.
// Files are decoded over the defaults, so a file only needs the keys it changes.
func Load(customPath string) (Config, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return Config{}, fmt.Errorf("config: failed to read %s: %w", customPath, err)
		}
		cfg, err := Parse(data)
		if err != nil {
			return Config{}, fmt.Errorf("config: %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath(configFile); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := Parse(data); err == nil {
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile(filepath.Join("configs", configFile)); err == nil {
		if cfg, err := Parse(data); err == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	cfg, err := Parse(defaultYAML)
	if err != nil {
		return DefaultConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// Parse decodes YAML over the built-in defaults and validates the result.
func Parse(data []byte) (Config, error) {
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse: %w", err)
	}
	if err := mergeDifficulties(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// mergeDifficulties decodes each difficulty entry over its own default, so an
// entry only needs the keys it changes.
func mergeDifficulties(data []byte, cfg *Config) error {
	var raw struct {
		Difficulties map[Difficulty]yaml.Node `yaml:"difficulties"`
	}
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return err
	}
	defaults := DefaultConfig().Difficulties
	for d, node := range raw.Difficulties {
		s := defaults[d]
		if err := node.Decode(&s); err != nil {
			return err
		}
		cfg.Difficulties[d] = s
	}
	return nil
}

// Validate rejects configurations the simulation cannot run with.
func (c Config) Validate() error {
	var errs []error

	if c.Field.CellWidth <= 0 || c.Field.CellHeight <= 0 {
		errs = append(errs, errors.New("field cell size must be positive"))
	}
	if c.Player.Width <= 0 || c.Player.Height <= 0 {
		errs = append(errs, errors.New("player size must be positive"))
	}
	if c.Player.MoveStepPercent <= 0 {
		errs = append(errs, errors.New("player move_step_percent must be positive"))
	}
	if c.Shot.Width <= 0 || c.Shot.Height <= 0 || c.Shot.Speed <= 0 {
		errs = append(errs, errors.New("shot size and speed must be positive"))
	}
	if c.Target.Width <= 0 || c.Target.Height <= 0 {
		errs = append(errs, errors.New("target size must be positive"))
	}
	if c.Round.DurationSeconds <= 0 || c.Round.SimRate <= 0 {
		errs = append(errs, errors.New("round duration and sim_rate must be positive"))
	}
	if c.Round.EffectMS < 0 {
		errs = append(errs, errors.New("round effect_ms must not be negative"))
	}
	for d, s := range c.Difficulties {
		if !d.Valid() {
			errs = append(errs, fmt.Errorf("%w %q", ErrUnknownDifficulty, d))
			continue
		}
		if s.SpawnEveryMS <= 0 || s.TargetSpeed <= 0 {
			errs = append(errs, fmt.Errorf("difficulty %s: spawn_every_ms and target_speed must be positive", d))
		}
	}
	for _, d := range Difficulties {
		if _, ok := c.Difficulties[d]; !ok {
			errs = append(errs, fmt.Errorf("difficulty %s is missing", d))
		}
	}

	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".eyedrop", "configs", filename)
}
