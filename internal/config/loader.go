package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadTetris loads the game configuration.
// Search order: customPath -> ~/.termtris/tetris.yaml -> ./configs/tetris.yaml -> embedded default.
// The result is normalized; only an explicit customPath can produce an error.
func LoadTetris(customPath string) (TetrisConfig, error) {
	cfg := DefaultTetrisConfig()

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		cfg.Normalize()
		if err := cfg.Validate(); err != nil {
			return cfg, fmt.Errorf("invalid config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory, then local configs directory
	for _, path := range []string{userConfigPath("tetris.yaml"), filepath.Join("configs", "tetris.yaml")} {
		if path == "" {
			continue
		}
		if loaded, ok := tryLoad(path); ok {
			return loaded, nil
		}
	}

	// Use embedded default YAML
	cfg = DefaultTetrisConfig()
	if err := yaml.Unmarshal(defaultTetrisYAML, &cfg); err != nil {
		return DefaultTetrisConfig(), nil // Fallback to hardcoded if embed fails
	}
	cfg.Normalize()
	return cfg, nil
}

// tryLoad reads an optional config file. Missing, unparsable or invalid
// files are skipped so the next location in the search order is used.
func tryLoad(path string) (TetrisConfig, bool) {
	data, err := os.ReadFile(path)
	if err != nil {
		return TetrisConfig{}, false
	}
	cfg := DefaultTetrisConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return TetrisConfig{}, false
	}
	cfg.Normalize()
	if cfg.Validate() != nil {
		return TetrisConfig{}, false
	}
	return cfg, true
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".termtris", filename)
}

// Normalize clamps out-of-range values into range instead of rejecting them.
func (c *TetrisConfig) Normalize() {
	if c.Field.Width < 4 {
		c.Field.Width = 4
	}
	if c.Field.Height < 4 {
		c.Field.Height = 4
	}
	if c.Level.Start < 0 {
		c.Level.Start = 0
	}
	if c.Level.Step <= 0 {
		c.Level.Step = 1
	}
	if c.Gravity.DelayStartMs <= 0 {
		c.Gravity.DelayStartMs = 1
	}
	if c.Gravity.DelayStepMs < 0 {
		c.Gravity.DelayStepMs = 0
	}
	if c.Gravity.LoopTickMs <= 0 {
		c.Gravity.LoopTickMs = 1
	}
	for len(c.Scoring.LineScores) < len(DefaultLineScores) {
		c.Scoring.LineScores = append(c.Scoring.LineScores, 0)
	}
	if c.Scoring.HardDropBonus < 0 {
		c.Scoring.HardDropBonus = 0
	}
}

// Validate reports values that Normalize cannot repair.
func (c TetrisConfig) Validate() error {
	if c.Field.Width > MaxFieldSize || c.Field.Height > MaxFieldSize {
		return fmt.Errorf("%dx%d exceeds %dx%d: %w",
			c.Field.Width, c.Field.Height, MaxFieldSize, MaxFieldSize, ErrFieldTooLarge)
	}
	return nil
}

// ApplyTetrisPreset modifies the config based on a difficulty preset.
func ApplyTetrisPreset(cfg *TetrisConfig, preset DifficultyPreset) {
	cfg.Level.Start = StartLevelForPreset(preset)
}

// Marshal renders the config as YAML.
func (c TetrisConfig) Marshal() ([]byte, error) {
	data, err := yaml.Marshal(c)
	if err != nil {
		return nil, fmt.Errorf("failed to encode config: %w", err)
	}
	return data, nil
}
