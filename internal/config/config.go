// Package config provides YAML-based game configuration loading and
// difficulty presets for termtris.
package config

import (
	"github.com/pkg/errors"
)

// MaxFieldSize bounds both field dimensions.
const MaxFieldSize = 64

// ErrFieldTooLarge is returned by Validate when a field dimension exceeds MaxFieldSize.
var ErrFieldTooLarge = errors.New("field too large")

// TetrisConfig contains all configuration for one game session.
type TetrisConfig struct {
	Field   FieldConfig   `yaml:"field"`
	Level   LevelConfig   `yaml:"level"`
	Gravity GravityConfig `yaml:"gravity"`
	Scoring ScoringConfig `yaml:"scoring"`
	Seed    int64         `yaml:"seed"` // 0 means seed from the clock
}

// FieldConfig defines the playfield dimensions in cells.
type FieldConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// LevelConfig defines the level progression.
type LevelConfig struct {
	Start int `yaml:"start"` // Level at zero cleared lines
	Step  int `yaml:"step"`  // Cleared lines per level-up
}

// GravityConfig defines the automatic fall speed and the driver loop period.
type GravityConfig struct {
	DelayStartMs int `yaml:"delay_start_ms"` // Gravity delay at level 0
	DelayStepMs  int `yaml:"delay_step_ms"`  // Delay decrement per level
	LoopTickMs   int `yaml:"loop_tick_ms"`   // Driver sleep between iterations
}

// ScoringConfig defines points awarded by the engine.
type ScoringConfig struct {
	LineScores      []int `yaml:"line_scores"`       // Points for 1, 2, 3 and 4 simultaneous lines
	HardDropBonus   int   `yaml:"hard_drop_bonus"`   // Flat bonus per hard drop
	LockHeightBonus bool  `yaml:"lock_height_bonus"` // Award height - pivot_y on every lock
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// StartLevelForPreset returns the starting level for a difficulty preset.
func StartLevelForPreset(preset DifficultyPreset) int {
	switch preset {
	case DifficultyNormal:
		return 3
	case DifficultyHard:
		return 6
	default:
		return 0
	}
}

// ParseDifficulty resolves a preset name. The empty string is accepted and
// reported as not set.
func ParseDifficulty(name string) (DifficultyPreset, bool, error) {
	switch p := DifficultyPreset(name); p {
	case "":
		return "", false, nil
	case DifficultyEasy, DifficultyNormal, DifficultyHard:
		return p, true, nil
	default:
		return "", false, errors.Errorf("unknown difficulty %q (use easy, normal or hard)", name)
	}
}
