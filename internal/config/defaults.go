package config

import (
	_ "embed"
)

//go:embed defaults/tetris.yaml
var defaultTetrisYAML []byte

// DefaultLineScores is the classic per-count line clear table.
var DefaultLineScores = []int{100, 300, 700, 1500}

// DefaultTetrisConfig returns the default configuration: a 10x20 field,
// 800ms starting gravity shortened by 40ms per level, a level every 5 lines.
func DefaultTetrisConfig() TetrisConfig {
	return TetrisConfig{
		Field: FieldConfig{
			Width:  10,
			Height: 20,
		},
		Level: LevelConfig{
			Start: 0,
			Step:  5,
		},
		Gravity: GravityConfig{
			DelayStartMs: 800,
			DelayStepMs:  40,
			LoopTickMs:   10,
		},
		Scoring: ScoringConfig{
			LineScores:      append([]int(nil), DefaultLineScores...),
			HardDropBonus:   5,
			LockHeightBonus: true,
		},
	}
}
