package tetris

import (
	"github.com/vovakirdan/termtris/internal/config"
	"github.com/vovakirdan/termtris/internal/registry"
)

// DefaultPreset is applied when no preset is requested.
const DefaultPreset = "classic"

func init() {
	registry.Register(DefaultPreset, "Classic 10x20", func(base config.TetrisConfig) config.TetrisConfig {
		return base
	})
	registry.Register("relaxed", "Relaxed: slow gravity, 10 lines per level", func(base config.TetrisConfig) config.TetrisConfig {
		base.Gravity.DelayStartMs = 1000
		base.Gravity.DelayStepMs = 30
		base.Level.Step = 10
		return base
	})
	registry.Register("turbo", "Turbo: starts at level 5, steep speed-up", func(base config.TetrisConfig) config.TetrisConfig {
		base.Level.Start = 5
		base.Gravity.DelayStepMs = 60
		return base
	})
	registry.Register("wide", "Wide 14x22 field", func(base config.TetrisConfig) config.TetrisConfig {
		base.Field.Width = 14
		base.Field.Height = 22
		return base
	})
}
