package tetris

import (
	"time"

	"github.com/vovakirdan/termtris/internal/config"
	"github.com/vovakirdan/termtris/internal/core"
)

// Stats is the scoring state shown to the player.
type Stats struct {
	Score    int `json:"score"`
	Level    int `json:"level"`
	Lines    int `json:"lines"`
	Tetrises int `json:"tetrises"` // four-line clears
	DelayMs  int `json:"delay_ms"` // current gravity delay, never below 1
}

// ScoreTracker awards points and derives level and gravity delay from the
// number of cleared lines.
type ScoreTracker struct {
	levelStart    int
	levelStep     int
	delayStart    int
	delayStep     int
	lineScores    []int
	hardDropBonus int
	lockBonus     bool
	height        int

	stats Stats
}

// NewScoreTracker creates a tracker for a normalized config.
func NewScoreTracker(cfg config.TetrisConfig) *ScoreTracker {
	t := &ScoreTracker{
		levelStart:    cfg.Level.Start,
		levelStep:     core.Max(cfg.Level.Step, 1),
		delayStart:    cfg.Gravity.DelayStartMs,
		delayStep:     cfg.Gravity.DelayStepMs,
		lineScores:    append([]int(nil), cfg.Scoring.LineScores...),
		hardDropBonus: cfg.Scoring.HardDropBonus,
		lockBonus:     cfg.Scoring.LockHeightBonus,
		height:        cfg.Field.Height,
	}
	t.recompute()
	return t
}

func (t *ScoreTracker) recompute() {
	t.stats.Level = t.levelStart + t.stats.Lines/t.levelStep
	t.stats.DelayMs = core.Max(1, t.delayStart-t.stats.Level*t.delayStep)
}

// AwardLock credits a locked piece by how low its pivot landed.
func (t *ScoreTracker) AwardLock(pivotY int) {
	if t.lockBonus {
		t.stats.Score += t.height - pivotY
	}
}

// AwardLines credits n simultaneously cleared lines. Level and delay only
// change when at least one line was cleared.
func (t *ScoreTracker) AwardLines(n int) {
	if n <= 0 {
		return
	}
	if n <= len(t.lineScores) {
		t.stats.Score += t.lineScores[n-1]
	}
	if n == 4 {
		t.stats.Tetrises++
	}
	t.stats.Lines += n
	t.recompute()
}

// AwardHardDrop credits the flat hard drop bonus.
func (t *ScoreTracker) AwardHardDrop() {
	t.stats.Score += t.hardDropBonus
}

// Stats returns a copy of the current stats.
func (t *ScoreTracker) Stats() Stats { return t.stats }

// Delay returns the current gravity delay.
func (t *ScoreTracker) Delay() time.Duration {
	return time.Duration(t.stats.DelayMs) * time.Millisecond
}
