package tetris

import (
	"testing"

	"github.com/vovakirdan/termtris/internal/config"
	"github.com/vovakirdan/termtris/internal/core"
)

func TestParseScript(t *testing.T) {
	steps, err := ParseScript("l R, d.h\nWq")
	if err != nil {
		t.Fatalf("ParseScript() error = %v", err)
	}

	expected := []Step{
		{Action: core.ActionLeft},
		{Action: core.ActionRight},
		{Action: core.ActionSoftDown},
		{Gravity: true},
		{Action: core.ActionHardDrop},
		{Action: core.ActionRotate},
		{Action: core.ActionQuit},
	}
	if len(steps) != len(expected) {
		t.Fatalf("ParseScript() returned %d steps, expected %d", len(steps), len(expected))
	}
	for i := range expected {
		if steps[i] != expected[i] {
			t.Errorf("step %d = %+v, expected %+v", i, steps[i], expected[i])
		}
	}
	if got := FormatScript(steps); got != "LRD.HWQ" {
		t.Errorf("FormatScript() = %q, expected LRD.HWQ", got)
	}
}

func TestParseScriptRejectsUnknown(t *testing.T) {
	if _, err := ParseScript("LLX"); err == nil {
		t.Error("expected an error for X")
	}
}

func TestReplayStopsAtQuit(t *testing.T) {
	s := NewSession(config.DefaultTetrisConfig(), newTestRand(1))
	steps, _ := ParseScript("LQHHH")

	if n := s.Replay(steps); n != 2 {
		t.Errorf("Replay() consumed %d steps, expected 2", n)
	}
	if s.State() != StateQuit {
		t.Errorf("State() = %v, expected quit", s.State())
	}
}

func TestReplayGravityTicks(t *testing.T) {
	s := NewSession(config.DefaultTetrisConfig(), newTestRand(1))
	forceFigure(t, s, PieceO, 0, SpawnPivot(10, 20))

	steps, _ := ParseScript("...")
	s.Replay(steps)

	if got := s.Figure().Pivot(); got != core.Pt(4, 16) {
		t.Errorf("Pivot() = %v, expected three rows down at (4,16)", got)
	}
}
