package tetris

import (
	"errors"
	"testing"

	"github.com/vovakirdan/termtris/internal/config"
	"github.com/vovakirdan/termtris/internal/core"
)

// forceFigure replaces the falling piece with a known one.
func forceFigure(t *testing.T, s *Session, id PieceID, rotation int, pivot core.Point) {
	t.Helper()
	for y := 0; y < s.field.Height(); y++ {
		for x := 0; x < s.field.Width(); x++ {
			if s.field.Get(x, y) == CellActive {
				s.field.Set(x, y, CellEmpty)
			}
		}
	}
	s.figure = placeFigure(t, s.field, id, rotation, pivot)
	s.spawner.current = id
}

func TestNewSession(t *testing.T) {
	s := NewSession(config.DefaultTetrisConfig(), newTestRand(1))

	if s.State() != StateFalling {
		t.Errorf("State() = %v, expected falling", s.State())
	}
	if s.Field().Count(CellActive) != 4 {
		t.Errorf("Count(Active) = %d, expected 4", s.Field().Count(CellActive))
	}
	snap := s.Snapshot()
	if snap.Next == snap.Piece {
		t.Errorf("lookahead %s equals current piece", snap.Next)
	}
	if snap.Stats.DelayMs != 800 {
		t.Errorf("DelayMs = %d, expected 800", snap.Stats.DelayMs)
	}
}

func TestNewSessionSmallestField(t *testing.T) {
	cfg := config.DefaultTetrisConfig()
	cfg.Field.Width, cfg.Field.Height = 0, 0

	for seed := int64(1); seed <= 20; seed++ {
		s := NewSession(cfg, newTestRand(seed))
		if s.State() != StateFalling {
			t.Fatalf("seed %d: State() = %v, expected falling", seed, s.State())
		}
		if n := s.Field().Count(CellActive); n != 4 {
			t.Errorf("seed %d: Count(Active) = %d, expected 4", seed, n)
		}
	}
}

func TestNewSessionNormalizesCopy(t *testing.T) {
	cfg := config.DefaultTetrisConfig()
	cfg.Field.Width = 1
	cfg.Gravity.DelayStartMs = -5

	s := NewSession(cfg, newTestRand(1))

	if s.Field().Width() != 4 {
		t.Errorf("Width() = %d, expected 4", s.Field().Width())
	}
	if s.Stats().DelayMs != 1 {
		t.Errorf("DelayMs = %d, expected 1", s.Stats().DelayMs)
	}
	if cfg.Field.Width != 1 {
		t.Error("NewSession modified the caller's config")
	}
}

func TestSoftDownLockClearsLine(t *testing.T) {
	s := NewSession(config.DefaultTetrisConfig(), newTestRand(1))
	fillRow(s.field, 0, 4)
	// T rotation 0 points down: its nub drops into the single gap.
	forceFigure(t, s, PieceT, 0, core.Pt(4, 5))
	fig := s.Figure()

	for i := 0; i < s.field.Height() && s.Figure() == fig; i++ {
		if err := s.Apply(core.ActionSoftDown); err != nil {
			t.Fatalf("Apply(SoftDown) error = %v", err)
		}
	}

	st := s.Stats()
	if st.Lines != 1 {
		t.Errorf("Lines = %d, expected 1", st.Lines)
	}
	// 100 for the line plus height - pivot_y = 20 - 1.
	if st.Score != 119 {
		t.Errorf("Score = %d, expected 119", st.Score)
	}
	if got := s.field.Count(CellFixed); got != 3 {
		t.Errorf("Count(Fixed) = %d, expected the T bar's 3 cells", got)
	}
	if s.State() != StateFalling || s.field.Count(CellActive) != 4 {
		t.Errorf("expected a new falling piece, state %v active %d", s.State(), s.field.Count(CellActive))
	}
}

func TestHardDropFourLines(t *testing.T) {
	cfg := config.DefaultTetrisConfig()
	cfg.Level.Step = 2
	cfg.Scoring.HardDropBonus = 0
	s := NewSession(cfg, newTestRand(1))
	for y := 0; y < 4; y++ {
		fillRow(s.field, y, 4)
	}
	forceFigure(t, s, PieceI, 1, core.Pt(4, 15))

	if err := s.Apply(core.ActionHardDrop); err != nil {
		t.Fatalf("Apply(HardDrop) error = %v", err)
	}

	st := s.Stats()
	// Vertical I locks with its pivot on row 2: 1500 + 20 - 2.
	if st.Score != 1518 {
		t.Errorf("Score = %d, expected 1518", st.Score)
	}
	if st.Tetrises != 1 {
		t.Errorf("Tetrises = %d, expected 1", st.Tetrises)
	}
	if st.Lines != 4 || st.Level != 2 || st.DelayMs != 720 {
		t.Errorf("Lines/Level/DelayMs = %d/%d/%d, expected 4/2/720", st.Lines, st.Level, st.DelayMs)
	}
	if got := s.field.Count(CellFixed); got != 0 {
		t.Errorf("Count(Fixed) = %d, expected an empty stack", got)
	}
}

func TestHardDropFromSpawn(t *testing.T) {
	s := NewSession(config.DefaultTetrisConfig(), newTestRand(1))
	forceFigure(t, s, PieceO, 0, SpawnPivot(10, 20))

	if err := s.Apply(core.ActionHardDrop); err != nil {
		t.Fatalf("Apply(HardDrop) error = %v", err)
	}

	for _, c := range []core.Point{{X: 3, Y: 0}, {X: 4, Y: 0}, {X: 3, Y: 1}, {X: 4, Y: 1}} {
		if s.field.Get(c.X, c.Y) != CellFixed {
			t.Errorf("cell %v should be Fixed", c)
		}
	}
	// Lock bonus 20 - 1 plus the hard drop bonus.
	if s.Stats().Score != 24 {
		t.Errorf("Score = %d, expected 24", s.Stats().Score)
	}
}

func TestSoftDownStepsMatchPivotHeight(t *testing.T) {
	s := NewSession(config.DefaultTetrisConfig(), newTestRand(1))
	forceFigure(t, s, PieceO, 0, SpawnPivot(10, 20))
	fig := s.Figure()

	steps := 0
	for s.Figure() == fig {
		if steps > s.field.Height() {
			t.Fatal("figure never locked")
		}
		_ = s.Apply(core.ActionSoftDown)
		steps++
	}
	// 18 moves from pivot row 19 to row 1, then the blocked step locks.
	if steps != 19 {
		t.Errorf("soft drops until lock = %d, expected 19", steps)
	}
}

func TestRotateSquareThroughSession(t *testing.T) {
	s := NewSession(config.DefaultTetrisConfig(), newTestRand(1))
	forceFigure(t, s, PieceO, 0, core.Pt(4, 10))
	rev := s.Revision()

	if err := s.Apply(core.ActionRotate); err != nil {
		t.Errorf("blocked rotation should be swallowed, got %v", err)
	}
	if s.Figure().Rotation() != 0 {
		t.Errorf("Rotation() = %d, expected 0", s.Figure().Rotation())
	}
	if s.Revision() != rev {
		t.Error("a rejected rotation must not bump the revision")
	}

	if err := s.Apply(core.ActionLeft); err != nil {
		t.Fatalf("Apply(Left) error = %v", err)
	}
	if s.Revision() != rev+1 {
		t.Errorf("Revision() = %d, expected %d after a move", s.Revision(), rev+1)
	}
}

func TestQuit(t *testing.T) {
	s := NewSession(config.DefaultTetrisConfig(), newTestRand(1))
	before := s.field.Rows()

	if err := s.Apply(core.ActionQuit); err != nil {
		t.Fatalf("Apply(Quit) error = %v", err)
	}
	if s.State() != StateQuit || !s.Done() {
		t.Fatalf("State() = %v, expected quit", s.State())
	}

	_ = s.Apply(core.ActionHardDrop)
	_ = s.Tick()
	if !gridEqual(before, s.field.Rows()) {
		t.Error("grid changed after quit")
	}
	if s.Snapshot().GameOver {
		t.Error("quit is not game over")
	}
}

func TestGameOverByStacking(t *testing.T) {
	s := NewSession(config.DefaultTetrisConfig(), newTestRand(5))

	var err error
	for i := 0; i < 200 && err == nil; i++ {
		err = s.Apply(core.ActionHardDrop)
	}

	if !errors.Is(err, ErrGameOver) {
		t.Fatalf("expected ErrGameOver from stacking, got %v", err)
	}
	if s.State() != StateGameOver {
		t.Errorf("State() = %v, expected game_over", s.State())
	}
	if s.Field().Count(CellActive) != 0 {
		t.Errorf("Count(Active) = %d, expected 0 after game over", s.Field().Count(CellActive))
	}
	if s.Figure() != nil {
		t.Error("Figure() should be nil after game over")
	}
	if err := s.Apply(core.ActionLeft); !errors.Is(err, ErrGameOver) {
		t.Errorf("Apply after game over = %v, expected ErrGameOver", err)
	}
	rev := s.Revision()
	if err := s.Apply(core.ActionQuit); !errors.Is(err, ErrGameOver) {
		t.Errorf("Apply(Quit) after game over = %v, expected ErrGameOver", err)
	}
	if s.State() != StateGameOver || s.Revision() != rev {
		t.Errorf("Quit after game over changed the session: state %v, revision %d -> %d", s.State(), rev, s.Revision())
	}

	snap := s.Snapshot()
	if !snap.GameOver || !snap.Terminal() {
		t.Error("snapshot should report game over")
	}
}

func TestActiveCellInvariant(t *testing.T) {
	s := NewSession(config.DefaultTetrisConfig(), newTestRand(11))
	rng := newTestRand(99)
	actions := []core.Action{
		core.ActionLeft, core.ActionRight, core.ActionRotate,
		core.ActionSoftDown, core.ActionHardDrop, core.ActionNone,
	}

	for i := 0; i < 5000 && !s.Done(); i++ {
		if rng.Intn(4) == 0 {
			_ = s.Tick()
		} else {
			_ = s.Apply(actions[rng.Intn(len(actions))])
		}

		active := s.Field().Count(CellActive)
		if s.Done() {
			if active != 0 {
				t.Fatalf("step %d: %d active cells after game over", i, active)
			}
			break
		}
		if active != 4 {
			t.Fatalf("step %d: %d active cells, expected 4", i, active)
		}
		if s.Snapshot().Next == s.Snapshot().Piece {
			t.Fatalf("step %d: lookahead repeats the current piece", i)
		}
	}
}

func TestSessionDeterminism(t *testing.T) {
	cfg := config.DefaultTetrisConfig()
	steps, err := ParseScript("LLH RRW.H W.D.H LH RRRH WWH")
	if err != nil {
		t.Fatal(err)
	}

	a := NewSession(cfg, newTestRand(12345))
	b := NewSession(cfg, newTestRand(12345))
	a.Replay(steps)
	b.Replay(steps)

	snapA, snapB := a.Snapshot(), b.Snapshot()
	if snapA.Stats != snapB.Stats {
		t.Errorf("stats mismatch: %+v vs %+v", snapA.Stats, snapB.Stats)
	}
	for i := range snapA.Rows {
		if snapA.Rows[i] != snapB.Rows[i] {
			t.Errorf("row %d mismatch: %q vs %q", i, snapA.Rows[i], snapB.Rows[i])
		}
	}
	if snapA.Piece != snapB.Piece || snapA.Next != snapB.Next {
		t.Error("piece sequence mismatch")
	}
}
