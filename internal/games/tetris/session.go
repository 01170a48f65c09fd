// Package tetris implements the falling-block rules: the playfield, the
// shape catalog, spawning with lookahead, scoring and the session state
// machine driven by abstract actions and gravity ticks.
//
// A Session has a single owner and no internal locking.
package tetris

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/pkg/errors"

	"github.com/vovakirdan/termtris/internal/config"
	"github.com/vovakirdan/termtris/internal/core"
)

// State is the session lifecycle state.
type State int

const (
	StateFalling  State = iota // a figure is in play
	StateLocking               // transient, between lock and the next spawn
	StateGameOver              // terminal, a spawn failed
	StateQuit                  // terminal, quit requested
)

// String returns the state name.
func (s State) String() string {
	switch s {
	case StateFalling:
		return "falling"
	case StateLocking:
		return "locking"
	case StateGameOver:
		return "game_over"
	case StateQuit:
		return "quit"
	default:
		return "unknown"
	}
}

// MarshalText encodes the state by name.
func (s State) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// Session is one game: field, falling figure, lookahead and stats.
type Session struct {
	field    *Playfield
	figure   *ActiveFigure
	spawner  *Spawner
	score    *ScoreTracker
	state    State
	revision uint64
}

// NewSession starts a game with the first piece already spawned.
// cfg is normalized on a copy; the caller's value is not modified.
func NewSession(cfg config.TetrisConfig, rng *rand.Rand) *Session {
	cfg.Normalize()
	s := &Session{
		field:   NewPlayfield(cfg.Field.Width, cfg.Field.Height),
		spawner: NewSpawner(rng),
		score:   NewScoreTracker(cfg),
	}
	// Normalize keeps the field at least 4x4, so the first piece always fits.
	if err := s.spawn(); err != nil {
		panic(fmt.Sprintf("tetris: first spawn on an empty %dx%d field: %v", cfg.Field.Width, cfg.Field.Height, err))
	}
	return s
}

func (s *Session) spawn() error {
	fig, err := s.spawner.Spawn(s.field)
	if err != nil {
		s.figure = nil
		s.state = StateGameOver
		return err
	}
	s.figure = fig
	s.state = StateFalling
	return nil
}

// Apply performs one player action. Blocked moves and rotations are
// swallowed. The only error is ErrGameOver, returned when the action caused
// the game to end or the game has already ended.
//
// Both terminal states are final: after game over every action, Quit
// included, returns ErrGameOver and leaves the state at StateGameOver; after
// Quit every action is ignored.
func (s *Session) Apply(a core.Action) error {
	switch s.state {
	case StateGameOver:
		return ErrGameOver
	case StateQuit:
		return nil
	}

	switch a {
	case core.ActionLeft:
		s.track(s.figure.Translate(s.field, -1, 0))
	case core.ActionRight:
		s.track(s.figure.Translate(s.field, 1, 0))
	case core.ActionRotate:
		s.track(s.figure.Rotate(s.field))
	case core.ActionSoftDown:
		return s.softDown()
	case core.ActionHardDrop:
		return s.hardDrop()
	case core.ActionQuit:
		s.state = StateQuit
		s.revision++
	}
	return nil
}

// Tick applies one automatic gravity step. It behaves exactly like SoftDown.
func (s *Session) Tick() error {
	return s.Apply(core.ActionSoftDown)
}

func (s *Session) track(err error) {
	if err == nil {
		s.revision++
	}
}

func (s *Session) softDown() error {
	if err := s.figure.Translate(s.field, 0, -1); err == nil {
		s.revision++
		return nil
	}
	return s.lockAndSpawn(false)
}

func (s *Session) hardDrop() error {
	// Every successful step lowers the pivot by one, so the loop ends within
	// the field height.
	for range s.field.Height() {
		if s.figure.Translate(s.field, 0, -1) != nil {
			break
		}
	}
	return s.lockAndSpawn(true)
}

func (s *Session) lockAndSpawn(hard bool) error {
	s.state = StateLocking
	pivotY := s.figure.Pivot().Y
	s.figure.Lock(s.field)
	s.figure = nil

	s.score.AwardLock(pivotY)
	s.score.AwardLines(s.field.CheckFullLines())
	if hard {
		s.score.AwardHardDrop()
	}
	s.revision++

	if err := s.spawn(); err != nil {
		return errors.WithMessage(err, "spawn after lock")
	}
	return nil
}

// State returns the lifecycle state.
func (s *Session) State() State { return s.state }

// Done reports whether the session reached a terminal state.
func (s *Session) Done() bool {
	return s.state == StateGameOver || s.state == StateQuit
}

// Stats returns the current score, level, lines and delay.
func (s *Session) Stats() Stats { return s.score.Stats() }

// Delay returns the current gravity delay.
func (s *Session) Delay() time.Duration { return s.score.Delay() }

// Revision increases on every change to the grid, the stats or the state.
func (s *Session) Revision() uint64 { return s.revision }

// Field exposes the grid for inspection. Callers must not modify it.
func (s *Session) Field() *Playfield { return s.field }

// Figure returns the falling piece, or nil after the game ended.
func (s *Session) Figure() *ActiveFigure { return s.figure }
