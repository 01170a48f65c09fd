package tetris

import "github.com/pkg/errors"

var (
	// ErrCantMove rejects a translation or rotation that would leave the
	// field or overlap a fixed cell. The grid is left unchanged.
	ErrCantMove = errors.New("can't move")

	// ErrGameOver reports that a new piece could not be placed.
	ErrGameOver = errors.New("game over")
)
