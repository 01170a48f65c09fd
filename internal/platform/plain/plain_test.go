package plain

import (
	"bytes"
	"math/rand"
	"strings"
	"testing"

	"github.com/eiannone/keyboard"
	"github.com/stretchr/testify/assert"

	"github.com/vovakirdan/termtris/internal/config"
	"github.com/vovakirdan/termtris/internal/core"
	"github.com/vovakirdan/termtris/internal/games/tetris"
)

func TestActionForEvent(t *testing.T) {
	tests := []struct {
		event    keyboard.KeyEvent
		expected core.Action
	}{
		{keyboard.KeyEvent{Key: keyboard.KeyArrowLeft}, core.ActionLeft},
		{keyboard.KeyEvent{Rune: 'a'}, core.ActionLeft},
		{keyboard.KeyEvent{Key: keyboard.KeyArrowRight}, core.ActionRight},
		{keyboard.KeyEvent{Rune: 'D'}, core.ActionRight},
		{keyboard.KeyEvent{Key: keyboard.KeyArrowDown}, core.ActionSoftDown},
		{keyboard.KeyEvent{Rune: 's'}, core.ActionSoftDown},
		{keyboard.KeyEvent{Key: keyboard.KeyArrowUp}, core.ActionRotate},
		{keyboard.KeyEvent{Rune: 'w'}, core.ActionRotate},
		{keyboard.KeyEvent{Key: keyboard.KeySpace}, core.ActionHardDrop},
		{keyboard.KeyEvent{Key: keyboard.KeyCtrlC}, core.ActionQuit},
		{keyboard.KeyEvent{Key: keyboard.KeyEsc}, core.ActionQuit},
		{keyboard.KeyEvent{Rune: 'Q'}, core.ActionQuit},
		{keyboard.KeyEvent{Rune: 'z'}, core.ActionNone},
	}

	for _, tc := range tests {
		assert.Equal(t, tc.expected, ActionForEvent(tc.event), "event %+v", tc.event)
	}
}

func TestKeyboardSourceReadsChannel(t *testing.T) {
	ch := make(chan keyboard.KeyEvent, 2)
	ch <- keyboard.KeyEvent{Rune: 'd'}
	close(ch)
	src := &KeyboardSource{events: ch}

	a, err := src.ReadAction()
	assert.NoError(t, err)
	assert.Equal(t, core.ActionRight, a)

	_, err = src.ReadAction()
	assert.ErrorIs(t, err, errKeyboardClosed)
}

func TestWriterSkipsUnchangedRevision(t *testing.T) {
	var buf bytes.Buffer
	w, h := tetris.FrameSize(10, 20)
	fw := NewWriter(&buf, w, h, false)
	s := tetris.NewSession(config.DefaultTetrisConfig(), rand.New(rand.NewSource(1)))

	fw.Publish(s.Snapshot())
	first := buf.Len()
	assert.Positive(t, first)
	assert.Contains(t, buf.String(), "%")
	assert.Contains(t, buf.String(), "\r\n")

	fw.Publish(s.Snapshot())
	assert.Equal(t, first, buf.Len(), "same revision is not redrawn")

	_ = s.Apply(core.ActionLeft)
	fw.Publish(s.Snapshot())
	assert.Greater(t, buf.Len(), first)

	assert.NoError(t, fw.Close())
	assert.True(t, strings.HasSuffix(buf.String(), escShowCursor))
}

func TestWriterColor(t *testing.T) {
	var buf bytes.Buffer
	w, h := tetris.FrameSize(10, 20)
	fw := NewWriter(&buf, w, h, true)
	s := tetris.NewSession(config.DefaultTetrisConfig(), rand.New(rand.NewSource(1)))

	fw.Publish(s.Snapshot())
	assert.Contains(t, buf.String(), core.ColorGray.ANSI(), "the field box is gray")
}
