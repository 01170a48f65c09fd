// Package runner drives a tetris.Session in real time: one loop owns the
// session and applies actions and gravity, while input producers hand actions
// over through a single-slot Mailbox.
package runner

import (
	"sync"

	"github.com/vovakirdan/termtris/internal/core"
)

// Mailbox holds the most recently requested action that has not been
// applied yet. A new Post overwrites an unconsumed action.
type Mailbox struct {
	mu     sync.Mutex
	action core.Action
}

// NewMailbox creates an empty mailbox.
func NewMailbox() *Mailbox {
	return &Mailbox{}
}

// Post stores a, replacing any pending action. ActionNone is ignored.
func (m *Mailbox) Post(a core.Action) {
	if a == core.ActionNone {
		return
	}
	m.mu.Lock()
	m.action = a
	m.mu.Unlock()
}

// Take returns the pending action and empties the slot.
// It returns ActionNone when nothing is pending.
func (m *Mailbox) Take() core.Action {
	m.mu.Lock()
	defer m.mu.Unlock()
	a := m.action
	m.action = core.ActionNone
	return a
}
