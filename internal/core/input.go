package core

import (
	"strings"
	"unicode"
)

// Action is a player intent, decoupled from the physical key that produced it.
// ActionNone doubles as the "empty" value of the input mailbox.
type Action int

const (
	ActionNone     Action = iota
	ActionLeft            // A, Left arrow
	ActionRight           // D, Right arrow
	ActionSoftDown        // S, Down arrow - one row down, locks when blocked
	ActionHardDrop        // Space - drop to the floor and lock
	ActionRotate          // W, Up arrow - clockwise rotation
	ActionQuit            // Q, Ctrl+C
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionSoftDown:
		return "SoftDown"
	case ActionHardDrop:
		return "HardDrop"
	case ActionRotate:
		return "Rotate"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// ParseAction resolves an action by its String name, ignoring case.
func ParseAction(name string) (Action, bool) {
	for a := ActionNone; a <= ActionQuit; a++ {
		if strings.EqualFold(a.String(), name) {
			return a, true
		}
	}
	return ActionNone, false
}

// ActionForRune maps the classic letter layout to an action.
// Letters are case-insensitive. Unknown runes map to ActionNone.
func ActionForRune(r rune) Action {
	switch unicode.ToUpper(r) {
	case 'A':
		return ActionLeft
	case 'D':
		return ActionRight
	case 'S':
		return ActionSoftDown
	case ' ':
		return ActionHardDrop
	case 'W':
		return ActionRotate
	case 'Q':
		return ActionQuit
	}
	return ActionNone
}
