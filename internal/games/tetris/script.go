package tetris

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/pkg/errors"

	"github.com/vovakirdan/termtris/internal/core"
)

// Step is one entry of a replay script: an action or a gravity tick.
type Step struct {
	Action  core.Action
	Gravity bool
}

// ParseScript reads a compact replay script. Letters are case-insensitive:
// L left, R right, D soft drop, H hard drop, W rotate, Q quit; '.' is one
// gravity tick. Whitespace and commas are ignored.
func ParseScript(script string) ([]Step, error) {
	steps := make([]Step, 0, len(script))
	for i, r := range script {
		switch unicode.ToUpper(r) {
		case 'L':
			steps = append(steps, Step{Action: core.ActionLeft})
		case 'R':
			steps = append(steps, Step{Action: core.ActionRight})
		case 'D':
			steps = append(steps, Step{Action: core.ActionSoftDown})
		case 'H':
			steps = append(steps, Step{Action: core.ActionHardDrop})
		case 'W':
			steps = append(steps, Step{Action: core.ActionRotate})
		case 'Q':
			steps = append(steps, Step{Action: core.ActionQuit})
		case '.':
			steps = append(steps, Step{Gravity: true})
		case ',':
		default:
			if unicode.IsSpace(r) {
				continue
			}
			return nil, errors.Errorf("script position %d: unexpected %q", i, r)
		}
	}
	return steps, nil
}

// String renders the step in script notation.
func (st Step) String() string {
	if st.Gravity {
		return "."
	}
	switch st.Action {
	case core.ActionLeft:
		return "L"
	case core.ActionRight:
		return "R"
	case core.ActionSoftDown:
		return "D"
	case core.ActionHardDrop:
		return "H"
	case core.ActionRotate:
		return "W"
	case core.ActionQuit:
		return "Q"
	}
	return fmt.Sprintf("<%s>", st.Action)
}

// FormatScript is the inverse of ParseScript.
func FormatScript(steps []Step) string {
	var sb strings.Builder
	for _, st := range steps {
		sb.WriteString(st.String())
	}
	return sb.String()
}

// Replay applies steps in order without any timing and stops early once
// the session is over. It returns the number of steps consumed.
func (s *Session) Replay(steps []Step) int {
	for i, st := range steps {
		if s.Done() {
			return i
		}
		if st.Gravity {
			_ = s.Tick()
		} else {
			_ = s.Apply(st.Action)
		}
	}
	return len(steps)
}
