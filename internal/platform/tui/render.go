package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/termtris/internal/core"
)

// xterm palette index per core.Color. ColorDefault has no entry and keeps
// the terminal's own foreground.
var colorCodes = [...]string{
	core.ColorRed:           "1",
	core.ColorGreen:         "2",
	core.ColorYellow:        "3",
	core.ColorBlue:          "4",
	core.ColorMagenta:       "5",
	core.ColorCyan:          "6",
	core.ColorWhite:         "7",
	core.ColorBrightRed:     "9",
	core.ColorBrightGreen:   "10",
	core.ColorBrightYellow:  "11",
	core.ColorBrightBlue:    "12",
	core.ColorBrightMagenta: "13",
	core.ColorBrightCyan:    "14",
	core.ColorBrightWhite:   "15",
	core.ColorOrange:        "208",
	core.ColorGray:          "245",
}

// palette holds one style per core.Color, indexed by the color.
type palette [len(colorCodes)]lipgloss.Style

var (
	playPalette  = newPalette(false)
	endedPalette = newPalette(true)
)

// newPalette builds the styles for a running or a finished game. A finished
// board is drawn faint so the bold banners stand out.
func newPalette(ended bool) palette {
	var p palette
	for i := range p {
		p[i] = styleFor(core.Color(i), ended)
	}
	return p
}

func styleFor(c core.Color, ended bool) lipgloss.Style {
	st := lipgloss.NewStyle()
	if code := colorCodes[c]; code != "" {
		st = st.Foreground(lipgloss.Color(code))
	}
	switch {
	case c == core.ColorBrightRed || c == core.ColorBrightWhite:
		st = st.Bold(true)
	case ended:
		st = st.Faint(true)
	}
	return st
}

func (p *palette) style(c core.Color) lipgloss.Style {
	if int(c) >= len(p) {
		return p[core.ColorDefault]
	}
	return p[c]
}

// RenderScreen converts a Screen buffer to a styled string. Runs of cells
// sharing a color are styled together and blank runs are written unstyled.
func RenderScreen(s *core.Screen, ended bool) string {
	p := &playPalette
	if ended {
		p = &endedPalette
	}

	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	var run strings.Builder
	for y := range s.Height() {
		if y > 0 {
			sb.WriteByte('\n')
		}

		for x := 0; x < s.Width(); {
			color := s.GetCell(x, y).Color
			blank := true
			run.Reset()
			for ; x < s.Width(); x++ {
				cell := s.GetCell(x, y)
				if cell.Color != color {
					break
				}
				blank = blank && cell.Rune == ' '
				run.WriteRune(cell.Rune)
			}

			if blank {
				sb.WriteString(run.String())
				continue
			}
			sb.WriteString(p.style(color).Render(run.String()))
		}
	}
	return sb.String()
}
