package core

import "strconv"

// Color represents a foreground color for a screen cell.
// Front ends map it to lipgloss styles or raw ANSI codes.
type Color uint8

// Predefined colors for game elements.
const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorWhite
	ColorBrightRed
	ColorBrightGreen
	ColorBrightYellow
	ColorBrightBlue
	ColorBrightMagenta
	ColorBrightCyan
	ColorBrightWhite
	ColorOrange
	ColorGray
)

// ANSI returns the SGR escape sequence selecting this foreground color.
// ColorDefault resets all attributes.
func (c Color) ANSI() string {
	switch {
	case c == ColorDefault:
		return "\033[0m"
	case c >= ColorRed && c <= ColorWhite:
		return "\033[" + strconv.Itoa(30+int(c-ColorRed)+1) + "m"
	case c >= ColorBrightRed && c <= ColorBrightWhite:
		return "\033[" + strconv.Itoa(91+int(c-ColorBrightRed)) + "m"
	case c == ColorOrange:
		return "\033[38;5;208m"
	case c == ColorGray:
		return "\033[38;5;245m"
	}
	return "\033[0m"
}
