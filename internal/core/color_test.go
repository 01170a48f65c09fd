package core

import "testing"

func TestColorANSI(t *testing.T) {
	tests := []struct {
		c        Color
		expected string
	}{
		{ColorDefault, "\033[0m"},
		{ColorRed, "\033[31m"},
		{ColorWhite, "\033[37m"},
		{ColorBrightRed, "\033[91m"},
		{ColorBrightWhite, "\033[97m"},
		{ColorOrange, "\033[38;5;208m"},
		{ColorGray, "\033[38;5;245m"},
	}
	for _, tc := range tests {
		if got := tc.c.ANSI(); got != tc.expected {
			t.Errorf("Color(%d).ANSI() = %q, expected %q", tc.c, got, tc.expected)
		}
	}
}
