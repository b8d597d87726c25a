package editor

import (
	"strings"

	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"
)

// cellText returns the terminal text for r at visual column col, with tabs
// expanded to the next tab stop, and its width in cells.
func cellText(r rune, col, tabWidth int) (string, int) {
	if r == '\t' {
		w := tabAdvance(col, tabWidth)
		return strings.Repeat(" ", w), w
	}
	return string(r), runeCellWidth(r)
}

func runeCellWidth(r rune) int {
	w := runewidth.RuneWidth(r)
	if w <= 0 {
		w = max(uniseg.StringWidth(string(r)), 0)
	}
	return w
}

func tabAdvance(col, tabWidth int) int {
	if tabWidth <= 0 {
		tabWidth = 4
	}
	return tabWidth - col%tabWidth
}
