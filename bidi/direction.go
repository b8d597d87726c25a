package bidi

import (
	xbidi "golang.org/x/text/unicode/bidi"
)

// Direction is a paragraph base direction.
type Direction uint8

const (
	LeftToRight Direction = iota
	RightToLeft
)

func (d Direction) String() string {
	if d == RightToLeft {
		return "rtl"
	}
	return "ltr"
}

// BaseDirection returns the direction of the first strong character in text,
// skipping characters inside isolates. ok is false when text has no strong
// character; callers then fall back to their own default.
func BaseDirection(text string) (dir Direction, ok bool) {
	depth := 0
	for _, r := range text {
		props, _ := xbidi.LookupRune(r)
		switch props.Class() {
		case xbidi.LRI, xbidi.RLI, xbidi.FSI:
			depth++
		case xbidi.PDI:
			if depth > 0 {
				depth--
			}
		case xbidi.L:
			if depth == 0 {
				return LeftToRight, true
			}
		case xbidi.R, xbidi.AL:
			if depth == 0 {
				return RightToLeft, true
			}
		case xbidi.B:
			// Paragraph separator ends the search.
			return LeftToRight, false
		}
	}
	return LeftToRight, false
}
