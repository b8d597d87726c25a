package bidi

import "strings"

const (
	// LRI opens a left-to-right isolate.
	LRI = '\u2066'
	// PDI closes the innermost isolate.
	PDI = '\u2069'
)

// Isolate wraps the parts of ranges that fall inside line in LRI ... PDI.
// line is the text of one line starting at document offset lineStart.
func Isolate(line string, lineStart int, ranges []Range) string {
	runes := []rune(line)
	spans := LineSpans(ranges, lineStart, lineStart+len(runes))
	if len(spans) == 0 {
		return line
	}

	var sb strings.Builder
	sb.Grow(len(line) + len(spans)*6)
	prev := 0
	for _, sp := range spans {
		sb.WriteString(string(runes[prev:sp.Start]))
		sb.WriteRune(LRI)
		sb.WriteString(string(runes[sp.Start:sp.End]))
		sb.WriteRune(PDI)
		prev = sp.End
	}
	sb.WriteString(string(runes[prev:]))
	return sb.String()
}

// StripIsolates removes LRI and PDI marks from s.
func StripIsolates(s string) string {
	return strings.Map(func(r rune) rune {
		if r == LRI || r == PDI {
			return -1
		}
		return r
	}, s)
}

const (
	// LRM and RLM are zero-width strong characters used to set the paragraph
	// direction of a line that has no strong character of its own.
	LRM = '\u200e'
	RLM = '\u200f'
)

// StripMarks removes isolates and directional marks from s.
func StripMarks(s string) string {
	return strings.Map(func(r rune) rune {
		switch r {
		case LRI, PDI, LRM, RLM:
			return -1
		}
		return r
	}, s)
}
