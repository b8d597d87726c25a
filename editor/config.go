package editor

import "github.com/iw2rmb/bracebidi/language"

// Config configures the editor Model.
type Config struct {
	// Initial text for the internal buffer.
	Text string

	// Rendering options.
	ShowLineNums bool
	Style        Style
	TabWidth     int // default: 4

	// Direction sets the paragraph direction of each line.
	Direction Direction

	// Parser classifies the text. Defaults to language.BraceParser.
	Parser language.TokenParser

	KeyMap   KeyMap // zero value means DefaultKeyMap()
	ReadOnly bool

	// OnChange is called after Update when the buffer version moved.
	OnChange func(ChangeEvent)

	// Forwarded to buffer.Options.
	HistoryLimit int
}

// Direction controls how line paragraph direction is chosen.
type Direction uint8

const (
	// DirectionAuto uses the first strong character of each line, outside
	// keyword isolates. Lines without one inherit the previous line's
	// direction.
	DirectionAuto Direction = iota
	// DirectionRTL forces right-to-left paragraphs.
	DirectionRTL
	// DirectionLTR forces left-to-right paragraphs.
	DirectionLTR
)

// ParseDirection maps "auto", "rtl" or "ltr" to a Direction.
func ParseDirection(s string) (Direction, bool) {
	switch s {
	case "", "auto":
		return DirectionAuto, true
	case "rtl":
		return DirectionRTL, true
	case "ltr":
		return DirectionLTR, true
	default:
		return DirectionAuto, false
	}
}

func (d Direction) String() string {
	switch d {
	case DirectionRTL:
		return "rtl"
	case DirectionLTR:
		return "ltr"
	default:
		return "auto"
	}
}

func (c Config) tabWidth() int {
	if c.TabWidth <= 0 {
		return 4
	}
	return c.TabWidth
}
