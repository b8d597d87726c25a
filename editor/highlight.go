package editor

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/iw2rmb/bracebidi/language"
)

// HighlightSpan styles line-local columns [StartCol, EndCol), in runes.
type HighlightSpan struct {
	StartCol int
	EndCol   int
	Kind     language.Kind
	Style    lipgloss.Style
}

// lineHighlights clips tokens to the line [lineStart, lineStart+lineLen) and
// maps each to its style. tokens must be ascending and contiguous, which
// language.Tokenize guarantees, so the result needs no overlap handling.
func lineHighlights(st Style, tokens []language.Token, lineStart, lineLen int) []HighlightSpan {
	lineEnd := lineStart + lineLen
	out := make([]HighlightSpan, 0, len(tokens))
	for _, tok := range tokens {
		start := max(tok.Start, lineStart) - lineStart
		end := min(tok.End, lineEnd) - lineStart
		if start >= end {
			continue
		}
		out = append(out, HighlightSpan{
			StartCol: start,
			EndCol:   end,
			Kind:     tok.Kind,
			Style:    st.forKind(tok.Kind),
		})
	}
	return out
}
