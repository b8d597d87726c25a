package editor

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/iw2rmb/bracebidi/language"
)

// KeywordColor is the foreground of braced keywords in DefaultStyle.
const KeywordColor = "#872bff"

// Style controls the editor's rendering.
//
// Keyword and Plain inherit from Text.
type Style struct {
	Gutter        lipgloss.Style
	LineNum       lipgloss.Style
	LineNumActive lipgloss.Style

	Text    lipgloss.Style
	Keyword lipgloss.Style
	Plain   lipgloss.Style
	Cursor  lipgloss.Style
}

func DefaultStyle() Style {
	gutter := lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	return Style{
		Gutter:        gutter,
		LineNum:       gutter,
		LineNumActive: lipgloss.NewStyle().Foreground(lipgloss.Color("250")).Bold(true),
		Text:          lipgloss.NewStyle(),
		Keyword:       lipgloss.NewStyle().Foreground(lipgloss.Color(KeywordColor)).Bold(true),
		Plain:         lipgloss.NewStyle(),
		Cursor:        lipgloss.NewStyle().Reverse(true),
	}
}

func (st Style) forKind(k language.Kind) lipgloss.Style {
	if k == language.KindBracedKeyword {
		return st.Keyword.Inherit(st.Text)
	}
	return st.Plain.Inherit(st.Text)
}
