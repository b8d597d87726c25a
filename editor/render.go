package editor

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/iw2rmb/bracebidi/bidi"
	"github.com/iw2rmb/bracebidi/buffer"
)

type lineLayout struct {
	row   int
	start int // document rune offset of the first rune
	runes []rune

	// spans are the directional ranges clipped to this line, line-local.
	spans []bidi.Range
	dir   bidi.Direction
	// mark is a directional mark emitted before the text, or 0.
	mark rune
}

// layoutLines resolves per-line isolation spans and paragraph direction.
func (m *Model) layoutLines(ranges []bidi.Range) []lineLayout {
	n := m.buf.LineCount()
	out := make([]lineLayout, 0, n)
	inherited := bidi.LeftToRight
	start := 0
	for row := 0; row < n; row++ {
		runes := []rune(m.buf.Line(row))
		ll := lineLayout{
			row:   row,
			start: start,
			runes: runes,
			spans: bidi.LineSpans(ranges, start, start+len(runes)),
		}
		ll.dir, ll.mark = m.paragraphDirection(string(runes), ll.spans, inherited)
		inherited = ll.dir
		out = append(out, ll)
		start += len(runes) + 1
	}
	return out
}

func (m *Model) paragraphDirection(line string, spans []bidi.Range, inherited bidi.Direction) (bidi.Direction, rune) {
	switch m.cfg.Direction {
	case DirectionRTL:
		return bidi.RightToLeft, bidi.RLM
	case DirectionLTR:
		return bidi.LeftToRight, bidi.LRM
	}
	// Keywords are isolated, so their letters don't decide the paragraph.
	if dir, ok := bidi.BaseDirection(bidi.Isolate(line, 0, spans)); ok {
		return dir, 0
	}
	if inherited == bidi.RightToLeft {
		return inherited, bidi.RLM
	}
	return inherited, 0
}

// LineDirections returns the resolved paragraph direction of every line.
func (m Model) LineDirections() []bidi.Direction {
	layout := m.layoutLines(m.deco.Ranges(m.buf))
	out := make([]bidi.Direction, len(layout))
	for i, ll := range layout {
		out[i] = ll.dir
	}
	return out
}

func (m *Model) renderContent() string {
	tree := m.lang.Parse(m.buf)
	// Reads the decorator a second time after Parse; the cache serves it.
	ranges := m.deco.Ranges(m.buf)
	cursor := m.buf.Cursor()

	layout := m.layoutLines(ranges)
	digits := 0
	if m.cfg.ShowLineNums {
		digits = gutterDigits(len(layout))
	}

	out := make([]string, 0, len(layout))
	for _, ll := range layout {
		var sb strings.Builder
		if m.cfg.ShowLineNums {
			numStyle := m.cfg.Style.LineNum
			if m.focused && ll.row == cursor.Row {
				numStyle = m.cfg.Style.LineNumActive
			}
			sb.WriteString(numStyle.Render(fmt.Sprintf("%*d", digits, ll.row+1)))
			sb.WriteString(m.cfg.Style.Gutter.Render(" "))
		}
		if ll.mark != 0 {
			sb.WriteRune(ll.mark)
		}
		end := ll.start + len(ll.runes)
		hl := lineHighlights(m.cfg.Style, tree.Overlapping(ll.start, end), ll.start, len(ll.runes))
		sb.WriteString(m.renderLine(ll, hl, cursor))
		out = append(out, sb.String())
	}
	return strings.Join(out, "\n")
}

const (
	runPlain  = -1
	runCursor = -2
)

// renderLine renders one line as styled runs. A run is a maximal stretch of
// runes with one highlight span (or the cursor); isolate marks are written
// between runs so that styles never wrap them.
func (m *Model) renderLine(ll lineLayout, hl []HighlightSpan, cursor buffer.Pos) string {
	st := m.cfg.Style
	tabWidth := m.cfg.tabWidth()
	hasCursor := m.focused && cursor.Row == ll.row

	var sb, run strings.Builder
	runStyle := st.Text
	runKey := runPlain
	flush := func() {
		if run.Len() > 0 {
			sb.WriteString(runStyle.Render(run.String()))
			run.Reset()
		}
	}

	hi, si, cell := 0, 0, 0
	for col, r := range ll.runes {
		if si < len(ll.spans) && ll.spans[si].Start == col {
			flush()
			sb.WriteRune(bidi.LRI)
		}

		for hi < len(hl) && hl[hi].EndCol <= col {
			hi++
		}
		key, style := runPlain, st.Text
		if hi < len(hl) && hl[hi].StartCol <= col {
			key, style = hi, hl[hi].Style
		}
		if hasCursor && col == cursor.Col {
			key, style = runCursor, st.Cursor
		}
		if key != runKey {
			flush()
			runKey, runStyle = key, style
		}

		text, w := cellText(r, cell, tabWidth)
		run.WriteString(text)
		cell += w

		if si < len(ll.spans) && ll.spans[si].End == col+1 {
			flush()
			sb.WriteRune(bidi.PDI)
			si++
		}
	}
	flush()

	// Cursor at EOL is rendered as a 1-cell placeholder space.
	if hasCursor && cursor.Col >= len(ll.runes) {
		sb.WriteString(st.Cursor.Render(" "))
	}
	return sb.String()
}

func gutterDigits(lines int) int {
	return len(strconv.Itoa(max(lines, 1)))
}
