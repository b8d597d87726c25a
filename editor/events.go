package editor

import (
	"github.com/iw2rmb/bracebidi/bidi"
	"github.com/iw2rmb/bracebidi/buffer"
)

// ChangeEvent reports buffer state after an Update that changed it.
type ChangeEvent struct {
	Version     uint64
	TextVersion uint64
	Cursor      buffer.Pos

	// Text is the full document; hosts can diff if needed.
	Text string

	// Ranges are the directional ranges for Text. The slice is shared with
	// the view's cache and must not be modified.
	Ranges []bidi.Range
}

func (m *Model) buildChangeEvent() ChangeEvent {
	return ChangeEvent{
		Version:     m.buf.Version(),
		TextVersion: m.buf.TextVersion(),
		Cursor:      m.buf.Cursor(),
		Text:        m.buf.Text(),
		Ranges:      m.deco.Ranges(m.buf),
	}
}
