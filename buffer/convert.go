package buffer

type OffsetClampMode uint8

const (
	OffsetError OffsetClampMode = iota
	OffsetClamp
)

// PosFromRuneOffset converts a document rune offset to a position.
// With OffsetError, offsets outside [0, Len()] report false.
func (b *Buffer) PosFromRuneOffset(off int, mode OffsetClampMode) (Pos, bool) {
	off, ok := clampOffset(off, b.Len(), mode)
	if !ok {
		return Pos{}, false
	}
	for row, line := range b.lines {
		if off <= len(line) {
			return Pos{Row: row, Col: off}, true
		}
		off -= len(line) + 1
	}
	return Pos{}, false
}

// RuneOffsetFromPos converts a position to a document rune offset.
// With OffsetError, positions outside the document report false.
func (b *Buffer) RuneOffsetFromPos(pos Pos, mode OffsetClampMode) (int, bool) {
	clamped := b.clampPos(pos)
	switch mode {
	case OffsetError:
		if clamped != pos {
			return 0, false
		}
	case OffsetClamp:
	default:
		return 0, false
	}
	return b.LineStartOffset(clamped.Row) + clamped.Col, true
}

// LineStartOffset returns the rune offset of the first rune of row.
// Rows are clamped into the document.
func (b *Buffer) LineStartOffset(row int) int {
	row = clampInt(row, 0, len(b.lines)-1)
	off := 0
	for r := 0; r < row; r++ {
		off += len(b.lines[r]) + 1
	}
	return off
}

func clampOffset(off, hi int, mode OffsetClampMode) (int, bool) {
	switch mode {
	case OffsetError:
		if off < 0 || off > hi {
			return 0, false
		}
		return off, true
	case OffsetClamp:
		return clampInt(off, 0, hi), true
	default:
		return 0, false
	}
}
