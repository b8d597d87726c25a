package buffer

import "testing"

func TestBuffer_SetCursor_ClampsAndVersions(t *testing.T) {
	b := New("a\nbc", Options{})
	if b.Version() != 0 || b.TextVersion() != 0 {
		t.Fatalf("expected zero versions, got %d/%d", b.Version(), b.TextVersion())
	}

	b.SetCursor(Pos{Row: 999, Col: 999})
	if got := b.Cursor(); got != (Pos{Row: 1, Col: 2}) {
		t.Fatalf("cursor=%v, want (1,2)", got)
	}
	if b.Version() != 1 {
		t.Fatalf("expected version 1, got %d", b.Version())
	}
	if b.TextVersion() != 0 {
		t.Fatalf("expected text version unchanged, got %d", b.TextVersion())
	}

	b.SetCursor(Pos{Row: 1, Col: 2})
	if b.Version() != 1 {
		t.Fatalf("expected version unchanged, got %d", b.Version())
	}
}

func TestBuffer_EmptyTextHasOneLine(t *testing.T) {
	b := New("", Options{})
	if b.LineCount() != 1 {
		t.Fatalf("line count: got %d, want 1", b.LineCount())
	}
	if b.Len() != 0 {
		t.Fatalf("len: got %d, want 0", b.Len())
	}
	if b.Text() != "" {
		t.Fatalf("text: got %q, want empty", b.Text())
	}
}

func TestBuffer_LenCountsRunesAndLineBreaks(t *testing.T) {
	b := New("הורדת {foo}\nLTR", Options{})
	if got, want := b.Len(), 15; got != want {
		t.Fatalf("len: got %d, want %d", got, want)
	}
	if got := b.Line(1); got != "LTR" {
		t.Fatalf("line 1: got %q", got)
	}
	if got := b.Line(5); got != "" {
		t.Fatalf("out of range line: got %q", got)
	}
}
