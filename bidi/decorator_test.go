package bidi

import (
	"reflect"
	"testing"

	"github.com/iw2rmb/bracebidi/buffer"
	"github.com/iw2rmb/bracebidi/language"
)

func TestDecorator_CacheHitReturnsSameSlice(t *testing.T) {
	buf := buffer.New("הורדת {foo}LTR{bar}", buffer.Options{})
	d := NewDecorator(language.New(language.BraceParser{}))

	first := d.Ranges(buf)
	second := d.Ranges(buf)
	if len(first) != 2 {
		t.Fatalf("ranges: got %+v", first)
	}
	if &first[0] != &second[0] {
		t.Fatalf("cache hit must return the cached slice")
	}
	if d.Recomputes() != 1 {
		t.Fatalf("recomputes: got %d, want 1", d.Recomputes())
	}
}

func TestDecorator_CursorMovesDoNotRecompute(t *testing.T) {
	buf := buffer.New("{a} b", buffer.Options{})
	d := NewDecorator(nil)
	_ = d.Ranges(buf)

	buf.Move(buffer.Move{Unit: buffer.MoveLine, Dir: buffer.DirEnd})
	_ = d.Ranges(buf)
	if d.Recomputes() != 1 {
		t.Fatalf("cursor move recomputed ranges: %d", d.Recomputes())
	}
}

func TestDecorator_RecomputesOncePerTextChange(t *testing.T) {
	buf := buffer.New("x", buffer.Options{})
	d := NewDecorator(nil)
	if got := d.Ranges(buf); len(got) != 0 {
		t.Fatalf("initial ranges: got %+v", got)
	}

	buf.Move(buffer.Move{Unit: buffer.MoveLine, Dir: buffer.DirEnd})
	buf.InsertText("{y}")
	for i := 0; i < 3; i++ {
		got := d.Ranges(buf)
		want := []Range{{Start: 1, End: 4}}
		if !reflect.DeepEqual(got, want) {
			t.Fatalf("read %d: got %+v, want %+v", i, got, want)
		}
	}
	if d.Recomputes() != 2 {
		t.Fatalf("recomputes: got %d, want 2", d.Recomputes())
	}

	buf.Undo()
	if got := d.Ranges(buf); len(got) != 0 {
		t.Fatalf("after undo: got %+v", got)
	}
	if d.Recomputes() != 3 {
		t.Fatalf("recomputes after undo: got %d, want 3", d.Recomputes())
	}
}

func TestDecorator_MatchesFreshComputation(t *testing.T) {
	buf := buffer.New("", buffer.Options{})
	d := NewDecorator(nil)
	for _, s := range []string{"{", "a", "}", " ", "{", "b", "\n", "}", "{c}"} {
		buf.InsertText(s)
		got := d.Ranges(buf)
		want := ComputeRanges(language.Tokenize(buf.Text(), language.BraceParser{}))
		if !reflect.DeepEqual(got, want) {
			t.Fatalf("after %q: cached %+v, fresh %+v", buf.Text(), got, want)
		}
	}
}

func TestDecorator_NilTree(t *testing.T) {
	d := NewDecorator(nil)
	if got := d.RangesForTree(nil); got != nil {
		t.Fatalf("nil tree: got %+v", got)
	}
	_ = d.RangesForTree(nil)
	if d.Recomputes() != 1 {
		t.Fatalf("nil tree must be cached too: %d", d.Recomputes())
	}
	if d.Language() == nil {
		t.Fatalf("default language must be set")
	}
}
