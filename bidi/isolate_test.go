package bidi

import (
	"testing"

	"pgregory.net/rapid"

	"github.com/iw2rmb/bracebidi/language"
)

func TestIsolate(t *testing.T) {
	ranges := []Range{{Start: 6, End: 11}, {Start: 14, End: 19}}
	got := Isolate("הורדת {foo}LTR{bar}", 0, ranges)
	want := "הורדת \u2066{foo}\u2069LTR\u2066{bar}\u2069"
	if got != want {
		t.Fatalf("isolate:\n got: %q\nwant: %q", got, want)
	}
}

func TestIsolate_LineOffset(t *testing.T) {
	// Document "אב\n{x}": the keyword sits on the second line at offset 3.
	ranges := []Range{{Start: 3, End: 6}}
	if got := Isolate("אב", 0, ranges); got != "אב" {
		t.Fatalf("first line must be untouched: %q", got)
	}
	if got, want := Isolate("{x}", 3, ranges), "\u2066{x}\u2069"; got != want {
		t.Fatalf("second line: got %q, want %q", got, want)
	}
}

func TestProperty_StripIsolatesRestoresLine(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		line := rapid.StringOf(rapid.SampledFrom([]rune("{}aש "))).Draw(rt, "line")
		ranges := ComputeRanges(language.Tokenize(line, language.BraceParser{}))
		out := Isolate(line, 0, ranges)
		if StripIsolates(out) != line {
			rt.Fatalf("strip(isolate(%q)) = %q", line, StripIsolates(out))
		}
		opens := 0
		for _, r := range out {
			if r == LRI {
				opens++
			}
		}
		if opens != len(ranges) {
			rt.Fatalf("got %d isolates for %d ranges", opens, len(ranges))
		}
	})
}
