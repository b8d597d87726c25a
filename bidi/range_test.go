package bidi

import (
	"reflect"
	"testing"

	"pgregory.net/rapid"

	"github.com/iw2rmb/bracebidi/language"
)

func TestComputeRanges(t *testing.T) {
	cases := []struct {
		name string
		text string
		want []Range
	}{
		{name: "hebrew sample", text: "הורדת {foo}LTR{bar}", want: []Range{{Start: 6, End: 11}, {Start: 14, End: 19}}},
		{name: "empty", text: "", want: nil},
		{name: "plain only", text: "שלום עולם", want: nil},
		{name: "dangling brace", text: "abc{def", want: nil},
		{name: "second line", text: "אב\n{x}", want: []Range{{Start: 3, End: 6}}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := ComputeRanges(language.Tokenize(tc.text, language.BraceParser{}))
			if !reflect.DeepEqual(got, tc.want) {
				t.Fatalf("ranges:\n got: %+v\nwant: %+v", got, tc.want)
			}
		})
	}
}

func TestProperty_RangesAreImageOfKeywords(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		text := rapid.StringOf(rapid.SampledFrom([]rune("{}xש \n"))).Draw(rt, "text")
		tokens := language.Tokenize(text, language.BraceParser{})
		ranges := ComputeRanges(tokens)

		i := 0
		for _, tok := range tokens {
			if tok.Kind != language.KindBracedKeyword {
				continue
			}
			if i >= len(ranges) {
				rt.Fatalf("missing range for token %+v", tok)
			}
			if ranges[i] != (Range{Start: tok.Start, End: tok.End}) {
				rt.Fatalf("range %d: got %+v, want bounds of %+v", i, ranges[i], tok)
			}
			if i > 0 && ranges[i].Start < ranges[i-1].End {
				rt.Fatalf("ranges overlap: %+v", ranges)
			}
			i++
		}
		if i != len(ranges) {
			rt.Fatalf("got %d ranges for %d keywords", len(ranges), i)
		}
	})
}

func TestLineSpans(t *testing.T) {
	ranges := []Range{{Start: 2, End: 5}, {Start: 8, End: 12}, {Start: 20, End: 22}}

	got := LineSpans(ranges, 4, 10)
	want := []Range{{Start: 0, End: 1}, {Start: 4, End: 6}}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("line spans:\n got: %+v\nwant: %+v", got, want)
	}
	if got := LineSpans(ranges, 12, 20); got != nil {
		t.Fatalf("gap line: got %+v", got)
	}
}
