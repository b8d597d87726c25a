package language

import (
	"strings"
	"testing"

	"pgregory.net/rapid"
)

var braceyText = rapid.StringOf(rapid.SampledFrom([]rune("{}ab של\n")))

func TestProperty_TokensCoverText(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		text := braceyText.Draw(rt, "text")
		runes := []rune(text)
		tokens := Tokenize(text, BraceParser{})

		var sb strings.Builder
		prev := 0
		for i, tok := range tokens {
			if tok.Start != prev {
				rt.Fatalf("token %d starts at %d, want %d", i, tok.Start, prev)
			}
			if tok.End <= tok.Start {
				rt.Fatalf("token %d is empty: %+v", i, tok)
			}
			sb.WriteString(string(runes[tok.Start:tok.End]))
			prev = tok.End
		}
		if prev != len(runes) {
			rt.Fatalf("tokens end at %d, text has %d runes", prev, len(runes))
		}
		if sb.String() != text {
			rt.Fatalf("concatenation mismatch:\n got: %q\nwant: %q", sb.String(), text)
		}
	})
}

func TestProperty_KeywordsAreBraceDelimited(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		text := braceyText.Draw(rt, "text")
		runes := []rune(text)
		for _, tok := range Tokenize(text, BraceParser{}) {
			span := runes[tok.Start:tok.End]
			if tok.Kind != KindBracedKeyword {
				continue
			}
			if span[0] != '{' || span[len(span)-1] != '}' {
				rt.Fatalf("keyword not brace delimited: %q", string(span))
			}
			if strings.ContainsAny(string(span[1:len(span)-1]), "}\n") {
				rt.Fatalf("keyword spans past first close or line: %q", string(span))
			}
		}
	})
}
