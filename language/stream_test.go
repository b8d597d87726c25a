package language

import (
	"regexp"
	"testing"
)

func TestStream_MatchIsAnchored(t *testing.T) {
	s := NewStream("ab{c}")
	if s.Match(regexp.MustCompile(`\{c\}`)) {
		t.Fatalf("match further along the input must not count")
	}
	if s.Pos() != 0 {
		t.Fatalf("failed match advanced cursor to %d", s.Pos())
	}
	if s.Match(regexp.MustCompile(`^x*`)) {
		t.Fatalf("empty match must not count")
	}
}

func TestStream_RuneOffsets(t *testing.T) {
	s := NewStream("של{x}")
	if !s.EatWhile(notOpenBrace) {
		t.Fatalf("expected EatWhile to consume")
	}
	if s.Pos() != 2 {
		t.Fatalf("rune pos: got %d, want 2", s.Pos())
	}
	if s.Current() != "של" {
		t.Fatalf("current: got %q", s.Current())
	}
	tok := s.Token(KindPlainText)
	if tok != (Token{Kind: KindPlainText, Start: 0, End: 2}) {
		t.Fatalf("token: got %+v", tok)
	}
	if s.Start() != 2 || s.Current() != "" {
		t.Fatalf("token must restart span at cursor")
	}
	if r, ok := s.Peek(); !ok || r != '{' {
		t.Fatalf("peek: got %q,%v", r, ok)
	}
	if !s.Match(bracedKeywordRE) || s.Pos() != 5 || !s.EOF() {
		t.Fatalf("keyword match: pos=%d eof=%v", s.Pos(), s.EOF())
	}
	if _, ok := s.Next(); ok {
		t.Fatalf("Next at EOF must report false")
	}
}
