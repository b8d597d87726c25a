package language

import (
	"regexp"
	"unicode/utf8"
)

// Stream is a cursor over the unconsumed suffix of a document.
//
// Between Start and Pos lies the text of the token being scanned. Token
// closes that span and begins the next one at Pos.
type Stream struct {
	src string

	// byte offsets into src
	pos   int
	start int

	// rune offsets matching pos and start
	runePos   int
	runeStart int
}

func NewStream(text string) *Stream {
	return &Stream{src: text}
}

// Pos returns the rune offset of the cursor.
func (s *Stream) Pos() int { return s.runePos }

// Start returns the rune offset where the current token began.
func (s *Stream) Start() int { return s.runeStart }

func (s *Stream) EOF() bool { return s.pos >= len(s.src) }

// Peek returns the rune at the cursor without consuming it.
func (s *Stream) Peek() (rune, bool) {
	if s.EOF() {
		return 0, false
	}
	r, _ := utf8.DecodeRuneInString(s.src[s.pos:])
	return r, true
}

// Next consumes one rune.
func (s *Stream) Next() (rune, bool) {
	if s.EOF() {
		return 0, false
	}
	r, size := utf8.DecodeRuneInString(s.src[s.pos:])
	s.pos += size
	s.runePos++
	return r, true
}

// Match consumes a non-empty match of re that begins at the cursor.
// re should be anchored with ^; a match found further along does not count.
func (s *Stream) Match(re *regexp.Regexp) bool {
	loc := re.FindStringIndex(s.src[s.pos:])
	if loc == nil || loc[0] != 0 || loc[1] == 0 {
		return false
	}
	s.advanceBytes(loc[1])
	return true
}

// EatWhile consumes runes while fn reports true and reports whether any
// rune was consumed.
func (s *Stream) EatWhile(fn func(rune) bool) bool {
	start := s.pos
	for !s.EOF() {
		r, size := utf8.DecodeRuneInString(s.src[s.pos:])
		if !fn(r) {
			break
		}
		s.pos += size
		s.runePos++
	}
	return s.pos > start
}

// Current returns the text of the token being scanned.
func (s *Stream) Current() string { return s.src[s.start:s.pos] }

// Token closes the current span as a token of kind k.
func (s *Stream) Token(k Kind) Token {
	tok := Token{Kind: k, Start: s.runeStart, End: s.runePos}
	s.commit()
	return tok
}

func (s *Stream) commit() {
	s.start = s.pos
	s.runeStart = s.runePos
}

func (s *Stream) advanceBytes(n int) {
	s.runePos += utf8.RuneCountInString(s.src[s.pos : s.pos+n])
	s.pos += n
}
