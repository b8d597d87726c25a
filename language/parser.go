package language

// TokenParser produces one token per call from the stream cursor.
//
// NextToken must consume at least one rune when it returns ok, and returns
// ok == false only when there is nothing left to consume.
type TokenParser interface {
	NextToken(s *Stream) (Token, bool)
}

// Tokenize runs p over text and returns contiguous tokens covering text
// exactly once.
//
// The driver owns token bounds: a parser that returns a token without
// advancing gets one rune forced into a PlainText token, and a parser that
// gives up early leaves the rest of the text as a single PlainText token.
func Tokenize(text string, p TokenParser) []Token {
	s := NewStream(text)
	var out []Token
	for !s.EOF() {
		before := s.Pos()
		tok, ok := p.NextToken(s)
		kind := tok.Kind
		if !ok {
			for !s.EOF() {
				s.Next()
			}
			kind = KindPlainText
		} else if s.Pos() <= before {
			s.Next()
			kind = KindPlainText
		}
		out = append(out, Token{Kind: kind, Start: before, End: s.Pos()})
		s.commit()
	}
	return out
}
