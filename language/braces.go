package language

import "regexp"

// bracedKeywordRE matches a brace-delimited run up to the first closing
// brace. As in most regex dialects, . does not match a line break, so a
// keyword never spans lines.
var bracedKeywordRE = regexp.MustCompile(`^\{.*?\}`)

// BraceParser classifies text into braced keywords ({...}) and plain text.
//
// Nested braces are not supported: a keyword ends at the first '}'. A '{'
// with no closing brace on its line is consumed alone as plain text.
type BraceParser struct{}

func (BraceParser) NextToken(s *Stream) (Token, bool) {
	if s.EOF() {
		return Token{}, false
	}
	if s.Match(bracedKeywordRE) {
		return s.Token(KindBracedKeyword), true
	}
	if s.EatWhile(notOpenBrace) {
		return s.Token(KindPlainText), true
	}
	// Dangling '{'.
	s.Next()
	return s.Token(KindPlainText), true
}

func notOpenBrace(r rune) bool { return r != '{' }
