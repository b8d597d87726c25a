package language

// Kind classifies a token.
type Kind uint8

const (
	KindPlainText Kind = iota
	KindBracedKeyword
)

// String returns the highlight tag for k.
func (k Kind) String() string {
	switch k {
	case KindPlainText:
		return "string"
	case KindBracedKeyword:
		return "keyword"
	default:
		return "unknown"
	}
}

// Token is a classified span [Start, End) of the document.
type Token struct {
	Kind  Kind
	Start int
	End   int
}

func (t Token) Len() int { return t.End - t.Start }
