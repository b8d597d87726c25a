package language

import (
	"sort"

	"github.com/iw2rmb/bracebidi/internal/log"
)

// Tree is the tokenization of one document state. Trees are immutable; a new
// Tree is built whenever the text changes, so pointer identity is a version
// marker for the parse.
type Tree struct {
	Tokens []Token

	// Length is the document length in runes.
	Length      int
	TextVersion uint64
}

// Overlapping returns the tokens intersecting [start, end), in order.
func (t *Tree) Overlapping(start, end int) []Token {
	if t == nil || start >= end {
		return nil
	}
	i := sort.Search(len(t.Tokens), func(i int) bool { return t.Tokens[i].End > start })
	j := i
	for j < len(t.Tokens) && t.Tokens[j].Start < end {
		j++
	}
	return t.Tokens[i:j]
}

// Source is a document whose text changes are observable through a version
// number. *buffer.Buffer satisfies it.
type Source interface {
	Text() string
	TextVersion() uint64
}

// Language binds a parser to a cached parse tree.
//
// A Language follows one Source; it is not safe for concurrent use.
type Language struct {
	parser TokenParser
	tree   *Tree
}

// New returns a Language using p, or BraceParser when p is nil.
func New(p TokenParser) *Language {
	if p == nil {
		p = BraceParser{}
	}
	return &Language{parser: p}
}

// Parse returns the tree for src's current text, reusing the cached tree when
// the text version has not moved.
func (l *Language) Parse(src Source) *Tree {
	v := src.TextVersion()
	if l.tree != nil && l.tree.TextVersion == v {
		return l.tree
	}
	text := src.Text()
	tokens := Tokenize(text, l.parser)
	length := 0
	if n := len(tokens); n > 0 {
		length = tokens[n-1].End
	}
	l.tree = &Tree{Tokens: tokens, Length: length, TextVersion: v}
	log.Debug(log.CatLang, "reparsed", "version", v, "tokens", len(tokens))
	return l.tree
}

// Tree returns the most recently parsed tree, or nil before the first Parse.
func (l *Language) Tree() *Tree { return l.tree }
