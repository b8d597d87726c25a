package bidi

import (
	"github.com/iw2rmb/bracebidi/internal/log"
	"github.com/iw2rmb/bracebidi/language"
)

// Decorator caches the directional ranges of the most recent parse tree.
//
// The tree pointer is the version marker: ranges are recomputed only when the
// language hands out a different tree. Each editor view owns one Decorator; it
// is not safe for concurrent use.
type Decorator struct {
	lang *language.Language

	tree   *language.Tree
	ranges []Range
	valid  bool

	recomputes int
}

func NewDecorator(lang *language.Language) *Decorator {
	if lang == nil {
		lang = language.New(nil)
	}
	return &Decorator{lang: lang}
}

// Ranges returns the directional ranges for src's current text.
//
// The returned slice is shared with the cache and must not be modified.
func (d *Decorator) Ranges(src language.Source) []Range {
	return d.RangesForTree(d.lang.Parse(src))
}

// RangesForTree returns the ranges for tree, recomputing only when tree is not
// the one the cache was built from.
func (d *Decorator) RangesForTree(tree *language.Tree) []Range {
	if d.valid && tree == d.tree {
		return d.ranges
	}
	var tokens []language.Token
	if tree != nil {
		tokens = tree.Tokens
	}
	d.tree = tree
	d.ranges = ComputeRanges(tokens)
	d.valid = true
	d.recomputes++
	if tree != nil {
		log.Debug(log.CatBidi, "recomputed", "version", tree.TextVersion, "ranges", len(d.ranges))
	}
	return d.ranges
}

// Language returns the language the decorator parses with.
func (d *Decorator) Language() *language.Language { return d.lang }

// Recomputes reports how many times the ranges were rebuilt.
func (d *Decorator) Recomputes() int { return d.recomputes }
