package bidi

import "github.com/iw2rmb/bracebidi/language"

// Range is a half-open rune interval [Start, End) that renders left-to-right
// regardless of the surrounding paragraph direction.
type Range struct {
	Start int
	End   int
}

// ComputeRanges returns one Range per braced keyword token, in token order.
// Tokens are contiguous, so the result is ascending and non-overlapping.
func ComputeRanges(tokens []language.Token) []Range {
	var out []Range
	for _, tok := range tokens {
		if tok.Kind == language.KindBracedKeyword {
			out = append(out, Range{Start: tok.Start, End: tok.End})
		}
	}
	return out
}

// LineSpans clips ranges to the line [lineStart, lineEnd) and returns them in
// line-local offsets. ranges must be ascending.
func LineSpans(ranges []Range, lineStart, lineEnd int) []Range {
	var out []Range
	for _, r := range ranges {
		if r.End <= lineStart {
			continue
		}
		if r.Start >= lineEnd {
			break
		}
		start := max(r.Start, lineStart) - lineStart
		end := min(r.End, lineEnd) - lineStart
		if start < end {
			out = append(out, Range{Start: start, End: end})
		}
	}
	return out
}
