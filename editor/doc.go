// Package editor provides a Bubble Tea text editor component for mixed
// right-to-left and left-to-right text.
//
// The component tokenizes its buffer with a language.TokenParser, paints
// braced keywords with Style.Keyword, and wraps every keyword in a
// left-to-right isolate so it keeps its reading order inside right-to-left
// lines. Each Model owns its buffer, parse cache and bidi.Decorator.
package editor
