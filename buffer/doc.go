// Package buffer implements the rune-accurate document model edited by the
// editor component.
//
// Positions are 0-based (Row, Col) in runes. Document offsets count runes
// with each line break as a single rune, which is the coordinate space the
// language and bidi packages report spans in.
package buffer
