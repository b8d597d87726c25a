// Package language tokenizes documents with a pluggable stream parser.
//
// A TokenParser is handed a Stream cursor and returns one Token per call.
// Tokenize drives a parser over a whole document, and Language caches the
// resulting Tree per text version so that consumers can use tree identity to
// decide whether derived data is stale.
//
// Offsets are half-open rune offsets into the document, with a line break
// counted as one rune.
package language
