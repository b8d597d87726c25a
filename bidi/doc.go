// Package bidi derives left-to-right isolation ranges from a parse tree and
// applies them to text.
//
// Every braced keyword becomes a Range that must render left-to-right even
// inside a right-to-left paragraph. Decorator caches the ranges per parse
// tree, and Isolate wraps them in Unicode directional isolates (LRI ... PDI)
// for terminals that implement the bidirectional algorithm.
package bidi
