// Package charset encodes runes and strings into a named character set.
//
// Terminal byte streams carry single bytes below 0x80 and charset-framed
// multi-byte sequences above it. The session's byte encoder delegates the
// multi-byte half to this package, which resolves IANA charset names through
// golang.org/x/text and produces the wire bytes for a rune or a composed
// character batch.
package charset
