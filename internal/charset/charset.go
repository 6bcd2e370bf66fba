package charset

import (
	"fmt"
	"strings"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/ianaindex"
)

// DefaultName is the charset used when none is configured.
const DefaultName = "UTF-8"

// Encoder converts runes and strings into the bytes of one character set.
type Encoder struct {
	name string

	// enc is nil for UTF-8, which passes through without transformation.
	enc encoding.Encoding
}

// New resolves a charset by IANA name.
func New(name string) (*Encoder, error) {
	if name == "" {
		name = DefaultName
	}

	if isUTF8(name) {
		return &Encoder{name: DefaultName}, nil
	}

	enc, err := ianaindex.IANA.Encoding(name)
	if err != nil {
		return nil, fmt.Errorf("resolving charset %q: %w", name, err)
	}
	if enc == nil {
		return nil, fmt.Errorf("charset %q has no encoder", name)
	}

	return &Encoder{name: name, enc: enc}, nil
}

func isUTF8(name string) bool {
	switch strings.ToUpper(name) {
	case "UTF-8", "UTF8":
		return true
	}
	return false
}

// Name returns the charset name this encoder produces.
func (e *Encoder) Name() string {
	return e.name
}

// EncodeRune returns the wire bytes for a single rune.
func (e *Encoder) EncodeRune(r rune) ([]byte, error) {
	return e.EncodeString(string(r))
}

// EncodeString returns the wire bytes for a string.
func (e *Encoder) EncodeString(s string) ([]byte, error) {
	if e.enc == nil {
		return []byte(s), nil
	}

	// A fresh transform per call keeps the Encoder stateless for callers.
	out, err := e.enc.NewEncoder().Bytes([]byte(s))
	if err != nil {
		return nil, fmt.Errorf("encoding %q as %s: %w", s, e.name, err)
	}
	return out, nil
}
