package session

import (
	"github.com/dshills/keybridge/internal/charset"
	"github.com/dshills/keybridge/internal/input/key"
)

// ctrlMap applies terminal control-character algebra to a resolved rune:
//
//	a-z         -> 0x01-0x1A
//	0x41-0x5F   -> 0x01-0x1F (covers A-Z _ [ ] ^ \)
//	space       -> NUL
//	?           -> DEL
//
// Anything outside these ranges passes through unchanged.
func ctrlMap(r rune) rune {
	switch {
	case r >= 0x61 && r <= 0x7A:
		return r - 0x60
	case r >= 0x41 && r <= 0x5F:
		return r - 0x40
	case r == 0x20:
		return 0x00
	case r == 0x3F:
		return 0x7F
	default:
		return r
	}
}

// functionKeyFor maps a digit key to its function key under the right-Shift
// overlay: 1-9 become F1-F9 and 0 becomes F10.
func functionKeyFor(c key.Code) (NamedKey, bool) {
	switch {
	case c >= key.Code1 && c <= key.Code9:
		return NamedF1 + NamedKey(c-key.Code1), true
	case c == key.Code0:
		return NamedF10, true
	default:
		return NamedNone, false
	}
}

// emitRune writes the wire bytes for a resolved rune. Values below 0x80 are
// single bytes with Latin-range control semantics; anything above needs
// explicit multi-byte framing in the configured charset.
func (l *Listener) emitRune(r rune, charsetName string) {
	if r >= 0 && r < 0x80 {
		l.write([]byte{byte(r)})
		return
	}

	enc, err := l.encoderFor(charsetName)
	if err != nil {
		l.log.Warn("dropping rune %q: %v", r, err)
		return
	}
	b, err := enc.EncodeRune(r)
	if err != nil {
		l.log.Warn("dropping rune %q: %v", r, err)
		return
	}
	l.write(b)
}

// emitBatch writes a composed character batch as one unit.
func (l *Listener) emitBatch(s string, charsetName string) {
	enc, err := l.encoderFor(charsetName)
	if err != nil {
		l.log.Warn("dropping batch of %d chars: %v", len(s), err)
		return
	}
	b, err := enc.EncodeString(s)
	if err != nil {
		l.log.Warn("dropping batch of %d chars: %v", len(s), err)
		return
	}
	l.write(b)
}

// encoderFor returns a charset encoder, caching the last one since the
// charset rarely changes between events.
func (l *Listener) encoderFor(name string) (*charset.Encoder, error) {
	if l.enc != nil && l.encName == name {
		return l.enc, nil
	}
	enc, err := charset.New(name)
	if err != nil {
		return nil, err
	}
	l.enc = enc
	l.encName = name
	return enc, nil
}

// write sends bytes through the transport with the recovery policy of one
// fallback flush; if the flush also fails the session owner is told to
// disconnect. Errors never propagate to the event source.
func (l *Listener) write(p []byte) {
	_, err := l.transport.Write(p)
	if err == nil {
		return
	}
	l.log.Error("transport write failed: %v", err)

	if err := l.transport.Flush(); err != nil {
		l.log.Warn("transport flush failed, dispatching disconnect: %v", err)
		l.transport.ReportDisconnect()
	}
}
