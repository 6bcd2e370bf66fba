package keymap

import (
	"github.com/dshills/keybridge/internal/input/key"
)

// glyph holds the characters one printing key produces.
type glyph struct {
	base    rune
	shifted rune
}

// Layout is a keymap profile mapping key codes to characters.
type Layout struct {
	// Name is the profile identifier, such as "us".
	Name string

	glyphs map[key.Code]glyph

	// reverse maps runes back to the code and modifiers that produce them.
	// Built lazily from glyphs.
	reverse map[rune]reverseEntry
}

type reverseEntry struct {
	code key.Code
	mods key.Modifier
}

// NewLayout creates an empty layout with the given profile name.
func NewLayout(name string) *Layout {
	return &Layout{
		Name:   name,
		glyphs: make(map[key.Code]glyph),
	}
}

// Bind maps a code to its base and shifted characters.
// A zero shifted rune means Shift produces the base character.
func (l *Layout) Bind(c key.Code, base, shifted rune) {
	if shifted == 0 {
		shifted = base
	}
	l.glyphs[c] = glyph{base: base, shifted: shifted}
	l.reverse = nil
}

// IsPrinting returns true if the code resolves to a character on this layout.
func (l *Layout) IsPrinting(c key.Code) bool {
	_, ok := l.glyphs[c]
	return ok
}

// Resolve returns the rune a code produces under the given modifier bits.
// Only Shift participates in resolution; Ctrl and Alt are applied downstream
// by the byte encoder. Returns 0 for non-printing codes.
func (l *Layout) Resolve(c key.Code, mods key.Modifier) rune {
	g, ok := l.glyphs[c]
	if !ok {
		return 0
	}
	if mods.HasShift() {
		return g.shifted
	}
	return g.base
}

// CodeForRune returns the code and modifiers that produce the given rune on
// this layout. Used by input source adapters that receive characters rather
// than key codes.
func (l *Layout) CodeForRune(r rune) (key.Code, key.Modifier, bool) {
	if l.reverse == nil {
		l.buildReverse()
	}
	e, ok := l.reverse[r]
	if !ok {
		return key.CodeUnknown, key.ModNone, false
	}
	return e.code, e.mods, true
}

func (l *Layout) buildReverse() {
	l.reverse = make(map[rune]reverseEntry, len(l.glyphs)*2)
	for c, g := range l.glyphs {
		// Base mappings win over shifted ones when a rune appears as both.
		if _, exists := l.reverse[g.shifted]; !exists && g.shifted != g.base {
			l.reverse[g.shifted] = reverseEntry{code: c, mods: key.ModShift}
		}
		l.reverse[g.base] = reverseEntry{code: c, mods: key.ModNone}
	}
}
