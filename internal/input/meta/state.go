package meta

import (
	"fmt"
	"strings"
)

// Modifier identifies one of the tracked sticky modifiers.
type Modifier uint8

const (
	// Ctrl is the Control modifier.
	Ctrl Modifier = iota

	// Alt is the Alt modifier.
	Alt

	// Shift is the left/primary Shift modifier.
	Shift

	// RightShift is the right Shift modifier, used as the function-key
	// overlay trigger on hardware keyboards.
	RightShift

	numModifiers
)

// String returns a human-readable name for the modifier.
func (m Modifier) String() string {
	switch m {
	case Ctrl:
		return "Ctrl"
	case Alt:
		return "Alt"
	case Shift:
		return "Shift"
	case RightShift:
		return "RShift"
	default:
		return fmt.Sprintf("Modifier(%d)", uint8(m))
	}
}

// Mask is a set of active modifiers, derived from State for collaborators
// that only care whether a modifier is in effect.
type Mask uint8

const (
	// MaskCtrl indicates Control is active.
	MaskCtrl Mask = 1 << iota

	// MaskAlt indicates Alt is active.
	MaskAlt

	// MaskShift indicates Shift is active.
	MaskShift
)

// Has returns true if the mask contains the given bit.
func (m Mask) Has(bit Mask) bool {
	return m&bit != 0
}

// String returns a representation like "Ctrl+Shift".
func (m Mask) String() string {
	if m == 0 {
		return ""
	}
	var parts []string
	if m.Has(MaskCtrl) {
		parts = append(parts, "Ctrl")
	}
	if m.Has(MaskAlt) {
		parts = append(parts, "Alt")
	}
	if m.Has(MaskShift) {
		parts = append(parts, "Shift")
	}
	return strings.Join(parts, "+")
}

// pair is the state of one modifier: a momentary bit consumed by the next
// character and a lock bit that survives consumption.
type pair struct {
	on   bool
	lock bool
}

// State holds the sticky modifier state for one terminal session.
// It has a single logical owner and is not safe for concurrent use.
type State struct {
	mods [numModifiers]pair
}

// NewState returns a State with all modifiers inactive.
func NewState() *State {
	return &State{}
}

// Press applies one tap of a modifier key:
//
//	1st press: momentary, applies to the next character
//	2nd press: locked on
//	3rd press: off
func (s *State) Press(m Modifier) {
	p := &s.mods[m]
	switch {
	case p.lock:
		p.lock = false
	case p.on:
		p.on = false
		p.lock = true
	default:
		p.on = true
	}
}

// Active returns true if the modifier is in effect, momentary or locked.
func (s *State) Active(m Modifier) bool {
	return s.mods[m].on || s.mods[m].lock
}

// On returns true if the modifier's momentary bit is set.
func (s *State) On(m Modifier) bool {
	return s.mods[m].on
}

// Locked returns true if the modifier's lock bit is set.
func (s *State) Locked(m Modifier) bool {
	return s.mods[m].lock
}

// ClearOn clears the momentary bit for one modifier, leaving any lock.
// Used when a character consumes the modifier, or on hardware key-up.
func (s *State) ClearOn(m Modifier) {
	s.mods[m].on = false
}

// ClearTransient clears every momentary bit. Locked modifiers stay active.
func (s *State) ClearTransient() {
	for i := range s.mods {
		s.mods[i].on = false
	}
}

// ClearLocks clears every lock bit. Momentary bits stay set.
// Invoked per event while a hardware keyboard is visible, so locked state
// from soft-keyboard interaction cannot bleed into hardware input.
func (s *State) ClearLocks() {
	for i := range s.mods {
		s.mods[i].lock = false
	}
}

// Reset clears all momentary and lock bits.
func (s *State) Reset() {
	s.mods = [numModifiers]pair{}
}

// Mask returns the derived active-modifier mask for emulator dispatch.
// RightShift never contributes: it is the overlay trigger, not a modifier
// the terminal sees.
func (s *State) Mask() Mask {
	var mask Mask
	if s.Active(Ctrl) {
		mask |= MaskCtrl
	}
	if s.Active(Alt) {
		mask |= MaskAlt
	}
	if s.Active(Shift) {
		mask |= MaskShift
	}
	return mask
}

// String returns a compact representation for status display, such as
// "Ctrl* Alt!" where "*" is momentary and "!" is locked.
func (s *State) String() string {
	var parts []string
	for m := Ctrl; m < numModifiers; m++ {
		switch {
		case s.mods[m].lock:
			parts = append(parts, m.String()+"!")
		case s.mods[m].on:
			parts = append(parts, m.String()+"*")
		}
	}
	return strings.Join(parts, " ")
}
