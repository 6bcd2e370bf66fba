package session

import (
	"fmt"

	"github.com/dshills/keybridge/internal/input/meta"
)

// NamedKey identifies a terminal key dispatched to the emulation engine by
// name rather than as a byte.
type NamedKey uint8

const (
	// NamedNone is the zero NamedKey.
	NamedNone NamedKey = iota

	// NamedEscape is the terminal escape key.
	NamedEscape

	// NamedEnter is the enter key.
	NamedEnter

	// NamedBackspace is the backspace key.
	NamedBackspace

	// Directional keys
	NamedUp
	NamedDown
	NamedLeft
	NamedRight

	// Function keys
	NamedF1
	NamedF2
	NamedF3
	NamedF4
	NamedF5
	NamedF6
	NamedF7
	NamedF8
	NamedF9
	NamedF10
)

// String returns a human-readable name for the key.
func (k NamedKey) String() string {
	switch k {
	case NamedNone:
		return "None"
	case NamedEscape:
		return "Escape"
	case NamedEnter:
		return "Enter"
	case NamedBackspace:
		return "Backspace"
	case NamedUp:
		return "Up"
	case NamedDown:
		return "Down"
	case NamedLeft:
		return "Left"
	case NamedRight:
		return "Right"
	}
	if k >= NamedF1 && k <= NamedF10 {
		return fmt.Sprintf("F%d", k-NamedF1+1)
	}
	return fmt.Sprintf("NamedKey(%d)", uint8(k))
}

// Transport carries outgoing bytes to the remote session.
// The byte sequences the listener produces are opaque payloads; framing and
// delivery are the transport's concern.
type Transport interface {
	// Write sends bytes to the remote side.
	Write(p []byte) (int, error)

	// Flush forces buffered bytes out. Used as the recovery step after a
	// failed write.
	Flush() error

	// Connected reports whether the transport can carry bytes.
	Connected() bool

	// ReportDisconnect notifies the session owner that the transport is
	// unrecoverable. Fire-and-forget.
	ReportDisconnect()
}

// Emulator is the terminal emulation engine's key entry points.
//
// DispatchNamedKey carries key-down semantics (the engine may apply modifier
// state and auto-repeat); DispatchTypedKey carries a single logical
// keystroke. The placeholder rune fills the engine's character slot for keys
// that have none.
type Emulator interface {
	DispatchNamedKey(k NamedKey, placeholder rune, mask meta.Mask)
	DispatchTypedKey(k NamedKey, placeholder rune, mask meta.Mask)
}

// Display receives one-way UI notifications. All calls are fire-and-forget.
type Display interface {
	// RequestRedraw asks the UI to repaint, typically so modifier
	// indicators update.
	RequestRedraw()

	// AdjustFontSize changes the terminal font size by delta steps.
	AdjustFontSize(delta int)

	// TriggerHaptic fires haptic feedback for a directional key.
	TriggerHaptic()

	// ResetScroll snaps the view back to the live screen from scrollback.
	ResetScroll()
}

// Device reports the physical keyboard situation.
type Device interface {
	// HardwareKeyboard reports whether a physical keyboard exists.
	HardwareKeyboard() bool

	// KeyboardHidden reports whether the physical keyboard is currently
	// hidden, such as a slider closed.
	KeyboardHidden() bool
}

// Prefs supplies the preference values the listener consults per event.
type Prefs interface {
	// KeymapProfile returns the active keymap profile name.
	KeymapProfile() string

	// ShortcutPreference returns the device-shortcut preference, one of the
	// config.Shortcut* values.
	ShortcutPreference() string

	// Charset returns the IANA name of the outgoing character encoding.
	Charset() string

	// HapticsEnabled reports whether haptic feedback is on.
	HapticsEnabled() bool
}

// Clipboard receives extracted selection text.
type Clipboard interface {
	SetText(s string) error
}
