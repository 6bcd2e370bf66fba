package term

import (
	"github.com/gdamore/tcell/v2"

	"github.com/dshills/keybridge/internal/input/key"
	"github.com/dshills/keybridge/internal/input/keymap"
)

// Translate converts a tcell key event into the session's event model using
// the layout's reverse mapping for plain runes. The second return value is
// false when the event has no equivalent.
//
// Desktop keyboards lack the device keys of the source model, so a few are
// mapped onto spares: Escape acts as the search key, Insert as the selection
// confirm key, and PgUp/PgDn as the font-size keys.
func Translate(ev *tcell.EventKey, layout *keymap.Layout) (key.Event, bool) {
	mods := translateMods(ev.Modifiers())

	switch k := ev.Key(); k {
	case tcell.KeyRune:
		return runeEvent(ev.Rune(), mods, layout)

	case tcell.KeyEnter:
		return key.NewDown(key.CodeEnter, mods), true
	case tcell.KeyTab:
		return key.NewDown(key.CodeTab, mods), true
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		return key.NewDown(key.CodeDel, mods), true

	case tcell.KeyUp:
		return key.NewDown(key.CodeDPadUp, mods), true
	case tcell.KeyDown:
		return key.NewDown(key.CodeDPadDown, mods), true
	case tcell.KeyLeft:
		return key.NewDown(key.CodeDPadLeft, mods), true
	case tcell.KeyRight:
		return key.NewDown(key.CodeDPadRight, mods), true

	case tcell.KeyEscape:
		return key.NewDown(key.CodeSearch, mods), true
	case tcell.KeyInsert:
		return key.NewDown(key.CodeDPadCenter, mods), true
	case tcell.KeyPgUp:
		return key.NewDown(key.CodeVolumeUp, mods), true
	case tcell.KeyPgDn:
		return key.NewDown(key.CodeVolumeDown, mods), true
	case tcell.KeyF12:
		return key.NewDown(key.CodeCamera, mods), true

	case tcell.KeyCtrlSpace:
		return key.NewDown(key.CodeSpace, mods.With(key.ModCtrl)), true

	default:
		if k >= tcell.KeyCtrlA && k <= tcell.KeyCtrlZ {
			return ctrlLetterEvent(k, mods)
		}
		return key.Event{}, false
	}
}

// runeEvent maps a character back to the key that produces it. Characters
// outside the layout, such as composed input, become batch events.
func runeEvent(r rune, mods key.Modifier, layout *keymap.Layout) (key.Event, bool) {
	code, keyMods, ok := layout.CodeForRune(r)
	if !ok {
		return key.NewBatch(string(r)), true
	}
	return key.NewDown(code, mods.With(keyMods)), true
}

// ctrlLetterEvent recovers the letter behind a tcell control key. Tab and
// Enter live inside the Ctrl range and are handled before this is reached.
func ctrlLetterEvent(k tcell.Key, mods key.Modifier) (key.Event, bool) {
	code := key.CodeA + key.Code(k-tcell.KeyCtrlA)
	return key.NewDown(code, mods.With(key.ModCtrl)), true
}

func translateMods(m tcell.ModMask) key.Modifier {
	mods := key.ModNone
	if m&tcell.ModShift != 0 {
		mods = mods.With(key.ModShift)
	}
	if m&tcell.ModAlt != 0 {
		mods = mods.With(key.ModAlt)
	}
	if m&tcell.ModCtrl != 0 {
		mods = mods.With(key.ModCtrl)
	}
	return mods
}
