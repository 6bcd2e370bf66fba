package session

import (
	"github.com/google/uuid"

	"github.com/dshills/keybridge/internal/charset"
	"github.com/dshills/keybridge/internal/config"
	"github.com/dshills/keybridge/internal/input/key"
	"github.com/dshills/keybridge/internal/input/keymap"
	"github.com/dshills/keybridge/internal/input/meta"
	"github.com/dshills/keybridge/internal/logging"
	"github.com/dshills/keybridge/internal/selection"
)

// Outcome reports whether the listener consumed an event.
type Outcome uint8

const (
	// NotHandled means the event did not apply and may be re-dispatched
	// elsewhere.
	NotHandled Outcome = iota

	// Consumed means the event was fully handled.
	Consumed
)

// String returns a human-readable name for the outcome.
func (o Outcome) String() string {
	if o == Consumed {
		return "Consumed"
	}
	return "NotHandled"
}

// Listener translates key events into terminal bytes and side effects for
// one session. It owns the sticky modifier state and the selection area;
// no other component mutates them.
type Listener struct {
	id  string
	log *logging.Logger

	meta      *meta.State
	area      *selection.Area
	selecting bool

	layouts *keymap.Registry
	prefs   Prefs
	device  Device

	transport Transport
	emu       Emulator
	display   Display
	clip      Clipboard
	screen    selection.Reader

	// cached charset encoder, keyed by name
	enc     *charset.Encoder
	encName string
}

// keyboardContext is the per-event snapshot of device and preference state.
type keyboardContext struct {
	hardKeyboard bool
	hidden       bool
	profile      string
	charset      string
}

// hardVisible reports a physical keyboard that is present and open.
func (c keyboardContext) hardVisible() bool {
	return c.hardKeyboard && !c.hidden
}

// New creates a listener for one terminal session.
func New(prefs Prefs, device Device, log *logging.Logger) *Listener {
	if log == nil {
		log = logging.Discard
	}
	id := uuid.New().String()

	return &Listener{
		id:      id,
		log:     log.WithComponent("session").WithField("session", id[:8]),
		meta:    meta.NewState(),
		area:    selection.NewArea(),
		layouts: keymap.NewRegistry(),
		prefs:   prefs,
		device:  device,
	}
}

// ID returns the session identifier.
func (l *Listener) ID() string { return l.id }

// SetTransport attaches the transport. A nil transport gates all terminal
// input off.
func (l *Listener) SetTransport(t Transport) { l.transport = t }

// SetEmulator attaches the terminal emulation engine.
func (l *Listener) SetEmulator(e Emulator) { l.emu = e }

// SetDisplay attaches the UI notification sink.
func (l *Listener) SetDisplay(d Display) { l.display = d }

// SetClipboard attaches the clipboard used for selection extraction.
func (l *Listener) SetClipboard(c Clipboard) { l.clip = c }

// SetScreen attaches the screen text reader used for selection extraction.
func (l *Listener) SetScreen(r selection.Reader) { l.screen = r }

// Layouts returns the keymap profile registry for this session.
func (l *Listener) Layouts() *keymap.Registry { return l.layouts }

// MetaState exposes the sticky modifier state, read-only by convention,
// for UI indicators.
func (l *Listener) MetaState() *meta.State { return l.meta }

// Selection exposes the selection area for UI highlighting.
func (l *Listener) Selection() *selection.Area { return l.area }

// SelectingForCopy reports whether selection mode is active.
func (l *Listener) SelectingForCopy() bool { return l.selecting }

// SetSelectingForCopy enters or cancels selection mode. Entering starts at
// the given cell; cancelling resets the area.
func (l *Listener) SetSelectingForCopy(on bool, row, col int) {
	l.selecting = on
	l.area.Reset()
	if on {
		l.area.MoveTo(row, col)
	}
}

// KeyboardVisibilityChanged clears all sticky modifier state when a hardware
// keyboard becomes visible, so nothing stale survives the soft/hard switch.
func (l *Listener) KeyboardVisibilityChanged() {
	if l.device.HardwareKeyboard() && !l.device.KeyboardHidden() {
		l.meta.Reset()
		if l.display != nil {
			l.display.RequestRedraw()
		}
	}
}

func (l *Listener) connected() bool {
	return l.transport != nil && l.transport.Connected()
}

// HandleKey processes one key event. Events must arrive from a single
// goroutine; the ordered policy below is normative and first match wins.
func (l *Listener) HandleKey(ev key.Event) Outcome {
	// Input before the session is established is absorbed, not re-dispatched.
	if l.emu == nil || l.display == nil {
		l.log.Debug("input before session established ignored: %s", ev)
		return Consumed
	}

	ctx := l.snapshot()

	// A visible hardware keyboard clears locks every event: locked state
	// belongs to soft-keyboard interaction only.
	if ctx.hardVisible() {
		l.meta.ClearLocks()
	}

	if ev.IsUp() {
		return l.handleRelease(ev, ctx)
	}

	// Resize shortcuts work even without a connection.
	switch ev.Code {
	case key.CodeVolumeUp:
		l.display.AdjustFontSize(1)
		return Consumed
	case key.CodeVolumeDown:
		l.display.AdjustFontSize(-1)
		return Consumed
	}

	if !l.connected() {
		return NotHandled
	}

	l.display.ResetScroll()

	layout := l.layout(ctx.profile)

	if layout.IsPrinting(ev.Code) || ev.Code == key.CodeSpace || ev.Code == key.CodeTab {
		return l.handlePrinting(ev, ctx, layout)
	}

	if ev.IsBatch() {
		l.emitBatch(ev.Batch, ctx.charset)
		return Consumed
	}

	// Modifier taps on a visible hardware keyboard drive the sticky state
	// machine. Auto-repeats are ignored so holding Shift does not cycle it.
	if ctx.hardVisible() && ev.Repeat == 0 {
		switch ev.Code {
		case key.CodeAltLeft, key.CodeAltRight:
			l.pressMeta(meta.Alt)
			return Consumed
		case key.CodeShiftLeft:
			l.pressMeta(meta.Shift)
			return Consumed
		case key.CodeCtrlLeft, key.CodeCtrlRight:
			l.pressMeta(meta.Ctrl)
			return Consumed
		case key.CodeShiftRight:
			l.pressMeta(meta.RightShift)
			return Consumed
		}
	}

	return l.handleSpecial(ev)
}

// snapshot captures device and preference state for one event.
func (l *Listener) snapshot() keyboardContext {
	return keyboardContext{
		hardKeyboard: l.device.HardwareKeyboard(),
		hidden:       l.device.KeyboardHidden(),
		profile:      l.prefs.KeymapProfile(),
		charset:      l.prefs.Charset(),
	}
}

// layout resolves the active keymap profile, falling back to the built-in
// US layout if the configured profile is missing.
func (l *Listener) layout(profile string) *keymap.Layout {
	layout, err := l.layouts.Get(profile)
	if err == nil {
		return layout
	}
	l.log.Warn("keymap profile %q not registered, using us", profile)
	layout, _ = l.layouts.Get("us")
	return layout
}

// handleRelease processes key-up events. Only modifier releases from a
// visible hardware keyboard on a live connection matter: they end the
// momentary phase of their modifier.
func (l *Listener) handleRelease(ev key.Event, ctx keyboardContext) Outcome {
	if !ctx.hardVisible() {
		return NotHandled
	}
	if !l.connected() {
		return NotHandled
	}

	switch ev.Code {
	case key.CodeAltLeft, key.CodeAltRight:
		l.meta.ClearOn(meta.Alt)
		return Consumed
	case key.CodeShiftLeft:
		l.meta.ClearOn(meta.Shift)
		return Consumed
	case key.CodeCtrlLeft, key.CodeCtrlRight:
		l.meta.ClearOn(meta.Ctrl)
		return Consumed
	case key.CodeShiftRight:
		l.meta.ClearOn(meta.RightShift)
		return Consumed
	}
	return NotHandled
}

// handlePrinting resolves and emits a printing key. Sticky Shift and Alt are
// folded into the device modifier bits before resolution so the layout
// produces the shifted or alternate glyph; Ctrl is applied to the resolved
// rune afterwards.
func (l *Listener) handlePrinting(ev key.Event, ctx keyboardContext, layout *keymap.Layout) Outcome {
	mods := ev.Mods
	applied := false

	if l.meta.Active(meta.Shift) {
		mods = mods.With(key.ModShift)
		l.meta.ClearOn(meta.Shift)
		applied = true
	}

	if l.meta.Active(meta.Alt) {
		mods = mods.With(key.ModAlt)
		l.meta.ClearOn(meta.Alt)
		applied = true
	}

	ctrl := mods.HasCtrl()
	if l.meta.Active(meta.Ctrl) {
		l.meta.ClearOn(meta.Ctrl)
		applied = true
		ctrl = true
	}

	r := layout.Resolve(ev.Code, mods)
	if ctrl {
		r = ctrlMap(r)
	}

	if applied {
		l.display.RequestRedraw()
	}

	// Right-Shift overlays function keys over the digit row on a visible
	// hardware keyboard. When the overlay fires, no character is emitted.
	if ctx.hardVisible() && l.meta.On(meta.RightShift) {
		if fk, ok := functionKeyFor(ev.Code); ok {
			l.emu.DispatchNamedKey(fk, ' ', 0)
			return Consumed
		}
	}

	l.emitRune(r, ctx.charset)
	return Consumed
}

// pressMeta advances the sticky state machine and updates UI indicators.
func (l *Listener) pressMeta(m meta.Modifier) {
	l.meta.Press(m)
	l.display.RequestRedraw()
}

// sendEscape delivers a single escape keystroke to the emulation engine.
func (l *Listener) sendEscape() {
	l.emu.DispatchTypedKey(NamedEscape, ' ', 0)
}

// handleSpecial processes the non-printing special key table.
func (l *Listener) handleSpecial(ev key.Event) Outcome {
	switch ev.Code {
	case key.CodeSearch:
		l.sendEscape()
		return Consumed

	case key.CodeCamera:
		l.handleShortcut()
		return Consumed

	case key.CodeDel:
		l.emu.DispatchNamedKey(NamedBackspace, ' ', l.meta.Mask())
		l.meta.ClearTransient()
		return Consumed

	case key.CodeEnter:
		l.emu.DispatchTypedKey(NamedEnter, ' ', 0)
		l.meta.ClearTransient()
		return Consumed

	case key.CodeDPadUp:
		return l.handleDirection(selection.Up, NamedUp)
	case key.CodeDPadDown:
		return l.handleDirection(selection.Down, NamedDown)
	case key.CodeDPadLeft:
		return l.handleDirection(selection.Left, NamedLeft)
	case key.CodeDPadRight:
		return l.handleDirection(selection.Right, NamedRight)

	case key.CodeDPadCenter:
		return l.handleCenter()
	}

	return NotHandled
}

// handleShortcut emits whatever the device shortcut key is configured to
// produce.
func (l *Listener) handleShortcut() {
	switch pref := l.prefs.ShortcutPreference(); pref {
	case config.ShortcutCtrlASpace:
		l.write([]byte{0x01})
		l.write([]byte{' '})
	case config.ShortcutCtrlA:
		l.write([]byte{0x01})
	case config.ShortcutEsc:
		l.sendEscape()
	case config.ShortcutEscA:
		l.sendEscape()
		l.write([]byte{'a'})
	default:
		l.log.Warn("unknown shortcut preference %q", pref)
	}
}

// handleDirection routes a directional key: selection-cursor movement when
// selecting, otherwise a named key to the emulation engine.
func (l *Listener) handleDirection(d selection.Direction, named NamedKey) Outcome {
	if l.selecting {
		l.area.Step(d)
		l.display.RequestRedraw()
		return Consumed
	}

	l.emu.DispatchNamedKey(named, ' ', l.meta.Mask())
	l.meta.ClearTransient()
	if l.prefs.HapticsEnabled() {
		l.display.TriggerHaptic()
	}
	return Consumed
}

// handleCenter processes the confirm key: selection origin/extraction when
// selecting, otherwise a Ctrl helper.
func (l *Listener) handleCenter() Outcome {
	if l.selecting {
		if l.area.SelectingOrigin() {
			l.area.FinalizeOrigin()
		} else {
			l.finishCopy()
		}
	} else {
		if l.meta.On(meta.Ctrl) {
			l.sendEscape()
			l.meta.ClearOn(meta.Ctrl)
		} else {
			l.meta.Press(meta.Ctrl)
		}
	}

	l.display.RequestRedraw()
	return Consumed
}

// finishCopy extracts the marked region to the clipboard and leaves
// selection mode.
func (l *Listener) finishCopy() {
	if l.clip == nil || l.screen == nil {
		return
	}

	text := l.area.Copy(l.screen)
	if err := l.clip.SetText(text); err != nil {
		l.log.Warn("clipboard copy failed: %v", err)
	} else {
		l.log.Info("copied %d chars to clipboard", len(text))
	}

	l.selecting = false
	l.area.Reset()
}
