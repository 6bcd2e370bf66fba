package session

import (
	"bytes"
	"errors"

	"github.com/dshills/keybridge/internal/config"
	"github.com/dshills/keybridge/internal/input/meta"
)

// fakeTransport records written bytes and simulates failures.
type fakeTransport struct {
	buf         bytes.Buffer
	connected   bool
	writeErr    error
	flushErr    error
	flushes     int
	disconnects int
}

func (t *fakeTransport) Write(p []byte) (int, error) {
	if t.writeErr != nil {
		return 0, t.writeErr
	}
	return t.buf.Write(p)
}

func (t *fakeTransport) Flush() error {
	t.flushes++
	return t.flushErr
}

func (t *fakeTransport) Connected() bool { return t.connected }

func (t *fakeTransport) ReportDisconnect() { t.disconnects++ }

// emuCall records one emulator dispatch.
type emuCall struct {
	typed bool
	key   NamedKey
	mask  meta.Mask
}

type fakeEmu struct {
	calls []emuCall
}

func (e *fakeEmu) DispatchNamedKey(k NamedKey, _ rune, mask meta.Mask) {
	e.calls = append(e.calls, emuCall{key: k, mask: mask})
}

func (e *fakeEmu) DispatchTypedKey(k NamedKey, _ rune, mask meta.Mask) {
	e.calls = append(e.calls, emuCall{typed: true, key: k, mask: mask})
}

type fakeDisplay struct {
	redraws      int
	fontDelta    int
	haptics      int
	scrollResets int
}

func (d *fakeDisplay) RequestRedraw()          { d.redraws++ }
func (d *fakeDisplay) AdjustFontSize(delta int) { d.fontDelta += delta }
func (d *fakeDisplay) TriggerHaptic()          { d.haptics++ }
func (d *fakeDisplay) ResetScroll()            { d.scrollResets++ }

type fakeDevice struct {
	hard   bool
	hidden bool
}

func (d *fakeDevice) HardwareKeyboard() bool { return d.hard }
func (d *fakeDevice) KeyboardHidden() bool   { return d.hidden }

type fakePrefs struct {
	profile  string
	shortcut string
	charset  string
	haptics  bool
}

func (p *fakePrefs) KeymapProfile() string      { return p.profile }
func (p *fakePrefs) ShortcutPreference() string { return p.shortcut }
func (p *fakePrefs) Charset() string            { return p.charset }
func (p *fakePrefs) HapticsEnabled() bool       { return p.haptics }

type fakeClipboard struct {
	text string
	sets int
	err  error
}

func (c *fakeClipboard) SetText(s string) error {
	c.sets++
	if c.err != nil {
		return c.err
	}
	c.text = s
	return nil
}

// fakeScreen serves selection lines from fixed rows.
type fakeScreen struct {
	rows []string
}

func (s *fakeScreen) Line(row, startCol, endCol int) string {
	if row < 0 || row >= len(s.rows) {
		return ""
	}
	line := s.rows[row]
	if startCol < 0 {
		startCol = 0
	}
	if endCol >= len(line) {
		endCol = len(line) - 1
	}
	if startCol > endCol {
		return ""
	}
	return line[startCol : endCol+1]
}

// harness bundles a listener with all its fakes.
type harness struct {
	l      *Listener
	tr     *fakeTransport
	emu    *fakeEmu
	disp   *fakeDisplay
	dev    *fakeDevice
	prefs  *fakePrefs
	clip   *fakeClipboard
	screen *fakeScreen
}

func newHarness(hard, hidden bool) *harness {
	h := &harness{
		tr:     &fakeTransport{connected: true},
		emu:    &fakeEmu{},
		disp:   &fakeDisplay{},
		dev:    &fakeDevice{hard: hard, hidden: hidden},
		prefs:  &fakePrefs{profile: "us", shortcut: config.ShortcutCtrlASpace, charset: "UTF-8", haptics: true},
		clip:   &fakeClipboard{},
		screen: &fakeScreen{rows: []string{"alpha", "bravo", "charl"}},
	}

	h.l = New(h.prefs, h.dev, nil)
	h.l.SetTransport(h.tr)
	h.l.SetEmulator(h.emu)
	h.l.SetDisplay(h.disp)
	h.l.SetClipboard(h.clip)
	h.l.SetScreen(h.screen)
	return h
}

var errBroken = errors.New("broken pipe")
