package emu

import (
	"sync"

	"github.com/dshills/keybridge/internal/input/meta"
	"github.com/dshills/keybridge/internal/logging"
	"github.com/dshills/keybridge/internal/session"
)

const (
	esc = 0x1B
	del = 0x7F
	bs  = 0x08
)

// VTKeys converts named keys into VT-style escape sequences and writes them
// to the transport. It tracks cursor key mode, which the host toggles with
// DECCKM, so arrow keys emit CSI or SS3 forms as the running program expects.
type VTKeys struct {
	mu        sync.Mutex
	transport session.Transport
	log       *logging.Logger

	// appCursor selects SS3 arrow sequences (DECCKM set).
	appCursor bool
}

// NewVTKeys creates a key encoder writing to the given transport.
func NewVTKeys(t session.Transport, log *logging.Logger) *VTKeys {
	if log == nil {
		log = logging.Discard
	}
	return &VTKeys{
		transport: t,
		log:       log.WithComponent("emu"),
	}
}

// SetApplicationCursor switches arrow keys between CSI and SS3 encodings.
func (v *VTKeys) SetApplicationCursor(on bool) {
	v.mu.Lock()
	v.appCursor = on
	v.mu.Unlock()
}

// DispatchNamedKey encodes a key pressed on the device with the given sticky
// modifier mask.
func (v *VTKeys) DispatchNamedKey(k session.NamedKey, _ rune, mask meta.Mask) {
	v.dispatch(k, mask)
}

// DispatchTypedKey encodes a key synthesized by the session itself, never
// modified.
func (v *VTKeys) DispatchTypedKey(k session.NamedKey, _ rune, _ meta.Mask) {
	v.dispatch(k, 0)
}

func (v *VTKeys) dispatch(k session.NamedKey, mask meta.Mask) {
	v.mu.Lock()
	seq := v.sequence(k, mask)
	v.mu.Unlock()

	if seq == nil {
		v.log.Debug("no sequence for key %s", k)
		return
	}
	if _, err := v.transport.Write(seq); err != nil {
		v.log.Error("key sequence write failed: %v", err)
	}
}

func (v *VTKeys) sequence(k session.NamedKey, mask meta.Mask) []byte {
	switch k {
	case session.NamedEscape:
		return []byte{esc}

	case session.NamedEnter:
		return []byte{'\r'}

	case session.NamedBackspace:
		// Ctrl flips the backspace byte so shells can distinguish the two.
		b := byte(del)
		if mask.Has(meta.MaskCtrl) {
			b = bs
		}
		if mask.Has(meta.MaskAlt) {
			return []byte{esc, b}
		}
		return []byte{b}

	case session.NamedUp:
		return v.arrow('A', mask)
	case session.NamedDown:
		return v.arrow('B', mask)
	case session.NamedRight:
		return v.arrow('C', mask)
	case session.NamedLeft:
		return v.arrow('D', mask)
	}

	if k >= session.NamedF1 && k <= session.NamedF10 {
		return functionSequence(k)
	}
	return nil
}

// arrow builds a cursor key sequence. Plain presses follow the cursor key
// mode; modified presses always use the xterm CSI 1;<mod> form.
func (v *VTKeys) arrow(final byte, mask meta.Mask) []byte {
	if p := modifierParam(mask); p != 0 {
		return []byte{esc, '[', '1', ';', p, final}
	}
	if v.appCursor {
		return []byte{esc, 'O', final}
	}
	return []byte{esc, '[', final}
}

// modifierParam returns the xterm modifier parameter digit, or 0 for an
// unmodified press. The encoding is 1 + shift(1) + alt(2) + ctrl(4).
func modifierParam(mask meta.Mask) byte {
	if mask == 0 {
		return 0
	}
	p := byte(1)
	if mask.Has(meta.MaskShift) {
		p += 1
	}
	if mask.Has(meta.MaskAlt) {
		p += 2
	}
	if mask.Has(meta.MaskCtrl) {
		p += 4
	}
	return '0' + p
}

var functionSequences = map[session.NamedKey][]byte{
	session.NamedF1:  []byte("\x1bOP"),
	session.NamedF2:  []byte("\x1bOQ"),
	session.NamedF3:  []byte("\x1bOR"),
	session.NamedF4:  []byte("\x1bOS"),
	session.NamedF5:  []byte("\x1b[15~"),
	session.NamedF6:  []byte("\x1b[17~"),
	session.NamedF7:  []byte("\x1b[18~"),
	session.NamedF8:  []byte("\x1b[19~"),
	session.NamedF9:  []byte("\x1b[20~"),
	session.NamedF10: []byte("\x1b[21~"),
}

func functionSequence(k session.NamedKey) []byte {
	return functionSequences[k]
}
