package emu

import (
	"bytes"
	"errors"
	"testing"

	"github.com/dshills/keybridge/internal/input/meta"
	"github.com/dshills/keybridge/internal/session"
)

type recordTransport struct {
	buf      bytes.Buffer
	writeErr error
}

func (t *recordTransport) Write(p []byte) (int, error) {
	if t.writeErr != nil {
		return 0, t.writeErr
	}
	return t.buf.Write(p)
}

func (t *recordTransport) Flush() error     { return nil }
func (t *recordTransport) Connected() bool  { return true }
func (t *recordTransport) ReportDisconnect() {}

func TestNamedKeySequences(t *testing.T) {
	tests := []struct {
		name string
		key  session.NamedKey
		mask meta.Mask
		want string
	}{
		{"escape", session.NamedEscape, 0, "\x1b"},
		{"enter", session.NamedEnter, 0, "\r"},
		{"backspace", session.NamedBackspace, 0, "\x7f"},
		{"ctrl-backspace", session.NamedBackspace, meta.MaskCtrl, "\x08"},
		{"alt-backspace", session.NamedBackspace, meta.MaskAlt, "\x1b\x7f"},
		{"up", session.NamedUp, 0, "\x1b[A"},
		{"down", session.NamedDown, 0, "\x1b[B"},
		{"right", session.NamedRight, 0, "\x1b[C"},
		{"left", session.NamedLeft, 0, "\x1b[D"},
		{"shift-up", session.NamedUp, meta.MaskShift, "\x1b[1;2A"},
		{"alt-left", session.NamedLeft, meta.MaskAlt, "\x1b[1;3D"},
		{"ctrl-right", session.NamedRight, meta.MaskCtrl, "\x1b[1;5C"},
		{"ctrl-shift-down", session.NamedDown, meta.MaskCtrl | meta.MaskShift, "\x1b[1;6B"},
		{"f1", session.NamedF1, 0, "\x1bOP"},
		{"f4", session.NamedF4, 0, "\x1bOS"},
		{"f5", session.NamedF5, 0, "\x1b[15~"},
		{"f10", session.NamedF10, 0, "\x1b[21~"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tr := &recordTransport{}
			v := NewVTKeys(tr, nil)

			v.DispatchNamedKey(tt.key, ' ', tt.mask)

			if got := tr.buf.String(); got != tt.want {
				t.Errorf("sequence = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestApplicationCursorMode(t *testing.T) {
	tr := &recordTransport{}
	v := NewVTKeys(tr, nil)
	v.SetApplicationCursor(true)

	v.DispatchNamedKey(session.NamedUp, ' ', 0)
	if got := tr.buf.String(); got != "\x1bOA" {
		t.Errorf("application-mode up = %q, want ESC O A", got)
	}

	// Modified arrows stay in CSI form regardless of mode.
	tr.buf.Reset()
	v.DispatchNamedKey(session.NamedUp, ' ', meta.MaskCtrl)
	if got := tr.buf.String(); got != "\x1b[1;5A" {
		t.Errorf("modified application-mode up = %q, want CSI form", got)
	}
}

func TestTypedKeyIgnoresMask(t *testing.T) {
	tr := &recordTransport{}
	v := NewVTKeys(tr, nil)

	v.DispatchTypedKey(session.NamedBackspace, ' ', meta.MaskCtrl)

	if got := tr.buf.String(); got != "\x7f" {
		t.Errorf("typed backspace = %q, want DEL", got)
	}
}

func TestWriteErrorIsSwallowed(t *testing.T) {
	tr := &recordTransport{writeErr: errors.New("closed")}
	v := NewVTKeys(tr, nil)

	// Must not panic or propagate.
	v.DispatchNamedKey(session.NamedEnter, ' ', 0)
}

func TestUnknownKeyWritesNothing(t *testing.T) {
	tr := &recordTransport{}
	v := NewVTKeys(tr, nil)

	v.DispatchNamedKey(session.NamedNone, ' ', 0)

	if tr.buf.Len() != 0 {
		t.Errorf("wrote %q for unmapped key", tr.buf.String())
	}
}
