package session

import (
	"testing"

	"github.com/dshills/keybridge/internal/input/key"
)

func TestCtrlMap(t *testing.T) {
	tests := []struct {
		name string
		in   rune
		want rune
	}{
		{"ctrl-a", 'a', 0x01},
		{"ctrl-z", 'z', 0x1A},
		{"ctrl-A", 'A', 0x01},
		{"ctrl-Z", 'Z', 0x1A},
		{"ctrl-underscore", '_', 0x1F},
		{"ctrl-leftbracket", '[', 0x1B},
		{"ctrl-rightbracket", ']', 0x1D},
		{"ctrl-caret", '^', 0x1E},
		{"ctrl-backslash", '\\', 0x1C},
		{"ctrl-space", ' ', 0x00},
		{"ctrl-question", '?', 0x7F},
		{"digit passes through", '5', '5'},
		{"punctuation passes through", '.', '.'},
		{"high rune passes through", 'é', 'é'},
		{"at-sign below range passes through", '@', '@'},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ctrlMap(tt.in); got != tt.want {
				t.Errorf("ctrlMap(%q) = %#x, want %#x", tt.in, got, tt.want)
			}
		})
	}
}

func TestFunctionKeyFor(t *testing.T) {
	tests := []struct {
		code   key.Code
		want   NamedKey
		wantOK bool
	}{
		{key.Code1, NamedF1, true},
		{key.Code3, NamedF3, true},
		{key.Code9, NamedF9, true},
		{key.Code0, NamedF10, true},
		{key.CodeA, NamedNone, false},
		{key.CodeSpace, NamedNone, false},
		{key.CodeDPadUp, NamedNone, false},
	}

	for _, tt := range tests {
		got, ok := functionKeyFor(tt.code)
		if got != tt.want || ok != tt.wantOK {
			t.Errorf("functionKeyFor(%s) = (%s, %v), want (%s, %v)",
				tt.code, got, ok, tt.want, tt.wantOK)
		}
	}
}
