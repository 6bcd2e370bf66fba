package charset

import (
	"bytes"
	"testing"
)

func TestNewDefaultsToUTF8(t *testing.T) {
	e, err := New("")
	if err != nil {
		t.Fatalf("New(\"\"): %v", err)
	}
	if e.Name() != "UTF-8" {
		t.Errorf("Name() = %q, want UTF-8", e.Name())
	}
}

func TestNewUnknownCharset(t *testing.T) {
	if _, err := New("no-such-charset"); err == nil {
		t.Error("New(no-such-charset) should fail")
	}
}

func TestEncodeRuneUTF8(t *testing.T) {
	e, err := New("UTF-8")
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	tests := []struct {
		r    rune
		want []byte
	}{
		{'a', []byte{0x61}},
		{'é', []byte{0xC3, 0xA9}},
		{'€', []byte{0xE2, 0x82, 0xAC}},
		{'あ', []byte{0xE3, 0x81, 0x82}},
	}

	for _, tt := range tests {
		got, err := e.EncodeRune(tt.r)
		if err != nil {
			t.Errorf("EncodeRune(%q): %v", tt.r, err)
			continue
		}
		if !bytes.Equal(got, tt.want) {
			t.Errorf("EncodeRune(%q) = %x, want %x", tt.r, got, tt.want)
		}
	}
}

func TestEncodeRuneLatin1(t *testing.T) {
	e, err := New("ISO-8859-1")
	if err != nil {
		t.Fatalf("New(ISO-8859-1): %v", err)
	}

	got, err := e.EncodeRune('é')
	if err != nil {
		t.Fatalf("EncodeRune: %v", err)
	}
	if !bytes.Equal(got, []byte{0xE9}) {
		t.Errorf("EncodeRune('é') = %x, want e9", got)
	}
}

func TestEncodeStringUTF8Passthrough(t *testing.T) {
	e, err := New("utf8")
	if err != nil {
		t.Fatalf("New(utf8): %v", err)
	}

	in := "héllo"
	got, err := e.EncodeString(in)
	if err != nil {
		t.Fatalf("EncodeString: %v", err)
	}
	if !bytes.Equal(got, []byte(in)) {
		t.Errorf("EncodeString(%q) = %x, want %x", in, got, []byte(in))
	}
}

func TestEncoderIsReusable(t *testing.T) {
	e, err := New("ISO-8859-1")
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	for i := 0; i < 3; i++ {
		got, err := e.EncodeRune('ü')
		if err != nil {
			t.Fatalf("EncodeRune call %d: %v", i, err)
		}
		if !bytes.Equal(got, []byte{0xFC}) {
			t.Errorf("call %d: got %x, want fc", i, got)
		}
	}
}
