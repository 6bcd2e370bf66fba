package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultValidates(t *testing.T) {
	if err := Default().Validate(); err != nil {
		t.Errorf("Default() should validate: %v", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Settings)
		wantErr bool
	}{
		{"defaults", func(*Settings) {}, false},
		{"empty keymap", func(s *Settings) { s.Keymap = "" }, true},
		{"bad shortcut", func(s *Settings) { s.Shortcut = "ctrl+b" }, true},
		{"esc shortcut", func(s *Settings) { s.Shortcut = ShortcutEsc }, false},
		{"esc+a shortcut", func(s *Settings) { s.Shortcut = ShortcutEscA }, false},
		{"latin1 charset", func(s *Settings) { s.Charset = "ISO-8859-1" }, false},
		{"bad charset", func(s *Settings) { s.Charset = "no-such" }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := Default()
			tt.mutate(&s)
			err := s.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	s, err := Load(filepath.Join(t.TempDir(), "absent.toml"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if s != Default() {
		t.Errorf("Load of missing file = %+v, want defaults", s)
	}
}

func TestLoadTOML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "keybridge.toml")
	content := "keymap = \"us\"\nshortcut = \"esc\"\ncharset = \"ISO-8859-1\"\nhaptics = false\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	s, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if s.Shortcut != ShortcutEsc || s.Charset != "ISO-8859-1" || s.Haptics {
		t.Errorf("Load = %+v", s)
	}
}

func TestLoadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "keybridge.yaml")
	content := "keymap: us\nshortcut: ctrl+a\ncharset: UTF-8\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	s, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if s.Shortcut != ShortcutCtrlA {
		t.Errorf("Shortcut = %q, want %q", s.Shortcut, ShortcutCtrlA)
	}
	// Unset keys keep their defaults.
	if !s.Haptics {
		t.Error("Haptics should default to true")
	}
}

func TestLoadRejectsUnknownExtension(t *testing.T) {
	path := filepath.Join(t.TempDir(), "keybridge.ini")
	if err := os.WriteFile(path, []byte("keymap=us"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Error("Load of .ini should fail")
	}
}

func TestLoadRejectsInvalidSettings(t *testing.T) {
	path := filepath.Join(t.TempDir(), "keybridge.toml")
	if err := os.WriteFile(path, []byte("shortcut = \"bogus\"\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Error("Load with bad shortcut should fail")
	}
}

func TestConfigApplyNotifies(t *testing.T) {
	cfg := New(Default())

	var got Settings
	notified := false
	cfg.OnChange(func(s Settings) {
		notified = true
		got = s
	})

	next := Default()
	next.Shortcut = ShortcutEscA
	if err := cfg.Apply(next); err != nil {
		t.Fatalf("Apply: %v", err)
	}

	if !notified || got.Shortcut != ShortcutEscA {
		t.Errorf("change listener not invoked correctly: notified=%v got=%+v", notified, got)
	}
	if cfg.ShortcutPreference() != ShortcutEscA {
		t.Errorf("ShortcutPreference() = %q", cfg.ShortcutPreference())
	}
}

func TestConfigApplyRejectsInvalid(t *testing.T) {
	cfg := New(Default())

	bad := Default()
	bad.Keymap = ""
	if err := cfg.Apply(bad); err == nil {
		t.Error("Apply of invalid settings should fail")
	}
	if cfg.KeymapProfile() != "us" {
		t.Error("failed Apply must not alter settings")
	}
}
