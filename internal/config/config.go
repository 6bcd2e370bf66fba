package config

import (
	"fmt"
	"sync"

	"github.com/dshills/keybridge/internal/charset"
)

// Shortcut preference values for the device shortcut key.
const (
	ShortcutCtrlASpace = "ctrl+a space"
	ShortcutCtrlA      = "ctrl+a"
	ShortcutEsc        = "esc"
	ShortcutEscA       = "esc+a"
)

// Settings are the user-tunable values a key session consults.
type Settings struct {
	// Keymap is the active keymap profile name.
	Keymap string `toml:"keymap" yaml:"keymap"`

	// Shortcut selects what the device shortcut key emits.
	Shortcut string `toml:"shortcut" yaml:"shortcut"`

	// Charset is the IANA name of the outgoing character encoding.
	Charset string `toml:"charset" yaml:"charset"`

	// Haptics enables haptic feedback on directional keys.
	Haptics bool `toml:"haptics" yaml:"haptics"`

	// LogLevel sets the minimum log level.
	LogLevel string `toml:"log_level" yaml:"log_level"`
}

// Default returns the settings used when no file is present.
func Default() Settings {
	return Settings{
		Keymap:   "us",
		Shortcut: ShortcutCtrlASpace,
		Charset:  charset.DefaultName,
		Haptics:  true,
		LogLevel: "info",
	}
}

// Validate checks that the settings are usable.
func (s Settings) Validate() error {
	if s.Keymap == "" {
		return fmt.Errorf("keymap profile must not be empty")
	}

	switch s.Shortcut {
	case ShortcutCtrlASpace, ShortcutCtrlA, ShortcutEsc, ShortcutEscA:
	default:
		return fmt.Errorf("unknown shortcut preference: %q", s.Shortcut)
	}

	if _, err := charset.New(s.Charset); err != nil {
		return fmt.Errorf("validating charset: %w", err)
	}

	return nil
}

// Config is a live settings store. Sessions read it per event; the watcher
// and UI write it. Reads and writes may come from different goroutines.
type Config struct {
	mu       sync.RWMutex
	settings Settings
	onChange []func(Settings)
}

// New creates a Config holding the given settings.
func New(s Settings) *Config {
	return &Config{settings: s}
}

// Settings returns a snapshot of the current settings.
func (c *Config) Settings() Settings {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.settings
}

// Apply validates and installs new settings, notifying change listeners.
func (c *Config) Apply(s Settings) error {
	if err := s.Validate(); err != nil {
		return err
	}

	c.mu.Lock()
	c.settings = s
	listeners := make([]func(Settings), len(c.onChange))
	copy(listeners, c.onChange)
	c.mu.Unlock()

	for _, fn := range listeners {
		fn(s)
	}
	return nil
}

// OnChange registers a callback invoked after settings change.
func (c *Config) OnChange(fn func(Settings)) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.onChange = append(c.onChange, fn)
}

// KeymapProfile returns the active keymap profile name.
func (c *Config) KeymapProfile() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.settings.Keymap
}

// ShortcutPreference returns the device-shortcut preference value.
func (c *Config) ShortcutPreference() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.settings.Shortcut
}

// Charset returns the outgoing charset name.
func (c *Config) Charset() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.settings.Charset
}

// HapticsEnabled returns whether haptic feedback is on.
func (c *Config) HapticsEnabled() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.settings.Haptics
}
