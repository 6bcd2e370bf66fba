// Package keymap resolves physical key codes into characters.
//
// A Layout is one keymap profile: it classifies codes as printing or not,
// and maps a code plus device modifier bits to the rune the key produces.
// Layouts are registered by name in a Registry so the active profile can be
// selected from configuration and swapped at runtime.
package keymap
