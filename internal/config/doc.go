// Package config holds the user-tunable settings a key session consults:
// the active keymap profile, the device-shortcut preference, the outgoing
// charset, and haptic feedback.
//
// Settings load from a TOML or YAML file (chosen by extension), merge over
// defaults, and can be hot-reloaded through a filesystem watcher so a running
// session picks up edits without restarting.
package config
