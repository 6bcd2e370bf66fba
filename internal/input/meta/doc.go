// Package meta tracks sticky modifier state across key events.
//
// A terminal running on a device without a full keyboard cannot rely on
// chording: the user presses Ctrl, releases it, then presses the key it
// should apply to. State records, for each of Ctrl, Alt, Shift, and right
// Shift, a momentary "on" bit consumed by the next character and a "lock"
// bit that survives until explicitly toggled off. Press implements the
// three-stage cycle (momentary, locked, off) a repeated tap walks through.
package meta
