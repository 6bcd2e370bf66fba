// Package selection implements the copy-region cursor for selection mode.
//
// When a session enters selection mode, directional input stops producing
// terminal bytes and instead moves a cursor over the screen grid. The first
// confirm press pins the origin corner; subsequent movement stretches the
// extent; the second confirm press extracts the marked rectangle. Movement is
// deliberately unbounded here: clamping to the grid is the emulation engine's
// concern.
package selection
