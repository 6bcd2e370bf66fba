// Package key defines the vocabulary of raw keyboard input: physical key
// codes, device-native modifier bits, and the events that carry them.
//
// A key.Event is the sole unit of input consumed by the session dispatcher.
// Events are snapshots: the Code says which physical key fired, Action says
// whether it went down, up, or delivered a composed character batch, and Mods
// carries the modifier bits the device itself reported at that instant.
// The sticky modifier state maintained across events lives in the meta
// package, not here.
package key
