// Package session implements the key listener at the heart of keybridge:
// the ordered dispatch policy that turns raw key events into terminal bytes,
// emulator keystrokes, and UI side effects.
//
// A Listener owns the sticky modifier state and the selection area for one
// terminal session. Collaborators - transport, emulation engine, display,
// clipboard, preference store, device state - are reached through the narrow
// interfaces in this package, so the listener is testable with in-memory
// fakes. Events are handled strictly in arrival order by a single logical
// owner; the Listener performs no internal concurrency.
package session
