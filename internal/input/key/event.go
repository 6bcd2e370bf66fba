package key

import (
	"fmt"
	"time"
)

// Action describes what a key did.
type Action uint8

const (
	// ActionDown is a key press.
	ActionDown Action = iota

	// ActionUp is a key release.
	ActionUp

	// ActionMultiple delivers a batch of composed characters, typically from
	// an input method, with no associated physical key.
	ActionMultiple
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionDown:
		return "Down"
	case ActionUp:
		return "Up"
	case ActionMultiple:
		return "Multiple"
	default:
		return fmt.Sprintf("Action(%d)", uint8(a))
	}
}

// Event represents a single input event from a keyboard source.
type Event struct {
	// Code identifies the key pressed. CodeUnknown for ActionMultiple events.
	Code Code

	// Action is what the key did.
	Action Action

	// Mods contains the device-native modifier bits at event time.
	Mods Modifier

	// Repeat is the auto-repeat count. Zero for the first press.
	Repeat int

	// Batch holds the decoded characters for ActionMultiple events.
	Batch string

	// Timestamp is when the event occurred.
	Timestamp time.Time
}

// NewDown creates a key press event with the current timestamp.
func NewDown(code Code, mods Modifier) Event {
	return Event{
		Code:      code,
		Action:    ActionDown,
		Mods:      mods,
		Timestamp: time.Now(),
	}
}

// NewUp creates a key release event with the current timestamp.
func NewUp(code Code, mods Modifier) Event {
	return Event{
		Code:      code,
		Action:    ActionUp,
		Mods:      mods,
		Timestamp: time.Now(),
	}
}

// NewBatch creates a composed-character batch event.
func NewBatch(s string) Event {
	return Event{
		Code:      CodeUnknown,
		Action:    ActionMultiple,
		Batch:     s,
		Timestamp: time.Now(),
	}
}

// WithRepeat returns a copy of the event with the repeat count set.
func (e Event) WithRepeat(n int) Event {
	e.Repeat = n
	return e
}

// IsDown returns true for key press events.
func (e Event) IsDown() bool {
	return e.Action == ActionDown
}

// IsUp returns true for key release events.
func (e Event) IsUp() bool {
	return e.Action == ActionUp
}

// IsBatch returns true for composed-character batch events.
func (e Event) IsBatch() bool {
	return e.Action == ActionMultiple && e.Code == CodeUnknown
}

// String returns a representation like "Down:Ctrl+a" or "Multiple(3)".
func (e Event) String() string {
	if e.IsBatch() {
		return fmt.Sprintf("Multiple(%d)", len(e.Batch))
	}
	if e.Mods.IsEmpty() {
		return fmt.Sprintf("%s:%s", e.Action, e.Code)
	}
	return fmt.Sprintf("%s:%s+%s", e.Action, e.Mods, e.Code)
}
