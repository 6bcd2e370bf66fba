// Package clipboard provides destinations for selection text: the system
// clipboard and an in-memory fallback for headless environments.
package clipboard

import (
	"sync"

	"github.com/atotto/clipboard"
)

// System writes to the operating system clipboard.
type System struct{}

// NewSystem returns the system clipboard. Available reports whether the
// platform supports it; callers should fall back to Memory when it does not.
func NewSystem() *System { return &System{} }

// Available reports whether the system clipboard can be used.
func (s *System) Available() bool { return !clipboard.Unsupported }

// SetText places text on the system clipboard.
func (s *System) SetText(text string) error {
	return clipboard.WriteAll(text)
}

// Memory holds the last copied text in process memory.
type Memory struct {
	mu   sync.Mutex
	text string
}

// NewMemory returns an empty in-memory clipboard.
func NewMemory() *Memory { return &Memory{} }

// SetText stores the text.
func (m *Memory) SetText(text string) error {
	m.mu.Lock()
	m.text = text
	m.mu.Unlock()
	return nil
}

// Text returns the last stored text.
func (m *Memory) Text() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.text
}
