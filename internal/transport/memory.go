package transport

import (
	"bytes"
	"sync"
)

// Memory is an in-process transport backed by a buffer. It is safe for
// concurrent use.
type Memory struct {
	mu           sync.Mutex
	buf          bytes.Buffer
	connected    bool
	onDisconnect func()
}

// NewMemory creates a connected in-memory transport. onDisconnect, if not
// nil, runs once when a disconnect is reported.
func NewMemory(onDisconnect func()) *Memory {
	return &Memory{
		connected:    true,
		onDisconnect: onDisconnect,
	}
}

// Write appends to the buffer.
func (m *Memory) Write(p []byte) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.buf.Write(p)
}

// Flush is a no-op; memory writes are immediate.
func (m *Memory) Flush() error { return nil }

// Connected reports whether the transport is live.
func (m *Memory) Connected() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.connected
}

// ReportDisconnect marks the transport dead and runs the disconnect hook.
func (m *Memory) ReportDisconnect() {
	m.mu.Lock()
	wasConnected := m.connected
	m.connected = false
	hook := m.onDisconnect
	m.mu.Unlock()

	if wasConnected && hook != nil {
		hook()
	}
}

// Bytes returns a copy of everything written so far.
func (m *Memory) Bytes() []byte {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]byte, m.buf.Len())
	copy(out, m.buf.Bytes())
	return out
}

// Drain returns the buffered bytes and resets the buffer.
func (m *Memory) Drain() []byte {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]byte, m.buf.Len())
	copy(out, m.buf.Bytes())
	m.buf.Reset()
	return out
}
