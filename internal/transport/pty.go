package transport

import (
	"fmt"
	"os"
	"os/exec"
	"sync"

	"github.com/creack/pty"

	"github.com/dshills/keybridge/internal/logging"
)

// PTY runs a command on a pseudo-terminal and writes session bytes to it.
type PTY struct {
	mu           sync.Mutex
	f            *os.File
	cmd          *exec.Cmd
	log          *logging.Logger
	connected    bool
	onDisconnect func()
}

// StartPTY launches the command on a new pseudo-terminal with the given
// initial size. onDisconnect, if not nil, runs once when the transport
// reports a disconnect or the command exits.
func StartPTY(cmd *exec.Cmd, rows, cols uint16, log *logging.Logger, onDisconnect func()) (*PTY, error) {
	if log == nil {
		log = logging.Discard
	}

	f, err := pty.StartWithSize(cmd, &pty.Winsize{Rows: rows, Cols: cols})
	if err != nil {
		return nil, fmt.Errorf("start pty: %w", err)
	}

	p := &PTY{
		f:            f,
		cmd:          cmd,
		log:          log.WithComponent("transport"),
		connected:    true,
		onDisconnect: onDisconnect,
	}

	go p.reap()
	return p, nil
}

// reap waits for the child to exit and marks the transport dead.
func (p *PTY) reap() {
	err := p.cmd.Wait()
	if err != nil {
		p.log.Info("command exited: %v", err)
	}
	p.ReportDisconnect()
}

// Write sends bytes to the pseudo-terminal.
func (p *PTY) Write(b []byte) (int, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if !p.connected {
		return 0, fmt.Errorf("pty transport closed")
	}
	return p.f.Write(b)
}

// Read reads output from the pseudo-terminal. It blocks until data arrives
// or the PTY closes.
func (p *PTY) Read(b []byte) (int, error) {
	return p.f.Read(b)
}

// Flush is a no-op; PTY writes are unbuffered.
func (p *PTY) Flush() error { return nil }

// Connected reports whether the child is still attached.
func (p *PTY) Connected() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.connected
}

// ReportDisconnect tears the transport down and runs the disconnect hook.
func (p *PTY) ReportDisconnect() {
	p.mu.Lock()
	if !p.connected {
		p.mu.Unlock()
		return
	}
	p.connected = false
	hook := p.onDisconnect
	p.mu.Unlock()

	if err := p.f.Close(); err != nil {
		p.log.Debug("pty close: %v", err)
	}
	if hook != nil {
		hook()
	}
}

// Resize propagates a new terminal size to the pseudo-terminal.
func (p *PTY) Resize(rows, cols uint16) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if !p.connected {
		return fmt.Errorf("pty transport closed")
	}
	return pty.Setsize(p.f, &pty.Winsize{Rows: rows, Cols: cols})
}
