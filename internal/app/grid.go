package app

import (
	"sync"
)

// maxGridRows bounds the scrollback kept for display and selection.
const maxGridRows = 2000

// grid is a plain-text view of shell output. It is not a full terminal
// emulation: escape sequences are skipped and only newline, carriage return
// and backspace affect layout. That is enough to display line-oriented
// programs and to serve text extraction for the selection region.
type grid struct {
	mu   sync.Mutex
	rows []string
	cur  []rune

	// inEscape tracks an escape sequence being skipped.
	inEscape bool
	// inCSI tracks a control sequence, terminated by a final byte.
	inCSI bool
}

func newGrid() *grid {
	return &grid{rows: make([]string, 0, 64)}
}

// Write consumes shell output. Implements io.Writer.
func (g *grid) Write(p []byte) (int, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	for _, b := range p {
		g.consume(rune(b))
	}
	return len(p), nil
}

func (g *grid) consume(r rune) {
	if g.inCSI {
		if r >= 0x40 && r <= 0x7E {
			g.inCSI = false
		}
		return
	}
	if g.inEscape {
		g.inEscape = false
		if r == '[' {
			g.inCSI = true
		}
		return
	}

	switch r {
	case 0x1B:
		g.inEscape = true
	case '\n':
		g.rows = append(g.rows, string(g.cur))
		g.cur = g.cur[:0]
		if len(g.rows) > maxGridRows {
			g.rows = g.rows[len(g.rows)-maxGridRows:]
		}
	case '\r':
		g.cur = g.cur[:0]
	case 0x08:
		if len(g.cur) > 0 {
			g.cur = g.cur[:len(g.cur)-1]
		}
	case 0x07:
		// bell, ignored
	default:
		if r >= 0x20 {
			g.cur = append(g.cur, r)
		}
	}
}

// Rows returns a snapshot of all rows including the line being written.
func (g *grid) Rows() []string {
	g.mu.Lock()
	defer g.mu.Unlock()

	out := make([]string, 0, len(g.rows)+1)
	out = append(out, g.rows...)
	if len(g.cur) > 0 {
		out = append(out, string(g.cur))
	}
	return out
}

// Line returns row text between two columns inclusive, for selection
// extraction.
func (g *grid) Line(row, startCol, endCol int) string {
	rows := g.Rows()
	if row < 0 || row >= len(rows) {
		return ""
	}
	line := []rune(rows[row])
	if startCol < 0 {
		startCol = 0
	}
	if endCol >= len(line) {
		endCol = len(line) - 1
	}
	if startCol > endCol {
		return ""
	}
	return string(line[startCol : endCol+1])
}
