package selection

import (
	"fmt"
	"strings"
)

// Direction is a single-cell movement of the selection cursor.
type Direction uint8

const (
	// Up moves the cursor one row up.
	Up Direction = iota

	// Down moves the cursor one row down.
	Down

	// Left moves the cursor one column left.
	Left

	// Right moves the cursor one column right.
	Right
)

// String returns a human-readable name for the direction.
func (d Direction) String() string {
	switch d {
	case Up:
		return "Up"
	case Down:
		return "Down"
	case Left:
		return "Left"
	case Right:
		return "Right"
	default:
		return fmt.Sprintf("Direction(%d)", uint8(d))
	}
}

// Reader provides access to screen text for region extraction.
// Implemented by the emulation engine that owns the grid.
type Reader interface {
	// Line returns the text of one row between two columns, inclusive.
	Line(row, startCol, endCol int) string
}

// Area is the rectangular copy region over the terminal grid: an origin
// corner, pinned by the first confirm press, and the current cursor cell.
type Area struct {
	originRow int
	originCol int
	row       int
	col       int

	// selectingOrigin is true until the origin corner has been pinned.
	selectingOrigin bool
}

// NewArea creates an empty area positioned at the grid origin.
func NewArea() *Area {
	return &Area{selectingOrigin: true}
}

// Reset clears both corners and returns to the origin-selection stage.
func (a *Area) Reset() {
	*a = Area{selectingOrigin: true}
}

// MoveTo places the cursor at an absolute cell, typically to start selection
// at the current terminal cursor.
func (a *Area) MoveTo(row, col int) {
	a.row = row
	a.col = col
}

// Step moves the cursor one cell. Bounds are not enforced.
func (a *Area) Step(d Direction) {
	switch d {
	case Up:
		a.row--
	case Down:
		a.row++
	case Left:
		a.col--
	case Right:
		a.col++
	}
}

// Pos returns the current cursor cell.
func (a *Area) Pos() (row, col int) {
	return a.row, a.col
}

// SelectingOrigin returns true while the origin corner is not yet pinned.
func (a *Area) SelectingOrigin() bool {
	return a.selectingOrigin
}

// FinalizeOrigin pins the origin corner at the current cursor cell and
// transitions to extent selection.
func (a *Area) FinalizeOrigin() {
	a.originRow = a.row
	a.originCol = a.col
	a.selectingOrigin = false
}

// Bounds returns the normalized inclusive rectangle between origin and
// cursor. Only valid once the origin has been finalized.
func (a *Area) Bounds() (top, left, bottom, right int) {
	top, bottom = a.originRow, a.row
	if top > bottom {
		top, bottom = bottom, top
	}
	left, right = a.originCol, a.col
	if left > right {
		left, right = right, left
	}
	return top, left, bottom, right
}

// Copy extracts the marked region's text, rows joined with newlines.
func (a *Area) Copy(r Reader) string {
	top, left, bottom, right := a.Bounds()

	var sb strings.Builder
	for row := top; row <= bottom; row++ {
		if row > top {
			sb.WriteByte('\n')
		}
		sb.WriteString(r.Line(row, left, right))
	}
	return sb.String()
}
