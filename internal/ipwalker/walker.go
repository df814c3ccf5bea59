// Package ipwalker implements the Grok instruction pointer: a position and
// direction that advance one grid cell per step, wrapping toroidally at row
// and column boundaries. It mirrors the bookkeeping style of vslc's lexer
// (pos/line advanced one rune at a time), generalized from a 1D character
// stream to a 2D grid with four cardinal directions.
package ipwalker

import "grok/internal/grid"

// Direction is one of the four cardinal step vectors a Grok IP can hold.
type Direction struct {
	DCol, DRow int
}

// The four directions an IP may travel, named for the instructions that
// select them (h j k l, vi-style).
var (
	Left  = Direction{DCol: -1, DRow: 0}
	Down  = Direction{DCol: 0, DRow: 1}
	Up    = Direction{DCol: 0, DRow: -1}
	Right = Direction{DCol: 1, DRow: 0}
)

// Walker tracks IP position and direction over a Grid.
type Walker struct {
	g          *grid.Grid
	col, row   int
	dir        Direction
}

// New returns a Walker positioned one step before the grid's origin, moving
// right, so that the first call to Step lands on (0, 0) — matching the
// source interpreter's initial position (-1, 0) and initial direction
// (1, 0).
func New(g *grid.Grid) *Walker {
	return &Walker{g: g, col: -1, row: 0, dir: Right}
}

// Position returns the walker's current (col, row).
func (w *Walker) Position() (col, row int) {
	return w.col, w.row
}

// Direction returns the walker's current direction.
func (w *Walker) Direction() Direction {
	return w.dir
}

// SetDirection changes the direction used by subsequent Step calls. The
// Walker never chooses a direction itself; that is the Dispatcher's job.
func (w *Walker) SetDirection(d Direction) {
	w.dir = d
}

// Step advances the walker exactly one cell in its current direction,
// wraps at row/column boundaries, and returns the code point at the new
// position.
//
// Row wrap happens first, using the grid's global MaxRow. Column wrap uses
// the *new* row's MaxCol, and applies when moving rightward past the end or
// whenever col is negative (moving leftward past the start, or a vertical
// move from the initial column -1). Otherwise vertical motion never adjusts
// col, even if the destination row is shorter than the current column
// (spec: vertical motion does not clamp column; only a subsequent rightward
// step wraps it).
func (w *Walker) Step() int {
	w.col += w.dir.DCol
	w.row += w.dir.DRow

	maxRow := w.g.MaxRow()
	if w.row > maxRow {
		w.row = 0
	} else if w.row < 0 {
		w.row = maxRow
	}

	maxCol := w.g.MaxCol(w.row)
	if w.dir.DCol == 1 && w.col > maxCol {
		w.col = 0
	} else if w.col < 0 {
		w.col = maxCol
	}

	return w.g.Cell(w.row, w.col)
}
