// Package grid holds the Grok program's 2D character store. A Grid is built
// once from source text and never mutated afterward: Grok has no
// self-modifying-code instruction.
package grid

import "strings"

// ----------------------------
// ----- Type definitions -----
// ----------------------------

// Grid is a sparse, ragged 2D store of code points read from Grok source.
// Row 0 is the top line of the program; column 0 is the leftmost cell of a
// row. Unset cells (including any cell beyond a row's own length) read as 0,
// the same value stored for a literal space.
type Grid struct {
	rows [][]int // rows[r][c] is the code point at (r, c); 0 means space/unset.
}

// ---------------------
// ----- functions -----
// ---------------------

// Load builds a Grid from Grok source text. A leading "#!" line is dropped.
// Lines are split on '\n'; within a line each rune becomes one cell, a space
// becomes 0 and any other rune becomes its code point. Rows are kept ragged:
// no row is padded to match another row's length.
func Load(source string) *Grid {
	lines := strings.Split(source, "\n")
	if len(lines) > 0 && strings.HasPrefix(lines[0], "#!") {
		lines = lines[1:]
	}

	g := &Grid{rows: make([][]int, len(lines))}
	for r, line := range lines {
		cells := make([]int, 0, len(line))
		for _, ch := range line {
			if ch == ' ' {
				cells = append(cells, 0)
			} else {
				cells = append(cells, int(ch))
			}
		}
		g.rows[r] = cells
	}
	if len(g.rows) == 0 {
		// Guarantee at least one (empty) row so MaxRow/MaxCol stay well
		// defined for an empty program.
		g.rows = [][]int{{}}
	}
	return g
}

// Cell returns the code point at (row, col), or 0 if the position is unset
// or beyond the row's own length.
func (g *Grid) Cell(row, col int) int {
	if row < 0 || row >= len(g.rows) {
		return 0
	}
	cells := g.rows[row]
	if col < 0 || col >= len(cells) {
		return 0
	}
	return cells[col]
}

// MaxRow returns the index of the last row in the grid.
func (g *Grid) MaxRow() int {
	return len(g.rows) - 1
}

// MaxCol returns the index of the last column of the given row. Rows are
// ragged, so this is per-row; a row with no characters has MaxCol 0, since a
// one-cell-wide empty row is still a valid wrap target.
func (g *Grid) MaxCol(row int) int {
	if row < 0 || row >= len(g.rows) {
		return 0
	}
	if len(g.rows[row]) == 0 {
		return 0
	}
	return len(g.rows[row]) - 1
}
