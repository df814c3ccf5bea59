package ipwalker

import (
	"testing"

	"github.com/stretchr/testify/require"

	"grok/internal/grid"
)

func TestFirstStepLandsOnOrigin(t *testing.T) {
	w := New(grid.Load("q"))
	w.Step()
	col, row := w.Position()
	require.Equal(t, 0, col)
	require.Equal(t, 0, row)
}

func TestRightwardWrapUsesRowMaxCol(t *testing.T) {
	w := New(grid.Load("ab"))
	w.Step() // (0,0)
	w.Step() // (1,0)
	w.Step() // wraps to (0,0)
	col, row := w.Position()
	require.Equal(t, 0, col)
	require.Equal(t, 0, row)
}

func TestLeftwardWrapLandsOnRowMaxCol(t *testing.T) {
	w := New(grid.Load("abc"))
	w.SetDirection(Left)
	w.Step() // from (-1,0) moving left wraps to maxCol
	col, row := w.Position()
	require.Equal(t, 2, col)
	require.Equal(t, 0, row)
}

func TestUpwardWrapFromInitialColumn(t *testing.T) {
	// Before the first Step, col is -1 (spec.md §3 initial position). A
	// vertical move leaves col unchanged by itself, but the still-negative
	// col then wraps to the new row's max column (spec.md §4.3 step 3).
	w := New(grid.Load("abc\nde\nfgh"))
	w.SetDirection(Up)
	w.Step()
	col, row := w.Position()
	require.Equal(t, 2, row)
	require.Equal(t, 2, col)
}

func TestVerticalMotionDoesNotClampColumn(t *testing.T) {
	w := New(grid.Load("abc\nd"))
	w.Step() // (0,0) on row 0
	w.Step() // (1,0)
	w.SetDirection(Down)
	w.Step() // (1,1): row 1 only has col 0, but col stays 1
	col, row := w.Position()
	require.Equal(t, 1, col)
	require.Equal(t, 1, row)
	require.Equal(t, 0, w.g.Cell(row, col), "cell beyond row end reads as 0")
}
