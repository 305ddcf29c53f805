// Package board defines core types and sentinel errors for the board
// subpackage of github.com/katalvlaran/sudoku.
package board

import "errors"

// Grid dimensions. Size is the side length, BlockSize the side of one
// 3×3 block, Cells the total cell count.
const (
	Size      = 9
	BlockSize = 3
	Cells     = Size * Size
)

// Empty is the cell value denoting "no digit placed".
const Empty uint8 = 0

// NeighborCount is the number of distinct cells sharing a row, column
// or block with any given cell (8 + 8 + 4).
const NeighborCount = 20

// Sentinel errors for board operations.
var (
	// ErrCoordOutOfRange indicates a row or column index outside 0..8.
	ErrCoordOutOfRange = errors.New("board: coordinate out of range")
	// ErrBadValue indicates a cell value outside 0..9.
	ErrBadValue = errors.New("board: cell value must be in 0..9")
)

// Grid is the raw 9×9 cell matrix. It is a value type: assignment
// copies all 81 cells, which is what snapshot and reset rely on.
type Grid [Size][Size]uint8

// Coord identifies a single cell by row and column, both in 0..8.
type Coord struct {
	Row, Col int
}

// InRange reports whether the coordinate lies on the grid.
func (c Coord) InRange() bool {
	return c.Row >= 0 && c.Row < Size && c.Col >= 0 && c.Col < Size
}

// Board holds the working grid plus the immutable snapshot taken at
// load time. The snapshot distinguishes givens from solver- or
// user-entered digits and backs Reset.
//
// Board is not safe for concurrent use; callers must not interleave a
// solve with edits (single-threaded contract of the whole library).
type Board struct {
	grid     Grid
	original Grid
}
