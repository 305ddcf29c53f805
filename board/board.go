package board

import (
	"fmt"
	"strings"
)

// NewBoard constructs a Board from the given grid, recording values as
// both the working state and the immutable original snapshot. The input
// is copied; the caller keeps ownership of its array.
// Returns ErrBadValue if any cell lies outside 0..9.
// Complexity: O(81).
func NewBoard(values Grid) (*Board, error) {
	for r := 0; r < Size; r++ {
		for c := 0; c < Size; c++ {
			if values[r][c] > 9 {
				return nil, fmt.Errorf("%w: got %d at (%d,%d)", ErrBadValue, values[r][c], r, c)
			}
		}
	}
	return &Board{grid: values, original: values}, nil
}

// Value returns the digit at (row,col), 0 meaning empty.
// Returns ErrCoordOutOfRange for indices outside 0..8.
func (b *Board) Value(row, col int) (uint8, error) {
	if !(Coord{row, col}).InRange() {
		return 0, fmt.Errorf("%w: (%d,%d)", ErrCoordOutOfRange, row, col)
	}
	return b.grid[row][col], nil
}

// Set writes v into (row,col). It does not enforce row/column/block
// uniqueness: solvers place transiently invalid values during search.
// Returns ErrCoordOutOfRange or ErrBadValue for invalid input.
func (b *Board) Set(row, col int, v uint8) error {
	if !(Coord{row, col}).InRange() {
		return fmt.Errorf("%w: (%d,%d)", ErrCoordOutOfRange, row, col)
	}
	if v > 9 {
		return fmt.Errorf("%w: got %d", ErrBadValue, v)
	}
	b.grid[row][col] = v
	return nil
}

// Grid returns a copy of the current working grid.
// Complexity: O(81).
func (b *Board) Grid() Grid {
	return b.grid
}

// Original returns a copy of the load-time snapshot.
// Complexity: O(81).
func (b *Board) Original() Grid {
	return b.original
}

// IsValid reports whether v may be placed at (row,col) without clashing
// with any value already in the same row, column or 3×3 block. The test
// runs against the current grid; the placement itself is not made.
// Out-of-range coordinates or values report false.
// Complexity: O(1), 27 cell reads.
func (b *Board) IsValid(v uint8, row, col int) bool {
	if !(Coord{row, col}).InRange() || v < 1 || v > 9 {
		return false
	}
	for i := 0; i < Size; i++ {
		if b.grid[row][i] == v || b.grid[i][col] == v {
			return false
		}
	}
	br, bc := row/BlockSize*BlockSize, col/BlockSize*BlockSize
	for r := br; r < br+BlockSize; r++ {
		for c := bc; c < bc+BlockSize; c++ {
			if b.grid[r][c] == v {
				return false
			}
		}
	}
	return true
}

// FindEmptyCell returns the first empty cell in row-major order
// (top-left first) and true, or a zero Coord and false when the grid is
// full. The fixed ordering is what makes backtracking deterministic.
// Complexity: O(81) worst case.
func (b *Board) FindEmptyCell() (Coord, bool) {
	for r := 0; r < Size; r++ {
		for c := 0; c < Size; c++ {
			if b.grid[r][c] == Empty {
				return Coord{Row: r, Col: c}, true
			}
		}
	}
	return Coord{}, false
}

// IsSolved reports whether every cell holds a digit. It checks fullness
// only; a filled but conflicting grid still reports true. Callers that
// need a genuine win check should pair it with IsConsistent.
// Complexity: O(81).
func (b *Board) IsSolved() bool {
	_, found := b.FindEmptyCell()
	return !found
}

// IsConsistent reports whether no non-zero digit repeats within any
// row, column or block. Empty cells are ignored, so a partially filled
// grid can be consistent.
// Complexity: O(81) with bitmask bookkeeping.
func (b *Board) IsConsistent() bool {
	var rows, cols, blocks [Size]uint16
	for r := 0; r < Size; r++ {
		for c := 0; c < Size; c++ {
			v := b.grid[r][c]
			if v == Empty {
				continue
			}
			bit := uint16(1) << v
			bi := r / BlockSize * BlockSize
			bi += c / BlockSize
			if rows[r]&bit != 0 || cols[c]&bit != 0 || blocks[bi]&bit != 0 {
				return false
			}
			rows[r] |= bit
			cols[c] |= bit
			blocks[bi] |= bit
		}
	}
	return true
}

// IsGiven reports whether the cell held a digit in the original puzzle,
// i.e. whether a renderer should draw it as a fixed given rather than a
// solver- or user-filled value. Out-of-range coordinates report false.
func (b *Board) IsGiven(row, col int) bool {
	if !(Coord{row, col}).InRange() {
		return false
	}
	return b.original[row][col] != Empty
}

// Reset restores the working grid to the load-time snapshot,
// byte-for-byte. Givens are untouched; everything else reverts to
// empty.
// Complexity: O(81).
func (b *Board) Reset() {
	b.grid = b.original
}

// Clone returns an independent copy of the Board, snapshot included.
func (b *Board) Clone() *Board {
	cp := *b
	return &cp
}

// Neighbors returns the 20 distinct cells sharing a row, column or
// block with (row,col), excluding the cell itself. Order is fixed: the
// 8 row peers, the 8 column peers, then the 4 remaining block peers.
// Out-of-range coordinates return nil.
// Complexity: O(1).
func Neighbors(row, col int) []Coord {
	if !(Coord{row, col}).InRange() {
		return nil
	}
	out := make([]Coord, 0, NeighborCount)
	for i := 0; i < Size; i++ {
		if i != col {
			out = append(out, Coord{Row: row, Col: i})
		}
	}
	for i := 0; i < Size; i++ {
		if i != row {
			out = append(out, Coord{Row: i, Col: col})
		}
	}
	br, bc := row/BlockSize*BlockSize, col/BlockSize*BlockSize
	for r := br; r < br+BlockSize; r++ {
		for c := bc; c < bc+BlockSize; c++ {
			if r != row && c != col {
				out = append(out, Coord{Row: r, Col: c})
			}
		}
	}
	return out
}

// String renders the grid with block separators, empty cells as dots.
// Intended for debugging and CLI output.
func (b *Board) String() string {
	var sb strings.Builder
	for r := 0; r < Size; r++ {
		if r > 0 && r%BlockSize == 0 {
			sb.WriteString("------+-------+------\n")
		}
		for c := 0; c < Size; c++ {
			if c > 0 && c%BlockSize == 0 {
				sb.WriteString("| ")
			}
			if v := b.grid[r][c]; v == Empty {
				sb.WriteString(". ")
			} else {
				fmt.Fprintf(&sb, "%d ", v)
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
