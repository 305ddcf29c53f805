// Package board models the 9×9 Sudoku grid and its constraint queries,
// the leaf component every solver builds on.
//
// What:
//
//   - Grid is a value-type [9][9]uint8 matrix; 0 means "empty".
//   - Board pairs a working Grid with an immutable snapshot of the
//     puzzle as loaded, distinguishing givens from filled-in digits.
//   - Validity primitives answer "may value v go at (row,col)?" against
//     the current state, plus first-empty-cell lookup and fullness.
//   - Neighbors derives the 20 cells sharing a row, column or block.
//
// Why:
//
//   - Backtracking search: IsValid prunes candidates, FindEmptyCell
//     fixes the deterministic row-major cell order.
//   - Constraint propagation: Neighbors defines the arcs along which
//     domains are revised.
//   - Presentation: IsGiven is the one derived fact a renderer needs.
//
// Complexity:
//
//   - IsValid:       O(1) (27 cell reads).
//   - FindEmptyCell: O(81) worst case.
//   - Neighbors:     O(1) (fixed 20 results).
//   - Reset/Clone:   O(81) array copies.
//
// Errors:
//
//   - ErrCoordOutOfRange: a row or column index lies outside 0..8.
//   - ErrBadValue: a cell value lies outside 0..9.
//
// Note: IsSolved checks fullness only, not constraint correctness; use
// IsConsistent when a genuine win check is needed.
package board
