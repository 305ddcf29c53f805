// Package backtrack solves a Sudoku board by exhaustive depth-first
// search with constraint pruning.
//
// What:
//
//   - Solve fills every empty cell of a *board.Board in place, or
//     reports false when no completion exists.
//   - SolveWithStats additionally counts candidate placements tried.
//   - TimedSolve wraps Solve with wall-clock measurement.
//
// Why:
//
//   - Completeness: the search is exhaustive, so it finds a solution
//     whenever one exists.
//   - Determinism: first-empty-cell (row-major) plus ascending
//     candidates 1..9 yields the same solution on every run.
//
// Complexity:
//
//	Exponential in the number of empty cells in the worst case; there
//	is deliberately no iteration cap, timeout or cancellation: hard
//	puzzles run as long as they need, and the caller reports elapsed
//	time rather than imposing a limit.
//
// Guarantees:
//
//   - On success the grid is fully filled and row/column/block valid.
//   - On failure every cell touched by the search is reset to empty,
//     leaving the grid exactly as it was before the call.
package backtrack
