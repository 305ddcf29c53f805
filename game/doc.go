// Package game is the control surface a front-end talks to: it owns
// the current board, loads puzzles from a source, dispatches solves and
// restores the original state.
//
// What:
//
//   - LoadPuzzle(tier, index) replaces the board (and its snapshot)
//     wholesale from the puzzle source.
//   - Solve(algorithm) runs Backtracking or ArcConsistency3 on the
//     board and reports (success, elapsed time).
//   - Reset restores the board to the loaded puzzle, exactly.
//   - Board exposes the current grid plus the per-cell given flag for
//     rendering.
//
// Why:
//
//   - A GUI, web handler or CLI needs exactly these operations and
//     nothing algorithm-specific; the solvers stay interchangeable
//     behind one enum.
//
// Concurrency:
//
//	Everything here is single-threaded and synchronous. A solve runs to
//	completion on the calling goroutine, unbounded for pathological
//	puzzles, and the host must not interleave solves with edits.
//
// Errors:
//
//   - ErrUnknownAlgorithm: Solve called with an algorithm outside the
//     enum.
//   - puzzles.ErrUnknownTier / puzzles.ErrPuzzleIndex: LoadPuzzle with
//     an out-of-range tier or index; the board is left unchanged.
package game
