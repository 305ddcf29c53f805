// Package puzzles loads difficulty-tiered Sudoku puzzles from plain
// text files and serves them by tier and index.
//
// What:
//
//   - A tier file holds one or more puzzles; each puzzle is nine lines
//     of nine space-separated digits 0–9 (0 = blank), and blank or
//     non-numeric lines separate puzzles.
//   - Load reads one file per tier (easy_puzzles.txt,
//     medium_puzzles.txt, hard_puzzles.txt by default) from a
//     directory; LoadFS does the same from any fs.FS.
//   - Puzzle(tier, index) hands out a grid copy for the game layer.
//
// Why:
//
//   - The loader is deliberately forgiving: a missing or unreadable
//     tier file yields an empty tier, and a malformed block is skipped,
//     so one bad file never takes down the whole puzzle set.
//   - Lookups are strict: a bad tier or index is an explicit error,
//     never a silent no-op.
//
// Errors:
//
//   - ErrUnknownTier: tier outside Easy/Medium/Hard.
//   - ErrPuzzleIndex: index outside the tier's loaded puzzles.
//   - ErrMalformedPuzzle: a block is not 9×9 digits (surfaced by the
//     parser; Load skips such blocks).
package puzzles
