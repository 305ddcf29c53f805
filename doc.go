// Package sudoku is an in-memory playground for loading, playing and
// solving classic 9×9 Sudoku puzzles — from grid primitives to
// constraint-propagation search.
//
// 🚀 What is sudoku?
//
//	A small, focused library that brings together:
//		• Grid primitives: a 9×9 board with validity queries and snapshots
//		• Backtracking: deterministic depth-first search with try/undo
//		• Arc consistency: directional AC-3 domain propagation with
//		  backtracking fallback
//		• Puzzle sources: plain-text puzzle files grouped by difficulty
//		• A game façade: load / solve / reset with timing, ready for any
//		  front-end
//
// ✨ Why choose sudoku?
//
//   - Beginner-friendly – minimal API, clear, intuitive naming
//   - Deterministic – fixed cell ordering, same solution every run
//   - Pure Go – no cgo, no hidden deps
//   - Measured – every solve reports its elapsed time
//
// Under the hood, everything is organized under five subpackages:
//
//	board/     — the Grid, Board, validity checks & snapshot/reset
//	backtrack/ — exhaustive depth-first search with constraint pruning
//	ac3/       — bitmask domains, worklist propagation, fallback search
//	puzzles/   — difficulty-tiered puzzle files, forgiving loader
//	game/      — the control surface a UI or CLI talks to
//
// Quick ASCII example:
//
//	5 3 . | . 7 . | . . .
//	6 . . | 1 9 5 | . . .
//	. 9 8 | . . . | . 6 .
//
//	a classic "easy" opening; backtrack.Solve completes it in well under
//	a millisecond.
//
// Dive into the per-package docs for the algorithms, their guarantees,
// and worked examples.
//
//	go get github.com/katalvlaran/sudoku
package sudoku
