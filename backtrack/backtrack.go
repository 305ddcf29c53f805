package backtrack

import (
	"time"

	"github.com/katalvlaran/sudoku/board"
)

// Result captures the outcome of an instrumented solve.
type Result struct {
	// Solved reports whether a full valid completion was found.
	Solved bool
	// Nodes counts candidate placements attempted during the search.
	Nodes int
	// Elapsed is the wall-clock duration of the search.
	Elapsed time.Duration
}

// Solve completes b in place via depth-first search: locate the first
// empty cell in row-major order, try candidates 1..9 ascending, keep
// any placement that stays valid and recurse; undo the placement and
// try the next candidate when the recursion fails. Returns true once no
// empty cell remains, false when every candidate at the root is
// exhausted. A false return leaves the grid exactly as it was.
// Complexity: exponential worst case; no cap, no cancellation.
func Solve(b *board.Board) bool {
	w := &walker{b: b}
	return w.solve()
}

// TimedSolve runs Solve and reports its wall-clock duration alongside
// the success flag. Pure measurement; no algorithmic effect.
func TimedSolve(b *board.Board) (bool, time.Duration) {
	start := time.Now()
	ok := Solve(b)
	return ok, time.Since(start)
}

// SolveWithStats runs the same search as Solve, additionally counting
// attempted placements and measuring elapsed time.
func SolveWithStats(b *board.Board) Result {
	start := time.Now()
	w := &walker{b: b}
	ok := w.solve()
	return Result{Solved: ok, Nodes: w.nodes, Elapsed: time.Since(start)}
}

// walker encapsulates mutable search state.
type walker struct {
	b     *board.Board
	nodes int
}

// solve is one level of the recursion: claim the first empty cell,
// try each candidate, propagate success upward or roll back.
func (w *walker) solve() bool {
	cell, found := w.b.FindEmptyCell()
	if !found {
		return true // no empty cell left: solved
	}
	for v := uint8(1); v <= 9; v++ {
		w.nodes++
		if !w.b.IsValid(v, cell.Row, cell.Col) {
			continue
		}
		_ = w.b.Set(cell.Row, cell.Col, v)
		if w.solve() {
			return true
		}
		// undo before trying the next candidate
		_ = w.b.Set(cell.Row, cell.Col, board.Empty)
	}
	return false
}
