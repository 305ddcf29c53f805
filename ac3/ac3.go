package ac3

import (
	"time"

	"github.com/katalvlaran/sudoku/backtrack"
	"github.com/katalvlaran/sudoku/board"
)

// Solve reduces b's candidate domains by propagation, writes every
// collapsed domain into the grid, and, unless WithoutFallback is
// supplied, finishes any residual ambiguity with backtrack.Solve.
//
// Returns false when propagation hits a domain wipeout (the fallback is
// not attempted; the grid is left untouched), or when the fallback
// itself finds no solution. Returns true once the grid is fully filled.
func Solve(b *board.Board, opts ...Option) bool {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	if _, err := Propagate(b); err != nil {
		return false
	}
	if b.IsSolved() {
		return true
	}
	if !o.Fallback {
		return false
	}
	return backtrack.Solve(b)
}

// TimedSolve runs Solve and reports its wall-clock duration alongside
// the success flag. Pure measurement; no algorithmic effect.
func TimedSolve(b *board.Board, opts ...Option) (bool, time.Duration) {
	start := time.Now()
	ok := Solve(b, opts...)
	return ok, time.Since(start)
}

// Propagate runs domain initialization, the worklist revision loop, and
// the singleton write-back on b. It returns the number of cells it
// filled in, or ErrDomainWipeout when a domain empties mid-loop, in
// which case the grid is not modified at all.
func Propagate(b *board.Board) (int, error) {
	w := newReviser(b)
	if err := w.loop(); err != nil {
		return 0, err
	}
	return w.apply(), nil
}

// reviser encapsulates mutable propagation state: the domain table and
// the FIFO worklist of cells awaiting revision.
type reviser struct {
	b     *board.Board
	dom   domains
	queue []board.Coord
}

// newReviser initializes every cell's domain and seeds the queue with
// all currently-empty cells.
//
// A filled cell's domain is the singleton of its value; an empty cell
// starts with all nine digits minus every value present among its 20
// neighbors.
func newReviser(b *board.Board) *reviser {
	w := &reviser{b: b, queue: make([]board.Coord, 0, board.Cells)}
	grid := b.Grid()
	for r := 0; r < board.Size; r++ {
		for c := 0; c < board.Size; c++ {
			if v := grid[r][c]; v != board.Empty {
				w.dom[r][c] = singleton(v)
				continue
			}
			d := fullDomain
			for _, n := range board.Neighbors(r, c) {
				if v := grid[n.Row][n.Col]; v != board.Empty {
					d = d.remove(v)
				}
			}
			w.dom[r][c] = d
			w.queue = append(w.queue, board.Coord{Row: r, Col: c})
		}
	}
	return w
}

// loop drains the worklist. For each dequeued cell it revises every
// neighbor in turn; a neighbor whose domain actually shrank is
// re-enqueued so downstream consequences propagate. A neighbor domain
// emptying aborts with ErrDomainWipeout.
//
// Termination: every revision strictly shrinks a domain, so total
// revisions are bounded regardless of requeueing.
func (w *reviser) loop() error {
	for len(w.queue) > 0 {
		cell := w.dequeue()
		for _, n := range board.Neighbors(cell.Row, cell.Col) {
			if !w.revise(cell, n) {
				continue
			}
			if w.dom[n.Row][n.Col].empty() {
				return ErrDomainWipeout
			}
			w.queue = append(w.queue, n)
		}
	}
	return nil
}

// dequeue pops the first queued coordinate.
func (w *reviser) dequeue() board.Coord {
	cell := w.queue[0]
	w.queue = w.queue[1:]
	return cell
}

// revise shrinks the neighbor's domain against the dequeued cell's:
// only when the cell's domain has collapsed to exactly one value, and
// that value is still a candidate of the neighbor, is it removed from
// the neighbor. Reports whether a removal happened.
//
// The revision is one-directional on purpose; see the package comment.
func (w *reviser) revise(cell, neighbor board.Coord) bool {
	v, ok := w.dom[cell.Row][cell.Col].single()
	if !ok {
		return false
	}
	nd := w.dom[neighbor.Row][neighbor.Col]
	if !nd.has(v) {
		return false
	}
	w.dom[neighbor.Row][neighbor.Col] = nd.remove(v)
	return true
}

// apply writes every singleton domain into the grid and returns how
// many previously-empty cells were filled.
func (w *reviser) apply() int {
	filled := 0
	grid := w.b.Grid()
	for r := 0; r < board.Size; r++ {
		for c := 0; c < board.Size; c++ {
			v, ok := w.dom[r][c].single()
			if !ok {
				continue
			}
			if grid[r][c] == board.Empty {
				_ = w.b.Set(r, c, v)
				filled++
			}
		}
	}
	return filled
}
