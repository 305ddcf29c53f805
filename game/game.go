package game

import (
	"time"

	"github.com/katalvlaran/sudoku/ac3"
	"github.com/katalvlaran/sudoku/backtrack"
	"github.com/katalvlaran/sudoku/board"
	"github.com/katalvlaran/sudoku/puzzles"
)

// Game owns the current board and the puzzle source. Not safe for
// concurrent use; see the package comment.
type Game struct {
	b   *board.Board
	src *puzzles.Source
}

// New returns a Game over the given source, starting from an empty
// board. A nil source behaves like an empty one.
func New(src *puzzles.Source) *Game {
	if src == nil {
		src = &puzzles.Source{}
	}
	b, _ := board.NewBoard(board.Grid{})
	return &Game{b: b, src: src}
}

// LoadPuzzle replaces the board and its snapshot with the puzzle at
// (tier, index). On ErrUnknownTier or ErrPuzzleIndex the current board
// is left untouched.
func (g *Game) LoadPuzzle(t puzzles.Tier, index int) error {
	grid, err := g.src.Puzzle(t, index)
	if err != nil {
		return err
	}
	b, err := board.NewBoard(grid)
	if err != nil {
		return err
	}
	g.b = b
	return nil
}

// Solve runs the selected algorithm on the current board and reports
// whether it produced a full, constraint-valid grid, along with the
// wall-clock time the solver took. The board keeps whatever state the
// solver left; use Reset to discard it.
//
// Success here re-validates constraints on top of fullness, so a grid
// filled by hand with conflicts never reports a win.
func (g *Game) Solve(alg Algorithm) (bool, time.Duration, error) {
	var (
		ok      bool
		elapsed time.Duration
	)
	switch alg {
	case Backtracking:
		ok, elapsed = backtrack.TimedSolve(g.b)
	case ArcConsistency3:
		ok, elapsed = ac3.TimedSolve(g.b)
	default:
		return false, 0, ErrUnknownAlgorithm
	}
	return ok && g.b.IsConsistent(), elapsed, nil
}

// Reset restores the board to the loaded puzzle, byte-for-byte.
func (g *Game) Reset() {
	g.b.Reset()
}

// Board returns the current board for rendering and editing. The
// per-cell given flag comes from board.IsGiven.
func (g *Game) Board() *board.Board {
	return g.b
}

// Source returns the puzzle source the game was built over.
func (g *Game) Source() *puzzles.Source {
	return g.src
}
