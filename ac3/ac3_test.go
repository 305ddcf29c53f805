package ac3_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/sudoku/ac3"
	"github.com/katalvlaran/sudoku/backtrack"
	"github.com/katalvlaran/sudoku/board"
)

// easyGrid is a classic easy opening with a unique solution.
func easyGrid() board.Grid {
	return board.Grid{
		{5, 3, 0, 0, 7, 0, 0, 0, 0},
		{6, 0, 0, 1, 9, 5, 0, 0, 0},
		{0, 9, 8, 0, 0, 0, 0, 6, 0},
		{8, 0, 0, 0, 6, 0, 0, 0, 3},
		{4, 0, 0, 8, 0, 3, 0, 0, 1},
		{7, 0, 0, 0, 2, 0, 0, 0, 6},
		{0, 6, 0, 0, 0, 0, 2, 8, 0},
		{0, 0, 0, 4, 1, 9, 0, 0, 5},
		{0, 0, 0, 0, 8, 0, 0, 7, 9},
	}
}

// solvedGrid is the unique completion of easyGrid.
func solvedGrid() board.Grid {
	return board.Grid{
		{5, 3, 4, 6, 7, 8, 9, 1, 2},
		{6, 7, 2, 1, 9, 5, 3, 4, 8},
		{1, 9, 8, 3, 4, 2, 5, 6, 7},
		{8, 5, 9, 7, 6, 1, 4, 2, 3},
		{4, 2, 6, 8, 5, 3, 7, 9, 1},
		{7, 1, 3, 9, 2, 4, 8, 5, 6},
		{9, 6, 1, 5, 3, 7, 2, 8, 4},
		{2, 8, 7, 4, 1, 9, 6, 3, 5},
		{3, 4, 5, 2, 8, 6, 1, 7, 9},
	}
}

// singlesGrid blanks the main diagonal of solvedGrid: every blank cell
// sees eight digits in its own row, so each initial domain is already a
// singleton and propagation alone completes the grid.
func singlesGrid() board.Grid {
	g := solvedGrid()
	for i := 0; i < board.Size; i++ {
		g[i][i] = 0
	}
	return g
}

// rectangleGrid blanks the deadly rectangle (0,3),(0,4),(3,3),(3,4) of
// solvedGrid; each blank keeps the two candidates {6,7}, so
// propagation cannot fill any of them and the fallback must finish.
func rectangleGrid() board.Grid {
	g := solvedGrid()
	g[0][3], g[0][4], g[3][3], g[3][4] = 0, 0, 0, 0
	return g
}

// wipeoutGrid forces a domain wipeout: the two blanks of row 0 both
// reduce to the lone candidate 8, so the first revision empties the
// second blank's domain.
func wipeoutGrid() board.Grid {
	var g board.Grid
	g[0] = [9]uint8{0, 0, 1, 2, 3, 4, 5, 6, 7}
	g[7][1] = 9
	g[8][0] = 9
	return g
}

//----------------------------------------------------------------------------//
// Domain initialization
//----------------------------------------------------------------------------//

// TestDomainInit_EmptyGrid verifies every cell starts with all nine
// candidates on an empty board.
func TestDomainInit_EmptyGrid(t *testing.T) {
	b, err := board.NewBoard(board.Grid{})
	require.NoError(t, err)

	for r := 0; r < board.Size; r++ {
		for c := 0; c < board.Size; c++ {
			assert.Equal(t, 9, ac3.DomainCandidateCount(b, r, c), "cell (%d,%d)", r, c)
		}
	}
}

// TestDomainInit_SingleGiven verifies a lone given removes exactly its
// value from each of its 20 neighbors and nothing else.
func TestDomainInit_SingleGiven(t *testing.T) {
	var g board.Grid
	g[4][4] = 5
	b, err := board.NewBoard(g)
	require.NoError(t, err)

	assert.Equal(t, 1, ac3.DomainCandidateCount(b, 4, 4))
	assert.True(t, ac3.DomainHasCandidate(b, 4, 4, 5))

	neighbors := make(map[board.Coord]bool, board.NeighborCount)
	for _, n := range board.Neighbors(4, 4) {
		neighbors[n] = true
	}
	for r := 0; r < board.Size; r++ {
		for c := 0; c < board.Size; c++ {
			if r == 4 && c == 4 {
				continue
			}
			if neighbors[board.Coord{Row: r, Col: c}] {
				assert.Equal(t, 8, ac3.DomainCandidateCount(b, r, c), "neighbor (%d,%d)", r, c)
				assert.False(t, ac3.DomainHasCandidate(b, r, c, 5), "neighbor (%d,%d) keeps 5", r, c)
			} else {
				assert.Equal(t, 9, ac3.DomainCandidateCount(b, r, c), "non-neighbor (%d,%d)", r, c)
			}
		}
	}
}

//----------------------------------------------------------------------------//
// Propagation
//----------------------------------------------------------------------------//

// TestPropagate_SinglesOnly verifies that a puzzle whose blanks all
// collapse to singletons is completed entirely by propagation.
func TestPropagate_SinglesOnly(t *testing.T) {
	b, err := board.NewBoard(singlesGrid())
	require.NoError(t, err)

	filled, err := ac3.Propagate(b)
	require.NoError(t, err)
	assert.Equal(t, 9, filled, "all nine blanks filled without search")
	assert.True(t, b.IsSolved())
	assert.Equal(t, solvedGrid(), b.Grid())
}

// TestPropagate_NoSingles verifies propagation leaves an ambiguous grid
// untouched rather than guessing.
func TestPropagate_NoSingles(t *testing.T) {
	b, err := board.NewBoard(rectangleGrid())
	require.NoError(t, err)

	filled, err := ac3.Propagate(b)
	require.NoError(t, err)
	assert.Zero(t, filled, "two-candidate domains must not be applied")
	assert.Equal(t, rectangleGrid(), b.Grid())
}

// TestPropagate_Wipeout verifies the infeasibility signal: the grid is
// not modified and ErrDomainWipeout surfaces.
func TestPropagate_Wipeout(t *testing.T) {
	b, err := board.NewBoard(wipeoutGrid())
	require.NoError(t, err)

	_, err = ac3.Propagate(b)
	assert.ErrorIs(t, err, ac3.ErrDomainWipeout)
	assert.Equal(t, wipeoutGrid(), b.Grid(), "wipeout must leave the grid untouched")
}

//----------------------------------------------------------------------------//
// Solve
//----------------------------------------------------------------------------//

// TestSolve_PropagationOnly succeeds without fallback when singles
// suffice.
func TestSolve_PropagationOnly(t *testing.T) {
	b, err := board.NewBoard(singlesGrid())
	require.NoError(t, err)

	assert.True(t, ac3.Solve(b, ac3.WithoutFallback()))
	assert.Equal(t, solvedGrid(), b.Grid())
}

// TestSolve_NeedsFallback reports failure without the fallback and
// success with it on an ambiguous grid.
func TestSolve_NeedsFallback(t *testing.T) {
	b1, err := board.NewBoard(rectangleGrid())
	require.NoError(t, err)
	assert.False(t, ac3.Solve(b1, ac3.WithoutFallback()))

	b2, err := board.NewBoard(rectangleGrid())
	require.NoError(t, err)
	require.True(t, ac3.Solve(b2))
	assert.True(t, b2.IsSolved())
	assert.True(t, b2.IsConsistent())
}

// TestSolve_ConvergesWithBacktracking verifies both algorithms reach
// the identical final grid on a unique-solution puzzle.
func TestSolve_ConvergesWithBacktracking(t *testing.T) {
	b1, err := board.NewBoard(easyGrid())
	require.NoError(t, err)
	b2, err := board.NewBoard(easyGrid())
	require.NoError(t, err)

	require.True(t, ac3.Solve(b1))
	require.True(t, backtrack.Solve(b2))
	assert.Equal(t, b2.Grid(), b1.Grid())
	assert.Equal(t, solvedGrid(), b1.Grid())
}

// TestSolve_Wipeout reports failure and skips the fallback entirely.
func TestSolve_Wipeout(t *testing.T) {
	b, err := board.NewBoard(wipeoutGrid())
	require.NoError(t, err)

	assert.False(t, ac3.Solve(b))
	assert.Equal(t, wipeoutGrid(), b.Grid(), "no fallback may run after a wipeout")
}

// TestTimedSolve checks the wrapper changes nothing about the result.
func TestTimedSolve(t *testing.T) {
	b, err := board.NewBoard(easyGrid())
	require.NoError(t, err)

	ok, elapsed := ac3.TimedSolve(b)
	assert.True(t, ok)
	assert.GreaterOrEqual(t, elapsed.Nanoseconds(), int64(0))
	assert.Equal(t, solvedGrid(), b.Grid())
}
