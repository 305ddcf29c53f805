package ac3

import "github.com/katalvlaran/sudoku/board"

// White-box bridge: expose the initial domain table to external tests
// without widening the production API.

// DomainCandidateCount returns the number of initial candidates at
// (row,col) for b.
func DomainCandidateCount(b *board.Board, row, col int) int {
	return newReviser(b).dom[row][col].count()
}

// DomainHasCandidate reports whether v is an initial candidate at
// (row,col) for b.
func DomainHasCandidate(b *board.Board, row, col int, v uint8) bool {
	return newReviser(b).dom[row][col].has(v)
}
