package board_test

import (
	"testing"

	"github.com/katalvlaran/sudoku/board"
)

// BenchmarkIsValid measures the 27-read constraint query on a
// half-filled grid.
func BenchmarkIsValid(b *testing.B) {
	bd, _ := board.NewBoard(easyGrid())
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = bd.IsValid(4, 0, 2)
	}
}

// BenchmarkFindEmptyCell measures the row-major scan on a nearly full
// grid (worst case).
func BenchmarkFindEmptyCell(b *testing.B) {
	g := solvedGrid()
	g[8][8] = 0
	bd, _ := board.NewBoard(g)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = bd.FindEmptyCell()
	}
}

// BenchmarkNeighbors measures derivation of the 20-cell relation.
func BenchmarkNeighbors(b *testing.B) {
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = board.Neighbors(4, 4)
	}
}
