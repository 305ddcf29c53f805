// Command sudoku loads a puzzle from a tier file and solves it at the
// terminal, printing the grid before and after along with the elapsed
// time, the same load / solve / reset flow a graphical front-end would
// drive through the game package.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/katalvlaran/sudoku/game"
	"github.com/katalvlaran/sudoku/puzzles"
)

func main() {
	dir := flag.String("dir", ".", "directory holding the *_puzzles.txt tier files")
	tierStr := flag.String("tier", "easy", "difficulty tier: easy|medium|hard")
	index := flag.Int("index", 0, "puzzle index within the tier")
	algStr := flag.String("alg", "ac3", "solving algorithm: ac3|backtracking")
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

	tier, ok := parseTier(*tierStr)
	if !ok {
		logger.Error("unknown tier", "tier", *tierStr)
		os.Exit(2)
	}
	alg, ok := parseAlgorithm(*algStr)
	if !ok {
		logger.Error("unknown algorithm", "alg", *algStr)
		os.Exit(2)
	}

	src := puzzles.Load(*dir)
	if src.Count(tier) == 0 {
		logger.Warn("no puzzles available for tier", "tier", tier.String(), "dir", *dir)
	}

	g := game.New(src)
	if err := g.LoadPuzzle(tier, *index); err != nil {
		logger.Error("load puzzle", "err", err)
		os.Exit(1)
	}

	fmt.Println(g.Board())

	solved, elapsed, err := g.Solve(alg)
	if err != nil {
		logger.Error("solve", "err", err)
		os.Exit(1)
	}

	fmt.Println(g.Board())
	logger.Info("solve finished",
		"alg", alg.String(),
		"tier", tier.String(),
		"index", *index,
		"solved", solved,
		"elapsed", elapsed,
	)
	if !solved {
		os.Exit(1)
	}
}

func parseTier(s string) (puzzles.Tier, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "easy":
		return puzzles.Easy, true
	case "medium":
		return puzzles.Medium, true
	case "hard":
		return puzzles.Hard, true
	default:
		return 0, false
	}
}

func parseAlgorithm(s string) (game.Algorithm, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "backtracking", "backtrack", "bt":
		return game.Backtracking, true
	case "ac3", "arc", "arc-consistency-3":
		return game.ArcConsistency3, true
	default:
		return 0, false
	}
}
