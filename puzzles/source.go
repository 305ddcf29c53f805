package puzzles

import (
	"bufio"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/katalvlaran/sudoku/board"
)

// Load reads the tier files from dir and returns the resulting Source.
// A missing or unreadable file leaves that tier empty; a malformed
// block within a file is skipped. Load never fails: "source
// unavailable" is represented as an empty tier, and the caller decides
// what to do about a zero Count.
func Load(dir string, opts ...Option) *Source {
	return LoadFS(os.DirFS(dir), opts...)
}

// LoadFS is Load over an arbitrary filesystem, convenient for embedded
// puzzle data and for tests built on fstest.MapFS.
func LoadFS(fsys fs.FS, opts ...Option) *Source {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	s := &Source{}
	for t := Easy; t < tierCount; t++ {
		f, err := fsys.Open(o.Files[t])
		if err != nil {
			continue // tier unavailable: leave it empty
		}
		grids, _ := parse(f)
		_ = f.Close()
		s.tiers[t] = grids
	}
	return s
}

// Count returns the number of puzzles loaded for the tier, 0 for an
// unknown tier.
func (s *Source) Count(t Tier) int {
	if !t.Valid() {
		return 0
	}
	return len(s.tiers[t])
}

// Puzzle returns a copy of the puzzle at index within the tier.
// Returns ErrUnknownTier or ErrPuzzleIndex for out-of-range lookups;
// the lookup is strict, never a silent no-op.
func (s *Source) Puzzle(t Tier, index int) (board.Grid, error) {
	if !t.Valid() {
		return board.Grid{}, fmt.Errorf("%w: %d", ErrUnknownTier, int(t))
	}
	if index < 0 || index >= len(s.tiers[t]) {
		return board.Grid{}, fmt.Errorf("%w: %s has %d puzzles, want index %d",
			ErrPuzzleIndex, t, len(s.tiers[t]), index)
	}
	return s.tiers[t][index], nil
}

// parse reads puzzle blocks from r. Numeric lines accumulate into the
// current block; any other line (blank ones included) closes it. The
// error joins one ErrMalformedPuzzle per skipped block and is nil when
// every block parsed cleanly.
func parse(r io.Reader) ([]board.Grid, error) {
	var (
		grids []board.Grid
		block [][]uint8
		errs  []string
	)
	flush := func() {
		if len(block) == 0 {
			return
		}
		g, ok := toGrid(block)
		if ok {
			grids = append(grids, g)
		} else {
			errs = append(errs, fmt.Sprintf("block #%d has %d rows", len(grids)+len(errs)+1, len(block)))
		}
		block = nil
	}

	sc := bufio.NewScanner(r)
	for sc.Scan() {
		row, ok := parseRow(strings.TrimSpace(sc.Text()))
		if !ok {
			flush()
			continue
		}
		block = append(block, row)
	}
	flush()

	if len(errs) > 0 {
		return grids, fmt.Errorf("%w: %s", ErrMalformedPuzzle, strings.Join(errs, "; "))
	}
	return grids, nil
}

// parseRow interprets one line as a row of digits 0..9. Reports false
// for blank lines, non-numeric lines, or out-of-range values.
func parseRow(line string) ([]uint8, bool) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return nil, false
	}
	row := make([]uint8, 0, len(fields))
	for _, f := range fields {
		n, err := strconv.Atoi(f)
		if err != nil || n < 0 || n > 9 {
			return nil, false
		}
		row = append(row, uint8(n))
	}
	return row, true
}

// toGrid validates a block's 9×9 shape and converts it.
func toGrid(block [][]uint8) (board.Grid, bool) {
	var g board.Grid
	if len(block) != board.Size {
		return g, false
	}
	for r, row := range block {
		if len(row) != board.Size {
			return g, false
		}
		copy(g[r][:], row)
	}
	return g, true
}
