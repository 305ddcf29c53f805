// Package puzzles defines tiers, options and sentinel errors for the
// puzzle source.
package puzzles

import (
	"errors"

	"github.com/katalvlaran/sudoku/board"
)

// Sentinel errors for puzzle lookup and parsing.
var (
	// ErrUnknownTier indicates a Tier outside Easy, Medium or Hard.
	ErrUnknownTier = errors.New("puzzles: unknown difficulty tier")
	// ErrPuzzleIndex indicates an index outside the tier's puzzle list.
	ErrPuzzleIndex = errors.New("puzzles: puzzle index out of range")
	// ErrMalformedPuzzle indicates a block that is not 9 rows of 9 digits.
	ErrMalformedPuzzle = errors.New("puzzles: malformed puzzle block")
)

// Tier labels puzzle difficulty.
type Tier int

const (
	// Easy puzzles have many givens.
	Easy Tier = iota
	// Medium puzzles have fewer givens.
	Medium
	// Hard puzzles have the fewest givens.
	Hard

	tierCount
)

// String returns the tier's display name.
func (t Tier) String() string {
	switch t {
	case Easy:
		return "Easy"
	case Medium:
		return "Medium"
	case Hard:
		return "Hard"
	default:
		return "Unknown"
	}
}

// Valid reports whether t is one of the three known tiers.
func (t Tier) Valid() bool { return t >= Easy && t < tierCount }

// Option configures loading via functional arguments.
type Option func(*Options)

// Options holds tunable parameters for Load and LoadFS.
type Options struct {
	// Files maps each tier to its file name within the source
	// directory or filesystem.
	Files map[Tier]string
}

// DefaultOptions returns the conventional tier file names.
func DefaultOptions() Options {
	return Options{
		Files: map[Tier]string{
			Easy:   "easy_puzzles.txt",
			Medium: "medium_puzzles.txt",
			Hard:   "hard_puzzles.txt",
		},
	}
}

// WithFile overrides the file name for one tier.
func WithFile(t Tier, name string) Option {
	return func(o *Options) {
		if t.Valid() && name != "" {
			o.Files[t] = name
		}
	}
}

// Source is an in-memory puzzle set grouped by tier. Construct it with
// Load or LoadFS; the zero value is an empty set.
type Source struct {
	tiers [tierCount][]board.Grid
}
