// Package ac3 defines options, sentinel errors and the bitmask domain
// representation for arc-consistency propagation.
package ac3

import (
	"errors"
	"math/bits"

	"github.com/katalvlaran/sudoku/board"
)

// ErrDomainWipeout is returned when a cell's candidate domain becomes
// empty during propagation, signalling an unsolvable reduction.
var ErrDomainWipeout = errors.New("ac3: candidate domain became empty")

// domainSet is a set of candidate digits 1..9, one bit per digit
// (bit 1 = digit 1, ... bit 9 = digit 9; bit 0 unused).
type domainSet uint16

// fullDomain holds all nine candidates.
const fullDomain domainSet = 0b1111111110

// singleton returns the set containing only v.
func singleton(v uint8) domainSet {
	return 1 << v
}

// has reports whether v is a candidate.
func (d domainSet) has(v uint8) bool { return d&(1<<v) != 0 }

// remove deletes v from the set.
func (d domainSet) remove(v uint8) domainSet { return d &^ (1 << v) }

// count returns the number of candidates.
func (d domainSet) count() int { return bits.OnesCount16(uint16(d)) }

// empty reports whether no candidate remains.
func (d domainSet) empty() bool { return d == 0 }

// single returns the sole candidate and true when the set is a
// singleton, 0 and false otherwise.
func (d domainSet) single() (uint8, bool) {
	if d.count() != 1 {
		return 0, false
	}
	return uint8(bits.TrailingZeros16(uint16(d))), true
}

// domains maps every cell to its candidate set, indexed directly by
// row and column: a fixed array, no map overhead.
type domains [board.Size][board.Size]domainSet

// Option configures Solve via functional arguments.
type Option func(*Options)

// Options holds tunable parameters for Solve.
type Options struct {
	// Fallback controls whether Solve hands a still-incomplete grid to
	// the backtracking solver after propagation. Defaults to true.
	Fallback bool
}

// DefaultOptions returns Options with the backtracking fallback
// enabled.
func DefaultOptions() Options {
	return Options{Fallback: true}
}

// WithoutFallback makes Solve stop after propagation, reporting success
// only if propagation alone filled the grid.
func WithoutFallback() Option {
	return func(o *Options) { o.Fallback = false }
}
