// Package game defines the algorithm enum and sentinel errors for the
// control surface.
package game

import "errors"

// ErrUnknownAlgorithm indicates a Solve call with an algorithm outside
// the enum.
var ErrUnknownAlgorithm = errors.New("game: unknown solving algorithm")

// Algorithm selects the solving strategy for Solve.
type Algorithm int

const (
	// Backtracking runs pure depth-first search.
	Backtracking Algorithm = iota
	// ArcConsistency3 runs domain propagation with a backtracking
	// fallback for whatever propagation leaves undetermined.
	ArcConsistency3
)

// String returns the algorithm's display name.
func (a Algorithm) String() string {
	switch a {
	case Backtracking:
		return "Backtracking"
	case ArcConsistency3:
		return "Arc Consistency-3"
	default:
		return "Unknown"
	}
}
