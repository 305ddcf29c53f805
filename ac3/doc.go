// Package ac3 reduces per-cell candidate domains by directional
// arc-consistency propagation, then finishes the search by backtracking
// when propagation alone does not determine the grid.
//
// What:
//
//   - Propagate computes a candidate domain for every cell, runs a
//     FIFO worklist of revisions, and writes every domain that
//     collapsed to a single value back into the grid.
//   - Solve runs Propagate and, unless disabled, delegates any residual
//     ambiguity to backtrack.Solve.
//   - TimedSolve wraps Solve with wall-clock measurement.
//
// Why:
//
//   - Propagation prunes the search space cheaply before the
//     exponential search starts; easy puzzles often collapse entirely.
//   - Bitmask domains (9 bits in a uint16) make emptiness and
//     singleton checks single instructions, with no per-cell maps.
//
// The revision rule is deliberately directional and weaker than
// textbook AC-3: a neighbor's domain shrinks only when the dequeued
// cell's domain has already collapsed to exactly one value, and only in
// that one direction. There is no symmetric revision pass. Do not
// mistake this for full arc consistency; the fallback search covers
// whatever this cheaper rule leaves undetermined.
//
// Complexity:
//
//	Each revision strictly shrinks a 1..9 domain, so total work is
//	bounded by 81·9 shrinks times 20 neighbors; the worklist cannot
//	grow without bound.
//
// Errors:
//
//   - ErrDomainWipeout: a domain became empty during propagation; the
//     puzzle admits no solution under the current grid. Propagate
//     returns it without touching the grid, and Solve reports failure
//     without attempting the backtracking fallback.
package ac3
