// SPDX-License-Identifier: MIT
// Package mesh: sentinel error set.
// All builders return these sentinels wrapped with the name of the failed
// check; callers match them via errors.Is. No builder panics on user input.

package mesh

import "errors"

// ERROR PRIORITY (enforced in tests):
// point count -> parity -> scale ordering -> numeric divergence -> monotonicity.

var (
	// ErrTooFewPoints is returned when N cannot hold two logarithmic and two
	// tan points per half-axis.
	ErrTooFewPoints = errors.New("mesh: too few points")

	// ErrOddPoints is returned by SymmetricMesh for odd N; the full axis is
	// never silently truncated.
	ErrOddPoints = errors.New("mesh: point count must be even")

	// ErrBadScale indicates that x0, x1, x2 are not finite or violate 0 < x0 < x1 < x2.
	ErrBadScale = errors.New("mesh: scales must satisfy 0 < x0 < x1 < x2")

	// ErrDiverged signals that the tan segment reached π/2 or overflowed, so
	// the mesh would contain ±Inf or NaN.
	ErrDiverged = errors.New("mesh: tan segment diverged")

	// ErrNaNInf signals a NaN or ±Inf value in a caller-supplied sequence.
	ErrNaNInf = errors.New("mesh: NaN or Inf encountered")

	// ErrNotIncreasing signals a sequence that is not strictly increasing,
	// either a caller-supplied axis or a mesh collapsed below float64 resolution.
	ErrNotIncreasing = errors.New("mesh: sequence not strictly increasing")

	// ErrTooShort is returned by Weights for sequences shorter than two points.
	ErrTooShort = errors.New("mesh: sequence needs at least two points")

	// ErrSampleLength indicates a sample slice whose length differs from the grid.
	ErrSampleLength = errors.New("mesh: sample length mismatch")
)
