// SPDX-License-Identifier: MIT
// Package: mesh
//
// Purpose:
//   - Single source of truth for parameter checks of every builder.
//   - Return sentinels wrapped with the validator tag so errors.Is works.
//
// Note:
//   - Count checks run before scale checks (see ERROR PRIORITY in errors.go).

package mesh

import (
	"fmt"
	"math"
)

// validatorErrorf wraps a sentinel with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// validateHalfCount ensures a half-axis can hold two log and two tan points.
func validateHalfCount(n int) error {
	if n < minHalfPoints {
		return validatorErrorf(fmt.Sprintf("validateHalfCount: n=%d < %d", n, minHalfPoints), ErrTooFewPoints)
	}

	return nil
}

// validateFullCount ensures n is even and each half passes validateHalfCount.
func validateFullCount(n int) error {
	if n%2 != 0 {
		return validatorErrorf(fmt.Sprintf("validateFullCount: n=%d", n), ErrOddPoints)
	}
	if n < 2*minHalfPoints {
		return validatorErrorf(fmt.Sprintf("validateFullCount: n=%d < %d", n, 2*minHalfPoints), ErrTooFewPoints)
	}

	return nil
}

// validateScales ensures x0, x1, x2 are finite and 0 < x0 < x1 < x2.
// NaN fails every comparison, so it is rejected by the ordering check too.
func validateScales(x0, x1, x2 float64) error {
	for _, x := range [...]float64{x0, x1, x2} {
		if math.IsNaN(x) || math.IsInf(x, 0) {
			return validatorErrorf("validateScales: non-finite", ErrBadScale)
		}
	}
	if !(0 < x0 && x0 < x1 && x1 < x2) {
		return validatorErrorf(fmt.Sprintf("validateScales: x0=%g x1=%g x2=%g", x0, x1, x2), ErrBadScale)
	}

	return nil
}

// validateIncreasing ensures xs is finite and strictly increasing.
func validateIncreasing(tag string, xs []float64) error {
	for i, x := range xs {
		if math.IsNaN(x) || math.IsInf(x, 0) {
			return validatorErrorf(fmt.Sprintf("%s: index %d", tag, i), ErrNaNInf)
		}
		if i > 0 && x <= xs[i-1] {
			return validatorErrorf(fmt.Sprintf("%s: index %d", tag, i), ErrNotIncreasing)
		}
	}

	return nil
}
