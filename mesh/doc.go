// Package mesh builds one-dimensional logarithm+tan frequency meshes and the
// quadrature weights that go with them.
//
// 🚀 What is a logarithm+tan mesh?
//
//	A non-uniform grid over a real axis (frequency, energy, ...) that is
//	dense close to a reference scale and coarse far away from it:
//	  • [x0, x1]  — points uniformly spaced in ln(x) (logarithmic segment)
//	  • (x1, ∞)   — points following w·tan(a + k·b/N2) (tan segment)
//	It is the usual way to sample functions with sharp features near zero
//	and slowly varying tails, e.g. spectral functions and Matsubara-style
//	kernels before a real-axis integration.
//
// ✨ Key features:
//   - HalfMesh: the positive half-axis, N points, strictly increasing
//   - SymmetricMesh: the mirrored full axis plus trapezoid weights dh
//   - Weights: the same dh rule for any strictly increasing sequence
//   - Grid: an immutable bundle of points+weights with Integrate helpers
//   - strict parameter validation (0 < x0 < x1 < x2, even N, N ≥ 8),
//     never NaN or ±Inf in returned slices
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/ltmesh/mesh"
//
//	points, dh, err := mesh.SymmetricMesh(200, 0.01, 1.0, 100.0)
//	if err != nil {
//	  // errors.Is(err, mesh.ErrBadScale), mesh.ErrOddPoints, ...
//	}
//	var sum float64
//	for i, x := range points {
//	  sum += f(x) * dh[i]
//	}
//
// Partition of the half-axis:
//
//	eta = ln(x1/x0) / (x2/x1 − 1)
//	N1  = round((1 + eta·N) / (1 + eta)), clamped to [2, N−2]
//	N2  = N − N1
//
// Performance:
//
//   - Time:   O(N)
//   - Memory: O(N), every call returns freshly allocated slices
//
// All functions are pure and safe for concurrent use.
package mesh
