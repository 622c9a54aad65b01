// Package ltmesh is a small numeric toolkit for building logarithm+tan meshes,
// the non-uniform real-axis grids used to discretize frequency or energy
// integrals whose integrands are sharp near zero and smooth in the tails.
//
// 🚀 What is in ltmesh?
//
//	mesh/        — HalfMesh, SymmetricMesh, Weights, Partition and the Grid
//	               type with trapezoid Integrate helpers
//	cmd/ltmesh/  — command line front end printing meshes as table, JSON or YAML
//	examples/    — runnable demo integrating a spectral function
//
// ✨ Why ltmesh?
//
//   - Deterministic – identical inputs give bit-identical meshes
//   - Strict – invalid scales, odd sizes and overflow are reported as errors,
//     never as NaN or ±Inf in the output
//   - Pure functions – no shared state, safe for concurrent use
//
// Quick example:
//
//	points, dh, err := mesh.SymmetricMesh(20, 0.01, 1.0, 100.0)
//	// points: −37.84 … −0.01, 0.01 … 37.84
//	// dh:     trapezoid weights, Σ dh = points[19] − points[0]
package ltmesh
