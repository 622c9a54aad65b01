package mesh_test

import (
	"testing"

	"github.com/katalvlaran/ltmesh/mesh"
)

// benchmarkSymmetricMesh runs SymmetricMesh with n points and fails on unexpected errors.
func benchmarkSymmetricMesh(b *testing.B, n int) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		if _, _, err := mesh.SymmetricMesh(n, 0.01, 1, 100); err != nil {
			b.Fatalf("SymmetricMesh failed: %v", err)
		}
	}
}

// BenchmarkSymmetricMesh_Small benchmarks a 200-point mesh.
func BenchmarkSymmetricMesh_Small(b *testing.B) { benchmarkSymmetricMesh(b, 200) }

// BenchmarkSymmetricMesh_Large benchmarks a 20000-point mesh.
func BenchmarkSymmetricMesh_Large(b *testing.B) { benchmarkSymmetricMesh(b, 20000) }

// BenchmarkGrid_Integrate benchmarks quadrature over the default grid.
func BenchmarkGrid_Integrate(b *testing.B) {
	g, err := mesh.NewGrid(mesh.DefaultParams())
	if err != nil {
		b.Fatalf("NewGrid failed: %v", err)
	}
	f := func(x float64) float64 { return 1 / (1 + x*x) }

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = g.Integrate(f)
	}
}
