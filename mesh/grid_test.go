package mesh_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/ltmesh/mesh"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestNewGrid_MatchesSymmetricMesh verifies that Grid carries the same data as SymmetricMesh.
func TestNewGrid_MatchesSymmetricMesh(t *testing.T) {
	p := mesh.Params{N: 40, X0: 0.01, X1: 1, X2: 100}
	g, err := mesh.NewGrid(p)
	require.NoError(t, err)

	points, dh, err := mesh.SymmetricMesh(p.N, p.X0, p.X1, p.X2)
	require.NoError(t, err)
	assert.Equal(t, points, g.Points)
	assert.Equal(t, dh, g.Weights)
	assert.Equal(t, p, g.Params)
	assert.Equal(t, 40, g.Len())

	n1, n2, err := mesh.Partition(p.N/2, p.X0, p.X1, p.X2)
	require.NoError(t, err)
	assert.Equal(t, n1, g.N1)
	assert.Equal(t, n2, g.N2)
	assert.InEpsilon(t, p.X1, g.Points[p.N/2+g.N1-1], 1e-12, "log region ends at x1")
}

// TestNewGrid_Errors checks that Params.Validate guards NewGrid.
func TestNewGrid_Errors(t *testing.T) {
	_, err := mesh.NewGrid(mesh.Params{N: 41, X0: 0.01, X1: 1, X2: 100})
	assert.ErrorIs(t, err, mesh.ErrOddPoints)

	_, err = mesh.NewGrid(mesh.Params{N: 40, X0: 2, X1: 1, X2: 100})
	assert.ErrorIs(t, err, mesh.ErrBadScale)

	assert.NoError(t, mesh.DefaultParams().Validate())
}

// TestGrid_IntegrateConstant verifies that the weights telescope to the axis length.
func TestGrid_IntegrateConstant(t *testing.T) {
	g, err := mesh.NewGrid(mesh.DefaultParams())
	require.NoError(t, err)

	got := g.Integrate(func(float64) float64 { return 1 })
	span := g.Points[g.Len()-1] - g.Points[0]
	assert.InEpsilon(t, span, got, 1e-12)
}

// TestGrid_IntegrateOdd verifies that odd functions integrate to zero on an antisymmetric grid.
func TestGrid_IntegrateOdd(t *testing.T) {
	g, err := mesh.NewGrid(mesh.DefaultParams())
	require.NoError(t, err)

	got := g.Integrate(func(x float64) float64 { return x / (1 + x*x) })
	assert.InDelta(t, 0, got, 1e-9)
}

// TestGrid_IntegrateLorentzian compares against the closed form (2/π)·atan(xmax).
func TestGrid_IntegrateLorentzian(t *testing.T) {
	g, err := mesh.NewGrid(mesh.Params{N: 2000, X0: 0.01, X1: 1, X2: 100})
	require.NoError(t, err)

	lorentz := func(x float64) float64 { return 1 / (math.Pi * (1 + x*x)) }
	xmax := g.Points[g.Len()-1]
	want := 2 / math.Pi * math.Atan(xmax)
	assert.InDelta(t, want, g.Integrate(lorentz), 1e-3)
}

// TestGrid_IntegrateSamples checks the sampled variant and its length guard.
func TestGrid_IntegrateSamples(t *testing.T) {
	g, err := mesh.NewGrid(mesh.Params{N: 16, X0: 0.01, X1: 1, X2: 100})
	require.NoError(t, err)

	ys := make([]float64, g.Len())
	for i := range ys {
		ys[i] = 2
	}
	got, err := g.IntegrateSamples(ys)
	require.NoError(t, err)
	assert.InDelta(t, g.Integrate(func(float64) float64 { return 2 }), got, 1e-12)

	_, err = g.IntegrateSamples(ys[1:])
	assert.ErrorIs(t, err, mesh.ErrSampleLength)
}
