package mesh

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
)

// NewGrid builds the symmetric mesh described by p.
//
// The partition of each half-axis is recorded in N1/N2 so callers can tell
// where the logarithmic region ends: Points[len/2+N1-1] ≈ X1.
func NewGrid(p Params) (*Grid, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}

	n1, n2, err := partition(p.N/2, p.X0, p.X1, p.X2)
	if err != nil {
		return nil, err
	}
	om1, err := halfMesh(n1, n2, p.X0, p.X1, p.X2)
	if err != nil {
		return nil, err
	}
	points := mirror(om1)

	return &Grid{
		Params:  p,
		N1:      n1,
		N2:      n2,
		Points:  points,
		Weights: weights(points),
	}, nil
}

// Len returns the number of points.
func (g *Grid) Len() int { return len(g.Points) }

// Integrate approximates ∫ f(x) dx over [Points[0], Points[last]] as
// Σ f(Points[i])·Weights[i].
func (g *Grid) Integrate(f func(float64) float64) float64 {
	ys := make([]float64, len(g.Points))
	for i, x := range g.Points {
		ys[i] = f(x)
	}

	return floats.Dot(ys, g.Weights)
}

// IntegrateSamples is Integrate for values already sampled on Points.
func (g *Grid) IntegrateSamples(ys []float64) (float64, error) {
	if len(ys) != len(g.Points) {
		return 0, validatorErrorf(fmt.Sprintf("IntegrateSamples: got %d, want %d", len(ys), len(g.Points)), ErrSampleLength)
	}

	return floats.Dot(ys, g.Weights), nil
}
