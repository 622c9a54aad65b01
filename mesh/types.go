package mesh

// Defaults used by DefaultParams and the ltmesh command.
const (
	// DefaultN is the total point count of a symmetric mesh.
	DefaultN = 200

	// DefaultX0 is the lower end of the logarithmic segment.
	DefaultX0 = 0.01

	// DefaultX1 is the junction between the logarithmic and tan segments.
	DefaultX1 = 1.0

	// DefaultX2 sets the asymptotic ratio x2/x1 that shapes the tan segment.
	DefaultX2 = 100.0
)

// Minimal sizes of a half-axis.
const (
	minLogPoints  = 2
	minTanPoints  = 2
	minHalfPoints = minLogPoints + minTanPoints
)

// tanAnchor is the small angle (radians) the tan segment is anchored to.
const tanAnchor = 1e-5

// Params describes a mesh request.
//
// Fields:
//   - N  — number of points (half-axis for HalfMesh, full axis for SymmetricMesh).
//   - X0 — first point of the logarithmic segment.
//   - X1 — last point of the logarithmic segment, start of the tan segment.
//   - X2 — together with X1 fixes the ratio x2/x1 of the tan mapping.
//
// Valid parameters satisfy 0 < X0 < X1 < X2, all finite.
type Params struct {
	N  int
	X0 float64
	X1 float64
	X2 float64
}

// DefaultParams returns the parameters used when nothing is configured.
func DefaultParams() Params {
	return Params{N: DefaultN, X0: DefaultX0, X1: DefaultX1, X2: DefaultX2}
}

// Validate checks p as a SymmetricMesh request.
func (p Params) Validate() error {
	if err := validateFullCount(p.N); err != nil {
		return err
	}

	return validateScales(p.X0, p.X1, p.X2)
}

// Grid is a symmetric mesh together with its quadrature weights.
// A Grid is never mutated after NewGrid returns it.
type Grid struct {
	Params  Params    // request the grid was built from
	N1      int       // logarithmic points per half-axis
	N2      int       // tan points per half-axis
	Points  []float64 // strictly increasing, antisymmetric about zero
	Weights []float64 // dh, one positive weight per point
}
