package mesh

import "math"

// Partition — split of a half-axis into logarithmic and tan points.
//
// Algorithm:
//  1. eta = ln(x1/x0) / (x2/x1 − 1)
//  2. n1  = round((1 + eta·n) / (1 + eta)), rounding half up
//  3. clamp n1 to [2, n−2] so each segment keeps at least two points
//  4. n2  = n − n1
//
// Errors:
//   - ErrTooFewPoints — n < 4.
//   - ErrBadScale     — x0, x1, x2 not finite or not 0 < x0 < x1 < x2, or
//     x2/x1 indistinguishable from 1 in float64.
func Partition(n int, x0, x1, x2 float64) (n1, n2 int, err error) {
	if err = validateHalfCount(n); err != nil {
		return 0, 0, err
	}
	if err = validateScales(x0, x1, x2); err != nil {
		return 0, 0, err
	}

	return partition(n, x0, x1, x2)
}

// partition assumes validated arguments.
func partition(n int, x0, x1, x2 float64) (int, int, error) {
	eta := math.Log(x1/x0) / (x2/x1 - 1)
	if math.IsNaN(eta) || math.IsInf(eta, 0) {
		return 0, 0, validatorErrorf("partition: eta", ErrBadScale)
	}

	n1 := int((1+eta*float64(n))/(1+eta) + 0.5)
	if n1 > n-minTanPoints {
		n1 = n - minTanPoints
	}
	if n1 < minLogPoints {
		n1 = minLogPoints
	}

	return n1, n - n1, nil
}

// HalfMesh builds the positive half-axis: n1 logarithmic points from x0 to x1
// followed by n2 tan points beyond x1 (see Partition for the split).
//
// The logarithmic point i is exp(ln x0 + i·(ln x1 − ln x0)/(n1−1)); the tan
// point i is w·tan(a + (i+1)·b/n2) with
//
//	a = atan(tan(1e-5) / (x2/x1))
//	b = dwt·sin(a)·cos(a),  dwt = n2·(ln x1 − ln x0)/(n1−1)
//	w = x1 / tan(a)
//
// The result has length n, is strictly increasing, starts at x0 and is freshly
// allocated.
//
// Errors: ErrTooFewPoints, ErrBadScale, ErrDiverged (tan argument reaches π/2
// or a point overflows), ErrNotIncreasing (scales too close for float64).
func HalfMesh(n int, x0, x1, x2 float64) ([]float64, error) {
	n1, n2, err := Partition(n, x0, x1, x2)
	if err != nil {
		return nil, err
	}

	return halfMesh(n1, n2, x0, x1, x2)
}

func halfMesh(n1, n2 int, x0, x1, x2 float64) ([]float64, error) {
	om := make([]float64, 0, n1+n2)
	om = appendLogSegment(om, n1, x0, x1)

	var err error
	if om, err = appendTanSegment(om, n1, n2, x0, x1, x2); err != nil {
		return nil, err
	}
	if err = validateIncreasing("HalfMesh", om); err != nil {
		return nil, err
	}

	return om, nil
}

func appendLogSegment(om []float64, n1 int, x0, x1 float64) []float64 {
	l0, l1 := math.Log(x0), math.Log(x1)
	for i := 0; i < n1; i++ {
		om = append(om, math.Exp(l0+float64(i)*(l1-l0)/float64(n1-1)))
	}

	return om
}

func appendTanSegment(om []float64, n1, n2 int, x0, x1, x2 float64) ([]float64, error) {
	xt := x2 / x1
	dwt := float64(n2) * (math.Log(x1) - math.Log(x0)) / float64(n1-1)

	a := math.Atan(math.Tan(tanAnchor) / xt)
	b := dwt * math.Sin(a) * math.Cos(a)
	w := x1 / math.Tan(a)
	if math.IsInf(w, 0) || math.IsNaN(w) {
		return nil, validatorErrorf("appendTanSegment: scale", ErrDiverged)
	}
	// the last argument is the largest one
	if a+float64(n2)*b/float64(n2) >= math.Pi/2 {
		return nil, validatorErrorf("appendTanSegment: argument", ErrDiverged)
	}

	for i := 0; i < n2; i++ {
		v := w * math.Tan(a+float64(i+1)*b/float64(n2))
		if math.IsInf(v, 0) || math.IsNaN(v) {
			return nil, validatorErrorf("appendTanSegment: overflow", ErrDiverged)
		}
		om = append(om, v)
	}

	return om, nil
}

// SymmetricMesh builds a mesh symmetric around zero together with its
// quadrature weights.
//
// Algorithm:
//  1. om1 = HalfMesh(n/2, x0, x1, x2)
//  2. points = [−om1[n/2−1], …, −om1[0], om1[0], …, om1[n/2−1]]
//  3. dh = Weights(points)
//
// n must be even and at least 8. points[i] == −points[n−1−i] exactly and no
// point equals zero. Both slices have length n and are freshly allocated.
func SymmetricMesh(n int, x0, x1, x2 float64) (points, dh []float64, err error) {
	if err = validateFullCount(n); err != nil {
		return nil, nil, err
	}

	half := n / 2
	om1, err := HalfMesh(half, x0, x1, x2)
	if err != nil {
		return nil, nil, err
	}

	points = mirror(om1)

	return points, weights(points), nil
}

// mirror returns −reverse(om1) followed by om1 in a new slice.
func mirror(om1 []float64) []float64 {
	half := len(om1)
	om := make([]float64, 0, 2*half)
	for i := 0; i < half; i++ {
		om = append(om, -om1[half-i-1])
	}

	return append(om, om1...)
}

// Weights returns the quadrature weights dh of a strictly increasing axis:
//
//	dh[0]    = ½·(x[1] − x[0])
//	dh[i]    = ½·(x[i+1] − x[i−1])      0 < i < last
//	dh[last] = ½·(x[last] − x[last−1])
//
// Summing f(x[i])·dh[i] is the trapezoid rule on x.
//
// Errors: ErrTooShort, ErrNaNInf, ErrNotIncreasing.
func Weights(xs []float64) ([]float64, error) {
	if len(xs) < 2 {
		return nil, validatorErrorf("Weights", ErrTooShort)
	}
	if err := validateIncreasing("Weights", xs); err != nil {
		return nil, err
	}

	return weights(xs), nil
}

func weights(om []float64) []float64 {
	last := len(om) - 1
	dh := make([]float64, 0, len(om))
	dh = append(dh, 0.5*(om[1]-om[0]))
	for i := 1; i < last; i++ {
		dh = append(dh, 0.5*(om[i+1]-om[i-1]))
	}

	return append(dh, 0.5*(om[last]-om[last-1]))
}
