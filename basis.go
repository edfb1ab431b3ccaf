package splines

// UniformKnots returns the uniform knot vector 0, 1, …, n+degree for n
// control points.
func UniformKnots(n, degree int) []float64 {
	knots := make([]float64, n+degree+1)
	for i := range knots {
		knots[i] = float64(i)
	}
	return knots
}

// BasisFunc evaluates the B-spline basis function Nᵢ,ₖ(t) of degree k over
// the given knot vector, using the Cox–de Boor recursion:
//
//	Nᵢ,₀(t) = 1 if tᵢ ≤ t < tᵢ₊₁, else 0
//	Nᵢ,ₖ(t) = (t − tᵢ)/(tᵢ₊ₖ − tᵢ) · Nᵢ,ₖ₋₁(t) + (tᵢ₊ₖ₊₁ − t)/(tᵢ₊ₖ₊₁ − tᵢ₊₁) · Nᵢ₊₁,ₖ₋₁(t)
//
// Terms whose denominator is zero are taken to be zero. Because knot spans
// are half-open, every basis function is zero at the last knot.
func BasisFunc(i, k int, knots []float64, t float64) float64 {
	if k == 0 {
		if knots[i] <= t && t < knots[i+1] {
			return 1
		}
		return 0
	}
	var left, right float64
	if d := knots[i+k] - knots[i]; d != 0 {
		left = (t - knots[i]) / d * BasisFunc(i, k-1, knots, t)
	}
	if d := knots[i+k+1] - knots[i+1]; d != 0 {
		right = (knots[i+k+1] - t) / d * BasisFunc(i+1, k-1, knots, t)
	}
	return left + right
}

// EvalBSpline evaluates the curve produced by [BSpline] at u ∈ [0, 1] by
// summing basis functions, Σ Nᵢ,₃(s)·qᵢ, over the clamped control points
// q and a uniform knot vector. u is mapped linearly onto the valid knot
// range, so u = 0 is the first point and u = 1 the last.
//
// It returns the zero point for fewer than two points.
func EvalBSpline(points []Point, u float64) Point {
	const degree = 3
	if len(points) < 2 {
		return Point{}
	}
	q := clampedBSplinePoints(points)
	m := len(q)
	if u >= 1 {
		// The half-open spans leave the end of the domain uncovered; take
		// the limit from the left.
		return bsplineSegment(q[m-4], q[m-3], q[m-2], q[m-1]).P3
	}
	u = max(u, 0)
	knots := UniformKnots(m, degree)
	s := float64(degree) + u*float64(m-degree)

	var v Vec2
	for i, p := range q {
		if w := BasisFunc(i, degree, knots, s); w != 0 {
			v = v.Add(Vec2(p).Mul(w))
		}
	}
	return Point(v)
}
