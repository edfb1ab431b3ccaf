package splines

// DefaultSamples is the number of intervals used by [EvalSpline] when it is
// passed 0 samples. The result then has DefaultSamples+1 points.
const DefaultSamples = 100

// NaturalCubic returns the natural cubic spline through points as a chain of
// cubic Béziers, one per pair of consecutive points.
//
// Every span is parametrized over [0, 1]. The spline passes through every
// point, has continuous first and second derivatives at interior points, and
// has zero second derivative at both ends. Two points produce a straight
// line. It returns nil for fewer than two points.
func NaturalCubic(points []Point) []CubicBez {
	switch len(points) {
	case 0, 1:
		return nil
	case 2:
		return []CubicBez{Line{points[0], points[1]}.Cubic()}
	}

	n := len(points) - 1
	xs := make([]float64, len(points))
	ys := make([]float64, len(points))
	for i, p := range points {
		xs[i], ys[i] = p.X, p.Y
	}
	ax, bx := naturalControls(xs)
	ay, by := naturalControls(ys)

	out := make([]CubicBez, n)
	for i := range n {
		out[i] = CubicBez{
			points[i],
			Pt(ax[i], ay[i]),
			Pt(bx[i], by[i]),
			points[i+1],
		}
	}
	return out
}

// naturalControls computes the inner Bézier control values a[i], b[i] of
// every span of the natural cubic spline through x, for one coordinate.
//
// C¹ continuity gives a[i+1] + b[i] = 2x[i+1], C² continuity gives
// a[i] − 2b[i] = b[i+1] − 2a[i+1], and the natural boundary conditions give
// x[0] − 2a[0] + b[0] = 0 and a[n−1] − 2b[n−1] + x[n] = 0. Eliminating b
// leaves a tridiagonal system in a, solved with the Thomas algorithm.
func naturalControls(x []float64) (a, b []float64) {
	n := len(x) - 1
	a = make([]float64, n)
	b = make([]float64, n)
	r := make([]float64, n)

	// a holds the sub-diagonal and b the diagonal; the super-diagonal is
	// always 1.
	a[0], b[0], r[0] = 0, 2, x[0]+2*x[1]
	for i := 1; i < n-1; i++ {
		a[i], b[i], r[i] = 1, 4, 4*x[i]+2*x[i+1]
	}
	a[n-1], b[n-1], r[n-1] = 2, 7, 8*x[n-1]+x[n]

	for i := 1; i < n; i++ {
		m := a[i] / b[i-1]
		b[i] -= m
		r[i] -= m * r[i-1]
	}
	a[n-1] = r[n-1] / b[n-1]
	for i := n - 2; i >= 0; i-- {
		a[i] = (r[i] - a[i+1]) / b[i]
	}

	b[n-1] = (x[n] + a[n-1]) / 2
	for i := 0; i < n-1; i++ {
		b[i] = 2*x[i+1] - a[i+1]
	}
	return a, b
}

// CatmullRom returns the uniform Catmull-Rom spline through points as a
// chain of cubic Béziers, one per pair of consecutive points.
//
// The tangent at point i is 0.5·(p[i+1] − p[i−1]). At the ends, the end point
// stands in for its missing neighbour, so the first tangent is
// 0.5·(p[1] − p[0]) and the last is 0.5·(p[n] − p[n−1]). Coincident points
// yield zero tangents; nothing is divided by a distance. It returns nil for
// fewer than two points.
func CatmullRom(points []Point) []CubicBez {
	if len(points) < 2 {
		return nil
	}
	at := func(i int) Point {
		return points[min(max(i, 0), len(points)-1)]
	}
	out := make([]CubicBez, len(points)-1)
	for i := range out {
		p0, p1, p2, p3 := at(i-1), at(i), at(i+1), at(i+2)
		// A Hermite tangent m becomes a Bézier control point at p ± m/3.
		out[i] = CubicBez{
			p1,
			p1.Translate(p2.Sub(p0).Mul(1.0 / 6.0)),
			p2.Translate(p3.Sub(p1).Mul(-1.0 / 6.0)),
			p2,
		}
	}
	return out
}

// CatmullRomTangent returns the tangent used by [CatmullRom] at point i.
func CatmullRomTangent(points []Point, i int) Vec2 {
	prev := points[max(i-1, 0)]
	next := points[min(i+1, len(points)-1)]
	return next.Sub(prev).Mul(0.5)
}

// BSpline returns the cubic uniform B-spline of points as a chain of cubic
// Béziers.
//
// The first and last points are tripled, which clamps the curve to start at
// the first point and end at the last. Interior points are approximated, not
// interpolated. n points give n+1 segments; the first and last segments are
// straight. It returns nil for fewer than two points.
func BSpline(points []Point) []CubicBez {
	if len(points) < 2 {
		return nil
	}
	q := clampedBSplinePoints(points)
	out := make([]CubicBez, len(q)-3)
	for i := range out {
		out[i] = bsplineSegment(q[i], q[i+1], q[i+2], q[i+3])
	}
	return out
}

// bsplineSegment converts one span of a uniform cubic B-spline, given by its
// four de Boor points, to Bézier form.
func bsplineSegment(b0, b1, b2, b3 Point) CubicBez {
	v0, v1, v2, v3 := Vec2(b0), Vec2(b1), Vec2(b2), Vec2(b3)
	return CubicBez{
		Point(v0.Add(v1.Mul(4)).Add(v2).Div(6)),
		Point(v1.Mul(2).Add(v2).Div(3)),
		Point(v1.Add(v2.Mul(2)).Div(3)),
		Point(v1.Add(v2.Mul(4)).Add(v3).Div(6)),
	}
}

// clampedBSplinePoints returns points with the first and last point tripled.
func clampedBSplinePoints(points []Point) []Point {
	first, last := points[0], points[len(points)-1]
	q := make([]Point, 0, len(points)+4)
	q = append(q, first, first)
	q = append(q, points...)
	q = append(q, last, last)
	return q
}

// SplineCubics returns the spline of the given kind through (or, for
// [UniformBSpline], near) points, as a chain of cubic Béziers. It returns nil
// if kind isn't a spline kind or there are fewer than
// kind.MinPoints(0) points.
func SplineCubics(points []Point, kind Kind) []CubicBez {
	if !kind.IsSpline() || len(points) < kind.MinPoints(0) {
		return nil
	}
	switch kind {
	case NaturalCubicSpline:
		return NaturalCubic(points)
	case CatmullRomSpline:
		return CatmullRom(points)
	case UniformBSpline:
		return BSpline(points)
	default:
		panic("unreachable")
	}
}

// EvalSpline samples the spline of the given kind and returns exactly
// totalSamples+1 points, evenly spaced by arc length along the curve. The
// first and last samples are the curve's end points. A totalSamples of 0
// selects [DefaultSamples].
//
// Like [EvalBezier], it returns nil instead of failing if there are fewer
// than four points, a point isn't finite, the kind isn't a spline kind, or
// totalSamples is outside [0, MaxSamples].
func EvalSpline(points []Point, kind Kind, totalSamples int) []Point {
	return evalSpline(points, kind, totalSamples, DefaultAccuracy)
}

func evalSpline(points []Point, kind Kind, totalSamples int, accuracy float64) []Point {
	if totalSamples == 0 {
		totalSamples = DefaultSamples
	}
	if totalSamples < 0 || totalSamples > MaxSamples || !allFinite(points) {
		return nil
	}
	cubics := SplineCubics(points, kind)
	if cubics == nil {
		return nil
	}
	return Resample(cubics, totalSamples, accuracy)
}
