package splines

import (
	"math"
)

// DefaultStep is the parameter increment used by [EvalBezier] when it is
// passed a step of 0.
const DefaultStep = 0.01

// EvalQuadratic evaluates the quadratic Bézier with control points p0, p1 and
// p2 at t ∈ [0, 1].
func EvalQuadratic(p0, p1, p2 Point, t float64) Point {
	return QuadBez{p0, p1, p2}.Eval(t)
}

// EvalCubic evaluates the cubic Bézier with control points p0 through p3 at
// t ∈ [0, 1].
func EvalCubic(p0, p1, p2, p3 Point, t float64) Point {
	return CubicBez{p0, p1, p2, p3}.Eval(t)
}

// EvalBernstein evaluates the Bézier curve of degree len(points)-1 at t, using
// the Bernstein form
//
//	B(t) = Σ C(n, i) (1−t)ⁿ⁻ⁱ tⁱ Pᵢ
//
// See [NewBernstein] for the conditions under which it returns an error.
// Callers that evaluate the same curve repeatedly should construct a
// [Bernstein] once instead.
func EvalBernstein(points []Point, t float64) (Point, error) {
	b, err := NewBernstein(points)
	if err != nil {
		return Point{}, err
	}
	return b.Eval(t), nil
}

var _ ParametricCurve = Bernstein{}

// Bernstein is a Bézier curve of arbitrary degree in Bernstein form.
type Bernstein struct {
	points []Point
	coeffs []float64
}

// NewBernstein returns the Bézier curve with the given control points. The
// points are copied. It returns [ErrInsufficientPoints] for an empty slice
// and an error wrapping [ErrOverflow] if the degree exceeds [MaxDegree].
func NewBernstein(points []Point) (Bernstein, error) {
	if len(points) == 0 {
		return Bernstein{}, ErrInsufficientPoints
	}
	n := len(points) - 1
	if n > MaxDegree {
		return Bernstein{}, ErrDegreeTooLarge
	}
	coeffs, err := binomialRow(n)
	if err != nil {
		return Bernstein{}, err
	}
	return Bernstein{
		points: append([]Point(nil), points...),
		coeffs: coeffs,
	}, nil
}

// Degree returns the degree of the curve, which is one less than the number of
// control points.
func (b Bernstein) Degree() int {
	return len(b.points) - 1
}

// Points returns a copy of the control points.
func (b Bernstein) Points() []Point {
	return append([]Point(nil), b.points...)
}

func (b Bernstein) Eval(t float64) Point {
	n := len(b.points) - 1
	mt := 1.0 - t
	var v Vec2
	for i, p := range b.points {
		w := b.coeffs[i] * math.Pow(mt, float64(n-i)) * math.Pow(t, float64(i))
		v = v.Add(Vec2(p).Mul(w))
	}
	return Point(v)
}

func (b Bernstein) Start() Point {
	return b.points[0]
}

func (b Bernstein) End() Point {
	return b.points[len(b.points)-1]
}

// Split splits the curve at t into two curves of the same degree, using de
// Casteljau's algorithm.
func (b Bernstein) Split(t float64) (Bernstein, Bernstein) {
	n := len(b.points)
	left := make([]Point, n)
	right := make([]Point, n)
	work := append([]Point(nil), b.points...)
	for k := range n {
		left[k] = work[0]
		right[n-1-k] = work[n-1-k]
		for i := 0; i < n-1-k; i++ {
			work[i] = work[i].Lerp(work[i+1], t)
		}
	}
	return Bernstein{left, b.coeffs}, Bernstein{right, b.coeffs}
}

func (b Bernstein) Subsegment(t0, t1 float64) Bernstein {
	if t1 == 0 {
		l, _ := b.Split(0)
		return l
	}
	head, _ := b.Split(t1)
	_, seg := head.Split(t0 / t1)
	return seg
}

func (b Bernstein) SubsegmentCurve(t0, t1 float64) ParametricCurve {
	return b.Subsegment(t0, t1)
}

// MaxSamples bounds the number of intervals of a sampled curve: a Bézier
// step must be at least 1/MaxSamples, and a spline takes at most MaxSamples
// arc-length intervals.
const MaxSamples = 1 << 20

// sampleCount returns floor(1/step)+1. The guard absorbs rounding in 1/step,
// so that a step of 0.01 yields 101 samples.
func sampleCount(step float64) int {
	return int(math.Floor(1/step+1e-9)) + 1
}

// validStep reports whether step lies in [1/MaxSamples, 1].
func validStep(step float64) bool {
	return step > 0 && step <= 1 && 1/step <= MaxSamples
}

func allFinite(points []Point) bool {
	for _, pt := range points {
		if !pt.IsFinite() {
			return false
		}
	}
	return true
}

// sampleParam evaluates f at t = 0, step, 2·step, …, with the final sample
// clamped to t = 1.
func sampleParam(f func(t float64) Point, step float64) []Point {
	n := sampleCount(step)
	out := make([]Point, n)
	for i := range n - 1 {
		out[i] = f(float64(i) * step)
	}
	out[n-1] = f(1)
	return out
}

// EvalBezier samples a Bézier curve of the given kind from t = 0 to t = 1 in
// increments of step, and returns floor(1/step)+1 points in order of
// increasing t. The last sample is always at exactly t = 1. A step of 0
// selects [DefaultStep].
//
// A quadratic uses the first three points and a cubic the first four. A
// Bernstein curve uses all points and has degree len(points)-1.
//
// EvalBezier never fails loudly: if there are fewer points than the kind
// requires, the kind isn't a Bézier kind, the step is outside
// [1/MaxSamples, 1], a point isn't finite, or the degree exceeds
// [MaxDegree], it returns nil. Interactive editors pass through such states
// while points are being placed.
func EvalBezier(points []Point, kind Kind, step float64) []Point {
	if step == 0 {
		step = DefaultStep
	}
	if !validStep(step) || !allFinite(points) {
		return nil
	}
	switch kind {
	case QuadraticBezier:
		if len(points) < 3 {
			return nil
		}
		return sampleParam(QuadBez{points[0], points[1], points[2]}.Eval, step)
	case CubicBezier:
		if len(points) < 4 {
			return nil
		}
		return sampleParam(CubicBez{points[0], points[1], points[2], points[3]}.Eval, step)
	case BernsteinBezier:
		if len(points) < BernsteinBezier.MinPoints(1) {
			return nil
		}
		b, err := NewBernstein(points)
		if err != nil {
			return nil
		}
		return sampleParam(b.Eval, step)
	default:
		return nil
	}
}

// bezierPath returns the path of a Bézier curve. Curves of degree three or
// less are represented exactly; higher degrees are drawn as a polyline
// through samples.
func bezierPath(points []Point, kind Kind, step float64) BezPath {
	var p BezPath
	switch kind {
	case QuadraticBezier:
		if len(points) < 3 {
			return nil
		}
		p.MoveTo(points[0])
		p.QuadTo(points[1], points[2])
	case CubicBezier:
		if len(points) < 4 {
			return nil
		}
		p.MoveTo(points[0])
		p.CubicTo(points[1], points[2], points[3])
	case BernsteinBezier:
		switch len(points) {
		case 0, 1:
			return nil
		case 2:
			p.MoveTo(points[0])
			p.LineTo(points[1])
		case 3:
			return bezierPath(points, QuadraticBezier, step)
		case 4:
			return bezierPath(points, CubicBezier, step)
		default:
			samples := EvalBezier(points, kind, step)
			if len(samples) == 0 {
				return nil
			}
			p.MoveTo(samples[0])
			for _, pt := range samples[1:] {
				p.LineTo(pt)
			}
		}
	default:
		return nil
	}
	return p
}
