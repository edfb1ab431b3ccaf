package splines

import (
	"errors"
	"math"
	"testing"
)

var (
	testQuad  = []Point{Pt(0, 0), Pt(50, 100), Pt(100, 0)}
	testCubic = []Point{Pt(0, 0), Pt(0, 100), Pt(100, 100), Pt(100, 0)}
)

func TestEvalQuadraticCubic(t *testing.T) {
	const epsilon = 1e-12
	assertNear(t, EvalQuadratic(testQuad[0], testQuad[1], testQuad[2], 0.5), Pt(50, 50), epsilon)
	assertNear(t, EvalCubic(testCubic[0], testCubic[1], testCubic[2], testCubic[3], 0.5), Pt(50, 75), epsilon)

	// The curves interpolate their end points.
	assertNear(t, EvalQuadratic(testQuad[0], testQuad[1], testQuad[2], 0), testQuad[0], epsilon)
	assertNear(t, EvalQuadratic(testQuad[0], testQuad[1], testQuad[2], 1), testQuad[2], epsilon)
	assertNear(t, EvalCubic(testCubic[0], testCubic[1], testCubic[2], testCubic[3], 0), testCubic[0], epsilon)
	assertNear(t, EvalCubic(testCubic[0], testCubic[1], testCubic[2], testCubic[3], 1), testCubic[3], epsilon)
}

func TestEvalBernstein(t *testing.T) {
	const epsilon = 1e-9
	for i := range 11 {
		ts := float64(i) / 10
		got, err := EvalBernstein(testQuad, ts)
		if err != nil {
			t.Fatal(err)
		}
		assertNear(t, got, EvalQuadratic(testQuad[0], testQuad[1], testQuad[2], ts), epsilon)

		got, err = EvalBernstein(testCubic, ts)
		if err != nil {
			t.Fatal(err)
		}
		assertNear(t, got, EvalCubic(testCubic[0], testCubic[1], testCubic[2], testCubic[3], ts), epsilon)
	}
}

func TestEvalBernsteinErrors(t *testing.T) {
	if _, err := EvalBernstein(nil, 0.5); !errors.Is(err, ErrInsufficientPoints) {
		t.Errorf("got error %v, want %v", err, ErrInsufficientPoints)
	}
	pts := make([]Point, MaxDegree+2)
	if _, err := EvalBernstein(pts, 0.5); !errors.Is(err, ErrDegreeTooLarge) || !errors.Is(err, ErrOverflow) {
		t.Errorf("got error %v, want %v", err, ErrDegreeTooLarge)
	}
	pts = pts[:MaxDegree+1]
	if _, err := EvalBernstein(pts, 0.5); err != nil {
		t.Errorf("degree %d: unexpected error: %s", MaxDegree, err)
	}
}

func TestBernsteinLinearPrecision(t *testing.T) {
	// Evenly spaced collinear control points of any degree trace the line at
	// constant speed.
	for n := 1; n <= 20; n++ {
		pts := make([]Point, n+1)
		for i := range pts {
			pts[i] = Pt(float64(i)*10/float64(n), float64(i)*-5/float64(n))
		}
		b, err := NewBernstein(pts)
		if err != nil {
			t.Fatal(err)
		}
		if b.Degree() != n {
			t.Errorf("got degree %d, want %d", b.Degree(), n)
		}
		for i := range 11 {
			ts := float64(i) / 10
			assertNear(t, b.Eval(ts), Pt(10*ts, -5*ts), 1e-9)
		}
	}
}

func TestBernsteinSplit(t *testing.T) {
	pts := []Point{Pt(0, 0), Pt(10, 40), Pt(30, -20), Pt(50, 60), Pt(80, 0), Pt(90, 30)}
	b, err := NewBernstein(pts)
	if err != nil {
		t.Fatal(err)
	}
	const split = 0.3
	left, right := b.Split(split)
	assertNear(t, left.Start(), b.Start(), 1e-12)
	assertNear(t, right.End(), b.End(), 1e-12)
	assertNear(t, left.End(), b.Eval(split), 1e-9)
	assertNear(t, right.Start(), b.Eval(split), 1e-9)

	sub := b.Subsegment(0.2, 0.7)
	const n = 10
	for i := range n + 1 {
		ts := float64(i) / float64(n)
		assertNear(t, left.Eval(ts), b.Eval(ts*split), 1e-9)
		assertNear(t, right.Eval(ts), b.Eval(split+ts*(1-split)), 1e-9)
		assertNear(t, sub.Eval(ts), b.Eval(0.2+ts*0.5), 1e-9)
	}
}

func TestBernsteinCopiesPoints(t *testing.T) {
	pts := []Point{Pt(0, 0), Pt(1, 1), Pt(2, 0)}
	b, err := NewBernstein(pts)
	if err != nil {
		t.Fatal(err)
	}
	pts[1] = Pt(100, 100)
	diff(t, []Point{Pt(0, 0), Pt(1, 1), Pt(2, 0)}, b.Points())

	out := b.Points()
	out[0] = Pt(-1, -1)
	diff(t, Pt(0, 0), b.Start())
}

func TestEvalBezierSampleCount(t *testing.T) {
	tests := []struct {
		step float64
		want int
	}{
		{0, 101},
		{0.01, 101},
		{0.1, 11},
		{0.25, 5},
		{0.3, 4},
		{0.5, 3},
		{1, 2},
		{0.001, 1001},
	}
	for _, tt := range tests {
		for _, k := range []Kind{QuadraticBezier, CubicBezier, BernsteinBezier} {
			got := EvalBezier(testCubic, k, tt.step)
			if len(got) != tt.want {
				t.Errorf("%v with step %g: got %d samples, want %d", k, tt.step, len(got), tt.want)
			}
		}
	}
}

func TestEvalBezierSamples(t *testing.T) {
	got := EvalBezier(testQuad, QuadraticBezier, 0.25)
	want := []Point{Pt(0, 0), Pt(25, 37.5), Pt(50, 50), Pt(75, 37.5), Pt(100, 0)}
	if len(got) != len(want) {
		t.Fatalf("got %d samples, want %d", len(got), len(want))
	}
	for i := range want {
		assertNear(t, got[i], want[i], 1e-12)
	}

	// The last sample is at t = 1 even when the step doesn't divide 1.
	got = EvalBezier(testCubic, CubicBezier, 0.3)
	assertNear(t, got[len(got)-1], testCubic[3], 1e-12)
	assertNear(t, got[2], EvalCubic(testCubic[0], testCubic[1], testCubic[2], testCubic[3], 0.6), 1e-12)

	// Quadratic and cubic kinds only consume their leading points.
	extra := append(append([]Point(nil), testQuad...), Pt(500, 500))
	diff(t, EvalBezier(testQuad, QuadraticBezier, 0.1), EvalBezier(extra, QuadraticBezier, 0.1))
}

func TestEvalBezierBernsteinMatchesQuadratic(t *testing.T) {
	quad := EvalBezier(testQuad, QuadraticBezier, DefaultStep)
	bern := EvalBezier(testQuad, BernsteinBezier, DefaultStep)
	if len(quad) != len(bern) {
		t.Fatalf("got %d and %d samples", len(quad), len(bern))
	}
	for i := range quad {
		assertNear(t, bern[i], quad[i], 1e-9)
	}
}

func TestEvalBezierTooFewPoints(t *testing.T) {
	tests := []struct {
		kind   Kind
		points []Point
	}{
		{QuadraticBezier, nil},
		{QuadraticBezier, testQuad[:2]},
		{CubicBezier, testQuad},
		{BernsteinBezier, testQuad[:1]},
		{NaturalCubicSpline, testCubic},
		{Kind(0), testCubic},
	}
	for _, tt := range tests {
		if got := EvalBezier(tt.points, tt.kind, DefaultStep); got != nil {
			t.Errorf("%v with %d points: got %d samples, want none", tt.kind, len(tt.points), len(got))
		}
	}
}

func TestEvalBezierInvalidStep(t *testing.T) {
	for _, step := range []float64{-0.1, 1.5, math.NaN(), math.Inf(1), 5e-324, 0.5 / MaxSamples} {
		if got := EvalBezier(testQuad, QuadraticBezier, step); got != nil {
			t.Errorf("step %g: got %d samples, want none", step, len(got))
		}
	}
	pts := make([]Point, MaxDegree+2)
	if got := EvalBezier(pts, BernsteinBezier, DefaultStep); got != nil {
		t.Errorf("got %d samples for degree %d, want none", len(got), MaxDegree+1)
	}
}

func TestEvalBezierNotFinite(t *testing.T) {
	for _, bad := range []Point{Pt(math.Inf(1), 0), Pt(0, math.NaN())} {
		pts := []Point{Pt(0, 0), bad, Pt(100, 0), Pt(100, 100)}
		for _, k := range []Kind{QuadraticBezier, CubicBezier, BernsteinBezier} {
			if got := EvalBezier(pts, k, 0.1); got != nil {
				t.Errorf("%s with %v: got %d samples, want none", k, bad, len(got))
			}
		}
	}
}

func TestEvalBezierIdempotent(t *testing.T) {
	pts := []Point{Pt(3, 1), Pt(17, 40), Pt(33, -12), Pt(60, 8), Pt(71, 29)}
	for _, k := range []Kind{QuadraticBezier, CubicBezier, BernsteinBezier} {
		diff(t, EvalBezier(pts, k, 0.05), EvalBezier(pts, k, 0.05))
	}
}
