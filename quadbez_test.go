package splines

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp/cmpopts"
)

func TestQuadBezArclen(t *testing.T) {
	// B'(t) = (100, 200(1−2t)), which integrates in closed form.
	q := QuadBez{testQuad[0], testQuad[1], testQuad[2]}
	want := 50*math.Sqrt(5) + 25*math.Log(2+math.Sqrt(5))
	for i := 3; i < 12; i++ {
		accuracy := math.Pow(0.1, float64(i))
		if err := math.Abs(q.Arclen(accuracy) - want); err > accuracy {
			t.Errorf("got error %g for desired accuracy of %g", err, accuracy)
		}
	}
}

func TestQuadBezArclenMatchesPolyline(t *testing.T) {
	q := QuadBez{Pt(3, 1), Pt(17, 40), Pt(33, -12)}
	samples := EvalBezier([]Point{q.P0, q.P1, q.P2}, QuadraticBezier, 1e-4)
	var poly float64
	for i := 1; i < len(samples); i++ {
		poly += samples[i].Sub(samples[i-1]).Hypot()
	}
	diff(t, poly, q.Arclen(DefaultAccuracy), cmpopts.EquateApprox(0, 1e-4))
}

func TestQuadBezArclenDegenerate(t *testing.T) {
	q := QuadBez{Pt(5, 5), Pt(5, 5), Pt(5, 5)}
	if l := q.Arclen(DefaultAccuracy); l != 0 {
		t.Errorf("got length %v for coincident points, want 0", l)
	}

	// Nearly straight curves take the quadrature path.
	q = QuadBez{Pt(0, 0), Pt(50, 1e-3), Pt(100, 0)}
	diff(t, 100.0, q.Arclen(DefaultAccuracy), cmpopts.EquateApprox(0, 1e-6))
}

func TestQuadBezSubsegment(t *testing.T) {
	q := QuadBez{testQuad[0], testQuad[1], testQuad[2]}
	const t0, t1 = 0.2, 0.7
	qs := q.Subsegment(t0, t1)
	for i := range 11 {
		tt := float64(i) / 10
		assertNear(t, qs.Eval(tt), q.Eval(t0+tt*(t1-t0)), 1e-12)
	}
}

func TestQuadBezSolveForArclen(t *testing.T) {
	// The curve is symmetric, so half its length is reached at t = 0.5.
	q := QuadBez{testQuad[0], testQuad[1], testQuad[2]}
	const accuracy = 1e-9
	ts := SolveForArclen(q, q.Arclen(accuracy)/2, accuracy)
	diff(t, 0.5, ts, cmpopts.EquateApprox(0, 1e-7))
}
