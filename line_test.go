package splines

import (
	"math"
	"testing"
)

func TestLineArclen(t *testing.T) {
	l := Line{Pt(0.0, 0.0), Pt(1.0, 1.0)}
	want := math.Sqrt(2.0)
	epsilon := 1e-9
	if d := l.Arclen(epsilon) - want; d > epsilon {
		t.Errorf("%g > %g", d, epsilon)
	}

	ts := l.SolveForArclen(want/3.0, epsilon)
	if d := math.Abs(ts - 1.0/3.0); d > epsilon {
		t.Errorf("%g > %g", d, epsilon)
	}
}

func TestLineSolveForArclenDegenerate(t *testing.T) {
	l := Line{Pt(3, 3), Pt(3, 3)}
	if ts := l.SolveForArclen(1, 1e-9); ts != 0 {
		t.Errorf("got t=%v for zero-length line, want 0", ts)
	}
	l = Line{Pt(0, 0), Pt(10, 0)}
	if ts := l.SolveForArclen(20, 1e-9); ts != 1 {
		t.Errorf("got t=%v past the end, want 1", ts)
	}
}

func TestLineCubic(t *testing.T) {
	l := Line{Pt(1, 2), Pt(7, 11)}
	c := l.Cubic()
	const n = 10
	for i := range n + 1 {
		ts := float64(i) / float64(n)
		assertNear(t, l.Eval(ts), c.Eval(ts), 1e-12)
	}
}

func TestControlPolygon(t *testing.T) {
	if got := ControlPolygon([]Point{Pt(1, 1)}); got != nil {
		t.Errorf("got %v for a single point, want nil", got)
	}
	got := ControlPolygon([]Point{Pt(0, 0), Pt(10, 0), Pt(10, 10)})
	want := []Line{
		{Pt(0, 0), Pt(10, 0)},
		{Pt(10, 0), Pt(10, 10)},
	}
	diff(t, want, got)
}
