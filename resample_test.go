package splines

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp/cmpopts"
)

func TestResampleLines(t *testing.T) {
	lines := []Line{
		{Pt(0, 0), Pt(10, 0)},
		{Pt(10, 0), Pt(10, 10)},
	}
	got := Resample(lines, 4, DefaultAccuracy)
	want := []Point{Pt(0, 0), Pt(5, 0), Pt(10, 0), Pt(10, 5), Pt(10, 10)}
	diff(t, want, got, cmpopts.EquateApprox(0, 1e-12))
}

func TestResampleSkipsZeroLength(t *testing.T) {
	lines := []Line{
		{Pt(0, 0), Pt(0, 0)},
		{Pt(0, 0), Pt(10, 0)},
		{Pt(10, 0), Pt(10, 0)},
		{Pt(10, 0), Pt(10, 10)},
	}
	got := Resample(lines, 4, DefaultAccuracy)
	want := []Point{Pt(0, 0), Pt(5, 0), Pt(10, 0), Pt(10, 5), Pt(10, 10)}
	diff(t, want, got, cmpopts.EquateApprox(0, 1e-12))
}

func TestResampleZeroLength(t *testing.T) {
	lines := []Line{{Pt(3, 4), Pt(3, 4)}}
	diff(t, []Point{Pt(3, 4), Pt(3, 4), Pt(3, 4)}, Resample(lines, 2, DefaultAccuracy))
}

func TestResampleInvalid(t *testing.T) {
	if got := Resample([]Line(nil), 4, DefaultAccuracy); got != nil {
		t.Errorf("got %v for no segments, want nil", got)
	}
	lines := []Line{{Pt(0, 0), Pt(1, 0)}}
	if got := Resample(lines, 0, DefaultAccuracy); got != nil {
		t.Errorf("got %v for n = 0, want nil", got)
	}
	if got := Resample(lines, MaxSamples+1, DefaultAccuracy); got != nil {
		t.Errorf("got %d points beyond the limit, want nil", len(got))
	}
	inf := []Line{{Pt(0, 0), Pt(math.Inf(1), 0)}}
	if got := Resample(inf, 4, DefaultAccuracy); got != nil {
		t.Errorf("got %v for an infinite chain, want nil", got)
	}
	nan := []CubicBez{{Pt(0, 0), Pt(1, math.NaN()), Pt(2, 0), Pt(3, 0)}}
	if got := Resample(nan, 4, DefaultAccuracy); got != nil {
		t.Errorf("got %v for a NaN chain, want nil", got)
	}
}

func TestResampleCubic(t *testing.T) {
	// y = x^2 / 100
	c := CubicBez{
		Pt(0.0, 0.0),
		Pt(100.0/3.0, 0.0),
		Pt(200.0/3.0, 100.0/3.0),
		Pt(100.0, 100.0),
	}
	const n = 10
	const accuracy = 1e-9
	got := Resample([]CubicBez{c}, n, accuracy)
	total := c.Arclen(accuracy)
	for i, pt := range got {
		ts := SolveForArclen(c, total*float64(i)/n, accuracy)
		assertNear(t, pt, c.Eval(ts), 1e-9)
		// y = x²/100 holds for every sample.
		diff(t, pt.X*pt.X/100, pt.Y, cmpopts.EquateApprox(0, 1e-9))
	}
}

func TestPointAtArclen(t *testing.T) {
	lines := []Line{
		{Pt(0, 0), Pt(10, 0)},
		{Pt(10, 0), Pt(10, 10)},
	}
	diff(t, Pt(0, 0), PointAtArclen(lines, -5, DefaultAccuracy))
	diff(t, Pt(10, 10), PointAtArclen(lines, 25, DefaultAccuracy))
	diff(t, Pt(10, 2.5), PointAtArclen(lines, 12.5, DefaultAccuracy))
	diff(t, Point{}, PointAtArclen([]Line(nil), 1, DefaultAccuracy))
}

func TestResamplePath(t *testing.T) {
	var p BezPath
	p.MoveTo(Pt(0, 0))
	p.LineTo(Pt(3, 4))
	p.QuadTo(Pt(3, 4), Pt(3, 14))
	got := ResamplePath(p, 3, 1e-9)
	want := []Point{Pt(0, 0), Pt(3, 4), Pt(3, 9), Pt(3, 14)}
	diff(t, want, got, cmpopts.EquateApprox(0, 1e-6))
}
