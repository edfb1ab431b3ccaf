package splines

import (
	"math"
	"testing"
)

func TestPointArithmetic(t *testing.T) {
	diff(t, Pt(0, 0).Translate(Vec(-10, 0)), Pt(-10, 0))
	diff(t, Vec(3, -4), Pt(4, 0).Sub(Pt(1, 4)))
	diff(t, Pt(5, 10), Pt(0, 0).Midpoint(Pt(10, 20)))
	diff(t, Pt(2.5, 5), Pt(0, 0).Lerp(Pt(10, 20), 0.25))
}

func TestPointDistance(t *testing.T) {
	p3 := Pt(-11, 1)
	p4 := Pt(-7, -2)
	if d := p3.DistanceSquared(p4); d != 25 {
		t.Errorf("got squared distance %v, want 25", d)
	}
}

func TestPointFinite(t *testing.T) {
	if !Pt(1, 2).IsFinite() {
		t.Error("point should be finite")
	}
	if Pt(math.Inf(1), 2).IsFinite() || !Pt(math.Inf(1), 2).IsInf() {
		t.Error("point should be infinite")
	}
	if !Pt(1, math.NaN()).IsNaN() {
		t.Error("point should be NaN")
	}
}
