package splines

// Line represents a line segment. The control polygon of a curve is a
// sequence of lines.
type Line struct {
	/// The line's start point.
	P0 Point
	/// The line's end point.
	P1 Point
}

var _ Segment = Line{}
var _ ArclenSolver = Line{}

// Length returns the length of the line.
func (l Line) Length() float64 {
	return l.P1.Sub(l.P0).Hypot()
}

// Arclen returns the length of the line
func (l Line) Arclen(accuracy float64) float64 {
	return l.Length()
}

// SolveForArclen returns the parameter at the given distance from P0. A line
// of zero length always reports 0.
func (l Line) SolveForArclen(arclen float64, accuracy float64) float64 {
	n := l.Length()
	if n == 0 {
		return 0
	}
	return min(max(arclen/n, 0), 1)
}

func (l Line) Eval(t float64) Point {
	return l.P0.Lerp(l.P1, t)
}

func (l Line) Start() Point { return l.P0 }
func (l Line) End() Point   { return l.P1 }

func (l Line) Subsegment(start, end float64) Line {
	return Line{l.Eval(start), l.Eval(end)}
}

func (l Line) SubsegmentCurve(start, end float64) ParametricCurve {
	return l.Subsegment(start, end)
}

// Cubic returns the line as a degree-raised cubic Bézier.
func (l Line) Cubic() CubicBez {
	return CubicBez{
		l.P0,
		l.P0.Lerp(l.P1, 1.0/3.0),
		l.P0.Lerp(l.P1, 2.0/3.0),
		l.P1,
	}
}

// ControlPolygon returns the lines connecting consecutive control points, in
// order. It is empty for fewer than two points.
func ControlPolygon(points []Point) []Line {
	if len(points) < 2 {
		return nil
	}
	out := make([]Line, 0, len(points)-1)
	for i := 1; i < len(points); i++ {
		out = append(out, Line{points[i-1], points[i]})
	}
	return out
}
