package splines

// Rect is an axis-aligned rectangle, such as the drawing surface control
// points are placed on.
type Rect struct {
	X0, Y0 float64
	X1, Y1 float64
}

// NewRectFromPoints returns a rectangle with the extents of p0 and p1, ensuring that
// width and height are non-negative.
func NewRectFromPoints(p0, p1 Point) Rect {
	return Rect{p0.X, p0.Y, p1.X, p1.Y}.Abs()
}

// Bounds returns the smallest rectangle enclosing all points. It returns the
// zero rectangle for no points.
func Bounds(points ...[]Point) Rect {
	var r Rect
	first := true
	for _, pts := range points {
		for _, pt := range pts {
			if first {
				r = Rect{pt.X, pt.Y, pt.X, pt.Y}
				first = false
				continue
			}
			r = r.UnionPoint(pt)
		}
	}
	return r
}

// Abs returns a new rectangle with the same extents as r, but ensuring that width and
// height are non-negative.
func (r Rect) Abs() Rect {
	return Rect{
		X0: min(r.X0, r.X1),
		Y0: min(r.Y0, r.Y1),
		X1: max(r.X0, r.X1),
		Y1: max(r.Y0, r.Y1),
	}
}

// Width returns the rectangle's width, defined as X1 − X0. It may be negative.
func (r Rect) Width() float64 {
	return r.X1 - r.X0
}

// Height returns the rectangle's height, defined as Y1 − Y0. It may be negative.
func (r Rect) Height() float64 {
	return r.Y1 - r.Y0
}

// Clamp returns the point of the rectangle (edges included) closest to pt.
func (r Rect) Clamp(pt Point) Point {
	r = r.Abs()
	return Point{
		X: min(max(pt.X, r.X0), r.X1),
		Y: min(max(pt.Y, r.Y0), r.Y1),
	}
}

// UnionPoint computes the union with one point.
//
// This method includes the perimeter of zero-area rectangles.
// Thus, a succession of UnionPoint operations on a series of
// points yields their enclosing rectangle.
//
// Results are valid only if width and height are non-negative.
func (r Rect) UnionPoint(pt Point) Rect {
	return Rect{
		X0: min(r.X0, pt.X),
		Y0: min(r.Y0, pt.Y),
		X1: max(r.X1, pt.X),
		Y1: max(r.Y1, pt.Y),
	}
}

// Inflate returns a new rectangle, expanded by width on the left and right and
// by height on the top and bottom.
//
// Results are valid only if width and height are non-negative.
func (r Rect) Inflate(width, height float64) Rect {
	return Rect{
		X0: r.X0 - width,
		Y0: r.Y0 - height,
		X1: r.X1 + width,
		Y1: r.Y1 + height,
	}
}

// Transform returns the bounding box of the rectangle after applying aff.
func (r Rect) Transform(aff Affine) Rect {
	p0 := Pt(r.X0, r.Y0).Transform(aff)
	p1 := Pt(r.X1, r.Y0).Transform(aff)
	p2 := Pt(r.X0, r.Y1).Transform(aff)
	p3 := Pt(r.X1, r.Y1).Transform(aff)
	return NewRectFromPoints(p0, p1).UnionPoint(p2).UnionPoint(p3)
}
