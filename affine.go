package splines

// Affine describes an affine transform via coefficients.
//
// If the coefficients are (a, b, c, d, e, f), then the resulting
// transformation represents this augmented matrix:
//
//	| a c e |
//	| b d f |
//	| 0 0 1 |
//
// The idea is that (A * B) * v == A * (B * v).
//
// Curves are evaluated in the coordinate space of the drawing surface. Affine
// transforms are for consumers that need another space, such as CAD tools
// that expect y to point up.
type Affine struct {
	N0, N1, N2, N3, N4, N5 float64
}

// Identity is the identity transform.
var Identity = Affine{1, 0, 0, 1, 0, 0}

// FlipY is a transform that is flipped on the y-axis. Useful for converting
// between y-up and y-down spaces.
var FlipY = Scale(1, -1)

// Scale creates an affine transform representing non-uniform scaling with
// different scale values for x and y
func Scale(x, y float64) Affine {
	return Affine{x, 0, 0, y, 0, 0}
}

// Translate creates an affine transform representing translation.
func Translate(v Vec2) Affine {
	return Affine{1, 0, 0, 1, v.X, v.Y}
}

// FlipYWithin returns the transform mapping y to height − y, which turns a
// y-down surface of the given height into a y-up space with the origin at
// the bottom left.
func FlipYWithin(height float64) Affine {
	return Translate(Vec(0, height)).Mul(FlipY)
}

func (aff Affine) Mul(o Affine) Affine {
	return Affine{
		aff.N0*o.N0 + aff.N2*o.N1,
		aff.N1*o.N0 + aff.N3*o.N1,
		aff.N0*o.N2 + aff.N2*o.N3,
		aff.N1*o.N2 + aff.N3*o.N3,
		aff.N0*o.N4 + aff.N2*o.N5 + aff.N4,
		aff.N1*o.N4 + aff.N3*o.N5 + aff.N5,
	}
}

// TransformPoints applies aff to every point and returns the results in a new
// slice.
func TransformPoints(points []Point, aff Affine) []Point {
	out := make([]Point, len(points))
	for i, pt := range points {
		out[i] = pt.Transform(aff)
	}
	return out
}
