package splines

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Kind selects the curve that is fitted to a sequence of control points.
type Kind int

const (
	// QuadraticBezier is a quadratic Bézier through exactly three control
	// points.
	QuadraticBezier Kind = iota + 1
	// CubicBezier is a cubic Bézier through exactly four control points.
	CubicBezier
	// BernsteinBezier is a Bézier of arbitrary degree, evaluated in
	// Bernstein form. Its degree is configured separately, see
	// [Config.Degree].
	BernsteinBezier
	// NaturalCubicSpline interpolates all control points with C² continuity
	// and zero curvature at both ends.
	NaturalCubicSpline
	// CatmullRomSpline interpolates all control points with tangents
	// estimated by central differences.
	CatmullRomSpline
	// UniformBSpline approximates the control polygon with a cubic uniform
	// B-spline.
	UniformBSpline
)

var (
	ErrUnknownKind   = errors.New("unknown curve kind")
	ErrInvalidDegree = errors.New("invalid Bézier degree")
)

var kindNames = [...]string{
	QuadraticBezier:    "quadratic",
	CubicBezier:        "cubic",
	BernsteinBezier:    "bernstein",
	NaturalCubicSpline: "natural",
	CatmullRomSpline:   "catmull-rom",
	UniformBSpline:     "bspline",
}

// Kinds lists all curve kinds in declaration order.
var Kinds = []Kind{
	QuadraticBezier,
	CubicBezier,
	BernsteinBezier,
	NaturalCubicSpline,
	CatmullRomSpline,
	UniformBSpline,
}

func (k Kind) String() string {
	if k.Valid() {
		return kindNames[k]
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Valid reports whether k is one of the declared kinds.
func (k Kind) Valid() bool {
	return k >= QuadraticBezier && k <= UniformBSpline
}

// IsBezier reports whether k is evaluated by [EvalBezier].
func (k Kind) IsBezier() bool {
	return k >= QuadraticBezier && k <= BernsteinBezier
}

// IsSpline reports whether k is evaluated by [EvalSpline].
func (k Kind) IsSpline() bool {
	return k >= NaturalCubicSpline && k <= UniformBSpline
}

// MinPoints returns the number of control points a curve of kind k needs
// before it is defined. The degree is only consulted for [BernsteinBezier].
// It returns 0 for invalid kinds or degrees.
func (k Kind) MinPoints(degree int) int {
	switch k {
	case QuadraticBezier:
		return 3
	case CubicBezier:
		return 4
	case BernsteinBezier:
		if degree < 1 {
			return 0
		}
		return degree + 1
	case NaturalCubicSpline, CatmullRomSpline, UniformBSpline:
		return 4
	default:
		return 0
	}
}

// MaxPoints returns the number of control points that a curve of kind k
// consumes, or 0 if it consumes any number. Béziers have a fixed number of
// control points; splines grow with every added point.
func (k Kind) MaxPoints(degree int) int {
	if k.IsBezier() {
		return k.MinPoints(degree)
	}
	return 0
}

// ParseKind parses the name of a kind, as returned by [Kind.String]. A few
// common aliases are accepted as well.
func ParseKind(s string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "quadratic", "quad", "quadratic-bezier":
		return QuadraticBezier, nil
	case "cubic", "cubic-bezier":
		return CubicBezier, nil
	case "bernstein", "bezier", "bezier-bernstein":
		return BernsteinBezier, nil
	case "natural", "cubic-spline", "natural-cubic":
		return NaturalCubicSpline, nil
	case "catmull-rom", "catmullrom":
		return CatmullRomSpline, nil
	case "bspline", "b-spline", "basis":
		return UniformBSpline, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownKind, s)
	}
}

func (k Kind) MarshalText() ([]byte, error) {
	if !k.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownKind, int(k))
	}
	return []byte(k.String()), nil
}

func (k *Kind) UnmarshalText(b []byte) error {
	v, err := ParseKind(string(b))
	if err != nil {
		return err
	}
	*k = v
	return nil
}

// ParseDegree parses a user-supplied Bernstein degree. Anything other than a
// positive integer no larger than [MaxDegree] is rejected.
func ParseDegree(s string) (int, error) {
	d, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("%w: %q is not an integer", ErrInvalidDegree, s)
	}
	if err := checkDegree(d); err != nil {
		return 0, err
	}
	return d, nil
}

func checkDegree(d int) error {
	if d < 1 {
		return fmt.Errorf("%w: %d is not positive", ErrInvalidDegree, d)
	}
	if d > MaxDegree {
		return fmt.Errorf("%w: %d exceeds the maximum of %d", ErrDegreeTooLarge, d, MaxDegree)
	}
	return nil
}
