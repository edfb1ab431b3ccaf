package splines

import (
	"errors"
	"fmt"
)

var (
	// ErrInsufficientPoints reports that a curve isn't defined yet because
	// it has fewer control points than its kind requires.
	ErrInsufficientPoints = errors.New("insufficient control points")
	ErrDegreeTooLarge     = fmt.Errorf("Bézier degree too large: %w", ErrOverflow)
	ErrInvalidStep        = fmt.Errorf("step must be in [1/%d, 1]", MaxSamples)
	ErrInvalidSamples     = fmt.Errorf("number of samples must be in [0, %d]", MaxSamples)
	ErrInvalidAccuracy    = fmt.Errorf("accuracy must be at least %g", MinAccuracy)
)

// Config describes how a sequence of control points is turned into a curve
// and sampled. The zero values of Step, Samples and Accuracy select
// [DefaultStep], [DefaultSamples] and [DefaultAccuracy].
type Config struct {
	Kind Kind
	// Degree is the degree of a [BernsteinBezier] curve, which consumes
	// Degree+1 control points. It is ignored for other kinds.
	Degree int
	// Step is the parameter increment for Bézier kinds.
	Step float64
	// EvenSpacing samples Bézier kinds evenly by arc length, like the
	// spline kinds, instead of evenly in t. The number of samples is still
	// determined by Step.
	EvenSpacing bool
	// Samples is the number of arc-length intervals for spline kinds.
	Samples int
	// Accuracy bounds the error of arc-length computations. Values below
	// [MinAccuracy] are rejected.
	Accuracy float64
}

// Validate reports whether c is a usable configuration. Unlike evaluation,
// which silently produces nothing for incomplete input, an invalid
// configuration is an error the caller has to deal with.
func (c Config) Validate() error {
	if !c.Kind.Valid() {
		return fmt.Errorf("%w: %d", ErrUnknownKind, int(c.Kind))
	}
	if c.Kind == BernsteinBezier {
		if err := checkDegree(c.Degree); err != nil {
			return err
		}
	}
	if c.Step != 0 && !validStep(c.Step) {
		return fmt.Errorf("%w: got %g", ErrInvalidStep, c.Step)
	}
	if c.Samples < 0 || c.Samples > MaxSamples {
		return fmt.Errorf("%w: got %d", ErrInvalidSamples, c.Samples)
	}
	if c.Accuracy != 0 && !(c.Accuracy >= MinAccuracy) {
		return fmt.Errorf("%w: got %g", ErrInvalidAccuracy, c.Accuracy)
	}
	return nil
}

// MinPoints returns the number of control points required before the curve
// is defined.
func (c Config) MinPoints() int {
	return c.Kind.MinPoints(c.Degree)
}

// MaxPoints returns the number of control points the curve consumes, or 0 if
// there is no limit.
func (c Config) MaxPoints() int {
	return c.Kind.MaxPoints(c.Degree)
}

// Check validates c and reports [ErrInsufficientPoints] if points doesn't
// define a curve yet.
func (c Config) Check(points []Point) error {
	if err := c.Validate(); err != nil {
		return err
	}
	if len(points) < c.MinPoints() {
		return fmt.Errorf("%w: %s needs %d, have %d",
			ErrInsufficientPoints, c.Kind, c.MinPoints(), len(points))
	}
	return nil
}

func (c Config) step() float64 {
	if c.Step == 0 {
		return DefaultStep
	}
	return c.Step
}

func (c Config) samples() int {
	if c.Samples == 0 {
		return DefaultSamples
	}
	return c.Samples
}

func (c Config) accuracy() float64 {
	if c.Accuracy == 0 {
		return DefaultAccuracy
	}
	return c.Accuracy
}

// curvePoints returns the control points the curve actually consumes.
func (c Config) curvePoints(points []Point) []Point {
	if n := c.MaxPoints(); n > 0 && len(points) > n {
		return points[:n]
	}
	return points
}

// Sample evaluates the configured curve. It returns an error only if c is
// invalid; with too few points it returns an empty sequence, like
// [EvalBezier] and [EvalSpline].
func (c Config) Sample(points []Point) ([]Point, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	if len(points) < c.MinPoints() {
		return nil, nil
	}
	points = c.curvePoints(points)
	if c.Kind.IsBezier() {
		if c.EvenSpacing {
			if !allFinite(points) {
				return nil, nil
			}
			path := bezierPath(points, c.Kind, c.step())
			return ResamplePath(path, sampleCount(c.step())-1, c.accuracy()), nil
		}
		return EvalBezier(points, c.Kind, c.step()), nil
	}
	return evalSpline(points, c.Kind, c.samples(), c.accuracy()), nil
}

// Path returns the configured curve as a Bézier path for drawing. Like
// [Config.Sample], it returns an empty path for too few points.
func (c Config) Path(points []Point) (BezPath, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	if len(points) < c.MinPoints() {
		return nil, nil
	}
	points = c.curvePoints(points)
	if c.Kind.IsBezier() {
		return bezierPath(points, c.Kind, c.step()), nil
	}
	return CubicPath(SplineCubics(points, c.Kind)), nil
}
