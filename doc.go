// Package splines evaluates Bézier curves and splines defined by a sequence of
// 2D control points, and turns them into dense point sequences.
//
// # Curve kinds
//
// A [Kind] selects how control points become a curve:
//
//   - [QuadraticBezier] and [CubicBezier] use exactly three and four control
//     points.
//   - [BernsteinBezier] is a Bézier of arbitrary degree, evaluated in Bernstein
//     form with exact binomial coefficients (see [Binomial]). Degrees up to
//     [MaxDegree] are supported.
//   - [NaturalCubicSpline] and [CatmullRomSpline] interpolate every control
//     point. [UniformBSpline] approximates the control polygon.
//
// # Sampling
//
// Béziers are sampled at evenly spaced parameter values, see [EvalBezier].
// Splines are sampled at points evenly spaced by arc length, see
// [EvalSpline]. [Config] bundles a kind with its sampling parameters and is the
// entry point for most callers.
//
// Evaluation never fails loudly on incomplete input. An editor adds control
// points one at a time, and a curve with too few points simply has no
// samples yet. Invalid configurations, on the other hand, are reported as
// errors.
//
// # Segments and paths
//
// Every spline is converted into a chain of cubic Béziers ([CubicBez]) before
// it is measured. [Line], [QuadBez] and [CubicBez] implement [Segment], which
// is what [Resample] operates on. Arc lengths are computed with Legendre-Gauss
// quadrature, and the parameter at a given arc length is found with the ITP
// method, see [SolveForArclen].
//
// [BezPath] holds a curve in the form a renderer draws it, and can be written
// as SVG path data with [WriteSVG].
//
// # Literature
//
//   - [A Primer on Bézier Curves]
//   - [An Enhancement of the Bisection Method Average Performance Preserving Minmax Optimality] by Oliveira and Takahashi
//   - [The NURBS Book] by Piegl and Tiller, for the Cox–de Boor recursion used by [BasisFunc]
//
// [A Primer on Bézier Curves]: https://pomax.github.io/bezierinfo/
// [An Enhancement of the Bisection Method Average Performance Preserving Minmax Optimality]: https://dl.acm.org/doi/10.1145/3423597
// [The NURBS Book]: https://doi.org/10.1007/978-3-642-59223-2
package splines
