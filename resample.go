package splines

import (
	"math"
	"sort"
)

// arclens returns the running total of segment lengths: cum[0] = 0 and
// cum[i+1] = cum[i] + length of segs[i].
func arclens[S Segment](segs []S, accuracy float64) []float64 {
	cum := make([]float64, len(segs)+1)
	for i, s := range segs {
		cum[i+1] = cum[i] + s.Arclen(accuracy)
	}
	return cum
}

// pointAt returns the point at distance s along the chain of segments with
// running lengths cum. Zero-length segments are never selected, as a
// positive s is always found in the first segment whose end reaches it.
func pointAt[S Segment](segs []S, cum []float64, s float64, accuracy float64) Point {
	if s <= 0 {
		return segs[0].Start()
	}
	if s >= cum[len(cum)-1] {
		return segs[len(segs)-1].End()
	}
	i := sort.SearchFloat64s(cum[1:], s)
	i = min(i, len(segs)-1)
	t := SolveForArclen(segs[i], s-cum[i], accuracy)
	return segs[i].Eval(t)
}

// PointAtArclen returns the point at distance s along a chain of connected
// segments, measured from the start of the first. Distances outside the
// chain are clamped to its ends. It returns the zero point for an empty
// chain.
func PointAtArclen[S Segment](segs []S, s float64, accuracy float64) Point {
	if len(segs) == 0 {
		return Point{}
	}
	accuracy = clampAccuracy(accuracy)
	return pointAt(segs, arclens(segs, accuracy), s, accuracy)
}

// Resample returns n+1 points evenly spaced by arc length along a chain of
// connected segments, starting at the start of the first segment and ending
// at the end of the last.
//
// The path is measured once, each target distance is located with a binary
// search over the running segment lengths, and the parameter within the
// segment is found with [SolveForArclen]. A chain of total length zero
// resamples to n+1 copies of its start point. It returns nil for an empty
// chain, n outside [1, MaxSamples], or a chain whose length isn't finite.
// Accuracies below [MinAccuracy] are raised to it.
func Resample[S Segment](segs []S, n int, accuracy float64) []Point {
	if len(segs) == 0 || n < 1 || n > MaxSamples {
		return nil
	}
	accuracy = clampAccuracy(accuracy)
	cum := arclens(segs, accuracy)
	total := cum[len(cum)-1]
	if math.IsInf(total, 0) || math.IsNaN(total) {
		return nil
	}
	out := make([]Point, n+1)
	if total == 0 {
		for i := range out {
			out[i] = segs[0].Start()
		}
		return out
	}
	out[0] = segs[0].Start()
	for i := 1; i < n; i++ {
		out[i] = pointAt(segs, cum, total*float64(i)/float64(n), accuracy)
	}
	out[n] = segs[len(segs)-1].End()
	return out
}

// ResamplePath is like [Resample], for the drawn segments of a path.
func ResamplePath(p BezPath, n int, accuracy float64) []Point {
	var segs []Segment
	for seg := range p.Segments() {
		segs = append(segs, seg)
	}
	return Resample(segs, n, accuracy)
}
