// Package session models an interactive curve editor: a user places control
// points on a drawing surface, drags them around, and collects the resulting
// dense point sequences into sets.
//
// A Session re-evaluates its curve synchronously after every mutation, so
// [Session.Samples] and [Session.Path] always reflect the current control
// points.
package session

import (
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"sync"

	"honnef.co/go/splines"
)

// DefaultHitRadius is the distance within which a control point can be picked
// up for dragging.
const DefaultHitRadius = 10

var (
	ErrFull            = errors.New("curve already has all its control points")
	ErrIndexOutOfRange = errors.New("control point index out of range")
	ErrAllSetsDone     = errors.New("all sets are finished")
	ErrNoCurve         = errors.New("no curve to finish")
)

// Set is a finished curve: the control points it was built from and its dense
// samples.
type Set struct {
	Control []splines.Point
	Dense   []splines.Point
}

type Option func(*Session)

// WithLogger sets the logger mutations are reported to. The default is
// [slog.Default].
func WithLogger(l *slog.Logger) Option {
	return func(s *Session) { s.log = l }
}

// WithBounds clamps all control points into r, the drawing surface.
func WithBounds(r splines.Rect) Option {
	return func(s *Session) {
		s.bounds = r.Abs()
		s.hasBounds = true
	}
}

// WithHitRadius sets the distance within which [Session.Nearest] finds
// control points.
func WithHitRadius(r float64) Option {
	return func(s *Session) { s.hitRadius = r }
}

// WithMaxSets limits the number of sets that can be finished. 0 means no
// limit.
func WithMaxSets(n int) Option {
	return func(s *Session) { s.maxSets = n }
}

// Session holds the control points of the curve being edited and the sets
// finished so far. It is safe for concurrent use.
type Session struct {
	mu sync.Mutex

	cfg       splines.Config
	log       *slog.Logger
	bounds    splines.Rect
	hasBounds bool
	hitRadius float64
	maxSets   int

	points []splines.Point
	// start is the point carried over from the previous set. Clear keeps it.
	start    *splines.Point
	samples  []splines.Point
	path     splines.BezPath
	err      error
	dragging int

	sets []Set
}

// New returns an empty session that builds curves according to cfg.
func New(cfg splines.Config, opts ...Option) (*Session, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	s := &Session{
		cfg:       cfg,
		log:       slog.Default(),
		hitRadius: DefaultHitRadius,
		dragging:  -1,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.log == nil {
		s.log = slog.Default()
	}
	s.update()
	return s, nil
}

func (s *Session) clamp(pt splines.Point) splines.Point {
	if s.hasBounds {
		return s.bounds.Clamp(pt)
	}
	return pt
}

// update re-evaluates the curve. The evaluator gets its own copy of the
// control points.
func (s *Session) update() {
	pts := slices.Clone(s.points)
	s.err = s.cfg.Check(pts)
	// The configuration was validated when it was set, so these can only
	// come back empty.
	s.samples, _ = s.cfg.Sample(pts)
	s.path, _ = s.cfg.Path(pts)
}

func (s *Session) done() bool {
	return s.maxSets > 0 && len(s.sets) >= s.maxSets
}

// Add appends a control point. Bézier kinds consume a fixed number of control
// points; once they are all placed, Add returns [ErrFull].
func (s *Session) Add(pt splines.Point) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.done() {
		s.log.Warn("rejected control point", "reason", "all sets finished")
		return ErrAllSetsDone
	}
	if n := s.cfg.MaxPoints(); n > 0 && len(s.points) >= n {
		s.log.Warn("rejected control point", "kind", s.cfg.Kind, "max", n)
		return fmt.Errorf("%w: %s takes %d points", ErrFull, s.cfg.Kind, n)
	}
	pt = s.clamp(pt)
	s.points = append(s.points, pt)
	s.log.Debug("added control point", "index", len(s.points)-1, "x", pt.X, "y", pt.Y)
	s.update()
	return nil
}

// Move moves control point i to pt.
func (s *Session) Move(i int, pt splines.Point) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.move(i, pt)
}

func (s *Session) move(i int, pt splines.Point) error {
	if i < 0 || i >= len(s.points) {
		s.log.Warn("rejected move", "index", i, "points", len(s.points))
		return fmt.Errorf("%w: %d not in [0, %d)", ErrIndexOutOfRange, i, len(s.points))
	}
	pt = s.clamp(pt)
	s.points[i] = pt
	s.log.Debug("moved control point", "index", i, "x", pt.X, "y", pt.Y)
	s.update()
	return nil
}

// Nearest returns the index of the control point closest to pt, if one lies
// within the hit radius. Ties go to the earlier point.
func (s *Session) Nearest(pt splines.Point) (int, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.nearest(pt)
}

func (s *Session) nearest(pt splines.Point) (int, bool) {
	best := -1
	bestDist := s.hitRadius * s.hitRadius
	for i, p := range s.points {
		if d := p.DistanceSquared(pt); d < bestDist {
			best, bestDist = i, d
		}
	}
	return best, best >= 0
}

// BeginDrag picks up the control point under pt. It reports whether there was
// one.
func (s *Session) BeginDrag(pt splines.Point) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	i, ok := s.nearest(pt)
	if !ok {
		return false
	}
	s.dragging = i
	s.log.Debug("began drag", "index", i)
	return true
}

// DragTo moves the control point picked up by [Session.BeginDrag] to pt. It
// reports whether a point is being dragged.
func (s *Session) DragTo(pt splines.Point) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.dragging < 0 {
		return false
	}
	return s.move(s.dragging, pt) == nil
}

// EndDrag drops the dragged control point, if any.
func (s *Session) EndDrag() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.dragging = -1
}

// Dragging returns the index of the control point being dragged.
func (s *Session) Dragging() (int, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.dragging, s.dragging >= 0
}

// Clear removes all control points of the current curve. A point carried over
// from the previous set stays.
func (s *Session) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.points = s.points[:0]
	if s.start != nil {
		s.points = append(s.points, *s.start)
	}
	s.dragging = -1
	s.log.Debug("cleared control points", "kept", len(s.points))
	s.update()
}

// SetConfig switches to another configuration. If the new kind consumes
// fewer control points than are placed, the excess points are dropped.
func (s *Session) SetConfig(cfg splines.Config) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := cfg.Validate(); err != nil {
		s.log.Warn("rejected configuration", "error", err)
		return err
	}
	s.cfg = cfg
	if n := cfg.MaxPoints(); n > 0 && len(s.points) > n {
		s.log.Debug("dropped control points", "kind", cfg.Kind, "dropped", len(s.points)-n)
		s.points = s.points[:n]
		if s.dragging >= n {
			s.dragging = -1
		}
	}
	s.update()
	return nil
}

func (s *Session) Config() splines.Config {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cfg
}

// Points returns a copy of the control points.
func (s *Session) Points() []splines.Point {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.points)
}

// Samples returns a copy of the dense points of the current curve. It is
// empty while the curve isn't defined, see [Session.Err].
func (s *Session) Samples() []splines.Point {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.samples)
}

// Path returns the current curve for drawing.
func (s *Session) Path() splines.BezPath {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.path)
}

// ControlPolygon returns the lines connecting the control points.
func (s *Session) ControlPolygon() []splines.Line {
	s.mu.Lock()
	defer s.mu.Unlock()
	return splines.ControlPolygon(s.points)
}

// Err reports why there is no curve, typically because it lacks control
// points. It returns nil if the curve is defined.
func (s *Session) Err() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.err
}

// Finish stores the current curve as a finished set and starts a new, empty
// curve. If carry is set, the new curve starts at the end of the finished
// one.
func (s *Session) Finish(carry bool) (Set, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.done() {
		return Set{}, ErrAllSetsDone
	}
	if len(s.samples) == 0 {
		s.log.Warn("rejected finish", "error", s.err)
		if s.err == nil {
			return Set{}, ErrNoCurve
		}
		return Set{}, fmt.Errorf("%w: %w", ErrNoCurve, s.err)
	}
	set := Set{
		Control: slices.Clone(s.points),
		Dense:   slices.Clone(s.samples),
	}
	s.sets = append(s.sets, set)
	s.log.Debug("finished set", "set", len(s.sets), "control", len(set.Control), "dense", len(set.Dense))

	s.points = nil
	s.start = nil
	s.dragging = -1
	if carry && !s.done() {
		end := set.Dense[len(set.Dense)-1]
		s.start = &end
		s.points = append(s.points, end)
	}
	s.update()
	return set, nil
}

// Done reports whether the maximum number of sets has been finished.
func (s *Session) Done() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.done()
}

// Sets returns the finished sets, in order.
func (s *Session) Sets() []Set {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Set, len(s.sets))
	for i, set := range s.sets {
		out[i] = Set{
			Control: slices.Clone(set.Control),
			Dense:   slices.Clone(set.Dense),
		}
	}
	return out
}

// AllSamples returns the dense points of all finished sets, concatenated.
func (s *Session) AllSamples() []splines.Point {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []splines.Point
	for _, set := range s.sets {
		out = append(out, set.Dense...)
	}
	return out
}
