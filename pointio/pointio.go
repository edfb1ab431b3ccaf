// Package pointio reads control points and writes dense point sequences in
// the formats consumed by spreadsheets and CAD tools.
package pointio

import (
	"bufio"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"honnef.co/go/splines"
	"honnef.co/go/splines/session"
)

var (
	ErrFieldCount    = errors.New("expected x,y or index,x,y")
	ErrNotFinite     = errors.New("coordinate is not a finite number")
	ErrUnknownFormat = errors.New("unknown output format")
)

// ReadPoints reads points from CSV. Each row is either x,y or index,x,y; the
// index is ignored and points are returned in file order. A first row that
// doesn't parse as numbers is taken to be a header. Lines starting with # are
// comments. Infinite and NaN coordinates are rejected with [ErrNotFinite].
func ReadPoints(r io.Reader) ([]splines.Point, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true
	cr.Comment = '#'

	var pts []splines.Point
	for row := 0; ; row++ {
		rec, err := cr.Read()
		if err == io.EOF {
			return pts, nil
		}
		if err != nil {
			return nil, err
		}
		line, _ := cr.FieldPos(0)
		pt, err := parseRecord(rec)
		if err != nil {
			if row == 0 && !errors.Is(err, ErrFieldCount) && !errors.Is(err, ErrNotFinite) {
				continue
			}
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		pts = append(pts, pt)
	}
}

func parseRecord(rec []string) (splines.Point, error) {
	switch len(rec) {
	case 2:
	case 3:
		rec = rec[1:]
	default:
		return splines.Point{}, fmt.Errorf("%w, got %d fields", ErrFieldCount, len(rec))
	}
	x, err := strconv.ParseFloat(strings.TrimSpace(rec[0]), 64)
	if err != nil {
		return splines.Point{}, err
	}
	y, err := strconv.ParseFloat(strings.TrimSpace(rec[1]), 64)
	if err != nil {
		return splines.Point{}, err
	}
	pt := splines.Pt(x, y)
	if !pt.IsFinite() {
		return splines.Point{}, fmt.Errorf("%w: %s", ErrNotFinite, pt)
	}
	return pt, nil
}

func fixed(v float64) string {
	return strconv.FormatFloat(v, 'f', 5, 64)
}

func shortest(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// WriteIndexed writes points as CSV with a point,x,y header and 1-based
// indices.
func WriteIndexed(w io.Writer, pts []splines.Point) error {
	cw := csv.NewWriter(w)
	cw.Write([]string{"point", "x", "y"})
	for i, pt := range pts {
		cw.Write([]string{strconv.Itoa(i + 1), fixed(pt.X), fixed(pt.Y)})
	}
	cw.Flush()
	return cw.Error()
}

// WriteXY writes points as CSV rows of x,y without a header.
func WriteXY(w io.Writer, pts []splines.Point) error {
	cw := csv.NewWriter(w)
	for _, pt := range pts {
		cw.Write([]string{fixed(pt.X), fixed(pt.Y)})
	}
	cw.Flush()
	return cw.Error()
}

// WriteSets writes finished sets as CSV with a Set,Type,X,Y header. Each set
// lists its control points before its dense points.
func WriteSets(w io.Writer, sets []session.Set) error {
	cw := csv.NewWriter(w)
	cw.Write([]string{"Set", "Type", "X", "Y"})
	for i, set := range sets {
		name := fmt.Sprintf("Set %d", i+1)
		for _, pt := range set.Control {
			cw.Write([]string{name, "Control", fixed(pt.X), fixed(pt.Y)})
		}
		for _, pt := range set.Dense {
			cw.Write([]string{name, "Dense", fixed(pt.X), fixed(pt.Y)})
		}
	}
	cw.Flush()
	return cw.Error()
}

func writeList(w io.Writer, pts []splines.Point, open, format, close string) error {
	bw := bufio.NewWriter(w)
	bw.WriteString(open)
	for i, pt := range pts {
		if i > 0 {
			bw.WriteString(", ")
		}
		fmt.Fprintf(bw, format, shortest(pt.X), shortest(pt.Y))
	}
	bw.WriteString(close)
	return bw.Flush()
}

// WriteOpenSCAD writes points as an OpenSCAD vector assignment,
// points = [[x, y], ...];
func WriteOpenSCAD(w io.Writer, pts []splines.Point) error {
	return writeList(w, pts, "points = [", "[%s, %s]", "];\n")
}

// WriteCadQuery writes points as a Python list of tuples for CadQuery,
// points = [(x, y), ...]
func WriteCadQuery(w io.Writer, pts []splines.Point) error {
	return writeList(w, pts, "points = [", "(%s, %s)", "]\n")
}

// SVGOptions controls [WriteSVG].
type SVGOptions struct {
	// Margin is added around the bounding box of all points.
	Margin float64
	// MaxPrecision is passed on to [splines.WriteSVG].
	MaxPrecision int
}

// WriteSVG writes an SVG document showing every set's control polygon and
// dense points.
func WriteSVG(w io.Writer, sets []session.Set, opts SVGOptions) error {
	var all [][]splines.Point
	for _, set := range sets {
		all = append(all, set.Control, set.Dense)
	}
	box := splines.Bounds(all...).Inflate(opts.Margin, opts.Margin)

	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, `<svg viewBox="%s %s %s %s" xmlns="http://www.w3.org/2000/svg">`+"\n",
		shortest(box.X0), shortest(box.Y0), shortest(box.Width()), shortest(box.Height()))
	path := func(pts []splines.Point, color string) {
		if len(pts) < 2 {
			return
		}
		bw.WriteString(`<path d="`)
		splines.WriteSVG(bw, polyline(pts).Elements(), splines.SVGOptions{MaxPrecision: opts.MaxPrecision})
		fmt.Fprintf(bw, `" fill="none" stroke="%s" />`+"\n", color)
	}
	for _, set := range sets {
		path(set.Control, "red")
		path(set.Dense, "blue")
	}
	bw.WriteString("</svg>\n")
	return bw.Flush()
}

func polyline(pts []splines.Point) splines.BezPath {
	var p splines.BezPath
	p.MoveTo(pts[0])
	for _, pt := range pts[1:] {
		p.LineTo(pt)
	}
	return p
}

type Format int

const (
	FormatCSV Format = iota + 1
	FormatXY
	FormatSets
	FormatOpenSCAD
	FormatCadQuery
	FormatSVG
)

var formatNames = [...]string{
	FormatCSV:      "csv",
	FormatXY:       "xy",
	FormatSets:     "sets",
	FormatOpenSCAD: "openscad",
	FormatCadQuery: "cadquery",
	FormatSVG:      "svg",
}

func (f Format) String() string {
	if f >= FormatCSV && f <= FormatSVG {
		return formatNames[f]
	}
	return fmt.Sprintf("Format(%d)", int(f))
}

func ParseFormat(s string) (Format, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for f, name := range formatNames {
		if name != "" && name == s {
			return Format(f), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownFormat, s)
}

func (f Format) MarshalText() ([]byte, error) {
	if f < FormatCSV || f > FormatSVG {
		return nil, fmt.Errorf("%w: %d", ErrUnknownFormat, int(f))
	}
	return []byte(f.String()), nil
}

func (f *Format) UnmarshalText(b []byte) error {
	v, err := ParseFormat(string(b))
	if err != nil {
		return err
	}
	*f = v
	return nil
}

// Write writes sets in format f. Formats that hold a single point sequence
// get the dense points of all sets, concatenated.
func Write(w io.Writer, f Format, sets []session.Set) error {
	var dense []splines.Point
	for _, set := range sets {
		dense = append(dense, set.Dense...)
	}
	switch f {
	case FormatCSV:
		return WriteIndexed(w, dense)
	case FormatXY:
		return WriteXY(w, dense)
	case FormatSets:
		return WriteSets(w, sets)
	case FormatOpenSCAD:
		return WriteOpenSCAD(w, dense)
	case FormatCadQuery:
		return WriteCadQuery(w, dense)
	case FormatSVG:
		return WriteSVG(w, sets, SVGOptions{Margin: 10, MaxPrecision: 3})
	default:
		return fmt.Errorf("%w: %v", ErrUnknownFormat, f)
	}
}
