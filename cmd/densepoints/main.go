// Command densepoints turns control points into dense point sequences.
//
// It reads control points as CSV from each file argument, or from standard
// input if there are none, fits a curve through each file's points, and
// writes the resulting points to standard output:
//
//	densepoints -kind natural -samples 200 -format openscad outline.csv
//
// Every input becomes one set. Settings can also be read from a TOML or YAML
// file with -config; flags take precedence over the file.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"honnef.co/go/splines"
	"honnef.co/go/splines/pointio"
	"honnef.co/go/splines/session"
)

func main() {
	if err := run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(2)
		}
		os.Exit(1)
	}
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("densepoints", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() {
		fmt.Fprintf(fs.Output(), "Usage: densepoints [flags] [file.csv ...]\n")
		fs.PrintDefaults()
	}

	fl := defaultOptions()
	var (
		configPath string
		verbose    bool
	)
	fs.StringVar(&configPath, "config", "", "Read settings from TOML or YAML `file`")
	fs.TextVar(&fl.Kind, "kind", fl.Kind, "Curve `kind`: quadratic, cubic, bernstein, natural, catmull-rom or bspline")
	fs.IntVar(&fl.Degree, "degree", fl.Degree, "Degree of a bernstein curve")
	fs.Float64Var(&fl.Step, "step", fl.Step, "Parameter step for Bézier kinds (0 for the default)")
	fs.BoolVar(&fl.Even, "even", fl.Even, "Space samples of Bézier kinds evenly by arc length")
	fs.IntVar(&fl.Samples, "samples", fl.Samples, "Number of arc-length intervals for spline kinds (0 for the default)")
	fs.Float64Var(&fl.Accuracy, "accuracy", fl.Accuracy, "Arc-length accuracy (0 for the default)")
	fs.TextVar(&fl.Format, "format", fl.Format, "Output `format`: csv, xy, sets, openscad, cadquery or svg")
	fs.BoolVar(&fl.FlipY, "flip-y", fl.FlipY, "Flip output to y-up coordinates")
	fs.Float64Var(&fl.Height, "height", fl.Height, "Height of the drawing surface for -flip-y")
	fs.BoolVar(&fl.Chain, "chain", fl.Chain, "Start each input's curve at the end of the previous one")
	fs.BoolVar(&verbose, "v", false, "Be verbose")
	if err := fs.Parse(args); err != nil {
		return err
	}

	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	log := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	opts := defaultOptions()
	if configPath != "" {
		if err := loadOptions(configPath, &opts); err != nil {
			log.Error("couldn't read configuration", "error", err)
			return err
		}
	}
	fs.Visit(func(f *flag.Flag) { opts.override(f.Name, &fl) })

	if err := process(opts, fs.Args(), stdin, stdout, log); err != nil {
		log.Error("failed", "error", err)
		return err
	}
	return nil
}

type input struct {
	name string
	r    io.Reader
}

func openInputs(names []string, stdin io.Reader) ([]input, func(), error) {
	if len(names) == 0 {
		return []input{{"<stdin>", stdin}}, func() {}, nil
	}
	var files []*os.File
	closeAll := func() {
		for _, f := range files {
			f.Close()
		}
	}
	inputs := make([]input, 0, len(names))
	for _, name := range names {
		if name == "-" {
			inputs = append(inputs, input{"<stdin>", stdin})
			continue
		}
		f, err := os.Open(name)
		if err != nil {
			closeAll()
			return nil, nil, err
		}
		files = append(files, f)
		inputs = append(inputs, input{name, f})
	}
	return inputs, closeAll, nil
}

func process(opts options, names []string, stdin io.Reader, stdout io.Writer, log *slog.Logger) error {
	inputs, closeAll, err := openInputs(names, stdin)
	if err != nil {
		return err
	}
	defer closeAll()

	s, err := session.New(opts.curve(), session.WithLogger(log), session.WithMaxSets(len(inputs)))
	if err != nil {
		return err
	}
	for _, in := range inputs {
		pts, err := pointio.ReadPoints(in.r)
		if err != nil {
			return fmt.Errorf("%s: %w", in.name, err)
		}
		for i, pt := range pts {
			if err := s.Add(pt); err != nil {
				if errors.Is(err, session.ErrFull) {
					log.Warn("ignoring extra control points", "input", in.name, "ignored", len(pts)-i)
					break
				}
				return fmt.Errorf("%s: %w", in.name, err)
			}
		}
		set, err := s.Finish(opts.Chain)
		if err != nil {
			return fmt.Errorf("%s: %w", in.name, err)
		}
		log.Debug("evaluated curve", "input", in.name, "kind", opts.Kind, "control", len(set.Control), "dense", len(set.Dense))
	}

	sets := s.Sets()
	if opts.FlipY {
		aff := splines.FlipYWithin(opts.Height)
		for i := range sets {
			sets[i].Control = splines.TransformPoints(sets[i].Control, aff)
			sets[i].Dense = splines.TransformPoints(sets[i].Dense, aff)
		}
	}
	return pointio.Write(stdout, opts.Format, sets)
}
