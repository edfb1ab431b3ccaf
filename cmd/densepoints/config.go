package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"honnef.co/go/splines"
	"honnef.co/go/splines/pointio"
)

// options is the complete configuration of a run. It can be read from a TOML
// or YAML file, and flags override individual settings.
type options struct {
	Kind     splines.Kind   `toml:"kind" yaml:"kind"`
	Degree   int            `toml:"degree" yaml:"degree"`
	Step     float64        `toml:"step" yaml:"step"`
	Even     bool           `toml:"even_spacing" yaml:"even_spacing"`
	Samples  int            `toml:"samples" yaml:"samples"`
	Accuracy float64        `toml:"accuracy" yaml:"accuracy"`
	Format   pointio.Format `toml:"format" yaml:"format"`
	// FlipY converts output from the y-down drawing surface to y-up CAD
	// coordinates, mirroring within Height.
	FlipY  bool    `toml:"flip_y" yaml:"flip_y"`
	Height float64 `toml:"height" yaml:"height"`
	// Chain starts every input's curve at the end of the previous one.
	Chain bool `toml:"chain" yaml:"chain"`
}

func defaultOptions() options {
	return options{
		Kind:   splines.CatmullRomSpline,
		Format: pointio.FormatCSV,
	}
}

func (o options) curve() splines.Config {
	return splines.Config{
		Kind:        o.Kind,
		Degree:      o.Degree,
		Step:        o.Step,
		EvenSpacing: o.Even,
		Samples:     o.Samples,
		Accuracy:    o.Accuracy,
	}
}

// loadOptions reads a configuration file into o. Files ending in .yaml or
// .yml are YAML, everything else is TOML. Keys missing from the file keep
// their current value; unknown keys are an error.
func loadOptions(path string, o *options) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		dec := yaml.NewDecoder(f)
		dec.KnownFields(true)
		err = dec.Decode(o)
	default:
		err = toml.NewDecoder(f).DisallowUnknownFields().Decode(o)
	}
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	return nil
}

// override copies the setting controlled by the named flag from fl to o.
func (o *options) override(name string, fl *options) {
	switch name {
	case "kind":
		o.Kind = fl.Kind
	case "degree":
		o.Degree = fl.Degree
	case "step":
		o.Step = fl.Step
	case "even":
		o.Even = fl.Even
	case "samples":
		o.Samples = fl.Samples
	case "accuracy":
		o.Accuracy = fl.Accuracy
	case "format":
		o.Format = fl.Format
	case "flip-y":
		o.FlipY = fl.FlipY
	case "height":
		o.Height = fl.Height
	case "chain":
		o.Chain = fl.Chain
	}
}
