/*
Package config holds the drawing parameters for quakes.

All parameters are fixed at startup. Clients get a Config from Default() or
from Load(), which overlays a YAML file onto the defaults. Components
receive the Config by value and never change it.

# BSD License

# Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the license file for more information.
*/
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"math"
	"os"

	"github.com/npillmayer/schuko/tracing"
	"gopkg.in/yaml.v3"
)

// tracer writes to trace with key 'quake'
func tracer() tracing.Trace {
	return tracing.Select("quake")
}

// ErrInvalidConfig indicates a parameter set for which quakes cannot be drawn.
var ErrInvalidConfig = errors.New("invalid quake configuration")

// Config collects the parameters for generating and rendering a quake.
// Angles are in radians, lengths in pixels.
type Config struct {
	NrSegments       int     `yaml:"nr_segments"`        // number of segments of the quake
	MinSegmentLength float64 `yaml:"min_segment_length"` // minimum segment length
	MaxSegmentLength float64 `yaml:"max_segment_length"` // maximum segment length
	FatWidth         int     `yaml:"fat_width"`          // stroke width of the quake
	ThinWidth        int     `yaml:"thin_width"`         // stroke width of the mirror lines

	// bound on the bearing of the first segment, i.e. [-a, a]
	MaxFirstAngle float64 `yaml:"max_first_angle"`
	// half-width of the band around π/2 for turns between segments
	MaxDeviationFromPerpendicular float64 `yaml:"max_deviation_from_perpendicular"`
	// bound on the bearing of every segment, i.e. (-a, a)
	MaxDeviationFromGoingRight float64 `yaml:"max_deviation_from_going_right"`

	NrMirrorLines       int     `yaml:"nr_mirror_lines"`        // half-count of mirror lines
	EndAngleMirrorLines float64 `yaml:"end_angle_mirror_lines"` // sweep of the mirror fan in one direction

	Width    int    `yaml:"width"`     // side length of the square canvas
	Prefix   string `yaml:"prefix"`    // prefix of image file names
	ImageDir string `yaml:"image_dir"` // directory to save images to
}

// Default returns the standard parameter set.
func Default() Config {
	return Config{
		NrSegments:                    16,
		MinSegmentLength:              20,
		MaxSegmentLength:              100,
		FatWidth:                      10,
		ThinWidth:                     1,
		MaxFirstAngle:                 math.Pi / 4,     // 45°
		MaxDeviationFromPerpendicular: math.Pi / 4,     // 45°
		MaxDeviationFromGoingRight:    2 * math.Pi / 3, // 120°
		NrMirrorLines:                 64,
		EndAngleMirrorLines:           2 * math.Pi / 3, // 120°
		Width:                         2000,
		Prefix:                        "amorales_",
		ImageDir:                      "img",
	}
}

// Validate checks the constraints between parameters. Most importantly,
// a segment must always be able to turn back towards the right: for a
// previous bearing b in (-G, G), turning against the sign of b by at least
// π/2 - D must land inside (-G, G), otherwise the angle sampler would never
// terminate.
func (c Config) Validate() error {
	if name, x, ok := c.nonFinite(); ok {
		return fmt.Errorf("%w: %s must be a finite number, is %g", ErrInvalidConfig, name, x)
	}
	switch {
	case c.NrSegments < 0:
		return fmt.Errorf("%w: negative segment count %d", ErrInvalidConfig, c.NrSegments)
	case !(c.MinSegmentLength > 0):
		return fmt.Errorf("%w: minimum segment length must be positive, is %g",
			ErrInvalidConfig, c.MinSegmentLength)
	case !(c.MaxSegmentLength >= c.MinSegmentLength):
		return fmt.Errorf("%w: segment length range [%g, %g] is empty",
			ErrInvalidConfig, c.MinSegmentLength, c.MaxSegmentLength)
	case c.FatWidth <= 0 || c.ThinWidth <= 0:
		return fmt.Errorf("%w: stroke widths must be positive, are %d and %d",
			ErrInvalidConfig, c.FatWidth, c.ThinWidth)
	case c.Width <= 0:
		return fmt.Errorf("%w: canvas width must be positive, is %d", ErrInvalidConfig, c.Width)
	case !(c.MaxDeviationFromPerpendicular >= 0 && c.MaxDeviationFromPerpendicular < math.Pi/2):
		return fmt.Errorf("%w: deviation from perpendicular must be in [0, π/2), is %g",
			ErrInvalidConfig, c.MaxDeviationFromPerpendicular)
	case !(c.MaxDeviationFromGoingRight > 0 && c.MaxDeviationFromGoingRight <= math.Pi):
		return fmt.Errorf("%w: deviation from going right must be in (0, π], is %g",
			ErrInvalidConfig, c.MaxDeviationFromGoingRight)
	case !(c.MaxFirstAngle >= 0 && c.MaxFirstAngle < c.MaxDeviationFromGoingRight):
		return fmt.Errorf("%w: first angle must be in [0, %g), is %g",
			ErrInvalidConfig, c.MaxDeviationFromGoingRight, c.MaxFirstAngle)
	case !(math.Pi/2-c.MaxDeviationFromPerpendicular < c.MaxDeviationFromGoingRight):
		return fmt.Errorf("%w: no turn of at least %g stays within (-%g, %g)",
			ErrInvalidConfig, math.Pi/2-c.MaxDeviationFromPerpendicular,
			c.MaxDeviationFromGoingRight, c.MaxDeviationFromGoingRight)
	case c.NrMirrorLines < 0:
		return fmt.Errorf("%w: negative mirror line count %d", ErrInvalidConfig, c.NrMirrorLines)
	}
	return nil
}

// nonFinite returns the name and value of the first float parameter which
// is NaN or infinite. YAML accepts .nan and .inf, and either of them would
// make every bearing NaN.
func (c Config) nonFinite() (string, float64, bool) {
	params := []struct {
		name  string
		value float64
	}{
		{"min_segment_length", c.MinSegmentLength},
		{"max_segment_length", c.MaxSegmentLength},
		{"max_first_angle", c.MaxFirstAngle},
		{"max_deviation_from_perpendicular", c.MaxDeviationFromPerpendicular},
		{"max_deviation_from_going_right", c.MaxDeviationFromGoingRight},
		{"end_angle_mirror_lines", c.EndAngleMirrorLines},
	}
	for _, p := range params {
		if math.IsNaN(p.value) || math.IsInf(p.value, 0) {
			return p.name, p.value, true
		}
	}
	return "", 0, false
}

// Load reads a YAML file and overlays its settings onto the defaults.
// Keys not known to Config are rejected. The result is validated.
func Load(path string) (Config, error) {
	conf := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return conf, err
	}
	if conf, err = Parse(data); err != nil {
		return conf, fmt.Errorf("config %s: %w", path, err)
	}
	tracer().Infof("loaded configuration from %s", path)
	return conf, nil
}

// Parse overlays YAML data onto the defaults and validates the result.
func Parse(data []byte) (Config, error) {
	conf := Default()
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&conf); err != nil && !errors.Is(err, io.EOF) {
		return conf, err
	}
	return conf, conf.Validate()
}
