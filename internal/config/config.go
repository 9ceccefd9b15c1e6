// Package config loads tablet geometry files.
//
// A geometry file is a YAML document:
//
//	tablet:
//	  shape: caplet
//	  length: 0.012          # meters
//	  width: 0.004
//	  total_thickness: 0.005
//	  band_thickness: 0.003
//	annotation: width        # width, length, total, band, cup or none
//	viewport:                # optional, missing fields keep defaults
//	  max_length: 0.02
//	output:
//	  formats: [svg, png]
//	  path: tablet           # extension added per format
//	  pixels_per_unit: 20
//	  language: en
//	  labels: true
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/tabletlab/tablet"
	"github.com/tabletlab/tablet/internal/caption"
)

// Output formats.
const (
	FormatSVG = "svg"
	FormatPNG = "png"
)

// ErrUnknownFormat is returned for output formats other than svg and png.
var ErrUnknownFormat = errors.New("config: unknown output format")

// FieldError reports an invalid value in a geometry file.
type FieldError struct {
	Field string
	Value string
	Err   error
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("config: %s %q: %v", e.Field, e.Value, e.Err)
}

func (e *FieldError) Unwrap() error {
	return e.Err
}

// File is the decoded form of a geometry file.
type File struct {
	Tablet     Tablet   `yaml:"tablet"`
	Annotation string   `yaml:"annotation"`
	Viewport   Viewport `yaml:"viewport"`
	Output     Output   `yaml:"output"`
}

// Tablet holds the dimensions, in meters.
type Tablet struct {
	Shape          string  `yaml:"shape"`
	Length         float64 `yaml:"length"`
	Width          float64 `yaml:"width"`
	TotalThickness float64 `yaml:"total_thickness"`
	BandThickness  float64 `yaml:"band_thickness"`
}

// Viewport overrides the default viewport. Nil fields keep the default.
type Viewport struct {
	Padding   *float64 `yaml:"padding"`
	Cap       *float64 `yaml:"cap"`
	Width     *float64 `yaml:"width"`
	Height    *float64 `yaml:"height"`
	MaxLength *float64 `yaml:"max_length"`
}

// Output selects what is written and where.
type Output struct {
	Formats       []string `yaml:"formats"`
	Path          string   `yaml:"path"`
	PixelsPerUnit float64  `yaml:"pixels_per_unit"`
	Language      string   `yaml:"language"`
	Labels        *bool    `yaml:"labels"`
}

// Default returns the configuration used when a file leaves fields out.
func Default() *File {
	return &File{
		Tablet: Tablet{
			Shape:          "round",
			Length:         0.01,
			Width:          0.01,
			TotalThickness: 0.005,
			BandThickness:  0.003,
		},
		Annotation: "none",
		Output: Output{
			Formats:       []string{FormatSVG},
			Path:          "tablet",
			PixelsPerUnit: 20,
			Language:      "en",
		},
	}
}

// Load reads and validates the geometry file at path.
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	f, err := Parse(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	tablet.Logger().Debug("config: loaded", "path", path, "shape", f.Tablet.Shape)
	return f, nil
}

// Parse decodes a geometry file on top of Default and validates it.
// Unknown keys are errors. An empty document yields the defaults.
func Parse(r io.Reader) (*File, error) {
	f := Default()
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(f); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("config: decode: %w", err)
	}
	if err := f.Validate(); err != nil {
		return nil, err
	}
	return f, nil
}

// Validate checks the names in the file. Dimensions are not checked here;
// the renderer draws whatever it is given and warns about bad geometry.
func (f *File) Validate() error {
	if !tablet.ParseShape(f.Tablet.Shape).Known() {
		return &FieldError{Field: "tablet.shape", Value: f.Tablet.Shape, Err: errors.New("want round, oval or caplet")}
	}
	if a := f.Annotation; a != "" && a != "none" && tablet.ParseAxis(a) == tablet.AxisNone {
		return &FieldError{Field: "annotation", Value: a, Err: errors.New("want width, length, total, band, cup or none")}
	}
	if len(f.Output.Formats) == 0 {
		return &FieldError{Field: "output.formats", Err: errors.New("at least one format required")}
	}
	for _, format := range f.Output.Formats {
		if format != FormatSVG && format != FormatPNG {
			return &FieldError{Field: "output.formats", Value: format, Err: ErrUnknownFormat}
		}
	}
	if _, err := caption.ParseLanguage(f.Output.Language); err != nil {
		return &FieldError{Field: "output.language", Value: f.Output.Language, Err: err}
	}
	if _, err := f.TabletViewport(); err != nil {
		return &FieldError{Field: "viewport", Err: err}
	}
	return nil
}

// Snapshot returns the tablet state described by the file, with the cup
// radius derived from the thicknesses.
func (f *File) Snapshot() tablet.Snapshot {
	g := tablet.Geometry{
		Shape:          tablet.ParseShape(f.Tablet.Shape),
		Length:         f.Tablet.Length,
		Width:          f.Tablet.Width,
		TotalThickness: f.Tablet.TotalThickness,
		BandThickness:  f.Tablet.BandThickness,
	}
	g.CupRadius = tablet.CupRadius(g.Length, g.TotalThickness, g.BandThickness)
	return tablet.Snapshot{Geometry: g, Axis: tablet.ParseAxis(f.Annotation)}
}

// TabletViewport builds the viewport from the defaults and the overrides.
func (f *File) TabletViewport() (tablet.Viewport, error) {
	v := f.Viewport
	var opts []tablet.ViewportOption
	if v.Padding != nil {
		opts = append(opts, tablet.WithPadding(*v.Padding))
	}
	if v.Cap != nil {
		opts = append(opts, tablet.WithCap(*v.Cap))
	}
	if v.Width != nil || v.Height != nil {
		var w, h float64 = tablet.DefaultWidth, tablet.DefaultHeight
		if v.Width != nil {
			w = *v.Width
		}
		if v.Height != nil {
			h = *v.Height
		}
		opts = append(opts, tablet.WithCanvas(w, h))
	}
	if v.MaxLength != nil {
		opts = append(opts, tablet.WithMaxLength(*v.MaxLength))
	}
	return tablet.NewViewport(opts...)
}

// LabelsEnabled reports whether titles and captions are drawn. Default true.
func (o Output) LabelsEnabled() bool {
	return o.Labels == nil || *o.Labels
}

// Paths returns the output file for each configured format. The format
// extension replaces any extension already on Path.
func (o Output) Paths() map[string]string {
	base := strings.TrimSuffix(o.Path, filepath.Ext(o.Path))
	paths := make(map[string]string, len(o.Formats))
	for _, format := range o.Formats {
		paths[format] = base + "." + format
	}
	return paths
}
