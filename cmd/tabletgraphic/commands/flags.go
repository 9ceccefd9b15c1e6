package commands

import (
	"github.com/spf13/cobra"

	"github.com/tabletlab/tablet/internal/config"
)

var overrides struct {
	shape    string
	length   float64
	width    float64
	total    float64
	band     float64
	axis     string
	formats  []string
	out      string
	lang     string
	ppu      float64
	noLabels bool
}

func addGeometryFlags(cmd *cobra.Command) {
	f := cmd.Flags()
	f.StringVar(&overrides.shape, "shape", "", "tablet shape: round, oval or caplet")
	f.Float64Var(&overrides.length, "length", 0, "tablet length in meters")
	f.Float64Var(&overrides.width, "width", 0, "tablet width in meters")
	f.Float64Var(&overrides.total, "total", 0, "total thickness in meters")
	f.Float64Var(&overrides.band, "band", 0, "band thickness in meters")
	f.StringVar(&overrides.axis, "axis", "", "dimension line: width, length, total, band, cup or none")
}

func addOutputFlags(cmd *cobra.Command) {
	f := cmd.Flags()
	f.StringSliceVar(&overrides.formats, "format", nil, "output formats: svg, png")
	f.StringVarP(&overrides.out, "out", "o", "", "output path; the extension follows the format")
	f.StringVar(&overrides.lang, "lang", "", "caption language (BCP 47)")
	f.Float64Var(&overrides.ppu, "ppu", 0, "pixels per canvas unit")
	f.BoolVar(&overrides.noLabels, "no-labels", false, "omit view titles and captions")
}

// loadConfig reads --config, or starts from the defaults, and applies the
// flags the user set explicitly.
func loadConfig(cmd *cobra.Command) (*config.File, error) {
	file := config.Default()
	if configPath != "" {
		var err error
		if file, err = config.Load(configPath); err != nil {
			return nil, err
		}
	}

	changed := cmd.Flags().Changed
	if changed("shape") {
		file.Tablet.Shape = overrides.shape
	}
	if changed("length") {
		file.Tablet.Length = overrides.length
	}
	if changed("width") {
		file.Tablet.Width = overrides.width
	}
	if changed("total") {
		file.Tablet.TotalThickness = overrides.total
	}
	if changed("band") {
		file.Tablet.BandThickness = overrides.band
	}
	if changed("axis") {
		file.Annotation = overrides.axis
	}
	if changed("format") {
		file.Output.Formats = overrides.formats
	}
	if changed("out") {
		file.Output.Path = overrides.out
	}
	if changed("lang") {
		file.Output.Language = overrides.lang
	}
	if changed("ppu") {
		file.Output.PixelsPerUnit = overrides.ppu
	}
	if changed("no-labels") {
		labels := !overrides.noLabels
		file.Output.Labels = &labels
	}

	if err := file.Validate(); err != nil {
		return nil, err
	}
	return file, nil
}
