package commands

import (
	"math"

	"golang.org/x/sync/errgroup"

	"github.com/tabletlab/tablet"
	"github.com/tabletlab/tablet/internal/caption"
	"github.com/tabletlab/tablet/internal/config"
	"github.com/tabletlab/tablet/preview"
	"github.com/tabletlab/tablet/svgdoc"
)

// fanout draws each frame on all of its sinks concurrently.
type fanout []tablet.Sink

func (s fanout) Draw(f tablet.Frame) error {
	var g errgroup.Group
	for _, sink := range s {
		g.Go(func() error { return sink.Draw(f) })
	}
	return g.Wait()
}

// fileSinks builds one file sink per configured output format.
func fileSinks(file *config.File) (fanout, error) {
	tag, err := caption.ParseLanguage(file.Output.Language)
	if err != nil {
		return nil, err
	}
	labels := file.Output.LabelsEnabled()
	ppu := file.Output.PixelsPerUnit

	var sinks fanout
	for format, path := range file.Output.Paths() {
		switch format {
		case config.FormatSVG:
			sinks = append(sinks, svgdoc.NewFileSink(path,
				svgdoc.WithLabels(labels),
				svgdoc.WithLanguage(tag),
				svgdoc.WithPixelsPerUnit(int(math.Round(ppu)))))
		case config.FormatPNG:
			r, err := preview.New(
				preview.WithLabels(labels),
				preview.WithLanguage(tag),
				preview.WithPixelsPerUnit(ppu))
			if err != nil {
				return nil, err
			}
			sinks = append(sinks, preview.NewFileSink(path, r))
		}
	}
	return sinks, nil
}
