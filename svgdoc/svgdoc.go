// Package svgdoc writes a rendered frame as a standalone SVG document: the
// top view and the side view side by side, each on its own canvas, with
// optional titles and dimension captions underneath.
package svgdoc

import (
	"bufio"
	"fmt"
	"io"
	"math"

	svg "github.com/ajstarks/svgo"
	"golang.org/x/text/language"

	"github.com/tabletlab/tablet"
	"github.com/tabletlab/tablet/internal/caption"
	"github.com/tabletlab/tablet/svgpath"
)

const (
	// labelBand is the height, in canvas units, reserved under the canvases
	// for titles and captions.
	labelBand = 3

	// Labels are laid out in tenths of a canvas unit because svgo places
	// text on integer coordinates.
	labelScale = 10
)

const styleSheet = `
.outline { fill: #eef2f7; stroke: #1f2933; stroke-width: 0.12; stroke-linejoin: round }
.annotation { fill: none; stroke: #c0392b; stroke-width: 0.08; stroke-linecap: round }
.title { font-family: sans-serif; font-size: 10px; text-anchor: middle; fill: #1f2933 }
.caption { font-family: sans-serif; font-size: 7px; text-anchor: middle; fill: #52606d }
`

// Option configures a Writer.
type Option func(*Writer)

// WithPixelsPerUnit sets the size of the document in pixels per canvas
// unit. Values below 1 are ignored. The default is 20.
func WithPixelsPerUnit(ppu int) Option {
	return func(w *Writer) {
		if ppu >= 1 {
			w.ppu = ppu
		}
	}
}

// WithLabels toggles the view titles and dimension captions.
func WithLabels(on bool) Option {
	return func(w *Writer) {
		w.labels = on
	}
}

// WithLanguage selects the language used to format caption numbers.
func WithLanguage(tag language.Tag) Option {
	return func(w *Writer) {
		w.captions = caption.New(tag)
	}
}

// Writer renders frames as SVG documents.
type Writer struct {
	ppu      int
	labels   bool
	captions *caption.Printer
}

// New creates a Writer. Labels are on and captions are formatted in English
// unless configured otherwise.
func New(opts ...Option) *Writer {
	w := &Writer{
		ppu:      20,
		labels:   true,
		captions: caption.New(language.English),
	}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// Write renders f to out. Instructions with empty path data are skipped,
// and so are instructions that do not parse, such as paths carrying NaN
// coordinates; those are logged and the rest of the frame is still drawn.
func (w *Writer) Write(out io.Writer, f tablet.Frame) error {
	drawable := make([]bool, len(f.Instructions))
	for i, in := range f.Instructions {
		if in.D == "" {
			continue
		}
		if _, err := svgpath.Parse(in.D); err != nil {
			tablet.Logger().Warn("svgdoc: skipping malformed path",
				"view", in.View.String(), "role", in.Role.String(), "err", err)
			continue
		}
		drawable[i] = true
	}

	vp := f.Viewport
	docW, docH := 2*vp.Width, vp.Height
	if w.labels {
		docH += labelBand
	}

	bw := bufio.NewWriter(out)
	canvas := svg.New(bw)
	canvas.Start(pixels(docW, w.ppu), pixels(docH, w.ppu),
		fmt.Sprintf(`viewBox="0 0 %s %s"`, svgpath.FormatNumber(docW), svgpath.FormatNumber(docH)))
	canvas.Title("Tablet schematic")
	canvas.Style("text/css", styleSheet)

	for _, view := range []tablet.View{tablet.ViewTop, tablet.ViewSide} {
		attrs := []string{fmt.Sprintf(`id="%s-view"`, view)}
		if view == tablet.ViewSide {
			attrs = append(attrs, fmt.Sprintf(`transform="translate(%s,0)"`, svgpath.FormatNumber(vp.Width)))
		}
		canvas.Group(attrs...)
		for i, in := range f.Instructions {
			if in.View != view || !drawable[i] {
				continue
			}
			canvas.Path(in.D, fmt.Sprintf(`class="%s"`, in.Role))
		}
		if w.labels {
			w.writeLabels(canvas, f, view)
		}
		canvas.Gend()
	}
	canvas.End()

	if err := bw.Flush(); err != nil {
		return fmt.Errorf("svgdoc: write: %w", err)
	}
	return nil
}

func (w *Writer) writeLabels(canvas *svg.SVG, f tablet.Frame, view tablet.View) {
	vp := f.Viewport
	x := int(math.Round(vp.Width / 2 * labelScale))
	y := int(math.Round(vp.Height * labelScale))

	canvas.Gtransform(fmt.Sprintf("scale(%g)", 1.0/labelScale))
	canvas.Text(x, y+13, w.captions.Title(view), `class="title"`)
	if dims := w.captions.Dimensions(f.Snapshot, view); dims != "" {
		canvas.Text(x, y+24, dims, `class="caption"`)
	}
	canvas.Gend()
}

func pixels(units float64, ppu int) int {
	return int(math.Ceil(units * float64(ppu)))
}
