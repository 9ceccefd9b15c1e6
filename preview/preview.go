// Package preview rasterizes rendered frames into PNG images with the gg
// software renderer.
//
// The two canvases are drawn side by side, top view on the left, using
// the same styling as the SVG output: outlines are filled and stroked,
// dimension lines are stroked only. View titles and dimension captions are
// drawn underneath with the Go Regular font.
package preview

import (
	"errors"
	"fmt"
	"image"
	"io"
	"math"

	"github.com/gogpu/gg"
	"github.com/gogpu/gg/text"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/text/language"

	"github.com/tabletlab/tablet"
	"github.com/tabletlab/tablet/internal/caption"
	"github.com/tabletlab/tablet/svgpath"
)

// ErrInvalidFrame is returned for frames whose viewport has no area.
// Instructions that do not parse are logged and left undrawn.
var ErrInvalidFrame = errors.New("preview: invalid frame")

// labelBand is the height, in canvas units, reserved under the canvases
// for titles and captions.
const labelBand = 3

const (
	outlineFill     = "#eef2f7"
	outlineStroke   = "#1f2933"
	annotationColor = "#c0392b"
	captionColor    = "#52606d"
)

// Option configures a Renderer.
type Option func(*Renderer)

// WithPixelsPerUnit sets the raster resolution in pixels per canvas unit.
// Non-positive values are ignored. The default is 20.
func WithPixelsPerUnit(ppu float64) Option {
	return func(r *Renderer) {
		if ppu > 0 {
			r.ppu = ppu
		}
	}
}

// WithFontSize sets the title font size in pixels. Captions are drawn at
// 70% of it. The default scales with the resolution.
func WithFontSize(px float64) Option {
	return func(r *Renderer) {
		if px > 0 {
			r.fontSize = px
		}
	}
}

// WithLabels toggles the view titles and dimension captions.
func WithLabels(on bool) Option {
	return func(r *Renderer) {
		r.labels = on
	}
}

// WithLanguage selects the language used to format caption numbers.
func WithLanguage(tag language.Tag) Option {
	return func(r *Renderer) {
		r.captions = caption.New(tag)
	}
}

// Renderer draws frames onto gg contexts.
type Renderer struct {
	ppu      float64
	fontSize float64
	labels   bool
	captions *caption.Printer

	titleFace   text.Face
	captionFace text.Face
}

// New creates a Renderer and loads its label font.
func New(opts ...Option) (*Renderer, error) {
	r := &Renderer{
		ppu:      20,
		labels:   true,
		captions: caption.New(language.English),
	}
	for _, opt := range opts {
		opt(r)
	}
	if r.fontSize == 0 {
		r.fontSize = 0.7 * r.ppu
	}

	source, err := text.NewFontSource(goregular.TTF)
	if err != nil {
		return nil, fmt.Errorf("preview: load font: %w", err)
	}
	r.titleFace = source.Face(r.fontSize)
	r.captionFace = source.Face(0.7 * r.fontSize)
	return r, nil
}

// Size returns the image dimensions in pixels for vp.
func (r *Renderer) Size(vp tablet.Viewport) (width, height int) {
	h := vp.Height
	if r.labels {
		h += labelBand
	}
	return int(math.Ceil(2 * vp.Width * r.ppu)), int(math.Ceil(h * r.ppu))
}

// Image rasterizes f.
func (r *Renderer) Image(f tablet.Frame) (image.Image, error) {
	dc, err := r.draw(f)
	if err != nil {
		return nil, err
	}
	defer dc.Close()
	return dc.Image(), nil
}

// Encode rasterizes f and writes it to w as PNG.
func (r *Renderer) Encode(w io.Writer, f tablet.Frame) error {
	dc, err := r.draw(f)
	if err != nil {
		return err
	}
	defer dc.Close()
	if err := dc.EncodePNG(w); err != nil {
		return fmt.Errorf("preview: encode: %w", err)
	}
	return nil
}

func (r *Renderer) draw(f tablet.Frame) (*gg.Context, error) {
	width, height := r.Size(f.Viewport)
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d pixels", ErrInvalidFrame, width, height)
	}

	dc := gg.NewContext(width, height)
	dc.ClearWithColor(gg.White)
	dc.SetLineJoin(gg.LineJoinRound)
	dc.SetLineCap(gg.LineCapRound)

	for _, in := range f.Instructions {
		if in.D == "" {
			continue
		}
		if err := r.drawInstruction(dc, f.Viewport, in); err != nil {
			dc.Close()
			return nil, err
		}
	}
	if r.labels {
		r.drawLabels(dc, f)
	}
	return dc, nil
}

func (r *Renderer) drawInstruction(dc *gg.Context, vp tablet.Viewport, in tablet.DrawInstruction) error {
	p, err := svgpath.Parse(in.D)
	if err != nil {
		tablet.Logger().Warn("preview: skipping malformed path",
			"view", in.View.String(), "role", in.Role.String(), "err", err)
		return nil
	}

	dc.Push()
	defer dc.Pop()
	if in.View == tablet.ViewSide {
		dc.Translate(vp.Width*r.ppu, 0)
	}
	p.Transform(r.ppu, svgpath.Point{}).Replay(dc)

	switch in.Role {
	case tablet.RoleOutline:
		dc.SetHexColor(outlineFill)
		if err := dc.FillPreserve(); err != nil {
			dc.ClearPath()
			return fmt.Errorf("preview: fill %s outline: %w", in.View, err)
		}
		dc.SetHexColor(outlineStroke)
		dc.SetLineWidth(0.12 * r.ppu)
	default:
		dc.SetHexColor(annotationColor)
		dc.SetLineWidth(0.08 * r.ppu)
	}
	if err := dc.Stroke(); err != nil {
		return fmt.Errorf("preview: stroke %s %s: %w", in.View, in.Role, err)
	}
	return nil
}

func (r *Renderer) drawLabels(dc *gg.Context, f tablet.Frame) {
	vp := f.Viewport
	for i, view := range []tablet.View{tablet.ViewTop, tablet.ViewSide} {
		x := (float64(i) + 0.5) * vp.Width * r.ppu
		y := vp.Height * r.ppu

		dc.SetHexColor(outlineStroke)
		dc.SetFont(r.titleFace)
		dc.DrawStringAnchored(r.captions.Title(view), x, y+0.9*r.ppu, 0.5, 0.5)

		if dims := r.captions.Dimensions(f.Snapshot, view); dims != "" {
			dc.SetHexColor(captionColor)
			dc.SetFont(r.captionFace)
			dc.DrawStringAnchored(dims, x, y+2*r.ppu, 0.5, 0.5)
		}
	}
}
