package tablet

// ViewportOption configures a Viewport during creation.
type ViewportOption func(*Viewport)

// WithPadding sets the padding around the tablet and between an outline
// and its dimension line.
func WithPadding(p float64) ViewportOption {
	return func(v *Viewport) {
		v.Padding = p
	}
}

// WithCap sets the dimension line end cap length.
func WithCap(c float64) ViewportOption {
	return func(v *Viewport) {
		v.Cap = c
	}
}

// WithCanvas sets the canvas size in viewport units.
func WithCanvas(width, height float64) ViewportOption {
	return func(v *Viewport) {
		v.Width = width
		v.Height = height
	}
}

// WithMaxLength sets the longest tablet, in meters, that fits the canvas.
func WithMaxLength(m float64) ViewportOption {
	return func(v *Viewport) {
		v.MaxLength = m
	}
}

// RendererOption configures a Renderer during creation.
//
// Example:
//
//	r := tablet.NewRenderer(vp, tablet.WithSink(svgSink), tablet.WithSink(pngSink))
type RendererOption func(*rendererOptions)

type rendererOptions struct {
	sinks []Sink
}

// WithSink adds a sink that receives every frame. Sinks are called in the
// order they were added.
func WithSink(s Sink) RendererOption {
	return func(o *rendererOptions) {
		if s != nil {
			o.sinks = append(o.sinks, s)
		}
	}
}
