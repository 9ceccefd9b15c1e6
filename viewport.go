package tablet

import (
	"fmt"
	"math"

	"github.com/tabletlab/tablet/svgpath"
)

// Default viewport constants. A canvas is 24×18 units and fits a tablet
// up to 20 mm long, which gives a scale of 750 units per meter.
const (
	DefaultPadding   = 1.5
	DefaultCap       = 2
	DefaultWidth     = 24
	DefaultHeight    = 18
	DefaultMaxLength = 0.02
)

// Viewport holds the fixed drawing constants shared by the top and side
// views. All lengths except MaxLength are in viewport units; MaxLength is
// in meters.
type Viewport struct {
	// Padding is the gap between the canvas edge and the tablet, and
	// between an outline and its dimension line.
	Padding float64
	// Cap is the length of a dimension line end cap.
	Cap float64
	// Width and Height are the canvas size.
	Width, Height float64
	// MaxLength is the longest tablet that fits the canvas.
	MaxLength float64
}

// DefaultViewport returns the standard 24×18 viewport.
func DefaultViewport() Viewport {
	return Viewport{
		Padding:   DefaultPadding,
		Cap:       DefaultCap,
		Width:     DefaultWidth,
		Height:    DefaultHeight,
		MaxLength: DefaultMaxLength,
	}
}

// NewViewport creates a viewport from the defaults and the given options.
// It returns ErrInvalidViewport if the result has no positive, finite scale.
//
// Example:
//
//	vp, err := tablet.NewViewport(tablet.WithMaxLength(0.025))
func NewViewport(opts ...ViewportOption) (Viewport, error) {
	v := DefaultViewport()
	for _, opt := range opts {
		opt(&v)
	}
	if err := v.Validate(); err != nil {
		return Viewport{}, err
	}
	return v, nil
}

// Validate checks that MaxLength and Scale are positive and finite.
func (v Viewport) Validate() error {
	if !(v.MaxLength > 0) || math.IsInf(v.MaxLength, 0) {
		return fmt.Errorf("%w: max length %v must be positive", ErrInvalidViewport, v.MaxLength)
	}
	if s := v.Scale(); !(s > 0) || math.IsInf(s, 0) {
		return fmt.Errorf("%w: scale %v must be positive (height %v, padding %v)",
			ErrInvalidViewport, s, v.Height, v.Padding)
	}
	return nil
}

// Scale returns the number of viewport units per meter.
func (v Viewport) Scale() float64 {
	return (v.Height - 2*v.Padding) / v.MaxLength
}

// CenterX returns the horizontal center of the canvas.
func (v Viewport) CenterX() float64 {
	return v.Width / 2
}

// CenterY returns the vertical center of the canvas.
func (v Viewport) CenterY() float64 {
	return v.Height / 2
}

// Center returns the canvas center.
func (v Viewport) Center() svgpath.Point {
	return svgpath.Pt(v.CenterX(), v.CenterY())
}
