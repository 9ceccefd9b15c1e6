package tablet

import "github.com/tabletlab/tablet/svgpath"

// TopAnnotation returns the dimension line for axis on the top view.
// AxisWidth draws a vertical line right of the outline; AxisLength draws
// a horizontal line below it. For a round tablet the length line uses
// length for both extents, so width has no effect. Other axes yield an
// empty path.
func (v Viewport) TopAnnotation(axis Axis, shape Shape, width, length float64) *svgpath.Path {
	switch axis {
	case AxisWidth:
		return v.verticalLeader(length, v.CenterY()-width*v.Scale()/2, width)
	case AxisLength:
		if shape == ShapeRound {
			width = length
		}
		return v.lengthLeader(width, length)
	}
	return svgpath.New()
}

// SideAnnotation returns the dimension line for axis on the side view.
// Thickness lines are drawn right of the outline, centered vertically;
// the cup depth line starts at the top of the tablet. Other axes yield
// an empty path.
func (v Viewport) SideAnnotation(axis Axis, totalThickness, bandThickness, length float64) *svgpath.Path {
	switch axis {
	case AxisTotalThickness:
		return v.verticalLeader(length, v.CenterY()-totalThickness*v.Scale()/2, totalThickness)
	case AxisBandThickness:
		return v.verticalLeader(length, v.CenterY()-bandThickness*v.Scale()/2, bandThickness)
	case AxisCupDepth:
		depth := Geometry{TotalThickness: totalThickness, BandThickness: bandThickness}.CupDepth()
		return v.verticalLeader(length, v.CenterY()-totalThickness*v.Scale()/2, depth)
	}
	return svgpath.New()
}

// verticalLeader draws a vertical dimension line spanning extent meters,
// starting at top and placed Padding right of an outline length meters
// long. Each end has a horizontal cap.
func (v Viewport) verticalLeader(length, top, extent float64) *svgpath.Path {
	span := extent * v.Scale()
	x := v.CenterX() + length*v.Scale()/2 + v.Padding
	return svgpath.Build().
		MoveTo(x, top).
		LineBy(v.Cap, 0).
		MoveBy(-v.Cap/2, 0).
		LineBy(0, span).
		MoveBy(v.Cap/2, 0).
		LineBy(-v.Cap, 0).
		Path()
}

// lengthLeader draws a horizontal dimension line spanning length meters,
// placed Padding below an outline width meters wide. Each end has a
// vertical cap.
func (v Viewport) lengthLeader(width, length float64) *svgpath.Path {
	span := length * v.Scale()
	x := v.CenterX() - span/2
	y := v.CenterY() + width*v.Scale()/2 + v.Padding
	return svgpath.Build().
		MoveTo(x, y).
		LineBy(0, v.Cap).
		MoveBy(0, -v.Cap/2).
		LineBy(span, 0).
		MoveBy(0, -v.Cap/2).
		LineBy(0, v.Cap).
		Path()
}

// TopAnnotation draws with the default viewport. See Viewport.TopAnnotation.
func TopAnnotation(axis Axis, shape Shape, width, length float64) *svgpath.Path {
	return DefaultViewport().TopAnnotation(axis, shape, width, length)
}

// SideAnnotation draws with the default viewport. See Viewport.SideAnnotation.
func SideAnnotation(axis Axis, totalThickness, bandThickness, length float64) *svgpath.Path {
	return DefaultViewport().SideAnnotation(axis, totalThickness, bandThickness, length)
}
