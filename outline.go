package tablet

import "github.com/tabletlab/tablet/svgpath"

// TopOutline returns the outline of the tablet seen from above, centered
// on the canvas. Round tablets use length as their diameter and ignore
// width. An unrecognized shape yields an empty path.
func (v Viewport) TopOutline(shape Shape, width, length float64) *svgpath.Path {
	switch shape {
	case ShapeRound:
		return v.roundOutline(length)
	case ShapeOval:
		return v.ovalOutline(width, length)
	case ShapeCaplet:
		return v.capletOutline(width, length)
	}
	return svgpath.New()
}

// roundOutline draws a circle as two opposing semicircles.
func (v Viewport) roundOutline(length float64) *svgpath.Path {
	r := (length / 2) * v.Scale()
	return svgpath.Build().
		MoveBy(v.CenterX(), v.CenterY()).
		MoveBy(r, 0).
		ArcBy(r, r, false, false, -r*2, 0).
		ArcBy(r, r, false, false, r*2, 0).
		Close().
		Path()
}

// ovalOutline draws an ellipse as two opposing half ellipses.
func (v Viewport) ovalOutline(width, length float64) *svgpath.Path {
	r1 := (length / 2) * v.Scale()
	r2 := (width / 2) * v.Scale()
	return svgpath.Build().
		MoveBy(v.CenterX(), v.CenterY()).
		MoveBy(r1, 0).
		ArcBy(r1, r2, false, false, -r1*2, 0).
		ArcBy(r1, r2, false, false, r1*2, 0).
		Close().
		Path()
}

// capletOutline draws a stadium: straight top and bottom edges of length
// (length-width) joined by semicircular caps of diameter width.
func (v Viewport) capletOutline(width, length float64) *svgpath.Path {
	w := width * v.Scale()
	body := (length - width) * v.Scale()
	return svgpath.Build().
		MoveBy(v.CenterX(), v.CenterY()).
		MoveBy(body/2, w/2).
		LineBy(-body, 0).
		ArcBy(w/2, w/2, false, true, 0, -w).
		LineBy(body, 0).
		ArcBy(w/2, w/2, false, true, 0, w).
		Close().
		Path()
}

// SideOutline returns the edge profile of the tablet: two cup arcs of
// radius cupRadius spanning the full length, separated by the band wall,
// with the band drawn as two horizontal lines. Every recognized shape
// shares this profile; an unrecognized shape yields an empty path.
func (v Viewport) SideOutline(shape Shape, length, cupRadius, bandThickness float64) *svgpath.Path {
	if !shape.Known() {
		return svgpath.New()
	}
	l := length * v.Scale()
	band := bandThickness * v.Scale()
	cup := cupRadius * v.Scale()
	return svgpath.Build().
		MoveBy(v.CenterX(), v.CenterY()).
		MoveBy(-l/2, -band/2).
		ArcBy(cup, cup, false, true, l, 0).
		LineBy(0, band).
		ArcBy(cup, cup, false, true, -l, 0).
		LineBy(0, -band).
		LineBy(l, 0).
		MoveBy(0, band).
		LineBy(-l, 0).
		Path()
}

// TopOutline draws with the default viewport. See Viewport.TopOutline.
func TopOutline(shape Shape, width, length float64) *svgpath.Path {
	return DefaultViewport().TopOutline(shape, width, length)
}

// SideOutline draws with the default viewport. See Viewport.SideOutline.
func SideOutline(shape Shape, length, cupRadius, bandThickness float64) *svgpath.Path {
	return DefaultViewport().SideOutline(shape, length, cupRadius, bandThickness)
}
