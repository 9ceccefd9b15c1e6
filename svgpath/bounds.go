package svgpath

import "math"

// Bounds returns the tight axis-aligned bounding box of the path.
// Arc extrema are included; a move that is not followed by drawing does
// not extend the box. An empty path returns the zero Rect.
func (p *Path) Bounds() Rect {
	bbox := Rect{
		Min: Point{X: math.MaxFloat64, Y: math.MaxFloat64},
		Max: Point{X: -math.MaxFloat64, Y: -math.MaxFloat64},
	}

	var pending *Point
	flush := func() {
		if pending != nil {
			bbox = expandBBox(bbox, *pending)
			pending = nil
		}
	}

	p.segments(func(s segment) {
		switch s.kind {
		case segMove:
			to := s.to
			pending = &to
		case segLine, segClose:
			flush()
			bbox = expandBBox(bbox, s.to)
		case segArc:
			flush()
			bbox = expandBBox(bbox, s.to)
			e, shape := centerArc(s.from, s.to, s.arc)
			if shape != arcCurve {
				return
			}
			for _, theta := range e.extremeAngles() {
				if e.contains(theta) {
					bbox = expandBBox(bbox, e.point(theta))
				}
			}
		}
	})

	if bbox.Min.X == math.MaxFloat64 {
		return Rect{}
	}
	return bbox
}

// expandBBox expands the bounding box to include the point.
func expandBBox(bbox Rect, pt Point) Rect {
	return Rect{
		Min: Point{X: math.Min(bbox.Min.X, pt.X), Y: math.Min(bbox.Min.Y, pt.Y)},
		Max: Point{X: math.Max(bbox.Max.X, pt.X), Y: math.Max(bbox.Max.Y, pt.Y)},
	}
}
