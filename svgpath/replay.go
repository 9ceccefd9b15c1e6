package svgpath

// Drawer receives absolute drawing commands. *gg.Context satisfies it.
type Drawer interface {
	MoveTo(x, y float64)
	LineTo(x, y float64)
	CubicTo(c1x, c1y, c2x, c2y, x, y float64)
	ClosePath()
}

// Replay emits the path onto d using absolute coordinates. Elliptical
// arcs are approximated with cubic Bezier curves; zero-radius arcs become
// lines and arcs with coincident endpoints are dropped.
func (p *Path) Replay(d Drawer) {
	p.segments(func(s segment) {
		switch s.kind {
		case segMove:
			d.MoveTo(s.to.X, s.to.Y)
		case segLine:
			d.LineTo(s.to.X, s.to.Y)
		case segClose:
			d.ClosePath()
		case segArc:
			e, shape := centerArc(s.from, s.to, s.arc)
			switch shape {
			case arcLine:
				d.LineTo(s.to.X, s.to.Y)
			case arcCurve:
				e.cubics(s.to, func(c1, c2, pt Point) {
					d.CubicTo(c1.X, c1.Y, c2.X, c2.Y, pt.X, pt.Y)
				})
			}
		}
	})
}
