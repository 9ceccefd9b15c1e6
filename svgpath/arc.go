package svgpath

import "math"

// segmentKind identifies a resolved path segment.
type segmentKind int

const (
	segMove segmentKind = iota
	segLine
	segArc
	segClose
)

// segment is a path command resolved to absolute coordinates.
type segment struct {
	kind     segmentKind
	from, to Point
	arc      ArcTo
}

// segments walks the path, resolving relative commands against the
// current point.
func (p *Path) segments(fn func(segment)) {
	var start, cur Point
	for _, cmd := range p.commands {
		switch c := cmd.(type) {
		case MoveTo:
			to := c.Point
			if c.Relative {
				to = cur.Add(to)
			}
			fn(segment{kind: segMove, from: cur, to: to})
			start, cur = to, to
		case LineTo:
			to := c.Point
			if c.Relative {
				to = cur.Add(to)
			}
			fn(segment{kind: segLine, from: cur, to: to})
			cur = to
		case ArcTo:
			to := c.Point
			if c.Relative {
				to = cur.Add(to)
			}
			fn(segment{kind: segArc, from: cur, to: to, arc: c})
			cur = to
		case Close:
			fn(segment{kind: segClose, from: cur, to: start})
			cur = start
		}
	}
}

// arcShape tells how an endpoint-parameterized arc must be drawn.
type arcShape int

const (
	arcOmit  arcShape = iota // endpoints coincide
	arcLine                  // a radius is zero
	arcCurve                 // a real elliptical arc
)

// ellipseArc is an arc in center parameterization.
type ellipseArc struct {
	center Point
	rx, ry float64
	phi    float64 // rotation in radians
	theta1 float64 // start angle
	delta  float64 // signed sweep; negative runs counter-clockwise on screen
}

// centerArc converts an endpoint arc to center parameterization, scaling
// radii that are too small to span the endpoints.
func centerArc(from, to Point, c ArcTo) (ellipseArc, arcShape) {
	if from == to {
		return ellipseArc{}, arcOmit
	}
	rx, ry := math.Abs(c.Rx), math.Abs(c.Ry)
	if rx == 0 || ry == 0 {
		return ellipseArc{}, arcLine
	}

	phi := c.Rotation * math.Pi / 180
	cosPhi, sinPhi := math.Cos(phi), math.Sin(phi)

	dx2 := (from.X - to.X) / 2
	dy2 := (from.Y - to.Y) / 2
	x1p := cosPhi*dx2 + sinPhi*dy2
	y1p := -sinPhi*dx2 + cosPhi*dy2

	lambda := (x1p*x1p)/(rx*rx) + (y1p*y1p)/(ry*ry)
	if lambda > 1 {
		s := math.Sqrt(lambda)
		rx *= s
		ry *= s
	}

	// Endpoints on a diameter put the center on the chord midpoint. Rounding
	// leaves num slightly positive there and the square root amplifies it.
	rx2, ry2 := rx*rx, ry*ry
	num := rx2*ry2 - rx2*y1p*y1p - ry2*x1p*x1p
	den := rx2*y1p*y1p + ry2*x1p*x1p
	var coef float64
	if lambda < 1-1e-9 && num > 1e-12*rx2*ry2 {
		coef = math.Sqrt(num / den)
		if c.LargeArc == c.Sweep {
			coef = -coef
		}
	}
	cxp := coef * rx * y1p / ry
	cyp := -coef * ry * x1p / rx

	center := Point{
		X: cosPhi*cxp - sinPhi*cyp + (from.X+to.X)/2,
		Y: sinPhi*cxp + cosPhi*cyp + (from.Y+to.Y)/2,
	}

	u := Point{X: (x1p - cxp) / rx, Y: (y1p - cyp) / ry}
	v := Point{X: (-x1p - cxp) / rx, Y: (-y1p - cyp) / ry}
	theta1 := vectorAngle(Point{X: 1}, u)
	delta := vectorAngle(u, v)
	if !c.Sweep && delta > 0 {
		delta -= 2 * math.Pi
	} else if c.Sweep && delta < 0 {
		delta += 2 * math.Pi
	}

	return ellipseArc{
		center: center,
		rx:     rx,
		ry:     ry,
		phi:    phi,
		theta1: theta1,
		delta:  delta,
	}, arcCurve
}

func vectorAngle(u, v Point) float64 {
	return math.Atan2(u.X*v.Y-u.Y*v.X, u.X*v.X+u.Y*v.Y)
}

// point returns the point on the ellipse at parameter theta.
func (a ellipseArc) point(theta float64) Point {
	return Point{X: a.rx * math.Cos(theta), Y: a.ry * math.Sin(theta)}.Rotate(a.phi).Add(a.center)
}

// derivative returns the tangent of the ellipse at parameter theta.
func (a ellipseArc) derivative(theta float64) Point {
	return Point{X: -a.rx * math.Sin(theta), Y: a.ry * math.Cos(theta)}.Rotate(a.phi)
}

// extremeAngles returns the parameters where x or y reach an extremum.
func (a ellipseArc) extremeAngles() [4]float64 {
	cosPhi, sinPhi := math.Cos(a.phi), math.Sin(a.phi)
	tx := math.Atan2(-a.ry*sinPhi, a.rx*cosPhi)
	ty := math.Atan2(a.ry*cosPhi, a.rx*sinPhi)
	return [4]float64{tx, tx + math.Pi, ty, ty + math.Pi}
}

// contains reports whether the arc passes through parameter theta.
func (a ellipseArc) contains(theta float64) bool {
	const eps = 1e-12
	if a.delta >= 0 {
		return normalizeAngle(theta-a.theta1) <= a.delta+eps
	}
	return normalizeAngle(a.theta1-theta) <= -a.delta+eps
}

// normalizeAngle maps an angle to [0, 2π).
func normalizeAngle(theta float64) float64 {
	const twoPi = 2 * math.Pi
	theta = math.Mod(theta, twoPi)
	if theta < 0 {
		theta += twoPi
	}
	return theta
}

// cubics approximates the arc with cubic Bezier segments of at most
// 90 degrees each. end is used verbatim as the final point.
func (a ellipseArc) cubics(end Point, fn func(c1, c2, pt Point)) {
	const maxAngle = math.Pi / 2
	n := int(math.Ceil(math.Abs(a.delta)/maxAngle - 1e-9))
	if n < 1 {
		n = 1
	}
	step := a.delta / float64(n)
	k := 4.0 / 3.0 * math.Tan(step/4)

	for i := 0; i < n; i++ {
		t1 := a.theta1 + float64(i)*step
		t2 := t1 + step
		p1 := a.point(t1)
		p2 := a.point(t2)
		if i == n-1 {
			p2 = end
		}
		c1 := p1.Add(a.derivative(t1).Mul(k))
		c2 := p2.Sub(a.derivative(t2).Mul(k))
		fn(c1, c2, p2)
	}
}
