package svgpath

import (
	"strconv"
	"strings"
)

// Command represents a single command in an SVG path.
type Command interface {
	isCommand()
	verb() byte
	args() []float64
}

// MoveTo starts a new subpath. When Relative is set the point is an
// offset from the current point ("m"), otherwise it is absolute ("M").
type MoveTo struct {
	Point    Point
	Relative bool
}

func (MoveTo) isCommand() {}

func (c MoveTo) verb() byte { return pick(c.Relative, 'm', 'M') }

func (c MoveTo) args() []float64 { return []float64{c.Point.X, c.Point.Y} }

// LineTo draws a straight line ("l" or "L").
type LineTo struct {
	Point    Point
	Relative bool
}

func (LineTo) isCommand() {}

func (c LineTo) verb() byte { return pick(c.Relative, 'l', 'L') }

func (c LineTo) args() []float64 { return []float64{c.Point.X, c.Point.Y} }

// ArcTo draws an elliptical arc ("a" or "A") with the SVG endpoint
// parameterization.
type ArcTo struct {
	Rx, Ry   float64
	Rotation float64 // x-axis rotation in degrees
	LargeArc bool
	Sweep    bool
	Point    Point
	Relative bool
}

func (ArcTo) isCommand() {}

func (c ArcTo) verb() byte { return pick(c.Relative, 'a', 'A') }

func (c ArcTo) args() []float64 {
	return []float64{c.Rx, c.Ry, c.Rotation, flag(c.LargeArc), flag(c.Sweep), c.Point.X, c.Point.Y}
}

// Close closes the current subpath ("z").
type Close struct{}

func (Close) isCommand() {}

func (Close) verb() byte { return 'z' }

func (Close) args() []float64 { return nil }

// Path is an ordered sequence of SVG path commands.
// The zero value is an empty path ready to use.
type Path struct {
	commands []Command
	start    Point // absolute start of the current subpath
	current  Point // absolute current point
}

// New creates a new empty path.
func New() *Path {
	return &Path{
		commands: make([]Command, 0, 12),
	}
}

// MoveTo starts a subpath at an absolute position.
func (p *Path) MoveTo(x, y float64) {
	pt := Pt(x, y)
	p.commands = append(p.commands, MoveTo{Point: pt})
	p.start = pt
	p.current = pt
}

// MoveBy starts a subpath offset from the current point.
func (p *Path) MoveBy(dx, dy float64) {
	d := Pt(dx, dy)
	p.commands = append(p.commands, MoveTo{Point: d, Relative: true})
	p.current = p.current.Add(d)
	p.start = p.current
}

// LineTo draws a line to an absolute position.
func (p *Path) LineTo(x, y float64) {
	pt := Pt(x, y)
	p.commands = append(p.commands, LineTo{Point: pt})
	p.current = pt
}

// LineBy draws a line to a position offset from the current point.
func (p *Path) LineBy(dx, dy float64) {
	d := Pt(dx, dy)
	p.commands = append(p.commands, LineTo{Point: d, Relative: true})
	p.current = p.current.Add(d)
}

// ArcTo draws an elliptical arc ending at an absolute position.
func (p *Path) ArcTo(rx, ry, rotation float64, largeArc, sweep bool, x, y float64) {
	pt := Pt(x, y)
	p.commands = append(p.commands, ArcTo{
		Rx: rx, Ry: ry, Rotation: rotation,
		LargeArc: largeArc, Sweep: sweep,
		Point: pt,
	})
	p.current = pt
}

// ArcBy draws an elliptical arc ending at an offset from the current point.
func (p *Path) ArcBy(rx, ry, rotation float64, largeArc, sweep bool, dx, dy float64) {
	d := Pt(dx, dy)
	p.commands = append(p.commands, ArcTo{
		Rx: rx, Ry: ry, Rotation: rotation,
		LargeArc: largeArc, Sweep: sweep,
		Point: d, Relative: true,
	})
	p.current = p.current.Add(d)
}

// Close closes the current subpath.
func (p *Path) Close() {
	p.commands = append(p.commands, Close{})
	p.current = p.start
}

// Commands returns the path commands.
func (p *Path) Commands() []Command {
	return p.commands
}

// IsEmpty reports whether the path has no commands.
func (p *Path) IsEmpty() bool {
	return len(p.commands) == 0
}

// CurrentPoint returns the absolute current point.
func (p *Path) CurrentPoint() Point {
	return p.current
}

// String returns the path data as it appears in an SVG "d" attribute.
// Commands and arguments are separated by single spaces; an empty path
// yields "".
func (p *Path) String() string {
	if p == nil || len(p.commands) == 0 {
		return ""
	}
	var sb strings.Builder
	sb.Grow(len(p.commands) * 16)
	for i, cmd := range p.commands {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteByte(cmd.verb())
		for _, v := range cmd.args() {
			sb.WriteByte(' ')
			sb.WriteString(FormatNumber(v))
		}
	}
	return sb.String()
}

// Transform returns a copy of the path with every coordinate scaled by s
// and absolute positions shifted by offset. Relative commands are only
// scaled.
func (p *Path) Transform(s float64, offset Point) *Path {
	result := New()
	for _, cmd := range p.commands {
		switch c := cmd.(type) {
		case MoveTo:
			if c.Relative {
				result.MoveBy(c.Point.X*s, c.Point.Y*s)
			} else {
				pt := c.Point.Mul(s).Add(offset)
				result.MoveTo(pt.X, pt.Y)
			}
		case LineTo:
			if c.Relative {
				result.LineBy(c.Point.X*s, c.Point.Y*s)
			} else {
				pt := c.Point.Mul(s).Add(offset)
				result.LineTo(pt.X, pt.Y)
			}
		case ArcTo:
			if c.Relative {
				result.ArcBy(c.Rx*s, c.Ry*s, c.Rotation, c.LargeArc, c.Sweep, c.Point.X*s, c.Point.Y*s)
			} else {
				pt := c.Point.Mul(s).Add(offset)
				result.ArcTo(c.Rx*s, c.Ry*s, c.Rotation, c.LargeArc, c.Sweep, pt.X, pt.Y)
			}
		case Close:
			result.Close()
		}
	}
	return result
}

// FormatNumber formats v in the shortest form that parses back to the
// same float64, without an exponent. Negative zero is written as "0".
func FormatNumber(v float64) string {
	if v == 0 {
		return "0"
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func pick(cond bool, a, b byte) byte {
	if cond {
		return a
	}
	return b
}

func flag(b bool) float64 {
	if b {
		return 1
	}
	return 0
}
