package svgpath

// Builder provides a fluent interface for path construction.
// All methods return the builder for chaining.
type Builder struct {
	path *Path
}

// Build starts a new path builder.
func Build() *Builder {
	return &Builder{path: New()}
}

// MoveTo moves to an absolute position.
func (b *Builder) MoveTo(x, y float64) *Builder {
	b.path.MoveTo(x, y)
	return b
}

// MoveBy moves relative to the current point.
func (b *Builder) MoveBy(dx, dy float64) *Builder {
	b.path.MoveBy(dx, dy)
	return b
}

// LineTo draws a line to an absolute position.
func (b *Builder) LineTo(x, y float64) *Builder {
	b.path.LineTo(x, y)
	return b
}

// LineBy draws a line relative to the current point.
func (b *Builder) LineBy(dx, dy float64) *Builder {
	b.path.LineBy(dx, dy)
	return b
}

// ArcBy draws an unrotated elliptical arc relative to the current point.
func (b *Builder) ArcBy(rx, ry float64, largeArc, sweep bool, dx, dy float64) *Builder {
	b.path.ArcBy(rx, ry, 0, largeArc, sweep, dx, dy)
	return b
}

// Close closes the current subpath.
func (b *Builder) Close() *Builder {
	b.path.Close()
	return b
}

// Path returns the constructed path.
func (b *Builder) Path() *Path {
	return b.path
}
