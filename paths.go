package tablet

import "github.com/tabletlab/tablet/svgpath"

// View identifies one of the two canvases.
type View int

const (
	ViewTop View = iota
	ViewSide
)

// String returns "top" or "side".
func (v View) String() string {
	if v == ViewSide {
		return "side"
	}
	return "top"
}

// Role tells a drawing surface how to style a path.
type Role int

const (
	// RoleOutline is a closed tablet outline; it is filled and stroked.
	RoleOutline Role = iota
	// RoleAnnotation is a dimension line; it is stroked only.
	RoleAnnotation
)

// String returns "outline" or "annotation".
func (r Role) String() string {
	if r == RoleAnnotation {
		return "annotation"
	}
	return "outline"
}

// Paths are the four paths computed for one snapshot.
type Paths struct {
	TopOutline     *svgpath.Path
	TopAnnotation  *svgpath.Path
	SideOutline    *svgpath.Path
	SideAnnotation *svgpath.Path
}

// Paths computes the outlines and dimension lines for s.
func (v Viewport) Paths(s Snapshot) Paths {
	g := s.Geometry
	return Paths{
		TopOutline:     v.TopOutline(g.Shape, g.Width, g.Length),
		TopAnnotation:  v.TopAnnotation(s.Axis, g.Shape, g.Width, g.Length),
		SideOutline:    v.SideOutline(g.Shape, g.Length, g.CupRadius, g.BandThickness),
		SideAnnotation: v.SideAnnotation(s.Axis, g.TotalThickness, g.BandThickness, g.Length),
	}
}

// DrawInstruction is one path handed to a drawing surface.
// An empty D draws nothing.
type DrawInstruction struct {
	View View
	Role Role
	D    string
}

// Instructions maps paths to draw instructions in painting order: the top
// view outline and annotation, then the side view outline and annotation.
// All four are always present so that consumers can rely on positions.
func Instructions(p Paths) []DrawInstruction {
	return []DrawInstruction{
		{View: ViewTop, Role: RoleOutline, D: p.TopOutline.String()},
		{View: ViewTop, Role: RoleAnnotation, D: p.TopAnnotation.String()},
		{View: ViewSide, Role: RoleOutline, D: p.SideOutline.String()},
		{View: ViewSide, Role: RoleAnnotation, D: p.SideAnnotation.String()},
	}
}
