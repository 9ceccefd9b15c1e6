package tablet

import "math"

// Geometry holds the dimensions of a tablet, in meters.
//
// Width ≤ Length and BandThickness ≤ TotalThickness are expected but not
// enforced; the path builders draw whatever they are given.
type Geometry struct {
	Shape          Shape
	Length         float64
	Width          float64
	TotalThickness float64
	BandThickness  float64
	// CupRadius is the radius of curvature of the faces. It is derived
	// upstream (see CupRadius) and used as is.
	CupRadius float64
}

type dimension struct {
	name  string
	value float64
}

// Snapshot is the read-only state a Renderer draws from.
type Snapshot struct {
	Geometry
	Axis Axis
}

// CupDepth returns the height of one curved face above the band.
func (g Geometry) CupDepth() float64 {
	return (g.TotalThickness - g.BandThickness) / 2
}

// Validate checks that every dimension is positive and finite and that
// the expected orderings hold. The path builders never call it; it is
// for callers that want to flag bad input before drawing.
func (g Geometry) Validate() error {
	dims := []dimension{
		{"length", g.Length},
		{"total thickness", g.TotalThickness},
		{"band thickness", g.BandThickness},
	}
	if g.Shape != ShapeRound {
		dims = append(dims, dimension{"width", g.Width})
	}
	for _, d := range dims {
		if math.IsNaN(d.value) || math.IsInf(d.value, 0) {
			return &GeometryError{Field: d.name, Value: d.value, Reason: "not finite"}
		}
		if d.value <= 0 {
			return &GeometryError{Field: d.name, Value: d.value, Reason: "must be positive"}
		}
	}
	if g.Shape != ShapeRound && g.Width > g.Length {
		return &GeometryError{Field: "width", Value: g.Width, Reason: "exceeds length"}
	}
	if g.BandThickness > g.TotalThickness {
		return &GeometryError{Field: "band thickness", Value: g.BandThickness, Reason: "exceeds total thickness"}
	}
	return nil
}

// CupRadius returns the radius of a spherical cup face that spans a chord
// of the given length and rises (total-band)/2 above the band. Flat faces
// (no rise) return 0, which the side outline draws as straight lines.
func CupRadius(length, totalThickness, bandThickness float64) float64 {
	depth := Geometry{TotalThickness: totalThickness, BandThickness: bandThickness}.CupDepth()
	if !(depth > 0) {
		return 0
	}
	half := length / 2
	return (half*half + depth*depth) / (2 * depth)
}
