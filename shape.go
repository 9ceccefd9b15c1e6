package tablet

import "strings"

// Shape is the outline of a tablet seen from above.
type Shape int

const (
	// ShapeUnknown is any unrecognized shape; it draws nothing.
	ShapeUnknown Shape = iota
	// ShapeRound is a circular tablet whose diameter is its length.
	ShapeRound
	// ShapeOval is an elliptical tablet.
	ShapeOval
	// ShapeCaplet is an elongated tablet with semicircular ends.
	ShapeCaplet
)

// ParseShape maps a shape name to a Shape. Matching ignores case and
// surrounding space. Unrecognized names yield ShapeUnknown.
func ParseShape(s string) Shape {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "round":
		return ShapeRound
	case "oval":
		return ShapeOval
	case "caplet":
		return ShapeCaplet
	}
	return ShapeUnknown
}

// String returns the shape name.
func (s Shape) String() string {
	switch s {
	case ShapeRound:
		return "round"
	case ShapeOval:
		return "oval"
	case ShapeCaplet:
		return "caplet"
	}
	return "unknown"
}

// Known reports whether s is one of the drawable shapes.
func (s Shape) Known() bool {
	return s == ShapeRound || s == ShapeOval || s == ShapeCaplet
}
