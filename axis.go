package tablet

import "strings"

// Axis selects the single dimension line drawn on a view.
type Axis int

const (
	AxisNone Axis = iota
	AxisWidth
	AxisLength
	AxisTotalThickness
	AxisBandThickness
	AxisCupDepth
)

// ParseAxis maps an axis name to an Axis. Both the short names used by
// forms ("total", "band", "cup") and the long names are accepted.
// Unrecognized names yield AxisNone.
func ParseAxis(s string) Axis {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "width":
		return AxisWidth
	case "length":
		return AxisLength
	case "total", "total-thickness", "totalthickness":
		return AxisTotalThickness
	case "band", "band-thickness", "bandthickness":
		return AxisBandThickness
	case "cup", "cup-depth", "cupdepth":
		return AxisCupDepth
	}
	return AxisNone
}

// String returns the long axis name.
func (a Axis) String() string {
	switch a {
	case AxisWidth:
		return "width"
	case AxisLength:
		return "length"
	case AxisTotalThickness:
		return "total-thickness"
	case AxisBandThickness:
		return "band-thickness"
	case AxisCupDepth:
		return "cup-depth"
	}
	return "none"
}

// View returns the view that draws a, and false for AxisNone.
func (a Axis) View() (View, bool) {
	switch a {
	case AxisWidth, AxisLength:
		return ViewTop, true
	case AxisTotalThickness, AxisBandThickness, AxisCupDepth:
		return ViewSide, true
	}
	return 0, false
}
